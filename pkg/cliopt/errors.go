// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliopt

import (
	"errors"
	"fmt"
	"strings"
)

// DuplicateOptionError is returned when a name is declared twice on the
// same Registry.
type DuplicateOptionError struct {
	Name string
}

func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("option %q is already declared", e.Name)
}

// InvalidNameError is returned when a declared name contains '=' or
// whitespace.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("option name %q contains '=' or whitespace", e.Name)
}

// UnknownOptionError is returned when a token names an undeclared option
// and ParseOptions.IgnoreUnknown is false.
type UnknownOptionError struct {
	Name string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option: %s", e.Name)
}

// InvalidAssignmentError is returned when the NAME=VALUE form is used
// against a flag. Flags take no value; their presence alone sets them.
type InvalidAssignmentError struct {
	Name string
}

func (e *InvalidAssignmentError) Error() string {
	return fmt.Sprintf("flag %s cannot be assigned a value with '='", e.Name)
}

// errMissingValue is the cause recorded when a non-flag option is the last
// token and has no value to consume.
var errMissingValue = errors.New("no value provided")

// InvalidLiteralError is returned when a value token cannot be parsed
// into the option's declared kind, including the case where a trailing
// non-flag option has no value token at all (Literal is then empty and
// the cause is the missing-value error). Err preserves the underlying
// strconv error for callers that want the detail.
type InvalidLiteralError struct {
	Name    string
	Literal string
	Err     error
}

func (e *InvalidLiteralError) Error() string {
	if errors.Is(e.Err, errMissingValue) {
		return fmt.Sprintf("option %s expects a value but none was provided", e.Name)
	}
	return fmt.Sprintf("invalid value %q for option %s", e.Literal, e.Name)
}

func (e *InvalidLiteralError) Unwrap() error {
	return e.Err
}

// MissingRequiredError is returned by Parse when one or more required
// options never received a user value. Names carries every offending
// option, in declaration order, not just the first one found.
type MissingRequiredError struct {
	Names []string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("missing required option(s): %s", strings.Join(e.Names, ", "))
}

// NoSuchOptionError is returned by queries against an undeclared name.
type NoSuchOptionError struct {
	Name string
}

func (e *NoSuchOptionError) Error() string {
	return fmt.Sprintf("no such option: %s", e.Name)
}

// NotAvailableError is returned when reading a required option that the
// user never set.
type NotAvailableError struct {
	Name string
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("required option %s has no value yet", e.Name)
}

// TypeMismatchError is returned when Get is instantiated with a type
// whose kind differs from the option's declared kind.
type TypeMismatchError struct {
	Name string
	Want Kind // kind requested by the caller
	Got  Kind // kind the option was declared with
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("option %s holds %s, not %s", e.Name, e.Got, e.Want)
}
