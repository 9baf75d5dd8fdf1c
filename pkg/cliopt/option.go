// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliopt

// optionState is the full lifecycle of a declared option, flattened into
// one enumeration so the predicates below stay simple lookups instead of
// bit arithmetic. Flags are a specialization of optional options whose
// kind is fixed to bool.
type optionState uint8

const (
	requiredUnset optionState = iota
	requiredSet
	optionalDefault
	optionalSet
	flagDefault
	flagSet
)

// option is one declared option. Descriptors are owned by their Registry
// and never escape it; all access goes through name lookup. The kind is
// fixed at declaration time and never changes.
type option struct {
	description string
	kind        Kind
	state       optionState
	value       value
}

// available reports whether the option can be read. Optional options and
// flags always can (default or user-set); a required option only once the
// user has supplied a value.
func (o *option) available() bool {
	return o.state != requiredUnset
}

func (o *option) optional() bool {
	switch o.state {
	case optionalDefault, optionalSet, flagDefault, flagSet:
		return true
	}
	return false
}

func (o *option) flag() bool {
	return o.state == flagDefault || o.state == flagSet
}

func (o *option) setByUser() bool {
	switch o.state {
	case requiredSet, optionalSet, flagSet:
		return true
	}
	return false
}

// markSet records a successful user assignment. Already-set states are
// unchanged, so repeated assignments on the command line are fine.
func (o *option) markSet() {
	switch o.state {
	case requiredUnset:
		o.state = requiredSet
	case optionalDefault:
		o.state = optionalSet
	case flagDefault:
		o.state = flagSet
	}
}

// assign parses literal into the option's declared kind and marks the
// option as set by the user. On a parse failure the option is untouched.
func (o *option) assign(name, literal string) error {
	v, err := parseLiteral(o.kind, literal)
	if err != nil {
		return &InvalidLiteralError{Name: name, Literal: literal, Err: err}
	}
	o.value = v
	o.markSet()
	return nil
}
