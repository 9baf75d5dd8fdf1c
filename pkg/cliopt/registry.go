// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliopt

import (
	"slices"
	"strings"
	"unicode"
)

// Registry holds the declared options for one command-line surface along
// with the app metadata consumed by help renderers. A Registry is built
// by a single caller, mutated only by Parse, and read afterward; it is
// not safe for concurrent use and is not meant to be shared.
type Registry struct {
	appName        string
	appDescription string
	version        string
	execPath       string

	options map[string]*option
	order   []string
}

// New returns an empty Registry for the named app.
func New(name, description string) *Registry {
	return &Registry{
		appName:        name,
		appDescription: description,
		options:        make(map[string]*option),
	}
}

// AppName returns the app name given to New.
func (r *Registry) AppName() string { return r.appName }

// AppDescription returns the app description given to New.
func (r *Registry) AppDescription() string { return r.appDescription }

// SetVersion records a version string for help renderers.
func (r *Registry) SetVersion(v string) { r.version = v }

// Version returns the version string, if one was set.
func (r *Registry) Version() string { return r.version }

// ExecutablePath returns the verbatim argv[0] captured by the most recent
// Parse, or "" before any parse.
func (r *Registry) ExecutablePath() string { return r.execPath }

// Declare registers a required option holding a value of type T. The
// option has no value until the user supplies one; reading it before then
// fails with NotAvailableError.
func Declare[T Scalar](r *Registry, name, description string) error {
	return r.insert(name, &option{
		description: description,
		kind:        kindOf[T](),
		state:       requiredUnset,
	})
}

// DeclareOptional registers an optional option of type T with the given
// default value.
func DeclareOptional[T Scalar](r *Registry, name, description string, def T) error {
	return r.insert(name, &option{
		description: description,
		kind:        kindOf[T](),
		state:       optionalDefault,
		value:       valueOf(def),
	})
}

// DeclareFlag registers a boolean flag: optional, default false, and set
// to true by its bare presence on the command line. Flags never consume a
// following token and reject the NAME=VALUE form.
func (r *Registry) DeclareFlag(name, description string) error {
	return r.insert(name, &option{
		description: description,
		kind:        KindBool,
		state:       flagDefault,
		value:       valueOf(false),
	})
}

func badNameRune(c rune) bool {
	return c == '=' || unicode.IsSpace(c)
}

func (r *Registry) insert(name string, o *option) error {
	if _, ok := r.options[name]; ok {
		return &DuplicateOptionError{Name: name}
	}
	if strings.IndexFunc(name, badNameRune) >= 0 {
		return &InvalidNameError{Name: name}
	}
	r.options[name] = o
	r.order = append(r.order, name)
	return nil
}

// Has reports whether name has been declared.
func (r *Registry) Has(name string) bool {
	_, ok := r.options[name]
	return ok
}

// Names returns every declared name in declaration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

func (r *Registry) lookup(name string) (*option, error) {
	o, ok := r.options[name]
	if !ok {
		return nil, &NoSuchOptionError{Name: name}
	}
	return o, nil
}
