// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliopt

// Get returns the current value of the named option as T. It fails with
// NoSuchOptionError if the name was never declared, NotAvailableError if
// the option is required and the user never set it, and
// TypeMismatchError if T's kind differs from the declared kind. Reading
// has no side effects; repeated calls return the same value.
func Get[T Scalar](r *Registry, name string) (T, error) {
	var zero T
	o, err := r.lookup(name)
	if err != nil {
		return zero, err
	}
	if !o.available() {
		return zero, &NotAvailableError{Name: name}
	}
	if want := kindOf[T](); want != o.kind {
		return zero, &TypeMismatchError{Name: name, Want: want, Got: o.kind}
	}
	return scalarOf[T](o.value), nil
}

// IsOptional reports whether the named option is optional (flags count as
// optional). It fails with NoSuchOptionError for undeclared names.
func (r *Registry) IsOptional(name string) (bool, error) {
	o, err := r.lookup(name)
	if err != nil {
		return false, err
	}
	return o.optional(), nil
}

// IsFlag reports whether the named option is a flag.
func (r *Registry) IsFlag(name string) (bool, error) {
	o, err := r.lookup(name)
	if err != nil {
		return false, err
	}
	return o.flag(), nil
}

// IsSetByUser reports whether a parse assigned the named option a value,
// regardless of whether that value equals the default.
func (r *Registry) IsSetByUser(name string) (bool, error) {
	o, err := r.lookup(name)
	if err != nil {
		return false, err
	}
	return o.setByUser(), nil
}

// Description returns the display text the option was declared with.
func (r *Registry) Description(name string) (string, error) {
	o, err := r.lookup(name)
	if err != nil {
		return "", err
	}
	return o.description, nil
}
