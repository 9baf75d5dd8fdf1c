// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliopt

import "strings"

// ParseOptions adjusts how Parse treats the token stream. The zero value
// gives strict parsing: unknown options and missing required options are
// both errors.
type ParseOptions struct {
	// IgnoreUnknown skips tokens naming undeclared options instead of
	// failing. Only the naming token is skipped; a following token that
	// would have been its value is not consumed.
	IgnoreUnknown bool

	// SkipRequiredCheck suppresses the end-of-parse sweep for required
	// options that never received a value.
	SkipRequiredCheck bool
}

// Parse interprets argv against the declared options, left to right.
// argv[0] is the invoking program path: it is recorded verbatim (see
// ExecutablePath) and never matched against option names. An option is
// recognized in two forms, NAME VALUE (two tokens) and NAME=VALUE (one
// token, split at the first '='); names are matched by exact string
// equality. A flag is a single bare NAME token and consumes nothing.
//
// Parse is not transactional: descriptors are updated token by token, so
// values assigned before a failure stay assigned, including when the
// failure is the final missing-required check. Callers that need
// all-or-nothing behavior must re-create the Registry around a failed
// call.
func (r *Registry) Parse(argv []string, opts ParseOptions) error {
	if len(argv) == 0 {
		return nil
	}
	r.execPath = argv[0]

	for i := 1; i < len(argv); i++ {
		tok := argv[i]

		if eq := strings.Index(tok, "="); eq >= 0 {
			name, literal := tok[:eq], tok[eq+1:]
			o, ok := r.options[name]
			if !ok {
				if opts.IgnoreUnknown {
					continue
				}
				return &UnknownOptionError{Name: name}
			}
			if o.flag() {
				return &InvalidAssignmentError{Name: name}
			}
			if err := o.assign(name, literal); err != nil {
				return err
			}
			continue
		}

		o, ok := r.options[tok]
		if !ok {
			if opts.IgnoreUnknown {
				continue
			}
			return &UnknownOptionError{Name: tok}
		}
		if o.flag() {
			o.value = valueOf(true)
			o.markSet()
			continue
		}
		if i+1 >= len(argv) {
			return &InvalidLiteralError{Name: tok, Err: errMissingValue}
		}
		i++
		if err := o.assign(tok, argv[i]); err != nil {
			return err
		}
	}

	if opts.SkipRequiredCheck {
		return nil
	}
	var missing []string
	for _, name := range r.order {
		if !r.options[name].available() {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingRequiredError{Names: missing}
	}
	return nil
}
