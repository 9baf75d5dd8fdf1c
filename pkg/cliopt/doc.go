// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cliopt is a small command-line option registry and parser.
// Callers declare named, typed options up front, hand Parse the raw
// argument vector, and read typed values back out afterward.
//
// An option is required (the parse fails if the user omits it), optional
// (declared with a default), or a flag (boolean, default false, set true
// by bare presence). Option names are opaque strings matched exactly, so
// "-n", "--verbose" and "threads" are all valid names; declared names may
// not contain '=' or whitespace. Values are typed over a closed scalar
// set: bool, string, three integer widths (int, int32, int64) and three
// float widths (float32, float64, Extended).
//
// # Usage
//
//	opts := cliopt.New("checkpath", "check whether a path exists")
//	cliopt.Declare[string](opts, "-p", "path to check")
//	cliopt.DeclareOptional(opts, "-n", "repeat count", 1)
//	opts.DeclareFlag("--verbose", "print extra detail")
//
//	if err := opts.Parse(os.Args, cliopt.ParseOptions{}); err != nil {
//	    // UnknownOptionError, InvalidLiteralError, MissingRequiredError...
//	}
//
//	p, err := cliopt.Get[string](opts, "-p")
//	n, err := cliopt.Get[int](opts, "-n")
//
// On the command line both "-n 5" and "-n=5" set -n; "--verbose" alone
// sets the flag and consumes nothing after it.
//
// Every failure is a distinct error type that callers can match with
// errors.As. The package itself never prints, logs, or exits; rendering
// errors and help text for the end user is the caller's job (see package
// helpfmt for the latter).
//
// Registries are single-owner: declaration, one or more Parse calls, and
// reads are expected to happen sequentially from one goroutine.
package cliopt
