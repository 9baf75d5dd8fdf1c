// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package helpfmt renders usage and help text for a cliopt.Registry. It
// only reads the registry's query surface; all formatting decisions live
// here, none in the parser.
package helpfmt

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/clipick/clipick/pkg/cliopt"
)

// Options controls how much of the registry Render includes beyond the
// usage line.
type Options struct {
	// Full adds a per-option table with classification and description.
	Full bool

	// IncludeVersion appends a version line when the registry has one.
	IncludeVersion bool

	// IncludeExecutablePath appends the argv[0] recorded by the last
	// parse, when there is one.
	IncludeExecutablePath bool
}

// Usage returns the one-line usage: the app name followed by every
// declared option in declaration order, with optional options bracketed.
func Usage(r *cliopt.Registry) string {
	var b strings.Builder
	b.WriteString(r.AppName())
	for _, name := range r.Names() {
		optional, _ := r.IsOptional(name)
		if optional {
			b.WriteString(" [" + name + "]")
		} else {
			b.WriteString(" " + name)
		}
	}
	return b.String()
}

// Render composes the help text: the usage line, the app description,
// then whatever Options asks for.
func Render(r *cliopt.Registry, opts Options) string {
	var b strings.Builder
	b.WriteString(Usage(r))
	b.WriteByte('\n')
	if d := r.AppDescription(); d != "" {
		b.WriteString(d)
		b.WriteByte('\n')
	}
	if opts.IncludeVersion && r.Version() != "" {
		fmt.Fprintf(&b, "\nversion: %s\n", r.Version())
	}
	if opts.IncludeExecutablePath && r.ExecutablePath() != "" {
		fmt.Fprintf(&b, "\ninstalled at: %s\n", r.ExecutablePath())
	}
	if opts.Full {
		b.WriteByte('\n')
		tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
		for _, name := range r.Names() {
			desc, _ := r.Description(name)
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", name, classify(r, name), desc)
		}
		tw.Flush()
	}
	return b.String()
}

func classify(r *cliopt.Registry, name string) string {
	if flag, _ := r.IsFlag(name); flag {
		return "flag"
	}
	if optional, _ := r.IsOptional(name); optional {
		return "optional"
	}
	return "required"
}
