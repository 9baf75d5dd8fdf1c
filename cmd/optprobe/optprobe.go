// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command optprobe declares one option of every supported kind, parses
// the real command line, and dumps the resulting registry state. Handy
// for poking at parse behavior by hand.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/clipick/clipick/pkg/cliopt"
	"github.com/clipick/clipick/pkg/helpfmt"
	"github.com/fatih/color"
	"golang.org/x/term"
)

func main() {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		color.NoColor = true
	}

	opts := cliopt.New("optprobe", "exercises every option kind the cliopt package supports")
	opts.SetVersion("1.0.0")
	must(cliopt.Declare[int](opts, "-n", "required int"))
	must(cliopt.Declare[float64](opts, "-d", "required float64"))
	must(cliopt.Declare[bool](opts, "-b", "required bool (y/true/n/false)"))
	must(cliopt.Declare[string](opts, "-f", "required string"))
	must(cliopt.DeclareOptional(opts, "-q", "optional float32", float32(3.22)))
	must(cliopt.DeclareOptional(opts, "--wide", "optional int32", int32(0)))
	must(cliopt.DeclareOptional(opts, "--big", "optional int64", int64(0)))
	must(cliopt.DeclareOptional(opts, "--ext", "optional extended float", cliopt.Extended(0)))
	must(cliopt.DeclareOptional(opts, "--flag", "optional bool with a default", false))
	must(opts.DeclareFlag("--help", "print help and ignore everything else"))

	if err := opts.Parse(os.Args, cliopt.ParseOptions{}); err != nil {
		// --help short-circuits even a failed parse, matching the usual
		// "prog --help" invocation where required options are absent.
		if help, _ := cliopt.Get[bool](opts, "--help"); help {
			fmt.Print(helpfmt.Render(opts, helpfmt.Options{Full: true, IncludeVersion: true, IncludeExecutablePath: true}))
			return
		}
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
	if get[bool](opts, "--help") {
		fmt.Print(helpfmt.Render(opts, helpfmt.Options{Full: true, IncludeVersion: true, IncludeExecutablePath: true}))
		return
	}

	rows := []struct {
		name  string
		value any
	}{
		{"-n", get[int](opts, "-n")},
		{"-d", get[float64](opts, "-d")},
		{"-b", get[bool](opts, "-b")},
		{"-f", get[string](opts, "-f")},
		{"-q", get[float32](opts, "-q")},
		{"--wide", get[int32](opts, "--wide")},
		{"--big", get[int64](opts, "--big")},
		{"--ext", get[cliopt.Extended](opts, "--ext")},
		{"--flag", get[bool](opts, "--flag")},
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OPTION\tVALUE\tCLASS\tSET BY USER")
	for _, row := range rows {
		set, _ := opts.IsSetByUser(row.name)
		fmt.Fprintf(tw, "%s\t%v\t%s\t%v\n", row.name, row.value, classify(opts, row.name), set)
	}
	tw.Flush()
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

func get[T cliopt.Scalar](r *cliopt.Registry, name string) T {
	v, err := cliopt.Get[T](r, name)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
