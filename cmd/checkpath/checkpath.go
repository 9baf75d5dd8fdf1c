// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command checkpath reports whether a path exists, n times. It exists to
// show the cliopt declaration/parse/read flow end to end.
package main

import (
	"fmt"
	"os"

	"github.com/clipick/clipick/pkg/cliopt"
	"github.com/clipick/clipick/pkg/helpfmt"
	"github.com/fatih/color"
	"golang.org/x/term"
)

func main() {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		color.NoColor = true
	}

	opts := cliopt.New("checkpath", "check whether the provided path exists and print the result n times")
	opts.SetVersion("1.0.0")
	must(cliopt.Declare[string](opts, "-p", "path to check"))
	must(cliopt.DeclareOptional(opts, "-n", "how many times to print the result", 1))
	must(opts.DeclareFlag("--ignore-n", "ignore -n and print the result 3 times"))

	if err := opts.Parse(os.Args, cliopt.ParseOptions{}); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		fmt.Fprintln(os.Stderr)
		fmt.Fprint(os.Stderr, helpfmt.Render(opts, helpfmt.Options{Full: true, IncludeVersion: true}))
		os.Exit(1)
	}

	p := get[string](opts, "-p")
	n := get[int](opts, "-n")
	if get[bool](opts, "--ignore-n") {
		fmt.Println("--ignore-n received, printing the result 3 times")
		n = 3
	}
	if n < 1 {
		fmt.Fprintln(os.Stderr, color.RedString("-n must be strictly positive"))
		os.Exit(1)
	}

	result := p + " does not exist."
	if _, err := os.Stat(p); err == nil {
		result = p + " exists."
	}
	for i := 0; i < n; i++ {
		fmt.Println(result)
	}
}

// get reads an option that main itself declared, so a failure here is a
// bug rather than user input.
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
