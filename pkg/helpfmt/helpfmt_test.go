// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package helpfmt

import (
	"strings"
	"testing"

	"github.com/clipick/clipick/pkg/cliopt"
)

func demoRegistry(t *testing.T) *cliopt.Registry {
	t.Helper()
	r := cliopt.New("checkpath", "check whether a path exists")
	if err := cliopt.Declare[string](r, "-p", "path to check"); err != nil {
		t.Fatal(err)
	}
	if err := cliopt.DeclareOptional(r, "-n", "repeat count", 1); err != nil {
		t.Fatal(err)
	}
	if err := r.DeclareFlag("--ignore-n", "ignore -n"); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestUsage(t *testing.T) {
	r := demoRegistry(t)
	want := "checkpath -p [-n] [--ignore-n]"
	if got := Usage(r); got != want {
		t.Errorf("Usage() = %q, want %q", got, want)
	}
}

func TestRenderBrief(t *testing.T) {
	r := demoRegistry(t)
	got := Render(r, Options{})
	if !strings.HasPrefix(got, "checkpath -p [-n] [--ignore-n]\n") {
		t.Errorf("brief render missing usage line:\n%s", got)
	}
	if !strings.Contains(got, "check whether a path exists") {
		t.Errorf("brief render missing app description:\n%s", got)
	}
	if strings.Contains(got, "path to check") {
		t.Errorf("brief render includes the option table:\n%s", got)
	}
}

func TestRenderFull(t *testing.T) {
	r := demoRegistry(t)
	got := Render(r, Options{Full: true})

	rows := []struct{ name, class, desc string }{
		{"-p", "required", "path to check"},
		{"-n", "optional", "repeat count"},
		{"--ignore-n", "flag", "ignore -n"},
	}
	lines := strings.Split(got, "\n")
	for _, row := range rows {
		found := false
		for _, line := range lines {
			fields := strings.Fields(line)
			if len(fields) >= 3 && fields[0] == row.name && fields[1] == row.class {
				if strings.Contains(line, row.desc) {
					found = true
					break
				}
			}
		}
		if !found {
			t.Errorf("full render missing row %v:\n%s", row, got)
		}
	}
}

func TestRenderVersionAndExecutablePath(t *testing.T) {
	r := demoRegistry(t)

	got := Render(r, Options{IncludeVersion: true, IncludeExecutablePath: true})
	if strings.Contains(got, "version:") {
		t.Errorf("render shows a version when none was set:\n%s", got)
	}
	if strings.Contains(got, "installed at:") {
		t.Errorf("render shows an executable path before any parse:\n%s", got)
	}

	r.SetVersion("1.0.0")
	if err := r.Parse([]string{"/usr/local/bin/checkpath", "-p", "/tmp"}, cliopt.ParseOptions{}); err != nil {
		t.Fatalf("Parse error = %v", err)
	}

	got = Render(r, Options{IncludeVersion: true, IncludeExecutablePath: true})
	if !strings.Contains(got, "version: 1.0.0") {
		t.Errorf("render missing version line:\n%s", got)
	}
	if !strings.Contains(got, "installed at: /usr/local/bin/checkpath") {
		t.Errorf("render missing executable path line:\n%s", got)
	}

	// Neither line appears unless asked for.
	got = Render(r, Options{})
	if strings.Contains(got, "version:") || strings.Contains(got, "installed at:") {
		t.Errorf("render includes metadata without the toggles:\n%s", got)
	}
}
