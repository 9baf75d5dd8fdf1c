// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliopt

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeclareThenHas(t *testing.T) {
	r := New("app", "test app")
	if r.Has("-n") {
		t.Fatal("Has(-n) = true before declaration")
	}
	if err := Declare[int](r, "-n", "an int"); err != nil {
		t.Fatalf("Declare(-n) error = %v", err)
	}
	if !r.Has("-n") {
		t.Fatal("Has(-n) = false after declaration")
	}
}

func TestDeclareDuplicate(t *testing.T) {
	r := New("app", "test app")
	if err := Declare[int](r, "-n", "an int"); err != nil {
		t.Fatalf("Declare(-n) error = %v", err)
	}

	tests := []struct {
		name    string
		declare func() error
	}{
		{"same kind", func() error { return Declare[int](r, "-n", "again") }},
		{"different kind", func() error { return Declare[string](r, "-n", "again") }},
		{"as optional", func() error { return DeclareOptional(r, "-n", "again", 3) }},
		{"as flag", func() error { return r.DeclareFlag("-n", "again") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dup *DuplicateOptionError
			if err := tt.declare(); !errors.As(err, &dup) {
				t.Fatalf("redeclare error = %v, want DuplicateOptionError", err)
			} else if dup.Name != "-n" {
				t.Errorf("DuplicateOptionError.Name = %q, want %q", dup.Name, "-n")
			}
		})
	}
}

func TestDeclareInvalidName(t *testing.T) {
	names := []string{"-q=fs3s", "=x", "a b", " lead", "trail ", "tab\there", "nl\nhere"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			r := New("app", "test app")
			var bad *InvalidNameError
			if err := Declare[string](r, name, "bad name"); !errors.As(err, &bad) {
				t.Fatalf("Declare(%q) error = %v, want InvalidNameError", name, err)
			}
			if r.Has(name) {
				t.Errorf("Has(%q) = true after rejected declaration", name)
			}
			if err := r.DeclareFlag(name, "bad name"); !errors.As(err, &bad) {
				t.Fatalf("DeclareFlag(%q) error = %v, want InvalidNameError", name, err)
			}
		})
	}
}

func TestNamesDeclarationOrder(t *testing.T) {
	r := New("app", "test app")
	if err := Declare[string](r, "-z", "last letter first"); err != nil {
		t.Fatal(err)
	}
	if err := DeclareOptional(r, "-a", "then a", int64(1)); err != nil {
		t.Fatal(err)
	}
	if err := r.DeclareFlag("--mid", "a flag in the middle"); err != nil {
		t.Fatal(err)
	}
	if err := Declare[float64](r, "-b", "and b"); err != nil {
		t.Fatal(err)
	}

	want := []string{"-z", "-a", "--mid", "-b"}
	if diff := cmp.Diff(want, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclareFlagDefaults(t *testing.T) {
	r := New("app", "test app")
	if err := r.DeclareFlag("--v", "verbose"); err != nil {
		t.Fatalf("DeclareFlag error = %v", err)
	}

	if flag, err := r.IsFlag("--v"); err != nil || !flag {
		t.Errorf("IsFlag(--v) = %v, %v, want true", flag, err)
	}
	if optional, err := r.IsOptional("--v"); err != nil || !optional {
		t.Errorf("IsOptional(--v) = %v, %v, want true", optional, err)
	}
	if set, err := r.IsSetByUser("--v"); err != nil || set {
		t.Errorf("IsSetByUser(--v) = %v, %v, want false", set, err)
	}
	if v, err := Get[bool](r, "--v"); err != nil || v {
		t.Errorf("Get[bool](--v) = %v, %v, want false", v, err)
	}
}

func TestRegistryMetadata(t *testing.T) {
	r := New("probe", "a probe")
	if r.AppName() != "probe" || r.AppDescription() != "a probe" {
		t.Errorf("metadata = %q, %q", r.AppName(), r.AppDescription())
	}
	if r.Version() != "" {
		t.Errorf("Version() = %q before SetVersion", r.Version())
	}
	r.SetVersion("2.1.0")
	if r.Version() != "2.1.0" {
		t.Errorf("Version() = %q, want 2.1.0", r.Version())
	}
}
