// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliopt

import (
	"errors"
	"strconv"
	"strings"
)

// Extended is a distinct float64-based type standing in for an
// extended-precision float. Go has no wider hardware float, but keeping
// Extended as its own declarable kind lets type checks tell it apart
// from a plain float64 option.
type Extended float64

// Scalar is the closed set of types an option value may hold. Note that
// int, int32 and int64 are three distinct kinds even though two of them
// share a width on 64-bit platforms.
type Scalar interface {
	bool | string | int | int32 | int64 | float32 | float64 | Extended
}

// Kind identifies the declared type of an option's value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindString
	KindInt
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindExtended
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindExtended:
		return "extended"
	}
	return "invalid"
}

// value is a tagged union over the supported scalar kinds. The zero value
// has KindInvalid and is what a required option holds before the user
// supplies something.
type value struct {
	kind Kind
	b    bool
	s    string
	i    int64
	f    float64
}

func valueOf[T Scalar](v T) value {
	switch v := any(v).(type) {
	case bool:
		return value{kind: KindBool, b: v}
	case string:
		return value{kind: KindString, s: v}
	case int:
		return value{kind: KindInt, i: int64(v)}
	case int32:
		return value{kind: KindInt32, i: int64(v)}
	case int64:
		return value{kind: KindInt64, i: v}
	case float32:
		return value{kind: KindFloat32, f: float64(v)}
	case float64:
		return value{kind: KindFloat64, f: v}
	case Extended:
		return value{kind: KindExtended, f: float64(v)}
	}
	panic("cliopt: type outside the Scalar set")
}

func kindOf[T Scalar]() Kind {
	var zero T
	return valueOf(zero).kind
}

// scalarOf converts v back to T. The caller must already have checked
// that T's kind matches v's kind.
func scalarOf[T Scalar](v value) T {
	var out any
	switch v.kind {
	case KindBool:
		out = v.b
	case KindString:
		out = v.s
	case KindInt:
		out = int(v.i)
	case KindInt32:
		out = int32(v.i)
	case KindInt64:
		out = v.i
	case KindFloat32:
		out = float32(v.f)
	case KindFloat64:
		out = v.f
	case KindExtended:
		out = Extended(v.f)
	default:
		panic("cliopt: value has no kind")
	}
	return out.(T)
}

var errBadBool = errors.New("boolean literal must be one of y, true, n, false")

// parseLiteral interprets a command-line token as a value of the given
// kind. Integer and float literals follow the strconv grammar; booleans
// accept exactly y/true/n/false, case-insensitively; strings are taken
// verbatim.
func parseLiteral(kind Kind, literal string) (value, error) {
	switch kind {
	case KindBool:
		switch strings.ToLower(literal) {
		case "y", "true":
			return value{kind: KindBool, b: true}, nil
		case "n", "false":
			return value{kind: KindBool, b: false}, nil
		}
		return value{}, errBadBool
	case KindString:
		return value{kind: KindString, s: literal}, nil
	case KindInt, KindInt32, KindInt64:
		i, err := strconv.ParseInt(literal, 10, intBitSize(kind))
		if err != nil {
			return value{}, err
		}
		return value{kind: kind, i: i}, nil
	case KindFloat32:
		f, err := strconv.ParseFloat(literal, 32)
		if err != nil {
			return value{}, err
		}
		return value{kind: KindFloat32, f: f}, nil
	case KindFloat64, KindExtended:
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return value{}, err
		}
		return value{kind: kind, f: f}, nil
	}
	panic("cliopt: literal parse for invalid kind")
}

func intBitSize(kind Kind) int {
	switch kind {
	case KindInt32:
		return 32
	case KindInt64:
		return 64
	}
	// bitSize 0 means the native int width.
	return 0
}
