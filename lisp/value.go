// Copyright (c) 2024 IBM Corp.
// All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lisp implements a reader for a homoiconic Lisp dialect whose surface
// syntax is nearly identical to Clojure's: it turns a character stream into the
// Lisp value tree defined in this file, using the combinator core in package rule
// together with the character-level helpers in package charrule.
package lisp

import (
	"fmt"
	"math/big"
)

// Symbol is an unqualified or namespace-qualified identifier.
type Symbol struct {
	Namespace string
	Name      string
}

func (s Symbol) String() string {
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + "/" + s.Name
}

// Keyword is a symbol prefixed with `:` at the syntax level.
type Keyword struct {
	Namespace string
	Name      string
}

func (k Keyword) String() string {
	if k.Namespace == "" {
		return ":" + k.Name
	}
	return ":" + k.Namespace + "/" + k.Name
}

// Integer is an arbitrary-precision integer literal.
type Integer struct{ *big.Int }

// Rational is a numerator/denominator pair, reduced to lowest terms by math/big.
type Rational struct{ *big.Rat }

// Floating is a double-precision literal (the imprecise tail without a trailing M).
type Floating float64

// Decimal is an arbitrary-precision decimal literal (the imprecise tail with a
// trailing M).
type Decimal struct{ *big.Float }

// Character is a single Unicode scalar value read via a `\` character form.
type Character rune

// Str is a double-quoted string literal.
type Str string

// Bool is the reader's boolean value, produced by the peculiar symbols true/false.
type Bool bool

// Nil is the reader's singular nil value, produced by the peculiar symbol nil.
type Nil struct{}

// List is an ordered, homogeneous-in-nothing sequence read from `( )`. Wrapper forms
// (quote, syntax-quote, unquote, ...) are ordinary Lists whose head is a distinguished
// Symbol.
type List []any

// Vector is an ordered sequence read from `[ ]`.
type Vector []any

// MapEntry is one key/value pair of a Map, kept in source order.
type MapEntry struct {
	Key   any
	Value any
}

// Map is read from `{ }`, one entry per key/value pair in source order. The reader
// does not check keys for duplicates: a repeated key yields a second entry.
type Map []MapEntry

// Set is read from `#{ }`, one element per form in source order. The reader does not
// check elements for duplicates: a repeated element is kept.
type Set []any

// Equal reports whether a and b are the same Lisp value. Collections compare
// structurally and element-wise via Equal, never by Go's built-in == (which would
// panic on a slice-valued List/Vector/Map/Set).
func Equal(a, b any) bool {
	switch av := a.(type) {
	case List:
		bv, ok := b.(List)
		return ok && equalSlices(av, bv)
	case Vector:
		bv, ok := b.(Vector)
		return ok && equalSlices(av, bv)
	case Set:
		bv, ok := b.(Set)
		return ok && equalSetAsSlice(av, bv)
	case Map:
		bv, ok := b.(Map)
		return ok && equalMaps(av, bv)
	case Integer:
		bv, ok := b.(Integer)
		return ok && av.Cmp(bv.Int) == 0
	case Rational:
		bv, ok := b.(Rational)
		return ok && av.Cmp(bv.Rat) == 0
	case Decimal:
		bv, ok := b.(Decimal)
		return ok && av.Cmp(bv.Float) == 0
	default:
		return a == b
	}
}

func equalSlices(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalSetAsSlice(a, b Set) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, av := range a {
		found := false
		for i, bv := range b {
			if !used[i] && Equal(av, bv) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func equalMaps(a, b Map) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, ae := range a {
		found := false
		for i, be := range b {
			if !used[i] && Equal(ae.Key, be.Key) && Equal(ae.Value, be.Value) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// wrapper symbols for prefix and dispatch forms. Each prefix form reads as a List
// whose head is one of these.
var (
	symQuote           = Symbol{Name: "quote"}
	symSyntaxQuote     = Symbol{Name: "syntax-quote"}
	symUnquote         = Symbol{Name: "unquote"}
	symUnquoteSplicing = Symbol{Name: "unquote-splicing"}
	symDeref           = Symbol{Name: "deref"}
	symVar             = Symbol{Name: "var"}
	symMeta            = Symbol{Name: "meta"}
	symWithMeta        = Symbol{Name: "with-meta"}
	symMiniFn          = Symbol{Name: "mini-fn"}
)

func wrap(head Symbol, forms ...any) List {
	l := make(List, 0, len(forms)+1)
	l = append(l, head)
	l = append(l, forms...)
	return l
}

func (k Keyword) tagMap() Map {
	return Map{{Key: Keyword{Name: "tag"}, Value: k}}
}

func (s Symbol) tagMap() Map {
	return Map{{Key: Keyword{Name: "tag"}, Value: Keyword{Namespace: s.Namespace, Name: s.Name}}}
}

// GoString renders a debug form, used by tests and %#v formatting.
func (l List) GoString() string   { return fmt.Sprintf("List%v", []any(l)) }
func (v Vector) GoString() string { return fmt.Sprintf("Vector%v", []any(v)) }
