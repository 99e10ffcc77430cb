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

// Package charrule provides convenience rules over rune tokens, built from the
// primitives and combinators in package rule: literal and set-literal matching,
// radix digits, and the small accumulator used to assemble multi-digit numbers.
package charrule

import (
	"strings"
	"unicode"

	R "github.com/fnparse-go/fnparse/rule"
)

// MapConc is conc(lit(c1), ..., lit(cn)) for the runes of s: matches s verbatim,
// producing the slice of matched runes.
func MapConc(s string) R.Rule[rune] {
	runes := []rune(s)
	rs := make([]R.Rule[rune], len(runes))
	for i, c := range runes {
		rs[i] = R.Lit(c)
	}
	return R.Conc(rs...)
}

// MapAlt is alt(fn(x1), ..., fn(xn)): the first rule built by fn over any element of
// coll that matches wins.
func MapAlt[X any](fn func(X) R.Rule[rune], coll []X) R.Rule[rune] {
	rs := make([]R.Rule[rune], len(coll))
	for i, x := range coll {
		rs[i] = fn(x)
	}
	return R.Alt(rs...)
}

// SetLit matches a single rune that is a member of chars. label is diagnostic only.
func SetLit(label string, chars string) R.Rule[rune] {
	return R.WithLabel(label, R.Term(func(c rune) bool {
		return strings.ContainsRune(chars, c)
	}))
}

// AntiLit matches a single rune unequal to c.
func AntiLit(c rune) R.Rule[rune] {
	return R.Term(func(x rune) bool { return x != c })
}

// AnythingExcept is except(anything, r): matches any one rune, provided r would not
// match at the same position.
func AnythingExcept(label string, r R.Rule[rune]) R.Rule[rune] {
	return R.WithLabel(label, R.Except(R.Anything[rune](), r))
}

// RadixDigit matches one rune that is a digit in the given base (2..36), producing
// its integer value. Letters are accepted case-insensitively.
func RadixDigit(base int) R.Rule[rune] {
	return R.Validate(
		R.Semantics(R.Anything[rune](), func(a any) any {
			return digitValue(a.(rune))
		}),
		func(p any) bool {
			v := p.(int)
			return v >= 0 && v < base
		},
	)
}

func digitValue(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// CascadingRepPlus is rep+(r) with an accumulator: the result folds step over the
// repetitions, seeded by init applied to the first product.
func CascadingRepPlus(r R.Rule[rune], init func(first any) any, step func(acc any, next any) any) R.Rule[rune] {
	return R.Semantics(R.RepPlus(r), func(p any) any {
		items := p.([]any)
		acc := init(items[0])
		for _, item := range items[1:] {
			acc = step(acc, item)
		}
		return acc
	})
}

// Lex treats r as atomic at the grammar level: on failure it restores to the pre-call
// state, exactly as conc already does - Lex exists purely to document that intent at
// call sites, not to change behavior.
func Lex(r R.Rule[rune]) R.Rule[rune] {
	return r
}

// IsWhitespace reports whether c is one of the Lisp reader's whitespace characters:
// space, comma, tab, newline.
func IsWhitespace(c rune) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\n'
}

// IsIndicator reports whether c is one of the Lisp reader's indicator characters.
func IsIndicator(c rune) bool {
	return strings.ContainsRune(`;()[]{}\"'@^`+"`#", c)
}

// IsSeparator reports whether c is whitespace or an indicator.
func IsSeparator(c rune) bool {
	return IsWhitespace(c) || IsIndicator(c)
}

// IsSymbolChar reports whether c may appear inside a symbol: anything that is not a
// separator.
func IsSymbolChar(c rune) bool {
	return !IsSeparator(c)
}

// IsLetter reports whether c is an ASCII letter, the class normal-symbol and
// ns-qualified-symbol both begin with.
func IsLetter(c rune) bool {
	return unicode.IsLetter(c) && c < unicode.MaxASCII
}
