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

package lisp

import (
	"math/big"
	"testing"

	O "github.com/fnparse-go/fnparse/option"
	P "github.com/fnparse-go/fnparse/pair"
	"github.com/fnparse-go/fnparse/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readForm(t *testing.T, src string) any {
	t.Helper()
	out, err := Form().Run(stream.New([]rune(src)))
	require.NoError(t, err)
	p, ok := O.Unwrap(out)
	require.True(t, ok, "expected %q to match", src)
	return P.Head(p)
}

func requireNoMatch(t *testing.T, src string) {
	t.Helper()
	out, err := Form().Run(stream.New([]rune(src)))
	require.NoError(t, err)
	assert.False(t, O.IsSome(out), "expected %q not to match", src)
}

func TestEmptyList(t *testing.T) {
	got := readForm(t, "()")
	assert.True(t, Equal(List{}, got))
}

func TestImpreciseExponent(t *testing.T) {
	got := readForm(t, "55.2e2")
	assert.Equal(t, Floating(5520.0), got)
}

func TestRadixInteger(t *testing.T) {
	got := readForm(t, "16rFF")
	assert.True(t, Equal(Integer{big.NewInt(255)}, got))
}

func TestTrailingDot(t *testing.T) {
	got := readForm(t, "16.")
	assert.Equal(t, Floating(16.0), got)
}

func TestNamespacedKeyword(t *testing.T) {
	got := readForm(t, ":a/b")
	assert.Equal(t, Keyword{Namespace: "a", Name: "b"}, got)
}

func TestDeprecatedMeta(t *testing.T) {
	got := readForm(t, "^()")
	assert.True(t, Equal(List{symMeta, List{}}, got))
}

func TestZeroDenominatorFails(t *testing.T) {
	requireNoMatch(t, "3/0")
}

func TestDocumentUnquoteSplicing(t *testing.T) {
	out, err := Document().Run(stream.New([]rune("~@a ()")))
	require.NoError(t, err)
	p, ok := O.Unwrap(out)
	require.True(t, ok)
	got := P.Head(p).([]any)
	want := []any{
		List{symUnquoteSplicing, Symbol{Name: "a"}},
		List{},
	}
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, Equal(want[i], got[i]), "index %d: got %#v, want %#v", i, got[i], want[i])
	}
}

func TestNegativeImprecise(t *testing.T) {
	got := readForm(t, "-1.5")
	assert.Equal(t, Floating(-1.5), got)
}

func TestRationalLiteral(t *testing.T) {
	got := readForm(t, "3/4")
	want := Rational{big.NewRat(3, 4)}
	assert.True(t, Equal(want, got))
}

func TestStringWithEscapes(t *testing.T) {
	got := readForm(t, `"a\nb"`)
	assert.Equal(t, Str("a\nb"), got)
}

func TestVectorAndMap(t *testing.T) {
	vec := readForm(t, "[1 2 3]")
	assert.True(t, Equal(Vector{Integer{big.NewInt(1)}, Integer{big.NewInt(2)}, Integer{big.NewInt(3)}}, vec))

	m := readForm(t, "{:a 1}")
	assert.True(t, Equal(Map{{Key: Keyword{Name: "a"}, Value: Integer{big.NewInt(1)}}}, m))
}

func TestOddMapIsHardFailure(t *testing.T) {
	_, err := Form().Run(stream.New([]rune("{:a}")))
	assert.Error(t, err)
}

func TestSetLiteral(t *testing.T) {
	got := readForm(t, "#{1 2}")
	assert.True(t, Equal(Set{Integer{big.NewInt(1)}, Integer{big.NewInt(2)}}, got))
}

func TestQuoteForm(t *testing.T) {
	got := readForm(t, "'a")
	assert.True(t, Equal(List{symQuote, Symbol{Name: "a"}}, got))
}

func TestCharacterForm(t *testing.T) {
	got := readForm(t, `\newline`)
	assert.Equal(t, Character('\n'), got)

	got = readForm(t, `\a`)
	assert.Equal(t, Character('a'), got)
}

func TestPeculiarSymbols(t *testing.T) {
	assert.Equal(t, Nil{}, readForm(t, "nil"))
	assert.Equal(t, Bool(true), readForm(t, "true"))
	assert.Equal(t, Bool(false), readForm(t, "false"))
}
