package charrule

import (
	"testing"

	O "github.com/fnparse-go/fnparse/option"
	P "github.com/fnparse-go/fnparse/pair"
	R "github.com/fnparse-go/fnparse/rule"
	"github.com/fnparse-go/fnparse/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(out R.Outcome[rune]) any {
	p, _ := O.Unwrap(out)
	return P.Head(p)
}

func TestMapConc(t *testing.T) {
	r := MapConc("abc")
	s := stream.New([]rune("abcd"))
	out, err := r.Run(s)
	require.NoError(t, err)
	require.True(t, O.IsSome(out))
	assert.Equal(t, []any{'a', 'b', 'c'}, product(out))
}

func TestMapAlt(t *testing.T) {
	r := MapAlt(func(c rune) R.Rule[rune] { return R.Lit(c) }, []rune{'x', 'y', 'z'})
	s := stream.New([]rune("y"))
	out, err := r.Run(s)
	require.NoError(t, err)
	assert.True(t, O.IsSome(out))
}

func TestSetLitAndAntiLit(t *testing.T) {
	set := SetLit("vowel", "aeiou")
	out, err := set.Run(stream.New([]rune("e")))
	require.NoError(t, err)
	assert.True(t, O.IsSome(out))

	out, err = set.Run(stream.New([]rune("x")))
	require.NoError(t, err)
	assert.False(t, O.IsSome(out))

	anti := AntiLit('x')
	out, err = anti.Run(stream.New([]rune("x")))
	require.NoError(t, err)
	assert.False(t, O.IsSome(out))
}

func TestRadixDigit(t *testing.T) {
	hex := RadixDigit(16)

	out, err := hex.Run(stream.New([]rune("F")))
	require.NoError(t, err)
	require.True(t, O.IsSome(out))
	assert.Equal(t, 15, product(out))

	out, err = hex.Run(stream.New([]rune("g")))
	require.NoError(t, err)
	assert.False(t, O.IsSome(out))
}

func TestCascadingRepPlus(t *testing.T) {
	digit := RadixDigit(10)
	number := CascadingRepPlus(digit,
		func(first any) any { return first },
		func(acc any, next any) any { return acc.(int)*10 + next.(int) },
	)

	out, err := number.Run(stream.New([]rune("123a")))
	require.NoError(t, err)
	require.True(t, O.IsSome(out))
	assert.Equal(t, 123, product(out))
}

func TestIsSeparatorAndSymbolChar(t *testing.T) {
	assert.True(t, IsSeparator(' '))
	assert.True(t, IsSeparator('('))
	assert.False(t, IsSeparator('a'))
	assert.True(t, IsSymbolChar('a'))
	assert.False(t, IsSymbolChar('('))
}
