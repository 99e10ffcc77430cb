package match

import (
	"errors"
	"testing"

	E "github.com/fnparse-go/fnparse/either"
	R "github.com/fnparse-go/fnparse/rule"
	"github.com/fnparse-go/fnparse/stream"
	"github.com/stretchr/testify/assert"
)

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func TestMatchSuccess(t *testing.T) {
	r := R.Term(isDigit)
	s := stream.New([]rune("1"))

	got := Match(r, s, DefaultOnFailure[rune], DefaultOnIncomplete[rune])
	assert.True(t, E.IsRight(got))
	val, _ := E.Unwrap(got)
	assert.Equal(t, '1', val)
}

func TestMatchSoftFailureInvokesOnFailure(t *testing.T) {
	r := R.Term(isDigit)
	s := stream.New([]rune("a"))

	got := Match(r, s, func(stream.State[rune]) any { return "no-match" }, DefaultOnIncomplete[rune])
	assert.True(t, E.IsRight(got))
	val, _ := E.Unwrap(got)
	assert.Equal(t, "no-match", val)
}

func TestMatchIncompleteInvokesOnIncomplete(t *testing.T) {
	r := R.Term(isDigit)
	s := stream.New([]rune("12"))

	got := Match(r, s, DefaultOnFailure[rune], func(product any, rest, initial stream.State[rune]) any {
		return rest.Position()
	})
	assert.True(t, E.IsRight(got))
	val, _ := E.Unwrap(got)
	assert.Equal(t, 1, val)
}

func TestMatchHardFailureEscapes(t *testing.T) {
	hardErr := errors.New("boom")
	r := R.Failpoint(R.Nothing[rune](), func(remainder []rune, s stream.State[rune]) (R.Outcome[rune], error) {
		var zero R.Outcome[rune]
		return zero, hardErr
	})
	s := stream.New([]rune("x"))

	got := Match(r, s, DefaultOnFailure[rune], DefaultOnIncomplete[rune])
	assert.True(t, E.IsLeft(got))
	_, errVal := E.Unwrap(got)
	assert.ErrorIs(t, errVal, hardErr)
}
