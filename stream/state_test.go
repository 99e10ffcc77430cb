package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndPeek(t *testing.T) {
	s := New([]rune("ab"))
	assert.Equal(t, 0, s.Position())
	assert.False(t, s.AtEnd())

	tok, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 'a', tok)
}

func TestAdvance(t *testing.T) {
	s := New([]rune("ab"))
	next := s.Advance()
	assert.Equal(t, 1, next.Position())
	tok, ok := next.Peek()
	require.True(t, ok)
	assert.Equal(t, 'b', tok)

	// the original state is unaffected by advancing its successor.
	assert.Equal(t, 0, s.Position())
}

func TestAtEndAndEmptyPeek(t *testing.T) {
	s := New([]rune{})
	assert.True(t, s.AtEnd())
	_, ok := s.Peek()
	assert.False(t, ok)
}

func TestInfoRoundTrip(t *testing.T) {
	s := New([]rune("x"))
	old, s1 := s.SetInfo("warnings", []string{"first"})
	assert.Nil(t, old)

	val, s2 := s1.GetInfo("warnings")
	assert.Equal(t, []string{"first"}, val)

	// GetInfo does not mutate.
	_, stillThere := s2.GetInfo("warnings")
	assert.Equal(t, []string{"first"}, stillThere)

	// the pre-set state is unaffected.
	absent, _ := s.GetInfo("warnings")
	assert.Nil(t, absent)
}

func TestUpdateInfo(t *testing.T) {
	s := New([]rune("x"))
	_, s1 := s.SetInfo("count", 1)
	old, s2 := s1.UpdateInfo("count", func(v any) any {
		return v.(int) + 1
	})
	assert.Equal(t, 1, old)
	val, _ := s2.GetInfo("count")
	assert.Equal(t, 2, val)
}

func TestMemoSharedAcrossAdvance(t *testing.T) {
	s := New([]rune("xy"))
	next := s.Advance()
	assert.Same(t, s.Memo(), next.Memo())
}
