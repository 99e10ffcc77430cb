package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoLoadStore(t *testing.T) {
	m := NewMemo()
	key := MemoKey{RuleID: 1, Position: 0}

	_, ok := m.Load(key)
	assert.False(t, ok)

	m.Store(key, "result")
	val, ok := m.Load(key)
	assert.True(t, ok)
	assert.Equal(t, "result", val)
}

func TestMemoKeyDistinguishesPositionAndRule(t *testing.T) {
	m := NewMemo()
	m.Store(MemoKey{RuleID: 1, Position: 0}, "a")
	m.Store(MemoKey{RuleID: 1, Position: 1}, "b")
	m.Store(MemoKey{RuleID: 2, Position: 0}, "c")

	v0, _ := m.Load(MemoKey{RuleID: 1, Position: 0})
	v1, _ := m.Load(MemoKey{RuleID: 1, Position: 1})
	v2, _ := m.Load(MemoKey{RuleID: 2, Position: 0})

	assert.Equal(t, "a", v0)
	assert.Equal(t, "b", v1)
	assert.Equal(t, "c", v2)
}
