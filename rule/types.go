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

// Package rule implements the parser-combinator algebra: primitive rules and the
// combinators that build larger rules from smaller ones. A [Rule] is an opaque value
// behaving as a function from a [stream.State] to an [Outcome]; rules are first-class,
// so a grammar built from them can be passed around, stored in variables and composed
// with ordinary function application.
package rule

import (
	"sync/atomic"

	O "github.com/fnparse-go/fnparse/option"
	P "github.com/fnparse-go/fnparse/pair"
	"github.com/fnparse-go/fnparse/stream"
)

// ID is a rule's construction-time identity, used as half of a memo key. Two rules
// built from structurally identical combinator calls still get distinct IDs - a hash
// of structure is not a safe substitute, since two structurally identical rules can
// carry divergent side effects (see [Effects]).
type ID uint64

var idCounter uint64

func nextID() ID {
	return ID(atomic.AddUint64(&idCounter, 1))
}

// Outcome is a rule's soft-failure-aware result at one position: [option.None] for a
// soft failure (no further information), [option.Some] of the product paired with the
// successor state on success.
type Outcome[T any] = O.Option[P.Pair[any, stream.State[T]]]

func success[T any](product any, s stream.State[T]) (Outcome[T], error) {
	return O.Some(P.MakePair(product, s)), nil
}

func failure[T any]() (Outcome[T], error) {
	return O.None[P.Pair[any, stream.State[T]]](), nil
}

// Rule is an opaque, first-class parse step: given a state it either succeeds,
// producing a value and a successor state, or fails softly, or escapes with a hard
// error that bypasses the rest of the algebra entirely.
type Rule[T any] struct {
	id    ID
	label string
	run   func(stream.State[T]) (Outcome[T], error)
}

// New wraps run as a [Rule], assigning it a fresh identity.
func New[T any](run func(stream.State[T]) (Outcome[T], error)) Rule[T] {
	return Rule[T]{id: nextID(), run: run}
}

// ID returns the rule's construction-time identity.
func (r Rule[T]) ID() ID {
	return r.id
}

// Label returns the diagnostic label attached via [WithLabel], or "" if none.
func (r Rule[T]) Label() string {
	return r.label
}

// Run applies the rule to s. A non-nil error is a hard failure and must not be
// interpreted as a soft failure by callers composing rules.
func (r Rule[T]) Run(s stream.State[T]) (Outcome[T], error) {
	return r.run(s)
}

// Forward supports mutually recursive grammars: construct the placeholder with
// NewForward, hand out its Rule() to every consumer, and Set the real definition once
// it is available. Running a proxy from Rule() before Set panics, matching the combinator core's
// assumption that a grammar's forward references are resolved before any parse runs.
type Forward[T any] struct {
	target *Rule[T]
}

// NewForward allocates an unresolved forward reference.
func NewForward[T any]() *Forward[T] {
	return &Forward[T]{target: new(Rule[T])}
}

// Set binds the forward reference to its real rule. Must be called exactly once,
// before Rule() is ever run.
func (f *Forward[T]) Set(r Rule[T]) {
	*f.target = r
}

// Rule returns a proxy that runs whatever Set most recently installed.
func (f *Forward[T]) Rule() Rule[T] {
	target := f.target
	return New(func(s stream.State[T]) (Outcome[T], error) {
		if target.run == nil {
			panic("rule: Forward used before Set")
		}
		return target.Run(s)
	})
}
