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

// Package match implements the matcher driver: it runs a top-level rule against an
// initial state, enforces "match-to-end", and dispatches to caller-supplied
// failure/incomplete callbacks.
package match

import (
	E "github.com/fnparse-go/fnparse/either"
	O "github.com/fnparse-go/fnparse/option"
	P "github.com/fnparse-go/fnparse/pair"
	R "github.com/fnparse-go/fnparse/rule"
	"github.com/fnparse-go/fnparse/stream"
)

// OnFailure is invoked when the rule fails softly at the outermost call; it receives
// the initial state and produces the match's product.
type OnFailure[T any] func(s stream.State[T]) any

// OnIncomplete is invoked when the rule succeeds but does not consume the whole
// input; it receives the product, the successor state, and the initial state.
type OnIncomplete[T any] func(product any, rest stream.State[T], initial stream.State[T]) any

// DefaultOnFailure and DefaultOnIncomplete both produce nil, the callbacks' default
// per the matcher driver's contract.
func DefaultOnFailure[T any](stream.State[T]) any { return nil }

func DefaultOnIncomplete[T any](any, stream.State[T], stream.State[T]) any { return nil }

// Match runs r against s. A hard failure escapes both callbacks and is reported as a
// [either.Left], unmodified - per the combinator core's error-handling design, hard
// failures bypass the driver entirely. A soft failure invokes onFailure; an
// incomplete success (unconsumed remainder) invokes onIncomplete; otherwise the
// product is wrapped in [either.Right]. Either's Left/Right shape gives callers a
// single return value that still distinguishes "the grammar raised an error" from
// "the grammar produced this value", without resorting to a second error return that
// would blur back into a rule's own soft-failure channel.
func Match[T any](r R.Rule[T], s stream.State[T], onFailure OnFailure[T], onIncomplete OnIncomplete[T]) E.Either[error, any] {
	out, err := r.Run(s)
	if err != nil {
		return E.Left[any](err)
	}
	p, ok := O.Unwrap(out)
	if !ok {
		return E.Right[error](onFailure(s))
	}
	product, next := P.Head(p), P.Tail(p)
	if !next.AtEnd() {
		return E.Right[error](onIncomplete(product, next, s))
	}
	return E.Right[error](product)
}
