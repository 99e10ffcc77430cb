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

package rule

import (
	"github.com/fnparse-go/fnparse/stream"
)

// Anything consumes exactly one token, regardless of its value, and produces it.
// Fails softly at end-of-input.
func Anything[T any]() Rule[T] {
	return New(func(s stream.State[T]) (Outcome[T], error) {
		tok, ok := s.Peek()
		if !ok {
			return failure[T]()
		}
		return success[T](tok, s.Advance())
	})
}

// Emptiness consumes no tokens and always succeeds, producing nil.
func Emptiness[T any]() Rule[T] {
	return New(func(s stream.State[T]) (Outcome[T], error) {
		return success[T](nil, s)
	})
}

// Nothing consumes no tokens and always fails softly.
func Nothing[T any]() Rule[T] {
	return New(func(stream.State[T]) (Outcome[T], error) {
		return failure[T]()
	})
}

// EndOfInput succeeds, producing nil, only when the state has no remaining tokens;
// otherwise fails softly without consuming anything.
func EndOfInput[T any]() Rule[T] {
	return New(func(s stream.State[T]) (Outcome[T], error) {
		if s.AtEnd() {
			return success[T](nil, s)
		}
		return failure[T]()
	})
}

// Term consumes one token and succeeds with it when pred accepts it; otherwise fails
// softly without consuming anything.
func Term[T any](pred func(T) bool) Rule[T] {
	return New(func(s stream.State[T]) (Outcome[T], error) {
		tok, ok := s.Peek()
		if !ok || !pred(tok) {
			return failure[T]()
		}
		return success[T](tok, s.Advance())
	})
}

// Lit matches a single token equal to tok.
func Lit[T comparable](tok T) Rule[T] {
	return Term(func(t T) bool { return t == tok })
}
