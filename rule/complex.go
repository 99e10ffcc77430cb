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
	O "github.com/fnparse-go/fnparse/option"
	P "github.com/fnparse-go/fnparse/pair"
	"github.com/fnparse-go/fnparse/stream"
)

// Bindings threads state through a [Complex] body: each Bind runs a sub-rule against
// the current state, advances it on success, and records the product under name for
// later reference. Once a step fails (or a When guard rejects), every later Bind and
// When is a no-op and the whole complex rule fails - mirroring how a real monadic bind
// chain short-circuits.
type Bindings[T any] struct {
	state   stream.State[T]
	values  map[string]any
	failed  bool
	hardErr error
}

// State returns the binding chain's current state.
func (b *Bindings[T]) State() stream.State[T] {
	return b.state
}

// Get returns a previously bound value by name.
func (b *Bindings[T]) Get(name string) any {
	return b.values[name]
}

// Bind runs r against the chain's current state. On success the chain's state
// advances and, when name is non-empty, the product is recorded under name. The
// product is always returned so callers can use it inline without a Get.
func (b *Bindings[T]) Bind(name string, r Rule[T]) any {
	if b.failed || b.hardErr != nil {
		return nil
	}
	out, err := r.Run(b.state)
	if err != nil {
		b.hardErr = err
		return nil
	}
	p, ok := O.Unwrap(out)
	if !ok {
		b.failed = true
		return nil
	}
	b.state = P.Tail(p)
	val := P.Head(p)
	if name != "" {
		b.values[name] = val
	}
	return val
}

// When fails the whole chain unless pred holds - the binding analogue of the
// grammar's `:when pred` step.
func (b *Bindings[T]) When(pred bool) {
	if !b.failed && b.hardErr == nil && !pred {
		b.failed = true
	}
}

// Failed reports whether an earlier Bind or When has already doomed the chain, so a
// body can skip further work once it knows the rule cannot succeed.
func (b *Bindings[T]) Failed() bool {
	return b.failed || b.hardErr != nil
}

// Complex is the monadic-sugar binding combinator: body receives a fresh [Bindings]
// rooted at the call state, chains sub-rules through it with Bind and When, and
// returns the final product. If any step failed softly the whole rule fails softly;
// a hard error from any step escapes the same way it would from the step itself.
func Complex[T any](body func(b *Bindings[T]) any) Rule[T] {
	return New(func(s stream.State[T]) (Outcome[T], error) {
		b := &Bindings[T]{state: s, values: map[string]any{}}
		product := body(b)
		if b.hardErr != nil {
			out, _ := failure[T]()
			return out, b.hardErr
		}
		if b.failed {
			return failure[T]()
		}
		return success[T](product, b.state)
	})
}
