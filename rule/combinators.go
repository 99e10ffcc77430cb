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

// Validate runs r; on success, succeeds iff pred accepts the product.
func Validate[T any](r Rule[T], pred func(any) bool) Rule[T] {
	return New(func(s stream.State[T]) (Outcome[T], error) {
		out, err := r.Run(s)
		if err != nil {
			return out, err
		}
		p, ok := O.Unwrap(out)
		if !ok || !pred(P.Head(p)) {
			return failure[T]()
		}
		return out, nil
	})
}

// AntiValidate runs r; succeeds iff pred rejects the product. label is purely
// diagnostic and not inspected by the core.
func AntiValidate[T any](r Rule[T], pred func(any) bool, label string) Rule[T] {
	return Validate(r, func(a any) bool { return !pred(a) })
}

// Semantics runs r; on success replaces the product with f(product).
func Semantics[T any](r Rule[T], f func(any) any) Rule[T] {
	return New(func(s stream.State[T]) (Outcome[T], error) {
		out, err := r.Run(s)
		if err != nil {
			return out, err
		}
		p, ok := O.Unwrap(out)
		if !ok {
			return failure[T]()
		}
		return success[T](f(P.Head(p)), P.Tail(p))
	})
}

// ConstantSemantics runs r; on success replaces the product with the constant k.
func ConstantSemantics[T any](r Rule[T], k any) Rule[T] {
	return Semantics(r, func(any) any { return k })
}

// Conc sequentially composes rs: all must succeed in order, each consuming from the
// previous result's state. The product is the ordered slice of sub-products; any
// sub-failure fails the whole and restores the pre-call state. Conc is always
// memoized, per the combinator algebra's mandatory-memoization requirement - deeply
// nested grammars would otherwise re-traverse the same sub-trees repeatedly.
func Conc[T any](rs ...Rule[T]) Rule[T] {
	return Remember(New(func(s stream.State[T]) (Outcome[T], error) {
		products := make([]any, 0, len(rs))
		cur := s
		for _, r := range rs {
			out, err := r.Run(cur)
			if err != nil {
				return out, err
			}
			some, ok := O.Unwrap(out)
			if !ok {
				return failure[T]()
			}
			products = append(products, P.Head(some))
			cur = P.Tail(some)
		}
		return success[T](products, cur)
	}))
}

// Alt tries each of rs in order from the same state; the first success wins. All
// failing soft-fails the whole. A hard failure from any alternative escapes
// immediately without trying the rest.
func Alt[T any](rs ...Rule[T]) Rule[T] {
	return New(func(s stream.State[T]) (Outcome[T], error) {
		for _, r := range rs {
			out, err := r.Run(s)
			if err != nil {
				return out, err
			}
			if O.IsSome(out) {
				return out, nil
			}
		}
		return failure[T]()
	})
}

// Opt is alt(r, emptiness): always succeeds, with a nil product when r fails.
func Opt[T any](r Rule[T]) Rule[T] {
	return Alt(r, Emptiness[T]())
}

// RepStar is greedy zero-or-more: never fails. Consumes until r first fails from the
// current state, collecting products in order. The product is nil when no repetition
// matched, otherwise the ordered slice. Implemented iteratively - never mutually
// recursive with itself - so deep repetitions do not exhaust the call stack.
func RepStar[T any](r Rule[T]) Rule[T] {
	return New(func(s stream.State[T]) (Outcome[T], error) {
		var products []any
		cur := s
		for {
			out, err := r.Run(cur)
			if err != nil {
				return out, err
			}
			if O.IsNone(out) {
				break
			}
			p, _ := O.Unwrap(out)
			next := P.Tail(p)
			if next.Position() == cur.Position() {
				// r matched without consuming; stop to avoid looping forever.
				products = append(products, P.Head(p))
				cur = next
				break
			}
			products = append(products, P.Head(p))
			cur = next
		}
		return success[T](products, cur)
	})
}

// RepPlus is one-or-more: fails if the first invocation fails, else behaves like
// RepStar.
func RepPlus[T any](r Rule[T]) Rule[T] {
	return New(func(s stream.State[T]) (Outcome[T], error) {
		first, err := r.Run(s)
		if err != nil {
			return first, err
		}
		if O.IsNone(first) {
			return failure[T]()
		}
		p, _ := O.Unwrap(first)
		rest, err := RepStar(r).Run(P.Tail(p))
		if err != nil {
			return rest, err
		}
		restPair, _ := O.Unwrap(rest)
		restProducts, _ := P.Head(restPair).([]any)
		products := append([]any{P.Head(p)}, restProducts...)
		return success[T](products, P.Tail(restPair))
	})
}

func countOf(product any) int {
	if product == nil {
		return 0
	}
	s, _ := product.([]any)
	return len(s)
}

// RepEq succeeds iff rep*(r) matches exactly n repetitions.
func RepEq[T any](n int, r Rule[T]) Rule[T] {
	return Validate(RepStar(r), func(p any) bool { return countOf(p) == n })
}

// RepLess succeeds iff rep*(r) matches fewer than n repetitions.
func RepLess[T any](n int, r Rule[T]) Rule[T] {
	return Validate(RepStar(r), func(p any) bool { return countOf(p) < n })
}

// RepLessEq succeeds iff rep*(r) matches at most n repetitions.
func RepLessEq[T any](n int, r Rule[T]) Rule[T] {
	return Validate(RepStar(r), func(p any) bool { return countOf(p) <= n })
}

// FactorEq is the exact-count conc(r,...,r) n times.
func FactorEq[T any](n int, r Rule[T]) Rule[T] {
	rs := make([]Rule[T], n)
	for i := range rs {
		rs[i] = r
	}
	return Conc(rs...)
}

// FactorLess tries factor=(n-1,r), falling back to rep<(n,r); never fails.
func FactorLess[T any](n int, r Rule[T]) Rule[T] {
	if n <= 0 {
		return RepLess(n, r)
	}
	return Alt(FactorEq(n-1, r), RepLess(n, r))
}

// FactorLessEq tries factor=(n,r), falling back to rep<(n,r).
func FactorLessEq[T any](n int, r Rule[T]) Rule[T] {
	return Alt(FactorEq(n, r), RepLess(n, r))
}

// FollowedBy is positive lookahead: on success of r, yields r's product but restores
// the pre-call state; fails if r fails.
func FollowedBy[T any](r Rule[T]) Rule[T] {
	return New(func(s stream.State[T]) (Outcome[T], error) {
		out, err := r.Run(s)
		if err != nil {
			return out, err
		}
		p, ok := O.Unwrap(out)
		if !ok {
			return failure[T]()
		}
		return success[T](P.Head(p), s)
	})
}

// NotFollowedBy is negative lookahead: succeeds with product true iff r fails; never
// consumes.
func NotFollowedBy[T any](r Rule[T]) Rule[T] {
	return New(func(s stream.State[T]) (Outcome[T], error) {
		out, err := r.Run(s)
		if err != nil {
			return out, err
		}
		if O.IsSome(out) {
			return failure[T]()
		}
		return success[T](true, s)
	})
}

// Except succeeds with a's product iff a succeeds and b would fail at the same
// pre-call state.
func Except[T any](a, b Rule[T]) Rule[T] {
	return New(func(s stream.State[T]) (Outcome[T], error) {
		outA, err := a.Run(s)
		if err != nil {
			return outA, err
		}
		if O.IsNone(outA) {
			return failure[T]()
		}
		outB, err := b.Run(s)
		if err != nil {
			return outB, err
		}
		if O.IsSome(outB) {
			return failure[T]()
		}
		return outA, nil
	})
}

// PrefixConc matches conc(pre, main); the product is main's.
func PrefixConc[T any](pre, main Rule[T]) Rule[T] {
	return Semantics(Conc(pre, main), func(p any) any {
		return p.([]any)[1]
	})
}

// SuffixConc matches conc(main, post); the product is main's.
func SuffixConc[T any](main, post Rule[T]) Rule[T] {
	return Semantics(Conc(main, post), func(p any) any {
		return p.([]any)[0]
	})
}

// CircumfixConc matches conc(open, body, close); the product is body's.
func CircumfixConc[T any](open, body, close Rule[T]) Rule[T] {
	return Semantics(Conc(open, body, close), func(p any) any {
		return p.([]any)[1]
	})
}

// InvisiConc yields the first sub-product of conc(rs...) regardless of how many
// follow.
func InvisiConc[T any](rs ...Rule[T]) Rule[T] {
	return Semantics(Conc(rs...), func(p any) any {
		return p.([]any)[0]
	})
}

// WithLabel is a semantic no-op on success; a diagnostic annotation consulted only
// when a caller wants to report why a rule failed. The core itself does not inspect
// labels.
func WithLabel[T any](text string, r Rule[T]) Rule[T] {
	labeled := New(r.run)
	labeled.id = r.id
	labeled.label = text
	return labeled
}

// Effects succeeds with a nil product, invoking fn for its side effect on every
// application. The caller is responsible for fn's idempotence under backtracking.
func Effects[T any](fn func(stream.State[T])) Rule[T] {
	return New(func(s stream.State[T]) (Outcome[T], error) {
		fn(s)
		return success[T](nil, s)
	})
}

// Failpoint calls hook(remainder, state) when r fails, returning its result as the
// rule's own result - typically used to raise a hard error in place of a soft
// failure.
func Failpoint[T any](r Rule[T], hook func(remainder []T, s stream.State[T]) (Outcome[T], error)) Rule[T] {
	return New(func(s stream.State[T]) (Outcome[T], error) {
		out, err := r.Run(s)
		if err != nil {
			return out, err
		}
		if O.IsSome(out) {
			return out, nil
		}
		return hook(s.Remainder(), s)
	})
}

// Intercept wraps the evaluation of r so hook receives a thunk that, when invoked,
// runs r against the current state; hook's return is the rule's result. Used for
// bridging hard failures raised deeper in the grammar.
func Intercept[T any](r Rule[T], hook func(thunk func() (Outcome[T], error)) (Outcome[T], error)) Rule[T] {
	return New(func(s stream.State[T]) (Outcome[T], error) {
		return hook(func() (Outcome[T], error) { return r.Run(s) })
	})
}

// Remember wraps r with memoization keyed by (rule identity, position): the first
// invocation at a given position stores the result, subsequent invocations at that
// position return it directly without re-running r.
func Remember[T any](r Rule[T]) Rule[T] {
	memoized := New(func(s stream.State[T]) (Outcome[T], error) {
		key := stream.MemoKey{RuleID: uint64(r.id), Position: s.Position()}
		if cached, ok := s.Memo().Load(key); ok {
			entry := cached.(memoEntry[T])
			return entry.outcome, entry.err
		}
		out, err := r.Run(s)
		s.Memo().Store(key, memoEntry[T]{outcome: out, err: err})
		return out, err
	})
	memoized.id = r.id
	return memoized
}

type memoEntry[T any] struct {
	outcome Outcome[T]
	err     error
}

// GetState succeeds with the current state itself as product, consuming nothing.
func GetState[T any]() Rule[T] {
	return New(func(s stream.State[T]) (Outcome[T], error) {
		return success[T](s, s)
	})
}

// SetState replaces the state wholesale, succeeding with nil product.
func SetState[T any](next stream.State[T]) Rule[T] {
	return New(func(stream.State[T]) (Outcome[T], error) {
		return success[T](nil, next)
	})
}
