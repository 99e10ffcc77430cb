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

	C "github.com/fnparse-go/fnparse/charrule"
	R "github.com/fnparse-go/fnparse/rule"
)

func bigDigits(base int) R.Rule[rune] {
	return C.CascadingRepPlus(C.RadixDigit(base),
		func(first any) any { return big.NewInt(int64(first.(int))) },
		func(acc any, next any) any {
			n := acc.(*big.Int)
			n = new(big.Int).Mul(n, big.NewInt(int64(base)))
			return n.Add(n, big.NewInt(int64(next.(int))))
		},
	)
}

// naturalNumber matches one-or-more base-10 digits, producing a *big.Int.
func naturalNumber() R.Rule[rune] {
	return bigDigits(10)
}

// digitRun matches zero-or-more base-10 digits, producing the slice of digit values
// (possibly empty) so callers can recover both the accumulated value and how many
// digits were read - the fractional tail needs the count to scale correctly, and an
// empty digit run (as in "16.") is itself meaningful.
func digitRun() R.Rule[rune] {
	return R.RepStar(C.RadixDigit(10))
}

func digitsToBigInt(products any) (*big.Int, int) {
	items, _ := products.([]any)
	n := new(big.Int)
	for _, item := range items {
		n.Mul(n, big.NewInt(10))
		n.Add(n, big.NewInt(int64(item.(int))))
	}
	return n, len(items)
}

func signRule() R.Rule[rune] {
	return R.Semantics(R.Opt(R.Alt(R.Lit('+'), R.Lit('-'))), func(p any) any {
		if p == nil || p.(rune) == '+' {
			return 1
		}
		return -1
	})
}

func applySign(sign int, n *big.Int) *big.Int {
	if sign < 0 {
		return new(big.Int).Neg(n)
	}
	return n
}

// formTerminator succeeds, consuming nothing, iff the next token is a separator or
// end-of-input.
func formTerminator() R.Rule[rune] {
	return R.Alt(
		R.FollowedBy(R.Term(C.IsSeparator)),
		R.EndOfInput[rune](),
	)
}

// radixTail matches `r` or `R` followed by digits in the base given by n, yielding
// sign*parsed as an Integer.
func radixTail(sign int, n *big.Int) R.Rule[rune] {
	base := int(n.Int64())
	if base < 2 || base > 36 {
		return R.Nothing[rune]()
	}
	return R.Semantics(
		R.PrefixConc(R.Alt(R.Lit('r'), R.Lit('R')), bigDigits(base)),
		func(p any) any {
			return Integer{applySign(sign, p.(*big.Int))}
		},
	)
}

// rationalTail matches `/` followed by a natural-number denominator. A zero
// denominator anti-validates to a soft failure - per the grammar's reconciliation of
// this case, the failure simply propagates upward as an ordinary non-match rather
// than escaping as a hard error, so e.g. "3/0" fails the whole number rule; number is
// the form's last alternative, so the form itself then fails as an ordinary non-match.
func rationalTail(sign int, numerator *big.Int) R.Rule[rune] {
	return R.AntiValidate(
		R.PrefixConc(R.Lit('/'), naturalNumber()),
		func(p any) bool { return p.(*big.Int).Sign() == 0 },
		"a fraction's denominator cannot be zero",
	)
}

func finishRational(sign int, numerator *big.Int, denomProduct any) any {
	denom := denomProduct.(*big.Int)
	rat := new(big.Rat).SetFrac(applySign(sign, numerator), denom)
	return Rational{rat}
}

// impreciseTail matches an optional fractional part and/or exponent, with an optional
// trailing M marking arbitrary precision. At least one of the three must actually be
// present - an empty match here would otherwise pre-empt the plain-integer empty tail
// for every bare natural number, since Opt never fails.
func impreciseTail() R.Rule[rune] {
	fractional := R.PrefixConc(R.Lit('.'), digitRun())
	exponentDigits := R.Complex(func(b *R.Bindings[rune]) any {
		b.Bind("", R.Alt(R.Lit('e'), R.Lit('E')))
		expSign := b.Bind("", signRule())
		digits := b.Bind("", naturalNumber())
		if b.Failed() {
			return nil
		}
		return expSign.(int) * int(digits.(*big.Int).Int64())
	})

	return R.Validate(
		R.Complex(func(b *R.Bindings[rune]) any {
			frac := b.Bind("frac", R.Opt(fractional))
			exp := b.Bind("exp", R.Opt(exponentDigits))
			precise := b.Bind("precise", R.Opt(R.Lit('M')))
			if b.Failed() {
				return nil
			}
			return impreciseResult{frac: frac, exp: exp, precise: precise}
		}),
		func(p any) bool {
			r := p.(impreciseResult)
			return r.frac != nil || r.exp != nil || r.precise != nil
		},
	)
}

type impreciseResult struct {
	frac    any
	exp     any
	precise any
}

func finishImprecise(sign int, whole *big.Int, r impreciseResult) any {
	fracInt, fracDigits := big.NewInt(0), 0
	if r.frac != nil {
		fracInt, fracDigits = digitsToBigInt(r.frac)
	}
	exp := 0
	if r.exp != nil {
		exp = r.exp.(int)
	}

	mantissa := new(big.Float).SetPrec(200).SetInt(whole)
	if fracDigits > 0 {
		scale := new(big.Float).SetPrec(200).SetInt(fracInt)
		divisor := new(big.Float).SetPrec(200).SetInt(pow10(fracDigits))
		scale.Quo(scale, divisor)
		mantissa.Add(mantissa, scale)
	}
	if sign < 0 {
		mantissa.Neg(mantissa)
	}

	if exp != 0 {
		mantissa.Mul(mantissa, pow10Float(exp))
	}

	if r.precise != nil {
		return Decimal{mantissa}
	}
	f64, _ := mantissa.Float64()
	return Floating(f64)
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func pow10Float(exp int) *big.Float {
	result := new(big.Float).SetPrec(200).SetInt64(1)
	ten := new(big.Float).SetPrec(200).SetInt64(10)
	if exp >= 0 {
		for i := 0; i < exp; i++ {
			result.Mul(result, ten)
		}
		return result
	}
	for i := 0; i < -exp; i++ {
		result.Quo(result, ten)
	}
	return result
}

// emptyTail yields the plain integer sign*whole - the fourth and default tail.
func emptyTail(sign int, whole *big.Int) any {
	return Integer{applySign(sign, whole)}
}

// numberRule matches a full number literal: optional sign, a base-10 natural number,
// then one of the radix/rational/imprecise/empty tails, followed by a form
// terminator. Ordering tries the tails most specific first so e.g. a rational's `/`
// is not swallowed by a radix attempt.
func numberRule() R.Rule[rune] {
	return R.Complex(func(b *R.Bindings[rune]) any {
		sign := b.Bind("", signRule())
		wholeProduct := b.Bind("", naturalNumber())
		if b.Failed() {
			return nil
		}
		whole := wholeProduct.(*big.Int)
		signVal := sign.(int)

		tail := R.Alt(
			R.Semantics(radixTail(signVal, whole), func(p any) any { return p }),
			R.Semantics(rationalTail(signVal, whole), func(p any) any {
				return finishRational(signVal, whole, p)
			}),
			R.Semantics(impreciseTail(), func(p any) any {
				return finishImprecise(signVal, whole, p.(impreciseResult))
			}),
			R.ConstantSemantics(R.Emptiness[rune](), emptyTail(signVal, whole)),
		)
		product := b.Bind("", tail)
		b.Bind("", formTerminator())
		if b.Failed() {
			return nil
		}
		return product
	})
}
