// Copyright (c) 2023 IBM Corp.
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

// package either implements the Either monad. The matcher driver uses it to report the
// outcome of a top-level parse: [Left] for a hard failure, [Right] for the matched product.
package either

import (
	F "github.com/fnparse-go/fnparse/function"
)

func MonadMap[E, A, B any](fa Either[E, A], f func(A) B) Either[E, B] {
	return MonadChain(fa, F.Flow2(f, Right[E, B]))
}

func Map[E, A, B any](f func(a A) B) func(Either[E, A]) Either[E, B] {
	return Chain(F.Flow2(f, Right[E, B]))
}

func MonadChain[E, A, B any](fa Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	return MonadFold(fa, Left[B, E], f)
}

func Chain[E, A, B any](f func(A) Either[E, B]) func(Either[E, A]) Either[E, B] {
	return F.Bind2nd(MonadChain[E, A, B], f)
}

func Fold[E, A, B any](onLeft func(e E) B, onRight func(a A) B) func(ma Either[E, A]) B {
	return func(ma Either[E, A]) B {
		return MonadFold(ma, onLeft, onRight)
	}
}

func MonadGetOrElse[E, A any](fa Either[E, A], onLeft func(E) A) A {
	return MonadFold(fa, onLeft, F.Identity[A])
}

func GetOrElse[E, A any](onLeft func(E) A) func(Either[E, A]) A {
	return Fold(onLeft, F.Identity[A])
}

// TryCatch builds an Either from a function that may fail; the error, if any, is mapped
// through onLeft to the left type.
func TryCatch[E, A any](f func() (A, error), onLeft func(error) E) Either[E, A] {
	a, err := f()
	if err != nil {
		return Left[A](onLeft(err))
	}
	return Right[E](a)
}
