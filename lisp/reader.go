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
	"fmt"

	E "github.com/fnparse-go/fnparse/either"
	M "github.com/fnparse-go/fnparse/match"
	"github.com/fnparse-go/fnparse/stream"
)

// SyntaxError is the soft-failure or incomplete-parse result surfaced by Read and
// ReadString - a position paired with a human-readable reason, as opposed to a
// *ReaderError, which signals a hard failure raised by the grammar itself (e.g. an
// odd-count map literal).
type SyntaxError struct {
	Position int
	Reason   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("lisp: %s at position %d", e.Reason, e.Position)
}

// Read parses a single top-level form from src, returning the Lisp value tree rooted
// at that form. An error is either a *SyntaxError (no form matched, or trailing input
// remained after a complete form) or a *ReaderError escaped from the grammar (e.g. an
// odd-count map literal).
func Read(src []rune) (any, error) {
	result := M.Match(Form(), stream.New(src),
		func(s stream.State[rune]) any {
			return &SyntaxError{Position: s.Position(), Reason: "no form recognized"}
		},
		func(_ any, rest stream.State[rune], _ stream.State[rune]) any {
			return &SyntaxError{Position: rest.Position(), Reason: "trailing input after form"}
		},
	)
	value, err := E.Unwrap(result)
	if err != nil {
		return nil, err
	}
	if synErr, ok := value.(*SyntaxError); ok {
		return nil, synErr
	}
	return value, nil
}

// ReadString is Read over the runes of src.
func ReadString(src string) (any, error) {
	return Read([]rune(src))
}

// ReadAll parses an entire document: a sequence of top-level forms up to end of
// input, returning them in source order.
func ReadAll(src []rune) ([]any, error) {
	result := M.Match(Document(), stream.New(src),
		func(s stream.State[rune]) any {
			return &SyntaxError{Position: s.Position(), Reason: "document did not parse"}
		},
		M.DefaultOnIncomplete[rune],
	)
	value, err := E.Unwrap(result)
	if err != nil {
		return nil, err
	}
	if synErr, ok := value.(*SyntaxError); ok {
		return nil, synErr
	}
	forms, _ := value.([]any)
	return forms, nil
}

// ReadAllString is ReadAll over the runes of src.
func ReadAllString(src string) ([]any, error) {
	return ReadAll([]rune(src))
}
