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

// ReaderError is a hard failure raised by the grammar itself - one that bypasses
// backtracking entirely rather than simply letting a higher alternative try next.
type ReaderError struct {
	Label string
}

func (e *ReaderError) Error() string { return e.Label }

var errOddMap = &ReaderError{Label: "map literal requires an even number of forms"}
