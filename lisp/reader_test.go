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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadStringSuccess(t *testing.T) {
	got, err := ReadString("(1 2 3)")
	require.NoError(t, err)
	assert.True(t, Equal(List{Integer{big.NewInt(1)}, Integer{big.NewInt(2)}, Integer{big.NewInt(3)}}, got))
}

func TestReadStringSoftFailure(t *testing.T) {
	_, err := ReadString(")")
	require.Error(t, err)
	var synErr *SyntaxError
	assert.ErrorAs(t, err, &synErr)
}

func TestReadStringTrailingInput(t *testing.T) {
	_, err := ReadString("1 2")
	require.Error(t, err)
	var synErr *SyntaxError
	assert.ErrorAs(t, err, &synErr)
}

func TestReadStringHardFailure(t *testing.T) {
	_, err := ReadString("{:a}")
	require.Error(t, err)
	var readerErr *ReaderError
	assert.ErrorAs(t, err, &readerErr)
}

func TestReadAllStringOrdersForms(t *testing.T) {
	forms, err := ReadAllString("1 2 3")
	require.NoError(t, err)
	require.Len(t, forms, 3)
	assert.True(t, Equal(Integer{big.NewInt(1)}, forms[0]))
	assert.True(t, Equal(Integer{big.NewInt(2)}, forms[1]))
	assert.True(t, Equal(Integer{big.NewInt(3)}, forms[2]))
}

func TestReadAllStringEmptyDocument(t *testing.T) {
	forms, err := ReadAllString("  ")
	require.NoError(t, err)
	assert.Empty(t, forms)
}
