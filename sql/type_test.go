// Copyright 2024 The go-imptable Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoxednessOfPrimitiveKinds(t *testing.T) {
	require.Equal(t, Primitive, NewBigint(false).Boxedness())
	require.Equal(t, Box, NewBigint(true).Boxedness())
	require.True(t, NewInt(false).IsPrimitive())
	require.False(t, NewInt(true).IsPrimitive())
}

func TestBoxednessOfObjectKinds(t *testing.T) {
	// VARCHAR (and everything else not in the fixed primitive set) is
	// always reference-typed, nullable or not.
	require.Equal(t, Object, NewVarchar(false).Boxedness())
	require.Equal(t, Object, NewVarchar(true).Boxedness())
	require.False(t, NewVarchar(false).IsPrimitive())
}

func TestLeastRestrictivePromotesNumericRank(t *testing.T) {
	result, ok := LeastRestrictive([]Type{NewInt(false), NewBigint(false)})
	require.True(t, ok)
	require.Equal(t, Bigint, result.Kind)
	require.False(t, result.Nullable)
}

func TestLeastRestrictiveNullabilityIsOred(t *testing.T) {
	result, ok := LeastRestrictive([]Type{NewInt(false), NewBigint(true)})
	require.True(t, ok)
	require.Equal(t, Bigint, result.Kind)
	require.True(t, result.Nullable)
}

func TestLeastRestrictiveAnyAbsorbs(t *testing.T) {
	result, ok := LeastRestrictive([]Type{NewAny(false), NewVarchar(false)})
	require.True(t, ok)
	require.Equal(t, Varchar, result.Kind)
}

func TestLeastRestrictiveDecimalWidensPrecisionAndScale(t *testing.T) {
	result, ok := LeastRestrictive([]Type{NewDecimal(5, 2, false), NewDecimal(10, 4, false)})
	require.True(t, ok)
	require.Equal(t, 10, result.Precision)
	require.Equal(t, 4, result.Scale)
}

func TestLeastRestrictiveIncompatibleKindsFail(t *testing.T) {
	_, ok := LeastRestrictive([]Type{NewInterval(false), NewInt(false)})
	require.False(t, ok)
}

func TestLeastRestrictiveMatchingKindsAgree(t *testing.T) {
	result, ok := LeastRestrictive([]Type{NewVarchar(false), NewVarchar(true)})
	require.True(t, ok)
	require.Equal(t, Varchar, result.Kind)
	require.True(t, result.Nullable)
}

func TestTypeEqualsComparesArrayElementTypes(t *testing.T) {
	a := NewArrayType(NewVarchar(false), false)
	b := NewArrayType(NewVarchar(false), false)
	c := NewArrayType(NewInt(false), false)
	require.True(t, a.Equals(b))
	require.False(t, a.Equals(c))
}

func TestWithNullableCopiesRatherThanMutates(t *testing.T) {
	base := NewInt(false)
	nullable := base.WithNullable(true)
	require.False(t, base.Nullable)
	require.True(t, nullable.Nullable)
}

func TestHashAgreesWithEquals(t *testing.T) {
	a := NewArrayType(NewVarchar(false), false)
	b := NewArrayType(NewVarchar(false), false)
	c := NewArrayType(NewInt(false), false)

	ha, err := a.Hash()
	require.NoError(t, err)
	hb, err := b.Hash()
	require.NoError(t, err)
	hc, err := c.Hash()
	require.NoError(t, err)

	require.True(t, a.Equals(b))
	require.Equal(t, ha, hb)
	require.False(t, a.Equals(c))
	require.NotEqual(t, ha, hc)
}
