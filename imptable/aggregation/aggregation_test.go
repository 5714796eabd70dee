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

package aggregation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sungsoo/go-imptable/imptable/aggregation/window"
	"github.com/sungsoo/go-imptable/sql"
)

func runAgg(t *testing.T, impl AggImplementor, rows [][]interface{}) interface{} {
	t.Helper()
	buf := impl.Reset()
	for _, row := range rows {
		require.NoError(t, impl.Add(buf, row))
	}
	result, err := impl.Result(buf)
	require.NoError(t, err)
	return result
}

func TestSum(t *testing.T) {
	s := NewSum(sql.Double)

	testCases := []struct {
		name     string
		rows     [][]interface{}
		expected interface{}
	}{
		{"string int values", [][]interface{}{{"1"}, {"2"}, {"3"}, {"4"}}, 10.0},
		{"string float values", [][]interface{}{{"1.5"}, {"2"}, {"3"}, {"4"}}, 10.5},
		{"float values", [][]interface{}{{1.}, {2.5}, {3.}, {4.}}, 10.5},
		{"no rows", [][]interface{}{}, nil},
		{"nil values", [][]interface{}{{nil}, {nil}}, nil},
		{"int64 values", [][]interface{}{{int64(1)}, {int64(3)}}, 4.0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, runAgg(t, s, tt.rows))
		})
	}
}

func TestSumZeroWhenEmpty(t *testing.T) {
	s0 := NewSumZero(sql.Bigint)
	require.Equal(t, int64(0), runAgg(t, s0, nil))
}

func TestSumMerge(t *testing.T) {
	s := NewSum(sql.Bigint)
	bufA := s.Reset()
	require.NoError(t, s.Add(bufA, []interface{}{int64(1)}))
	require.NoError(t, s.Add(bufA, []interface{}{int64(2)}))

	bufB := s.Reset()
	require.NoError(t, s.Add(bufB, []interface{}{int64(3)}))

	require.NoError(t, s.Merge(bufA, bufB))
	result, err := s.Result(bufA)
	require.NoError(t, err)
	require.Equal(t, int64(6), result)
}

func TestCount(t *testing.T) {
	c := Count{}
	require.Equal(t, int64(3), runAgg(t, c, [][]interface{}{{int64(1)}, {nil}, {int64(2)}, {int64(3)}}))
	require.Equal(t, int64(0), runAgg(t, c, nil))
}

func TestCountStar(t *testing.T) {
	c := Count{}
	// COUNT(*) is called with no operands: every row counts, null or not.
	require.Equal(t, int64(3), runAgg(t, c, [][]interface{}{{}, {}, {}}))
}

func TestMinMax(t *testing.T) {
	min := NewMin(defaultCompare, sql.NewBigint(false))
	max := NewMax(defaultCompare, sql.NewBigint(false))
	rows := [][]interface{}{{int64(5)}, {int64(1)}, {nil}, {int64(9)}, {int64(3)}}

	require.Equal(t, int64(1), runAgg(t, min, rows))
	require.Equal(t, int64(9), runAgg(t, max, rows))
}

func TestMinMaxAllNull(t *testing.T) {
	min := NewMin(defaultCompare, sql.NewBigint(false))
	require.Nil(t, runAgg(t, min, [][]interface{}{{nil}, {nil}}))
}

func TestSingleValueErrorsOnSecondRow(t *testing.T) {
	sv := NewSingleValue(sql.NewBigint(true))
	buf := sv.Reset()
	require.NoError(t, sv.Add(buf, []interface{}{int64(1)}))
	err := sv.Add(buf, []interface{}{int64(2)})
	require.Error(t, err)
	require.True(t, sql.ErrSingleValueMoreThanOne.Is(err))
}

func TestAvg(t *testing.T) {
	a := NewAvg(sql.Double)
	require.Equal(t, 2.5, runAgg(t, a, [][]interface{}{{int64(1)}, {int64(2)}, {int64(3)}, {int64(4)}}))
	require.Nil(t, runAgg(t, a, nil))
}

func TestBitwise(t *testing.T) {
	and := NewBitAnd(sql.NewBigint(false))
	or := NewBitOr(sql.NewBigint(false))
	xor := NewBitXor(sql.NewBigint(false))
	rows := [][]interface{}{{int64(0b1100)}, {int64(0b1010)}}

	require.Equal(t, int64(0b1000), runAgg(t, and, rows))
	require.Equal(t, int64(0b1110), runAgg(t, or, rows))
	require.Equal(t, int64(0b0110), runAgg(t, xor, rows))
}

func TestRegistryLookup(t *testing.T) {
	require.NotNil(t, Get(sql.OpSum))
	require.NotNil(t, Get(sql.OpCount))
	require.NotNil(t, Get(sql.OpAvg))
	require.Nil(t, Get(sql.Op("NOT_AN_OPERATOR")))
}

func TestGetForCallPrefersWindowVariantWhenRequested(t *testing.T) {
	result, err := GetForCall(sql.OpRank, true, nil, nil)
	require.NoError(t, err)
	_, ok := result.(window.WinAggImplementor)
	require.True(t, ok, "RANK requested in window context should come back as a WinAggImplementor, got %T", result)
}

func TestGetForCallFallsBackToRegularAggregateInWindowContext(t *testing.T) {
	// SUM has no window-specialized variant: per the spec, regular
	// aggregates are themselves usable in window context.
	result, err := GetForCall(sql.OpSum, true, nil, []sql.Type{sql.NewBigint(false)})
	require.NoError(t, err)
	_, ok := result.(AggImplementor)
	require.True(t, ok, "SUM should fall back to the regular AggImplementor, got %T", result)
}

func TestGetForCallNonWindowUsesRegularAggregate(t *testing.T) {
	result, err := GetForCall(sql.OpCount, false, nil, nil)
	require.NoError(t, err)
	_, ok := result.(AggImplementor)
	require.True(t, ok)
}

func TestGetForCallUnknownOperatorWithNoUDAFFails(t *testing.T) {
	_, err := GetForCall(sql.Op("NOT_AN_OPERATOR"), false, nil, nil)
	require.Error(t, err)
	require.True(t, sql.ErrUnknownOperator.Is(err))
}

func TestGetForCallInvalidUDAFCapabilityFails(t *testing.T) {
	_, err := GetForCall(sql.Op("MY_UDAF"), false, "not a UDAFFactory", nil)
	require.Error(t, err)
	require.True(t, sql.ErrInvalidUDF.Is(err))
}

func TestGetForCallValidUDAFFallsBackOnMiss(t *testing.T) {
	factory := UDAFFactoryFunc(func(operandTypes []sql.Type) (AggImplementor, error) {
		return NewSum(sql.Bigint), nil
	})
	result, err := GetForCall(sql.Op("MY_UDAF"), false, factory, nil)
	require.NoError(t, err)
	require.NotNil(t, result)
}
