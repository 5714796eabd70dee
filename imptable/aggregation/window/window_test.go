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

package window

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sungsoo/go-imptable/sql"
)

// partitionOf int64 values, with an ORDER BY comparator over the values
// themselves, the shape RANK/DENSE_RANK/ROW_NUMBER tests want.
func partitionOf(values ...int64) (compareRows func(i, j int) int, rowAt func(i int) sql.Row) {
	rows := make([]sql.Row, len(values))
	for i, v := range values {
		rows[i] = sql.NewRow(v)
	}
	compareRows = func(i, j int) int {
		a, b := values[i], values[j]
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	rowAt = func(i int) sql.Row { return rows[i] }
	return compareRows, rowAt
}

func runOverPartition(t *testing.T, impl WinAggImplementor, values []int64) []interface{} {
	t.Helper()
	compareRows, rowAt := partitionOf(values...)
	buf := impl.Reset()
	out := make([]interface{}, len(values))
	for i := range values {
		ctx := &WinAggContext{
			CurrentPosition:   i,
			PartitionRowCount: len(values),
			StartIndex:        0,
			EndIndex:          i + 1,
			CompareRows:       compareRows,
			RowInPartition:    rowAt,
		}
		v, err := impl.Result(buf, ctx, nil)
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

func TestRowNumber(t *testing.T) {
	out := runOverPartition(t, RowNumber{}, []int64{10, 20, 20, 30})
	require.Equal(t, []interface{}{int64(1), int64(2), int64(3), int64(4)}, out)
}

func TestRankWithTies(t *testing.T) {
	// values: 10, 20, 20, 30 -> ranks 1, 2, 2, 4 (gap after the tie)
	out := runOverPartition(t, Rank{}, []int64{10, 20, 20, 30})
	require.Equal(t, []interface{}{int64(1), int64(2), int64(2), int64(4)}, out)
}

func TestDenseRankWithTies(t *testing.T) {
	// values: 10, 20, 20, 30 -> dense ranks 1, 2, 2, 3 (no gap)
	out := runOverPartition(t, DenseRank{}, []int64{10, 20, 20, 30})
	require.Equal(t, []interface{}{int64(1), int64(2), int64(2), int64(3)}, out)
}

func TestNtileEvenSplit(t *testing.T) {
	n := NewNtile(2)
	ctxFor := func(pos, total int) *WinAggContext {
		return &WinAggContext{CurrentPosition: pos, PartitionRowCount: total}
	}
	out := make([]interface{}, 4)
	for i := 0; i < 4; i++ {
		v, err := n.Result(nil, ctxFor(i, 4), nil)
		require.NoError(t, err)
		out[i] = v
	}
	require.Equal(t, []interface{}{int64(1), int64(1), int64(2), int64(2)}, out)
}

func TestNtileUnevenSplitGivesFirstBucketsTheRemainder(t *testing.T) {
	n := NewNtile(3)
	ctxFor := func(pos, total int) *WinAggContext {
		return &WinAggContext{CurrentPosition: pos, PartitionRowCount: total}
	}
	// 7 rows into 3 buckets: sizes 3, 2, 2.
	var out []int64
	for i := 0; i < 7; i++ {
		v, err := n.Result(nil, ctxFor(i, 7), nil)
		require.NoError(t, err)
		out = append(out, v.(int64))
	}
	require.Equal(t, []int64{1, 1, 1, 2, 2, 3, 3}, out)
}

func TestLeadLagBoundaries(t *testing.T) {
	_, rowAt := partitionOf(10, 20, 30)
	evalSelf := func(row sql.Row) interface{} { return row[0] }

	lead := NewLead(sql.NewBigint(true))
	lag := NewLag(sql.NewBigint(true))

	ctx := &WinAggContext{CurrentPosition: 0, PartitionRowCount: 3, RowInPartition: rowAt}
	v, err := lead.Result(nil, ctx, []interface{}{evalSelf})
	require.NoError(t, err)
	require.Equal(t, int64(20), v)

	v, err = lag.Result(nil, ctx, []interface{}{evalSelf})
	require.NoError(t, err)
	require.Nil(t, v)

	ctxLast := &WinAggContext{CurrentPosition: 2, PartitionRowCount: 3, RowInPartition: rowAt}
	v, err = lead.Result(nil, ctxLast, []interface{}{evalSelf})
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestFirstLastValue(t *testing.T) {
	_, rowAt := partitionOf(10, 20, 30)
	evalSelf := func(row sql.Row) interface{} { return row[0] }

	first := NewFirstValue(sql.NewBigint(false))
	last := NewLastValue(sql.NewBigint(false))

	ctx := &WinAggContext{StartIndex: 0, EndIndex: 2, RowInPartition: rowAt}
	v, err := first.Result(nil, ctx, []interface{}{evalSelf})
	require.NoError(t, err)
	require.Equal(t, int64(10), v)

	v, err = last.Result(nil, ctx, []interface{}{evalSelf})
	require.NoError(t, err)
	require.Equal(t, int64(20), v)
}

func TestFramers(t *testing.T) {
	unbounded := NewRowsUnboundedPrecedingToCurrentRowFramer()
	require.Equal(t, Interval{Start: 0, End: 3}, unbounded.Frame(2, 5, nil))

	whole := NewRowsUnboundedPrecedingAndFollowingFramer()
	require.Equal(t, Interval{Start: 0, End: 5}, whole.Frame(2, 5, nil))

	between := NewRowsBetweenFramer(1, 1)
	require.Equal(t, Interval{Start: 1, End: 4}, between.Frame(2, 5, nil))
	require.Equal(t, Interval{Start: 0, End: 2}, between.Frame(0, 5, nil))
}

func TestRegistryLookup(t *testing.T) {
	require.NotNil(t, Get(sql.OpRank))
	require.NotNil(t, Get(sql.OpLead))
	require.NotNil(t, Get(sql.OpCount))
	require.Nil(t, Get(sql.Op("NOT_A_WINDOW_FUNCTION")))
}

func TestCountWinNonNullableOperandSkipsScan(t *testing.T) {
	c := NewCountWin(false)
	ctx := &WinAggContext{StartIndex: 1, EndIndex: 4}
	v, err := c.Result(nil, ctx, nil)
	require.NoError(t, err)
	require.Equal(t, int64(3), v)
}

func TestCountWinNullableOperandSkipsNulls(t *testing.T) {
	rows := []sql.Row{sql.NewRow(int64(1)), sql.NewRow(nil), sql.NewRow(int64(3))}
	rowAt := func(i int) sql.Row { return rows[i] }
	evalSelf := func(row sql.Row) interface{} { return row[0] }

	c := NewCountWin(true)
	ctx := &WinAggContext{StartIndex: 0, EndIndex: 3, RowInPartition: rowAt}
	v, err := c.Result(nil, ctx, []interface{}{evalSelf})
	require.NoError(t, err)
	require.Equal(t, int64(2), v)
}

func TestNeedCacheWhenFrameIntactCapability(t *testing.T) {
	require.False(t, Rank{}.NeedCacheWhenFrameIntact())
	require.False(t, DenseRank{}.NeedCacheWhenFrameIntact())
	require.False(t, RowNumber{}.NeedCacheWhenFrameIntact())
	require.False(t, Ntile{}.NeedCacheWhenFrameIntact())
	require.False(t, Lead{}.NeedCacheWhenFrameIntact())
	require.False(t, Lag{}.NeedCacheWhenFrameIntact())
	require.True(t, FirstValue{}.NeedCacheWhenFrameIntact())
	require.True(t, LastValue{}.NeedCacheWhenFrameIntact())
	require.True(t, CountWin{}.NeedCacheWhenFrameIntact())
}
