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

// Package window is the window-function half of the ImpTable: the
// RANK/ROW_NUMBER/FIRST_VALUE/LEAD/LAG/NTILE family. Frame boundaries
// reach the implementors as WinAggContext.StartIndex/EndIndex, which a
// caller can fill from a WindowFramer; FIRST_VALUE, LAST_VALUE and the
// window COUNT read them, while RANK, DENSE_RANK, ROW_NUMBER, NTILE, LEAD
// and LAG work from row positions and ignore the frame.
package window

import "github.com/sungsoo/go-imptable/sql"

// Interval is a half-open [Start, End) row interval within a partition.
type Interval struct {
	Start, End int
}

// SortField names one ORDER BY key of a window's partition ordering.
type SortField struct {
	Column     string
	Descending bool
}

// WinAggContext is what a WinAggImplementor sees at each output row: its
// position, the partition's bounds, the current frame's bounds, how to
// compare two rows under the window's ORDER BY, and whether the
// implementor wants its per-frame state cached across rows whose frame is
// unchanged (ROWS-mode frames can repeat for many consecutive rows).
type WinAggContext struct {
	CurrentPosition          int
	PartitionRowCount        int
	StartIndex, EndIndex     int
	CompareRows              func(i, j int) int
	RowInPartition           func(i int) sql.Row
	NeedCacheWhenFrameIntact bool
}

// FrameRowCount is the number of rows in the current frame.
func (c *WinAggContext) FrameRowCount() int { return c.EndIndex - c.StartIndex }

// WindowFramer computes the [start, end) frame interval for the row at
// position, given the partition's row count. Each framer encodes one
// frame specification (ROWS/RANGE, bounded/unbounded, preceding/
// following), independent of which aggregate or window function consumes
// it.
type WindowFramer interface {
	Frame(position, partitionRowCount int, ctx *WinAggContext) Interval
}

type framerFunc func(position, partitionRowCount int, ctx *WinAggContext) Interval

func (f framerFunc) Frame(position, partitionRowCount int, ctx *WinAggContext) Interval {
	return f(position, partitionRowCount, ctx)
}

// NewRowsUnboundedPrecedingToCurrentRowFramer is the default frame for a
// window with an ORDER BY and no explicit frame clause: every row from
// the partition's start through the current row.
func NewRowsUnboundedPrecedingToCurrentRowFramer() WindowFramer {
	return framerFunc(func(position, partitionRowCount int, ctx *WinAggContext) Interval {
		return Interval{Start: 0, End: position + 1}
	})
}

// NewRowsUnboundedPrecedingAndFollowingFramer is the whole-partition
// frame: used when a window has no ORDER BY at all.
func NewRowsUnboundedPrecedingAndFollowingFramer() WindowFramer {
	return framerFunc(func(position, partitionRowCount int, ctx *WinAggContext) Interval {
		return Interval{Start: 0, End: partitionRowCount}
	})
}

// NewRowsBetweenFramer is an explicit ROWS BETWEEN preceding AND
// following frame, both offsets relative to position and clamped to the
// partition's bounds.
func NewRowsBetweenFramer(preceding, following int) WindowFramer {
	return framerFunc(func(position, partitionRowCount int, ctx *WinAggContext) Interval {
		start := position - preceding
		if start < 0 {
			start = 0
		}
		end := position + following + 1
		if end > partitionRowCount {
			end = partitionRowCount
		}
		return Interval{Start: start, End: end}
	})
}

// NewRangeCurrentRowFramer is RANGE BETWEEN CURRENT ROW AND CURRENT ROW
// widened to every peer row (rows CompareRows treats as equal under the
// window's ORDER BY) the current row's frame shares.
func NewRangeCurrentRowFramer() WindowFramer {
	return framerFunc(func(position, partitionRowCount int, ctx *WinAggContext) Interval {
		start := position
		for start > 0 && ctx.CompareRows(start-1, position) == 0 {
			start--
		}
		end := position + 1
		for end < partitionRowCount && ctx.CompareRows(end, position) == 0 {
			end++
		}
		return Interval{Start: start, End: end}
	})
}
