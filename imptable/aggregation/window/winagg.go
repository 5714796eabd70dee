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

import "github.com/sungsoo/go-imptable/sql"

// WinAggBuffer is per-partition state a WinAggImplementor may keep across
// the positions of one partition (e.g. RANK's running rank counter).
type WinAggBuffer interface{}

// WinAggImplementor is the window-function counterpart of
// aggregation.AggImplementor: instead of folding over a frame it computes
// one value per output row directly from the WinAggContext, since most of
// this family (RANK, ROW_NUMBER, LEAD, NTILE) is defined by positional
// rules, not by folding frame rows through a commutative combinator.
type WinAggImplementor interface {
	// Reset is called once per partition, before its first row.
	Reset() WinAggBuffer
	// Result computes the value for the row at ctx.CurrentPosition.
	Result(buf WinAggBuffer, ctx *WinAggContext, args []interface{}) (interface{}, error)
	// ResultType returns the function's SQL return type given its operand
	// types (LEAD/LAG/FIRST_VALUE/LAST_VALUE return the input type made
	// nullable; RANK,
	// ROW_NUMBER and NTILE always return a non-null BIGINT).
	ResultType(operandTypes []sql.Type) sql.Type
	// NeedCacheWhenFrameIntact declares whether a caller driving several
	// consecutive rows whose frame interval hasn't changed may reuse a
	// cached Result rather than recomputing it — true for frame-bounded
	// reads like FIRST_VALUE/LAST_VALUE/COUNT-over-a-frame, false for
	// purely positional functions (RANK family, ROW_NUMBER, NTILE) and for
	// LEAD/LAG, whose result depends on partition position rather than
	// frame bounds and so gains nothing from the cache.
	NeedCacheWhenFrameIntact() bool
}
