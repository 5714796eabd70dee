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

// CountWin is the window-specialized COUNT(expr) OVER (...): if the
// operand's type cannot be null, no row of the frame can be skipped, so
// the result is simply the frame's row count with no per-row work at all;
// otherwise it falls back to scanning the frame and counting non-null
// evaluations, the same per-row rule the regular (non-window) Count
// aggregate applies.
type CountWin struct {
	operandNullable bool
}

// NewCountWin builds a CountWin specialized for an operand of the given
// nullability (COUNT(*) should pass false: no operand can ever be null).
func NewCountWin(operandNullable bool) CountWin { return CountWin{operandNullable: operandNullable} }

func (CountWin) Reset() WinAggBuffer { return nil }

func (c CountWin) Result(buf WinAggBuffer, ctx *WinAggContext, args []interface{}) (interface{}, error) {
	if !c.operandNullable {
		return int64(ctx.FrameRowCount()), nil
	}
	var count int64
	for i := ctx.StartIndex; i < ctx.EndIndex; i++ {
		row := ctx.RowInPartition(i)
		if evalOperandFromRow(row, args) != nil {
			count++
		}
	}
	return count, nil
}

func (CountWin) ResultType(operandTypes []sql.Type) sql.Type { return sql.NewBigint(false) }

// NeedCacheWhenFrameIntact is true: like FIRST_VALUE/LAST_VALUE, the
// result depends only on the frame's bounds, so it can be cached across
// consecutive rows sharing an unchanged frame.
func (CountWin) NeedCacheWhenFrameIntact() bool { return true }
