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

// FirstValue implements FIRST_VALUE(expr): the operand evaluated at the
// current frame's first row. The operand itself is evaluated by the
// caller and handed in through args, keyed by the frame's Start index.
type FirstValue struct {
	resultType sql.Type
}

func NewFirstValue(resultType sql.Type) FirstValue { return FirstValue{resultType: resultType} }

func (FirstValue) Reset() WinAggBuffer { return nil }

func (fv FirstValue) Result(buf WinAggBuffer, ctx *WinAggContext, args []interface{}) (interface{}, error) {
	if ctx.FrameRowCount() <= 0 {
		return nil, nil
	}
	row := ctx.RowInPartition(ctx.StartIndex)
	return evalOperandFromRow(row, args), nil
}

func (fv FirstValue) ResultType(operandTypes []sql.Type) sql.Type {
	return fv.resultType.WithNullable(true)
}

// NeedCacheWhenFrameIntact is true: FIRST_VALUE's result only depends on
// the frame's Start index, so consecutive rows sharing an unchanged frame
// (common under a ROWS-mode frame) can reuse the cached result instead of
// re-reading and re-evaluating the operand.
func (FirstValue) NeedCacheWhenFrameIntact() bool { return true }

// LastValue implements LAST_VALUE(expr): the operand at the current
// frame's last row.
type LastValue struct {
	resultType sql.Type
}

func NewLastValue(resultType sql.Type) LastValue { return LastValue{resultType: resultType} }

func (LastValue) Reset() WinAggBuffer { return nil }

func (lv LastValue) Result(buf WinAggBuffer, ctx *WinAggContext, args []interface{}) (interface{}, error) {
	if ctx.FrameRowCount() <= 0 {
		return nil, nil
	}
	row := ctx.RowInPartition(ctx.EndIndex - 1)
	return evalOperandFromRow(row, args), nil
}

func (lv LastValue) ResultType(operandTypes []sql.Type) sql.Type {
	return lv.resultType.WithNullable(true)
}

// NeedCacheWhenFrameIntact mirrors FirstValue's: the result depends only
// on the frame's End index.
func (LastValue) NeedCacheWhenFrameIntact() bool { return true }

// evalOperandFromRow is the seam between a WinAggImplementor and however
// the caller chooses to re-evaluate its operand expression against a
// different row of the partition than the one args was computed for.
// args[0] carries a func(sql.Row) interface{} closure built by the
// translator over the operand expression; FIRST_VALUE/LAST_VALUE/LEAD/LAG
// are exactly the functions in this family that need to look at a row
// other than the current one.
func evalOperandFromRow(row sql.Row, args []interface{}) interface{} {
	if len(args) == 0 {
		return nil
	}
	eval, ok := args[0].(func(sql.Row) interface{})
	if !ok {
		return nil
	}
	return eval(row)
}
