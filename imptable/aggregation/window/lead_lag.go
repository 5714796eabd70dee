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

// Lead implements LEAD(expr[, offset[, default]]): the operand evaluated
// offset rows ahead of the current row within the partition (ignoring
// frame bounds — LEAD/LAG look at the whole partition), or default (NULL
// if omitted) when that position falls outside the partition.
type Lead struct {
	resultType sql.Type
}

func NewLead(resultType sql.Type) Lead { return Lead{resultType: resultType} }

func (Lead) Reset() WinAggBuffer { return nil }

func (l Lead) Result(buf WinAggBuffer, ctx *WinAggContext, args []interface{}) (interface{}, error) {
	offset, defaultValue := leadLagArgs(args)
	target := ctx.CurrentPosition + offset
	if target < 0 || target >= ctx.PartitionRowCount {
		return defaultValue, nil
	}
	row := ctx.RowInPartition(target)
	return evalOperandFromRow(row, args), nil
}

func (l Lead) ResultType(operandTypes []sql.Type) sql.Type { return l.resultType.WithNullable(true) }

// NeedCacheWhenFrameIntact is false: LEAD's target row is a fixed offset
// from the current partition position, not derived from the frame, so it
// changes on every row regardless of whether the frame interval does.
func (Lead) NeedCacheWhenFrameIntact() bool { return false }

// Lag implements LAG(expr[, offset[, default]]): the mirror of Lead,
// looking offset rows behind the current row.
type Lag struct {
	resultType sql.Type
}

func NewLag(resultType sql.Type) Lag { return Lag{resultType: resultType} }

func (Lag) Reset() WinAggBuffer { return nil }

func (l Lag) Result(buf WinAggBuffer, ctx *WinAggContext, args []interface{}) (interface{}, error) {
	offset, defaultValue := leadLagArgs(args)
	target := ctx.CurrentPosition - offset
	if target < 0 || target >= ctx.PartitionRowCount {
		return defaultValue, nil
	}
	row := ctx.RowInPartition(target)
	return evalOperandFromRow(row, args), nil
}

func (l Lag) ResultType(operandTypes []sql.Type) sql.Type { return l.resultType.WithNullable(true) }

// NeedCacheWhenFrameIntact mirrors Lead's: position-relative, not
// frame-relative.
func (Lag) NeedCacheWhenFrameIntact() bool { return false }

// leadLagArgs reads the optional offset (args[1], default 1) and default
// value (args[2], default NULL) operands shared by LEAD and LAG. args[0]
// is reserved for the row-evaluator closure (see evalOperandFromRow).
func leadLagArgs(args []interface{}) (offset int, defaultValue interface{}) {
	offset = 1
	if len(args) > 1 && args[1] != nil {
		if n, ok := args[1].(int64); ok {
			offset = int(n)
		} else if n, ok := args[1].(int); ok {
			offset = n
		}
	}
	if len(args) > 2 {
		defaultValue = args[2]
	}
	return offset, defaultValue
}
