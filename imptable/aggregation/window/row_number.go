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

// RowNumber implements ROW_NUMBER(): strictly increasing 1..n within a
// partition, ignoring ties entirely.
type RowNumber struct{}

func (RowNumber) Reset() WinAggBuffer { return nil }

func (RowNumber) Result(buf WinAggBuffer, ctx *WinAggContext, args []interface{}) (interface{}, error) {
	return int64(ctx.CurrentPosition) + 1, nil
}

func (RowNumber) ResultType(operandTypes []sql.Type) sql.Type { return sql.NewBigint(false) }

func (RowNumber) NeedCacheWhenFrameIntact() bool { return false }

// Ntile implements NTILE(n): divides the partition into n (as close to)
// equal-sized buckets, early buckets absorbing the remainder row when the
// partition size doesn't divide evenly, and returns the 1-based bucket
// number of the current row.
type Ntile struct {
	Buckets int
}

func NewNtile(buckets int) Ntile { return Ntile{Buckets: buckets} }

func (Ntile) Reset() WinAggBuffer { return nil }

func (n Ntile) Result(buf WinAggBuffer, ctx *WinAggContext, args []interface{}) (interface{}, error) {
	if n.Buckets <= 0 {
		return nil, nil
	}
	total := ctx.PartitionRowCount
	base := total / n.Buckets
	remainder := total % n.Buckets
	// The first `remainder` buckets get base+1 rows, the rest get base rows.
	bucketRowsBeforeOverflow := (base + 1) * remainder
	pos := ctx.CurrentPosition
	if pos < bucketRowsBeforeOverflow {
		return int64(pos/(base+1)) + 1, nil
	}
	if base == 0 {
		return int64(remainder), nil
	}
	return int64(remainder + (pos-bucketRowsBeforeOverflow)/base + 1), nil
}

func (Ntile) ResultType(operandTypes []sql.Type) sql.Type { return sql.NewBigint(false) }

func (Ntile) NeedCacheWhenFrameIntact() bool { return false }
