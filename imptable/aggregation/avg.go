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
	"github.com/shopspring/decimal"

	"github.com/sungsoo/go-imptable/sql"
)

type avgBuffer struct {
	sum   decimal.Decimal
	count int64
}

// Avg is a derived aggregate: a [sum, count] accumulator pair, the result
// being sum/count (NULL when count is zero). It is registered under
// sql.OpAvg like the other aggregates and composes directly out of Sum's
// own decimal accumulation, the way the teacher's AVG shares SUM's machinery.
type Avg struct {
	StrictBase
	resultKind sql.Kind
}

func NewAvg(resultKind sql.Kind) Avg { return Avg{resultKind: resultKind} }

func (Avg) Reset() Buffer { return &avgBuffer{} }

func (a Avg) Add(buf Buffer, args []interface{}) error {
	b := buf.(*avgBuffer)
	if a.AnyNull(args) {
		return nil
	}
	d, err := toDecimal(args[0])
	if err != nil {
		return err
	}
	b.sum = b.sum.Add(d)
	b.count++
	return nil
}

func (Avg) Merge(buf, other Buffer) error {
	b, o := buf.(*avgBuffer), other.(*avgBuffer)
	b.sum = b.sum.Add(o.sum)
	b.count += o.count
	return nil
}

func (a Avg) Result(buf Buffer) (interface{}, error) {
	b := buf.(*avgBuffer)
	if b.count == 0 {
		return nil, nil
	}
	avg := b.sum.Div(decimal.NewFromInt(b.count))
	return fromDecimal(avg, a.resultKind), nil
}

func (a Avg) ResultType(operandTypes []sql.Type) sql.Type {
	return sql.Type{Kind: a.resultKind, Nullable: true}
}
