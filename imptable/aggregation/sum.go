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
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/sungsoo/go-imptable/sql"
)

// sumBuffer accumulates in decimal.Decimal regardless of the operand's
// declared type, the way the teacher's SUM coerces every numeric input
// through a common wide representation before producing a typed result.
type sumBuffer struct {
	total decimal.Decimal
	seen  bool
}

// Sum implements SUM(x): NULL until at least one non-null row is seen,
// then the running total. SumZero is the SUM0 variant (0 instead of NULL
// when no rows were seen), used where the planner already knows a group
// is non-empty.
type Sum struct {
	StrictBase
	resultKind sql.Kind
	asZero     bool
}

func NewSum(resultKind sql.Kind) Sum      { return Sum{resultKind: resultKind} }
func NewSumZero(resultKind sql.Kind) Sum  { return Sum{resultKind: resultKind, asZero: true} }

func (Sum) Reset() Buffer { return &sumBuffer{} }

func (s Sum) Add(buf Buffer, args []interface{}) error {
	b := buf.(*sumBuffer)
	if s.AnyNull(args) {
		return nil
	}
	d, err := toDecimal(args[0])
	if err != nil {
		return fmt.Errorf("imptable/aggregation: SUM: %w", err)
	}
	b.total = b.total.Add(d)
	b.seen = true
	return nil
}

func (Sum) Merge(buf, other Buffer) error {
	b, o := buf.(*sumBuffer), other.(*sumBuffer)
	b.total = b.total.Add(o.total)
	b.seen = b.seen || o.seen
	return nil
}

func (s Sum) Result(buf Buffer) (interface{}, error) {
	b := buf.(*sumBuffer)
	if !b.seen && !s.asZero {
		return nil, nil
	}
	return fromDecimal(b.total, s.resultKind), nil
}

func (s Sum) ResultType(operandTypes []sql.Type) sql.Type {
	return sql.Type{Kind: s.resultKind, Nullable: !s.asZero}
}

func toDecimal(v interface{}) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case string:
		return decimal.NewFromString(n)
	default:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return decimal.Decimal{}, err
		}
		return decimal.NewFromFloat(f), nil
	}
}

func fromDecimal(d decimal.Decimal, kind sql.Kind) interface{} {
	switch kind {
	case sql.Int:
		return int32(d.IntPart())
	case sql.Bigint:
		return d.IntPart()
	case sql.Double:
		f, _ := d.Float64()
		return f
	case sql.Decimal:
		return d
	default:
		return d
	}
}
