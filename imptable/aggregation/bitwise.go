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

	"github.com/spf13/cast"

	"github.com/sungsoo/go-imptable/sql"
)

type bitwiseCombinator func(a, b int64) int64

type bitwiseBuffer struct {
	value int64
	seen  bool
}

// Bitwise implements BIT_AND/BIT_OR/BIT_XOR: same strict-null shape as
// MinMax, combined with combine instead of a comparator.
type Bitwise struct {
	StrictBase
	combine    bitwiseCombinator
	identity   int64
	resultType sql.Type
}

func NewBitAnd(resultType sql.Type) Bitwise {
	return Bitwise{combine: func(a, b int64) int64 { return a & b }, identity: -1, resultType: resultType}
}

func NewBitOr(resultType sql.Type) Bitwise {
	return Bitwise{combine: func(a, b int64) int64 { return a | b }, identity: 0, resultType: resultType}
}

func NewBitXor(resultType sql.Type) Bitwise {
	return Bitwise{combine: func(a, b int64) int64 { return a ^ b }, identity: 0, resultType: resultType}
}

func (Bitwise) Reset() Buffer { return &bitwiseBuffer{} }

func (bw Bitwise) Add(buf Buffer, args []interface{}) error {
	b := buf.(*bitwiseBuffer)
	if bw.AnyNull(args) {
		return nil
	}
	n, err := cast.ToInt64E(args[0])
	if err != nil {
		return fmt.Errorf("imptable/aggregation: bitwise aggregate: %w", err)
	}
	if !b.seen {
		b.value, b.seen = n, true
		return nil
	}
	b.value = bw.combine(b.value, n)
	return nil
}

func (bw Bitwise) Merge(buf, other Buffer) error {
	b, o := buf.(*bitwiseBuffer), other.(*bitwiseBuffer)
	if !o.seen {
		return nil
	}
	if !b.seen {
		b.value, b.seen = o.value, true
		return nil
	}
	b.value = bw.combine(b.value, o.value)
	return nil
}

func (Bitwise) Result(buf Buffer) (interface{}, error) {
	b := buf.(*bitwiseBuffer)
	if !b.seen {
		return nil, nil
	}
	return b.value, nil
}

func (bw Bitwise) ResultType(operandTypes []sql.Type) sql.Type { return bw.resultType.WithNullable(true) }
