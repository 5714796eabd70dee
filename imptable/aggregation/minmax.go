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

import "github.com/sungsoo/go-imptable/sql"

// Compare orders two non-null operand values the way the comparable
// operand's runtime representation would: negative if a < b, 0 if equal,
// positive if a > b. Supplying this per call site keeps MinMax agnostic
// to which SQL type it is instantiated for.
type Compare func(a, b interface{}) int

type minMaxBuffer struct {
	value interface{}
	seen  bool
}

// MinMax implements both MIN and MAX: greater selects which direction
// "better" runs (false for MIN, true for MAX).
type MinMax struct {
	StrictBase
	compare    Compare
	greater    bool
	resultType sql.Type
}

func NewMin(compare Compare, resultType sql.Type) MinMax {
	return MinMax{compare: compare, greater: false, resultType: resultType}
}

func NewMax(compare Compare, resultType sql.Type) MinMax {
	return MinMax{compare: compare, greater: true, resultType: resultType}
}

func (MinMax) Reset() Buffer { return &minMaxBuffer{} }

func (m MinMax) Add(buf Buffer, args []interface{}) error {
	b := buf.(*minMaxBuffer)
	if m.AnyNull(args) {
		return nil
	}
	v := args[0]
	if !b.seen {
		b.value, b.seen = v, true
		return nil
	}
	cmp := m.compare(v, b.value)
	if (m.greater && cmp > 0) || (!m.greater && cmp < 0) {
		b.value = v
	}
	return nil
}

func (m MinMax) Merge(buf, other Buffer) error {
	b, o := buf.(*minMaxBuffer), other.(*minMaxBuffer)
	if !o.seen {
		return nil
	}
	if !b.seen {
		b.value, b.seen = o.value, true
		return nil
	}
	cmp := m.compare(o.value, b.value)
	if (m.greater && cmp > 0) || (!m.greater && cmp < 0) {
		b.value = o.value
	}
	return nil
}

func (MinMax) Result(buf Buffer) (interface{}, error) {
	b := buf.(*minMaxBuffer)
	if !b.seen {
		return nil, nil
	}
	return b.value, nil
}

func (m MinMax) ResultType(operandTypes []sql.Type) sql.Type { return m.resultType.WithNullable(true) }
