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

// Count implements COUNT(*) (no operands) and COUNT(x) (one operand,
// rows where x is null are not counted).
type Count struct{ StrictBase }

type countBuffer struct{ n int64 }

func (Count) Reset() Buffer { return &countBuffer{} }

func (c Count) Add(buf Buffer, args []interface{}) error {
	b := buf.(*countBuffer)
	if len(args) > 0 && c.AnyNull(args) {
		return nil
	}
	b.n++
	return nil
}

func (Count) Merge(buf, other Buffer) error {
	b, o := buf.(*countBuffer), other.(*countBuffer)
	b.n += o.n
	return nil
}

func (Count) Result(buf Buffer) (interface{}, error) {
	return buf.(*countBuffer).n, nil
}

func (Count) ResultType(operandTypes []sql.Type) sql.Type { return sql.NewBigint(false) }
