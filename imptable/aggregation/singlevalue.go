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

type singleValueBuffer struct {
	value interface{}
	seen  bool
}

// SingleValue implements the scalar-subquery aggregate SQL uses to assert
// "exactly one row": Add errors the moment a second row arrives.
type SingleValue struct {
	resultType sql.Type
}

func NewSingleValue(resultType sql.Type) SingleValue {
	return SingleValue{resultType: resultType}
}

func (SingleValue) Reset() Buffer { return &singleValueBuffer{} }

func (SingleValue) Add(buf Buffer, args []interface{}) error {
	b := buf.(*singleValueBuffer)
	if b.seen {
		return sql.ErrSingleValueMoreThanOne.New()
	}
	b.value, b.seen = args[0], true
	return nil
}

func (SingleValue) Merge(buf, other Buffer) error {
	b, o := buf.(*singleValueBuffer), other.(*singleValueBuffer)
	if !o.seen {
		return nil
	}
	if b.seen {
		return sql.ErrSingleValueMoreThanOne.New()
	}
	b.value, b.seen = o.value, true
	return nil
}

func (SingleValue) Result(buf Buffer) (interface{}, error) {
	return buf.(*singleValueBuffer).value, nil
}

func (s SingleValue) ResultType(operandTypes []sql.Type) sql.Type { return s.resultType }
