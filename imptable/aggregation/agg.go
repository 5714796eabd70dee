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

// Package aggregation is the aggregate half of the ImpTable: a three-phase
// (reset/add/result) accumulator state machine per operator, following
// the teacher's own buffer lifecycle (NewBuffer/Update/Merge/Eval).
package aggregation

import (
	"github.com/sungsoo/go-imptable/expression"
	"github.com/sungsoo/go-imptable/sql"
)

// Buffer is an aggregate's accumulator state between rows, opaque to
// everything but the AggImplementor that produced it.
type Buffer interface{}

// AggImplementor is the three-phase lifecycle every aggregate operator
// implements: Reset allocates a fresh Buffer, Add folds one row's
// arguments in (row execution itself is out of scope; Add receives
// already-evaluated operand values), and Result reads the final value
// out. Merge combines two partial buffers, needed whenever partial
// aggregation runs across shards or parallel workers.
type AggImplementor interface {
	Reset() Buffer
	Add(buf Buffer, args []interface{}) error
	Merge(buf, other Buffer) error
	Result(buf Buffer) (interface{}, error)
	ResultType(operandTypes []sql.Type) sql.Type
}

// Call mirrors imptable.Call for the aggregate registry: an operator
// applied to its (unevaluated) operand expressions, plus whether DISTINCT
// was requested (COUNT(DISTINCT x), SUM(DISTINCT x), ...).
type Call struct {
	Op         sql.Op
	Operands   []expression.Expression
	Distinct   bool
	ResultType sql.Type
}
