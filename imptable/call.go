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

package imptable

import (
	"github.com/sungsoo/go-imptable/expression"
	"github.com/sungsoo/go-imptable/sql"
)

// Call is the unit the registries dispatch on: an operator applied to its
// (already resolved, not-yet-lowered) operands, carrying the static
// result type the surrounding relational-algebra node demands.
type Call struct {
	Op         sql.Op
	Operands   []expression.Expression
	ResultType sql.Type
}

// WithOperands returns a copy of c with its Operands replaced, used by
// implementors (e.g. TRIM) that consume and strip a leading flag operand
// before delegating to a generic implementor for the rest.
func (c Call) WithOperands(operands []expression.Expression) Call {
	c.Operands = operands
	return c
}
