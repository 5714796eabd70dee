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

package expression

import (
	"fmt"
	"strings"

	"github.com/sungsoo/go-imptable/sql"
)

// Call is an unresolved application of a SQL operator to its operands: the
// shape every scalar operator, CASE and CAST are represented as before
// lowering. Only GetField, Literal and Star are leaves; everything else in
// an operand tree is a Call.
type Call struct {
	Op      sql.Op
	Args    []Expression
	RetType sql.Type
}

func NewCall(op sql.Op, retType sql.Type, args ...Expression) *Call {
	return &Call{Op: op, Args: args, RetType: retType}
}

func (c *Call) Type() sql.Type   { return c.RetType }
func (c *Call) IsNullable() bool { return c.RetType.Nullable }

func (c *Call) Resolved() bool {
	for _, a := range c.Args {
		if !a.Resolved() {
			return false
		}
	}
	return true
}

func (c *Call) Children() []Expression { return c.Args }

func (c *Call) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != len(c.Args) {
		return nil, fmt.Errorf("expression.Call: expected %d children, got %d", len(c.Args), len(children))
	}
	clone := *c
	clone.Args = children
	return &clone, nil
}

func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Op, strings.Join(parts, ", "))
}

// NewCast builds a CAST call: a Call node is enough, so CastOptimizedImplementor
// can dispatch it through the scalar registry like any other operator.
func NewCast(operand Expression, target sql.Type) *Call {
	return NewCall(sql.OpCast, target, operand)
}
