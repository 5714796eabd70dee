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

	"github.com/sungsoo/go-imptable/sql"
)

// Literal is a constant operand. A nil Value represents SQL NULL.
type Literal struct {
	Value interface{}
	Typ   sql.Type
}

func NewLiteral(value interface{}, typ sql.Type) *Literal {
	return &Literal{Value: value, Typ: typ}
}

func (l *Literal) Type() sql.Type      { return l.Typ }
func (l *Literal) IsNullable() bool    { return l.Value == nil || l.Typ.Nullable }
func (l *Literal) Resolved() bool      { return true }
func (l *Literal) Children() []Expression { return nil }

func (l *Literal) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 0 {
		return nil, fmt.Errorf("expression.Literal: expected 0 children, got %d", len(children))
	}
	return l, nil
}

func (l *Literal) String() string {
	if l.Value == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", l.Value)
}
