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

// GetField is a positional column reference, named the way the teacher's
// expression.GetField is: NewGetField(0, types.Int64, "foo", false).
type GetField struct {
	Index    int
	Name     string
	Typ      sql.Type
	Nullable bool
}

func NewGetField(index int, typ sql.Type, name string, nullable bool) *GetField {
	return &GetField{Index: index, Name: name, Typ: typ, Nullable: nullable}
}

func (g *GetField) Type() sql.Type      { return g.Typ }
func (g *GetField) IsNullable() bool    { return g.Nullable }
func (g *GetField) Resolved() bool      { return true }
func (g *GetField) Children() []Expression { return nil }

func (g *GetField) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 0 {
		return nil, fmt.Errorf("expression.GetField: expected 0 children, got %d", len(children))
	}
	return g, nil
}

func (g *GetField) String() string { return g.Name }

// Star stands for COUNT(*): an operand with no underlying column.
type Star struct{}

func NewStar() *Star { return &Star{} }

func (s *Star) Type() sql.Type         { return sql.NewAny(false) }
func (s *Star) IsNullable() bool       { return false }
func (s *Star) Resolved() bool         { return true }
func (s *Star) Children() []Expression { return nil }

func (s *Star) WithChildren(children ...Expression) (Expression, error) {
	if len(children) != 0 {
		return nil, fmt.Errorf("expression.Star: expected 0 children, got %d", len(children))
	}
	return s, nil
}

func (s *Star) String() string { return "*" }
