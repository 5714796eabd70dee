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

// Package expression is the operand-level tree a relational-algebra call
// presents to the Translator before lowering: column references, literals
// and nested operator calls. It mirrors the shape of go-mysql-server's
// sql.Expression without the planner/catalog machinery that interface
// carries in the teacher.
package expression

import "github.com/sungsoo/go-imptable/sql"

// Expression is a node of the operand tree.
type Expression interface {
	Type() sql.Type
	IsNullable() bool
	Resolved() bool
	Children() []Expression
	WithChildren(children ...Expression) (Expression, error)
	String() string
}
