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
	"github.com/sungsoo/go-imptable/iet"
	"github.com/sungsoo/go-imptable/sql"
)

// ConstructorKind names the three value-constructor shapes (ARRAY, MAP,
// ROW) ValueConstructorImplementor lowers.
type ConstructorKind int

const (
	ArrayCtor ConstructorKind = iota
	MapCtor
	RowCtor
)

// TypeFactory is the subset of type reasoning an ExprBuilder exposes to
// implementors that need to compute a common type across operands (CASE's
// result type, value-constructor element types).
type TypeFactory interface {
	LeastRestrictive(types []sql.Type) (sql.Type, bool)
	Nullify(t sql.Type, nullable bool) sql.Type
}

// ExprBuilder helps an implementor finish off an IET node: coerce it to a
// target type (EnsureType), and look up the TypeFactory for promotion
// decisions.
type ExprBuilder interface {
	EnsureType(target sql.Type, node iet.Expr, matchNullability bool) iet.Expr
	TypeFactory() TypeFactory
}

// BlockBuilder accumulates the statements an implementor emits before its
// final expression (block-local temporaries and the like). The built-in
// implementors build their null guards and CASE arms as expressions and
// add no statements to it.
type BlockBuilder struct {
	Stmts []iet.Stmt
}

func (b *BlockBuilder) Add(s iet.Stmt) { b.Stmts = append(b.Stmts, s) }

func (b *BlockBuilder) Build(terminal iet.Expr) *iet.Block {
	return &iet.Block{Stmts: b.Stmts, Terminal: terminal}
}

// Translator is the seam between an operand tree and the IET: it lowers
// one node at a time, threading the NullAs demand down through nested
// calls, and lets implementors request block-local temporaries, casts and
// value constructors without depending on a concrete representation.
type Translator interface {
	Translate(node expression.Expression, nullAs NullAs) (iet.Expr, error)
	TranslateList(nodes []expression.Expression, nullAs NullAs) ([]iet.Expr, error)

	// IsNullable reports whether node is currently considered nullable in
	// this translation context (which may differ from node.IsNullable()
	// after a SetNullable override, e.g. inside a STRICT null guard).
	IsNullable(node expression.Expression) bool
	// SetNullable returns a Translator that overrides node's nullability
	// for any further translation performed through it; the receiver is
	// left unchanged.
	SetNullable(node expression.Expression, nullable bool) Translator

	Builder() ExprBuilder

	TranslateCast(source, target sql.Type, expr iet.Expr) (iet.Expr, error)
	TranslateConstructor(operands []iet.Expr, kind ConstructorKind) (iet.Expr, error)

	CurrentBlock() *BlockBuilder
	NestBlock() Translator
	ExitBlock() iet.Expr
}
