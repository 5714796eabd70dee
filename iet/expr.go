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

// Package iet is the intermediate executable expression tree: the output
// of lowering a relational-algebra scalar/aggregate/window call. A
// separate, out-of-scope back end turns an Expr into machine code; this
// package only has to model its shape and support the ImpTable's own
// local simplifications (see algebra.go).
package iet

import (
	"fmt"

	"github.com/sungsoo/go-imptable/sql"
)

// Expr is a node of the IET. Every node carries the static SQL type its
// evaluation produces.
type Expr interface {
	Type() sql.Type
	String() string
}

// Stmt is a node that only makes sense inside a Block's statement list:
// Declare, Assign, IfThen and Throw.
type Stmt interface {
	stmt()
}

type BinOpKind int

const (
	Add BinOpKind = iota
	Sub
	Mul
	Div
	Mod
	Lt
	Le
	Gt
	Ge
	BitAnd
	BitOr
	BitXor
)

func (k BinOpKind) String() string {
	switch k {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case BitAnd:
		return "&"
	case BitOr:
		return "|"
	case BitXor:
		return "^"
	default:
		return "?"
	}
}

type UnaryOpKind int

const (
	Negate UnaryOpKind = iota
	BitNot
)

func (k UnaryOpKind) String() string {
	if k == BitNot {
		return "~"
	}
	return "-"
}

// Const is a compile-time constant, including the NULL_EXPR sentinel
// (Value == nil).
type Const struct {
	Value interface{}
	Typ   sql.Type
}

func (c *Const) Type() sql.Type { return c.Typ }
func (c *Const) String() string {
	if c.Value == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", c.Value)
}

// BoolConst is a convenience constructor for a non-nullable boolean Const.
func BoolConst(b bool) *Const { return &Const{Value: b, Typ: sql.NewBoolean(false)} }

// Field is a field/column access, optionally through a receiver expression
// (e.g. a struct projected earlier in the tree). A nil Receiver means a
// direct row/local reference; Index, when >= 0, is the row position a
// reference evaluator can use.
type Field struct {
	Receiver Expr
	Name     string
	Index    int
	Typ      sql.Type
}

func (f *Field) Type() sql.Type { return f.Typ }
func (f *Field) String() string {
	if f.Receiver != nil {
		return fmt.Sprintf("%s.%s", f.Receiver, f.Name)
	}
	return f.Name
}

// BinOp is a binary arithmetic/bitwise/relational operation between two
// already-lowered operands.
type BinOp struct {
	Kind     BinOpKind
	Lhs, Rhs Expr
	Typ      sql.Type
}

func (b *BinOp) Type() sql.Type { return b.Typ }
func (b *BinOp) String() string { return fmt.Sprintf("(%s %s %s)", b.Lhs, b.Kind, b.Rhs) }

// UnaryOp is a prefix arithmetic/bitwise operation.
type UnaryOp struct {
	Kind    UnaryOpKind
	Operand Expr
	Typ     sql.Type
}

func (u *UnaryOp) Type() sql.Type { return u.Typ }
func (u *UnaryOp) String() string { return fmt.Sprintf("%s%s", u.Kind, u.Operand) }

// Not is logical negation under 3-valued logic: NULL in, NULL out.
type Not struct {
	Operand Expr
}

func (n *Not) Type() sql.Type { return sql.NewBoolean(isNullable(n.Operand)) }
func (n *Not) String() string { return fmt.Sprintf("NOT %s", n.Operand) }

// Equal and NotEqual are dedicated comparison nodes (distinct from BinOp)
// because they are also the vocabulary NullAs.Handle and the NullPolicy
// engine use to build NULL guards (x = NULL, x <> NULL).
type Equal struct {
	Lhs, Rhs Expr
}

func (e *Equal) Type() sql.Type { return sql.NewBoolean(isNullable(e.Lhs) || isNullable(e.Rhs)) }
func (e *Equal) String() string { return fmt.Sprintf("(%s = %s)", e.Lhs, e.Rhs) }

type NotEqual struct {
	Lhs, Rhs Expr
}

func (e *NotEqual) Type() sql.Type { return sql.NewBoolean(isNullable(e.Lhs) || isNullable(e.Rhs)) }
func (e *NotEqual) String() string { return fmt.Sprintf("(%s <> %s)", e.Lhs, e.Rhs) }

func isNullable(e Expr) bool { return e.Type().Nullable }

// Condition is the IET's if/then/else node: condition(test, ifTrue, ifFalse).
type Condition struct {
	Test, IfTrue, IfFalse Expr
}

func (c *Condition) Type() sql.Type { return c.IfTrue.Type() }
func (c *Condition) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", c.Test, c.IfTrue, c.IfFalse)
}

// Fold is a short-circuiting N-ary AND/OR, the result of FoldAnd/FoldOr.
type Fold struct {
	Op    string // "AND" or "OR"
	Exprs []Expr
}

func (f *Fold) Type() sql.Type {
	nullable := false
	for _, e := range f.Exprs {
		if e.Type().Nullable {
			nullable = true
		}
	}
	return sql.NewBoolean(nullable)
}

func (f *Fold) String() string {
	parts := make([]string, len(f.Exprs))
	for i, e := range f.Exprs {
		parts[i] = e.String()
	}
	sep := " " + f.Op + " "
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += sep
		}
		out += p
	}
	return "(" + out + ")"
}

// MethodCall invokes a named runtime helper (the "runtime library of
// scalar helper functions" the ImpTable deliberately does not implement,
// per its Non-goals) on Target (nil for a static call) with Args.
type MethodCall struct {
	Target Expr
	Symbol string
	Args   []Expr
	Typ    sql.Type
}

func (m *MethodCall) Type() sql.Type { return m.Typ }
func (m *MethodCall) String() string {
	if m.Target != nil {
		return fmt.Sprintf("%s.%s(...)", m.Target, m.Symbol)
	}
	return fmt.Sprintf("%s(...)", m.Symbol)
}

// Cast converts Operand's runtime representation to Typ.
type Cast struct {
	Operand Expr
	Typ     sql.Type
}

func (c *Cast) Type() sql.Type { return c.Typ }
func (c *Cast) String() string { return fmt.Sprintf("CAST(%s AS %s)", c.Operand, c.Typ) }

// Boxed re-tags an already-lowered expression with a different (usually
// more nullable) type, without changing how it evaluates. It stands in for
// the teacher's notion of "boxing" a primitive into its nullable wrapper.
type Boxed struct {
	Inner Expr
	Typ   sql.Type
}

func (b *Boxed) Type() sql.Type { return b.Typ }
func (b *Boxed) String() string { return b.Inner.String() }

// Param is a named, typed temporary: a block-local variable or a formal
// parameter of an enclosing lambda.
type Param struct {
	Name string
	Typ  sql.Type
}

func (p *Param) Type() sql.Type { return p.Typ }
func (p *Param) String() string { return p.Name }

// Throw raises exception at evaluation time. It is both an Expr (it can
// appear wherever an Expr is expected, producing no value because control
// never returns) and a Stmt (inside a Block).
type Throw struct {
	Exception error
}

func (t *Throw) Type() sql.Type { return sql.NewAny(true) }
func (t *Throw) String() string { return fmt.Sprintf("throw %v", t.Exception) }
func (t *Throw) stmt()          {}

// Declare introduces Var, initialized to Init, for the rest of the
// enclosing Block.
type Declare struct {
	Var  *Param
	Init Expr
}

func (d *Declare) stmt() {}

// Assign mutates an already-declared Var.
type Assign struct {
	Var   *Param
	Value Expr
}

func (a *Assign) stmt() {}

// IfThen is a statement-level conditional: Else may be nil.
type IfThen struct {
	Test Expr
	Then *Block
	Else *Block
}

func (i *IfThen) stmt() {}

// Block is a sequence of statements ending in a Terminal expression (the
// block's value, analogous to a Java block expression's final statement).
type Block struct {
	Stmts    []Stmt
	Terminal Expr
}

func (b *Block) Type() sql.Type {
	if b.Terminal != nil {
		return b.Terminal.Type()
	}
	return sql.NewAny(true)
}

func (b *Block) String() string { return fmt.Sprintf("{ ...; %s }", b.Terminal) }
