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

package iet

import (
	"reflect"

	"github.com/sungsoo/go-imptable/sql"
)

// Canonical constants every implementor shares, so two implementors that
// both need "the NULL expression" produce pointer-comparable-by-value,
// structurally identical nodes.
var (
	NullExpr       Expr = &Const{Value: nil, Typ: sql.NewAny(true)}
	FalseExpr      Expr = &Const{Value: false, Typ: sql.NewBoolean(false)}
	TrueExpr       Expr = &Const{Value: true, Typ: sql.NewBoolean(false)}
	BoxedTrueExpr  Expr = &Const{Value: true, Typ: sql.NewBoolean(true)}
	BoxedFalseExpr Expr = &Const{Value: false, Typ: sql.NewBoolean(true)}
)

// IsConstantNull reports whether e is statically known to be NULL. The
// ImpTable's AlwaysNull signal is realized this way: a sub-translation
// that proves its result is always null simply returns NullExpr, and
// Optimize tests for it with this function when folding Equal/NotEqual,
// so the CASE arms and the STRICT null-guard path, whose output passes
// through Optimize, handle that outcome without a distinct sentinel error.
func IsConstantNull(e Expr) bool {
	c, ok := e.(*Const)
	return ok && c.Value == nil
}

func isConstBool(e Expr, want bool) bool {
	c, ok := e.(*Const)
	return ok && c.Value == want
}

// FoldAnd builds a short-circuiting AND over exprs: TRUE operands are
// dropped, a FALSE operand collapses the whole fold to FALSE, and a
// singleton result is returned unwrapped.
func FoldAnd(exprs []Expr) Expr {
	kept := make([]Expr, 0, len(exprs))
	for _, e := range exprs {
		if isConstBool(e, true) {
			continue
		}
		if isConstBool(e, false) {
			return FalseExpr
		}
		kept = append(kept, e)
	}
	switch len(kept) {
	case 0:
		return TrueExpr
	case 1:
		return kept[0]
	default:
		return &Fold{Op: "AND", Exprs: kept}
	}
}

// FoldOr is FoldAnd's dual.
func FoldOr(exprs []Expr) Expr {
	kept := make([]Expr, 0, len(exprs))
	for _, e := range exprs {
		if isConstBool(e, false) {
			continue
		}
		if isConstBool(e, true) {
			return TrueExpr
		}
		kept = append(kept, e)
	}
	switch len(kept) {
	case 0:
		return FalseExpr
	case 1:
		return kept[0]
	default:
		return &Fold{Op: "OR", Exprs: kept}
	}
}

// MakeCondition is the exported constructor implementors use; it is
// spelled differently from the Condition struct to avoid shadowing it.
func MakeCondition(test, ifTrue, ifFalse Expr) Expr {
	return &Condition{Test: test, IfTrue: ifTrue, IfFalse: ifFalse}
}

// Optimize applies a handful of local, sound-but-incomplete
// simplifications, the way the spec's ExprAlgebra is allowed to: it need
// not find every redundancy, only never introduce one.
func Optimize(e Expr) Expr {
	switch n := e.(type) {
	case *Condition:
		test := Optimize(n.Test)
		ifTrue := Optimize(n.IfTrue)
		ifFalse := Optimize(n.IfFalse)
		if c, ok := test.(*Const); ok {
			if c.Value == true {
				return ifTrue
			}
			if c.Value == false {
				return ifFalse
			}
		}
		if reflect.DeepEqual(ifTrue, ifFalse) {
			return ifTrue
		}
		return &Condition{Test: test, IfTrue: ifTrue, IfFalse: ifFalse}
	case *Not:
		inner := Optimize(n.Operand)
		if nn, ok := inner.(*Not); ok {
			return Optimize(nn.Operand)
		}
		return &Not{Operand: inner}
	case *Equal:
		l := Optimize(n.Lhs)
		r := Optimize(n.Rhs)
		if IsConstantNull(l) && IsConstantNull(r) {
			return TrueExpr
		}
		return &Equal{Lhs: l, Rhs: r}
	case *NotEqual:
		l := Optimize(n.Lhs)
		r := Optimize(n.Rhs)
		if IsConstantNull(l) && IsConstantNull(r) {
			return FalseExpr
		}
		return &NotEqual{Lhs: l, Rhs: r}
	case *Fold:
		exprs := make([]Expr, len(n.Exprs))
		for i, x := range n.Exprs {
			exprs[i] = Optimize(x)
		}
		if n.Op == "AND" {
			return FoldAnd(exprs)
		}
		return FoldOr(exprs)
	default:
		return e
	}
}

// Optimize2 wraps e in the standard "guard the whole expression behind a
// null check on operand" shape when operand is not a primitive, and just
// optimizes e otherwise (a primitive operand can never be null, so no
// guard is needed).
func Optimize2(operand Expr, e Expr) Expr {
	if operand.Type().IsPrimitive() {
		return Optimize(e)
	}
	return Optimize(MakeCondition(&Equal{Lhs: operand, Rhs: NullExpr}, NullExpr, e))
}
