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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sungsoo/go-imptable/sql"
)

func boolField(name string, nullable bool) *Field {
	return &Field{Name: name, Typ: sql.NewBoolean(nullable)}
}

func TestIsConstantNull(t *testing.T) {
	require.True(t, IsConstantNull(NullExpr))
	require.True(t, IsConstantNull(&Const{Value: nil, Typ: sql.NewAny(true)}))
	require.False(t, IsConstantNull(TrueExpr))
	require.False(t, IsConstantNull(boolField("x", true)))
}

func TestFoldAndShortCircuitsOnFalse(t *testing.T) {
	x := boolField("x", false)
	result := FoldAnd([]Expr{TrueExpr, FalseExpr, x})
	require.Equal(t, FalseExpr, result)
}

func TestFoldAndDropsTrueOperands(t *testing.T) {
	x := boolField("x", false)
	result := FoldAnd([]Expr{TrueExpr, x, TrueExpr})
	require.Equal(t, x, result)
}

func TestFoldAndEmptyIsTrue(t *testing.T) {
	require.Equal(t, TrueExpr, FoldAnd([]Expr{TrueExpr, TrueExpr}))
}

func TestFoldAndKeepsMultipleNonConstOperands(t *testing.T) {
	x := boolField("x", false)
	y := boolField("y", false)
	result := FoldAnd([]Expr{x, y})
	fold, ok := result.(*Fold)
	require.True(t, ok)
	require.Equal(t, "AND", fold.Op)
	require.Equal(t, []Expr{x, y}, fold.Exprs)
}

func TestFoldOrShortCircuitsOnTrue(t *testing.T) {
	x := boolField("x", false)
	result := FoldOr([]Expr{FalseExpr, TrueExpr, x})
	require.Equal(t, TrueExpr, result)
}

func TestFoldOrDropsFalseOperands(t *testing.T) {
	x := boolField("x", false)
	result := FoldOr([]Expr{FalseExpr, x, FalseExpr})
	require.Equal(t, x, result)
}

func TestFoldOrEmptyIsFalse(t *testing.T) {
	require.Equal(t, FalseExpr, FoldOr([]Expr{FalseExpr, FalseExpr}))
}

func TestOptimizeConditionOnConstantTest(t *testing.T) {
	x := boolField("x", false)
	y := boolField("y", false)

	require.Equal(t, x, Optimize(MakeCondition(TrueExpr, x, y)))
	require.Equal(t, y, Optimize(MakeCondition(FalseExpr, x, y)))
}

func TestOptimizeConditionCollapsesIdenticalArms(t *testing.T) {
	x := boolField("x", false)
	cond := &Condition{Test: boolField("t", false), IfTrue: x, IfFalse: x}
	require.Equal(t, x, Optimize(cond))
}

func TestOptimizeDoubleNegationElimination(t *testing.T) {
	x := boolField("x", false)
	not := &Not{Operand: &Not{Operand: x}}
	require.Equal(t, x, Optimize(not))
}

func TestOptimizeSingleNegationStays(t *testing.T) {
	x := boolField("x", false)
	not := &Not{Operand: x}
	result := Optimize(not)
	n, ok := result.(*Not)
	require.True(t, ok)
	require.Equal(t, x, n.Operand)
}

func TestOptimizeEqualConstantNullFoldsToTrue(t *testing.T) {
	eq := &Equal{Lhs: NullExpr, Rhs: NullExpr}
	require.Equal(t, TrueExpr, Optimize(eq))
}

func TestOptimizeNotEqualConstantNullFoldsToFalse(t *testing.T) {
	ne := &NotEqual{Lhs: NullExpr, Rhs: NullExpr}
	require.Equal(t, FalseExpr, Optimize(ne))
}

func TestOptimizeEqualNonConstantStays(t *testing.T) {
	x := boolField("x", true)
	eq := &Equal{Lhs: x, Rhs: NullExpr}
	result := Optimize(eq)
	e, ok := result.(*Equal)
	require.True(t, ok)
	require.Equal(t, x, e.Lhs)
	require.Equal(t, NullExpr, e.Rhs)
}

func TestOptimizeRecursesIntoFold(t *testing.T) {
	x := boolField("x", false)
	fold := &Fold{Op: "AND", Exprs: []Expr{TrueExpr, x}}
	require.Equal(t, x, Optimize(fold))
}

func TestOptimize2SkipsGuardForPrimitiveOperand(t *testing.T) {
	primitive := &Const{Value: int64(1), Typ: sql.NewBigint(false)}
	e := boolField("result", false)
	require.Equal(t, e, Optimize2(primitive, e))
}

func TestOptimize2GuardsNonPrimitiveOperand(t *testing.T) {
	boxed := &Field{Name: "x", Typ: sql.NewBigint(true)}
	e := &Const{Value: int64(2), Typ: sql.NewBigint(false)}
	result := Optimize2(boxed, e)
	cond, ok := result.(*Condition)
	require.True(t, ok)
	require.Equal(t, NullExpr, cond.IfTrue)
	require.Equal(t, e, cond.IfFalse)
}
