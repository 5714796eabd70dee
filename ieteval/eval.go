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

// Package ieteval is a small tree-walking interpreter for the IET: the
// stand-in for the "separate, out-of-scope back end" iet.Expr's doc
// comment defers to. It exists so the registries have something to
// actually run against — the teacher's own test helper (eval(t, e, row))
// evaluates an expression directly rather than compiling it first, and
// this package is that, one level down the IET.
package ieteval

import (
	"fmt"

	"github.com/sungsoo/go-imptable/iet"
	"github.com/sungsoo/go-imptable/sql"
)

// Row is the only "receiver" ieteval understands for an iet.Field: the
// row reftranslate.Translate lowered a GetField against, looked up by
// Field.Index.
type Row = sql.Row

// Eval interprets e against row, returning a nil interface{} for SQL
// NULL.
func Eval(e iet.Expr, row Row) (interface{}, error) {
	switch n := e.(type) {
	case *iet.Const:
		return n.Value, nil
	case *iet.Field:
		return evalField(n, row)
	case *iet.BinOp:
		return evalBinOp(n, row)
	case *iet.UnaryOp:
		return evalUnaryOp(n, row)
	case *iet.Not:
		return evalNot(n, row)
	case *iet.Equal:
		return evalEqual(n, row, false)
	case *iet.NotEqual:
		return evalEqual(n, row, true)
	case *iet.Condition:
		return evalCondition(n, row)
	case *iet.Fold:
		return evalFold(n, row)
	case *iet.MethodCall:
		return evalMethodCall(n, row)
	case *iet.Cast:
		return evalCast(n, row)
	case *iet.Boxed:
		return Eval(n.Inner, row)
	case *iet.Param:
		return nil, fmt.Errorf("ieteval: unbound parameter %q", n.Name)
	case *iet.Throw:
		return nil, n.Exception
	case *iet.Block:
		return evalBlock(n, row)
	default:
		return nil, fmt.Errorf("ieteval: unsupported node %T", e)
	}
}

func evalField(f *iet.Field, row Row) (interface{}, error) {
	if f.Index < 0 || f.Index >= len(row) {
		return nil, fmt.Errorf("ieteval: field index %d out of range for row of length %d", f.Index, len(row))
	}
	return row[f.Index], nil
}

func evalBlock(b *iet.Block, row Row) (interface{}, error) {
	for _, s := range b.Stmts {
		if t, ok := s.(*iet.Throw); ok {
			return nil, t.Exception
		}
	}
	if b.Terminal == nil {
		return nil, nil
	}
	return Eval(b.Terminal, row)
}

func evalCondition(c *iet.Condition, row Row) (interface{}, error) {
	test, err := Eval(c.Test, row)
	if err != nil {
		return nil, err
	}
	b, ok := test.(bool)
	if !ok || !b {
		return Eval(c.IfFalse, row)
	}
	return Eval(c.IfTrue, row)
}

func evalNot(n *iet.Not, row Row) (interface{}, error) {
	v, err := Eval(n.Operand, row)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return !v.(bool), nil
}

func evalEqual(e iet.Expr, row Row, negate bool) (interface{}, error) {
	var lhs, rhs iet.Expr
	switch n := e.(type) {
	case *iet.Equal:
		lhs, rhs = n.Lhs, n.Rhs
	case *iet.NotEqual:
		lhs, rhs = n.Lhs, n.Rhs
	}
	l, err := Eval(lhs, row)
	if err != nil {
		return nil, err
	}
	r, err := Eval(rhs, row)
	if err != nil {
		return nil, err
	}
	// The policy engine and NullAs.Handle only ever build Equal/NotEqual
	// nodes against the literal nil-valued Const (an explicit NULL-guard
	// check), so unlike ordinary SQL "x = NULL" this always yields a real
	// boolean rather than NULL.
	if l == nil || r == nil {
		eq := l == nil && r == nil
		if negate {
			return !eq, nil
		}
		return eq, nil
	}
	eq := valuesEqual(l, r)
	if negate {
		return !eq, nil
	}
	return eq, nil
}

func valuesEqual(l, r interface{}) bool {
	lf, lok := toFloat(l)
	rf, rok := toFloat(r)
	if lok && rok {
		return lf == rf
	}
	return fmt.Sprintf("%v", l) == fmt.Sprintf("%v", r)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}

func evalBinOp(b *iet.BinOp, row Row) (interface{}, error) {
	l, err := Eval(b.Lhs, row)
	if err != nil {
		return nil, err
	}
	r, err := Eval(b.Rhs, row)
	if err != nil {
		return nil, err
	}
	if l == nil || r == nil {
		return nil, nil
	}
	lf, lok := toFloat(l)
	rf, rok := toFloat(r)
	if !lok || !rok {
		return nil, fmt.Errorf("ieteval: binop %s: unsupported operands %T, %T", b.Kind, l, r)
	}
	_, lIsInt := l.(int64)
	_, rIsInt := r.(int64)
	bothInt := lIsInt && rIsInt

	switch b.Kind {
	case iet.Add:
		return numericResult(lf+rf, bothInt), nil
	case iet.Sub:
		return numericResult(lf-rf, bothInt), nil
	case iet.Mul:
		return numericResult(lf*rf, bothInt), nil
	case iet.Div:
		return numericResult(lf/rf, bothInt), nil
	case iet.Mod:
		if rf == 0 {
			return nil, fmt.Errorf("ieteval: binop %%: division by zero")
		}
		return numericResult(float64(int64(lf)%int64(rf)), bothInt), nil
	case iet.Lt:
		return lf < rf, nil
	case iet.Le:
		return lf <= rf, nil
	case iet.Gt:
		return lf > rf, nil
	case iet.Ge:
		return lf >= rf, nil
	case iet.BitAnd:
		return int64(lf) & int64(rf), nil
	case iet.BitOr:
		return int64(lf) | int64(rf), nil
	case iet.BitXor:
		return int64(lf) ^ int64(rf), nil
	default:
		return nil, fmt.Errorf("ieteval: unsupported binop %v", b.Kind)
	}
}

func numericResult(f float64, asInt bool) interface{} {
	if asInt {
		return int64(f)
	}
	return f
}

func evalUnaryOp(u *iet.UnaryOp, row Row) (interface{}, error) {
	v, err := Eval(u.Operand, row)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	switch u.Kind {
	case iet.Negate:
		switch n := v.(type) {
		case int64:
			return -n, nil
		case float64:
			return -n, nil
		default:
			return nil, fmt.Errorf("ieteval: negate: unsupported operand %T", v)
		}
	case iet.BitNot:
		n, ok := v.(int64)
		if !ok {
			return nil, fmt.Errorf("ieteval: bitnot: unsupported operand %T", v)
		}
		return ^n, nil
	default:
		return nil, fmt.Errorf("ieteval: unsupported unary op %v", u.Kind)
	}
}

func evalFold(f *iet.Fold, row Row) (interface{}, error) {
	sawNull := false
	for _, x := range f.Exprs {
		v, err := Eval(x, row)
		if err != nil {
			return nil, err
		}
		if v == nil {
			sawNull = true
			continue
		}
		b := v.(bool)
		if f.Op == "AND" && !b {
			return false, nil
		}
		if f.Op == "OR" && b {
			return true, nil
		}
	}
	if sawNull {
		return nil, nil
	}
	return f.Op == "AND", nil
}

func evalCast(c *iet.Cast, row Row) (interface{}, error) {
	v, err := Eval(c.Operand, row)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return castValue(v, c.Typ)
}

func castValue(v interface{}, target sql.Type) (interface{}, error) {
	switch target.Kind {
	case sql.Varchar:
		return fmt.Sprintf("%v", v), nil
	case sql.Double:
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("ieteval: cannot cast %T to DOUBLE", v)
		}
		return f, nil
	case sql.Bigint, sql.Int:
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("ieteval: cannot cast %T to %s", v, target.Kind)
		}
		return int64(f), nil
	default:
		return v, nil
	}
}
