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

// Package reftranslate is a reference imptable.Translator: enough of a
// lowering driver — operand-tree walk, nullability overrides, a row
// parameter for GetField — to exercise the scalar registry end to end
// and to give the test suite something concrete to assert against. It is
// deliberately not a query planner: no catalog, no resolution, just the
// seam the ImpTable itself defines.
package reftranslate

import (
	"fmt"

	"github.com/sungsoo/go-imptable/expression"
	"github.com/sungsoo/go-imptable/iet"
	"github.com/sungsoo/go-imptable/imptable"
	"github.com/sungsoo/go-imptable/sql"
)

// rowParam is the canonical receiver every GetField lowers against: a
// single named parameter standing for "the current input row", the way a
// generated method's row argument would.
var rowParam = &iet.Param{Name: "row", Typ: sql.NewAny(false)}

// Translator is a concrete, immutable-by-convention imptable.Translator:
// SetNullable and NestBlock return a new value rather than mutating the
// receiver, per the interface's contract.
type Translator struct {
	overrides map[expression.Expression]bool
	block     *imptable.BlockBuilder
}

// New returns a Translator ready to translate operand trees rooted at
// already-resolved expression.Expression nodes.
func New() *Translator {
	return &Translator{overrides: map[expression.Expression]bool{}, block: &imptable.BlockBuilder{}}
}

func (t *Translator) clone() *Translator {
	overrides := make(map[expression.Expression]bool, len(t.overrides))
	for k, v := range t.overrides {
		overrides[k] = v
	}
	return &Translator{overrides: overrides, block: t.block}
}

func (t *Translator) IsNullable(node expression.Expression) bool {
	if nullable, ok := t.overrides[node]; ok {
		return nullable
	}
	return node.IsNullable()
}

func (t *Translator) SetNullable(node expression.Expression, nullable bool) imptable.Translator {
	next := t.clone()
	next.overrides[node] = nullable
	return next
}

func (t *Translator) Builder() imptable.ExprBuilder { return exprBuilder{} }

func (t *Translator) TranslateCast(source, target sql.Type, expr iet.Expr) (iet.Expr, error) {
	if source.Equals(target) {
		return expr, nil
	}
	return &iet.Cast{Operand: expr, Typ: target}, nil
}

func (t *Translator) TranslateConstructor(operands []iet.Expr, kind imptable.ConstructorKind) (iet.Expr, error) {
	symbol, typ := constructorShape(kind, operands)
	return &iet.MethodCall{Symbol: symbol, Args: operands, Typ: typ}, nil
}

func constructorShape(kind imptable.ConstructorKind, operands []iet.Expr) (string, sql.Type) {
	switch kind {
	case imptable.ArrayCtor:
		elem := sql.NewAny(true)
		if len(operands) > 0 {
			elem = operands[0].Type()
		}
		return "SqlFunctions.ARRAY", sql.NewArrayType(elem, false)
	case imptable.MapCtor:
		key, value := sql.NewAny(true), sql.NewAny(true)
		if len(operands) >= 2 {
			key, value = operands[0].Type(), operands[1].Type()
		}
		return "SqlFunctions.MAP", sql.NewMapType(key, value, false)
	default:
		return "SqlFunctions.ROW", sql.NewAny(false)
	}
}

func (t *Translator) CurrentBlock() *imptable.BlockBuilder { return t.block }

// NestBlock returns a Translator sharing this one's nullability overrides
// but starting a fresh, empty statement block — the caller keeps its own
// reference to t and resumes using it once the nested Translator's
// ExitBlock has produced the nested block's value.
func (t *Translator) NestBlock() imptable.Translator {
	next := t.clone()
	next.block = &imptable.BlockBuilder{}
	return next
}

// ExitBlock closes off the current nested block with no particular
// terminal value (nothing in this registry's implementors currently
// drives a multi-statement block to completion; this is the hook a
// future temporary-heavy implementor — e.g. a CASE with shared
// subexpressions — would call instead).
func (t *Translator) ExitBlock() iet.Expr {
	return t.block.Build(iet.NullExpr)
}

// Translate lowers one operand-tree node. GetField and Literal are
// leaves; Star only appears as a COUNT(*) operand and lowers here to a
// constant NULL; everything else is a Call
// dispatched through the scalar registry.
func (t *Translator) Translate(node expression.Expression, nullAs imptable.NullAs) (iet.Expr, error) {
	switch n := node.(type) {
	case *expression.Literal:
		return t.translateLiteral(n, nullAs), nil
	case *expression.GetField:
		return t.translateGetField(n, nullAs), nil
	case *expression.Call:
		return t.translateCall(n, nullAs)
	case *expression.Star:
		return nullAs.Handle(&iet.Const{Value: nil, Typ: sql.NewAny(true)}), nil
	default:
		return nil, fmt.Errorf("reftranslate: unsupported operand node %T", node)
	}
}

func (t *Translator) TranslateList(nodes []expression.Expression, nullAs imptable.NullAs) ([]iet.Expr, error) {
	out := make([]iet.Expr, len(nodes))
	for i, n := range nodes {
		e, err := t.Translate(n, nullAs)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func (t *Translator) translateLiteral(lit *expression.Literal, nullAs imptable.NullAs) iet.Expr {
	if lit.Value == nil {
		return nullAs.Handle(&iet.Const{Value: nil, Typ: lit.Typ})
	}
	return nullAs.Handle(&iet.Const{Value: lit.Value, Typ: lit.Typ})
}

func (t *Translator) translateGetField(f *expression.GetField, nullAs imptable.NullAs) iet.Expr {
	typ := f.Typ.WithNullable(t.IsNullable(f))
	field := &iet.Field{Receiver: rowParam, Name: f.Name, Index: f.Index, Typ: typ}
	return nullAs.Handle(field)
}

func (t *Translator) translateCall(call *expression.Call, nullAs imptable.NullAs) (iet.Expr, error) {
	impl := imptable.Get(call.Op)
	if impl == nil {
		return nil, fmt.Errorf("reftranslate: no scalar implementor registered for %s", call.Op)
	}
	ic := imptable.Call{Op: call.Op, Operands: call.Args, ResultType: call.RetType}
	return impl.Implement(t, ic, nullAs)
}

// exprBuilder is the stateless ExprBuilder every Translator value shares;
// it needs no per-call state, only sql.Type reasoning.
type exprBuilder struct{}

func (exprBuilder) EnsureType(target sql.Type, node iet.Expr, matchNullability bool) iet.Expr {
	want := target
	if matchNullability {
		want = target.WithNullable(node.Type().Nullable)
	}
	if node.Type().Equals(want) {
		return node
	}
	return &iet.Cast{Operand: node, Typ: want}
}

func (exprBuilder) TypeFactory() imptable.TypeFactory { return typeFactory{} }

type typeFactory struct{}

func (typeFactory) LeastRestrictive(types []sql.Type) (sql.Type, bool) { return sql.LeastRestrictive(types) }
func (typeFactory) Nullify(t sql.Type, nullable bool) sql.Type         { return t.WithNullable(nullable) }
