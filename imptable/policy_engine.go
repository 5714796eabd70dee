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
	"github.com/sirupsen/logrus"

	"github.com/sungsoo/go-imptable/iet"
	"github.com/sungsoo/go-imptable/sql"
)

// policyImplementor is the tagged variant the dispatch engine runs: a
// NotNullImplementor plus the NullPolicy that says how to wrap it, and
// whether operands should be harmonized to a common type first.
type policyImplementor struct {
	notNull   NotNullImplementor
	policy    NullPolicy
	harmonize bool
}

// NewNullPolicyImplementor builds a CallImplementor around notNull using
// the null-handling strategy policy names. harmonize, when true, rewrites
// the call's operands to their least-restrictive common type before
// dispatch (arithmetic and comparison operators want this; CASE, CAST and
// the system functions do not).
func NewNullPolicyImplementor(notNull NotNullImplementor, policy NullPolicy, harmonize bool) CallImplementor {
	return &policyImplementor{notNull: notNull, policy: policy, harmonize: harmonize}
}

func (p *policyImplementor) Implement(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	if p.harmonize {
		call = harmonizeCall(call)
	}
	switch p.policy {
	case PolicyAny, PolicyStrict:
		return implementNullSemantics0(tr, call, p.notNull, p.policy, nullAs)
	case PolicyAnd:
		return implementAnd(tr, call, nullAs)
	case PolicyOr:
		return implementOr(tr, call, nullAs)
	case PolicyNot:
		return implementNullSemantics0(tr, call, p.notNull, PolicyStrict, flipDemand(nullAs))
	case PolicyNone:
		return implementNone(tr, call, p.notNull, nullAs)
	default:
		logrus.WithFields(logrus.Fields{"op": call.Op, "policy": p.policy}).Error("imptable: unreachable null policy")
		return nil, sql.ErrUnreachableNullPolicy.New(p.policy, call.Op)
	}
}

// implementNullSemantics0 is component B's core: ANY delegates entirely
// to notNull (only forwarding the demand); STRICT builds the null guard
// itself so every NotNullImplementor can assume non-null operands.
func implementNullSemantics0(tr Translator, call Call, notNull NotNullImplementor, policy NullPolicy, nullAs NullAs) (iet.Expr, error) {
	if policy == PolicyStrict {
		switch nullAs {
		case IsNotNull:
			list, err := tr.TranslateList(call.Operands, IsNotNull)
			if err != nil {
				return nil, err
			}
			return iet.FoldAnd(list), nil
		case IsNull:
			list, err := tr.TranslateList(call.Operands, IsNull)
			if err != nil {
				return nil, err
			}
			return iet.FoldOr(list), nil
		}
	}

	if nullAs == NotPossible {
		return notNull.ImplementNotNull(tr, call, nullAs)
	}

	if policy != PolicyStrict {
		e, err := notNull.ImplementNotNull(tr, call, nullAs)
		if err != nil {
			return nil, err
		}
		return nullAs.Handle(e), nil
	}

	// STRICT, demand in {NULL, FALSE, TRUE}: guard on every nullable
	// operand, then invoke the core logic with each guarded operand
	// known statically non-null.
	var nullTests []iet.Expr
	notNullTr := tr
	for _, op := range call.Operands {
		if tr.IsNullable(op) {
			t, err := tr.Translate(op, IsNull)
			if err != nil {
				return nil, err
			}
			nullTests = append(nullTests, t)
			notNullTr = notNullTr.SetNullable(op, false)
		}
	}

	inner, err := notNull.ImplementNotNull(notNullTr, call, NotPossible)
	if err != nil {
		return nil, err
	}
	inner = boxIfNeeded(inner, call.ResultType)

	if nullAs == False {
		notNullTests := make([]iet.Expr, len(nullTests))
		for i, t := range nullTests {
			notNullTests[i] = iet.Optimize(&iet.Not{Operand: t})
		}
		return iet.FoldAnd(append(notNullTests, inner)), nil
	}

	guarded := iet.Optimize(iet.MakeCondition(iet.FoldOr(nullTests), iet.NullExpr, inner))
	return nullAs.Handle(guarded), nil
}

// implementAnd is 3-valued-logic AND: short-circuits whenever the demand
// already matches what a fold would produce, and otherwise folds the
// operands, each translated and handled under the caller's demand, with
// FoldAnd.
func implementAnd(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	if nullAs == NotPossible || nullAs == True {
		list, err := tr.TranslateList(call.Operands, nullAs)
		if err != nil {
			return nil, err
		}
		return iet.FoldAnd(list), nil
	}
	inner := nullAs
	if nullAs == True {
		inner = Null
	}
	list, err := tr.TranslateList(call.Operands, inner)
	if err != nil {
		return nil, err
	}
	handled := make([]iet.Expr, len(list))
	for i, e := range list {
		handled[i] = inner.Handle(e)
	}
	return iet.FoldAnd(handled), nil
}

// implementOr is AND's dual: NULL is only absorbing with TRUE. The binary
// three-valued tree is spelled out explicitly, rather than folded, only
// when both operands can actually be null under a NULL demand.
func implementOr(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	if nullAs == NotPossible || nullAs == False {
		list, err := tr.TranslateList(call.Operands, nullAs)
		if err != nil {
			return nil, err
		}
		return iet.FoldOr(list), nil
	}
	if nullAs == Null && len(call.Operands) == 2 && tr.IsNullable(call.Operands[0]) && tr.IsNullable(call.Operands[1]) {
		t0, err := tr.Translate(call.Operands[0], Null)
		if err != nil {
			return nil, err
		}
		t1, err := tr.Translate(call.Operands[1], Null)
		if err != nil {
			return nil, err
		}
		tree := iet.MakeCondition(
			&iet.Equal{Lhs: t0, Rhs: iet.NullExpr},
			iet.MakeCondition(
				iet.FoldOr([]iet.Expr{&iet.Equal{Lhs: t1, Rhs: iet.NullExpr}, &iet.Not{Operand: t1}}),
				iet.NullExpr,
				iet.BoxedTrueExpr,
			),
			iet.MakeCondition(&iet.Not{Operand: t0}, t1, iet.BoxedTrueExpr),
		)
		return iet.Optimize(tree), nil
	}
	inner := nullAs
	if nullAs == False {
		inner = Null
	}
	list, err := tr.TranslateList(call.Operands, inner)
	if err != nil {
		return nil, err
	}
	handled := make([]iet.Expr, len(list))
	for i, e := range list {
		handled[i] = inner.Handle(e)
	}
	return iet.FoldOr(handled), nil
}

// implementNone runs notNull directly and only applies the final demand;
// used by operators that do not need (or already do) their own guarding.
func implementNone(tr Translator, call Call, notNull NotNullImplementor, nullAs NullAs) (iet.Expr, error) {
	e, err := notNull.ImplementNotNull(tr, call, nullAs)
	if err != nil {
		return nil, err
	}
	return nullAs.Handle(e), nil
}

// boxIfNeeded re-tags inner with resultType when its own nullability
// disagrees, the way a STRICT implementor's raw (non-null, by
// construction) result gets boxed up to the call's actual (nullable)
// result type before the null guard wraps it.
func boxIfNeeded(e iet.Expr, resultType sql.Type) iet.Expr {
	if e.Type().Nullable == resultType.Nullable && e.Type().Kind == resultType.Kind {
		return e
	}
	return &iet.Boxed{Inner: e, Typ: resultType}
}
