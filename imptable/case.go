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

// CaseImplementor lowers CASE WHEN cond1 THEN val1 ... ELSE valN END,
// presented as a Call whose Operands are the flattened
// [cond1, val1, cond2, val2, ..., elseVal] list. It is registered
// directly (not wrapped in NewNullPolicyImplementor) because its null
// handling is recursive over arms rather than uniform over operands.
var CaseImplementor CallImplementor = CallImplementorFunc(implementCaseCall)

func implementCaseCall(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	return implementCase(tr, call.Operands, call.ResultType, nullAs, 0)
}

func implementCase(tr Translator, ops []expression.Expression, resultType sql.Type, nullAs NullAs, i int) (iet.Expr, error) {
	if i == len(ops)-1 {
		e, err := tr.Translate(ops[i], nullAs)
		if err != nil {
			return nil, err
		}
		return tr.Builder().EnsureType(resultType, e, true), nil
	}

	// WHEN conditions are evaluated with NULL collapsing to FALSE — a
	// NULL condition never selects its branch, same as an explicit
	// FALSE one. Translating the condition first, before its value,
	// lets a condition proven constantly FALSE or TRUE at translation
	// time skip the branch (or the rest of the chain) without ever
	// touching the value side — this is the AlwaysNull signal folded
	// into the ordinary constant-folding path, not a distinct sentinel.
	test, err := tr.Translate(ops[i], False)
	if err != nil {
		return nil, err
	}
	if isConstBool(test, false) {
		return implementCase(tr, ops, resultType, nullAs, i+2)
	}

	ifTrue, err := tr.Translate(ops[i+1], nullAs)
	if err != nil {
		return nil, err
	}
	ifTrue = tr.Builder().EnsureType(resultType, ifTrue, true)

	if isConstBool(test, true) {
		return ifTrue, nil
	}

	ifFalse, err := implementCase(tr, ops, resultType, nullAs, i+2)
	if err != nil {
		return nil, err
	}

	return iet.Optimize(iet.MakeCondition(test, ifTrue, ifFalse)), nil
}

func isConstBool(e iet.Expr, want bool) bool {
	c, ok := e.(*iet.Const)
	return ok && c.Value == want
}
