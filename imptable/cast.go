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

import "github.com/sungsoo/go-imptable/iet"

// CastOptimizedImplementor lowers CAST(operand AS resultType). It short-
// circuits to a no-op translate when the operand is already the target
// type, and otherwise dispatches a STRICT-policy cast core: a cast of a
// null operand is null, per standard SQL CAST semantics.
var CastOptimizedImplementor CallImplementor = CallImplementorFunc(implementCastCall)

func implementCastCall(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	operand := call.Operands[0]
	if call.ResultType.Equals(operand.Type()) {
		return tr.Translate(operand, nullAs)
	}
	core := NewNullPolicyImplementor(NotNullImplementorFunc(implementCastNotNull), PolicyStrict, false)
	return core.Implement(tr, call, nullAs)
}

func implementCastNotNull(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	operand := call.Operands[0]
	e, err := tr.Translate(operand, NotPossible)
	if err != nil {
		return nil, err
	}
	targetNullable := call.ResultType.Nullable && operand.Type().Nullable && !operand.Type().IsPrimitive()
	target := call.ResultType.WithNullable(targetNullable)
	return tr.TranslateCast(operand.Type(), target, e)
}
