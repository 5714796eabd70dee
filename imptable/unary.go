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

// UnaryImplementor lowers a single-operand arithmetic/bitwise operator
// (NEGATE, BIT_NOT) to iet.UnaryOp.
type UnaryImplementor struct {
	Kind iet.UnaryOpKind
}

func (u *UnaryImplementor) ImplementNotNull(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	operand, err := tr.Translate(call.Operands[0], NotPossible)
	if err != nil {
		return nil, err
	}
	return &iet.UnaryOp{Kind: u.Kind, Operand: operand, Typ: call.ResultType}, nil
}

// notNotNull is NOT's core logic: PolicyNot flips the demand before
// reaching implementNullSemantics0, which calls this with every nullable
// operand already proven non-null.
type notNotNull struct{}

func (notNotNull) ImplementNotNull(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	e, err := tr.Translate(call.Operands[0], NotPossible)
	if err != nil {
		return nil, err
	}
	return &iet.Not{Operand: e}, nil
}
