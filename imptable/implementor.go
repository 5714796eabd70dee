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

// CallImplementor is what the scalar registry hands back from Get: a
// fully null-aware lowering for one operator.
type CallImplementor interface {
	Implement(tr Translator, call Call, nullAs NullAs) (iet.Expr, error)
}

// CallImplementorFunc adapts a plain function to CallImplementor.
type CallImplementorFunc func(tr Translator, call Call, nullAs NullAs) (iet.Expr, error)

func (f CallImplementorFunc) Implement(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	return f(tr, call, nullAs)
}

// NotNullImplementor is the operator's core logic: the part the
// NullPolicy engine wraps, written assuming every operand it is handed
// has already been proven (or asserted, under NotPossible) non-null.
type NotNullImplementor interface {
	ImplementNotNull(tr Translator, call Call, nullAs NullAs) (iet.Expr, error)
}

// NotNullImplementorFunc adapts a plain function to NotNullImplementor.
type NotNullImplementorFunc func(tr Translator, call Call, nullAs NullAs) (iet.Expr, error)

func (f NotNullImplementorFunc) ImplementNotNull(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	return f(tr, call, nullAs)
}
