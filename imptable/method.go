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

// MethodImplementor lowers a call to an instance (or static) method named
// Symbol: the first operand is the receiver unless Static is set.
type MethodImplementor struct {
	Symbol string
	Static bool
}

func (m *MethodImplementor) ImplementNotNull(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	args, err := tr.TranslateList(call.Operands, NotPossible)
	if err != nil {
		return nil, err
	}
	var target iet.Expr
	if !m.Static {
		target, args = args[0], args[1:]
	}
	return &iet.MethodCall{Target: target, Symbol: m.Symbol, Args: args, Typ: call.ResultType}, nil
}
