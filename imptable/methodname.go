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

// MethodNameImplementor lowers a call to a static helper named Name on
// the shared SqlFunctions-equivalent runtime helper library (a Non-goal
// of this module; the MethodCall node only names the symbol).
type MethodNameImplementor struct {
	Name string
}

func (m *MethodNameImplementor) ImplementNotNull(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	args, err := tr.TranslateList(call.Operands, NotPossible)
	if err != nil {
		return nil, err
	}
	return &iet.MethodCall{Symbol: "SqlFunctions." + m.Name, Args: args, Typ: call.ResultType}, nil
}
