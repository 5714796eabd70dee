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

// IsXxxImplementor covers the six IS [NOT] {NULL,TRUE,FALSE} predicates.
// Seek is nil for IS [NOT] NULL (a pure nullability test); otherwise it
// names the boolean value being sought (true for IS [NOT] TRUE, false for
// IS [NOT] FALSE), and the operand is translated with the demand that
// treats UNKNOWN as the opposite of Seek.
type IsXxxImplementor struct {
	Seek   *bool
	Negate bool
}

func (x *IsXxxImplementor) Implement(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	operand := call.Operands[0]

	if x.Seek == nil {
		demand := IsNull
		if x.Negate {
			demand = IsNotNull
		}
		return tr.Translate(operand, demand)
	}

	demand := True
	if *x.Seek {
		demand = False
	}
	e, err := tr.Translate(operand, demand)
	if err != nil {
		return nil, err
	}
	if x.Negate == *x.Seek {
		return iet.Optimize(&iet.Not{Operand: e}), nil
	}
	return e, nil
}
