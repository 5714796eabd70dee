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
	"github.com/sungsoo/go-imptable/iet"
	"github.com/sungsoo/go-imptable/sql"
)

// ItemImplementor lowers collection[index]/map[key] access, picking the
// right backing helper from the collection operand's static kind and
// then delegating to a STRICT implementor built around it: an out-of-
// range index or missing key is a runtime null, same as a null operand.
type ItemImplementor struct{}

func (ItemImplementor) Implement(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	var helper string
	switch call.Operands[0].Type().Kind {
	case sql.Array:
		helper = "ARRAY_ITEM"
	case sql.Map:
		helper = "MAP_ITEM"
	default:
		helper = "ANY_ITEM"
	}
	core := NewNullPolicyImplementor(&MethodNameImplementor{Name: helper}, PolicyStrict, false)
	return core.Implement(tr, call, nullAs)
}
