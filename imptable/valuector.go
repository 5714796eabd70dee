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

// ValueConstructorImplementor lowers ARRAY[...], MAP[...] and ROW(...)
// literals. Its own operands are never individually null-guarded (an
// ARRAY element being null is a normal element value, not a reason to
// make the whole array null), so it translates them under NotPossible
// and leaves nullability entirely to the outer nullAs.Handle.
type ValueConstructorImplementor struct {
	Kind ConstructorKind
}

func (v *ValueConstructorImplementor) Implement(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	ops, err := tr.TranslateList(call.Operands, NotPossible)
	if err != nil {
		return nil, err
	}
	e, err := tr.TranslateConstructor(ops, v.Kind)
	if err != nil {
		return nil, err
	}
	return nullAs.Handle(e), nil
}
