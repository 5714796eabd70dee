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
	"fmt"

	"github.com/sungsoo/go-imptable/iet"
)

// ReinterpretImplementor lowers REINTERPRET(operand): a type-system-only
// relabeling that changes no bits at runtime (e.g. DATE to its backing
// INT representation), so it simply re-translates the operand under the
// caller's own demand.
type ReinterpretImplementor struct{}

func (ReinterpretImplementor) ImplementNotNull(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	if len(call.Operands) != 1 {
		return nil, fmt.Errorf("imptable: REINTERPRET takes exactly one operand, got %d", len(call.Operands))
	}
	return tr.Translate(call.Operands[0], nullAs)
}
