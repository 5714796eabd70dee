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

	"github.com/sungsoo/go-imptable/expression"
	"github.com/sungsoo/go-imptable/iet"
)

// TrimSpec names which side(s) TRIM strips, the value TRIM's leading
// constant operand carries.
type TrimSpec int

const (
	TrimBoth TrimSpec = iota
	TrimLeading
	TrimTrailing
)

// TrimImplementor peels TRIM's leading trim-spec literal off the operand
// list, compiling it to two boolean flags, then delegates the remaining
// (string-to-trim, trim-characters) operands to a STRICT implementor.
type TrimImplementor struct{}

func (TrimImplementor) Implement(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	flag, ok := call.Operands[0].(*expression.Literal)
	if !ok {
		return nil, fmt.Errorf("imptable: TRIM requires a constant trim-spec operand, got %T", call.Operands[0])
	}
	spec, ok := flag.Value.(TrimSpec)
	if !ok {
		return nil, fmt.Errorf("imptable: TRIM's trim-spec operand must be a TrimSpec, got %T", flag.Value)
	}
	leading := spec == TrimBoth || spec == TrimLeading
	trailing := spec == TrimBoth || spec == TrimTrailing

	rest := call.WithOperands(call.Operands[1:])
	core := NewNullPolicyImplementor(NotNullImplementorFunc(func(tr Translator, c Call, nullAs NullAs) (iet.Expr, error) {
		args, err := tr.TranslateList(c.Operands, NotPossible)
		if err != nil {
			return nil, err
		}
		full := append([]iet.Expr{iet.BoolConst(leading), iet.BoolConst(trailing)}, args...)
		return &iet.MethodCall{Symbol: "SqlFunctions.TRIM", Args: full, Typ: c.ResultType}, nil
	}), PolicyStrict, false)
	return core.Implement(tr, rest, nullAs)
}
