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

// comparablePrimitives are the kinds whose primitive representation
// already supports <, <=, > and >= directly; everything else needs the
// BackupMethod helper even when both operands are otherwise primitive.
var comparablePrimitives = map[sql.Kind]bool{
	sql.Int: true, sql.Bigint: true, sql.Double: true,
}

// BinaryImplementor lowers a two-operand arithmetic or ordering operator
// to iet.BinOp, falling back to a named runtime helper (which coerces its
// own operands) when the operands are not primitive, or — for comparisons — not in the
// comparable-primitive set (e.g. DECIMAL, VARCHAR).
type BinaryImplementor struct {
	Kind         iet.BinOpKind
	BackupMethod string
	IsComparison bool
}

func (b *BinaryImplementor) ImplementNotNull(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	lhs, err := tr.Translate(call.Operands[0], NotPossible)
	if err != nil {
		return nil, err
	}
	rhs, err := tr.Translate(call.Operands[1], NotPossible)
	if err != nil {
		return nil, err
	}

	needsBackup := b.BackupMethod != "" &&
		(!call.Operands[0].Type().IsPrimitive() ||
			(b.IsComparison && !comparablePrimitives[call.Operands[0].Type().Kind]))
	if needsBackup {
		return &iet.MethodCall{Symbol: "SqlFunctions." + b.BackupMethod, Args: []iet.Expr{lhs, rhs}, Typ: call.ResultType}, nil
	}
	return &iet.BinOp{Kind: b.Kind, Lhs: lhs, Rhs: rhs, Typ: call.ResultType}, nil
}

// equalityImplementor lowers = and <> to the dedicated iet.Equal/NotEqual
// nodes (rather than BinOp), falling back to BackupMethod the same way
// BinaryImplementor does for non-primitive operands.
type equalityImplementor struct {
	negate       bool
	backupMethod string
}

func (e *equalityImplementor) ImplementNotNull(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	lhs, err := tr.Translate(call.Operands[0], NotPossible)
	if err != nil {
		return nil, err
	}
	rhs, err := tr.Translate(call.Operands[1], NotPossible)
	if err != nil {
		return nil, err
	}

	if e.backupMethod != "" && !call.Operands[0].Type().IsPrimitive() {
		eq := iet.Expr(&iet.MethodCall{Symbol: "SqlFunctions." + e.backupMethod, Args: []iet.Expr{lhs, rhs}, Typ: sql.NewBoolean(false)})
		if e.negate {
			return &iet.Not{Operand: eq}, nil
		}
		return eq, nil
	}
	if e.negate {
		return &iet.NotEqual{Lhs: lhs, Rhs: rhs}, nil
	}
	return &iet.Equal{Lhs: lhs, Rhs: rhs}, nil
}
