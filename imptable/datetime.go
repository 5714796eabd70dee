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

// DatetimeArithmeticImplementor lowers DATETIME_PLUS(date_or_time,
// interval): the interval is held in milliseconds, so DATE addition
// converts it to whole days and TIME addition truncates it to whole
// milliseconds before the add.
type DatetimeArithmeticImplementor struct{}

func (DatetimeArithmeticImplementor) Implement(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	core := NewNullPolicyImplementor(NotNullImplementorFunc(implementDatetimePlusNotNull), PolicyStrict, false)
	return core.Implement(tr, call, nullAs)
}

func implementDatetimePlusNotNull(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	lhs, err := tr.Translate(call.Operands[0], NotPossible)
	if err != nil {
		return nil, err
	}
	rhs, err := tr.Translate(call.Operands[1], NotPossible)
	if err != nil {
		return nil, err
	}

	switch call.Operands[0].Type().Kind {
	case sql.Date:
		rhs = &iet.MethodCall{Symbol: "SqlFunctions.INTERVAL_TO_DAYS", Args: []iet.Expr{rhs}, Typ: sql.NewInt(false)}
	case sql.Time:
		rhs = &iet.MethodCall{Symbol: "SqlFunctions.INTERVAL_TO_MILLIS", Args: []iet.Expr{rhs}, Typ: sql.NewBigint(false)}
	}
	return &iet.BinOp{Kind: iet.Add, Lhs: lhs, Rhs: rhs, Typ: call.ResultType}, nil
}
