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
	"github.com/sungsoo/go-imptable/sql"
)

// SystemFunctionImplementor lowers the niladic context functions
// (CURRENT_USER, SESSION_USER, USER, SYSTEM_USER, CURRENT_PATH,
// CURRENT_ROLE and the CURRENT_TIME/DATE/TIMESTAMP/LOCALTIME family).
// None of them take operands and none of them are ever null, so a
// IS_NULL/IS_NOT_NULL demand is answered directly without delegating.
// Every one of them folds straight to an iet.Const at translation time
// (Ctx.Now is still read fresh on each Implement call, only LoginName is
// fixed for the process) rather than deferring to a runtime helper the
// back end would have to implement.
type SystemFunctionImplementor struct {
	Ctx *sql.Context
}

func (s SystemFunctionImplementor) Implement(tr Translator, call Call, nullAs NullAs) (iet.Expr, error) {
	switch nullAs {
	case IsNull:
		return iet.FalseExpr, nil
	case IsNotNull:
		return iet.TrueExpr, nil
	}

	ctx := s.Ctx
	if ctx == nil {
		ctx = sql.NewEmptyContext()
	}

	switch call.Op {
	case sql.OpCurrentUser, sql.OpSessionUser, sql.OpUser:
		return &iet.Const{Value: "sa", Typ: call.ResultType}, nil
	case sql.OpSystemUser:
		return &iet.Const{Value: ctx.LoginName, Typ: call.ResultType}, nil
	case sql.OpCurrentPath, sql.OpCurrentRole:
		return &iet.Const{Value: "", Typ: call.ResultType}, nil
	case sql.OpCurrentDate:
		return &iet.Const{Value: ctx.Now().Format("2006-01-02"), Typ: call.ResultType}, nil
	case sql.OpCurrentTime, sql.OpLocalTime:
		return &iet.Const{Value: ctx.Now().Format("15:04:05"), Typ: call.ResultType}, nil
	case sql.OpCurrentTimestamp, sql.OpLocalTimestamp:
		return &iet.Const{Value: ctx.Now().Format("2006-01-02 15:04:05"), Typ: call.ResultType}, nil
	default:
		return nil, fmt.Errorf("imptable: SystemFunctionImplementor does not handle %s", call.Op)
	}
}
