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
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/sungsoo/go-imptable/iet"
	"github.com/sungsoo/go-imptable/sql"
)

var (
	scalarMu       sync.RWMutex
	scalarRegistry = map[sql.Op]CallImplementor{}
)

func registerScalar(op sql.Op, impl CallImplementor) {
	scalarMu.Lock()
	defer scalarMu.Unlock()
	if _, exists := scalarRegistry[op]; exists {
		panic("imptable: duplicate scalar registration for " + string(op))
	}
	scalarRegistry[op] = impl
}

// Get returns the CallImplementor registered for op, or nil if there is
// none — a lookup miss, which the caller (not this package) decides how
// to react to. The registry is built once at init and never mutated
// afterward, so concurrent calls to Get need no further synchronization
// beyond the map read lock.
func Get(op sql.Op) CallImplementor {
	scalarMu.RLock()
	defer scalarMu.RUnlock()
	impl, ok := scalarRegistry[op]
	if !ok {
		logrus.WithField("op", op).Debug("imptable: scalar lookup miss")
		return nil
	}
	return impl
}

// ImplementableCall is the capability a user-defined scalar function must
// expose to GetForCall on a built-in lookup miss: its own CallImplementor.
type ImplementableCall interface {
	Implementor() CallImplementor
}

// GetForCall is the scalar half of the spec's get(op) dispatch entry
// point: op is resolved against the built-in registry first; when that
// misses and udf is non-nil, udf must expose the ImplementableCall
// capability (ErrInvalidUDF otherwise). A miss with no udf supplied at
// all is ErrUnknownOperator.
func GetForCall(op sql.Op, udf interface{}) (CallImplementor, error) {
	if impl := Get(op); impl != nil {
		return impl, nil
	}
	if udf == nil {
		return nil, sql.ErrUnknownOperator.New(string(op))
	}
	capable, ok := udf.(ImplementableCall)
	if !ok {
		return nil, sql.ErrInvalidUDF.New(fmt.Sprintf("%T", udf))
	}
	return capable.Implementor(), nil
}

func boolPtr(b bool) *bool { return &b }

func strict(notNull NotNullImplementor, harmonize bool) CallImplementor {
	return NewNullPolicyImplementor(notNull, PolicyStrict, harmonize)
}

func init() {
	bin := func(kind iet.BinOpKind, backup string) CallImplementor {
		return strict(&BinaryImplementor{Kind: kind, BackupMethod: backup}, true)
	}
	cmp := func(kind iet.BinOpKind, backup string) CallImplementor {
		return strict(&BinaryImplementor{Kind: kind, BackupMethod: backup, IsComparison: true}, true)
	}

	registerScalar(sql.OpPlus, bin(iet.Add, "plus"))
	registerScalar(sql.OpMinus, bin(iet.Sub, "minus"))
	registerScalar(sql.OpMultiply, bin(iet.Mul, "multiply"))
	registerScalar(sql.OpDivide, bin(iet.Div, "divide"))
	registerScalar(sql.OpMod, bin(iet.Mod, "mod"))

	registerScalar(sql.OpEquals, strict(&equalityImplementor{negate: false, backupMethod: "equals"}, true))
	registerScalar(sql.OpNotEquals, strict(&equalityImplementor{negate: true, backupMethod: "equals"}, true))
	registerScalar(sql.OpLess, cmp(iet.Lt, "lessThan"))
	registerScalar(sql.OpLessEq, cmp(iet.Le, "lessThanOrEqual"))
	registerScalar(sql.OpGreater, cmp(iet.Gt, "greaterThan"))
	registerScalar(sql.OpGreaterEq, cmp(iet.Ge, "greaterThanOrEqual"))

	registerScalar(sql.OpAnd, NewNullPolicyImplementor(nil, PolicyAnd, false))
	registerScalar(sql.OpOr, NewNullPolicyImplementor(nil, PolicyOr, false))
	registerScalar(sql.OpNot, NewNullPolicyImplementor(notNotNull{}, PolicyNot, false))

	registerScalar(sql.OpNegate, strict(&UnaryImplementor{Kind: iet.Negate}, false))
	registerScalar(sql.OpBitNot, strict(&UnaryImplementor{Kind: iet.BitNot}, false))

	registerScalar(sql.OpCase, CaseImplementor)
	registerScalar(sql.OpCast, CastOptimizedImplementor)

	registerScalar(sql.OpIsNull, &IsXxxImplementor{Seek: nil, Negate: false})
	registerScalar(sql.OpIsNotNull, &IsXxxImplementor{Seek: nil, Negate: true})
	registerScalar(sql.OpIsTrue, &IsXxxImplementor{Seek: boolPtr(true), Negate: false})
	registerScalar(sql.OpIsNotTrue, &IsXxxImplementor{Seek: boolPtr(true), Negate: true})
	registerScalar(sql.OpIsFalse, &IsXxxImplementor{Seek: boolPtr(false), Negate: false})
	registerScalar(sql.OpIsNotFalse, &IsXxxImplementor{Seek: boolPtr(false), Negate: true})

	registerScalar(sql.OpItem, ItemImplementor{})
	registerScalar(sql.OpTrim, TrimImplementor{})

	registerScalar(sql.OpUpper, strict(&MethodNameImplementor{Name: "UPPER"}, false))
	registerScalar(sql.OpLower, strict(&MethodNameImplementor{Name: "LOWER"}, false))
	registerScalar(sql.OpAbs, strict(&MethodNameImplementor{Name: "ABS"}, false))
	registerScalar(sql.OpLength, strict(&MethodNameImplementor{Name: "CHAR_LENGTH"}, false))
	registerScalar(sql.OpConcat, strict(&MethodNameImplementor{Name: "CONCAT"}, false))

	registerScalar(sql.OpArrayValueConstructor, &ValueConstructorImplementor{Kind: ArrayCtor})
	registerScalar(sql.OpMapValueConstructor, &ValueConstructorImplementor{Kind: MapCtor})
	registerScalar(sql.OpRowValueConstructor, &ValueConstructorImplementor{Kind: RowCtor})

	sysFn := SystemFunctionImplementor{Ctx: sql.NewEmptyContext()}
	for _, op := range []sql.Op{
		sql.OpCurrentUser, sql.OpSessionUser, sql.OpUser, sql.OpSystemUser,
		sql.OpCurrentPath, sql.OpCurrentRole,
		sql.OpCurrentTime, sql.OpCurrentDate, sql.OpCurrentTimestamp,
		sql.OpLocalTime, sql.OpLocalTimestamp,
	} {
		registerScalar(op, sysFn)
	}

	registerScalar(sql.OpDatetimePlus, DatetimeArithmeticImplementor{})
	registerScalar(sql.OpReinterpret, strict(&ReinterpretImplementor{}, false))
}
