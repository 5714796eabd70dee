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
	"sync"

	"github.com/mitchellh/hashstructure"
	"github.com/sirupsen/logrus"

	"github.com/sungsoo/go-imptable/expression"
	"github.com/sungsoo/go-imptable/sql"
)

// harmonizePlan is the outcome of LeastRestrictive for one (op, operand
// types) shape, cached by harmonizeKey so repeated call sites with the
// same operand type signature — "a.x = 5" appearing throughout a WHERE
// clause, say — skip recomputing the promotion.
type harmonizePlan struct {
	op     sql.Op
	types  []sql.Type
	common sql.Type
	ok     bool
}

var (
	harmonizeMu    sync.RWMutex
	harmonizeCache = map[uint64]harmonizePlan{}
)

// harmonizeKey hashes the call's operator together with its operand types;
// a hash collision only costs a redundant LeastRestrictive recomputation,
// never a correctness issue, since harmonizeLeastRestrictive checks the
// cached plan's operator and operand types before using it.
func harmonizeKey(op sql.Op, types []sql.Type) (uint64, bool) {
	sig := struct {
		Op    sql.Op
		Types []sql.Type
	}{op, types}
	h, err := hashstructure.Hash(sig, nil)
	if err != nil {
		logrus.WithError(err).Debug("imptable: harmonize cache key hash failed, skipping cache")
		return 0, false
	}
	return h, true
}

// harmonizeLeastRestrictive is sql.LeastRestrictive with a cache in front,
// keyed by harmonizeKey. A cache miss falls through to the real
// computation and, when hashable, stores the result for next time.
func harmonizeLeastRestrictive(op sql.Op, types []sql.Type) (sql.Type, bool) {
	key, hashable := harmonizeKey(op, types)
	if hashable {
		harmonizeMu.RLock()
		plan, found := harmonizeCache[key]
		harmonizeMu.RUnlock()
		if found && plan.op == op && len(plan.types) == len(types) {
			same := true
			for i := range types {
				same = same && plan.types[i].Equals(types[i])
			}
			if same {
				return plan.common, plan.ok
			}
		}
	}

	common, ok := sql.LeastRestrictive(types)

	if hashable {
		harmonizeMu.Lock()
		harmonizeCache[key] = harmonizePlan{op: op, types: append([]sql.Type(nil), types...), common: common, ok: ok}
		harmonizeMu.Unlock()
	}
	return common, ok
}

// harmonizeCall rewrites call's operands to their least-restrictive
// common SQL type, preserving each operand's own nullability (only the
// Kind/Precision/Scale move to the common type, never the Nullable flag)
// and leaving the call untouched when the operands already agree or have
// no common type at all.
func harmonizeCall(call Call) Call {
	if len(call.Operands) < 2 {
		return call
	}

	types := make([]sql.Type, len(call.Operands))
	allEqual := true
	for i, op := range call.Operands {
		types[i] = op.Type()
		if i > 0 && !types[i].Equals(types[0]) {
			allEqual = false
		}
	}
	if allEqual {
		return call
	}

	common, ok := harmonizeLeastRestrictive(call.Op, types)
	if !ok {
		return call
	}

	newOperands := make([]expression.Expression, len(call.Operands))
	changed := false
	for i, op := range call.Operands {
		target := common.WithNullable(types[i].Nullable)
		if target.Equals(types[i]) {
			newOperands[i] = op
			continue
		}
		newOperands[i] = expression.NewCast(op, target)
		changed = true
	}
	if !changed {
		return call
	}
	call.Operands = newOperands
	return call
}
