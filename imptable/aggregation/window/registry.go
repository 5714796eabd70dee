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

package window

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/sungsoo/go-imptable/sql"
)

// Factory builds a fresh WinAggImplementor for one call site.
type Factory func(operandTypes []sql.Type) WinAggImplementor

var (
	mu       sync.RWMutex
	registry = map[sql.Op]Factory{}
)

func register(op sql.Op, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[op]; exists {
		panic("imptable/aggregation/window: duplicate registration for " + string(op))
	}
	registry[op] = f
}

// Get returns the Factory registered for op, or nil on a lookup miss.
func Get(op sql.Op) Factory {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := registry[op]
	if !ok {
		logrus.WithField("op", op).Debug("imptable/aggregation/window: lookup miss")
		return nil
	}
	return f
}

func operandType(operandTypes []sql.Type) sql.Type {
	if len(operandTypes) == 0 {
		return sql.NewAny(true)
	}
	return operandTypes[0]
}

func init() {
	register(sql.OpRank, func(operandTypes []sql.Type) WinAggImplementor { return Rank{} })
	register(sql.OpDenseRank, func(operandTypes []sql.Type) WinAggImplementor { return DenseRank{} })
	register(sql.OpRowNumber, func(operandTypes []sql.Type) WinAggImplementor { return RowNumber{} })
	register(sql.OpFirstValue, func(operandTypes []sql.Type) WinAggImplementor { return NewFirstValue(operandType(operandTypes)) })
	register(sql.OpLastValue, func(operandTypes []sql.Type) WinAggImplementor { return NewLastValue(operandType(operandTypes)) })
	register(sql.OpLead, func(operandTypes []sql.Type) WinAggImplementor { return NewLead(operandType(operandTypes)) })
	register(sql.OpLag, func(operandTypes []sql.Type) WinAggImplementor { return NewLag(operandType(operandTypes)) })
	// NTILE's bucket count is a per-call constant (its sole operand must be
	// a positive integer literal), not something derivable from operand
	// types alone — a translator recognizing sql.OpNtile should read that
	// literal and call NewNtile directly instead of going through Get.
	// The registry entry exists so Get(sql.OpNtile) still reports a known
	// operator rather than a lookup miss; buckets=1 here is a placeholder
	// a caller going through Get must override.
	register(sql.OpNtile, func(operandTypes []sql.Type) WinAggImplementor { return NewNtile(1) })

	register(sql.OpCount, func(operandTypes []sql.Type) WinAggImplementor {
		nullable := len(operandTypes) > 0 && operandTypes[0].Nullable
		return NewCountWin(nullable)
	})
}
