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

package aggregation

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/sungsoo/go-imptable/imptable/aggregation/window"
	"github.com/sungsoo/go-imptable/sql"
)

// Factory builds a fresh AggImplementor for one call site, given the
// (already-harmonized) operand types — MIN/MAX and SUM/AVG/bitwise need
// the operand's numeric kind to pick their result representation.
type Factory func(operandTypes []sql.Type) AggImplementor

var (
	mu       sync.RWMutex
	registry = map[sql.Op]Factory{}
)

func register(op sql.Op, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[op]; exists {
		panic("imptable/aggregation: duplicate registration for " + string(op))
	}
	registry[op] = f
}

// Get returns the Factory registered for op, or nil on a lookup miss.
func Get(op sql.Op) Factory {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := registry[op]
	if !ok {
		logrus.WithField("op", op).Debug("imptable/aggregation: lookup miss")
		return nil
	}
	return f
}

func numericKindOf(operandTypes []sql.Type) sql.Kind {
	if len(operandTypes) == 0 {
		return sql.Bigint
	}
	return operandTypes[0].Kind
}

func init() {
	register(sql.OpCount, func(operandTypes []sql.Type) AggImplementor { return Count{} })
	register(sql.OpSum, func(operandTypes []sql.Type) AggImplementor { return NewSum(numericKindOf(operandTypes)) })
	register(sql.OpSum0, func(operandTypes []sql.Type) AggImplementor { return NewSumZero(numericKindOf(operandTypes)) })
	register(sql.OpAvg, func(operandTypes []sql.Type) AggImplementor { return NewAvg(numericKindOf(operandTypes)) })

	register(sql.OpMin, func(operandTypes []sql.Type) AggImplementor {
		return NewMin(defaultCompare, defaultResultType(operandTypes))
	})
	register(sql.OpMax, func(operandTypes []sql.Type) AggImplementor {
		return NewMax(defaultCompare, defaultResultType(operandTypes))
	})
	register(sql.OpSingleValue, func(operandTypes []sql.Type) AggImplementor {
		return NewSingleValue(defaultResultType(operandTypes))
	})

	register(sql.OpBitAnd, func(operandTypes []sql.Type) AggImplementor { return NewBitAnd(defaultResultType(operandTypes)) })
	register(sql.OpBitOr, func(operandTypes []sql.Type) AggImplementor { return NewBitOr(defaultResultType(operandTypes)) })
	register(sql.OpBitXor, func(operandTypes []sql.Type) AggImplementor { return NewBitXor(defaultResultType(operandTypes)) })
}

// GetForCall is the spec's single aggregate dispatch entry point:
// get(agg, forWindow). op names the operator and operandTypes its
// already-harmonized operand types; udaf is the user-defined aggregate for
// this call site (nil if there is none). On a built-in registry miss udaf
// must satisfy UDAFFactory (ErrInvalidUDF otherwise).
//
// When forWindow is true, a built-in window variant from the window
// package is preferred and returned as a window.WinAggImplementor; failing
// that, a udaf implementing WindowCapableUDAFFactory is asked for its
// window instance (an AggImplementor) before the built-in registry is
// consulted. Otherwise (or when forWindow is false) the
// regular AggImplementor is returned, since regular aggregates (SUM, AVG,
// MIN, MAX, COUNT, ...) are themselves usable in window context, sliding
// over whatever frame the caller drives them against. Callers type-switch
// on the returned value to tell which shape they got.
func GetForCall(op sql.Op, forWindow bool, udaf interface{}, operandTypes []sql.Type) (interface{}, error) {
	if forWindow {
		if wf := window.Get(op); wf != nil {
			return wf(operandTypes), nil
		}
		if wc, ok := udaf.(WindowCapableUDAFFactory); ok {
			return wc.NewWindowInstance(operandTypes)
		}
	}

	if f := Get(op); f != nil {
		return f(operandTypes), nil
	}
	if udaf == nil {
		return nil, sql.ErrUnknownOperator.New(string(op))
	}
	factory, ok := udaf.(UDAFFactory)
	if !ok {
		return nil, sql.ErrInvalidUDF.New(fmt.Sprintf("%T", udaf))
	}
	return NewUDAF(factory, operandTypes)
}

func defaultResultType(operandTypes []sql.Type) sql.Type {
	if len(operandTypes) == 0 {
		return sql.NewAny(true)
	}
	return operandTypes[0]
}

// defaultCompare orders the Go comparable primitive kinds (numbers,
// strings) the ImpTable's own MinMax sees from already-evaluated operand
// values. A caller supplying richer types (DECIMAL, DATE) constructs its
// own MinMax with a type-aware Compare instead of going through Get.
func defaultCompare(a, b interface{}) int {
	switch x := a.(type) {
	case int64:
		y := b.(int64)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	case float64:
		y := b.(float64)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	case string:
		y := b.(string)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	default:
		return 0
	}
}
