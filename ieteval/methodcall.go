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

package ieteval

import (
	"fmt"
	"strings"

	"github.com/sungsoo/go-imptable/iet"
)

// evalMethodCall interprets the small fixed vocabulary of
// "SqlFunctions.*" runtime helpers the scalar registry's backup paths and
// named implementors emit (BinaryImplementor's BackupMethod,
// MethodNameImplementor, ItemImplementor, TrimImplementor, the
// value-constructor and system-function implementors). A real back end
// would link against an actual runtime library; this interpreter
// provides just enough of one to make the registry's output observable.
func evalMethodCall(m *iet.MethodCall, row Row) (interface{}, error) {
	args := make([]interface{}, len(m.Args))
	for i, a := range m.Args {
		v, err := Eval(a, row)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	symbol := strings.TrimPrefix(m.Symbol, "SqlFunctions.")
	switch symbol {
	case "plus":
		return arith(args[0], args[1], func(a, b float64) float64 { return a + b })
	case "minus":
		return arith(args[0], args[1], func(a, b float64) float64 { return a - b })
	case "multiply":
		return arith(args[0], args[1], func(a, b float64) float64 { return a * b })
	case "divide":
		return arith(args[0], args[1], func(a, b float64) float64 { return a / b })
	case "mod":
		return arith(args[0], args[1], func(a, b float64) float64 {
			if b == 0 {
				return 0
			}
			return float64(int64(a) % int64(b))
		})
	case "equals":
		return valuesEqual(args[0], args[1]), nil
	case "lessThan":
		return compareFloats(args[0], args[1], func(c int) bool { return c < 0 })
	case "lessThanOrEqual":
		return compareFloats(args[0], args[1], func(c int) bool { return c <= 0 })
	case "greaterThan":
		return compareFloats(args[0], args[1], func(c int) bool { return c > 0 })
	case "greaterThanOrEqual":
		return compareFloats(args[0], args[1], func(c int) bool { return c >= 0 })
	case "UPPER":
		return strings.ToUpper(fmt.Sprintf("%v", args[0])), nil
	case "LOWER":
		return strings.ToLower(fmt.Sprintf("%v", args[0])), nil
	case "ABS":
		f, ok := toFloat(args[0])
		if !ok {
			return nil, fmt.Errorf("ieteval: ABS: unsupported operand %T", args[0])
		}
		if f < 0 {
			f = -f
		}
		if _, isInt := args[0].(int64); isInt {
			return int64(f), nil
		}
		return f, nil
	case "CHAR_LENGTH":
		return int64(len([]rune(fmt.Sprintf("%v", args[0])))), nil
	case "CONCAT":
		var b strings.Builder
		for _, a := range args {
			fmt.Fprintf(&b, "%v", a)
		}
		return b.String(), nil
	case "TRIM":
		return evalTrim(args)
	case "ARRAY_ITEM":
		return evalArrayItem(args)
	case "MAP_ITEM":
		return evalMapItem(args)
	case "ANY_ITEM":
		return evalArrayItem(args)
	case "ARRAY":
		return args, nil
	case "MAP":
		out := map[interface{}]interface{}{}
		for i := 0; i+1 < len(args); i += 2 {
			out[args[i]] = args[i+1]
		}
		return out, nil
	case "ROW":
		return args, nil
	case "INTERVAL_TO_DAYS":
		n, _ := toFloat(args[0])
		return int64(n) / 86400000, nil // milliseconds per day
	case "INTERVAL_TO_MILLIS":
		n, _ := toFloat(args[0])
		return int64(n), nil
	default:
		return nil, fmt.Errorf("ieteval: no interpreter support for runtime helper %q", m.Symbol)
	}
}

func arith(a, b interface{}, f func(x, y float64) float64) (interface{}, error) {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return nil, fmt.Errorf("ieteval: arithmetic: unsupported operands %T, %T", a, b)
	}
	result := f(af, bf)
	if _, isInt := a.(int64); isInt {
		if _, isInt := b.(int64); isInt {
			return int64(result), nil
		}
	}
	return result, nil
}

func compareFloats(a, b interface{}, pred func(cmp int) bool) (interface{}, error) {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return nil, fmt.Errorf("ieteval: comparison: unsupported operands %T, %T", a, b)
	}
	switch {
	case af < bf:
		return pred(-1), nil
	case af > bf:
		return pred(1), nil
	default:
		return pred(0), nil
	}
}

func evalTrim(args []interface{}) (interface{}, error) {
	if len(args) < 4 {
		return nil, fmt.Errorf("ieteval: TRIM expects (leading, trailing, string, chars)")
	}
	leading, _ := args[0].(bool)
	trailing, _ := args[1].(bool)
	s := fmt.Sprintf("%v", args[2])
	cutset := fmt.Sprintf("%v", args[3])
	switch {
	case leading && trailing:
		return strings.Trim(s, cutset), nil
	case leading:
		return strings.TrimLeft(s, cutset), nil
	case trailing:
		return strings.TrimRight(s, cutset), nil
	default:
		return s, nil
	}
}

func evalArrayItem(args []interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("ieteval: ARRAY_ITEM expects (array, index)")
	}
	arr, ok := args[0].([]interface{})
	if !ok {
		return nil, nil
	}
	idx, ok := toFloat(args[1])
	if !ok {
		return nil, fmt.Errorf("ieteval: ARRAY_ITEM: non-numeric index %T", args[1])
	}
	i := int(idx) - 1 // SQL arrays are 1-indexed
	if i < 0 || i >= len(arr) {
		return nil, nil
	}
	return arr[i], nil
}

func evalMapItem(args []interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("ieteval: MAP_ITEM expects (map, key)")
	}
	m, ok := args[0].(map[interface{}]interface{})
	if !ok {
		return nil, nil
	}
	v, ok := m[args[1]]
	if !ok {
		return nil, nil
	}
	return v, nil
}
