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

// NullPolicy names how an operator's result relates to its operands'
// nullability, the dimension the dispatch engine specializes on.
type NullPolicy int

const (
	// PolicyAny: the implementor decides its own null handling; the
	// engine only forwards the demand.
	PolicyAny NullPolicy = iota
	// PolicyStrict: any null operand makes the whole call null.
	PolicyStrict
	// PolicyAnd: 3-valued-logic AND (NULL is only absorbing with FALSE).
	PolicyAnd
	// PolicyOr: 3-valued-logic OR (NULL is only absorbing with TRUE).
	PolicyOr
	// PolicyNot: strict, but the FALSE/TRUE demand is flipped first.
	PolicyNot
	// PolicyNone: no null handling at all; the implementor is trusted
	// to have none to do, and only the final demand is applied to its
	// result. No built-in scalar registration uses it.
	PolicyNone
)

func (p NullPolicy) String() string {
	switch p {
	case PolicyAny:
		return "ANY"
	case PolicyStrict:
		return "STRICT"
	case PolicyAnd:
		return "AND"
	case PolicyOr:
		return "OR"
	case PolicyNot:
		return "NOT"
	case PolicyNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}
