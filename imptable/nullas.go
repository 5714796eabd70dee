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

// Package imptable is the SQL operator implementation table: a registry
// of per-operator implementors and the null-semantics dispatch engine that
// lowers relational-algebra scalar/aggregate/window calls into the IET.
package imptable

import (
	"github.com/sungsoo/go-imptable/iet"
)

// NullAs is the demand a caller places on a translated expression's
// relationship to NULL: how should a NULL result be represented.
type NullAs int

const (
	// Null demands the expression evaluate to NULL when null, unchanged.
	Null NullAs = iota
	// False demands NULL collapse to FALSE (a WHERE-clause predicate).
	False
	// True demands NULL collapse to TRUE.
	True
	// NotPossible asserts the expression can never be null; undefined
	// behavior if that assertion is violated at runtime.
	NotPossible
	// IsNull demands the boolean answer to "is this expression null".
	IsNull
	// IsNotNull demands the boolean answer to "is this expression not null".
	IsNotNull
)

func (n NullAs) String() string {
	switch n {
	case Null:
		return "NULL"
	case False:
		return "FALSE"
	case True:
		return "TRUE"
	case NotPossible:
		return "NOT_POSSIBLE"
	case IsNull:
		return "IS_NULL"
	case IsNotNull:
		return "IS_NOT_NULL"
	default:
		return "UNKNOWN"
	}
}

// Handle applies the demand n to an already-lowered expression e, the way
// a translator finishes off a NotNullImplementor's result. It is written
// against iet.Optimize's constant-null folding rules: feeding it the
// iet.NullExpr sentinel already yields the correct FALSE/TRUE/IS_NULL
// collapse, so no separate "always null" case is needed here.
func (n NullAs) Handle(e iet.Expr) iet.Expr {
	switch n {
	case Null, NotPossible:
		return e
	case False:
		if e.Type().IsPrimitive() {
			return e
		}
		return iet.Optimize(iet.MakeCondition(&iet.Equal{Lhs: e, Rhs: iet.NullExpr}, iet.FalseExpr, e))
	case True:
		if e.Type().IsPrimitive() {
			return e
		}
		return iet.Optimize(iet.MakeCondition(&iet.Equal{Lhs: e, Rhs: iet.NullExpr}, iet.TrueExpr, e))
	case IsNull:
		return iet.Optimize(&iet.Equal{Lhs: e, Rhs: iet.NullExpr})
	case IsNotNull:
		return iet.Optimize(&iet.NotEqual{Lhs: e, Rhs: iet.NullExpr})
	default:
		return e
	}
}

func flipDemand(n NullAs) NullAs {
	switch n {
	case False:
		return True
	case True:
		return False
	default:
		return n
	}
}
