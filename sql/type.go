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

// Package sql is the smallest relational data model the ImpTable needs:
// type kinds and promotion, rows, a minimal execution context and the
// shared operator vocabulary. It has no parser, no catalog and no storage.
package sql

import (
	"fmt"

	"github.com/mitchellh/hashstructure"
)

// Kind enumerates the SQL type kinds the ImpTable reasons about.
type Kind int

const (
	Boolean Kind = iota
	Int
	Bigint
	Decimal
	Double
	Varchar
	Date
	Time
	Timestamp
	Interval
	Array
	Map
	Any
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "BOOLEAN"
	case Int:
		return "INT"
	case Bigint:
		return "BIGINT"
	case Decimal:
		return "DECIMAL"
	case Double:
		return "DOUBLE"
	case Varchar:
		return "VARCHAR"
	case Date:
		return "DATE"
	case Time:
		return "TIME"
	case Timestamp:
		return "TIMESTAMP"
	case Interval:
		return "INTERVAL"
	case Array:
		return "ARRAY"
	case Map:
		return "MAP"
	case Any:
		return "ANY"
	default:
		return "UNKNOWN"
	}
}

// Type is a nameable SQL type: a Kind plus nullability and, for DECIMAL, a
// precision/scale pair. ARRAY and MAP types carry element (and key) types.
type Type struct {
	Kind      Kind
	Nullable  bool
	Precision int
	Scale     int
	Elem      *Type // ARRAY element type
	Key       *Type // MAP key type
	Value     *Type // MAP value type
}

func (t Type) String() string {
	n := ""
	if t.Nullable {
		n = " NULL"
	}
	switch t.Kind {
	case Decimal:
		return fmt.Sprintf("DECIMAL(%d,%d)%s", t.Precision, t.Scale, n)
	case Array:
		return fmt.Sprintf("ARRAY<%s>%s", t.Elem, n)
	case Map:
		return fmt.Sprintf("MAP<%s,%s>%s", t.Key, t.Value, n)
	default:
		return t.Kind.String() + n
	}
}

// Equals is full type equality, the test CastOptimizedImplementor uses to
// decide whether a CAST is a no-op.
func (t Type) Equals(o Type) bool {
	if t.Kind != o.Kind || t.Nullable != o.Nullable {
		return false
	}
	switch t.Kind {
	case Decimal:
		return t.Precision == o.Precision && t.Scale == o.Scale
	case Array:
		return t.Elem != nil && o.Elem != nil && t.Elem.Equals(*o.Elem)
	case Map:
		return t.Key != nil && o.Key != nil && t.Value != nil && o.Value != nil &&
			t.Key.Equals(*o.Key) && t.Value.Equals(*o.Value)
	default:
		return true
	}
}

// Hash returns a structural hash of t, covering the nested Elem/Key/Value
// pointers for ARRAY and MAP. Callers that need to key a cache or dedupe a
// set of Types can use this instead of hand-rolling a string encoding of
// Type.
func (t Type) Hash() (uint64, error) {
	return hashstructure.Hash(t, nil)
}

// WithNullable returns a copy of t carrying the given nullability.
func (t Type) WithNullable(nullable bool) Type {
	t.Nullable = nullable
	return t
}

// Boxedness classifies how a value of this type is represented at
// evaluation time. NullAs.NOT_POSSIBLE code generation only makes sense
// against Primitive or Box types; Object types are always reference-typed
// and already carry their own null.
type Boxedness int

const (
	Primitive Boxedness = iota
	Box
	Object
)

func (t Type) Boxedness() Boxedness {
	switch t.Kind {
	case Boolean, Int, Bigint, Double:
		if t.Nullable {
			return Box
		}
		return Primitive
	default:
		return Object
	}
}

func (t Type) IsPrimitive() bool { return t.Boxedness() == Primitive }

// Constructors for the common, attribute-free kinds.
func NewBoolean(nullable bool) Type   { return Type{Kind: Boolean, Nullable: nullable} }
func NewInt(nullable bool) Type       { return Type{Kind: Int, Nullable: nullable} }
func NewBigint(nullable bool) Type    { return Type{Kind: Bigint, Nullable: nullable} }
func NewDouble(nullable bool) Type    { return Type{Kind: Double, Nullable: nullable} }
func NewVarchar(nullable bool) Type   { return Type{Kind: Varchar, Nullable: nullable} }
func NewDate(nullable bool) Type      { return Type{Kind: Date, Nullable: nullable} }
func NewTime(nullable bool) Type      { return Type{Kind: Time, Nullable: nullable} }
func NewTimestamp(nullable bool) Type { return Type{Kind: Timestamp, Nullable: nullable} }
func NewInterval(nullable bool) Type  { return Type{Kind: Interval, Nullable: nullable} }
func NewAny(nullable bool) Type       { return Type{Kind: Any, Nullable: nullable} }

func NewDecimal(precision, scale int, nullable bool) Type {
	return Type{Kind: Decimal, Precision: precision, Scale: scale, Nullable: nullable}
}

func NewArrayType(elem Type, nullable bool) Type {
	return Type{Kind: Array, Elem: &elem, Nullable: nullable}
}

func NewMapType(key, value Type, nullable bool) Type {
	return Type{Kind: Map, Key: &key, Value: &value, Nullable: nullable}
}

// numericRank orders the numeric kinds for least-restrictive promotion:
// INT < BIGINT < DECIMAL < DOUBLE.
var numericRank = map[Kind]int{Int: 0, Bigint: 1, Decimal: 2, Double: 3}

// LeastRestrictive computes the least-restrictive common type of ts. ANY
// combines with any other kind and yields that kind; numeric kinds promote along the rank above;
// otherwise every kind must already agree. The result's nullability is the
// OR of every input's nullability. The second return value is false when
// no common type exists (e.g. INTERVAL mixed with INT) — callers should
// leave operands untouched in that case, per the harmonize contract.
func LeastRestrictive(ts []Type) (Type, bool) {
	if len(ts) == 0 {
		return Type{}, false
	}
	result := ts[0]
	anyNullable := ts[0].Nullable
	for _, t := range ts[1:] {
		if t.Nullable {
			anyNullable = true
		}
		if t.Kind == Any {
			continue
		}
		if result.Kind == Any {
			result = Type{Kind: t.Kind, Precision: t.Precision, Scale: t.Scale, Elem: t.Elem, Key: t.Key, Value: t.Value}
			continue
		}
		if result.Kind == t.Kind {
			if result.Kind == Decimal {
				if t.Precision > result.Precision {
					result.Precision = t.Precision
				}
				if t.Scale > result.Scale {
					result.Scale = t.Scale
				}
			}
			continue
		}
		rr, rok := numericRank[result.Kind]
		tr, tok := numericRank[t.Kind]
		if rok && tok {
			if tr > rr {
				result = Type{Kind: t.Kind, Precision: t.Precision, Scale: t.Scale}
			}
			continue
		}
		return Type{}, false
	}
	result.Nullable = anyNullable
	return result, true
}
