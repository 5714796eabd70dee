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

package sql

// Op names a SQL scalar, aggregate or window operator. It is the key the
// registries dispatch on and lives here, rather than in the expression or
// imptable packages, so that both can depend on it without an import cycle.
type Op string

// Scalar operators.
const (
	OpPlus       Op = "+"
	OpMinus      Op = "-"
	OpMultiply   Op = "*"
	OpDivide     Op = "/"
	OpMod        Op = "%"
	OpEquals     Op = "="
	OpNotEquals  Op = "<>"
	OpLess       Op = "<"
	OpLessEq     Op = "<="
	OpGreater    Op = ">"
	OpGreaterEq  Op = ">="
	OpAnd        Op = "AND"
	OpOr         Op = "OR"
	OpNot        Op = "NOT"
	OpNegate     Op = "NEGATE"
	OpBitNot     Op = "BIT_NOT"
	OpCase       Op = "CASE"
	OpCast       Op = "CAST"
	OpIsNull     Op = "IS NULL"
	OpIsNotNull  Op = "IS NOT NULL"
	OpIsTrue     Op = "IS TRUE"
	OpIsNotTrue  Op = "IS NOT TRUE"
	OpIsFalse    Op = "IS FALSE"
	OpIsNotFalse Op = "IS NOT FALSE"
	OpItem       Op = "ITEM"
	OpTrim       Op = "TRIM"
	OpUpper      Op = "UPPER"
	OpLower      Op = "LOWER"
	OpAbs        Op = "ABS"
	OpLength     Op = "CHAR_LENGTH"
	OpConcat     Op = "CONCAT"

	OpArrayValueConstructor Op = "ARRAY_VALUE_CONSTRUCTOR"
	OpMapValueConstructor   Op = "MAP_VALUE_CONSTRUCTOR"
	OpRowValueConstructor   Op = "ROW"

	OpCurrentUser      Op = "CURRENT_USER"
	OpSessionUser      Op = "SESSION_USER"
	OpUser             Op = "USER"
	OpSystemUser       Op = "SYSTEM_USER"
	OpCurrentPath      Op = "CURRENT_PATH"
	OpCurrentRole      Op = "CURRENT_ROLE"
	OpCurrentTime      Op = "CURRENT_TIME"
	OpCurrentDate      Op = "CURRENT_DATE"
	OpCurrentTimestamp Op = "CURRENT_TIMESTAMP"
	OpLocalTime        Op = "LOCALTIME"
	OpLocalTimestamp   Op = "LOCALTIMESTAMP"

	OpDatetimePlus Op = "DATETIME_PLUS"
	OpReinterpret  Op = "REINTERPRET"
)

// Aggregate operators.
const (
	OpCount       Op = "COUNT"
	OpSum         Op = "SUM"
	OpSum0        Op = "SUM0"
	OpMin         Op = "MIN"
	OpMax         Op = "MAX"
	OpSingleValue Op = "SINGLE_VALUE"
	OpAvg         Op = "AVG"
	OpBitAnd      Op = "BIT_AND"
	OpBitOr       Op = "BIT_OR"
	OpBitXor      Op = "BIT_XOR"
)

// Window operators.
const (
	OpRank        Op = "RANK"
	OpDenseRank   Op = "DENSE_RANK"
	OpRowNumber   Op = "ROW_NUMBER"
	OpFirstValue  Op = "FIRST_VALUE"
	OpLastValue   Op = "LAST_VALUE"
	OpLead        Op = "LEAD"
	OpLag         Op = "LAG"
	OpNtile       Op = "NTILE"
)
