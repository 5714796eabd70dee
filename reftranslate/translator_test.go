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

package reftranslate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sungsoo/go-imptable/expression"
	"github.com/sungsoo/go-imptable/ieteval"
	"github.com/sungsoo/go-imptable/imptable"
	"github.com/sungsoo/go-imptable/sql"
)

func lowerAndEval(t *testing.T, node expression.Expression, nullAs imptable.NullAs, row sql.Row) interface{} {
	t.Helper()
	tr := New()
	e, err := tr.Translate(node, nullAs)
	require.NoError(t, err)
	v, err := ieteval.Eval(e, row)
	require.NoError(t, err)
	return v
}

func TestUpperNullPropagation(t *testing.T) {
	upperOfNull := expression.NewCall(sql.OpUpper, sql.NewVarchar(true), expression.NewLiteral(nil, sql.NewVarchar(true)))
	require.Nil(t, lowerAndEval(t, upperOfNull, imptable.Null, nil))

	upperOfAbc := expression.NewCall(sql.OpUpper, sql.NewVarchar(false), expression.NewLiteral("abc", sql.NewVarchar(false)))
	require.Equal(t, "ABC", lowerAndEval(t, upperOfAbc, imptable.Null, nil))
}

func TestPlusNullPropagation(t *testing.T) {
	onePlusNull := expression.NewCall(sql.OpPlus, sql.NewBigint(true),
		expression.NewLiteral(int64(1), sql.NewBigint(false)),
		expression.NewLiteral(nil, sql.NewBigint(true)),
	)
	require.Nil(t, lowerAndEval(t, onePlusNull, imptable.Null, nil))
}

func TestPlusNotPossibleSkipsGuard(t *testing.T) {
	onePlusTwo := expression.NewCall(sql.OpPlus, sql.NewBigint(false),
		expression.NewLiteral(int64(1), sql.NewBigint(false)),
		expression.NewLiteral(int64(2), sql.NewBigint(false)),
	)
	require.Equal(t, int64(3), lowerAndEval(t, onePlusTwo, imptable.NotPossible, nil))
}

func TestIsNullAndIsNotNull(t *testing.T) {
	nullableField := expression.NewGetField(0, sql.NewVarchar(true), "name", true)
	isNull := expression.NewCall(sql.OpIsNull, sql.NewBoolean(false), nullableField)
	isNotNull := expression.NewCall(sql.OpIsNotNull, sql.NewBoolean(false), nullableField)

	require.Equal(t, true, lowerAndEval(t, isNull, imptable.Null, sql.NewRow(nil)))
	require.Equal(t, false, lowerAndEval(t, isNull, imptable.Null, sql.NewRow("x")))
	require.Equal(t, false, lowerAndEval(t, isNotNull, imptable.Null, sql.NewRow(nil)))
	require.Equal(t, true, lowerAndEval(t, isNotNull, imptable.Null, sql.NewRow("x")))
}

func TestCaseWithElseAndNullBranch(t *testing.T) {
	// CASE WHEN foo = 1 THEN NULL WHEN foo = 2 THEN 'two' ELSE 'other' END
	foo := expression.NewGetField(0, sql.NewBigint(false), "foo", false)
	caseExpr := expression.NewCall(sql.OpCase, sql.NewVarchar(true),
		expression.NewCall(sql.OpEquals, sql.NewBoolean(false), foo, expression.NewLiteral(int64(1), sql.NewBigint(false))),
		expression.NewLiteral(nil, sql.NewVarchar(true)),
		expression.NewCall(sql.OpEquals, sql.NewBoolean(false), foo, expression.NewLiteral(int64(2), sql.NewBigint(false))),
		expression.NewLiteral("two", sql.NewVarchar(false)),
		expression.NewLiteral("other", sql.NewVarchar(false)),
	)

	require.Nil(t, lowerAndEval(t, caseExpr, imptable.Null, sql.NewRow(int64(1))))
	require.Equal(t, "two", lowerAndEval(t, caseExpr, imptable.Null, sql.NewRow(int64(2))))
	require.Equal(t, "other", lowerAndEval(t, caseExpr, imptable.Null, sql.NewRow(int64(9))))
}

func TestAndThreeValuedLogic(t *testing.T) {
	trueLit := expression.NewLiteral(true, sql.NewBoolean(false))
	falseLit := expression.NewLiteral(false, sql.NewBoolean(false))
	nullLit := expression.NewLiteral(nil, sql.NewBoolean(true))

	and := func(a, b expression.Expression) expression.Expression {
		return expression.NewCall(sql.OpAnd, sql.NewBoolean(true), a, b)
	}

	require.Equal(t, false, lowerAndEval(t, and(falseLit, nullLit), imptable.Null, nil))
	require.Equal(t, false, lowerAndEval(t, and(nullLit, falseLit), imptable.Null, nil))
	require.Nil(t, lowerAndEval(t, and(trueLit, nullLit), imptable.Null, nil))
	require.Equal(t, true, lowerAndEval(t, and(trueLit, trueLit), imptable.Null, nil))
}

func TestOrThreeValuedLogic(t *testing.T) {
	trueLit := expression.NewLiteral(true, sql.NewBoolean(false))
	falseLit := expression.NewLiteral(false, sql.NewBoolean(false))
	nullLit := expression.NewLiteral(nil, sql.NewBoolean(true))

	or := func(a, b expression.Expression) expression.Expression {
		return expression.NewCall(sql.OpOr, sql.NewBoolean(true), a, b)
	}

	require.Equal(t, true, lowerAndEval(t, or(trueLit, nullLit), imptable.Null, nil))
	require.Equal(t, true, lowerAndEval(t, or(nullLit, trueLit), imptable.Null, nil))
	require.Nil(t, lowerAndEval(t, or(falseLit, nullLit), imptable.Null, nil))
	require.Equal(t, false, lowerAndEval(t, or(falseLit, falseLit), imptable.Null, nil))
}

func TestNotFlipsDemand(t *testing.T) {
	falseLit := expression.NewLiteral(false, sql.NewBoolean(false))
	not := expression.NewCall(sql.OpNot, sql.NewBoolean(false), falseLit)
	require.Equal(t, true, lowerAndEval(t, not, imptable.Null, nil))
}

func TestEqualsHarmonizesOperandTypes(t *testing.T) {
	// INT = BIGINT promotes the INT side to BIGINT before comparing.
	eq := expression.NewCall(sql.OpEquals, sql.NewBoolean(false),
		expression.NewLiteral(int64(7), sql.NewInt(false)),
		expression.NewLiteral(int64(7), sql.NewBigint(false)),
	)
	require.Equal(t, true, lowerAndEval(t, eq, imptable.Null, nil))
}

func TestSystemFunctionsFoldToConstants(t *testing.T) {
	sysUser := expression.NewCall(sql.OpSystemUser, sql.NewVarchar(false))
	v := lowerAndEval(t, sysUser, imptable.Null, nil)
	_, ok := v.(string)
	require.True(t, ok, "SYSTEM_USER should fold to a string constant, got %T", v)

	currentDate := expression.NewCall(sql.OpCurrentDate, sql.NewVarchar(false))
	v = lowerAndEval(t, currentDate, imptable.Null, nil)
	s, ok := v.(string)
	require.True(t, ok)
	require.Len(t, s, len("2006-01-02"))

	currentTimestamp := expression.NewCall(sql.OpCurrentTimestamp, sql.NewVarchar(false))
	v = lowerAndEval(t, currentTimestamp, imptable.Null, nil)
	s, ok = v.(string)
	require.True(t, ok)
	require.Len(t, s, len("2006-01-02 15:04:05"))
}

func TestArrayItemAccess(t *testing.T) {
	arrType := sql.NewArrayType(sql.NewVarchar(false), false)
	item := expression.NewCall(sql.OpItem, sql.NewVarchar(true),
		expression.NewGetField(0, arrType, "tags", false),
		expression.NewLiteral(int64(2), sql.NewInt(false)),
	)
	row := sql.NewRow([]interface{}{"a", "b", "c"})
	require.Equal(t, "b", lowerAndEval(t, item, imptable.Null, row))
}
