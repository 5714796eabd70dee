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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sungsoo/go-imptable/expression"
	"github.com/sungsoo/go-imptable/sql"
)

func TestHarmonizeCallPromotesMismatchedOperands(t *testing.T) {
	call := Call{
		Op: sql.OpEquals,
		Operands: []expression.Expression{
			expression.NewLiteral(int64(1), sql.NewInt(false)),
			expression.NewLiteral(int64(2), sql.NewBigint(false)),
		},
	}
	out := harmonizeCall(call)
	require.Equal(t, sql.Bigint, out.Operands[0].Type().Kind)
	require.Equal(t, sql.Bigint, out.Operands[1].Type().Kind)
}

func TestHarmonizeCallLeavesAgreeingOperandsUntouched(t *testing.T) {
	call := Call{
		Op: sql.OpEquals,
		Operands: []expression.Expression{
			expression.NewLiteral(int64(1), sql.NewBigint(false)),
			expression.NewLiteral(int64(2), sql.NewBigint(false)),
		},
	}
	out := harmonizeCall(call)
	require.Same(t, call.Operands[0], out.Operands[0])
	require.Same(t, call.Operands[1], out.Operands[1])
}

func TestHarmonizeLeastRestrictiveCachesByShape(t *testing.T) {
	types := []sql.Type{sql.NewInt(false), sql.NewBigint(false)}

	first, ok := harmonizeLeastRestrictive(sql.OpPlus, types)
	require.True(t, ok)

	key, hashable := harmonizeKey(sql.OpPlus, types)
	require.True(t, hashable)
	harmonizeMu.RLock()
	plan, found := harmonizeCache[key]
	harmonizeMu.RUnlock()
	require.True(t, found)
	require.Equal(t, first, plan.common)

	second, ok := harmonizeLeastRestrictive(sql.OpPlus, types)
	require.True(t, ok)
	require.Equal(t, first, second)
}

func TestHarmonizeKeyDiffersByOperator(t *testing.T) {
	types := []sql.Type{sql.NewInt(false), sql.NewBigint(false)}
	plusKey, _ := harmonizeKey(sql.OpPlus, types)
	eqKey, _ := harmonizeKey(sql.OpEquals, types)
	require.NotEqual(t, plusKey, eqKey)
}
