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

import "github.com/sungsoo/go-imptable/sql"

type rankBuffer struct {
	lastPeerStart int
	rank          int64
	initialized   bool
}

// Rank implements RANK(): positions sharing a peer group (CompareRows ==
// 0 against the prior row) get the same rank, and the next distinct
// group's rank jumps to (1 + number of rows strictly before it) — the
// classic "gappy" rank, as opposed to DenseRank's gapless one.
type Rank struct{}

func (Rank) Reset() WinAggBuffer { return &rankBuffer{} }

func (Rank) Result(buf WinAggBuffer, ctx *WinAggContext, args []interface{}) (interface{}, error) {
	b := buf.(*rankBuffer)
	pos := ctx.CurrentPosition
	if !b.initialized {
		b.rank = 1
		b.lastPeerStart = pos
		b.initialized = true
		return b.rank, nil
	}
	if ctx.CompareRows(pos, pos-1) != 0 {
		b.rank = int64(pos) + 1
		b.lastPeerStart = pos
	}
	return b.rank, nil
}

func (Rank) ResultType(operandTypes []sql.Type) sql.Type { return sql.NewBigint(false) }

func (Rank) NeedCacheWhenFrameIntact() bool { return false }

type denseRankBuffer struct {
	rank        int64
	initialized bool
}

// DenseRank implements DENSE_RANK(): like Rank but with no gaps between
// distinct peer groups.
type DenseRank struct{}

func (DenseRank) Reset() WinAggBuffer { return &denseRankBuffer{} }

func (DenseRank) Result(buf WinAggBuffer, ctx *WinAggContext, args []interface{}) (interface{}, error) {
	b := buf.(*denseRankBuffer)
	pos := ctx.CurrentPosition
	if !b.initialized {
		b.rank = 1
		b.initialized = true
		return b.rank, nil
	}
	if ctx.CompareRows(pos, pos-1) != 0 {
		b.rank++
	}
	return b.rank, nil
}

func (DenseRank) ResultType(operandTypes []sql.Type) sql.Type { return sql.NewBigint(false) }

func (DenseRank) NeedCacheWhenFrameIntact() bool { return false }
