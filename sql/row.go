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

// Row is an ordered tuple of column values, the unit a row stream produces
// and a WinAggContext walks. Row execution itself is out of scope; this is
// only the shape implementors and tests pass values around in.
type Row []interface{}

func NewRow(values ...interface{}) Row { return Row(values) }
