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

// StrictBase is embedded by aggregate implementors whose Add should
// simply skip a row with any null argument, the way COUNT(x)/SUM(x)/
// MIN(x)/MAX(x) all do: NULL values are invisible to the aggregate,
// never poison it. It factors out that one-line check so each
// implementor's Add only has to handle the all-non-null case.
type StrictBase struct{}

// AnyNull reports whether any of args is nil (SQL NULL).
func (StrictBase) AnyNull(args []interface{}) bool {
	for _, a := range args {
		if a == nil {
			return true
		}
	}
	return false
}
