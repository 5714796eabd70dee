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

import errors "gopkg.in/src-d/go-errors.v1"

// Error kinds shared by the imptable and imptable/aggregation packages,
// declared the way auth/native.go declares ErrParseUserFile and friends.
var (
	ErrInvalidUDF             = errors.NewKind("user-defined implementor %q does not satisfy the required capability")
	ErrConstructionFailure    = errors.NewKind("could not construct implementor for operator %s: %s")
	ErrUnreachableNullPolicy  = errors.NewKind("unreachable null policy %v for operator %s")
	ErrSingleValueMoreThanOne = errors.NewKind("more than one row supplied to SINGLE_VALUE")
	ErrUnknownOperator        = errors.NewKind("no implementor registered for operator %s")
)
