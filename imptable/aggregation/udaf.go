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

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sungsoo/go-imptable/sql"
)

// UDAFFactory is the capability a user-defined aggregate must supply: a
// constructor for a fresh AggImplementor instance (a UDAF carries its own
// per-call configuration — e.g. a comparator, a separator — so it cannot
// be a single shared value the way the built-in implementors are).
type UDAFFactory interface {
	NewInstance(operandTypes []sql.Type) (AggImplementor, error)
}

// UDAFFactoryFunc adapts a plain function to UDAFFactory.
type UDAFFactoryFunc func(operandTypes []sql.Type) (AggImplementor, error)

func (f UDAFFactoryFunc) NewInstance(operandTypes []sql.Type) (AggImplementor, error) {
	return f(operandTypes)
}

// WindowCapableUDAFFactory is the additional capability a user-defined
// aggregate may expose: its own window-specialized instance, preferred by
// GetForCall over NewInstance when the call site is in window context.
type WindowCapableUDAFFactory interface {
	UDAFFactory
	NewWindowInstance(operandTypes []sql.Type) (AggImplementor, error)
}

// NewUDAF constructs a user-defined aggregate's AggImplementor, logging a
// stable per-construction instance key at debug level the way the
// teacher's registry traces function construction — purely diagnostic,
// never consulted for correctness.
func NewUDAF(factory UDAFFactory, operandTypes []sql.Type) (AggImplementor, error) {
	impl, err := factory.NewInstance(operandTypes)
	if err != nil {
		return nil, sql.ErrConstructionFailure.New("UDAF", err.Error())
	}
	logrus.WithField("instance", uuid.NewString()).Debug("imptable/aggregation: constructed UDAF instance")
	return impl, nil
}
