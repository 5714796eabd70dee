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

import (
	"context"
	"os"
	"os/user"
	"time"
)

// Context threads cancellation alongside the handful of execution-root
// facts SystemFunctionImplementor needs: the process login name for
// SYSTEM_USER, and a clock for CURRENT_TIMESTAMP-flavored
// translation-time constant folding.
type Context struct {
	context.Context
	LoginName string
	Now       func() time.Time
}

func NewContext(parent context.Context, loginName string) *Context {
	return &Context{Context: parent, LoginName: loginName, Now: time.Now}
}

// NewEmptyContext mirrors the teacher's sql.NewEmptyContext() convenience
// constructor used throughout its expression tests.
func NewEmptyContext() *Context {
	return NewContext(context.Background(), currentLoginName())
}

func currentLoginName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("LOGNAME"); name != "" {
		return name
	}
	return os.Getenv("USER")
}
