// Copyright 2024 tobyzxj
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package coap09

import (
	"github.com/astaxie/beego/logs"
)

var debugEnable bool

// glog is the package's trace logger. It is an observability side
// channel only: Build's control flow never reads it back, so toggling
// it cannot change what gets written to the wire.
var glog *logs.BeeLogger

func init() {
	glog = logs.NewLogger(10000)
	glog.SetLogger("console", `{"level":7}`)
	glog.EnableFuncCallDepth(true)
	glog.SetLogFuncCallDepth(3)
}

// Debug enables or disables trace logging of builder decisions
// (fencepost insertion, refusal of an oversized payload without Block2,
// the header-only Reset path).
func Debug(enable bool) {
	debugEnable = enable
}

// SetLogger overrides the package logger, e.g. to route traces into an
// application's own beego/logs instance.
func SetLogger(l *logs.BeeLogger) {
	if l != nil {
		glog = l
	}
}

func logFencepostTrace(msg string) {
	if debugEnable {
		glog.Trace("coap09: %s", msg)
	}
}
