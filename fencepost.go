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

// fencepostNeeded decides whether a Fencepost-1 option (number 14) must
// be inserted before emitting target, given the option number most
// recently emitted (previous).
//
// The size calculator and the option builder both walk the catalog in
// the same ascending order while threading the same running
// "previous option number" state, so simulating the full emission path
// from scratch at each step (as the original source does) reduces to
// this one incremental comparison: crossing a gap of more than 15
// requires a fencepost first. Because 14 itself is within 15 of every
// option number below it in this catalog (§3.2 tops out at 19), a
// single fencepost is always sufficient.
func fencepostNeeded(previous, target int) bool {
	return target-previous > 15
}
