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

// resolvedValues returns the wire-value instances for one catalog
// option, in emission order. Non-splittable options contribute at most
// one instance; Uri-Path, Uri-Query and Location-Path are split on
// their delimiter via the segment scanner into one instance per
// segment. An absent option contributes no instances.
//
// The size calculator (§4.E) and the option builder (§4.G) both call
// this so that, for a given message, they walk the exact same set of
// emitted values in the exact same order — the size-agreement property
// of §8 holds by construction rather than by keeping two algorithms in
// sync by hand.
func resolvedValues(msg *Message, id OptionID) [][]byte {
	raw, ok := msg.get(id)
	if !ok {
		return nil
	}
	if !isSplittable(id) {
		return [][]byte{raw}
	}
	scanner := newSegmentScanner(raw, delimiterOrNone(id))
	n := scanner.count()
	if n == 0 {
		return nil
	}
	values := make([][]byte, n)
	for i := 0; i < n; i++ {
		v, _ := scanner.at(i)
		values[i] = v
	}
	return values
}

// requiresUpstreamChunking reports whether msg's payload exceeds the
// configured blockwise chunk size while the caller has not set Block2
// explicitly (§4.E step 5). Actual chunking is out of scope for this
// package (§1: "actual chunking is performed upstream") — the
// serializer's own job ends at reserving space for whatever Block2
// value the caller does supply; it must never truncate a payload or
// fabricate a Block2 value on the caller's behalf. When this reports
// true, Size and Build both refuse the message with
// coap09core.ErrBlockwiseChunkingRequired rather than silently
// dropping bytes.
func requiresUpstreamChunking(msg *Message, maxPayload int) bool {
	if maxPayload <= 0 || len(msg.Payload) <= maxPayload {
		return false
	}
	_, hasBlock2 := msg.Block2()
	return !hasBlock2
}
