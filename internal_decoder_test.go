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
	"bytes"
	"errors"

	"github.com/tobyzxj/go-coap09/coap09core"
)

// decodedOption is one parsed option instance, in wire emission order,
// with its number already resolved from the running delta.
type decodedOption struct {
	number int
	value  []byte
}

// decodedMessage is the minimal parse this test tree needs to check
// Build's output against what it was asked to encode. It is not a
// package deliverable: the production package exposes no Decode, per
// the matching-parser Non-goal, and this parser does not attempt to
// handle malformed input gracefully the way a real decoder would have
// to.
type decodedMessage struct {
	ver     int
	typ     coap09core.Type
	code    coap09core.Code
	mid     int32
	oc      int
	options []decodedOption
	payload []byte
}

// decodeForTest parses wire bytes produced by Build back into a
// decodedMessage, so round-trip and delta-bound properties can be
// checked against the builder's own output.
func decodeForTest(data []byte) (decodedMessage, error) {
	var out decodedMessage
	if len(data) < headerLength {
		return out, errors.New("short header")
	}

	out.ver = int(data[0] >> 6)
	out.typ = coap09core.Type((data[0] >> 4) & 0x3)
	out.oc = int(data[0] & 0x0f)
	out.code = coap09core.Code(data[1])
	out.mid = int32(uint16(data[2])<<8 | uint16(data[3]))

	cursor := headerLength
	previous := 0
	for i := 0; i < out.oc; i++ {
		if cursor >= len(data) {
			return out, errors.New("truncated option header")
		}
		b := data[cursor]
		delta := int(b >> 4)
		length := int(b & 0x0f)
		cursor++
		if length == 15 {
			if cursor >= len(data) {
				return out, errors.New("truncated length extension")
			}
			length = int(data[cursor]) + 15
			cursor++
		}
		if cursor+length > len(data) {
			return out, errors.New("truncated option value")
		}
		number := previous + delta
		value := append([]byte(nil), data[cursor:cursor+length]...)
		cursor += length
		previous = number
		out.options = append(out.options, decodedOption{number: number, value: value})
	}

	out.payload = append([]byte(nil), data[cursor:]...)
	return out, nil
}

// nonFencepostOptions filters the Fencepost-1 markers a real caller
// never asked for out of a decoded option list.
func nonFencepostOptions(opts []decodedOption) []decodedOption {
	var out []decodedOption
	for _, o := range opts {
		if o.number == int(Fencepost) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// joinedValue re-joins every decoded instance of number id back into
// the single delimited value the caller originally set, the inverse of
// what resolvedValues/segmentScanner split apart at build time.
func joinedValue(opts []decodedOption, id OptionID, delim byte) ([]byte, bool) {
	var parts [][]byte
	for _, o := range opts {
		if o.number == int(id) {
			parts = append(parts, o.value)
		}
	}
	if len(parts) == 0 {
		return nil, false
	}
	if delim == 0 {
		return parts[0], true
	}
	return bytes.Join(parts, []byte{delim}), true
}
