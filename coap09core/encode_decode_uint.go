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

package coap09core

import "encoding/binary"

const (
	max1ByteNumber = uint32(1)<<8 - 1
	max2ByteNumber = uint32(1)<<16 - 1
)

// EncodeUint trims value to its minimal big-endian representation, the
// way the uint-valued options set through Message (Content-Type,
// Max-Age, Uri-Port, Observe) are carried on the wire: a zero value
// encodes as zero bytes.
//
// The zero-length result is a non-nil empty slice, never nil: presence
// and value are orthogonal on this wire format (a Max-Age/Uri-Port/
// Observe option can be present with a zero-length value, distinct
// from the option being absent altogether), and Message.set treats a
// nil value as "remove this option" — so EncodeUint must not collapse
// "encodes to zero bytes" into "absent" itself.
func EncodeUint(value uint32) []byte {
	switch {
	case value == 0:
		return []byte{}
	case value <= max1ByteNumber:
		return []byte{byte(value)}
	case value <= max2ByteNumber:
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, uint16(value))
		return b
	default:
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, value)
		n := 0
		for n < 3 && b[n] == 0 {
			n++
		}
		return b[n:]
	}
}

// DecodeUint is the inverse of EncodeUint, used by the Message getters
// of the uint-valued options.
func DecodeUint(b []byte) uint32 {
	var tmp [4]byte
	copy(tmp[4-len(b):], b)
	return binary.BigEndian.Uint32(tmp[:])
}
