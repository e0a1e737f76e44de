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

import "github.com/tobyzxj/go-coap09/coap09core"

// maxOptionValueLen is the largest length this wire format's option
// header can express: the nibble value 15 marks the extension byte,
// which adds its full 0-255 range on top of 15.
const maxOptionValueLen = 15 + 255

// lengthNibble returns the 4-bit length field to OR into an option's
// first byte: the true length when it fits in 4 bits, or the
// extension marker 15 when a second byte is needed.
func lengthNibble(valueLen int) byte {
	if valueLen < 15 {
		return byte(valueLen)
	}
	return 15
}

// encodedLengthCost is the number of header bytes the length field
// occupies: 1 normally, 2 when the value needs the extension byte.
func encodedLengthCost(valueLen int) int {
	if valueLen < 15 {
		return 1
	}
	return 2
}

// encodeLength writes an option's delta+length header byte (and, when
// needed, the length-extension byte) into buf starting at offset 0.
// Callers pack the delta's own nibble into deltaNibble ahead of time;
// encodeLength ORs the length nibble into the same byte, matching the
// wire format's single combined delta/length byte. Returns the number
// of bytes written, or ErrValueTooLong if valueLen exceeds 270.
func encodeLength(buf []byte, deltaNibble byte, valueLen int) (int, error) {
	if valueLen > maxOptionValueLen {
		return 0, coap09core.ErrValueTooLong
	}
	buf[0] = (deltaNibble << 4) | lengthNibble(valueLen)
	if valueLen < 15 {
		return 1, nil
	}
	buf[1] = byte(valueLen - 15)
	return 2, nil
}
