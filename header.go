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

// writeHeader writes the 4-byte fixed header into dst[0:4]. The
// option-count nibble is patched in place by Build once all options
// are emitted, so it is written as 0 here.
func writeHeader(dst []byte, msg *Message) {
	dst[0] = byte(msg.Version)<<6 | byte(msg.Type)<<4
	dst[1] = byte(msg.Code)
	dst[2] = byte(uint16(msg.MessageID) >> 8)
	dst[3] = byte(uint16(msg.MessageID))
}

// setOptionCount patches the header's 4-bit option-count field in
// place, leaving the version/type bits untouched.
func setOptionCount(dst []byte, count int) {
	dst[0] = (dst[0] &^ 0x0f) | byte(count)
}

// validateHeader is the header-validator collaborator of §6.2: it
// rejects a message whose version, type or code would produce an
// unparseable header before any bytes are committed.
func validateHeader(msg *Message) error {
	if !coap09core.ValidateVer(msg.Version) {
		return coap09core.ErrInvalidHeader
	}
	if !coap09core.ValidateType(msg.Type) {
		return coap09core.ErrInvalidHeader
	}
	if !coap09core.ValidateMID(msg.MessageID) {
		return coap09core.ErrInvalidHeader
	}
	if !coap09core.IsRequest(msg.Code) && !coap09core.IsResponse(msg.Code) && msg.Code != coap09core.Empty {
		return coap09core.ErrInvalidHeader
	}
	return nil
}
