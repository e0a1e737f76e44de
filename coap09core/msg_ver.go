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

// Ver represents the protocol version field, a 2-bit header value.
type Ver int8

// Version1 is the only version this wire format recognizes.
const Version1 Ver = 1

// ValidateVer reports whether ver is the one protocol version this
// serializer accepts. Every other value of the 2-bit field (0, 2, 3)
// is rejected.
func ValidateVer(ver Ver) bool {
	return ver == Version1
}
