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

import "encoding/hex"

// MaxTokenSize is the largest token this wire format can carry.
const MaxTokenSize = 8

// Token is an opaque request/response correlator, carried as the Token
// option (number 11) on this wire version.
type Token []byte

func (t Token) String() string {
	return hex.EncodeToString(t)
}

// ValidateToken reports whether t fits the option's 1-8 byte length range,
// or is empty (the option is simply absent in that case).
func ValidateToken(t Token) bool {
	return len(t) <= MaxTokenSize
}
