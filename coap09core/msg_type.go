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

import "strconv"

// Type is the 2-bit message type field.
type Type uint8

const (
	// Confirmable messages require acknowledgement.
	Confirmable Type = 0
	// NonConfirmable messages do not require acknowledgement.
	NonConfirmable Type = 1
	// Acknowledgement is a response to a Confirmable message.
	Acknowledgement Type = 2
	// Reset indicates a permanent negative acknowledgement; it carries no
	// options or payload regardless of what the caller supplied.
	Reset Type = 3
)

var typeToString = map[Type]string{
	Confirmable:     "Confirmable",
	NonConfirmable:  "NonConfirmable",
	Acknowledgement: "Acknowledgement",
	Reset:           "Reset",
}

func (t Type) String() string {
	if s, ok := typeToString[t]; ok {
		return s
	}
	return "Type(" + strconv.FormatUint(uint64(t), 10) + ")"
}

// ValidateType reports whether typ fits the 2-bit header field.
func ValidateType(typ Type) bool {
	return typ <= Reset
}
