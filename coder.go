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

// DefaultCoder is a ready-to-use Coder with the default configuration
// (blockwise accounting disabled).
var DefaultCoder = NewCoder(coap09core.DefaultConfig())

// Coder wraps the size calculator and builder behind the Size/Encode
// shape this project's codecs share. Unlike a version-dispatching
// codec, there is exactly one wire version here, so Coder holds only
// the Config the builder needs — no version switch.
type Coder struct {
	Config coap09core.Config
}

// NewCoder returns a Coder bound to cfg.
func NewCoder(cfg coap09core.Config) *Coder {
	return &Coder{Config: cfg}
}

// Size reports the exact number of bytes Encode will write for msg.
func (c *Coder) Size(msg *Message) (int, error) {
	return Size(msg, c.Config)
}

// Encode serializes msg into buf, which must be at least Size(msg)
// bytes, and returns the number of bytes written.
func (c *Coder) Encode(msg *Message, buf []byte) (int, error) {
	return Build(buf, msg, c.Config)
}
