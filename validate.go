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
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/tobyzxj/go-coap09/coap09core"
)

// ValidateMessage is a pre-flight helper that reports every problem it
// finds in msg, not just the first — useful for a config linter or a
// test-fixture generator that wants the full list in one pass. Build
// itself stays fail-fast per §4.I and does not call this.
func ValidateMessage(msg *Message) error {
	if msg == nil {
		return coap09core.ErrMessageNil
	}

	var errs *multierror.Error

	if !coap09core.ValidateVer(msg.Version) {
		errs = multierror.Append(errs, fmt.Errorf("version %v: %w", msg.Version, coap09core.ErrInvalidHeader))
	}
	if !coap09core.ValidateType(msg.Type) {
		errs = multierror.Append(errs, fmt.Errorf("type %v: %w", msg.Type, coap09core.ErrInvalidHeader))
	}
	if !coap09core.ValidateMID(msg.MessageID) {
		errs = multierror.Append(errs, fmt.Errorf("message id %v: %w", msg.MessageID, coap09core.ErrInvalidHeader))
	}
	if !coap09core.IsRequest(msg.Code) && !coap09core.IsResponse(msg.Code) && msg.Code != coap09core.Empty {
		errs = multierror.Append(errs, fmt.Errorf("code %v: %w", msg.Code, coap09core.ErrInvalidHeader))
	}

	if tok, ok := msg.Token(); ok && !coap09core.ValidateToken(tok) {
		errs = multierror.Append(errs, fmt.Errorf("token length %d: %w", len(tok), coap09core.ErrInvalidTokenLength))
	}

	for _, id := range catalogOrder {
		if id == Fencepost {
			continue
		}
		def, ok := catalog[id]
		if !ok {
			continue
		}
		for _, value := range resolvedValues(msg, id) {
			if len(value) < def.minLen || len(value) > def.maxLen {
				errs = multierror.Append(errs, fmt.Errorf("option %v length %d outside [%d, %d]", id, len(value), def.minLen, def.maxLen))
			}
		}
	}

	return errs.ErrorOrNil()
}
