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

// headerLength is the fixed 4-byte header size (§6.1).
const headerLength = 4

// maxOptionCount is the largest value the 4-bit option-count header
// field can hold without colliding with its reserved value 15.
const maxOptionCount = 14

// Size computes the exact number of bytes Build will write for msg,
// without writing anything. Callers use it to size the destination
// buffer. It is a pure function of msg and cfg (§4.E).
func Size(msg *Message, cfg coap09core.Config) (int, error) {
	if msg == nil {
		return 0, coap09core.NewFailure(coap09core.ErrNullArgument, coap09core.StatusArgument)
	}
	if msg.IsReset() {
		return headerLength, nil
	}

	if requiresUpstreamChunking(msg, cfg.BlockwiseMaxPayloadSize) {
		logFencepostTrace("payload exceeds configured chunk size without an explicit Block2, refusing to chunk")
		return 0, coap09core.NewFailure(coap09core.ErrBlockwiseChunkingRequired, coap09core.StatusContent)
	}

	total := headerLength
	previous := 0
	count := 0

	for _, id := range catalogOrder {
		if id == Fencepost {
			continue
		}

		values := resolvedValues(msg, id)

		for i, value := range values {
			if len(value) > maxOptionValueLen {
				return 0, coap09core.NewFailure(coap09core.ErrValueTooLong, coap09core.StatusContent)
			}
			if i == 0 {
				if fencepostNeeded(previous, int(id)) {
					total++ // Fencepost-1: one byte, zero-length
					count++
					previous = int(Fencepost)
				}
			}
			total += encodedLengthCost(len(value)) + len(value)
			previous = int(id)
			count++
			if count > maxOptionCount {
				return 0, coap09core.NewFailure(coap09core.ErrTooManyOptions, coap09core.StatusContent)
			}
		}
	}

	total += len(msg.Payload)
	return total, nil
}
