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

// builderState is the per-call context the concurrency mandate of §5
// requires in place of the source's two process-wide variables
// (a base pointer and a "previous option number" global): every piece
// of mutable state a single Build call needs lives here, on the stack,
// so two goroutines calling Build concurrently on disjoint buffers
// never interfere with each other.
type builderState struct {
	dst      []byte
	cursor   int
	previous int
	count    int
}

func (b *builderState) writeByte(v byte) {
	b.dst[b.cursor] = v
	b.cursor++
}

func (b *builderState) writeBytes(v []byte) {
	copy(b.dst[b.cursor:], v)
	b.cursor += len(v)
}

// emitFencepostIfNeeded inserts a zero-length Fencepost-1 option ahead
// of target when the delta from the running previous-option-number
// would otherwise exceed the 4-bit field (§4.G step 2).
func (b *builderState) emitFencepostIfNeeded(target int) error {
	if !fencepostNeeded(b.previous, target) {
		return nil
	}
	delta := int(Fencepost) - b.previous
	n, err := encodeLength(b.dst[b.cursor:], byte(delta), 0)
	if err != nil {
		return err
	}
	b.cursor += n
	b.previous = int(Fencepost)
	b.count++
	logFencepostTrace("inserted fencepost before option " + OptionID(target).String())
	if b.count > maxOptionCount {
		return coap09core.ErrTooManyOptions
	}
	return nil
}

// emitOption writes one option instance — header byte(s) plus value —
// advancing previous-option-number and the header's running option
// count (§4.G steps 3-7).
func (b *builderState) emitOption(number int, value []byte) error {
	if len(value) > maxOptionValueLen {
		return coap09core.ErrValueTooLong
	}
	delta := number - b.previous
	n, err := encodeLength(b.dst[b.cursor:], byte(delta), len(value))
	if err != nil {
		return err
	}
	b.cursor += n
	b.writeBytes(value)
	b.previous = number
	b.count++
	if b.count > maxOptionCount {
		return coap09core.ErrTooManyOptions
	}
	return nil
}

// buildOptions is the option builder (§4.G): it walks the catalog in
// ascending order, emitting every present option (splitting Uri-Path,
// Uri-Query and Location-Path into one instance per segment) and
// inserting a fencepost wherever the oracle says the delta would
// overflow.
func buildOptions(b *builderState, msg *Message) error {
	for _, id := range catalogOrder {
		if id == Fencepost {
			continue
		}

		values := resolvedValues(msg, id)

		for i, value := range values {
			if i == 0 {
				if err := b.emitFencepostIfNeeded(int(id)); err != nil {
					return err
				}
				if err := b.emitOption(int(id), value); err != nil {
					return err
				}
				continue
			}
			// Repeated segment of the same option: delta is always 0.
			if err := b.emitOption(int(id), value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Build is the top-level driver (§4.I): it validates msg, computes the
// exact output size, writes the header, the options (unless msg is a
// Reset) and the payload, and returns the number of bytes written.
//
// dst must be at least as large as Size(msg, cfg) would report; Build
// does not grow it. On any error the bytes already written must be
// discarded by the caller — Build never leaves a partial message it
// expects to be transmitted.
func Build(dst []byte, msg *Message, cfg coap09core.Config) (int, error) {
	if dst == nil || msg == nil {
		return 0, coap09core.NewFailure(coap09core.ErrNullArgument, coap09core.StatusArgument)
	}

	needed, err := Size(msg, cfg)
	if err != nil {
		return 0, err
	}
	if len(dst) < needed {
		return 0, coap09core.NewFailure(coap09core.ErrValueTooLong, coap09core.StatusContent)
	}
	for i := 0; i < needed; i++ {
		dst[i] = 0
	}

	if err := validateHeader(msg); err != nil {
		return 0, coap09core.NewFailure(err, coap09core.StatusContent)
	}

	writeHeader(dst, msg)
	b := &builderState{dst: dst, cursor: headerLength}

	if msg.IsReset() {
		logFencepostTrace("reset message, header only")
		return b.cursor, nil
	}

	if err := buildOptions(b, msg); err != nil {
		return 0, coap09core.NewFailure(err, coap09core.StatusContent)
	}
	setOptionCount(dst, b.count)

	b.writeBytes(msg.Payload)

	return b.cursor, nil
}
