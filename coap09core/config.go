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

// Config carries the builder's tunables. It is threaded explicitly
// through each call (or embedded in a per-call builder context) rather
// than held in a package-level variable, so that concurrent calls never
// share mutable state.
type Config struct {
	// BlockwiseMaxPayloadSize is the chunk size beyond which a payload
	// is treated as blockwise-fragmented for size-accounting purposes
	// (the original SN_COAP_BLOCKWISE_MAX_PAYLOAD_SIZE compile-time
	// constant). Zero disables blockwise accounting: payloads are
	// always emitted whole.
	BlockwiseMaxPayloadSize int

	// Debug is carried with the configuration but is not read by Size
	// or Build: trace logging follows the package-level Debug(bool)
	// toggle only.
	Debug bool
}

// DefaultConfig returns the zero-value configuration: blockwise
// accounting disabled, tracing left to the package-level toggle.
func DefaultConfig() Config {
	return Config{}
}
