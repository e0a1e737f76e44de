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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvedValuesSplitsPath(t *testing.T) {
	msg := &Message{}
	msg.SetURIPath("a/b/c")
	values := resolvedValues(msg, URIPath)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("c")}, values)
}

func TestResolvedValuesNonSplittable(t *testing.T) {
	msg := &Message{}
	msg.SetETag([]byte{0xab})
	assert.Equal(t, [][]byte{{0xab}}, resolvedValues(msg, ETag))
}

func TestResolvedValuesAbsent(t *testing.T) {
	msg := &Message{}
	assert.Nil(t, resolvedValues(msg, URIPath))
}

func TestRequiresUpstreamChunkingDisabledByZeroConfig(t *testing.T) {
	msg := &Message{Payload: make([]byte, 100)}
	assert.False(t, requiresUpstreamChunking(msg, 0))
}

func TestRequiresUpstreamChunkingUnderBudget(t *testing.T) {
	msg := &Message{Payload: make([]byte, 100)}
	assert.False(t, requiresUpstreamChunking(msg, 100))
}

func TestRequiresUpstreamChunkingOverBudgetWithoutBlock2(t *testing.T) {
	msg := &Message{Payload: make([]byte, 100)}
	assert.True(t, requiresUpstreamChunking(msg, 64))
}

// A caller that has already chunked the payload and set Block2 itself
// is taken at its word: the serializer never second-guesses an
// explicit Block2.
func TestRequiresUpstreamChunkingOverBudgetWithExplicitBlock2(t *testing.T) {
	msg := &Message{Payload: make([]byte, 100)}
	msg.SetBlock2([]byte{0x02})
	assert.False(t, requiresUpstreamChunking(msg, 64))
}
