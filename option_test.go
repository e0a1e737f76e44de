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

func TestCatalogBoundsAreSane(t *testing.T) {
	for id, def := range catalog {
		assert.LessOrEqualf(t, def.minLen, def.maxLen, "option %v", id)
		assert.GreaterOrEqualf(t, def.minLen, 0, "option %v", id)
	}
}

func TestCatalogOrderMatchesCatalog(t *testing.T) {
	assert.Len(t, catalogOrder, len(catalog))
	seen := make(map[OptionID]bool)
	for _, id := range catalogOrder {
		_, ok := catalog[id]
		assert.Truef(t, ok, "catalogOrder entry %v missing from catalog", id)
		seen[id] = true
	}
	assert.Len(t, seen, len(catalogOrder))
}

func TestOptionIDStringFallback(t *testing.T) {
	assert.Equal(t, "URIPath", URIPath.String())
	assert.Equal(t, "Option(99)", OptionID(99).String())
}

func TestIsSplittable(t *testing.T) {
	assert.True(t, isSplittable(URIPath))
	assert.True(t, isSplittable(URIQuery))
	assert.True(t, isSplittable(LocationPath))
	assert.False(t, isSplittable(LocationQuery))
	assert.False(t, isSplittable(ContentType))
}

func TestDelimiterOrNone(t *testing.T) {
	assert.Equal(t, byte('/'), delimiterOrNone(URIPath))
	assert.Equal(t, byte('&'), delimiterOrNone(URIQuery))
	assert.Equal(t, byte(0), delimiterOrNone(ETag))
}

func TestOptionsGetAndMinus(t *testing.T) {
	opts := Options{
		{ID: URIPath, Value: []byte("a")},
		{ID: URIPath, Value: []byte("b")},
		{ID: ContentType, Value: []byte{0}},
	}

	v, ok := opts.Get(URIPath)
	assert.True(t, ok)
	assert.Equal(t, []byte("a"), v)

	all := opts.GetAll(URIPath)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b")}, all)

	_, ok = opts.Get(ETag)
	assert.False(t, ok)

	trimmed := opts.Minus(URIPath)
	assert.Len(t, trimmed, 1)
	assert.Equal(t, ContentType, trimmed[0].ID)
}
