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

import "strconv"

// OptionID identifies a draft-ietf-core-coap-09 option by its wire
// number.
type OptionID uint8

// Option numbers, in the catalog's canonical ascending order. This is
// also the order the builder emits them in.
const (
	ContentType   OptionID = 1
	MaxAge        OptionID = 2
	ProxyURI      OptionID = 3
	ETag          OptionID = 4
	URIHost       OptionID = 5
	LocationPath  OptionID = 6
	URIPort       OptionID = 7
	LocationQuery OptionID = 8
	URIPath       OptionID = 9
	Observe       OptionID = 10
	TokenOption   OptionID = 11
	Fencepost     OptionID = 14
	URIQuery      OptionID = 15
	Block2        OptionID = 17
	Block1        OptionID = 19
)

var optionIDToString = map[OptionID]string{
	ContentType:   "ContentType",
	MaxAge:        "MaxAge",
	ProxyURI:      "ProxyURI",
	ETag:          "ETag",
	URIHost:       "URIHost",
	LocationPath:  "LocationPath",
	URIPort:       "URIPort",
	LocationQuery: "LocationQuery",
	URIPath:       "URIPath",
	Observe:       "Observe",
	TokenOption:   "Token",
	Fencepost:     "Fencepost",
	URIQuery:      "URIQuery",
	Block2:        "Block2",
	Block1:        "Block1",
}

func (o OptionID) String() string {
	if s, ok := optionIDToString[o]; ok {
		return s
	}
	return "Option(" + strconv.FormatUint(uint64(o), 10) + ")"
}

// optionDef is the catalog entry for one option number: its value
// length bounds and, for the three multi-valued options, the byte that
// splits one logical value into several wire instances.
type optionDef struct {
	minLen    int
	maxLen    int
	delimiter byte // 0 means "not splittable"
}

// catalog is the fixed, immutable option table of §3.2. catalogOrder
// lists the keys in ascending numeric order since Go map iteration
// order is unspecified and the builder's emission order is load-bearing.
var catalog = map[OptionID]optionDef{
	ContentType:   {minLen: 1, maxLen: 2},
	MaxAge:        {minLen: 0, maxLen: 4},
	ProxyURI:      {minLen: 1, maxLen: 270},
	ETag:          {minLen: 1, maxLen: 8},
	URIHost:       {minLen: 1, maxLen: 270},
	LocationPath:  {minLen: 1, maxLen: 270, delimiter: '/'},
	URIPort:       {minLen: 0, maxLen: 2},
	LocationQuery: {minLen: 1, maxLen: 270},
	URIPath:       {minLen: 1, maxLen: 270, delimiter: '/'},
	Observe:       {minLen: 0, maxLen: 2},
	TokenOption:   {minLen: 1, maxLen: 8},
	Fencepost:     {minLen: 0, maxLen: 0},
	URIQuery:      {minLen: 1, maxLen: 270, delimiter: '&'},
	Block2:        {minLen: 1, maxLen: 3},
	Block1:        {minLen: 1, maxLen: 3},
}

// catalogOrder is the canonical ascending emission order of §3.2,
// Fencepost included at its natural numeric position.
var catalogOrder = []OptionID{
	ContentType, MaxAge, ProxyURI, ETag, URIHost, LocationPath, URIPort,
	LocationQuery, URIPath, Observe, TokenOption, Fencepost, URIQuery,
	Block2, Block1,
}

// delimiterOrNone returns the split delimiter for a multi-segment
// option, or 0 if the option is not splittable.
func delimiterOrNone(id OptionID) byte {
	return catalog[id].delimiter
}

// isSplittable reports whether id is one of Uri-Path, Uri-Query or
// Location-Path.
func isSplittable(id OptionID) bool {
	return catalog[id].delimiter != 0
}

// Option is one emitted option instance: a catalog number paired with
// its raw value. The setters in message.go store a multi-segment
// option as one Option holding the whole delimited value; the builder
// splits it into one wire instance per segment at emission time.
type Option struct {
	ID    OptionID
	Value []byte
}

// Options is an unordered bag of Option values. The builder always
// walks them in catalog order (catalogOrder above), so the slice's own
// order carries no meaning; it exists purely as storage.
type Options []Option

// Get returns the first value stored under id, or nil if absent.
func (o Options) Get(id OptionID) ([]byte, bool) {
	for _, opt := range o {
		if opt.ID == id {
			return opt.Value, true
		}
	}
	return nil, false
}

// GetAll returns every value stored under id, in insertion order. Size
// and Build do not use it: they read only the first value stored under
// each id.
func (o Options) GetAll(id OptionID) [][]byte {
	var rv [][]byte
	for _, opt := range o {
		if opt.ID == id {
			rv = append(rv, opt.Value)
		}
	}
	return rv
}

// Minus returns a copy of o with every Option of the given id removed.
func (o Options) Minus(id OptionID) Options {
	rv := make(Options, 0, len(o))
	for _, opt := range o {
		if opt.ID != id {
			rv = append(rv, opt)
		}
	}
	return rv
}
