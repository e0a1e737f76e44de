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
	"strings"

	"github.com/tobyzxj/go-coap09/coap09core"
)

// Message is the in-memory, structured description the serializer
// turns into wire bytes. It is read-only to the builder: Build never
// mutates it.
type Message struct {
	Version   coap09core.Ver
	Type      coap09core.Type
	Code      coap09core.Code
	MessageID int32

	// Opts holds every option value, including Token, Content-Type and
	// Uri-Path, keyed by OptionID. Splittable options (Uri-Path,
	// Uri-Query, Location-Path) are stored as one raw delimited value;
	// the builder splits them at emission time via the segment
	// scanner, not here.
	Opts Options

	Payload []byte
}

// IsReset reports whether this message is a Reset, which per §3.3
// invariant 5 carries no options or payload on the wire.
func (m Message) IsReset() bool {
	return m.Type == coap09core.Reset
}

func (m *Message) set(id OptionID, value []byte) {
	m.Opts = m.Opts.Minus(id)
	if value != nil {
		m.Opts = append(m.Opts, Option{ID: id, Value: value})
	}
}

func (m Message) get(id OptionID) ([]byte, bool) {
	return m.Opts.Get(id)
}

// SetToken sets the Token option (number 11). An empty token removes it.
func (m *Message) SetToken(t coap09core.Token) {
	if len(t) == 0 {
		t = nil
	}
	m.set(TokenOption, []byte(t))
}

// Token returns the Token option value, if present.
func (m Message) Token() (coap09core.Token, bool) {
	v, ok := m.get(TokenOption)
	return coap09core.Token(v), ok
}

// SetContentFormat sets the Content-Type option (number 1). Unlike
// Max-Age, Uri-Port or Observe, Content-Type has a 1-byte minimum
// length, so a zero value still encodes as one zero byte rather than
// the zero-length value EncodeUint would otherwise produce.
func (m *Message) SetContentFormat(v uint32) {
	b := coap09core.EncodeUint(v)
	if len(b) == 0 {
		b = []byte{0}
	}
	m.set(ContentType, b)
}

// ContentFormat returns the Content-Type option value, if present.
func (m Message) ContentFormat() (uint32, bool) {
	v, ok := m.get(ContentType)
	if !ok {
		return 0, false
	}
	return coap09core.DecodeUint(v), true
}

// SetMaxAge sets the Max-Age option (number 2).
func (m *Message) SetMaxAge(seconds uint32) {
	m.set(MaxAge, coap09core.EncodeUint(seconds))
}

// MaxAge returns the Max-Age option value, if present.
func (m Message) MaxAge() (uint32, bool) {
	v, ok := m.get(MaxAge)
	if !ok {
		return 0, false
	}
	return coap09core.DecodeUint(v), true
}

// SetProxyURI sets the Proxy-Uri option (number 3).
func (m *Message) SetProxyURI(uri string) {
	m.set(ProxyURI, []byte(uri))
}

// ProxyURI returns the Proxy-Uri option value, if present.
func (m Message) ProxyURI() (string, bool) {
	v, ok := m.get(ProxyURI)
	return string(v), ok
}

// SetETag sets the ETag option (number 4).
func (m *Message) SetETag(etag []byte) {
	m.set(ETag, etag)
}

// ETag returns the ETag option value, if present.
func (m Message) ETag() ([]byte, bool) {
	return m.get(ETag)
}

// SetURIHost sets the Uri-Host option (number 5).
func (m *Message) SetURIHost(host string) {
	m.set(URIHost, []byte(host))
}

// URIHost returns the Uri-Host option value, if present.
func (m Message) URIHost() (string, bool) {
	v, ok := m.get(URIHost)
	return string(v), ok
}

// SetLocationPath sets the Location-Path option (number 6) as a single
// '/'-delimited value; the builder splits it into one option instance
// per segment.
func (m *Message) SetLocationPath(path string) {
	m.set(LocationPath, []byte(path))
}

// LocationPath returns the raw, undivided Location-Path value.
func (m Message) LocationPath() (string, bool) {
	v, ok := m.get(LocationPath)
	return string(v), ok
}

// SetURIPort sets the Uri-Port option (number 7).
func (m *Message) SetURIPort(port uint32) {
	m.set(URIPort, coap09core.EncodeUint(port))
}

// URIPort returns the Uri-Port option value, if present.
func (m Message) URIPort() (uint32, bool) {
	v, ok := m.get(URIPort)
	if !ok {
		return 0, false
	}
	return coap09core.DecodeUint(v), true
}

// SetLocationQuery sets the Location-Query option (number 8). Unlike
// Uri-Path and Uri-Query, Location-Query is not split on a delimiter.
func (m *Message) SetLocationQuery(query string) {
	m.set(LocationQuery, []byte(query))
}

// LocationQuery returns the Location-Query option value, if present.
func (m Message) LocationQuery() (string, bool) {
	v, ok := m.get(LocationQuery)
	return string(v), ok
}

// SetURIPath sets the Uri-Path option (number 9) as a single
// '/'-delimited value; the builder splits it into one option instance
// per segment.
func (m *Message) SetURIPath(path string) {
	m.set(URIPath, []byte(path))
}

// URIPath returns the raw, undivided Uri-Path value.
func (m Message) URIPath() (string, bool) {
	v, ok := m.get(URIPath)
	return string(v), ok
}

// PathSegments splits the stored Uri-Path the same way the builder
// does, for callers that want the segments without re-deriving them.
func (m Message) PathSegments() []string {
	v, ok := m.get(URIPath)
	if !ok {
		return nil
	}
	scanner := newSegmentScanner(v, '/')
	segs := make([]string, 0, scanner.count())
	for i := 0; i < scanner.count(); i++ {
		seg, _ := scanner.at(i)
		segs = append(segs, string(seg))
	}
	return segs
}

// SetObserve sets the Observe option (number 10).
func (m *Message) SetObserve(v uint32) {
	m.set(Observe, coap09core.EncodeUint(v))
}

// Observe returns the Observe option value, if present.
func (m Message) Observe() (uint32, bool) {
	v, ok := m.get(Observe)
	if !ok {
		return 0, false
	}
	return coap09core.DecodeUint(v), true
}

// SetURIQuery sets the Uri-Query option (number 15) as a single
// '&'-delimited value; the builder splits it into one option instance
// per segment.
func (m *Message) SetURIQuery(query string) {
	m.set(URIQuery, []byte(query))
}

// URIQuery returns the raw, undivided Uri-Query value.
func (m Message) URIQuery() (string, bool) {
	v, ok := m.get(URIQuery)
	return string(v), ok
}

// SetBlock1 sets the Block1 option (number 19).
func (m *Message) SetBlock1(v []byte) {
	m.set(Block1, v)
}

// Block1 returns the Block1 option value, if present.
func (m Message) Block1() ([]byte, bool) {
	return m.get(Block1)
}

// SetBlock2 sets the Block2 option (number 17).
func (m *Message) SetBlock2(v []byte) {
	m.set(Block2, v)
}

// Block2 returns the Block2 option value, if present.
func (m Message) Block2() ([]byte, bool) {
	return m.get(Block2)
}

// String renders a short diagnostic summary, in the spirit of this
// project's usual Message.String(): enough to eyeball in a log line,
// not a full hex dump.
func (m Message) String() string {
	buf := fmt.Sprintf("Ver: %v, Type: %v, Code: %v, MessageID: %v", m.Version, m.Type, m.Code, m.MessageID)
	if t, ok := m.Token(); ok {
		buf = fmt.Sprintf("%s, Token: %v", buf, t)
	}
	if p, ok := m.URIPath(); ok {
		buf = fmt.Sprintf("%s, Path: %v", buf, strings.ReplaceAll(p, "\x00", ""))
	}
	if len(m.Payload) > 0 {
		buf = fmt.Sprintf("%s, PayloadLen: %v", buf, len(m.Payload))
	}
	return buf
}
