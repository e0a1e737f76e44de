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

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailureWrapsSentinel(t *testing.T) {
	f := NewFailure(ErrValueTooLong, StatusContent)
	assert.True(t, errors.Is(f, ErrValueTooLong))
	assert.False(t, errors.Is(f, ErrNullArgument))
	assert.Equal(t, StatusContent, f.Status)
	assert.Equal(t, ErrValueTooLong.Error(), f.Error())
}

func TestFailureStatusTiers(t *testing.T) {
	assert.Equal(t, -2, StatusArgument)
	assert.Equal(t, -1, StatusContent)
}
