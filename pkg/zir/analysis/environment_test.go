// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package analysis

import (
	"testing"

	"github.com/consensys/zirc/pkg/zir"
	"github.com/stretchr/testify/assert"
)

func TestEnvironmentLookup(t *testing.T) {
	env := NewEnvironment()
	//
	env.Define("a", 8, zir.Metadata{Bitwidth: 9, ShouldReduce: false})
	//
	metadata, ok := env.Lookup("a", 8)
	assert.True(t, ok)
	assert.Equal(t, uint(9), metadata.Bitwidth)
	// Bindings are keyed by name and width.
	_, ok = env.Lookup("a", 16)
	assert.False(t, ok)
	_, ok = env.Lookup("b", 8)
	assert.False(t, ok)
}

func TestEnvironmentReset(t *testing.T) {
	env := NewEnvironment()
	//
	env.Define("a", 8, zir.Metadata{Bitwidth: 8, ShouldReduce: true})
	env.Reset()
	//
	_, ok := env.Lookup("a", 8)
	assert.False(t, ok)
}
