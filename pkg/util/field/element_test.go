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
package field_test

import (
	"testing"

	"github.com/consensys/zirc/pkg/util/field"
	"github.com/consensys/zirc/pkg/util/field/bls12_377"
	"github.com/consensys/zirc/pkg/util/field/gf524287"
	"github.com/stretchr/testify/assert"
)

func TestRequiredBits(t *testing.T) {
	assert.Equal(t, uint(19), field.RequiredBits[gf524287.Element]())
	assert.Equal(t, uint(253), field.RequiredBits[bls12_377.Element]())
}

func TestZeroOne(t *testing.T) {
	assert.True(t, field.Zero[bls12_377.Element]().IsZero())
	assert.True(t, field.One[bls12_377.Element]().IsOne())
	assert.Equal(t, uint64(42), field.Uint64[gf524287.Element](42).Uint64())
}
