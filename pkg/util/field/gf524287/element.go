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
package gf524287

import (
	"fmt"
	"math/big"
)

// MODULUS of this field, the Mersenne prime 2^19 - 1.  A 19bit field is far too
// small for production use, but makes field capacity effects (e.g. bound
// overflow during optimisation) visible with tiny test programs.
const MODULUS uint64 = 524287

// Element represents an element of the field GF(524287).
type Element struct {
	val uint32
}

// Add x + y
func (x Element) Add(y Element) Element {
	return Element{uint32((uint64(x.val) + uint64(y.val)) % MODULUS)}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	switch {
	case x.val < y.val:
		return -1
	case x.val > y.val:
		return 1
	default:
		return 0
	}
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	return x.val == 1
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	return x.val == 0
}

// Modulus implementation for the Element interface
func (x Element) Modulus() *big.Int {
	return big.NewInt(int64(MODULUS))
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	return Element{uint32((uint64(x.val) * uint64(y.val)) % MODULUS)}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	return Element{uint32((MODULUS + uint64(x.val) - uint64(y.val)) % MODULUS)}
}

// SetUint64 implementation for the Element interface.
func (x Element) SetUint64(val uint64) Element {
	return Element{uint32(val % MODULUS)}
}

// Uint64 implementation for the Element interface.
func (x Element) Uint64() uint64 {
	return uint64(x.val)
}

func (x Element) String() string {
	return fmt.Sprintf("%d", x.val)
}

// Text implementation for the Element interface
func (x Element) Text(base int) string {
	return big.NewInt(int64(x.val)).Text(base)
}
