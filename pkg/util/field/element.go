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
package field

import (
	"fmt"
	"math/big"
)

// An Element of a prime-order field.
type Element[F any] interface {
	fmt.Stringer
	// Add x+y
	Add(y F) F
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y F) int
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Return the modulus for the field in question.
	Modulus() *big.Int
	// Compute x * y
	Mul(y F) F
	// Compute x - y
	Sub(y F) F
	// SetUint64 constructs the element representing the given value.  It is the
	// canonical way of building new elements.
	SetUint64(val uint64) F
	// Uint64 returns the numerical value of x, assuming it fits.
	Uint64() uint64
	// Text returns the numerical value of x in the given base.
	Text(base int) string
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 construct a field element from a given uint64
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// RequiredBits returns the number of bits needed to represent the modulus of
// the given field.  This determines how many bits of state a single field
// element can carry before wrapping around.
func RequiredBits[F Element[F]]() uint {
	var element Element[F] = Zero[F]()
	//
	return uint(element.Modulus().BitLen())
}
