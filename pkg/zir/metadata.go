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
package zir

import "fmt"

// Metadata records the outcome of range analysis for a single uint
// expression.  A uint expression holds either no metadata (the unresolved
// phase, represented by a nil pointer) or a fully populated record; there is
// no in-between state.
type Metadata struct {
	// Bitwidth is a proven upper bound (in bits) on the value of the
	// expression before any reduction is applied.  In other words, the value
	// is known to lie within [0, 2^Bitwidth).
	Bitwidth uint
	// ShouldReduce indicates the consumer of this expression must reduce it
	// into its canonical range [0, 2^width) before use.
	ShouldReduce bool
}

// NewMetadata constructs a fully resolved metadata record.
func NewMetadata(bitwidth uint, shouldReduce bool) *Metadata {
	return &Metadata{bitwidth, shouldReduce}
}

// Requested returns the pending reduction request attached to this metadata,
// defaulting to false when the metadata is unresolved.
func (p *Metadata) Requested() bool {
	return p != nil && p.ShouldReduce
}

func (p *Metadata) String() string {
	if p == nil {
		return "?"
	}
	//
	return fmt.Sprintf("%d:%t", p.Bitwidth, p.ShouldReduce)
}
