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

import "github.com/consensys/zirc/pkg/zir"

// Binding identifies a uint variable within the environment.  Bindings are
// keyed by name and declared width, matching how identifier expressions are
// looked up.
type Binding struct {
	Name  string
	Width uint
}

// Environment maps each uint binding to the metadata computed for its
// definition.  Since bindings are in SSA-style form, an entry is written
// exactly once and never removed.
type Environment struct {
	bindings map[Binding]zir.Metadata
}

// NewEnvironment constructs an empty environment.
func NewEnvironment() Environment {
	return Environment{make(map[Binding]zir.Metadata)}
}

// Define records the metadata computed for a given binding.
func (p *Environment) Define(name string, width uint, metadata zir.Metadata) {
	p.bindings[Binding{name, width}] = metadata
}

// Lookup returns the metadata recorded for a given binding, if any.
func (p *Environment) Lookup(name string, width uint) (zir.Metadata, bool) {
	metadata, ok := p.bindings[Binding{name, width}]
	//
	return metadata, ok
}

// Reset removes all bindings, yielding an empty environment.
func (p *Environment) Reset() {
	p.bindings = make(map[Binding]zir.Metadata)
}
