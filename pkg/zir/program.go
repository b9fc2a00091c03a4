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

import (
	"strings"

	"github.com/consensys/zirc/pkg/util/field"
	"github.com/consensys/zirc/pkg/util/sexp"
)

// Function is a single ZIR function: a flat list of statements over
// SSA-style bindings.  Any calls it once contained have been inlined away by
// the time range analysis runs.
type Function[F field.Element[F]] struct {
	Name       string
	Parameters []Variable
	Returns    []Type
	Statements []Statement[F]
}

// NewFunction constructs a function with the given signature and body.
func NewFunction[F field.Element[F]](name string, parameters []Variable, returns []Type,
	statements []Statement[F]) Function[F] {
	//
	return Function[F]{name, parameters, returns, statements}
}

// Lisp converts this function into its textual S-Expression form.
func (p *Function[F]) Lisp() sexp.SExp {
	params := sexp.NewList()
	//
	for _, parameter := range p.Parameters {
		params.Append(sexp.NewList(
			sexp.NewSymbol(parameter.Type.String()), sexp.NewSymbol(parameter.Name)))
	}
	//
	returns := sexp.NewList()
	//
	for _, ret := range p.Returns {
		returns.Append(sexp.NewSymbol(ret.String()))
	}
	//
	list := sexp.NewList(sexp.NewSymbol("fun"), sexp.NewSymbol(p.Name), params, returns)
	//
	for _, stmt := range p.Statements {
		list.Append(stmt.Lisp())
	}
	//
	return list
}

// Program is a complete ZIR program, i.e. a list of functions.
type Program[F field.Element[F]] struct {
	Functions []Function[F]
}

// NewProgram constructs a program from zero or more functions.
func NewProgram[F field.Element[F]](functions ...Function[F]) Program[F] {
	return Program[F]{functions}
}

// Function returns the function with a given name in this program, or nil if
// no such function exists.
func (p *Program[F]) Function(name string) *Function[F] {
	for i := range p.Functions {
		if p.Functions[i].Name == name {
			return &p.Functions[i]
		}
	}
	//
	return nil
}

func (p *Program[F]) String() string {
	var builder strings.Builder
	//
	for i := range p.Functions {
		if i != 0 {
			builder.WriteString("\n")
		}
		//
		builder.WriteString(p.Functions[i].Lisp().String())
		builder.WriteString("\n")
	}
	//
	return builder.String()
}
