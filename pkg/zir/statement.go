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
	"github.com/consensys/zirc/pkg/util/field"
	"github.com/consensys/zirc/pkg/util/sexp"
)

// Statement is a ZIR statement.  After earlier pipeline stages have run,
// control flow has been flattened away and only straight-line definitions,
// assertions and returns remain.
type Statement[F field.Element[F]] interface {
	// Lisp converts this statement into its textual S-Expression form.
	Lisp() sexp.SExp
	// isStatement seals this interface.
	isStatement()
}

// Definition binds the value of an expression to a (fresh) variable.
type Definition[F field.Element[F]] struct {
	Assignee Variable
	Rhs      Expr[F]
}

// NewDefinition constructs a definition statement.
func NewDefinition[F field.Element[F]](assignee Variable, rhs Expr[F]) *Definition[F] {
	return &Definition[F]{assignee, rhs}
}

// Lisp implementation for the Statement interface.
func (p *Definition[F]) Lisp() sexp.SExp {
	return sexp.NewList(sexp.NewSymbol("def"),
		sexp.NewList(sexp.NewSymbol(p.Assignee.Type.String()), sexp.NewSymbol(p.Assignee.Name)),
		p.Rhs.Lisp())
}

func (p *Definition[F]) isStatement() {}

// Assertion constrains a boolean expression to hold.
type Assertion[F field.Element[F]] struct {
	Condition BoolExpr[F]
}

// NewAssertion constructs an assertion statement.
func NewAssertion[F field.Element[F]](condition BoolExpr[F]) *Assertion[F] {
	return &Assertion[F]{condition}
}

// Lisp implementation for the Statement interface.
func (p *Assertion[F]) Lisp() sexp.SExp {
	return sexp.NewList(sexp.NewSymbol("assert"), p.Condition.Lisp())
}

func (p *Assertion[F]) isStatement() {}

// Return yields zero or more values from the enclosing function.
type Return[F field.Element[F]] struct {
	Values []Expr[F]
}

// NewReturn constructs a return statement.
func NewReturn[F field.Element[F]](values ...Expr[F]) *Return[F] {
	return &Return[F]{values}
}

// Lisp implementation for the Statement interface.
func (p *Return[F]) Lisp() sexp.SExp {
	list := sexp.NewList(sexp.NewSymbol("return"))
	//
	for _, value := range p.Values {
		list.Append(value.Lisp())
	}
	//
	return list
}

func (p *Return[F]) isStatement() {}
