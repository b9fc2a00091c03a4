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

// UintIfElse selects between two uint expressions of the same width based on
// a boolean condition.
type UintIfElse[F field.Element[F]] struct {
	Condition   BoolExpr[F]
	Consequence *UintExpr[F]
	Alternative *UintExpr[F]
}

// IfElse constructs a ternary selection between two uint expressions.
func IfElse[F field.Element[F]](condition BoolExpr[F], consequence *UintExpr[F],
	alternative *UintExpr[F]) *UintExpr[F] {
	//
	return NewUintExpr[F](consequence.Width, UintTerm[F](&UintIfElse[F]{condition, consequence, alternative}))
}

// Lisp implementation for the UintTerm interface.
func (p *UintIfElse[F]) Lisp() sexp.SExp {
	return sexp.NewList(sexp.NewSymbol("if"), p.Condition.Lisp(), p.Consequence.Lisp(), p.Alternative.Lisp())
}

func (p *UintIfElse[F]) isUintTerm() {}

// UintCall represents a call to a user-defined function.  Calls are resolved
// by inlining earlier in the pipeline, and hence must not survive into a
// program handed to range analysis.
type UintCall[F field.Element[F]] struct {
	Name string
	Args []Expr[F]
}

// Call constructs a call expression of the given width.
func Call[F field.Element[F]](width uint, name string, args ...Expr[F]) *UintExpr[F] {
	return NewUintExpr[F](width, UintTerm[F](&UintCall[F]{name, args}))
}

// Lisp implementation for the UintTerm interface.
func (p *UintCall[F]) Lisp() sexp.SExp {
	list := sexp.NewList(sexp.NewSymbol("call"), sexp.NewSymbol(p.Name))
	//
	for _, arg := range p.Args {
		list.Append(arg.Lisp())
	}
	//
	return list
}

func (p *UintCall[F]) isUintTerm() {}
