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

// UintAdd represents the addition of two uint expressions of the same width,
// with wraparound semantics.
type UintAdd[F field.Element[F]] struct {
	Left  *UintExpr[F]
	Right *UintExpr[F]
}

// Add constructs the sum of two uint expressions.
func Add[F field.Element[F]](left *UintExpr[F], right *UintExpr[F]) *UintExpr[F] {
	return NewUintExpr[F](left.Width, UintTerm[F](&UintAdd[F]{left, right}))
}

// Lisp implementation for the UintTerm interface.
func (p *UintAdd[F]) Lisp() sexp.SExp {
	return lispOfBinary[F]("+", p.Left, p.Right)
}

func (p *UintAdd[F]) isUintTerm() {}

// UintSub represents the subtraction of two uint expressions of the same
// width, with wraparound semantics.
type UintSub[F field.Element[F]] struct {
	Left  *UintExpr[F]
	Right *UintExpr[F]
}

// Sub constructs the difference of two uint expressions.
func Sub[F field.Element[F]](left *UintExpr[F], right *UintExpr[F]) *UintExpr[F] {
	return NewUintExpr[F](left.Width, UintTerm[F](&UintSub[F]{left, right}))
}

// Lisp implementation for the UintTerm interface.
func (p *UintSub[F]) Lisp() sexp.SExp {
	return lispOfBinary[F]("-", p.Left, p.Right)
}

func (p *UintSub[F]) isUintTerm() {}

// UintMult represents the product of two uint expressions of the same width,
// with wraparound semantics.
type UintMult[F field.Element[F]] struct {
	Left  *UintExpr[F]
	Right *UintExpr[F]
}

// Mult constructs the product of two uint expressions.
func Mult[F field.Element[F]](left *UintExpr[F], right *UintExpr[F]) *UintExpr[F] {
	return NewUintExpr[F](left.Width, UintTerm[F](&UintMult[F]{left, right}))
}

// Lisp implementation for the UintTerm interface.
func (p *UintMult[F]) Lisp() sexp.SExp {
	return lispOfBinary[F]("*", p.Left, p.Right)
}

func (p *UintMult[F]) isUintTerm() {}

func lispOfBinary[F field.Element[F]](op string, left Expr[F], right Expr[F]) sexp.SExp {
	return sexp.NewList(sexp.NewSymbol(op), left.Lisp(), right.Lisp())
}
