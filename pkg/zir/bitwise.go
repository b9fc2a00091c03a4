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

// UintXor represents the bitwise exclusive-or of two uint expressions of the
// same width.  Its constraint gadget decomposes both operands into exactly
// width bits, hence both must be in canonical form.
type UintXor[F field.Element[F]] struct {
	Left  *UintExpr[F]
	Right *UintExpr[F]
}

// Xor constructs the bitwise exclusive-or of two uint expressions.
func Xor[F field.Element[F]](left *UintExpr[F], right *UintExpr[F]) *UintExpr[F] {
	return NewUintExpr[F](left.Width, UintTerm[F](&UintXor[F]{left, right}))
}

// Lisp implementation for the UintTerm interface.
func (p *UintXor[F]) Lisp() sexp.SExp {
	return lispOfBinary[F]("^", p.Left, p.Right)
}

func (p *UintXor[F]) isUintTerm() {}

// UintAnd represents the bitwise conjunction of two uint expressions of the
// same width.
type UintAnd[F field.Element[F]] struct {
	Left  *UintExpr[F]
	Right *UintExpr[F]
}

// And constructs the bitwise conjunction of two uint expressions.
func And[F field.Element[F]](left *UintExpr[F], right *UintExpr[F]) *UintExpr[F] {
	return NewUintExpr[F](left.Width, UintTerm[F](&UintAnd[F]{left, right}))
}

// Lisp implementation for the UintTerm interface.
func (p *UintAnd[F]) Lisp() sexp.SExp {
	return lispOfBinary[F]("&", p.Left, p.Right)
}

func (p *UintAnd[F]) isUintTerm() {}

// UintOr represents the bitwise disjunction of two uint expressions of the
// same width.
type UintOr[F field.Element[F]] struct {
	Left  *UintExpr[F]
	Right *UintExpr[F]
}

// Or constructs the bitwise disjunction of two uint expressions.
func Or[F field.Element[F]](left *UintExpr[F], right *UintExpr[F]) *UintExpr[F] {
	return NewUintExpr[F](left.Width, UintTerm[F](&UintOr[F]{left, right}))
}

// Lisp implementation for the UintTerm interface.
func (p *UintOr[F]) Lisp() sexp.SExp {
	return lispOfBinary[F]("|", p.Left, p.Right)
}

func (p *UintOr[F]) isUintTerm() {}

// UintNot represents the bitwise complement of a uint expression, taken over
// exactly width bits.
type UintNot[F field.Element[F]] struct {
	Arg *UintExpr[F]
}

// Not constructs the bitwise complement of a uint expression.
func Not[F field.Element[F]](arg *UintExpr[F]) *UintExpr[F] {
	return NewUintExpr[F](arg.Width, UintTerm[F](&UintNot[F]{arg}))
}

// Lisp implementation for the UintTerm interface.
func (p *UintNot[F]) Lisp() sexp.SExp {
	return sexp.NewList(sexp.NewSymbol("~"), p.Arg.Lisp())
}

func (p *UintNot[F]) isUintTerm() {}
