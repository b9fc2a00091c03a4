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

// BoolExpr is an expression evaluating to a boolean.  Boolean expressions
// guard assertions and conditional selections; they may embed uint operands
// (e.g. in comparisons), which are still subject to range analysis.
type BoolExpr[F field.Element[F]] interface {
	Expr[F]
	// isBoolExpr seals this interface.
	isBoolExpr()
}

// BoolConstant is a literal truth value.
type BoolConstant[F field.Element[F]] struct {
	Value bool
}

// Bool constructs a literal boolean expression.
func Bool[F field.Element[F]](value bool) BoolExpr[F] {
	return &BoolConstant[F]{value}
}

// Type implementation for the Expr interface.
func (p *BoolConstant[F]) Type() Type { return BoolType{} }

// Lisp implementation for the Expr interface.
func (p *BoolConstant[F]) Lisp() sexp.SExp {
	if p.Value {
		return sexp.NewSymbol("true")
	}
	//
	return sexp.NewSymbol("false")
}

func (p *BoolConstant[F]) isBoolExpr() {}

// BoolIdent is a reference to a previously defined boolean binding.
type BoolIdent[F field.Element[F]] struct {
	Name string
}

// BoolVar constructs a reference to a boolean binding.
func BoolVar[F field.Element[F]](name string) BoolExpr[F] {
	return &BoolIdent[F]{name}
}

// Type implementation for the Expr interface.
func (p *BoolIdent[F]) Type() Type { return BoolType{} }

// Lisp implementation for the Expr interface.
func (p *BoolIdent[F]) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.Name)
}

func (p *BoolIdent[F]) isBoolExpr() {}

// UintEq compares two uint expressions of the same width for equality.
type UintEq[F field.Element[F]] struct {
	Left  *UintExpr[F]
	Right *UintExpr[F]
}

// Eq constructs an equality between two uint expressions.
func Eq[F field.Element[F]](left *UintExpr[F], right *UintExpr[F]) BoolExpr[F] {
	return &UintEq[F]{left, right}
}

// Type implementation for the Expr interface.
func (p *UintEq[F]) Type() Type { return BoolType{} }

// Lisp implementation for the Expr interface.
func (p *UintEq[F]) Lisp() sexp.SExp {
	return lispOfBinary[F]("==", p.Left, p.Right)
}

func (p *UintEq[F]) isBoolExpr() {}

// UintLt is a strict less-than comparison between two uint expressions of
// the same width.
type UintLt[F field.Element[F]] struct {
	Left  *UintExpr[F]
	Right *UintExpr[F]
}

// Lt constructs a strict less-than comparison between two uint expressions.
func Lt[F field.Element[F]](left *UintExpr[F], right *UintExpr[F]) BoolExpr[F] {
	return &UintLt[F]{left, right}
}

// Type implementation for the Expr interface.
func (p *UintLt[F]) Type() Type { return BoolType{} }

// Lisp implementation for the Expr interface.
func (p *UintLt[F]) Lisp() sexp.SExp {
	return lispOfBinary[F]("<", p.Left, p.Right)
}

func (p *UintLt[F]) isBoolExpr() {}

// FieldEq compares two field expressions for equality.
type FieldEq[F field.Element[F]] struct {
	Left  FieldExpr[F]
	Right FieldExpr[F]
}

// FieldEquals constructs an equality between two field expressions.
func FieldEquals[F field.Element[F]](left FieldExpr[F], right FieldExpr[F]) BoolExpr[F] {
	return &FieldEq[F]{left, right}
}

// Type implementation for the Expr interface.
func (p *FieldEq[F]) Type() Type { return BoolType{} }

// Lisp implementation for the Expr interface.
func (p *FieldEq[F]) Lisp() sexp.SExp {
	return lispOfBinary[F]("==", p.Left, p.Right)
}

func (p *FieldEq[F]) isBoolExpr() {}

// BoolAnd is the conjunction of two boolean expressions.
type BoolAnd[F field.Element[F]] struct {
	Left  BoolExpr[F]
	Right BoolExpr[F]
}

// Conjunct constructs the conjunction of two boolean expressions.
func Conjunct[F field.Element[F]](left BoolExpr[F], right BoolExpr[F]) BoolExpr[F] {
	return &BoolAnd[F]{left, right}
}

// Type implementation for the Expr interface.
func (p *BoolAnd[F]) Type() Type { return BoolType{} }

// Lisp implementation for the Expr interface.
func (p *BoolAnd[F]) Lisp() sexp.SExp {
	return lispOfBinary[F]("&&", p.Left, p.Right)
}

func (p *BoolAnd[F]) isBoolExpr() {}

// BoolOr is the disjunction of two boolean expressions.
type BoolOr[F field.Element[F]] struct {
	Left  BoolExpr[F]
	Right BoolExpr[F]
}

// Disjunct constructs the disjunction of two boolean expressions.
func Disjunct[F field.Element[F]](left BoolExpr[F], right BoolExpr[F]) BoolExpr[F] {
	return &BoolOr[F]{left, right}
}

// Type implementation for the Expr interface.
func (p *BoolOr[F]) Type() Type { return BoolType{} }

// Lisp implementation for the Expr interface.
func (p *BoolOr[F]) Lisp() sexp.SExp {
	return lispOfBinary[F]("||", p.Left, p.Right)
}

func (p *BoolOr[F]) isBoolExpr() {}

// BoolNot is the negation of a boolean expression.
type BoolNot[F field.Element[F]] struct {
	Arg BoolExpr[F]
}

// Negate constructs the negation of a boolean expression.
func Negate[F field.Element[F]](arg BoolExpr[F]) BoolExpr[F] {
	return &BoolNot[F]{arg}
}

// Type implementation for the Expr interface.
func (p *BoolNot[F]) Type() Type { return BoolType{} }

// Lisp implementation for the Expr interface.
func (p *BoolNot[F]) Lisp() sexp.SExp {
	return sexp.NewList(sexp.NewSymbol("!"), p.Arg.Lisp())
}

func (p *BoolNot[F]) isBoolExpr() {}
