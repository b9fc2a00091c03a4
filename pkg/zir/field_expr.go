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

// FieldExpr is an expression evaluating to a raw field element.  Field
// expressions have no notion of bitwidth and, hence, are not subject to range
// analysis.
type FieldExpr[F field.Element[F]] interface {
	Expr[F]
	// isFieldExpr seals this interface.
	isFieldExpr()
}

// FieldConstant is a literal field element.
type FieldConstant[F field.Element[F]] struct {
	Value F
}

// Const constructs a literal field expression from a given value.
func Const[F field.Element[F]](value uint64) FieldExpr[F] {
	return &FieldConstant[F]{field.Uint64[F](value)}
}

// Type implementation for the Expr interface.
func (p *FieldConstant[F]) Type() Type { return FieldType{} }

// Lisp implementation for the Expr interface.
func (p *FieldConstant[F]) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.Value.Text(10))
}

func (p *FieldConstant[F]) isFieldExpr() {}

// FieldIdent is a reference to a previously defined field binding.
type FieldIdent[F field.Element[F]] struct {
	Name string
}

// FieldVar constructs a reference to a field binding.
func FieldVar[F field.Element[F]](name string) FieldExpr[F] {
	return &FieldIdent[F]{name}
}

// Type implementation for the Expr interface.
func (p *FieldIdent[F]) Type() Type { return FieldType{} }

// Lisp implementation for the Expr interface.
func (p *FieldIdent[F]) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.Name)
}

func (p *FieldIdent[F]) isFieldExpr() {}

// FieldAdd represents the sum of two field expressions.
type FieldAdd[F field.Element[F]] struct {
	Left  FieldExpr[F]
	Right FieldExpr[F]
}

// FieldSum constructs the sum of two field expressions.
func FieldSum[F field.Element[F]](left FieldExpr[F], right FieldExpr[F]) FieldExpr[F] {
	return &FieldAdd[F]{left, right}
}

// Type implementation for the Expr interface.
func (p *FieldAdd[F]) Type() Type { return FieldType{} }

// Lisp implementation for the Expr interface.
func (p *FieldAdd[F]) Lisp() sexp.SExp {
	return lispOfBinary[F]("+", p.Left, p.Right)
}

func (p *FieldAdd[F]) isFieldExpr() {}

// FieldSub represents the difference of two field expressions.
type FieldSub[F field.Element[F]] struct {
	Left  FieldExpr[F]
	Right FieldExpr[F]
}

// FieldDiff constructs the difference of two field expressions.
func FieldDiff[F field.Element[F]](left FieldExpr[F], right FieldExpr[F]) FieldExpr[F] {
	return &FieldSub[F]{left, right}
}

// Type implementation for the Expr interface.
func (p *FieldSub[F]) Type() Type { return FieldType{} }

// Lisp implementation for the Expr interface.
func (p *FieldSub[F]) Lisp() sexp.SExp {
	return lispOfBinary[F]("-", p.Left, p.Right)
}

func (p *FieldSub[F]) isFieldExpr() {}

// FieldMult represents the product of two field expressions.
type FieldMult[F field.Element[F]] struct {
	Left  FieldExpr[F]
	Right FieldExpr[F]
}

// FieldProduct constructs the product of two field expressions.
func FieldProduct[F field.Element[F]](left FieldExpr[F], right FieldExpr[F]) FieldExpr[F] {
	return &FieldMult[F]{left, right}
}

// Type implementation for the Expr interface.
func (p *FieldMult[F]) Type() Type { return FieldType{} }

// Lisp implementation for the Expr interface.
func (p *FieldMult[F]) Lisp() sexp.SExp {
	return lispOfBinary[F]("*", p.Left, p.Right)
}

func (p *FieldMult[F]) isFieldExpr() {}
