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

// UintLeftShift represents a uint expression shifted left by a given amount,
// with bits shifted beyond the nominal width discarded.  The shift amount is
// an ordinary field expression rather than a uint, and hence is not subject
// to range analysis.
type UintLeftShift[F field.Element[F]] struct {
	Arg *UintExpr[F]
	By  FieldExpr[F]
}

// LeftShift constructs a left shift of a uint expression by a given amount.
func LeftShift[F field.Element[F]](arg *UintExpr[F], by FieldExpr[F]) *UintExpr[F] {
	return NewUintExpr[F](arg.Width, UintTerm[F](&UintLeftShift[F]{arg, by}))
}

// Lisp implementation for the UintTerm interface.
func (p *UintLeftShift[F]) Lisp() sexp.SExp {
	return sexp.NewList(sexp.NewSymbol("<<"), p.Arg.Lisp(), p.By.Lisp())
}

func (p *UintLeftShift[F]) isUintTerm() {}

// UintRightShift represents a uint expression shifted right by a given
// amount.  As for left shifts, the shift amount is a field expression.
type UintRightShift[F field.Element[F]] struct {
	Arg *UintExpr[F]
	By  FieldExpr[F]
}

// RightShift constructs a right shift of a uint expression by a given amount.
func RightShift[F field.Element[F]](arg *UintExpr[F], by FieldExpr[F]) *UintExpr[F] {
	return NewUintExpr[F](arg.Width, UintTerm[F](&UintRightShift[F]{arg, by}))
}

// Lisp implementation for the UintTerm interface.
func (p *UintRightShift[F]) Lisp() sexp.SExp {
	return sexp.NewList(sexp.NewSymbol(">>"), p.Arg.Lisp(), p.By.Lisp())
}

func (p *UintRightShift[F]) isUintTerm() {}
