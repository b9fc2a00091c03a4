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
	"strconv"

	"github.com/consensys/zirc/pkg/util/field"
	"github.com/consensys/zirc/pkg/util/sexp"
)

// Expr is any ZIR expression, of uint, field or boolean kind.
type Expr[F field.Element[F]] interface {
	// Type returns the static type of this expression.
	Type() Type
	// Lisp converts this expression into its textual S-Expression form.
	Lisp() sexp.SExp
}

// ============================================================================
// Uint expressions
// ============================================================================

// UintExpr is an unsigned integer expression.  Every uint expression carries
// the nominal width of its static type and, after range analysis, a resolved
// metadata record bounding its value.
type UintExpr[F field.Element[F]] struct {
	// Width is the nominal bitwidth of the static type (e.g. 8 for u8).  The
	// canonical domain of the expression is [0, 2^Width).
	Width uint
	// Metadata is nil for a freshly constructed expression, and is fully
	// populated once range analysis has run.
	Metadata *Metadata
	// Term is the underlying operator.
	Term UintTerm[F]
}

// NewUintExpr annotates a term with its nominal width, yielding an expression
// with unresolved metadata.
func NewUintExpr[F field.Element[F]](width uint, term UintTerm[F]) *UintExpr[F] {
	return &UintExpr[F]{width, nil, term}
}

// Type implementation for the Expr interface.
func (p *UintExpr[F]) Type() Type {
	return NewUintType(p.Width)
}

// Annotate returns a copy of this expression carrying the given (resolved)
// metadata.  The term itself is unchanged.
func (p *UintExpr[F]) Annotate(bitwidth uint, shouldReduce bool) *UintExpr[F] {
	return &UintExpr[F]{p.Width, NewMetadata(bitwidth, shouldReduce), p.Term}
}

// WithTerm returns a copy of this expression with the given term, retaining
// width and metadata.
func (p *UintExpr[F]) WithTerm(term UintTerm[F]) *UintExpr[F] {
	return &UintExpr[F]{p.Width, p.Metadata, term}
}

// MarkReduced returns a copy of this expression whose metadata has its
// ShouldReduce flag set, retaining the established bound.  This expression
// must already carry resolved metadata.
func (p *UintExpr[F]) MarkReduced() *UintExpr[F] {
	if p.Metadata == nil {
		panic("cannot mark unresolved expression for reduction")
	}
	//
	return &UintExpr[F]{p.Width, NewMetadata(p.Metadata.Bitwidth, true), p.Term}
}

// Lisp implementation for the Expr interface.
func (p *UintExpr[F]) Lisp() sexp.SExp {
	return p.Term.Lisp()
}

func (p *UintExpr[F]) String() string {
	return p.Lisp().String()
}

// UintTerm is the closed set of operators an unsigned integer expression can
// be built from.
type UintTerm[F field.Element[F]] interface {
	// Lisp converts this term into its textual S-Expression form.
	Lisp() sexp.SExp
	// isUintTerm seals this interface.
	isUintTerm()
}

// ============================================================================
// Value
// ============================================================================

// UintValue is a literal unsigned integer.
type UintValue[F field.Element[F]] struct {
	Value uint64
}

// Uint64 constructs a literal uint expression of the given width.
func Uint64[F field.Element[F]](width uint, value uint64) *UintExpr[F] {
	return NewUintExpr[F](width, UintTerm[F](&UintValue[F]{value}))
}

// Lisp implementation for the UintTerm interface.
func (p *UintValue[F]) Lisp() sexp.SExp {
	return sexp.NewSymbol(strconv.FormatUint(p.Value, 10))
}

func (p *UintValue[F]) isUintTerm() {}

// ============================================================================
// Identifier
// ============================================================================

// UintIdent is a reference to a previously defined uint binding.
type UintIdent[F field.Element[F]] struct {
	Name string
}

// UintVar constructs a reference to a uint binding of the given width.
func UintVar[F field.Element[F]](width uint, name string) *UintExpr[F] {
	return NewUintExpr[F](width, UintTerm[F](&UintIdent[F]{name}))
}

// Lisp implementation for the UintTerm interface.
func (p *UintIdent[F]) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.Name)
}

func (p *UintIdent[F]) isUintTerm() {}
