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

// Package analysis provides static analyses over ZIR programs.  At this time
// it contains a single pass, the uint range optimiser.
package analysis

import (
	"fmt"
	"reflect"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/zirc/pkg/util/field"
	"github.com/consensys/zirc/pkg/zir"
)

// UintOptimiser annotates every uint expression of a program with a proven
// upper bound (in bits) on its value, and decides lazily where reductions
// back into canonical range must be performed.  Reductions are expensive
// (each costs a full bit decomposition of the value in the final circuit), so
// arithmetic operators defer them until continuing to grow the bound would
// exceed the capacity of the underlying field.  Bitwise and shift operators
// decompose their operands regardless and hence always demand canonical
// inputs; likewise, values returned from a function are always materialised
// in canonical form.
//
// The pass is a single bottom-up rewrite of each function body: no fixpoint
// is required because bounds only ever flow from operands to operators, and
// statements are in def-before-use order.  It is idempotent, since an
// expression which already carries metadata is returned unchanged.
type UintOptimiser[F field.Element[F]] struct {
	// env maps each definition processed so far to its computed metadata,
	// resolving later identifier references to it.
	env Environment
	// maxBitwidth is the largest bound any value may occupy.  Keeping one bit
	// of slack below the field capacity ensures a single further addition
	// cannot wrap around before the overflow check runs.
	maxBitwidth uint
	// forced counts the reduction points inserted so far, for reporting.
	forced uint
}

// NewUintOptimiser constructs an optimiser for programs over the field F.
func NewUintOptimiser[F field.Element[F]]() *UintOptimiser[F] {
	return &UintOptimiser[F]{NewEnvironment(), field.RequiredBits[F]() - 1, 0}
}

// Optimise runs uint range analysis over an entire program, producing a
// structurally identical program in which every uint expression carries
// resolved metadata.
func Optimise[F field.Element[F]](p zir.Program[F]) zir.Program[F] {
	optimiser := NewUintOptimiser[F]()
	//
	np := optimiser.FoldProgram(p)
	//
	log.Debugf("uint range analysis forced %d reduction(s)", optimiser.forced)
	//
	return np
}

// FoldProgram implementation for the zir.Folder interface.
func (p *UintOptimiser[F]) FoldProgram(prog zir.Program[F]) zir.Program[F] {
	return zir.FoldProgram[F](p, prog)
}

// FoldFunction implementation for the zir.Folder interface.  Bindings are not
// unique across functions, so each function is analysed in a fresh
// environment.
func (p *UintOptimiser[F]) FoldFunction(fn zir.Function[F]) zir.Function[F] {
	p.env.Reset()
	//
	return zir.FoldFunction[F](p, fn)
}

// FoldStatement implementation for the zir.Folder interface.  Definitions
// register the metadata of their right-hand side under the assignee;
// returned uint values are unconditionally re-marked for reduction, since
// deferral stops at the function boundary.
func (p *UintOptimiser[F]) FoldStatement(stmt zir.Statement[F]) []zir.Statement[F] {
	switch s := stmt.(type) {
	case *zir.Definition[F]:
		rhs := p.FoldExpression(s.Rhs)
		//
		p.register(s.Assignee, rhs)
		//
		return []zir.Statement[F]{zir.NewDefinition[F](s.Assignee, rhs)}
	case *zir.Return[F]:
		values := make([]zir.Expr[F], len(s.Values))
		//
		for i, value := range s.Values {
			if e, ok := value.(*zir.UintExpr[F]); ok {
				values[i] = p.reduce(p.FoldUintExpression(e))
			} else {
				values[i] = p.FoldExpression(value)
			}
		}
		//
		return []zir.Statement[F]{zir.NewReturn[F](values...)}
	default:
		return zir.FoldStatement[F](p, stmt)
	}
}

// FoldExpression implementation for the zir.Folder interface.
func (p *UintOptimiser[F]) FoldExpression(expr zir.Expr[F]) zir.Expr[F] {
	return zir.FoldExpression[F](p, expr)
}

// FoldFieldExpression implementation for the zir.Folder interface.  Field
// expressions have no bitwidth, hence nothing to analyse.
func (p *UintOptimiser[F]) FoldFieldExpression(expr zir.FieldExpr[F]) zir.FieldExpr[F] {
	return zir.FoldFieldExpression[F](p, expr)
}

// FoldBoolExpression implementation for the zir.Folder interface.  The
// default fold reaches uint operands embedded within comparisons.
func (p *UintOptimiser[F]) FoldBoolExpression(expr zir.BoolExpr[F]) zir.BoolExpr[F] {
	return zir.FoldBoolExpression[F](p, expr)
}

// FoldUintExpression implementation for the zir.Folder interface.  This is
// the heart of the pass: one bound propagation rule per operator.
func (p *UintOptimiser[F]) FoldUintExpression(e *zir.UintExpr[F]) *zir.UintExpr[F] {
	var width = e.Width
	// Every operation grows a bound by at most width bits before the overflow
	// check catches it, so both operand bounds and the fallback bounds below
	// must themselves sit comfortably within the field.
	if width >= p.maxBitwidth/2 {
		panic(fmt.Sprintf("field too small for u%d (field capacity is %d bits)", width, p.maxBitwidth+1))
	}
	// A node which already carries metadata is never re-derived.
	if e.Metadata != nil {
		return e
	}
	//
	requested := e.Metadata.Requested()
	//
	switch t := e.Term.(type) {
	case *zir.UintValue[F]:
		return e.Annotate(width, requested)
	case *zir.UintIdent[F]:
		metadata, ok := p.env.Lookup(t.Name, width)
		//
		if !ok {
			panic(fmt.Sprintf("uint variable \"%s\" referenced before definition", t.Name))
		}
		//
		return e.Annotate(metadata.Bitwidth, metadata.ShouldReduce)
	case *zir.UintAdd[F]:
		left, right, bound := p.foldAdditive(t.Left, t.Right, width)
		//
		return e.WithTerm(&zir.UintAdd[F]{Left: left, Right: right}).Annotate(bound, requested)
	case *zir.UintSub[F]:
		left, right, bound := p.foldAdditive(t.Left, t.Right, width)
		//
		return e.WithTerm(&zir.UintSub[F]{Left: left, Right: right}).Annotate(bound, requested)
	case *zir.UintMult[F]:
		left := p.FoldUintExpression(t.Left)
		right := p.FoldUintExpression(t.Right)
		// bitwidth(a*b) = bitwidth(a) + bitwidth(b)
		bound := effectiveBound(left) + effectiveBound(right)
		//
		if bound > p.maxBitwidth {
			// The product does not fit, reduce both operands first.
			left, right = p.reduce(left), p.reduce(right)
			bound = 2 * width
		}
		//
		return e.WithTerm(&zir.UintMult[F]{Left: left, Right: right}).Annotate(bound, requested)
	case *zir.UintXor[F]:
		left, right := p.foldBitwise(t.Left, t.Right)
		//
		return e.WithTerm(&zir.UintXor[F]{Left: left, Right: right}).Annotate(width, true)
	case *zir.UintAnd[F]:
		left, right := p.foldBitwise(t.Left, t.Right)
		//
		return e.WithTerm(&zir.UintAnd[F]{Left: left, Right: right}).Annotate(width, true)
	case *zir.UintOr[F]:
		left, right := p.foldBitwise(t.Left, t.Right)
		//
		return e.WithTerm(&zir.UintOr[F]{Left: left, Right: right}).Annotate(width, true)
	case *zir.UintNot[F]:
		arg := p.reduce(p.FoldUintExpression(t.Arg))
		//
		return e.WithTerm(&zir.UintNot[F]{Arg: arg}).Annotate(width, true)
	case *zir.UintLeftShift[F]:
		arg := p.reduce(p.FoldUintExpression(t.Arg))
		by := p.FoldFieldExpression(t.By)
		//
		return e.WithTerm(&zir.UintLeftShift[F]{Arg: arg, By: by}).Annotate(width, true)
	case *zir.UintRightShift[F]:
		arg := p.reduce(p.FoldUintExpression(t.Arg))
		by := p.FoldFieldExpression(t.By)
		//
		return e.WithTerm(&zir.UintRightShift[F]{Arg: arg, By: by}).Annotate(width, true)
	case *zir.UintIfElse[F]:
		condition := p.FoldBoolExpression(t.Condition)
		consequence := p.FoldUintExpression(t.Consequence)
		alternative := p.FoldUintExpression(t.Alternative)
		// Selecting one of two bounded values introduces no growth.
		bound := max(effectiveBound(consequence), effectiveBound(alternative))
		//
		return e.WithTerm(&zir.UintIfElse[F]{
			Condition:   condition,
			Consequence: consequence,
			Alternative: alternative,
		}).Annotate(bound, requested)
	case *zir.UintCall[F]:
		panic(fmt.Sprintf("unresolved call to \"%s\" (calls must be inlined before range analysis)", t.Name))
	default:
		panic(fmt.Sprintf("unknown ZIR uint term \"%s\"", reflect.TypeOf(e.Term).String()))
	}
}

// Fold the operands of an addition or subtraction, both of which obey the
// same bound rule: bitwidth(a ± b) = max(bitwidth(a), bitwidth(b)) + 1.  For
// subtraction, a - b is represented as a - b + 2^q (with q the bound of b) to
// remain non-negative; that sum is below 2^p + 2^q < 2^(max(p,q)+1), matching
// the rule for addition.
func (p *UintOptimiser[F]) foldAdditive(left *zir.UintExpr[F], right *zir.UintExpr[F],
	width uint) (*zir.UintExpr[F], *zir.UintExpr[F], uint) {
	//
	left = p.FoldUintExpression(left)
	right = p.FoldUintExpression(right)
	//
	bound := max(effectiveBound(left), effectiveBound(right)) + 1
	//
	if bound > p.maxBitwidth {
		// The result does not fit, reduce both operands first and restart
		// from the canonical width.
		return p.reduce(left), p.reduce(right), width + 1
	}
	//
	return left, right, bound
}

// Fold the operands of a bitwise operator, both of which must be reduced into
// canonical range: the underlying constraint gadget decomposes each operand
// into exactly width bits.  If an operand is already in range, the flattening
// stage will ignore the reduction.
func (p *UintOptimiser[F]) foldBitwise(left *zir.UintExpr[F],
	right *zir.UintExpr[F]) (*zir.UintExpr[F], *zir.UintExpr[F]) {
	//
	return p.reduce(p.FoldUintExpression(left)), p.reduce(p.FoldUintExpression(right))
}

// Mark an (already optimised) expression as requiring reduction into
// canonical range before use.
func (p *UintOptimiser[F]) reduce(e *zir.UintExpr[F]) *zir.UintExpr[F] {
	if e.Metadata.ShouldReduce {
		return e
	}
	//
	p.forced++
	//
	return e.MarkReduced()
}

// effectiveBound of an already optimised operand: its nominal width if a
// reduction is pending (the reduction will force it into canonical range
// before it is consumed), otherwise its proven bound.
func effectiveBound[F field.Element[F]](e *zir.UintExpr[F]) uint {
	if e.Metadata.ShouldReduce {
		return e.Width
	}
	//
	return e.Metadata.Bitwidth
}

func (p *UintOptimiser[F]) register(assignee zir.Variable, rhs zir.Expr[F]) {
	if e, ok := rhs.(*zir.UintExpr[F]); ok {
		p.env.Define(assignee.Name, e.Width, *e.Metadata)
	}
}
