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
package analysis

import (
	"testing"

	"github.com/consensys/zirc/pkg/util/field/bls12_377"
	"github.com/consensys/zirc/pkg/util/field/gf524287"
	"github.com/consensys/zirc/pkg/zir"
	"github.com/stretchr/testify/assert"
)

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ zir.Folder[gf524287.Element] = (*UintOptimiser[gf524287.Element])(nil)

// GF(524287) has 19 required bits, hence maxBitwidth is 18: wide enough for
// u8 (8 < 18/2) whilst small enough that overflow arises in tiny programs.
const testMaxBitwidth = 18

func TestExistingMetadata(t *testing.T) {
	e := zir.UintVar[gf524287.Element](8, "foo").Annotate(33, false)
	//
	optimised := NewUintOptimiser[gf524287.Element]().FoldUintExpression(e)
	//
	assert.Equal(t, e, optimised)
}

func TestValueBound(t *testing.T) {
	e := zir.Uint64[gf524287.Element](8, 3)
	//
	optimised := NewUintOptimiser[gf524287.Element]().FoldUintExpression(e)
	//
	assert.Equal(t, zir.NewMetadata(8, false), optimised.Metadata)
}

func TestIdentifierBound(t *testing.T) {
	optimiser := NewUintOptimiser[gf524287.Element]()
	// a := 3
	stmts := optimiser.FoldStatement(def("a", zir.Uint64[gf524287.Element](8, 3)))
	assert.Len(t, stmts, 1)
	// b := a + a
	e := optimiser.FoldUintExpression(
		zir.Add(zir.UintVar[gf524287.Element](8, "a"), zir.UintVar[gf524287.Element](8, "a")))
	//
	assert.Equal(t, zir.NewMetadata(9, false), e.Metadata)
}

func TestAdditionChain(t *testing.T) {
	optimiser := NewUintOptimiser[gf524287.Element]()
	// Summing literals grows the bound by one bit per addition until the next
	// step would overflow the field; at that point both operands must be
	// reduced and the bound restarts at width+1.
	e := zir.Uint64[gf524287.Element](8, 1)
	//
	for i := uint(1); i <= 10; i++ {
		e = optimiser.FoldUintExpression(zir.Add(e, zir.Uint64[gf524287.Element](8, 1)))
		assert.Equal(t, zir.NewMetadata(8+i, false), e.Metadata)
	}
	// Bound now sits at 18; one more addition would need 19 bits.
	e = optimiser.FoldUintExpression(zir.Add(e, zir.Uint64[gf524287.Element](8, 1)))
	//
	assert.Equal(t, zir.NewMetadata(9, false), e.Metadata)
	// Both operands of the overflowing addition carry a pending reduction.
	add := e.Term.(*zir.UintAdd[gf524287.Element])
	assert.True(t, add.Left.Metadata.ShouldReduce)
	assert.True(t, add.Right.Metadata.ShouldReduce)
	// The reduced operand retains its previously established bound.
	assert.Equal(t, uint(18), add.Left.Metadata.Bitwidth)
}

func TestSubtraction(t *testing.T) {
	optimiser := NewUintOptimiser[gf524287.Element]()
	//
	e := optimiser.FoldUintExpression(
		zir.Sub(zir.Uint64[gf524287.Element](8, 7), zir.Uint64[gf524287.Element](8, 3)))
	//
	assert.Equal(t, zir.NewMetadata(9, false), e.Metadata)
}

func TestSubtractionOverflow(t *testing.T) {
	optimiser := NewUintOptimiser[gf524287.Element]()
	// Establish an operand with bound 18 via an addition chain.
	e := zir.Uint64[gf524287.Element](8, 1)
	//
	for i := 0; i < 10; i++ {
		e = optimiser.FoldUintExpression(zir.Add(e, zir.Uint64[gf524287.Element](8, 1)))
	}
	//
	assert.Equal(t, uint(testMaxBitwidth), e.Metadata.Bitwidth)
	//
	e = optimiser.FoldUintExpression(zir.Sub(e, zir.Uint64[gf524287.Element](8, 1)))
	// Subtraction obeys the same fallback as addition.
	assert.Equal(t, zir.NewMetadata(9, false), e.Metadata)
	//
	sub := e.Term.(*zir.UintSub[gf524287.Element])
	assert.True(t, sub.Left.Metadata.ShouldReduce)
	assert.True(t, sub.Right.Metadata.ShouldReduce)
}

func TestMultiplication(t *testing.T) {
	optimiser := NewUintOptimiser[gf524287.Element]()
	//
	a := zir.Uint64[gf524287.Element](8, 200)
	b := zir.Uint64[gf524287.Element](8, 100)
	//
	e := optimiser.FoldUintExpression(zir.Mult(a, b))
	// bitwidth(a*b) = bitwidth(a) + bitwidth(b)
	assert.Equal(t, zir.NewMetadata(16, false), e.Metadata)
}

func TestMultiplicationOverflow(t *testing.T) {
	optimiser := NewUintOptimiser[gf524287.Element]()
	//
	a := zir.Uint64[gf524287.Element](8, 200)
	b := zir.Uint64[gf524287.Element](8, 100)
	c := zir.Uint64[gf524287.Element](8, 3)
	// (a*b) has bound 16; multiplying again would need 24 > 18 bits.
	e := optimiser.FoldUintExpression(zir.Mult(zir.Mult(a, b), c))
	// Fallback bound for multiplication is 2*width.
	assert.Equal(t, zir.NewMetadata(16, false), e.Metadata)
	//
	mult := e.Term.(*zir.UintMult[gf524287.Element])
	assert.True(t, mult.Left.Metadata.ShouldReduce)
	assert.True(t, mult.Right.Metadata.ShouldReduce)
}

func TestBitwiseForcesReduction(t *testing.T) {
	builders := map[string]func(l *zir.UintExpr[gf524287.Element],
		r *zir.UintExpr[gf524287.Element]) *zir.UintExpr[gf524287.Element]{
		"xor": zir.Xor[gf524287.Element],
		"and": zir.And[gf524287.Element],
		"or":  zir.Or[gf524287.Element],
	}
	//
	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			optimiser := NewUintOptimiser[gf524287.Element]()
			// Both operands are unreduced 9 bit sums.
			a := zir.Add(zir.Uint64[gf524287.Element](8, 1), zir.Uint64[gf524287.Element](8, 2))
			b := zir.Add(zir.Uint64[gf524287.Element](8, 3), zir.Uint64[gf524287.Element](8, 4))
			//
			e := optimiser.FoldUintExpression(build(a, b))
			// Output is always canonical.
			assert.Equal(t, zir.NewMetadata(8, true), e.Metadata)
			// Both operands must be reduced, whatever their bounds were.
			left, right := binaryOperands(t, e)
			assert.Equal(t, zir.NewMetadata(9, true), left.Metadata)
			assert.Equal(t, zir.NewMetadata(9, true), right.Metadata)
		})
	}
}

func TestNotForcesReduction(t *testing.T) {
	optimiser := NewUintOptimiser[gf524287.Element]()
	//
	a := zir.Add(zir.Uint64[gf524287.Element](8, 1), zir.Uint64[gf524287.Element](8, 2))
	e := optimiser.FoldUintExpression(zir.Not(a))
	//
	assert.Equal(t, zir.NewMetadata(8, true), e.Metadata)
	//
	not := e.Term.(*zir.UintNot[gf524287.Element])
	assert.Equal(t, zir.NewMetadata(9, true), not.Arg.Metadata)
}

func TestShiftForcesReduction(t *testing.T) {
	optimiser := NewUintOptimiser[gf524287.Element]()
	//
	a := zir.Add(zir.Uint64[gf524287.Element](8, 1), zir.Uint64[gf524287.Element](8, 2))
	e := optimiser.FoldUintExpression(zir.LeftShift(a, zir.Const[gf524287.Element](2)))
	//
	assert.Equal(t, zir.NewMetadata(8, true), e.Metadata)
	//
	shift := e.Term.(*zir.UintLeftShift[gf524287.Element])
	assert.Equal(t, zir.NewMetadata(9, true), shift.Arg.Metadata)
	//
	a = zir.Add(zir.Uint64[gf524287.Element](8, 1), zir.Uint64[gf524287.Element](8, 2))
	e = optimiser.FoldUintExpression(zir.RightShift(a, zir.Const[gf524287.Element](2)))
	//
	assert.Equal(t, zir.NewMetadata(8, true), e.Metadata)
}

func TestIfElseBound(t *testing.T) {
	optimiser := NewUintOptimiser[gf524287.Element]()
	// Consequence is a 9 bit sum, alternative an 8 bit literal.
	consequence := zir.Add(zir.Uint64[gf524287.Element](8, 1), zir.Uint64[gf524287.Element](8, 2))
	alternative := zir.Uint64[gf524287.Element](8, 3)
	//
	e := optimiser.FoldUintExpression(zir.IfElse(zir.Bool[gf524287.Element](true), consequence, alternative))
	// Selection introduces no growth: no +1, no forced reductions.
	assert.Equal(t, zir.NewMetadata(9, false), e.Metadata)
	//
	ite := e.Term.(*zir.UintIfElse[gf524287.Element])
	assert.False(t, ite.Consequence.Metadata.ShouldReduce)
	assert.False(t, ite.Alternative.Metadata.ShouldReduce)
}

func TestReturnBoundary(t *testing.T) {
	optimiser := NewUintOptimiser[gf524287.Element]()
	// return 1 + 2, whose natural metadata is {9, false}
	e := zir.Add(zir.Uint64[gf524287.Element](8, 1), zir.Uint64[gf524287.Element](8, 2))
	stmts := optimiser.FoldStatement(zir.NewReturn[gf524287.Element](e))
	//
	assert.Len(t, stmts, 1)
	//
	ret := stmts[0].(*zir.Return[gf524287.Element])
	value := ret.Values[0].(*zir.UintExpr[gf524287.Element])
	// Values crossing the function boundary are always canonical.
	assert.Equal(t, zir.NewMetadata(9, true), value.Metadata)
}

func TestEnvironmentResetBetweenFunctions(t *testing.T) {
	fn1 := zir.NewFunction("f", nil, nil, []zir.Statement[gf524287.Element]{
		def("a", zir.Uint64[gf524287.Element](8, 3)),
	})
	// "a" is not in scope within g
	fn2 := zir.NewFunction("g", nil, nil, []zir.Statement[gf524287.Element]{
		def("b", zir.UintVar[gf524287.Element](8, "a")),
	})
	//
	assert.Panics(t, func() {
		Optimise(zir.NewProgram(fn1, fn2))
	})
}

func TestFieldTooSmall(t *testing.T) {
	// u16 requires 16 < 18/2, which fails on GF(524287).
	assert.Panics(t, func() {
		NewUintOptimiser[gf524287.Element]().FoldUintExpression(zir.Uint64[gf524287.Element](16, 3))
	})
	// By contrast, u16 (and u32) sit comfortably within BLS12-377.
	e := NewUintOptimiser[bls12_377.Element]().FoldUintExpression(zir.Uint64[bls12_377.Element](32, 3))
	assert.Equal(t, zir.NewMetadata(32, false), e.Metadata)
}

func TestUnresolvedIdentifier(t *testing.T) {
	assert.Panics(t, func() {
		NewUintOptimiser[gf524287.Element]().FoldUintExpression(zir.UintVar[gf524287.Element](8, "ghost"))
	})
}

func TestUnresolvedCall(t *testing.T) {
	assert.Panics(t, func() {
		NewUintOptimiser[gf524287.Element]().FoldUintExpression(zir.Call[gf524287.Element](8, "double"))
	})
}

func TestOptimiseProgram(t *testing.T) {
	// fun main ((u8 x)) (u8):
	//   a := x + x
	//   b := a ^ a
	//   return b
	//
	// Parameters are not definitions, so x is introduced by an explicit
	// definition here.
	fn := zir.NewFunction("main", nil, []zir.Type{zir.NewUintType(8)},
		[]zir.Statement[gf524287.Element]{
			def("x", zir.Uint64[gf524287.Element](8, 5)),
			def("a", zir.Add(zir.UintVar[gf524287.Element](8, "x"), zir.UintVar[gf524287.Element](8, "x"))),
			def("b", zir.Xor(zir.UintVar[gf524287.Element](8, "a"), zir.UintVar[gf524287.Element](8, "a"))),
			zir.NewReturn[gf524287.Element](zir.UintVar[gf524287.Element](8, "b")),
		})
	//
	program := Optimise(zir.NewProgram(fn))
	stmts := program.Functions[0].Statements
	// a has bound 9 and no pending reduction
	a := stmts[1].(*zir.Definition[gf524287.Element]).Rhs.(*zir.UintExpr[gf524287.Element])
	assert.Equal(t, zir.NewMetadata(9, false), a.Metadata)
	// b is canonical, and both its operands reference a's stored metadata
	// with a reduction forced upon them
	b := stmts[2].(*zir.Definition[gf524287.Element]).Rhs.(*zir.UintExpr[gf524287.Element])
	assert.Equal(t, zir.NewMetadata(8, true), b.Metadata)
	//
	xor := b.Term.(*zir.UintXor[gf524287.Element])
	assert.Equal(t, zir.NewMetadata(9, true), xor.Left.Metadata)
	// b is already canonical when returned
	ret := stmts[3].(*zir.Return[gf524287.Element])
	value := ret.Values[0].(*zir.UintExpr[gf524287.Element])
	assert.Equal(t, zir.NewMetadata(8, true), value.Metadata)
}

func TestOptimiseIdempotent(t *testing.T) {
	fn := zir.NewFunction("main", nil, nil, []zir.Statement[gf524287.Element]{
		def("a", zir.Add(zir.Uint64[gf524287.Element](8, 1), zir.Uint64[gf524287.Element](8, 2))),
		zir.NewReturn[gf524287.Element](zir.UintVar[gf524287.Element](8, "a")),
	})
	//
	once := Optimise(zir.NewProgram(fn))
	twice := Optimise(once)
	//
	assert.Equal(t, once, twice)
}

func TestAssertionOperandsAnnotated(t *testing.T) {
	// assert (1 + 2) == 3 embeds uint operands within a boolean expression
	fn := zir.NewFunction("main", nil, nil, []zir.Statement[gf524287.Element]{
		zir.NewAssertion[gf524287.Element](zir.Eq[gf524287.Element](
			zir.Add(zir.Uint64[gf524287.Element](8, 1), zir.Uint64[gf524287.Element](8, 2)),
			zir.Uint64[gf524287.Element](8, 3))),
	})
	//
	program := Optimise(zir.NewProgram(fn))
	assertion := program.Functions[0].Statements[0].(*zir.Assertion[gf524287.Element])
	eq := assertion.Condition.(*zir.UintEq[gf524287.Element])
	//
	assert.Equal(t, zir.NewMetadata(9, false), eq.Left.Metadata)
	assert.Equal(t, zir.NewMetadata(8, false), eq.Right.Metadata)
}

// Check, for a selection of literal expressions, that the true maximum value
// an expression can reach (before any reduction is materialised) stays below
// 2^bound at every node.
func TestBoundSoundness(t *testing.T) {
	one := func() *zir.UintExpr[gf524287.Element] { return zir.Uint64[gf524287.Element](8, 255) }
	//
	exprs := map[string]*zir.UintExpr[gf524287.Element]{
		"add":      zir.Add(one(), one()),
		"add3":     zir.Add(zir.Add(one(), one()), one()),
		"sub":      zir.Sub(one(), one()),
		"mult":     zir.Mult(one(), one()),
		"multadd":  zir.Mult(zir.Add(one(), one()), one()),
		"multmult": zir.Mult(zir.Mult(one(), one()), one()),
		"xor":      zir.Xor(zir.Add(one(), one()), one()),
		"ifelse":   zir.IfElse(zir.Bool[gf524287.Element](true), zir.Add(one(), one()), one()),
		"shift":    zir.LeftShift(zir.Add(one(), one()), zir.Const[gf524287.Element](1)),
	}
	//
	for name, e := range exprs {
		t.Run(name, func(t *testing.T) {
			optimised := NewUintOptimiser[gf524287.Element]().FoldUintExpression(e)
			checkSoundBounds(t, optimised)
		})
	}
}

// Recursively check every node of an optimised expression against its proven
// bound.
func checkSoundBounds(t *testing.T, e *zir.UintExpr[gf524287.Element]) uint64 {
	value := maxValue(t, e)
	//
	assert.Less(t, value, uint64(1)<<e.Metadata.Bitwidth,
		"value of %s exceeds 2^%d", e.String(), e.Metadata.Bitwidth)
	// A pending reduction caps the value seen by this node's consumer.
	if e.Metadata.ShouldReduce {
		return (uint64(1) << e.Width) - 1
	}
	//
	return value
}

// Compute the maximum value a (literal) expression can take before
// reduction, mirroring how the flattening stage materialises each operator.
func maxValue(t *testing.T, e *zir.UintExpr[gf524287.Element]) uint64 {
	switch term := e.Term.(type) {
	case *zir.UintValue[gf524287.Element]:
		return term.Value
	case *zir.UintAdd[gf524287.Element]:
		return checkSoundBounds(t, term.Left) + checkSoundBounds(t, term.Right)
	case *zir.UintSub[gf524287.Element]:
		// a - b is materialised as a - b + 2^q, with q the effective bound
		// of b; its maximum is reached when b = 0.
		lmax := checkSoundBounds(t, term.Left)
		checkSoundBounds(t, term.Right)
		//
		q := term.Right.Width
		if !term.Right.Metadata.ShouldReduce {
			q = term.Right.Metadata.Bitwidth
		}
		//
		return lmax + (uint64(1) << q)
	case *zir.UintMult[gf524287.Element]:
		return checkSoundBounds(t, term.Left) * checkSoundBounds(t, term.Right)
	case *zir.UintXor[gf524287.Element]:
		checkSoundBounds(t, term.Left)
		checkSoundBounds(t, term.Right)
		//
		return (uint64(1) << e.Width) - 1
	case *zir.UintLeftShift[gf524287.Element]:
		checkSoundBounds(t, term.Arg)
		return (uint64(1) << e.Width) - 1
	case *zir.UintIfElse[gf524287.Element]:
		return max(checkSoundBounds(t, term.Consequence), checkSoundBounds(t, term.Alternative))
	default:
		t.Fatalf("unexpected term %s", e.String())
		return 0
	}
}

// Construct a u8 definition statement.
func def(name string, rhs *zir.UintExpr[gf524287.Element]) zir.Statement[gf524287.Element] {
	return zir.NewDefinition[gf524287.Element](
		zir.NewVariable(name, zir.NewUintType(rhs.Width)), rhs)
}

func binaryOperands(t *testing.T,
	e *zir.UintExpr[gf524287.Element]) (*zir.UintExpr[gf524287.Element], *zir.UintExpr[gf524287.Element]) {
	//
	switch term := e.Term.(type) {
	case *zir.UintXor[gf524287.Element]:
		return term.Left, term.Right
	case *zir.UintAnd[gf524287.Element]:
		return term.Left, term.Right
	case *zir.UintOr[gf524287.Element]:
		return term.Left, term.Right
	default:
		t.Fatalf("unexpected term %s", e.String())
		return nil, nil
	}
}
