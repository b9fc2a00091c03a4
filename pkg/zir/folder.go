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
	"fmt"
	"reflect"

	"github.com/consensys/zirc/pkg/util/field"
)

// Folder is a bottom-up tree transformer over ZIR programs.  A pass
// implements this interface by delegating most entry points to the
// corresponding package-level default (e.g. FoldStatement), overriding only
// the entry points whose behaviour it changes.  The defaults recurse through
// the Folder itself (open recursion), so an override applies at every depth,
// and they preserve structure exactly unless a child changed.
type Folder[F field.Element[F]] interface {
	// FoldProgram rewrites every function of a program.
	FoldProgram(Program[F]) Program[F]
	// FoldFunction rewrites the body of a function.
	FoldFunction(Function[F]) Function[F]
	// FoldStatement rewrites a statement into zero or more statements.
	FoldStatement(Statement[F]) []Statement[F]
	// FoldExpression rewrites an expression of any kind, dispatching on its
	// type to one of the kind-specific entry points below.
	FoldExpression(Expr[F]) Expr[F]
	// FoldUintExpression rewrites an unsigned integer expression.
	FoldUintExpression(*UintExpr[F]) *UintExpr[F]
	// FoldFieldExpression rewrites a field expression.
	FoldFieldExpression(FieldExpr[F]) FieldExpr[F]
	// FoldBoolExpression rewrites a boolean expression.
	FoldBoolExpression(BoolExpr[F]) BoolExpr[F]
}

// FoldProgram is the default (structural) program fold.
func FoldProgram[F field.Element[F]](f Folder[F], p Program[F]) Program[F] {
	functions := make([]Function[F], len(p.Functions))
	//
	for i, fn := range p.Functions {
		functions[i] = f.FoldFunction(fn)
	}
	//
	return Program[F]{functions}
}

// FoldFunction is the default (structural) function fold, which rewrites each
// statement of the body in order.
func FoldFunction[F field.Element[F]](f Folder[F], fn Function[F]) Function[F] {
	var statements []Statement[F]
	//
	for _, stmt := range fn.Statements {
		statements = append(statements, f.FoldStatement(stmt)...)
	}
	//
	return Function[F]{fn.Name, fn.Parameters, fn.Returns, statements}
}

// FoldStatement is the default (structural) statement fold.
func FoldStatement[F field.Element[F]](f Folder[F], stmt Statement[F]) []Statement[F] {
	switch s := stmt.(type) {
	case *Definition[F]:
		return []Statement[F]{NewDefinition[F](s.Assignee, f.FoldExpression(s.Rhs))}
	case *Assertion[F]:
		return []Statement[F]{NewAssertion[F](f.FoldBoolExpression(s.Condition))}
	case *Return[F]:
		values := make([]Expr[F], len(s.Values))
		//
		for i, value := range s.Values {
			values[i] = f.FoldExpression(value)
		}
		//
		return []Statement[F]{&Return[F]{values}}
	default:
		panic(fmt.Sprintf("unknown ZIR statement \"%s\"", reflect.TypeOf(stmt).String()))
	}
}

// FoldExpression is the default expression fold, which simply dispatches on
// the kind of the expression.
func FoldExpression[F field.Element[F]](f Folder[F], expr Expr[F]) Expr[F] {
	switch e := expr.(type) {
	case *UintExpr[F]:
		return f.FoldUintExpression(e)
	case FieldExpr[F]:
		return f.FoldFieldExpression(e)
	case BoolExpr[F]:
		return f.FoldBoolExpression(e)
	default:
		panic(fmt.Sprintf("unknown ZIR expression \"%s\"", reflect.TypeOf(expr).String()))
	}
}

// FoldUintExpression is the default (structural) uint expression fold, which
// rebuilds each term from its rewritten children.  Width and metadata are
// retained as is.
func FoldUintExpression[F field.Element[F]](f Folder[F], e *UintExpr[F]) *UintExpr[F] {
	switch t := e.Term.(type) {
	case *UintValue[F]:
		return e
	case *UintIdent[F]:
		return e
	case *UintAdd[F]:
		return e.WithTerm(&UintAdd[F]{f.FoldUintExpression(t.Left), f.FoldUintExpression(t.Right)})
	case *UintSub[F]:
		return e.WithTerm(&UintSub[F]{f.FoldUintExpression(t.Left), f.FoldUintExpression(t.Right)})
	case *UintMult[F]:
		return e.WithTerm(&UintMult[F]{f.FoldUintExpression(t.Left), f.FoldUintExpression(t.Right)})
	case *UintXor[F]:
		return e.WithTerm(&UintXor[F]{f.FoldUintExpression(t.Left), f.FoldUintExpression(t.Right)})
	case *UintAnd[F]:
		return e.WithTerm(&UintAnd[F]{f.FoldUintExpression(t.Left), f.FoldUintExpression(t.Right)})
	case *UintOr[F]:
		return e.WithTerm(&UintOr[F]{f.FoldUintExpression(t.Left), f.FoldUintExpression(t.Right)})
	case *UintNot[F]:
		return e.WithTerm(&UintNot[F]{f.FoldUintExpression(t.Arg)})
	case *UintLeftShift[F]:
		return e.WithTerm(&UintLeftShift[F]{f.FoldUintExpression(t.Arg), f.FoldFieldExpression(t.By)})
	case *UintRightShift[F]:
		return e.WithTerm(&UintRightShift[F]{f.FoldUintExpression(t.Arg), f.FoldFieldExpression(t.By)})
	case *UintIfElse[F]:
		return e.WithTerm(&UintIfElse[F]{
			f.FoldBoolExpression(t.Condition),
			f.FoldUintExpression(t.Consequence),
			f.FoldUintExpression(t.Alternative)})
	case *UintCall[F]:
		args := make([]Expr[F], len(t.Args))
		//
		for i, arg := range t.Args {
			args[i] = f.FoldExpression(arg)
		}
		//
		return e.WithTerm(&UintCall[F]{t.Name, args})
	default:
		panic(fmt.Sprintf("unknown ZIR uint term \"%s\"", reflect.TypeOf(e.Term).String()))
	}
}

// FoldFieldExpression is the default (structural) field expression fold.
func FoldFieldExpression[F field.Element[F]](f Folder[F], expr FieldExpr[F]) FieldExpr[F] {
	switch e := expr.(type) {
	case *FieldConstant[F]:
		return e
	case *FieldIdent[F]:
		return e
	case *FieldAdd[F]:
		return &FieldAdd[F]{f.FoldFieldExpression(e.Left), f.FoldFieldExpression(e.Right)}
	case *FieldSub[F]:
		return &FieldSub[F]{f.FoldFieldExpression(e.Left), f.FoldFieldExpression(e.Right)}
	case *FieldMult[F]:
		return &FieldMult[F]{f.FoldFieldExpression(e.Left), f.FoldFieldExpression(e.Right)}
	default:
		panic(fmt.Sprintf("unknown ZIR field expression \"%s\"", reflect.TypeOf(expr).String()))
	}
}

// FoldBoolExpression is the default (structural) boolean expression fold.
// Observe that uint operands embedded within comparisons are rewritten
// through the folder's uint entry point.
func FoldBoolExpression[F field.Element[F]](f Folder[F], expr BoolExpr[F]) BoolExpr[F] {
	switch e := expr.(type) {
	case *BoolConstant[F]:
		return e
	case *BoolIdent[F]:
		return e
	case *UintEq[F]:
		return &UintEq[F]{f.FoldUintExpression(e.Left), f.FoldUintExpression(e.Right)}
	case *UintLt[F]:
		return &UintLt[F]{f.FoldUintExpression(e.Left), f.FoldUintExpression(e.Right)}
	case *FieldEq[F]:
		return &FieldEq[F]{f.FoldFieldExpression(e.Left), f.FoldFieldExpression(e.Right)}
	case *BoolAnd[F]:
		return &BoolAnd[F]{f.FoldBoolExpression(e.Left), f.FoldBoolExpression(e.Right)}
	case *BoolOr[F]:
		return &BoolOr[F]{f.FoldBoolExpression(e.Left), f.FoldBoolExpression(e.Right)}
	case *BoolNot[F]:
		return &BoolNot[F]{f.FoldBoolExpression(e.Arg)}
	default:
		panic(fmt.Sprintf("unknown ZIR boolean expression \"%s\"", reflect.TypeOf(expr).String()))
	}
}
