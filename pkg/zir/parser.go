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
	"strconv"

	"github.com/consensys/zirc/pkg/util/field"
	"github.com/consensys/zirc/pkg/util/sexp"
)

// ParseProgram parses the textual (S-Expression) form of a ZIR program.  A
// program is a sequence of function declarations of the form:
//
//	(fun name ((type param)...) (type...) stmt...)
//
// where statements are (def (type var) expr), (assert expr) and
// (return expr...).  Uint literals take their width from the surrounding
// context (e.g. the declared type of the enclosing definition).
func ParseProgram[F field.Element[F]](text string) (Program[F], error) {
	var program Program[F]
	//
	terms, err := sexp.ParseAll(text)
	//
	if err != nil {
		return program, err
	}
	//
	for _, term := range terms {
		fn, err := parseFunction[F](term)
		//
		if err != nil {
			return program, err
		}
		//
		program.Functions = append(program.Functions, fn)
	}
	//
	return program, nil
}

func parseFunction[F field.Element[F]](term sexp.SExp) (Function[F], error) {
	var fn Function[F]
	//
	list := term.AsList()
	//
	if list == nil || !list.MatchSymbols(4, "fun") || list.Get(1).AsSymbol() == nil {
		return fn, fmt.Errorf("malformed function declaration \"%s\"", term.String())
	}
	//
	fn.Name = list.Get(1).AsSymbol().Value
	// Parse parameter declarations
	params := list.Get(2).AsList()
	//
	if params == nil {
		return fn, fmt.Errorf("malformed parameter list \"%s\"", list.Get(2).String())
	}
	//
	scope := make(map[string]Type)
	//
	for _, p := range params.Elements {
		variable, err := parseTypedName(p)
		//
		if err != nil {
			return fn, err
		}
		//
		scope[variable.Name] = variable.Type
		fn.Parameters = append(fn.Parameters, variable)
	}
	// Parse return types
	returns := list.Get(3).AsList()
	//
	if returns == nil {
		return fn, fmt.Errorf("malformed return list \"%s\"", list.Get(3).String())
	}
	//
	for _, r := range returns.Elements {
		datatype, err := parseType(r)
		//
		if err != nil {
			return fn, err
		}
		//
		fn.Returns = append(fn.Returns, datatype)
	}
	// Parse statements
	for _, s := range list.Elements[4:] {
		stmt, err := parseStatement[F](scope, fn.Returns, s)
		//
		if err != nil {
			return fn, err
		}
		//
		fn.Statements = append(fn.Statements, stmt)
	}
	//
	return fn, nil
}

// Parse a "(type name)" pair, as found in parameter lists and definitions.
func parseTypedName(term sexp.SExp) (Variable, error) {
	list := term.AsList()
	//
	if list == nil || list.Len() != 2 || list.Get(1).AsSymbol() == nil {
		return Variable{}, fmt.Errorf("malformed declaration \"%s\"", term.String())
	}
	//
	datatype, err := parseType(list.Get(0))
	//
	if err != nil {
		return Variable{}, err
	}
	//
	return NewVariable(list.Get(1).AsSymbol().Value, datatype), nil
}

func parseType(term sexp.SExp) (Type, error) {
	symbol := term.AsSymbol()
	//
	if symbol != nil {
		switch symbol.Value {
		case "u8":
			return NewUintType(8), nil
		case "u16":
			return NewUintType(16), nil
		case "u32":
			return NewUintType(32), nil
		case "field":
			return FieldType{}, nil
		case "bool":
			return BoolType{}, nil
		}
	}
	//
	return nil, fmt.Errorf("unknown type \"%s\"", term.String())
}

func parseStatement[F field.Element[F]](scope map[string]Type, returns []Type,
	term sexp.SExp) (Statement[F], error) {
	//
	list := term.AsList()
	//
	switch {
	case list == nil:
		return nil, fmt.Errorf("malformed statement \"%s\"", term.String())
	case list.MatchSymbols(3, "def") && list.Len() == 3:
		assignee, err := parseTypedName(list.Get(1))
		//
		if err != nil {
			return nil, err
		} else if _, ok := scope[assignee.Name]; ok {
			return nil, fmt.Errorf("variable \"%s\" already defined", assignee.Name)
		}
		//
		rhs, err := parseExpression[F](scope, assignee.Type, list.Get(2))
		//
		if err != nil {
			return nil, err
		}
		// Bring assignee into scope only after its definition is parsed
		scope[assignee.Name] = assignee.Type
		//
		return NewDefinition[F](assignee, rhs), nil
	case list.MatchSymbols(2, "assert") && list.Len() == 2:
		condition, err := parseBoolExpression[F](scope, list.Get(1))
		//
		if err != nil {
			return nil, err
		}
		//
		return NewAssertion[F](condition), nil
	case list.MatchSymbols(1, "return"):
		if list.Len() != len(returns)+1 {
			return nil, fmt.Errorf("expected %d return values, found %d", len(returns), list.Len()-1)
		}
		//
		values := make([]Expr[F], len(returns))
		//
		for i, datatype := range returns {
			value, err := parseExpression[F](scope, datatype, list.Get(i+1))
			//
			if err != nil {
				return nil, err
			}
			//
			values[i] = value
		}
		//
		return NewReturn[F](values...), nil
	default:
		return nil, fmt.Errorf("unknown statement \"%s\"", term.String())
	}
}

// Parse an expression against an expected type.
func parseExpression[F field.Element[F]](scope map[string]Type, expected Type,
	term sexp.SExp) (Expr[F], error) {
	//
	switch {
	case expected.AsUint() != nil:
		return parseUintExpression[F](scope, expected.AsUint().NumOfBits, term)
	case expected.AsField() != nil:
		return parseFieldExpression[F](scope, term)
	default:
		return parseBoolExpression[F](scope, term)
	}
}

func parseUintExpression[F field.Element[F]](scope map[string]Type, width uint,
	term sexp.SExp) (*UintExpr[F], error) {
	//
	if symbol := term.AsSymbol(); symbol != nil {
		// Literal or identifier
		if value, err := strconv.ParseUint(symbol.Value, 10, 64); err == nil {
			// Literals must fit the canonical range of their type.
			if value >= uint64(1)<<width {
				return nil, fmt.Errorf("literal %d does not fit u%d", value, width)
			}
			//
			return Uint64[F](width, value), nil
		}
		//
		return parseUintIdent[F](scope, width, symbol)
	}
	//
	list := term.AsList()
	//
	if list.Len() == 3 && list.Get(0).AsSymbol() != nil {
		var op = list.Get(0).AsSymbol().Value
		// Shifts take a field-typed shift amount
		if op == "<<" || op == ">>" {
			return parseShift[F](scope, width, op, list)
		}
		// Remaining binary operators are homogeneous
		left, err := parseUintExpression[F](scope, width, list.Get(1))
		//
		if err != nil {
			return nil, err
		}
		//
		right, err := parseUintExpression[F](scope, width, list.Get(2))
		//
		if err != nil {
			return nil, err
		}
		//
		switch op {
		case "+":
			return Add[F](left, right), nil
		case "-":
			return Sub[F](left, right), nil
		case "*":
			return Mult[F](left, right), nil
		case "^":
			return Xor[F](left, right), nil
		case "&":
			return And[F](left, right), nil
		case "|":
			return Or[F](left, right), nil
		}
	} else if list.MatchSymbols(2, "~") && list.Len() == 2 {
		arg, err := parseUintExpression[F](scope, width, list.Get(1))
		//
		if err != nil {
			return nil, err
		}
		//
		return Not[F](arg), nil
	} else if list.MatchSymbols(4, "if") && list.Len() == 4 {
		condition, err := parseBoolExpression[F](scope, list.Get(1))
		//
		if err != nil {
			return nil, err
		}
		//
		consequence, err := parseUintExpression[F](scope, width, list.Get(2))
		//
		if err != nil {
			return nil, err
		}
		//
		alternative, err := parseUintExpression[F](scope, width, list.Get(3))
		//
		if err != nil {
			return nil, err
		}
		//
		return IfElse[F](condition, consequence, alternative), nil
	}
	//
	return nil, fmt.Errorf("malformed u%d expression \"%s\"", width, term.String())
}

func parseUintIdent[F field.Element[F]](scope map[string]Type, width uint,
	symbol *sexp.Symbol) (*UintExpr[F], error) {
	//
	datatype, ok := scope[symbol.Value]
	//
	if !ok {
		return nil, fmt.Errorf("variable \"%s\" not defined", symbol.Value)
	} else if datatype.AsUint() == nil || datatype.AsUint().NumOfBits != width {
		return nil, fmt.Errorf("variable \"%s\" has type %s, expected u%d", symbol.Value, datatype, width)
	}
	//
	return UintVar[F](width, symbol.Value), nil
}

func parseShift[F field.Element[F]](scope map[string]Type, width uint, op string,
	list *sexp.List) (*UintExpr[F], error) {
	//
	arg, err := parseUintExpression[F](scope, width, list.Get(1))
	//
	if err != nil {
		return nil, err
	}
	//
	by, err := parseFieldExpression[F](scope, list.Get(2))
	//
	if err != nil {
		return nil, err
	}
	//
	if op == "<<" {
		return LeftShift[F](arg, by), nil
	}
	//
	return RightShift[F](arg, by), nil
}

func parseFieldExpression[F field.Element[F]](scope map[string]Type,
	term sexp.SExp) (FieldExpr[F], error) {
	//
	if symbol := term.AsSymbol(); symbol != nil {
		if value, err := strconv.ParseUint(symbol.Value, 10, 64); err == nil {
			return Const[F](value), nil
		}
		//
		datatype, ok := scope[symbol.Value]
		//
		if !ok {
			return nil, fmt.Errorf("variable \"%s\" not defined", symbol.Value)
		} else if datatype.AsField() == nil {
			return nil, fmt.Errorf("variable \"%s\" has type %s, expected field", symbol.Value, datatype)
		}
		//
		return FieldVar[F](symbol.Value), nil
	}
	//
	list := term.AsList()
	//
	if list.Len() == 3 && list.Get(0).AsSymbol() != nil {
		left, err := parseFieldExpression[F](scope, list.Get(1))
		//
		if err != nil {
			return nil, err
		}
		//
		right, err := parseFieldExpression[F](scope, list.Get(2))
		//
		if err != nil {
			return nil, err
		}
		//
		switch list.Get(0).AsSymbol().Value {
		case "+":
			return FieldSum[F](left, right), nil
		case "-":
			return FieldDiff[F](left, right), nil
		case "*":
			return FieldProduct[F](left, right), nil
		}
	}
	//
	return nil, fmt.Errorf("malformed field expression \"%s\"", term.String())
}

func parseBoolExpression[F field.Element[F]](scope map[string]Type,
	term sexp.SExp) (BoolExpr[F], error) {
	//
	if symbol := term.AsSymbol(); symbol != nil {
		switch symbol.Value {
		case "true":
			return Bool[F](true), nil
		case "false":
			return Bool[F](false), nil
		}
		//
		datatype, ok := scope[symbol.Value]
		//
		if !ok {
			return nil, fmt.Errorf("variable \"%s\" not defined", symbol.Value)
		} else if datatype.AsBool() == nil {
			return nil, fmt.Errorf("variable \"%s\" has type %s, expected bool", symbol.Value, datatype)
		}
		//
		return BoolVar[F](symbol.Value), nil
	}
	//
	list := term.AsList()
	//
	if list.Len() == 3 && list.Get(0).AsSymbol() != nil {
		switch list.Get(0).AsSymbol().Value {
		case "==", "<":
			return parseComparison[F](scope, list)
		case "&&", "||":
			left, err := parseBoolExpression[F](scope, list.Get(1))
			//
			if err != nil {
				return nil, err
			}
			//
			right, err := parseBoolExpression[F](scope, list.Get(2))
			//
			if err != nil {
				return nil, err
			}
			//
			if list.Get(0).AsSymbol().Value == "&&" {
				return Conjunct[F](left, right), nil
			}
			//
			return Disjunct[F](left, right), nil
		}
	} else if list.MatchSymbols(2, "!") && list.Len() == 2 {
		arg, err := parseBoolExpression[F](scope, list.Get(1))
		//
		if err != nil {
			return nil, err
		}
		//
		return Negate[F](arg), nil
	}
	//
	return nil, fmt.Errorf("malformed boolean expression \"%s\"", term.String())
}

// Parse a comparison, whose operand types must be inferred from the operands
// themselves (literals alone cannot determine them).
func parseComparison[F field.Element[F]](scope map[string]Type, list *sexp.List) (BoolExpr[F], error) {
	var op = list.Get(0).AsSymbol().Value
	//
	datatype := inferType(scope, list.Get(1))
	//
	if datatype == nil {
		datatype = inferType(scope, list.Get(2))
	}
	//
	if datatype == nil {
		return nil, fmt.Errorf("cannot infer operand type of \"%s\"", list.String())
	}
	//
	if uintType := datatype.AsUint(); uintType != nil {
		left, err := parseUintExpression[F](scope, uintType.NumOfBits, list.Get(1))
		//
		if err != nil {
			return nil, err
		}
		//
		right, err := parseUintExpression[F](scope, uintType.NumOfBits, list.Get(2))
		//
		if err != nil {
			return nil, err
		}
		//
		if op == "==" {
			return Eq[F](left, right), nil
		}
		//
		return Lt[F](left, right), nil
	} else if datatype.AsField() != nil && op == "==" {
		left, err := parseFieldExpression[F](scope, list.Get(1))
		//
		if err != nil {
			return nil, err
		}
		//
		right, err := parseFieldExpression[F](scope, list.Get(2))
		//
		if err != nil {
			return nil, err
		}
		//
		return FieldEquals[F](left, right), nil
	}
	//
	return nil, fmt.Errorf("unsupported comparison \"%s\"", list.String())
}

// Attempt to determine the type of an expression from identifiers occurring
// within it, returning nil if no identifier decides it.
func inferType(scope map[string]Type, term sexp.SExp) Type {
	if symbol := term.AsSymbol(); symbol != nil {
		if datatype, ok := scope[symbol.Value]; ok {
			return datatype
		}
		//
		return nil
	}
	// Try operands of a compound expression, skipping the operator
	list := term.AsList()
	//
	for i := 1; i < list.Len(); i++ {
		if datatype := inferType(scope, list.Get(i)); datatype != nil {
			return datatype
		}
	}
	//
	return nil
}
