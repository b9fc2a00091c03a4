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

import "fmt"

// Type represents the static type of a ZIR expression.  At this level of the
// representation only three kinds of type remain: unsigned integers of a fixed
// width, raw field elements and booleans.  All implementations are comparable
// value types, so a Type can be used directly as (part of) a map key.
type Type interface {
	// AsUint accesses this type as an unsigned integer.  If this type is not
	// an unsigned integer, then this returns nil.
	AsUint() *UintType
	// AsField accesses this type as a field element.  If this type is not a
	// field element, then this returns nil.
	AsField() *FieldType
	// AsBool accesses this type as a boolean.  If this type is not a boolean,
	// then this returns nil.
	AsBool() *BoolType
	// Produce a string representation of this type.
	String() string
}

// UintType represents an unsigned integer encoded using a given number of
// bits.  For example, for the type "u8" then "nbits" is 8.
type UintType struct {
	// The number of bits this type represents (e.g. 8 for u8, etc).
	NumOfBits uint
}

// NewUintType constructs a new integer type for a given bit width.
func NewUintType(nbits uint) UintType {
	return UintType{nbits}
}

// AsUint accesses this type assuming it is a Uint.
func (p UintType) AsUint() *UintType { return &p }

// AsField accesses this type assuming it is a Field; however, since this is
// not a field it returns nil.
func (p UintType) AsField() *FieldType { return nil }

// AsBool accesses this type assuming it is a Bool; however, since this is not
// a boolean it returns nil.
func (p UintType) AsBool() *BoolType { return nil }

func (p UintType) String() string {
	return fmt.Sprintf("u%d", p.NumOfBits)
}

// FieldType is the type of raw field elements.
type FieldType struct{}

// AsUint accesses this type assuming it is a Uint; however, since this is not
// a uint it returns nil.
func (p FieldType) AsUint() *UintType { return nil }

// AsField accesses this type assuming it is a Field.
func (p FieldType) AsField() *FieldType { return &p }

// AsBool accesses this type assuming it is a Bool; however, since this is not
// a boolean it returns nil.
func (p FieldType) AsBool() *BoolType { return nil }

func (p FieldType) String() string { return "field" }

// BoolType is the type of boolean expressions.
type BoolType struct{}

// AsUint accesses this type assuming it is a Uint; however, since this is not
// a uint it returns nil.
func (p BoolType) AsUint() *UintType { return nil }

// AsField accesses this type assuming it is a Field; however, since this is
// not a field it returns nil.
func (p BoolType) AsField() *FieldType { return nil }

// AsBool accesses this type assuming it is a Bool.
func (p BoolType) AsBool() *BoolType { return &p }

func (p BoolType) String() string { return "bool" }

// Variable is a (typed) binding in a ZIR program.  Bindings are in SSA-style
// form: a given variable is defined exactly once within its enclosing
// function, before any use.
type Variable struct {
	Name string
	Type Type
}

// NewVariable constructs a variable with the given name and type.
func NewVariable(name string, datatype Type) Variable {
	return Variable{name, datatype}
}

func (p Variable) String() string {
	return fmt.Sprintf("(%s %s)", p.Type.String(), p.Name)
}
