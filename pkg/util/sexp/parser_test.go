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
package sexp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoundTrip(t *testing.T) {
	tests := []string{
		"symbol",
		"()",
		"(a b c)",
		"(a (b c) ((d)))",
		"(+ 1 (* 2 3))",
	}
	//
	for _, test := range tests {
		t.Run(test, func(t *testing.T) {
			term, err := Parse(test)
			assert.NoError(t, err)
			assert.Equal(t, test, term.String())
		})
	}
}

func TestParseWhitespaceAndComments(t *testing.T) {
	term, err := Parse("  (a ; trailing comment\n   b)\n")
	assert.NoError(t, err)
	assert.Equal(t, "(a b)", term.String())
}

func TestParseAll(t *testing.T) {
	terms, err := ParseAll("(a) b (c d)")
	assert.NoError(t, err)
	assert.Len(t, terms, 3)
	assert.NotNil(t, terms[0].AsList())
	assert.NotNil(t, terms[1].AsSymbol())
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"unclosed":  "(a b",
		"unopened":  "a)",
		"remainder": "(a) b",
	}
	//
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(test)
			assert.Error(t, err)
		})
	}
}

func TestMatchSymbols(t *testing.T) {
	term, err := Parse("(def (u8 x) 1)")
	assert.NoError(t, err)
	//
	list := term.AsList()
	assert.True(t, list.MatchSymbols(3, "def"))
	assert.False(t, list.MatchSymbols(3, "fun"))
	// Second element is a list, not a symbol
	assert.False(t, list.MatchSymbols(3, "def", "u8"))
	assert.False(t, list.MatchSymbols(5, "def"))
}
