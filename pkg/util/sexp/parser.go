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
	"fmt"
	"unicode"
)

// SyntaxError reports a malformed S-Expression, along with the position (in
// runes) at which the problem was detected.
type SyntaxError struct {
	Position int
	Message  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d: %s", e.Position, e.Message)
}

// Parse a given string into an S-expression, or return an error if the string
// is malformed.
func Parse(text string) (SExp, error) {
	p := NewParser(text)
	// Parse the input
	sExp, err := p.Parse()
	// Sanity check everything was parsed
	p.skipWhiteSpace()
	//
	if err == nil && p.index != len(p.text) {
		return nil, p.error("unexpected remainder")
	}
	//
	return sExp, err
}

// ParseAll converts a given string into zero or more S-expressions, or returns
// an error if the string is malformed.  The key distinction from Parse is that
// this function continues parsing after the first S-expression is encountered.
func ParseAll(text string) ([]SExp, error) {
	p := NewParser(text)
	//
	terms := make([]SExp, 0)
	// Parse the input
	for {
		term, err := p.Parse()
		//
		if err != nil {
			return terms, err
		} else if term == nil {
			// EOF reached
			return terms, nil
		}

		terms = append(terms, term)
	}
}

// Parser represents a parser in the process of parsing a given string into one
// or more S-expressions.
type Parser struct {
	// Cache (for simplicity)
	text []rune
	// Determine current position within text
	index int
}

// NewParser constructs a new instance of Parser
func NewParser(text string) *Parser {
	return &Parser{
		text:  []rune(text),
		index: 0,
	}
}

// Parse a given string into an S-Expression, or produce an error.  Returns nil
// (without error) at end of input.
func (p *Parser) Parse() (SExp, error) {
	var term SExp
	// Extract next token from the stream
	token := p.next()
	//
	if token == nil {
		return nil, nil
	} else if len(token) == 1 && token[0] == ')' {
		p.index-- // backup
		return nil, p.error("unexpected end-of-list")
	} else if len(token) == 1 && token[0] == '(' {
		elements, err := p.parseSequence(')')
		// Check for error
		if err != nil {
			return nil, err
		}
		// Done
		term = &List{elements}
	} else {
		// Must be a symbol
		term = &Symbol{string(token)}
	}
	//
	return term, nil
}

// Next extracts the next token from a given string.
func (p *Parser) next() []rune {
	// Skip any whitespace and/or comments.
	p.skipWhiteSpace()
	// Catch end-of-file
	if p.index == len(p.text) {
		return nil
	}
	// Check what we have
	switch p.text[p.index] {
	case '(', ')':
		// List begin / end
		p.index = p.index + 1
		return p.text[p.index-1 : p.index]
	}
	// Symbol
	return p.parseSymbol()
}

// skipWhiteSpace skips over any whitespace, including comments (which run from
// a semicolon to the end of the line).
func (p *Parser) skipWhiteSpace() {
	for p.index < len(p.text) && (unicode.IsSpace(p.text[p.index]) || p.text[p.index] == ';') {
		if p.text[p.index] == ';' {
			i := len(p.text)
			//
			for j := p.index; j < i; j++ {
				if p.text[j] == '\n' {
					i = j + 1
					break
				}
			}
			// Skip comment
			p.index = i
		} else {
			// Skip space
			p.index++
		}
	}
}

func (p *Parser) parseSymbol() []rune {
	// Parse token
	i := len(p.text)

	for j := p.index; j < i; j++ {
		c := p.text[j]
		if c == '(' || c == ')' || c == ';' || unicode.IsSpace(c) {
			i = j
			break
		}
	}
	// Reached end of token
	token := p.text[p.index:i]
	p.index = i
	//
	return token
}

func (p *Parser) parseSequence(terminator rune) ([]SExp, error) {
	var elements []SExp
	//
	for c := p.lookahead(); c == nil || *c != terminator; c = p.lookahead() {
		// Check for end-of-file
		if c == nil {
			return nil, p.error("unexpected end-of-file")
		}
		// Parse next element
		element, err := p.Parse()
		//
		if err != nil {
			return nil, err
		}
		//
		elements = append(elements, element)
	}
	// Consume terminator
	p.index++
	//
	return elements, nil
}

// Lookahead and see what (non-whitespace) character is next.
func (p *Parser) lookahead() *rune {
	p.skipWhiteSpace()
	//
	if p.index < len(p.text) {
		r := p.text[p.index]
		//
		return &r
	}
	//
	return nil
}

func (p *Parser) error(msg string) *SyntaxError {
	return &SyntaxError{p.index, msg}
}
