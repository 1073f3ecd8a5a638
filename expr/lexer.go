// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr implements the small closed arithmetic mini-language Design
// Notes §9 calls for in place of the original source's embedded scripting
// engine: identifiers {strain, shearMod, damping}, operators + - * / ^, and
// functions log, exp, sqrt, pow. Expressions are parsed once into a tree
// and evaluated without any FFI.
package expr

import (
	"strconv"
	"unicode"

	"github.com/cpmech/gosl/chk"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokComma
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

func lex(src string) ([]token, error) {
	var toks []token
	r := []rune(src)
	i := 0
	for i < len(r) {
		c := r[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '+':
			toks = append(toks, token{kind: tokPlus})
			i++
		case c == '-':
			toks = append(toks, token{kind: tokMinus})
			i++
		case c == '*':
			toks = append(toks, token{kind: tokStar})
			i++
		case c == '/':
			toks = append(toks, token{kind: tokSlash})
			i++
		case c == '^':
			toks = append(toks, token{kind: tokCaret})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen})
			i++
		case c == ',':
			toks = append(toks, token{kind: tokComma})
			i++
		case unicode.IsDigit(c) || c == '.':
			j := i
			for j < len(r) && (unicode.IsDigit(r[j]) || r[j] == '.' || r[j] == 'e' || r[j] == 'E' ||
				((r[j] == '+' || r[j] == '-') && j > i && (r[j-1] == 'e' || r[j-1] == 'E'))) {
				j++
			}
			text := string(r[i:j])
			num, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, chk.Err("expr: invalid number %q", text)
			}
			toks = append(toks, token{kind: tokNumber, text: text, num: num})
			i = j
		case unicode.IsLetter(c) || c == '_':
			j := i
			for j < len(r) && (unicode.IsLetter(r[j]) || unicode.IsDigit(r[j]) || r[j] == '_') {
				j++
			}
			toks = append(toks, token{kind: tokIdent, text: string(r[i:j])})
			i = j
		default:
			return nil, chk.Err("expr: unexpected character %q", string(c))
		}
	}
	toks = append(toks, token{kind: tokEOF})
	return toks, nil
}
