// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package tree builds Huffman prefix-code trees from symbol frequencies
// and derives code tables from them.
package tree

import "strconv"

// Symbol identifies one unit of input: a byte value or the end-of-data
// sentinel. Values above EOF are never produced.
type Symbol uint16

const (
	// EOF marks the logical end of the data. It lies outside the byte range
	// so it can never collide with an input byte.
	EOF Symbol = 256

	// NumSymbols is the size of the symbol alphabet, sentinel included.
	NumSymbols = 257
)

// ByteSymbol returns the symbol for a data byte.
func ByteSymbol(b byte) Symbol {
	return Symbol(b)
}

// Byte returns the data byte held by s. ok is false for EOF.
func (s Symbol) Byte() (b byte, ok bool) {
	if s >= EOF {
		return 0, false
	}
	return byte(s), true
}

// IsEOF reports whether s is the end-of-data sentinel.
func (s Symbol) IsEOF() bool {
	return s == EOF
}

func (s Symbol) String() string {
	if s == EOF {
		return "EOF"
	}
	if s > EOF {
		return "Symbol(" + strconv.Itoa(int(s)) + ")"
	}
	return strconv.QuoteRune(rune(s))
}
