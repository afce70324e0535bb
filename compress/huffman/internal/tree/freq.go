// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrEmptyFrequencies = errors.New("huffman: empty frequency table")
	ErrZeroWeight       = errors.New("huffman: zero symbol count")
	ErrMissingEOF       = errors.New("huffman: frequency table without EOF count of 1")
)

// Frequencies maps each symbol to its number of occurrences.
type Frequencies map[Symbol]uint64

// Symbols returns the keys in ascending symbol order. Tree construction and
// header serialization both iterate in this order.
func (f Frequencies) Symbols() []Symbol {
	syms := make([]Symbol, 0, len(f))
	for s := range f {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// Total returns the number of data bytes counted, EOF excluded.
func (f Frequencies) Total() (n uint64) {
	for s, c := range f {
		if s != EOF {
			n += c
		}
	}
	return n
}

// OnlyEOF reports whether the table describes an empty input.
func (f Frequencies) OnlyEOF() bool {
	return len(f) == 1 && f[EOF] == 1
}

// Validate checks the invariants of a table produced by frequency analysis:
// every count is positive, every symbol is in range and EOF occurs exactly once.
func (f Frequencies) Validate() error {
	if len(f) == 0 {
		return ErrEmptyFrequencies
	}
	for s, c := range f {
		if s > EOF {
			return fmt.Errorf("huffman: symbol %d out of range", uint16(s))
		}
		if c == 0 {
			return fmt.Errorf("%w: %v", ErrZeroWeight, s)
		}
	}
	if f[EOF] != 1 {
		return ErrMissingEOF
	}
	return nil
}
