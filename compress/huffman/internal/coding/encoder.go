// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package coding

import (
	"errors"
	"fmt"
	"io"

	"github.com/kaichun2/Huffman/compress/huffman/internal/bitstream"
	"github.com/kaichun2/Huffman/compress/huffman/internal/tree"
)

// ErrUnknownSymbol reports an input byte that has no leaf in the tree.
var ErrUnknownSymbol = errors.New("huffman: symbol not in tree")

type codeTable struct {
	codes   [tree.NumSymbols]tree.Code
	present [tree.NumSymbols]bool
}

func newCodeTable(root *tree.Node) *codeTable {
	t := &codeTable{}
	for s, c := range tree.Codes(root) {
		t.codes[s] = c
		t.present[s] = true
	}
	return t
}

// Encode writes the code of every byte read from r, then the code of EOF.
// r is read from its current position to its end. It returns the number of
// bytes encoded.
func Encode(r io.Reader, root *tree.Node, w *bitstream.Writer) (n int64, err error) {
	if root == nil {
		return 0, tree.ErrEmptyFrequencies
	}
	t := newCodeTable(root)
	if !t.present[tree.EOF] {
		return 0, fmt.Errorf("%w: %v", ErrUnknownSymbol, tree.EOF)
	}
	buf := make([]byte, readBufferSize)
	for {
		num, rerr := r.Read(buf)
		for _, b := range buf[:num] {
			if !t.present[b] {
				return n, fmt.Errorf("%w: %v at offset %d", ErrUnknownSymbol, tree.ByteSymbol(b), n)
			}
			if err = w.WriteCode(t.codes[b]); err != nil {
				return n, err
			}
			n++
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return n, fmt.Errorf("huffman: encode: %w", rerr)
		}
	}
	return n, w.WriteCode(t.codes[tree.EOF])
}
