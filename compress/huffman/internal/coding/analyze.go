// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package coding implements the two passes of the Huffman codec: frequency
// analysis and encoding on the way in, header parsing and decoding on the
// way out.
package coding

import (
	"errors"
	"fmt"
	"io"

	"github.com/kaichun2/Huffman/compress/huffman/internal/bitstream"
	"github.com/kaichun2/Huffman/compress/huffman/internal/tree"
)

const readBufferSize = 64 * 1024

type histogram [256]uint64

func (h *histogram) add(input []byte) {
	for j := 0; j < len(input); j++ {
		h[input[j]]++
	}
}

func (h *histogram) frequencies() tree.Frequencies {
	f := make(tree.Frequencies)
	for b, c := range h {
		if c != 0 {
			f[tree.ByteSymbol(byte(b))] = c
		}
	}
	f[tree.EOF] = 1
	return f
}

// Analyze counts every byte of r, adds the EOF symbol once and rewinds r to
// its start so it can be read again by the encoder.
func Analyze(r io.ReadSeeker) (tree.Frequencies, error) {
	var hist histogram
	buf := make([]byte, readBufferSize)
	for {
		n, err := r.Read(buf)
		hist.add(buf[:n])
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("huffman: analyze: %w", err)
		}
	}
	if err := bitstream.Rewind(r); err != nil {
		return nil, fmt.Errorf("huffman: rewind: %w", err)
	}
	return hist.frequencies(), nil
}

// BuildTree analyzes r and builds its Huffman tree. r is left rewound.
func BuildTree(r io.ReadSeeker) (*tree.Node, error) {
	freqs, err := Analyze(r)
	if err != nil {
		return nil, err
	}
	return tree.Build(freqs)
}
