// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package coding

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/kaichun2/Huffman/compress/huffman/internal/tree"
)

// ErrInvalidHeader reports a header that cannot describe a compressed stream.
var ErrInvalidHeader = errors.New("huffman: invalid header")

var magic = [4]byte{'H', 'U', 'F', '1'}

// Header layout:
//
//	| magic "HUF1" | entries (uvarint) | entries x (symbol uvarint, count uvarint) |
//
// Pairs are stored in ascending symbol order so the reader rebuilds the
// same tree as the writer.

// WriteHeader writes freqs to w and returns the number of bytes written.
func WriteHeader(w io.Writer, freqs tree.Frequencies) (int, error) {
	if err := freqs.Validate(); err != nil {
		return 0, err
	}
	syms := freqs.Symbols()
	buf := make([]byte, 0, len(magic)+binary.MaxVarintLen16+len(syms)*(binary.MaxVarintLen16+binary.MaxVarintLen64))
	buf = append(buf, magic[:]...)
	buf = binary.AppendUvarint(buf, uint64(len(syms)))
	for _, s := range syms {
		buf = binary.AppendUvarint(buf, uint64(s))
		buf = binary.AppendUvarint(buf, freqs[s])
	}
	return w.Write(buf)
}

// ByteReader is the input ReadHeader needs; *bufio.Reader satisfies it.
type ByteReader interface {
	io.Reader
	io.ByteReader
}

// ReadHeader reads a frequency table written by WriteHeader. r is read
// exactly up to the end of the header.
func ReadHeader(r ByteReader) (tree.Frequencies, error) {
	var m [4]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return nil, headerErr(err)
	}
	if m != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidHeader, m[:])
	}
	entries, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, headerErr(err)
	}
	if entries == 0 || entries > tree.NumSymbols {
		return nil, fmt.Errorf("%w: %d entries", ErrInvalidHeader, entries)
	}

	freqs := make(tree.Frequencies, entries)
	last := -1
	for i := uint64(0); i < entries; i++ {
		sym, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, headerErr(err)
		}
		count, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, headerErr(err)
		}
		if sym > uint64(tree.EOF) || int(sym) <= last {
			return nil, fmt.Errorf("%w: symbol %d out of order", ErrInvalidHeader, sym)
		}
		last = int(sym)
		freqs[tree.Symbol(sym)] = count
	}
	if err := freqs.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	return freqs, nil
}

func headerErr(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("huffman: read header: %w", err)
}
