// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package bitstream provides the bit-level channel the Huffman coder writes
// codes to and reads them back from. Bits are packed most significant first.
package bitstream

import (
	"io"

	"github.com/icza/bitio"

	"github.com/kaichun2/Huffman/compress/huffman/internal/tree"
)

// Writer packs single bits into bytes on an underlying writer.
type Writer struct {
	w    *bitio.Writer
	bits uint64
}

// NewWriter returns a Writer on w. If w is not an io.ByteWriter it is buffered,
// and nothing reaches w before Close.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bitio.NewWriter(w)}
}

// WriteBit writes the lowest bit of bit.
func (b *Writer) WriteBit(bit uint8) error {
	if err := b.w.WriteBool(bit&1 == 1); err != nil {
		return err
	}
	b.bits++
	return nil
}

// WriteCode writes every bit of c in order.
func (b *Writer) WriteCode(c tree.Code) error {
	for _, bit := range c {
		if err := b.WriteBit(bit); err != nil {
			return err
		}
	}
	return nil
}

// Bits returns the number of bits written so far.
func (b *Writer) Bits() uint64 {
	return b.bits
}

// Close pads the last partial byte with zero bits and flushes it.
// The underlying writer is not closed.
func (b *Writer) Close() error {
	return b.w.Close()
}

// Rewind moves s back to the start of its stream so it can be read again.
func Rewind(s io.Seeker) error {
	_, err := s.Seek(0, io.SeekStart)
	return err
}
