// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package bitstream

import (
	"errors"
	"io"

	"github.com/icza/bitio"
)

// Reader reads single bits from an underlying reader.
type Reader struct {
	r    *bitio.Reader
	bits uint64
	eof  bool
}

// NewReader returns a Reader on r. If r is not an io.ByteReader it is buffered
// and may be read past the last bit consumed.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bitio.NewReader(r)}
}

// ReadBit returns the next bit. ok is false with a nil error once the stream
// is exhausted; every later call reports the same.
func (b *Reader) ReadBit() (bit uint8, ok bool, err error) {
	if b.eof {
		return 0, false, nil
	}
	v, err := b.r.ReadBool()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			b.eof = true
			return 0, false, nil
		}
		return 0, false, err
	}
	b.bits++
	if v {
		return 1, true, nil
	}
	return 0, true, nil
}

// Bits returns the number of bits read so far.
func (b *Reader) Bits() uint64 {
	return b.bits
}
