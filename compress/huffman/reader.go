// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bufio"
	"errors"
	"io"
	"strconv"

	"github.com/kaichun2/Huffman/compress/huffman/internal/bitstream"
	"github.com/kaichun2/Huffman/compress/huffman/internal/coding"
	"github.com/kaichun2/Huffman/compress/huffman/internal/tree"
)

var (
	ErrInvalidHeader    = coding.ErrInvalidHeader
	ErrTruncated        = coding.ErrTruncated
	ErrUnknownSymbol    = coding.ErrUnknownSymbol
	ErrEmptyFrequencies = tree.ErrEmptyFrequencies
	ErrZeroWeight       = tree.ErrZeroWeight
)

// CorruptInputError reports a payload that ended before its end-of-data code,
// at the given payload bit offset. It is only returned in strict mode.
type CorruptInputError int64

func (e CorruptInputError) Error() string {
	return "huffman: payload truncated at bit offset " + strconv.FormatInt(int64(e), 10)
}

func (e CorruptInputError) Unwrap() error {
	return ErrTruncated
}

// Reader is an io.ReadCloser that decompresses a stream written by Compress.
type Reader struct {
	r     *bufio.Reader
	owned *bufio.Reader
	freqs tree.Frequencies
	d     *coding.Decoder
	opts  options
	err   error
}

// NewReader reads the stream header from r and returns a Reader for the
// payload. r may be read past the end of the compressed stream.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	z := &Reader{}
	if err := z.reset(r, opts); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *Reader) reset(r io.Reader, opts []Option) error {
	z.opts = newOptions(opts)
	if br, ok := r.(*bufio.Reader); ok {
		z.r = br
	} else {
		if z.owned == nil {
			z.owned = bufio.NewReaderSize(r, bufferSize)
		} else {
			z.owned.Reset(r)
		}
		z.r = z.owned
	}
	z.d = nil
	z.err = nil

	freqs, err := coding.ReadHeader(z.r)
	if err != nil {
		z.err = err
		logError(z.opts.logger, err, "header")
		return err
	}
	z.freqs = freqs
	if freqs.OnlyEOF() {
		z.err = io.EOF
		return nil
	}
	root, err := tree.Build(freqs)
	if err != nil {
		z.err = err
		return err
	}
	z.d = coding.NewDecoder(root, bitstream.NewReader(z.r), z.opts.strict)
	return nil
}

// Reset discards the Reader's state and reads a new stream header from r.
func (z *Reader) Reset(r io.Reader, opts ...Option) error {
	return z.reset(r, opts)
}

// Size returns the length of the uncompressed data recorded in the header.
func (z *Reader) Size() uint64 {
	return z.freqs.Total()
}

func (z *Reader) Read(p []byte) (n int, err error) {
	if z.err != nil {
		return 0, z.err
	}
	for n < len(p) {
		b, err := z.d.Next()
		if err != nil {
			z.err = z.decodeErr(err)
			if z.err == io.EOF && n > 0 {
				return n, nil
			}
			return n, z.err
		}
		p[n] = b
		n++
	}
	return n, nil
}

func (z *Reader) decodeErr(err error) error {
	if err == io.EOF {
		return err
	}
	if errors.Is(err, ErrTruncated) {
		err = CorruptInputError(z.d.BitsRead())
	}
	logError(z.opts.logger, err, "decode")
	return err
}

// Close releases nothing; the underlying reader is not closed.
func (z *Reader) Close() error {
	return nil
}

// Uncompress decodes the compressed stream read from r and writes the
// original data to w.
func Uncompress(r io.Reader, w io.Writer, opts ...Option) (err error) {
	z, err := NewReader(r, opts...)
	if err != nil {
		return err
	}
	if z.d == nil {
		logUncompress(z.opts.logger, 0, len(z.freqs), 0, z.opts.strict)
		return nil
	}

	bw := bufio.NewWriterSize(w, bufferSize)
	defer func() {
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
	}()
	n, err := z.d.DecodeTo(bw)
	if err != nil {
		return z.decodeErr(err)
	}
	logUncompress(z.opts.logger, z.Size(), len(z.freqs), n, z.opts.strict)
	return nil
}
