// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman implements a lossless byte-stream compressor based on
// Huffman coding.
//
// A compressed stream is a header holding the frequency of every byte of the
// input followed by the bit-packed codes of the input bytes and of an
// end-of-data symbol. The decoder rebuilds the code tree from the header
// alone, so both sides always agree on the codes.
package huffman

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/kaichun2/Huffman/compress/huffman/internal/bitstream"
	"github.com/kaichun2/Huffman/compress/huffman/internal/coding"
	"github.com/kaichun2/Huffman/compress/huffman/internal/tree"
)

const bufferSize = 32 * 1024

var errWriterClosed = errors.New("huffman: write to closed writer")

// Compress reads r twice, once to count byte frequencies and once to encode,
// and writes the compressed stream to w. r is read from its start.
func Compress(r io.ReadSeeker, w io.Writer, opts ...Option) (err error) {
	o := newOptions(opts)
	defer func() {
		if err != nil {
			logError(o.logger, err, "compress")
		}
	}()

	if err = bitstream.Rewind(r); err != nil {
		return err
	}
	freqs, err := coding.Analyze(r)
	if err != nil {
		return err
	}
	root, err := tree.Build(freqs)
	if err != nil {
		return err
	}

	bw := bufio.NewWriterSize(w, bufferSize)
	defer func() {
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
	}()
	stats := compressStats{symbols: len(freqs), depth: root.Depth()}
	if stats.headerSize, err = coding.WriteHeader(bw, freqs); err != nil {
		return err
	}

	bits := bitstream.NewWriter(bw)
	stats.inputSize, err = coding.Encode(r, root, bits)
	if cerr := bits.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	stats.payloadBits = bits.Bits()
	logCompress(o.logger, stats)
	return nil
}

// Writer is an io.WriteCloser that compresses everything written to it.
// Compression needs the whole input before the first code can be chosen,
// so data is held in memory and the compressed stream is written on Close.
type Writer struct {
	w      io.Writer
	opts   []Option
	buf    bytes.Buffer
	err    error
	closed bool
}

// NewWriter returns a Writer compressing to w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	return &Writer{w: w, opts: opts}
}

// Write buffers p for compression.
func (z *Writer) Write(p []byte) (n int, err error) {
	if z.err != nil {
		return 0, z.err
	}
	if z.closed {
		return 0, errWriterClosed
	}
	return z.buf.Write(p)
}

// Close compresses the buffered data to the underlying writer.
// The underlying writer is not closed.
func (z *Writer) Close() error {
	if z.closed {
		return z.err
	}
	z.closed = true
	z.err = Compress(bytes.NewReader(z.buf.Bytes()), z.w, z.opts...)
	z.buf.Reset()
	return z.err
}

// Reset discards any buffered data and state and makes z write to w.
// This allows reusing the same Writer for multiple compression tasks.
func (z *Writer) Reset(w io.Writer) {
	z.w = w
	z.buf.Reset()
	z.err = nil
	z.closed = false
}
