// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package coding

import (
	"fmt"
	"io"

	"github.com/kaichun2/Huffman/compress/huffman/internal/bitstream"
	"github.com/kaichun2/Huffman/compress/huffman/internal/tree"
)

// ErrTruncated reports a payload that ended before the EOF symbol was decoded.
var ErrTruncated = fmt.Errorf("huffman: truncated payload: %w", io.ErrUnexpectedEOF)

type phase uint8

const (
	phaseDescend phase = iota
	phaseEmit
	phaseDone
)

// Decoder walks the tree from the root for every symbol, taking the zero or
// one branch for each bit read, until it reaches a leaf.
type Decoder struct {
	root   *tree.Node
	r      *bitstream.Reader
	strict bool

	phase phase
	node  *tree.Node
	err   error

	// repeats left when the tree is a single data leaf
	repeat uint64
}

// NewDecoder returns a decoder reading codes of root from r.
//
// When r runs out of bits before a leaf is reached the payload is taken as
// ending there. In strict mode ErrTruncated is returned instead.
func NewDecoder(root *tree.Node, r *bitstream.Reader, strict bool) *Decoder {
	d := &Decoder{root: root, r: r, strict: strict, node: root}
	if root.IsLeaf() && !root.Symbol.IsEOF() {
		d.repeat = root.Weight
	}
	return d
}

// Next returns the next decoded byte, or io.EOF once the EOF symbol has been
// decoded. Errors are sticky.
func (d *Decoder) Next() (byte, error) {
	if d.err != nil {
		return 0, d.err
	}
	if d.root.IsLeaf() {
		return d.nextSingle()
	}
	for {
		switch d.phase {
		case phaseDescend:
			if d.node.IsLeaf() {
				d.phase = phaseEmit
				continue
			}
			bit, ok, err := d.r.ReadBit()
			if err != nil {
				d.err = fmt.Errorf("huffman: decode: %w", err)
				return 0, d.err
			}
			if !ok {
				if d.strict {
					d.err = ErrTruncated
					return 0, d.err
				}
				d.phase = phaseDone
				continue
			}
			if bit == 0 {
				d.node = d.node.Zero
			} else {
				d.node = d.node.One
			}
		case phaseEmit:
			b, ok := d.node.Symbol.Byte()
			if !ok {
				d.phase = phaseDone
				continue
			}
			d.node = d.root
			d.phase = phaseDescend
			return b, nil
		case phaseDone:
			d.err = io.EOF
			return 0, d.err
		}
	}
}

// nextSingle decodes a tree with a single leaf, which needs no bits.
func (d *Decoder) nextSingle() (byte, error) {
	if d.repeat == 0 {
		d.phase = phaseDone
		d.err = io.EOF
		return 0, d.err
	}
	d.repeat--
	b, _ := d.root.Symbol.Byte()
	return b, nil
}

// DecodeTo writes every decoded byte to w until EOF and returns their number.
func (d *Decoder) DecodeTo(w io.ByteWriter) (n int64, err error) {
	for {
		b, err := d.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if err := w.WriteByte(b); err != nil {
			return n, err
		}
		n++
	}
}

// Done reports whether the EOF symbol has been reached.
func (d *Decoder) Done() bool {
	return d.phase == phaseDone
}

// BitsRead returns the number of payload bits consumed so far.
func (d *Decoder) BitsRead() uint64 {
	if d.r == nil {
		return 0
	}
	return d.r.Bits()
}
