// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"container/heap"
	"fmt"
)

// Node is a Huffman tree node. A leaf carries a symbol and has no children;
// an internal node always owns exactly two children and its weight is their sum.
// Symbol is only meaningful on leaves.
type Node struct {
	Symbol Symbol
	Weight uint64
	Zero   *Node
	One    *Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Zero == nil && n.One == nil
}

// Depth returns the length of the longest root-to-leaf path.
func (n *Node) Depth() int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	z, o := n.Zero.Depth(), n.One.Depth()
	if z > o {
		return z + 1
	}
	return o + 1
}

// Leaves returns the number of leaves under n.
func (n *Node) Leaves() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return n.Zero.Leaves() + n.One.Leaves()
}

// Build creates the Huffman tree for freqs.
//
// Leaves enter the queue in ascending symbol order. Nodes of equal weight
// leave the queue in the order they entered it, merged nodes entering after
// every leaf, so the same table always yields the same tree. The first node
// removed becomes the zero branch of the merged node, the second the one branch.
func Build(freqs Frequencies) (*Node, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyFrequencies
	}
	q := make(nodeQueue, 0, len(freqs))
	for _, s := range freqs.Symbols() {
		c := freqs[s]
		if c == 0 {
			return nil, fmt.Errorf("%w: %v", ErrZeroWeight, s)
		}
		q = append(q, queued{node: &Node{Symbol: s, Weight: c}, order: len(q)})
	}
	heap.Init(&q)

	order := len(q)
	for q.Len() > 1 {
		zero := heap.Pop(&q).(queued).node
		one := heap.Pop(&q).(queued).node
		parent := &Node{
			Weight: zero.Weight + one.Weight,
			Zero:   zero,
			One:    one,
		}
		heap.Push(&q, queued{node: parent, order: order})
		order++
	}
	return heap.Pop(&q).(queued).node, nil
}
