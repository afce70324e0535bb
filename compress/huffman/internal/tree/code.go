// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import "strings"

// Code is the bit sequence assigned to a symbol, one 0 or 1 per element,
// first bit first.
type Code []uint8

func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, b := range c {
		sb.WriteByte('0' + b)
	}
	return sb.String()
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if len(p) > len(c) {
		return false
	}
	for i := range p {
		if c[i] != p[i] {
			return false
		}
	}
	return true
}

// Table maps every leaf symbol of a tree to its code.
type Table map[Symbol]Code

// Codes walks the tree depth first and returns the code of every leaf.
// A tree made of a single leaf gives that leaf the empty code.
func Codes(root *Node) Table {
	t := make(Table)
	if root == nil {
		return t
	}
	path := make(Code, 0, 16)
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			t[n.Symbol] = append(Code{}, path...)
			return
		}
		path = append(path, 0)
		walk(n.Zero)
		path = path[:len(path)-1]

		path = append(path, 1)
		walk(n.One)
		path = path[:len(path)-1]
	}
	walk(root)
	return t
}
