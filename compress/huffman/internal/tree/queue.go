// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

type queued struct {
	node  *Node
	order int
}

// nodeQueue is a min-heap of nodes ordered by weight, then by insertion order.
type nodeQueue []queued

// Len is the number of elements in the collection.
func (q nodeQueue) Len() int {
	return len(q)
}

// Less compare two elements
func (q nodeQueue) Less(i int, j int) bool {
	if q[i].node.Weight != q[j].node.Weight {
		return q[i].node.Weight < q[j].node.Weight
	}
	return q[i].order < q[j].order
}

// Swap swaps the elements with indexes i and j.
func (q nodeQueue) Swap(i int, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *nodeQueue) Push(x any) {
	*q = append(*q, x.(queued))
}

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	old[n-1] = queued{}
	*q = old[:n-1]
	return x
}
