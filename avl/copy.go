// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Copy - produce a deep, structurally independent duplicate
//
// every node is freshly allocated; the copy shares no structure with
// the original so either tree can be mutated or cleared without
// affecting the other
func (tree *Tree) Copy() *Tree {
	return &Tree{
		root:  cloneNodes(tree.root, nil),
		count: tree.count,
	}
}

// internal: pre-order clone preserving shape and cached data
func cloneNodes(p *Node, up *Node) *Node {
	if nil == p {
		return nil
	}
	q := newNode(p.key, p.value)
	q.up = up
	q.height = p.height
	q.leftNodes = p.leftNodes
	q.rightNodes = p.rightNodes
	q.left = cloneNodes(p.left, q)
	q.right = cloneNodes(p.right, q)
	return q
}
