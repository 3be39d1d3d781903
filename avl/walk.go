// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Order - to select a traversal variant
type Order int

// all possible traversal orders
const (
	InOrder Order = iota
	PreOrder
	PostOrder
)

// String - traversal order name for diagnostics
func (order Order) String() string {
	switch order {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	default:
		return "unknown"
	}
}

// Visitor - called once per node during a walk
//
// return true to stop the walk early
type Visitor func(node *Node) bool

// Walk - visit every node in the selected order
//
// an in-order walk yields keys in strictly ascending order; returns
// true if the visitor stopped the walk
func (tree *Tree) Walk(order Order, visitor Visitor) bool {
	switch order {
	case PreOrder:
		return walkPre(tree.root, visitor)
	case PostOrder:
		return walkPost(tree.root, visitor)
	default:
		return walkIn(tree.root, visitor)
	}
}

func walkIn(p *Node, visitor Visitor) bool {
	if nil == p {
		return false
	}
	if walkIn(p.left, visitor) {
		return true
	}
	if visitor(p) {
		return true
	}
	return walkIn(p.right, visitor)
}

func walkPre(p *Node, visitor Visitor) bool {
	if nil == p {
		return false
	}
	if visitor(p) {
		return true
	}
	if walkPre(p.left, visitor) {
		return true
	}
	return walkPre(p.right, visitor)
}

func walkPost(p *Node, visitor Visitor) bool {
	if nil == p {
		return false
	}
	if walkPost(p.left, visitor) {
		return true
	}
	if walkPost(p.right, visitor) {
		return true
	}
	return visitor(p)
}

// Keys - collect every key in the selected order
func (tree *Tree) Keys(order Order) []Item {
	keys := make([]Item, 0, tree.count)
	tree.Walk(order, func(node *Node) bool {
		keys = append(keys, node.key)
		return false
	})
	return keys
}
