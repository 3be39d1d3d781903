// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - a plain binary search tree
//
// Maintains only the ordering invariant; no rebalancing is performed
// so a degenerate insertion order degrades to a linked list.  Use the
// avl package when bounded height matters.
//
// Note: not thread safe; serialise access externally if required.
package bst

// Item - a key must implement the Compare function
//
// Compare must return exactly -1, 0 or +1
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// a node in the tree
type node struct {
	left  *node
	right *node
	key   Item
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *node
	count int
}

// Order - to select a traversal variant
type Order int

// all possible traversal orders
const (
	InOrder Order = iota
	PreOrder
	PostOrder
)

// New - create an initially empty tree
func New() *Tree {
	return &Tree{}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of keys currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Insert - add a key to the tree
//
// returns false without modification when the key already exists
func (tree *Tree) Insert(key Item) bool {
	added := false
	tree.root, added = insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

func insert(key Item, p *node) (*node, bool) {
	if nil == p {
		return &node{key: key}, true
	}
	added := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, added = insert(key, p.left)
	case -1: // p.key < key
		p.right, added = insert(key, p.right)
	default:
		return p, false
	}
	return p, added
}

// Contains - true if the key is present
func (tree *Tree) Contains(key Item) bool {
	p := tree.root
	for nil != p {
		switch p.key.Compare(key) {
		case +1:
			p = p.left
		case -1:
			p = p.right
		default:
			return true
		}
	}
	return false
}

// Remove - delete a key from the tree
//
// a missing key is a safe no-op returning false
func (tree *Tree) Remove(key Item) bool {
	removed := false
	tree.root, removed = remove(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

func remove(key Item, p *node) (*node, bool) {
	if nil == p {
		return nil, false
	}
	removed := false
	switch p.key.Compare(key) {
	case +1:
		p.left, removed = remove(key, p.left)
	case -1:
		p.right, removed = remove(key, p.right)
	default:
		if nil == p.left {
			return p.right, true
		}
		if nil == p.right {
			return p.left, true
		}

		// two children: promote the in-order successor
		s := p.right
		for nil != s.left {
			s = s.left
		}
		p.key = s.key
		p.right, _ = remove(s.key, p.right)
		return p, true
	}
	return p, removed
}

// Walk - visit every key in the selected order
//
// an in-order walk yields keys in ascending order
func (tree *Tree) Walk(order Order, visitor func(key Item) bool) bool {
	return walk(order, tree.root, visitor)
}

func walk(order Order, p *node, visitor func(key Item) bool) bool {
	if nil == p {
		return false
	}
	if PreOrder == order && visitor(p.key) {
		return true
	}
	if walk(order, p.left, visitor) {
		return true
	}
	if InOrder == order && visitor(p.key) {
		return true
	}
	if walk(order, p.right, visitor) {
		return true
	}
	if PostOrder == order && visitor(p.key) {
		return true
	}
	return false
}

// Keys - collect every key in the selected order
func (tree *Tree) Keys(order Order) []Item {
	keys := make([]Item, 0, tree.count)
	tree.Walk(order, func(key Item) bool {
		keys = append(keys, key)
		return false
	})
	return keys
}

// Height - longest root to leaf path, -1 when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(p *node) int {
	if nil == p {
		return -1
	}
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		return 1 + hl
	}
	return 1 + hr
}

// Equals - structural and value equality via parallel level-order
// traversal, identical shape included
func (tree *Tree) Equals(other *Tree) bool {
	if nil == other || tree.count != other.count {
		return false
	}
	queueA := []*node{tree.root}
	queueB := []*node{other.root}
	for len(queueA) > 0 {
		a := queueA[0]
		b := queueB[0]
		queueA = queueA[1:]
		queueB = queueB[1:]
		if nil == a && nil == b {
			continue
		}
		if nil == a || nil == b {
			return false
		}
		if 0 != a.key.Compare(b.key) {
			return false
		}
		queueA = append(queueA, a.left, a.right)
		queueB = append(queueB, b.left, b.right)
	}
	return true
}

// Clear - remove all keys
func (tree *Tree) Clear() {
	tree.root = nil
	tree.count = 0
}
