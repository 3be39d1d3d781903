// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// returns true if a new node was added; an insert with an already
// present key only overwrites the stored value and returns false
func (tree *Tree) Insert(key Item, value interface{}) bool {
	added := false
	tree.root, added = insert(key, value, tree.root)
	tree.root.up = nil
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
func insert(key Item, value interface{}, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return newNode(key, value), true
	}
	added := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, added = insert(key, value, p.left)
		p.left.up = p
	case -1: // p.key < key
		p.right, added = insert(key, value, p.right)
		p.right.up = p
	default: // duplicate key: update value, no structural change
		p.value = value
		return p, false
	}
	return rebalance(p), added
}
