// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/caliper-works/structures/fault"
)

// Delete - remove a specific item from the tree
//
// returns the stored value, or nil if the key was not present; a
// delete of a missing key leaves the tree unchanged
func (tree *Tree) Delete(key Item) interface{} {
	var result interface{}
	removed := false
	tree.root, result, removed = deleteKey(key, tree.root)
	if nil != tree.root {
		tree.root.up = nil
	}
	if removed {
		tree.count -= 1
	}
	return result
}

// internal delete routine
func deleteKey(key Item, p *Node) (*Node, interface{}, bool) {
	if nil == p { // key not in tree
		return nil, nil, false
	}
	value := interface{}(nil)
	removed := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, value, removed = deleteKey(key, p.left)
		if nil != p.left {
			p.left.up = p
		}
	case -1: // p.key < key
		p.right, value, removed = deleteKey(key, p.right)
		if nil != p.right {
			p.right.up = p
		}
	default: // found: delete p
		value = p.value
		removed = true
		if nil == p.left { // zero or one child: splice out
			r := p.right
			if nil != r {
				r.up = p.up
			}
			freeNode(p)
			return r, value, true
		}
		if nil == p.right {
			l := p.left
			l.up = p.up
			freeNode(p)
			return l, value, true
		}

		// two children: swap data with the in-order successor, the
		// leftmost node of the right sub-tree, then delete that node
		s := p.right.first()
		if nil == s {
			fault.Criticalf("avl: delete %v: right subtree has no leftmost node", p.key)
			panic(fault.ErrSuccessorNotFound)
		}
		p.key = s.key
		p.value = s.value
		p.right, _, _ = deleteKey(s.key, p.right)
		if nil != p.right {
			p.right.up = p
		}
	}
	return rebalance(p), value, removed
}
