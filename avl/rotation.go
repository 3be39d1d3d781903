// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly nil sub-tree
func height(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// total nodes in a possibly nil sub-tree
func nodes(p *Node) int {
	if nil == p {
		return 0
	}
	return 1 + p.leftNodes + p.rightNodes
}

// balance factor: height(right) - height(left)
func balanceFactor(p *Node) int {
	return height(p.right) - height(p.left)
}

// recompute the cached height and subtree counts from the children
func update(p *Node) {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
	p.leftNodes = nodes(p.left)
	p.rightNodes = nodes(p.right)
}

// single left rotation: the right child becomes the sub-tree root
//
// only pointers are relinked, no allocation; caller must store the
// returned node in place of p
func leftRotation(p *Node) *Node {
	p1 := p.right
	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	p1.left = p
	p1.up = p.up
	p.up = p1
	update(p)
	update(p1)
	return p1
}

// single right rotation: the left child becomes the sub-tree root
func rightRotation(p *Node) *Node {
	p1 := p.left
	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	p1.right = p
	p1.up = p.up
	p.up = p1
	update(p)
	update(p1)
	return p1
}

// restore the AVL invariant at a single node
//
// called once per ancestor on the unwind of insert and delete, from
// the mutation point up to the root
func rebalance(p *Node) *Node {
	update(p)
	switch balanceFactor(p) {
	case -2: // left heavy
		if balanceFactor(p.left) <= 0 {
			// left-left stick: single right rotation
			p = rightRotation(p)
		} else {
			// left-right elbow: double rotation
			p.left = leftRotation(p.left)
			p = rightRotation(p)
		}
	case +2: // right heavy
		if balanceFactor(p.right) >= 0 {
			// right-right stick: single left rotation
			p = leftRotation(p)
		} else {
			// right-left elbow: double rotation
			p.right = rightRotation(p.right)
			p = leftRotation(p)
		}
	}
	return p
}
