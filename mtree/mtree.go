// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mtree - an M-ary tree
//
// Every node carries up to M children; inserts fill the first node
// with a free slot found by the selected traversal.  Removal detaches
// the whole subtree below the matched node.
//
// Note: not thread safe; serialise access externally if required.
package mtree

// Node - a node in the tree
type Node struct {
	children []*Node
	data     interface{}
}

// Value - read the data from a node
func (p *Node) Value() interface{} {
	return p.data
}

// Children - the populated child slots of a node
func (p *Node) Children() []*Node {
	return p.children
}

// Order - to select a traversal variant
type Order int

// all possible traversal orders
const (
	DepthFirst Order = iota
	BreadthFirst
)

// Tree - type to hold the root node, the fan-out and a count
type Tree struct {
	root  *Node
	order int // maximum children per node, at least 2
	count int
}

// New - create an initially empty M-ary tree with the given fan-out
//
// a fan-out below two is raised to two
func New(order int) *Tree {
	if order < 2 {
		order = 2
	}
	return &Tree{
		order: order,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Order - the maximum fan-out of the tree
func (tree *Tree) Order() int {
	return tree.order
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Insert - place data at the first node with a free child slot
//
// the slot is located by the selected traversal; an empty tree gains
// a root
func (tree *Tree) Insert(data interface{}, order Order) {
	n := &Node{data: data}
	tree.count += 1
	if nil == tree.root {
		tree.root = n
		return
	}
	parent := (*Node)(nil)
	if BreadthFirst == order {
		parent = freeSlotBFS(tree.root, tree.order)
	} else {
		parent = freeSlotDFS(tree.root, tree.order)
	}
	parent.children = append(parent.children, n)
}

// internal: first node with spare capacity, depth first
func freeSlotDFS(p *Node, order int) *Node {
	if len(p.children) < order {
		return p
	}
	for _, c := range p.children {
		if q := freeSlotDFS(c, order); nil != q {
			return q
		}
	}
	return nil
}

// internal: first node with spare capacity, breadth first
func freeSlotBFS(p *Node, order int) *Node {
	queue := []*Node{p}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		if len(q.children) < order {
			return q
		}
		queue = append(queue, q.children...)
	}
	return nil
}

// AddChild - attach data directly under a known parent node
//
// fails if the parent is nil or already holds a full set of children
func (tree *Tree) AddChild(parent *Node, data interface{}) bool {
	if nil == parent || len(parent.children) >= tree.order {
		return false
	}
	parent.children = append(parent.children, &Node{data: data})
	tree.count += 1
	return true
}

// Find - first node holding the data, or nil
func (tree *Tree) Find(data interface{}, order Order) *Node {
	if nil == tree.root {
		return nil
	}
	if BreadthFirst == order {
		queue := []*Node{tree.root}
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			if p.data == data {
				return p
			}
			queue = append(queue, p.children...)
		}
		return nil
	}
	return findDFS(tree.root, data)
}

func findDFS(p *Node, data interface{}) *Node {
	if p.data == data {
		return p
	}
	for _, c := range p.children {
		if q := findDFS(c, data); nil != q {
			return q
		}
	}
	return nil
}

// Contains - true if the data is present
func (tree *Tree) Contains(data interface{}, order Order) bool {
	return nil != tree.Find(data, order)
}

// Remove - detach the subtree rooted at the first matching node
//
// missing data is a safe no-op returning false; matching the root
// empties the whole tree
func (tree *Tree) Remove(data interface{}) bool {
	if nil == tree.root {
		return false
	}
	if tree.root.data == data {
		tree.count = 0
		tree.root = nil
		return true
	}
	return tree.removeBelow(tree.root, data)
}

func (tree *Tree) removeBelow(p *Node, data interface{}) bool {
	for i, c := range p.children {
		if c.data == data {
			p.children = append(p.children[:i], p.children[i+1:]...)
			tree.count -= subtreeSize(c)
			return true
		}
		if tree.removeBelow(c, data) {
			return true
		}
	}
	return false
}

func subtreeSize(p *Node) int {
	n := 1
	for _, c := range p.children {
		n += subtreeSize(c)
	}
	return n
}

// Walk - visit every node depth first, parent before children
func (tree *Tree) Walk(visitor func(node *Node) bool) bool {
	return walk(tree.root, visitor)
}

func walk(p *Node, visitor func(node *Node) bool) bool {
	if nil == p {
		return false
	}
	if visitor(p) {
		return true
	}
	for _, c := range p.children {
		if walk(c, visitor) {
			return true
		}
	}
	return false
}

// Equals - structural and value equality: same fan-out, same count,
// same data and child layout at every position
func (tree *Tree) Equals(other *Tree) bool {
	if nil == other || tree.order != other.order || tree.count != other.count {
		return false
	}
	return equalNodes(tree.root, other.root)
}

func equalNodes(a *Node, b *Node) bool {
	if nil == a && nil == b {
		return true
	}
	if nil == a || nil == b {
		return false
	}
	if a.data != b.data || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !equalNodes(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

// Clear - remove all nodes
func (tree *Tree) Clear() {
	tree.root = nil
	tree.count = 0
}
