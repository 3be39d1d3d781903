// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/caliper-works/structures/avl"
)

type intItem int

func (i intItem) Compare(x interface{}) int {
	j := x.(intItem)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

func insertAll(tree *avl.Tree, keys ...int) {
	for _, k := range keys {
		tree.Insert(intItem(k), k)
	}
}

func inOrderInts(tree *avl.Tree) []int {
	result := []int{}
	tree.Walk(avl.InOrder, func(node *avl.Node) bool {
		result = append(result, int(node.Key().(intItem)))
		return false
	})
	return result
}

func checkInts(t *testing.T, tree *avl.Tree, expected []int) {
	t.Helper()
	actual := inOrderInts(tree)
	if len(actual) != len(expected) {
		t.Fatalf("in-order length: actual: %d  expected: %d", len(actual), len(expected))
	}
	for i, k := range expected {
		if actual[i] != k {
			t.Fatalf("in-order[%d]: actual: %d  expected: %d", i, actual[i], k)
		}
	}
	if len(expected) != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), len(expected))
	}
	if !tree.IsBalanced() {
		t.Fatal("tree is unbalanced")
	}
	if !tree.CheckUp() {
		t.Fatal("inconsistent parent pointers")
	}
	if !tree.CheckCounts() {
		t.Fatal("inconsistent subtree counts")
	}
}

// ascending run 10, 20, 30 forms a right-right stick at 10 and must
// resolve with a single left rotation
func TestSingleRotation(t *testing.T) {
	tree := avl.New()
	insertAll(tree, 10, 20, 30)

	checkInts(t, tree, []int{10, 20, 30})

	r := tree.Root()
	if intItem(20) != r.Key() {
		t.Fatalf("root: actual: %v  expected: 20", r.Key())
	}
	if 0 != r.Balance() {
		t.Fatalf("root balance: actual: %d  expected: 0", r.Balance())
	}
	children := r.GetChildrenByDepth(1)
	if 2 != len(children) {
		t.Fatalf("children: actual: %d  expected: 2", len(children))
	}
	if intItem(10) != children[0].Key() || intItem(30) != children[1].Key() {
		t.Fatalf("children: actual: %v, %v  expected: 10, 30", children[0].Key(), children[1].Key())
	}
	for _, c := range children {
		if 0 != c.Balance() {
			t.Fatalf("child balance: actual: %d  expected: 0", c.Balance())
		}
	}
}

// 30, 10, 20 forms a left-right elbow at 30 and must resolve with a
// double rotation leaving 20 at the root
func TestDoubleRotation(t *testing.T) {
	tree := avl.New()
	insertAll(tree, 30, 10, 20)

	checkInts(t, tree, []int{10, 20, 30})

	r := tree.Root()
	if intItem(20) != r.Key() {
		t.Fatalf("root: actual: %v  expected: 20", r.Key())
	}
	children := r.GetChildrenByDepth(1)
	if 2 != len(children) {
		t.Fatalf("children: actual: %d  expected: 2", len(children))
	}
	if intItem(10) != children[0].Key() || intItem(30) != children[1].Key() {
		t.Fatalf("children: actual: %v, %v  expected: 10, 30", children[0].Key(), children[1].Key())
	}
}

// removing a root with two children promotes the in-order successor
// and leaves every balance factor in range
func TestDeleteRootTwoChildren(t *testing.T) {
	tree := avl.New()
	insertAll(tree, 50, 30, 70, 20, 40, 60, 80)

	if v := tree.Delete(intItem(50)); v != 50 {
		t.Fatalf("delete returned: %v  expected: 50", v)
	}

	checkInts(t, tree, []int{20, 30, 40, 60, 70, 80})
	if 6 != tree.Count() {
		t.Fatalf("count: actual: %d  expected: 6", tree.Count())
	}
}

// contains on an empty tree is false for any key
func TestContainsEmpty(t *testing.T) {
	tree := avl.New()
	for _, k := range []int{-1, 0, 1, 1000000} {
		if tree.Contains(intItem(k)) {
			t.Fatalf("empty tree contains: %d", k)
		}
	}
	if node, index := tree.Search(intItem(7)); nil != node || -1 != index {
		t.Fatalf("empty search: actual: %v, %d  expected: nil, -1", node, index)
	}
}

// removing an absent key is a no-op
func TestDeleteAbsent(t *testing.T) {
	tree := avl.New()
	insertAll(tree, 5, 3, 8)

	before := inOrderInts(tree)
	if v := tree.Delete(intItem(42)); nil != v {
		t.Fatalf("delete returned: %v  expected: nil", v)
	}
	checkInts(t, tree, before)
}

// inserting an already present key changes neither count nor sequence
func TestInsertIdempotent(t *testing.T) {
	tree := avl.New()
	insertAll(tree, 5, 3, 8, 3, 5, 8, 5)
	checkInts(t, tree, []int{3, 5, 8})
}

// removing a freshly inserted key restores the previous sequence
func TestInsertDeleteRoundTrip(t *testing.T) {
	tree := avl.New()
	insertAll(tree, 50, 30, 70, 20, 40)

	before := inOrderInts(tree)
	tree.Insert(intItem(35), 35)
	tree.Delete(intItem(35))
	checkInts(t, tree, before)
}

// ascending inserts 1..7 must finish at height 2, not a stick of
// height 6, proving rotations engage on every insert
func TestAscendingInsertHeight(t *testing.T) {
	tree := avl.New()
	insertAll(tree, 1, 2, 3, 4, 5, 6, 7)

	checkInts(t, tree, []int{1, 2, 3, 4, 5, 6, 7})
	if 2 != tree.Height() {
		t.Fatalf("height: actual: %d  expected: 2", tree.Height())
	}
	if 4 != len(tree.Root().GetChildrenByDepth(2)) {
		t.Fatalf("leaf level not full")
	}
}

// empty tree invariants
func TestEmptyTree(t *testing.T) {
	tree := avl.New()
	if !tree.IsEmpty() {
		t.Fatal("new tree is not empty")
	}
	if 0 != tree.Count() {
		t.Fatalf("count: actual: %d  expected: 0", tree.Count())
	}
	if -1 != tree.Height() {
		t.Fatalf("height: actual: %d  expected: -1", tree.Height())
	}
	if nil != tree.Delete(intItem(1)) {
		t.Fatal("delete on empty returned a value")
	}
	if !tree.IsBalanced() {
		t.Fatal("empty tree not balanced")
	}
}

// clear releases every node and resets the count
func TestClear(t *testing.T) {
	tree := avl.New()
	insertAll(tree, 4, 2, 6, 1, 3, 5, 7)

	tree.Clear()
	if !tree.IsEmpty() {
		t.Fatal("tree not empty after clear")
	}
	if 0 != tree.Count() {
		t.Fatalf("count: actual: %d  expected: 0", tree.Count())
	}
	if nil != tree.Root() {
		t.Fatal("root not nil after clear")
	}

	// the tree must remain usable
	insertAll(tree, 9, 8)
	checkInts(t, tree, []int{8, 9})
}
