// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// IsBalanced - true iff every node's balance factor is in {-1, 0, +1}
//
// diagnostic hook for testing; internal balancing is incremental so
// this is never called by the mutating operations
func (tree *Tree) IsBalanced() bool {
	ok, _ := balanced(tree.root)
	return ok
}

// internal: recompute heights from scratch, ignoring the cache
func balanced(p *Node) (bool, int) {
	if nil == p {
		return true, -1
	}
	lok, lh := balanced(p.left)
	if !lok {
		return false, 0
	}
	rok, rh := balanced(p.right)
	if !rok {
		return false, 0
	}
	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	bf := rh - lh
	if bf < -1 || bf > 1 || h != p.height {
		return false, 0
	}
	return true, h
}

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.key, p.up, up)
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckCounts - check the cached subtree counts against a traversal
//
// also verifies the tree count equals the number of reachable nodes
func (tree *Tree) CheckCounts() bool {
	n, ok := checkcounts(tree.root)
	return ok && n == tree.count
}

// internal: count checker, returns actual node count
func checkcounts(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	nl, lok := checkcounts(p.left)
	if !lok {
		return 0, false
	}
	nr, rok := checkcounts(p.right)
	if !rok {
		return 0, false
	}
	if nl != p.leftNodes || nr != p.rightNodes {
		fmt.Printf("fail at node: %v   actual: [%d,%d]  expected: [%d,%d]\n", p.key, nl, nr, p.leftNodes, p.rightNodes)
		return 0, false
	}
	return 1 + nl + nr, true
}
