// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Equals - structural and value equality
//
// two trees are equal iff they have the same count and a parallel
// level-order traversal meets equal keys and nil children in the
// same positions
func (tree *Tree) Equals(other *Tree) bool {
	if nil == other {
		return false
	}
	if tree.count != other.count {
		return false
	}

	queueA := []*Node{tree.root}
	queueB := []*Node{other.root}

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
