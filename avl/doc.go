// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its subtree (nil has height -1) and
// the node counts of both child subtrees.  The balance factor of a
// node is height(right) - height(left) and is kept in {-1, 0, +1} by
// single or double rotations applied bottom-up after every insert or
// delete.  The cached counts give O(log n) access by in-order index.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key; duplicate keys are
// never stored.
package avl
