// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pqueue - a priority queue over a binary min-heap
//
// The heap is kept in a slice with the classic 1-based layout: the
// children of element i live at 2i and 2i+1.  The minimum item is
// always at index 1.
//
// Note: not thread safe; serialise access externally if required.
package pqueue

import (
	"github.com/caliper-works/structures/fault"
)

// Item - an entry must implement the Compare function
type Item interface {
	Compare(interface{}) int // for priority ordering of items
}

// PriorityQueue - type to hold the heap slice
type PriorityQueue struct {
	heap []Item // heap[0] is unused
}

// New - create an initially empty priority queue
func New() *PriorityQueue {
	return &PriorityQueue{
		heap: make([]Item, 1, 8),
	}
}

// IsEmpty - true if the queue contains no data
func (pq *PriorityQueue) IsEmpty() bool {
	return 1 == len(pq.heap)
}

// Count - number of items currently queued
func (pq *PriorityQueue) Count() int {
	return len(pq.heap) - 1
}

// Insert - add an item, keeping the heap ordering
func (pq *PriorityQueue) Insert(item Item) {
	pq.heap = append(pq.heap, item)
	pq.siftUp(len(pq.heap) - 1)
}

// Peek - read the minimum item without removing it
//
// panics on an empty queue
func (pq *PriorityQueue) Peek() Item {
	if pq.IsEmpty() {
		panic(fault.ErrHeapIsEmpty)
	}
	return pq.heap[1]
}

// RemoveMin - remove and return the minimum item
func (pq *PriorityQueue) RemoveMin() Item {
	if pq.IsEmpty() {
		panic(fault.ErrHeapIsEmpty)
	}
	min := pq.heap[1]
	last := len(pq.heap) - 1
	pq.heap[1] = pq.heap[last]
	pq.heap = pq.heap[:last]
	if !pq.IsEmpty() {
		pq.siftDown(1)
	}
	return min
}

// Clear - remove all items
func (pq *PriorityQueue) Clear() {
	pq.heap = pq.heap[:1]
}

// restore ordering from a leaf towards the root
func (pq *PriorityQueue) siftUp(i int) {
	for i > 1 {
		parent := i / 2
		if pq.heap[i].Compare(pq.heap[parent]) >= 0 {
			break
		}
		pq.heap[i], pq.heap[parent] = pq.heap[parent], pq.heap[i]
		i = parent
	}
}

// restore ordering from the root towards the leaves
func (pq *PriorityQueue) siftDown(i int) {
	n := len(pq.heap)
	for {
		smallest := i
		l := 2 * i
		r := 2*i + 1
		if l < n && pq.heap[l].Compare(pq.heap[smallest]) < 0 {
			smallest = l
		}
		if r < n && pq.heap[r].Compare(pq.heap[smallest]) < 0 {
			smallest = r
		}
		if smallest == i {
			return
		}
		pq.heap[i], pq.heap[smallest] = pq.heap[smallest], pq.heap[i]
		i = smallest
	}
}
