// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package queue - a FIFO queue over a doubly linked list
//
// Note: not thread safe; serialise access externally if required.
package queue

import (
	"github.com/caliper-works/structures/fault"
)

// a node in the queue
type node struct {
	next *node
	prev *node
	data interface{}
}

// Queue - type to hold the ends of the list and a count
type Queue struct {
	head  *node
	tail  *node
	count int
}

// New - create an initially empty queue
func New() *Queue {
	return &Queue{}
}

// IsEmpty - true if queue contains no data
func (q *Queue) IsEmpty() bool {
	return nil == q.head
}

// Count - number of items currently queued
func (q *Queue) Count() int {
	return q.count
}

// Enqueue - append an item to the back of the queue
func (q *Queue) Enqueue(data interface{}) {
	n := &node{
		prev: q.tail,
		data: data,
	}
	if nil == q.tail {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.count += 1
}

// Dequeue - remove and return the item at the front of the queue
func (q *Queue) Dequeue() interface{} {
	if nil == q.head {
		panic(fault.ErrQueueIsEmpty)
	}
	data := q.head.data
	q.head = q.head.next
	if nil == q.head {
		q.tail = nil
	} else {
		q.head.prev = nil
	}
	q.count -= 1
	return data
}

// Front - read the front item without removing it
func (q *Queue) Front() interface{} {
	if nil == q.head {
		panic(fault.ErrQueueIsEmpty)
	}
	return q.head.data
}

// Back - read the back item without removing it
func (q *Queue) Back() interface{} {
	if nil == q.tail {
		panic(fault.ErrQueueIsEmpty)
	}
	return q.tail.data
}

// Clear - remove all items
func (q *Queue) Clear() {
	q.head = nil
	q.tail = nil
	q.count = 0
}

// Equals - two queues are equal if they have the same length and the
// same data at each position
func (q *Queue) Equals(other *Queue) bool {
	if nil == other || q.count != other.count {
		return false
	}
	p := q.head
	r := other.head
	for nil != p {
		if p.data != r.data {
			return false
		}
		p = p.next
		r = r.next
	}
	return true
}

// Copy - produce an independent duplicate with the same content
func (q *Queue) Copy() *Queue {
	c := New()
	for p := q.head; nil != p; p = p.next {
		c.Enqueue(p.data)
	}
	return c
}
