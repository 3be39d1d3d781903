// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dlist - a doubly linked list
//
// Exposes its nodes so callers can iterate in either direction, but
// the list remains the sole owner: node pointers must not be held
// across mutations.
//
// Note: not thread safe; serialise access externally if required.
package dlist

import (
	"github.com/caliper-works/structures/fault"
)

// Node - a node in the list
type Node struct {
	next *Node
	prev *Node
	data interface{}
}

// Next - following node, or nil at the tail
func (p *Node) Next() *Node {
	return p.next
}

// Prev - preceding node, or nil at the head
func (p *Node) Prev() *Node {
	return p.prev
}

// Value - read the data from a node
func (p *Node) Value() interface{} {
	return p.data
}

// List - type to hold the ends of the list and a count
type List struct {
	head  *Node
	tail  *Node
	count int
}

// New - create an initially empty list
func New() *List {
	return &List{}
}

// IsEmpty - true if list contains no data
func (l *List) IsEmpty() bool {
	return nil == l.head
}

// Count - number of items currently in the list
func (l *List) Count() int {
	return l.count
}

// Front - the head node, or nil when empty
func (l *List) Front() *Node {
	return l.head
}

// Back - the tail node, or nil when empty
func (l *List) Back() *Node {
	return l.tail
}

// PushFront - insert an item at the head
func (l *List) PushFront(data interface{}) {
	n := &Node{
		next: l.head,
		data: data,
	}
	if nil == l.head {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.count += 1
}

// PushBack - append an item at the tail
func (l *List) PushBack(data interface{}) {
	n := &Node{
		prev: l.tail,
		data: data,
	}
	if nil == l.tail {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.count += 1
}

// PopFront - remove and return the head item
func (l *List) PopFront() interface{} {
	if nil == l.head {
		panic(fault.ErrListIsEmpty)
	}
	data := l.head.data
	l.unlink(l.head)
	return data
}

// PopBack - remove and return the tail item
func (l *List) PopBack() interface{} {
	if nil == l.tail {
		panic(fault.ErrListIsEmpty)
	}
	data := l.tail.data
	l.unlink(l.tail)
	return data
}

// Find - first node holding the data, or nil
func (l *List) Find(data interface{}) *Node {
	for p := l.head; nil != p; p = p.next {
		if p.data == data {
			return p
		}
	}
	return nil
}

// Remove - unlink the first node holding the data
//
// a missing value is a safe no-op returning false
func (l *List) Remove(data interface{}) bool {
	p := l.Find(data)
	if nil == p {
		return false
	}
	l.unlink(p)
	return true
}

// internal: detach a node known to be in this list
func (l *List) unlink(p *Node) {
	if nil == p.prev {
		l.head = p.next
	} else {
		p.prev.next = p.next
	}
	if nil == p.next {
		l.tail = p.prev
	} else {
		p.next.prev = p.prev
	}
	p.next = nil
	p.prev = nil
	l.count -= 1
}

// Clear - remove all items
func (l *List) Clear() {
	l.head = nil
	l.tail = nil
	l.count = 0
}

// Reverse - reverse the list in place
func (l *List) Reverse() {
	p := l.head
	l.head, l.tail = l.tail, l.head
	for nil != p {
		next := p.next
		p.next, p.prev = p.prev, next
		p = next
	}
}

// Equals - two lists are equal if they have the same length and the
// same data at each position
func (l *List) Equals(other *List) bool {
	if nil == other || l.count != other.count {
		return false
	}
	p := l.head
	q := other.head
	for nil != p {
		if p.data != q.data {
			return false
		}
		p = p.next
		q = q.next
	}
	return true
}

// Copy - produce an independent duplicate with the same content
func (l *List) Copy() *List {
	c := New()
	for p := l.head; nil != p; p = p.next {
		c.PushBack(p.data)
	}
	return c
}
