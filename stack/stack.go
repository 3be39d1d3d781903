// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stack - a LIFO stack over a singly linked list
//
// Note: not thread safe; serialise access externally if required.
package stack

import (
	"github.com/caliper-works/structures/fault"
)

// a node in the stack
type node struct {
	next *node
	data interface{}
}

// Stack - type to hold the top node and a count
type Stack struct {
	top   *node
	count int
}

// New - create an initially empty stack
func New() *Stack {
	return &Stack{}
}

// IsEmpty - true if stack contains no data
func (s *Stack) IsEmpty() bool {
	return nil == s.top
}

// Count - number of items currently stacked
func (s *Stack) Count() int {
	return s.count
}

// Push - place an item on the top of the stack
func (s *Stack) Push(data interface{}) {
	s.top = &node{
		next: s.top,
		data: data,
	}
	s.count += 1
}

// Top - read the top item without removing it
//
// panics on an empty stack
func (s *Stack) Top() interface{} {
	if nil == s.top {
		panic(fault.ErrStackIsEmpty)
	}
	return s.top.data
}

// Pop - remove and return the top item
func (s *Stack) Pop() interface{} {
	if nil == s.top {
		panic(fault.ErrStackIsEmpty)
	}
	data := s.top.data
	s.top = s.top.next
	s.count -= 1
	return data
}

// Clear - remove all items
func (s *Stack) Clear() {
	s.top = nil
	s.count = 0
}

// Equals - two stacks are equal if they have the same length and the
// same data at each position
func (s *Stack) Equals(other *Stack) bool {
	if nil == other || s.count != other.count {
		return false
	}
	p := s.top
	q := other.top
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
func (s *Stack) Copy() *Stack {
	c := New()
	var last *node
	for p := s.top; nil != p; p = p.next {
		n := &node{data: p.data}
		if nil == last {
			c.top = n
		} else {
			last.next = n
		}
		last = n
	}
	c.count = s.count
	return c
}
