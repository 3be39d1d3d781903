// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stack_test

import (
	"testing"

	"github.com/caliper-works/structures/fault"
	"github.com/caliper-works/structures/stack"
)

func TestPushPop(t *testing.T) {
	s := stack.New()
	if !s.IsEmpty() {
		t.Fatal("new stack is not empty")
	}

	items := []string{"one", "two", "three", "four"}
	for _, item := range items {
		s.Push(item)
	}
	if len(items) != s.Count() {
		t.Fatalf("count: actual: %d  expected: %d", s.Count(), len(items))
	}
	if "four" != s.Top() {
		t.Fatalf("top: actual: %q  expected: %q", s.Top(), "four")
	}

	for i := len(items) - 1; i >= 0; i -= 1 {
		data := s.Pop()
		if items[i] != data {
			t.Fatalf("pop: actual: %q  expected: %q", data, items[i])
		}
	}
	if !s.IsEmpty() {
		t.Fatal("stack not empty after pops")
	}
	if 0 != s.Count() {
		t.Fatalf("count: actual: %d  expected: 0", s.Count())
	}
}

func TestEmptyPopPanics(t *testing.T) {
	defer func() {
		r := recover()
		if fault.ErrStackIsEmpty != r {
			t.Fatalf("panic: actual: %v  expected: %v", r, fault.ErrStackIsEmpty)
		}
	}()
	stack.New().Pop()
}

func TestEmptyTopPanics(t *testing.T) {
	defer func() {
		r := recover()
		if fault.ErrStackIsEmpty != r {
			t.Fatalf("panic: actual: %v  expected: %v", r, fault.ErrStackIsEmpty)
		}
	}()
	stack.New().Top()
}

func TestEquals(t *testing.T) {
	a := stack.New()
	b := stack.New()
	if !a.Equals(b) {
		t.Fatal("two empty stacks differ")
	}

	for _, item := range []int{1, 2, 3} {
		a.Push(item)
		b.Push(item)
	}
	if !a.Equals(b) || !b.Equals(a) {
		t.Fatal("identical stacks differ")
	}

	b.Pop()
	b.Push(99)
	if a.Equals(b) {
		t.Fatal("different stacks compare equal")
	}

	b.Pop()
	if a.Equals(b) {
		t.Fatal("different lengths compare equal")
	}
}

func TestCopyAndClear(t *testing.T) {
	a := stack.New()
	for _, item := range []int{1, 2, 3} {
		a.Push(item)
	}

	c := a.Copy()
	if !a.Equals(c) {
		t.Fatal("copy differs from original")
	}

	c.Pop()
	if 3 != a.Count() {
		t.Fatal("pop on copy changed original")
	}

	a.Clear()
	if !a.IsEmpty() {
		t.Fatal("stack not empty after clear")
	}
	if 2 != c.Count() {
		t.Fatal("clear on original changed copy")
	}
}
