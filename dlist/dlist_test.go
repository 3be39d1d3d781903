// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dlist_test

import (
	"testing"

	"github.com/caliper-works/structures/dlist"
	"github.com/caliper-works/structures/fault"
)

func collect(l *dlist.List) []interface{} {
	items := []interface{}{}
	for p := l.Front(); nil != p; p = p.Next() {
		items = append(items, p.Value())
	}
	return items
}

func collectBackwards(l *dlist.List) []interface{} {
	items := []interface{}{}
	for p := l.Back(); nil != p; p = p.Prev() {
		items = append(items, p.Value())
	}
	return items
}

func checkList(t *testing.T, l *dlist.List, expected []interface{}) {
	t.Helper()
	actual := collect(l)
	if len(actual) != len(expected) {
		t.Fatalf("length: actual: %d  expected: %d", len(actual), len(expected))
	}
	for i, item := range expected {
		if actual[i] != item {
			t.Fatalf("[%d]: actual: %v  expected: %v", i, actual[i], item)
		}
	}
	if len(expected) != l.Count() {
		t.Fatalf("count: actual: %d  expected: %d", l.Count(), len(expected))
	}

	// backward iteration sees the same items reversed
	backward := collectBackwards(l)
	for i, item := range backward {
		if expected[len(expected)-1-i] != item {
			t.Fatalf("backward[%d]: actual: %v", i, item)
		}
	}
}

func TestPushPop(t *testing.T) {
	l := dlist.New()
	l.PushBack(2)
	l.PushBack(3)
	l.PushFront(1)
	l.PushBack(4)

	checkList(t, l, []interface{}{1, 2, 3, 4})

	if 1 != l.PopFront() {
		t.Fatal("pop front wrong item")
	}
	if 4 != l.PopBack() {
		t.Fatal("pop back wrong item")
	}
	checkList(t, l, []interface{}{2, 3})
}

func TestEmptyPopPanics(t *testing.T) {
	defer func() {
		r := recover()
		if fault.ErrListIsEmpty != r {
			t.Fatalf("panic: actual: %v  expected: %v", r, fault.ErrListIsEmpty)
		}
	}()
	dlist.New().PopFront()
}

func TestFindRemove(t *testing.T) {
	l := dlist.New()
	for _, item := range []string{"a", "b", "c", "b"} {
		l.PushBack(item)
	}

	if p := l.Find("b"); nil == p || "b" != p.Value() {
		t.Fatal("find failed")
	}
	if nil != l.Find("zz") {
		t.Fatal("found a missing item")
	}

	// removes only the first match
	if !l.Remove("b") {
		t.Fatal("remove failed")
	}
	checkList(t, l, []interface{}{"a", "c", "b"})

	if l.Remove("zz") {
		t.Fatal("removed a missing item")
	}
	checkList(t, l, []interface{}{"a", "c", "b"})

	// remove head and tail
	if !l.Remove("a") || !l.Remove("b") {
		t.Fatal("remove failed")
	}
	checkList(t, l, []interface{}{"c"})
}

func TestReverse(t *testing.T) {
	l := dlist.New()

	l.Reverse() // empty reverse is a no-op
	checkList(t, l, []interface{}{})

	for i := 1; i <= 5; i += 1 {
		l.PushBack(i)
	}
	l.Reverse()
	checkList(t, l, []interface{}{5, 4, 3, 2, 1})
}

func TestEqualsAndCopy(t *testing.T) {
	a := dlist.New()
	b := dlist.New()
	for i := 0; i < 4; i += 1 {
		a.PushBack(i)
		b.PushBack(i)
	}
	if !a.Equals(b) {
		t.Fatal("identical lists differ")
	}

	b.PopBack()
	if a.Equals(b) {
		t.Fatal("different lists compare equal")
	}

	c := a.Copy()
	if !a.Equals(c) {
		t.Fatal("copy differs from original")
	}
	c.PopFront()
	if 4 != a.Count() {
		t.Fatal("pop on copy changed original")
	}

	a.Clear()
	if !a.IsEmpty() {
		t.Fatal("list not empty after clear")
	}
}
