// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hashtable - a separate-chaining hash table
//
// String keys are hashed with FNV-1a onto a power-of-two bucket
// array; collisions chain through singly linked entries.  The table
// doubles its bucket count when the load factor reaches 3/4.
//
// Note: not thread safe; serialise access externally if required.
package hashtable

import (
	"hash/fnv"
)

// initial bucket count, must be a power of two
const initialBuckets = 16

// an entry in a bucket chain
type entry struct {
	next  *entry
	key   string
	value interface{}
}

// Table - type to hold the bucket array and a count
type Table struct {
	buckets []*entry
	count   int
}

// New - create an initially empty table
func New() *Table {
	return &Table{
		buckets: make([]*entry, initialBuckets),
	}
}

// IsEmpty - true if table contains no data
func (table *Table) IsEmpty() bool {
	return 0 == table.count
}

// Count - number of key/value pairs currently stored
func (table *Table) Count() int {
	return table.count
}

// internal: bucket index for a key
func (table *Table) index(key string) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32()) & (len(table.buckets) - 1)
}

// Add - store a key/value pair
//
// an existing key has its value overwritten
func (table *Table) Add(key string, value interface{}) {
	i := table.index(key)
	for e := table.buckets[i]; nil != e; e = e.next {
		if e.key == key {
			e.value = value
			return
		}
	}
	table.buckets[i] = &entry{
		next:  table.buckets[i],
		key:   key,
		value: value,
	}
	table.count += 1

	// grow when load factor reaches 3/4
	if 4*table.count >= 3*len(table.buckets) {
		table.grow()
	}
}

// internal: double the bucket array and rehash every entry
func (table *Table) grow() {
	old := table.buckets
	table.buckets = make([]*entry, 2*len(old))
	for _, e := range old {
		for nil != e {
			next := e.next
			i := table.index(e.key)
			e.next = table.buckets[i]
			table.buckets[i] = e
			e = next
		}
	}
}

// Get - fetch the value for a key
//
// a missing key yields a neutral nil, false
func (table *Table) Get(key string) (interface{}, bool) {
	for e := table.buckets[table.index(key)]; nil != e; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}
	return nil, false
}

// Contains - true if the key is present
func (table *Table) Contains(key string) bool {
	_, ok := table.Get(key)
	return ok
}

// Remove - delete a key
//
// a missing key is a safe no-op returning false
func (table *Table) Remove(key string) bool {
	i := table.index(key)
	var prev *entry
	for e := table.buckets[i]; nil != e; e = e.next {
		if e.key == key {
			if nil == prev {
				table.buckets[i] = e.next
			} else {
				prev.next = e.next
			}
			table.count -= 1
			return true
		}
		prev = e
	}
	return false
}

// Keys - collect every key, in no particular order
func (table *Table) Keys() []string {
	keys := make([]string, 0, table.count)
	for _, e := range table.buckets {
		for ; nil != e; e = e.next {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// Values - collect every value, in no particular order
func (table *Table) Values() []interface{} {
	values := make([]interface{}, 0, table.count)
	for _, e := range table.buckets {
		for ; nil != e; e = e.next {
			values = append(values, e.value)
		}
	}
	return values
}

// Clear - remove all entries
func (table *Table) Clear() {
	table.buckets = make([]*entry, initialBuckets)
	table.count = 0
}
