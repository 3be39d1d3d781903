// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package trie - a prefix tree over byte strings
//
// Each node fans out through a byte-keyed child map; a word is
// recorded by flagging its final node.  Removing a word clears the
// flag and prunes any branch that no longer leads to a word.
//
// Note: not thread safe; serialise access externally if required.
package trie

import (
	"sort"
)

// a node in the tree
type node struct {
	children  map[byte]*node
	endOfWord bool
}

func newNode() *node {
	return &node{
		children: make(map[byte]*node),
	}
}

// Trie - type to hold the root node and a word count
type Trie struct {
	root  *node
	count int
}

// New - create an initially empty trie
func New() *Trie {
	return &Trie{
		root: newNode(),
	}
}

// IsEmpty - true if no words are stored
func (trie *Trie) IsEmpty() bool {
	return 0 == trie.count
}

// Count - number of words currently stored
func (trie *Trie) Count() int {
	return trie.count
}

// Insert - add a word
//
// returns false without modification when the word already exists;
// the empty word is ignored
func (trie *Trie) Insert(word string) bool {
	if "" == word {
		return false
	}
	p := trie.root
	for i := 0; i < len(word); i += 1 {
		c := word[i]
		q, ok := p.children[c]
		if !ok {
			q = newNode()
			p.children[c] = q
		}
		p = q
	}
	if p.endOfWord {
		return false
	}
	p.endOfWord = true
	trie.count += 1
	return true
}

// Contains - true if the exact word was inserted
//
// a stored longer word does not make its prefixes contained
func (trie *Trie) Contains(word string) bool {
	p := trie.find(word)
	return nil != p && p.endOfWord
}

// internal: node for the last byte of a prefix, or nil
func (trie *Trie) find(prefix string) *node {
	p := trie.root
	for i := 0; i < len(prefix); i += 1 {
		q, ok := p.children[prefix[i]]
		if !ok {
			return nil
		}
		p = q
	}
	return p
}

// Remove - delete a word
//
// a missing word is a safe no-op returning false; nodes on the word
// path that serve no other word are pruned
func (trie *Trie) Remove(word string) bool {
	if "" == word || !trie.Contains(word) {
		return false
	}
	remove(trie.root, word, 0)
	trie.count -= 1
	return true
}

// internal: unflag the word end, then prune upwards
//
// returns true if the child link at this level should be deleted
func remove(p *node, word string, depth int) bool {
	if depth == len(word) {
		p.endOfWord = false
		return 0 == len(p.children)
	}
	c := word[depth]
	q := p.children[c]
	if remove(q, word, depth+1) {
		delete(p.children, c)
	}
	return !p.endOfWord && 0 == len(p.children)
}

// WordsWithPrefix - collect every stored word starting with the
// prefix, in ascending order
//
// an empty prefix yields every word in the trie
func (trie *Trie) WordsWithPrefix(prefix string) []string {
	words := []string{}
	p := trie.find(prefix)
	if nil == p {
		return words
	}
	collect(p, []byte(prefix), &words)
	sort.Strings(words)
	return words
}

// internal: depth-first word builder
func collect(p *node, word []byte, words *[]string) {
	if p.endOfWord {
		*words = append(*words, string(word))
	}
	for c, q := range p.children {
		collect(q, append(word, c), words)
	}
}

// Clear - remove all words
func (trie *Trie) Clear() {
	trie.root = newNode()
	trie.count = 0
}
