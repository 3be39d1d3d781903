// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2024 Caliper Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/caliper-works/structures/avl"
	"github.com/caliper-works/structures/bst"
	"github.com/caliper-works/structures/dlist"
	"github.com/caliper-works/structures/hashtable"
	"github.com/caliper-works/structures/mtree"
	"github.com/caliper-works/structures/pqueue"
	"github.com/caliper-works/structures/queue"
	"github.com/caliper-works/structures/stack"
	"github.com/caliper-works/structures/trie"
)

// integer key for the ordered containers
type intItem int

func (i intItem) Compare(x interface{}) int {
	j := x.(intItem)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

func (i intItem) String() string {
	return fmt.Sprintf("%d", int(i))
}

// one demonstration routine per container
var scenarios = map[string]func(log *logger.L, conf *Configuration){
	"avl":       demoAVL,
	"bst":       demoBST,
	"dlist":     demoDList,
	"stack":     demoStack,
	"queue":     demoQueue,
	"pqueue":    demoPQueue,
	"hashtable": demoHashtable,
	"trie":      demoTrie,
	"mtree":     demoMTree,
}

func scenarioNames() string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}

// runScenario - execute one named demonstration, or every one for "all"
func runScenario(name string, conf *Configuration) error {
	if "all" == name {
		for _, n := range strings.Fields(scenarioNames()) {
			log := logger.New(n)
			scenarios[n](log, conf)
		}
		return nil
	}
	demo, ok := scenarios[name]
	if !ok {
		return fmt.Errorf("unknown scenario: %q", name)
	}
	demo(logger.New(name), conf)
	return nil
}

// shuffled keys 0…n-1 from the configured seed
func permutation(conf *Configuration) []int {
	r := rand.New(rand.NewSource(conf.Seed))
	return r.Perm(conf.Items)
}

func demoAVL(log *logger.L, conf *Configuration) {
	tree := avl.New()
	for _, k := range permutation(conf) {
		tree.Insert(intItem(k), fmt.Sprintf("data-%d", k))
	}
	log.Infof("count: %d  height: %d", tree.Count(), tree.Height())
	log.Infof("balanced: %t  parent links: %t  counts: %t", tree.IsBalanced(), tree.CheckUp(), tree.CheckCounts())

	node, index := tree.Search(intItem(conf.Items / 2))
	if nil != node {
		log.Infof("key: %v  index: %d  value: %v", node.Key(), index, node.Value())
	}

	// remove every second key, the tree must stay balanced
	for k := 0; k < conf.Items; k += 2 {
		tree.Delete(intItem(k))
	}
	log.Infof("after deletions  count: %d  height: %d  balanced: %t", tree.Count(), tree.Height(), tree.IsBalanced())

	n := 0
	tree.Walk(avl.InOrder, func(node *avl.Node) bool {
		n += 1
		return false
	})
	log.Infof("in-order visited: %d", n)
}

func demoBST(log *logger.L, conf *Configuration) {
	ordered := bst.New()
	degenerate := bst.New()
	for _, k := range permutation(conf) {
		ordered.Insert(intItem(k))
	}
	for k := 0; k < conf.Items; k += 1 {
		degenerate.Insert(intItem(k))
	}

	// sorted input degrades a plain binary search tree to a list
	log.Infof("random insert height: %d", ordered.Height())
	log.Infof("sorted insert height: %d", degenerate.Height())

	degenerate.Remove(intItem(0))
	log.Infof("after remove  count: %d", degenerate.Count())
}

func demoDList(log *logger.L, conf *Configuration) {
	list := dlist.New()
	for i := 0; i < conf.Items; i += 1 {
		list.PushBack(i)
	}
	log.Infof("count: %d  front: %v  back: %v", list.Count(), list.Front().Value(), list.Back().Value())

	list.Reverse()
	log.Infof("reversed  front: %v  back: %v", list.Front().Value(), list.Back().Value())

	list.Remove(conf.Items / 2)
	log.Infof("after remove  count: %d", list.Count())
}

func demoStack(log *logger.L, conf *Configuration) {
	s := stack.New()
	for i := 0; i < conf.Items; i += 1 {
		s.Push(i)
	}
	log.Infof("count: %d  top: %v", s.Count(), s.Top())
	for !s.IsEmpty() {
		s.Pop()
	}
	log.Info("drained")
}

func demoQueue(log *logger.L, conf *Configuration) {
	q := queue.New()
	for i := 0; i < conf.Items; i += 1 {
		q.Enqueue(i)
	}
	log.Infof("count: %d  front: %v  back: %v", q.Count(), q.Front(), q.Back())
	first := q.Dequeue()
	log.Infof("dequeued: %v  count: %d", first, q.Count())
}

func demoPQueue(log *logger.L, conf *Configuration) {
	pq := pqueue.New()
	for _, k := range permutation(conf) {
		pq.Insert(intItem(k))
	}
	log.Infof("count: %d  min: %v", pq.Count(), pq.Peek())

	// items must drain in ascending order
	previous := pq.RemoveMin().(intItem)
	inOrder := true
	for !pq.IsEmpty() {
		current := pq.RemoveMin().(intItem)
		if current.Compare(previous) < 0 {
			inOrder = false
		}
		previous = current
	}
	log.Infof("drained in order: %t", inOrder)
}

func demoHashtable(log *logger.L, conf *Configuration) {
	table := hashtable.New()
	for i := 0; i < conf.Items; i += 1 {
		table.Add(fmt.Sprintf("key-%04d", i), i)
	}
	log.Infof("count: %d", table.Count())

	value, ok := table.Get("key-0000")
	log.Infof("lookup  ok: %t  value: %v", ok, value)

	table.Remove("key-0000")
	log.Infof("after remove  contains: %t  count: %d", table.Contains("key-0000"), table.Count())
}

func demoTrie(log *logger.L, conf *Configuration) {
	tr := trie.New()
	for _, w := range conf.Words {
		tr.Insert(w)
	}
	log.Infof("words: %d", tr.Count())

	for _, prefix := range []string{"a", "be", "do"} {
		log.Infof("prefix %q: %v", prefix, tr.WordsWithPrefix(prefix))
	}

	if len(conf.Words) > 0 {
		w := conf.Words[0]
		tr.Remove(w)
		log.Infof("removed %q  contains: %t", w, tr.Contains(w))
	}
}

func demoMTree(log *logger.L, conf *Configuration) {
	tree := mtree.New(3)
	for i := 0; i < conf.Items; i += 1 {
		tree.Insert(i, mtree.BreadthFirst)
	}
	log.Infof("count: %d  fan-out: %d", tree.Count(), tree.Order())
	log.Infof("contains %d: %t", conf.Items-1, tree.Contains(conf.Items-1, mtree.DepthFirst))

	tree.Remove(1)
	log.Infof("after subtree remove  count: %d", tree.Count())
}
