// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rbtree

import "iter"

// Find returns every value stored under key: the node reached by the search
// path first, then its successors with the same key, then its predecessors
// with the same key. The result is empty (nil) when key is absent.
func (t *Tree) Find(key string) []string {
	x := search(t.root, key)
	if x == nil {
		return nil
	}

	values := []string{x.value}
	for n := successor(x); n != nil && n.key == key; n = successor(n) {
		values = append(values, n.value)
	}
	for n := predecessor(x); n != nil && n.key == key; n = predecessor(n) {
		values = append(values, n.value)
	}
	return values
}

// Enumerate yields the tree from the highest key to the lowest (right
// subtree, node, left subtree), with each node's depth below the root and
// its colour. Depth 0 is the root.
func (t *Tree) Enumerate() iter.Seq[Entry] {
	type frame struct {
		node  *Node
		depth int
	}
	return func(yield func(Entry) bool) {
		stack := []frame{}
		current, depth := t.root, 0
		for current != nil || len(stack) > 0 {
			for current != nil {
				stack = append(stack, frame{current, depth})
				current = current.right
				depth++
			}

			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			e := Entry{Depth: top.depth, Color: top.node.color, Key: top.node.key, Value: top.node.value}
			if !yield(e) {
				return
			}

			current, depth = top.node.left, top.depth+1
		}
	}
}

// All yields every (key, value) pair in ascending key order.
func (t *Tree) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for n := minimum(t.root); n != nil; n = successor(n) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Keys yields each distinct key once, in ascending order.
func (t *Tree) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for n := minimum(t.root); n != nil; n = successor(n) {
			if p := predecessor(n); p != nil && p.key == n.key {
				continue
			}
			if !yield(n.key) {
				return
			}
		}
	}
}
