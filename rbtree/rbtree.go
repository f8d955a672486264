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

// Package rbtree implements a sorted string multimap on top of a red-black
// tree. A key may be stored with several values, and the same (key, value)
// pair may be stored more than once.
//
// Insertion, deletion and lookup are O(log n). Equal keys are routed to the
// right on insertion, so all values of a key sit next to each other in the
// in-order sequence and are collected with successor/predecessor walks.
//
// A Tree is not safe for concurrent use.
package rbtree

// Tree is an ordered multimap from string keys to string values.
// The zero value is an empty tree ready to use.
type Tree struct {
	root *Node
	size int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of stored (key, value) pairs.
func (t *Tree) Len() int { return t.size }

// Empty reports whether the tree holds no pairs.
func (t *Tree) Empty() bool { return t.root == nil }

// Min returns the pair with the smallest key.
func (t *Tree) Min() (key, value string, ok bool) {
	if t.root == nil {
		return "", "", false
	}
	n := minimum(t.root)
	return n.key, n.value, true
}

// Max returns the pair with the largest key.
func (t *Tree) Max() (key, value string, ok bool) {
	if t.root == nil {
		return "", "", false
	}
	n := maximum(t.root)
	return n.key, n.value, true
}

// Clear removes every pair. Nodes are unlinked iteratively so that deep
// trees never grow the call stack.
func (t *Tree) Clear() {
	stack := []*Node{}
	if t.root != nil {
		stack = append(stack, t.root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		n.left, n.right, n.parent = nil, nil, nil
	}
	t.root = nil
	t.size = 0
}

// rotateLeft lifts x's right child y into x's place. x becomes y's left
// child and y's old left subtree becomes x's right subtree. In-order key
// sequence is unchanged.
func (t *Tree) rotateLeft(x *Node) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

// rotateRight is the mirror of rotateLeft: y's left child x takes y's place.
func (t *Tree) rotateRight(y *Node) {
	x := y.left
	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == nil {
		t.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}

// search descends from n and returns the first node on the search path whose
// key equals key, or nil.
func search(n *Node, key string) *Node {
	for n != nil && n.key != key {
		if key < n.key {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n
}

func minimum(n *Node) *Node {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func maximum(n *Node) *Node {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the next node in key order, or nil after the last one.
func successor(n *Node) *Node {
	if n.right != nil {
		return minimum(n.right)
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

// predecessor returns the previous node in key order, or nil before the first one.
func predecessor(n *Node) *Node {
	if n.left != nil {
		return maximum(n.left)
	}
	p := n.parent
	for p != nil && n == p.left {
		n = p
		p = p.parent
	}
	return p
}

// transplant puts v in u's place under u's parent. u's children are left alone.
func (t *Tree) transplant(u, v *Node) {
	if u.parent == nil {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}
