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

import (
	"errors"
	"fmt"
)

// Errors returned by Verify, one per broken rule.
var (
	ErrRedRoot      = errors.New("root is red")
	ErrDoubleRed    = errors.New("red node has a red child")
	ErrBlackHeight  = errors.New("black-height differs between paths")
	ErrKeyOrder     = errors.New("keys out of order")
	ErrParentLink   = errors.New("child does not point back to its parent")
	ErrSizeMismatch = errors.New("stored size does not match node count")
)

// Verify checks the red-black rules and the ordering of the tree:
//  1. the root is black,
//  2. a red node has no red child,
//  3. every path from a node down to an empty leaf has the same number of black nodes,
//  4. an in-order walk yields non-decreasing keys,
//  5. parent links and the cached size agree with the shape of the tree.
//
// It returns nil when all hold, otherwise an error wrapping one of the Err values.
func (t *Tree) Verify() error {
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree with size %d", ErrSizeMismatch, t.size)
		}
		return nil
	}
	if t.root.color == Red {
		return ErrRedRoot
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrParentLink)
	}

	count := 0
	if _, err := checkSubtree(t.root, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: counted %d, stored %d", ErrSizeMismatch, count, t.size)
	}

	prev := minimum(t.root)
	for n := successor(prev); n != nil; n = successor(n) {
		if n.key < prev.key {
			return fmt.Errorf("%w: %q follows %q", ErrKeyOrder, n.key, prev.key)
		}
		prev = n
	}
	return nil
}

// checkSubtree returns the number of black nodes below n on any path to an
// empty leaf. Recursion depth is bounded by the tree height.
func checkSubtree(n *Node, count *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	*count++

	for _, child := range [2]*Node{n.left, n.right} {
		if child == nil {
			continue
		}
		if child.parent != n {
			return 0, fmt.Errorf("%w: node %q", ErrParentLink, child.key)
		}
		if n.color == Red && child.color == Red {
			return 0, fmt.Errorf("%w: %q -> %q", ErrDoubleRed, n.key, child.key)
		}
	}

	left, err := checkSubtree(n.left, count)
	if err != nil {
		return 0, err
	}
	right, err := checkSubtree(n.right, count)
	if err != nil {
		return 0, err
	}
	if n.left != nil && n.left.color == Black {
		left++
	}
	if n.right != nil && n.right.color == Black {
		right++
	}
	if left != right {
		return 0, fmt.Errorf("%w: at %q left=%d right=%d", ErrBlackHeight, n.key, left, right)
	}
	return left, nil
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	type frame struct {
		node  *Node
		depth int
	}
	height := 0
	stack := []frame{}
	if t.root != nil {
		stack = append(stack, frame{t.root, 1})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		height = max(height, f.depth)
		if f.node.left != nil {
			stack = append(stack, frame{f.node.left, f.depth + 1})
		}
		if f.node.right != nil {
			stack = append(stack, frame{f.node.right, f.depth + 1})
		}
	}
	return height
}

// BlackHeight returns the number of black nodes on the leftmost path from the
// root to an empty leaf, not counting the root. It is only meaningful for a
// tree that passes Verify.
func (t *Tree) BlackHeight() int {
	bh := 0
	if t.root == nil {
		return bh
	}
	for n := t.root.left; n != nil; n = n.left {
		if n.color == Black {
			bh++
		}
	}
	return bh
}
