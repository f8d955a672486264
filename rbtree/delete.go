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

// Delete removes every stored copy of the exact pair (key, value) and returns
// how many nodes were removed. Deleting a pair that is not present is a no-op
// and returns 0.
func (t *Tree) Delete(key, value string) int {
	removed := 0
	for {
		z := t.findPair(key, value)
		if z == nil {
			return removed
		}
		t.removeNode(z)
		removed++
	}
}

// Contains reports whether the exact pair (key, value) is stored.
func (t *Tree) Contains(key, value string) bool {
	return t.findPair(key, value) != nil
}

// findPair locates a node holding (key, value). It starts at the node the
// search path ends on and then walks forward and backward through the run of
// equal keys, since duplicates may sit on either side after rotations.
func (t *Tree) findPair(key, value string) *Node {
	z := search(t.root, key)
	if z == nil {
		return nil
	}
	if z.value == value {
		return z
	}
	for n := successor(z); n != nil && n.key == key; n = successor(n) {
		if n.value == value {
			return n
		}
	}
	for n := predecessor(z); n != nil && n.key == key; n = predecessor(n) {
		if n.value == value {
			return n
		}
	}
	return nil
}

// removeNode unlinks z from the tree and rebalances.
func (t *Tree) removeNode(z *Node) {
	var x, xParent *Node
	y := z
	removedColor := y.color

	switch {
	case z.left == nil:
		x = z.right
		xParent = z.parent
		t.transplant(z, z.right)
	case z.right == nil:
		x = z.left
		xParent = z.parent
		t.transplant(z, z.left)
	default:
		// y is z's successor; it takes over z's position and colour.
		y = minimum(z.right)
		removedColor = y.color
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	z.left, z.right, z.parent = nil, nil, nil
	t.size--

	if removedColor == Black {
		t.fixDelete(x, xParent)
	}
}

// fixDelete restores equal black-heights after a black node was removed. x is
// the node that moved into the removed position (possibly nil) and parent is
// its parent, tracked separately because x may be nil.
func (t *Tree) fixDelete(x, parent *Node) {
	for x != t.root && isBlack(x) {
		if x == parent.left {
			w := parent.right
			if isRed(w) {
				w.color = Black
				parent.color = Red
				t.rotateLeft(parent)
				w = parent.right
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = Red
				x = parent
				parent = x.parent
				continue
			}
			if isBlack(w.right) {
				setColor(w.left, Black)
				w.color = Red
				t.rotateRight(w)
				w = parent.right
			}
			w.color = parent.color
			parent.color = Black
			setColor(w.right, Black)
			t.rotateLeft(parent)
			x = t.root
		} else {
			w := parent.left
			if isRed(w) {
				w.color = Black
				parent.color = Red
				t.rotateRight(parent)
				w = parent.left
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = Red
				x = parent
				parent = x.parent
				continue
			}
			if isBlack(w.left) {
				setColor(w.right, Black)
				w.color = Red
				t.rotateLeft(w)
				w = parent.left
			}
			w.color = parent.color
			parent.color = Black
			setColor(w.left, Black)
			t.rotateRight(parent)
			x = t.root
		}
	}
	setColor(x, Black)
}
