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

// Insert stores the pair (key, value). Existing pairs with the same key, or
// even the same key and value, are kept: the tree is a multimap.
func (t *Tree) Insert(key, value string) {
	z := newNode(key, value)

	var parent *Node
	current := t.root
	for current != nil {
		parent = current
		if z.key < current.key {
			current = current.left
		} else {
			current = current.right
		}
	}

	z.parent = parent
	if parent == nil {
		t.root = z
	} else if z.key < parent.key {
		parent.left = z
	} else {
		parent.right = z
	}
	t.size++

	t.fixInsert(z)
}

// fixInsert restores the colour rules after z was attached as a red leaf.
// At most two rotations are performed.
func (t *Tree) fixInsert(z *Node) {
	for isRed(z.parent) {
		// A red parent is never the root, so the grandparent exists.
		grandparent := z.parent.parent
		if z.parent == grandparent.left {
			uncle := grandparent.right
			if isRed(uncle) {
				z.parent.color = Black
				uncle.color = Black
				grandparent.color = Red
				z = grandparent
				continue
			}
			if z == z.parent.right {
				z = z.parent
				t.rotateLeft(z)
			}
			z.parent.color = Black
			z.parent.parent.color = Red
			t.rotateRight(z.parent.parent)
		} else {
			uncle := grandparent.left
			if isRed(uncle) {
				z.parent.color = Black
				uncle.color = Black
				grandparent.color = Red
				z = grandparent
				continue
			}
			if z == z.parent.left {
				z = z.parent
				t.rotateRight(z)
			}
			z.parent.color = Black
			z.parent.parent.color = Red
			t.rotateLeft(z.parent.parent)
		}
	}
	t.root.color = Black
}
