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

// Color is the red-black colour of a node.
type Color bool

const (
	Red   Color = true
	Black Color = false
)

// String returns the single letter used when printing a tree ("R" or "B").
func (c Color) String() string {
	if c == Red {
		return "R"
	}
	return "B"
}

// Node holds one stored (key, value) pair.
//
// A nil *Node stands for the empty leaf below every node and for the missing
// parent above the root. It is always treated as Black.
type Node struct {
	key   string
	value string
	color Color

	left, right *Node
	// parent is a back-reference used for upward walks only.
	parent *Node
}

func newNode(key, value string) *Node {
	return &Node{key: key, value: value, color: Red}
}

// Key returns the key the node was created with.
func (n *Node) Key() string { return n.key }

// Value returns the value the node was created with.
func (n *Node) Value() string { return n.value }

// Color returns the current colour of the node.
func (n *Node) Color() Color { return n.color }

// Entry is one line of a reverse in-order enumeration.
type Entry struct {
	Depth int
	Color Color
	Key   string
	Value string
}

func colorOf(n *Node) Color {
	if n == nil {
		return Black
	}
	return n.color
}

func setColor(n *Node, c Color) {
	if n != nil {
		n.color = c
	}
}

func isRed(n *Node) bool   { return colorOf(n) == Red }
func isBlack(n *Node) bool { return colorOf(n) == Black }
