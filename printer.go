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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/redblack/rbtree"
)

// TreePrinter writes a tree sideways: highest key on top, one node per line,
// indented by depth and prefixed with the node colour.
type TreePrinter struct {
	indent   int
	colorize bool
	red      lipgloss.Style
	black    lipgloss.Style
}

// NewTreePrinter styles colour letters with r. A renderer bound to a writer
// that is not a colour terminal produces plain letters.
func NewTreePrinter(r *lipgloss.Renderer, cfg PrintConfig) *TreePrinter {
	indent := cfg.Indent
	if indent < 1 {
		indent = defaultConfig.Print.Indent
	}
	scheme := GetColorScheme()
	return &TreePrinter{
		indent:   indent,
		colorize: cfg.Color,
		red:      r.NewStyle().Foreground(scheme.RedNode).Bold(true),
		black:    r.NewStyle().Foreground(scheme.BlackNode),
	}
}

// FormatEntry renders one node. The colour letter is right-aligned in a field
// of (depth+1)*indent columns.
func (p *TreePrinter) FormatEntry(e rbtree.Entry) string {
	letter := e.Color.String()
	if p.colorize {
		if e.Color == rbtree.Red {
			letter = p.red.Render(letter)
		} else {
			letter = p.black.Render(letter)
		}
	}
	pad := strings.Repeat(" ", e.Depth*p.indent+p.indent-1)
	return pad + letter + " " + e.Key + " " + e.Value
}

func (p *TreePrinter) Print(w io.Writer, tree *rbtree.Tree) error {
	for e := range tree.Enumerate() {
		if _, err := fmt.Fprintln(w, p.FormatEntry(e)); err != nil {
			return err
		}
	}
	return nil
}

// Render returns the whole tree as a string.
func (p *TreePrinter) Render(tree *rbtree.Tree) string {
	var sb strings.Builder
	_ = p.Print(&sb, tree)
	return sb.String()
}
