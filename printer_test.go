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
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/redblack/rbtree"
)

func plainPrinter(indent int) *TreePrinter {
	return NewTreePrinter(lipgloss.NewRenderer(&bytes.Buffer{}), PrintConfig{Indent: indent, Color: false})
}

func TestFormatEntry(t *testing.T) {
	tests := []struct {
		indent int
		entry  rbtree.Entry
		want   string
	}{
		{4, rbtree.Entry{Depth: 0, Color: rbtree.Black, Key: "cat", Value: "1"}, "   B cat 1"},
		{4, rbtree.Entry{Depth: 2, Color: rbtree.Red, Key: "dog", Value: "2"}, "           R dog 2"},
		{1, rbtree.Entry{Depth: 0, Color: rbtree.Black, Key: "k", Value: "v"}, "B k v"},
		{2, rbtree.Entry{Depth: 1, Color: rbtree.Red, Key: "k", Value: "two words"}, "   R k two words"},
		// A zero indent falls back to the default.
		{0, rbtree.Entry{Depth: 0, Color: rbtree.Black, Key: "k", Value: "v"}, "   B k v"},
	}

	for _, tc := range tests {
		if got := plainPrinter(tc.indent).FormatEntry(tc.entry); got != tc.want {
			t.Errorf("FormatEntry(%+v) with indent %d = %q; want %q", tc.entry, tc.indent, got, tc.want)
		}
	}
}

func TestPrintHighestKeyFirst(t *testing.T) {
	tree := rbtree.New()
	for _, k := range []string{"d", "b", "f", "a", "c", "e", "g"} {
		tree.Insert(k, "v"+k)
	}

	var buf bytes.Buffer
	if err := plainPrinter(4).Print(&buf, tree); err != nil {
		t.Fatalf("Print: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines; want 7:\n%s", len(lines), buf.String())
	}
	want := []string{"g", "f", "e", "d", "c", "b", "a"}
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 3 || fields[1] != want[i] || fields[2] != "v"+want[i] {
			t.Errorf("line %d = %q; want key %q", i, line, want[i])
		}
	}
	// The root is the only line with the minimum indentation.
	if !strings.HasPrefix(lines[3], "   B d") {
		t.Errorf("root line = %q; want it at depth 0", lines[3])
	}
}

func TestRenderEmptyTree(t *testing.T) {
	if got := plainPrinter(4).Render(rbtree.New()); got != "" {
		t.Errorf("Render(empty) = %q; want empty", got)
	}
}

func TestColorizedEntryKeepsLetter(t *testing.T) {
	p := NewTreePrinter(lipgloss.NewRenderer(&bytes.Buffer{}), PrintConfig{Indent: 4, Color: true})
	got := p.FormatEntry(rbtree.Entry{Depth: 0, Color: rbtree.Red, Key: "k", Value: "v"})
	if !strings.Contains(got, "R") || !strings.HasSuffix(got, " k v") {
		t.Errorf("colorized entry = %q; want the R letter and the pair", got)
	}
}
