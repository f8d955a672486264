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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cybrota/redblack/rbtree"
)

func submit(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(line)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func sizedModel(t *testing.T, tree *rbtree.Tree) Model {
	t.Helper()
	config := DefaultConfig()
	config.Interpreter.WarnUnknown = false
	next, _ := InitialModel(tree, config).Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func TestModelExecutesCommands(t *testing.T) {
	tree := rbtree.New()
	m := sizedModel(t, tree)

	m, _ = submit(t, m, "insert cat 1")
	m, _ = submit(t, m, "insert dog 2")
	m, _ = submit(t, m, "find cat")

	if tree.Len() != 2 {
		t.Fatalf("tree has %d pairs; want 2", tree.Len())
	}
	if m.lastOutput != "cat 1" {
		t.Errorf("lastOutput = %q; want %q", m.lastOutput, "cat 1")
	}
	if len(m.history) != 3 {
		t.Errorf("history has %d entries; want 3", len(m.history))
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}
	if view := m.View(); !strings.Contains(view, "2 pairs") {
		t.Errorf("view does not show the pair count:\n%s", view)
	}
}

func TestModelShowsErrors(t *testing.T) {
	m := sizedModel(t, rbtree.New())
	m, _ = submit(t, m, "insert lonely")
	if !strings.Contains(m.lastOutput, "missing argument") {
		t.Errorf("lastOutput = %q; want the missing argument error", m.lastOutput)
	}
}

func TestModelIgnoresBlankInput(t *testing.T) {
	m := sizedModel(t, rbtree.New())
	m, cmd := submit(t, m, "   ")
	if cmd != nil {
		t.Error("blank input should not produce a command")
	}
	if len(m.history) != 0 {
		t.Errorf("blank input recorded in history: %v", m.history)
	}
}

func TestModelQuit(t *testing.T) {
	m := sizedModel(t, rbtree.New())
	_, cmd := submit(t, m, "quit")
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
}

func TestModelTabSwitchesFocus(t *testing.T) {
	m := sizedModel(t, rbtree.New())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if !m.focusOnTree || m.input.Focused() {
		t.Error("tab should move focus to the tree pane")
	}

	// Enter does nothing while the tree pane has focus.
	m, _ = submit(t, m, "insert a x")
	if len(m.history) != 0 {
		t.Error("command ran while the tree pane had focus")
	}
}

func TestModelTooSmall(t *testing.T) {
	next, _ := InitialModel(rbtree.New(), DefaultConfig()).Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	if view := next.(Model).View(); !strings.Contains(view, "too small") {
		t.Errorf("View() = %q; want the resize hint", view)
	}
}
