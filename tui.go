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
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/redblack/rbtree"
)

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	Command        lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		Command: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

// Model is the Bubble Tea state of the interactive interpreter.
type Model struct {
	ready bool

	input      textinput.Model
	transcript viewport.Model
	treeView   viewport.Model

	tree        *rbtree.Tree
	interpreter *Interpreter
	output      *bytes.Buffer
	printer     *TreePrinter

	history     []string
	lastOutput  string
	status      string
	focusOnTree bool

	styles *Styles
	width  int
	height int
}

func InitialModel(tree *rbtree.Tree, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "insert <key> <value> | find <key> | delete <key> <value> | print | quit"
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	transcript := viewport.New(0, 0)
	transcript.SetContent("Type a command and press enter. Try \"help\".")

	treeView := viewport.New(0, 0)

	output := &bytes.Buffer{}
	interpreter := NewInterpreter(tree, output, config)
	// Colour the tree for the real terminal, not for the capture buffer.
	printer := NewTreePrinter(lipgloss.DefaultRenderer(), config.Print)
	interpreter.printer = printer

	m := Model{
		input:       ti,
		transcript:  transcript,
		treeView:    treeView,
		tree:        tree,
		interpreter: interpreter,
		output:      output,
		printer:     printer,
		styles:      NewStyles(),
	}
	m.refreshTree()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.focusOnTree = !m.focusOnTree
			if m.focusOnTree {
				m.input.Blur()
			} else {
				m.input.Focus()
			}
			return m, nil
		case "ctrl+y":
			m.copyLastOutput()
			return m, nil
		case "enter":
			if m.focusOnTree {
				return m, nil
			}
			line := m.input.Value()
			m.input.Reset()
			if m.execute(line) {
				return m, tea.Quit
			}
			return m, nil
		}

		if m.focusOnTree {
			m.treeView, cmd = m.treeView.Update(msg)
		} else {
			m.input, cmd = m.input.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// execute runs one line through the interpreter and records its output.
// It reports whether the line asked to quit.
func (m *Model) execute(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	m.output.Reset()
	quit, err := m.interpreter.Execute(line)
	result := strings.TrimRight(m.output.String(), "\n")
	if err != nil {
		result = m.styles.ErrorMessage.Render(err.Error())
	}
	m.lastOutput = result
	m.status = ""

	entry := m.styles.Command.Render("> " + line)
	if result != "" {
		entry += "\n" + result
	}
	m.history = append(m.history, entry)
	m.transcript.SetContent(strings.Join(m.history, "\n"))
	m.transcript.GotoBottom()
	m.refreshTree()
	return quit
}

func (m *Model) refreshTree() {
	if m.tree.Empty() {
		m.treeView.SetContent("(empty)")
		return
	}
	m.treeView.SetContent(m.printer.Render(m.tree))
}

func (m *Model) copyLastOutput() {
	if m.lastOutput == "" {
		m.status = m.styles.ErrorMessage.Render("Nothing to copy yet")
		return
	}
	if err := clipboard.WriteAll(m.lastOutput); err != nil {
		m.status = m.styles.ErrorMessage.Render(fmt.Sprintf("Copy failed: %v", err))
		return
	}
	m.status = m.styles.SuccessMessage.Render("📋 Copied last output to clipboard")
}

func (m *Model) updateLayout() {
	leftWidth := m.width/2 - 2
	rightWidth := m.width - leftWidth - 6
	bodyHeight := m.height - 9

	m.input.Width = leftWidth - 4
	m.transcript.Width = leftWidth
	m.transcript.Height = max(bodyHeight, 1)
	m.treeView.Width = rightWidth
	m.treeView.Height = max(bodyHeight+3, 1)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputStyle, treeStyle := m.styles.BorderFocused, m.styles.BorderBlurred
	if m.focusOnTree {
		inputStyle, treeStyle = m.styles.BorderBlurred, m.styles.BorderFocused
	}

	inputBox := inputStyle.
		Width(m.transcript.Width + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render("💬 Commands"),
			m.transcript.View(),
			m.input.View(),
		))

	treeBox := treeStyle.
		Width(m.treeView.Width + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(fmt.Sprintf("🌳 Tree (%d pairs, height %d)", m.tree.Len(), m.tree.Height())),
			m.treeView.View(),
		))

	panes := lipgloss.JoinHorizontal(lipgloss.Top, inputBox, treeBox)
	return lipgloss.JoinVertical(lipgloss.Left, panes, m.renderHelp())
}

func (m Model) renderHelp() string {
	keys := []struct{ key, desc string }{
		{"enter", "run"},
		{"tab", "switch pane"},
		{"ctrl+y", "copy output"},
		{"esc", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, m.styles.HelpKey.Render(k.key)+" "+m.styles.HelpDesc.Render(k.desc))
	}
	footer := strings.Join(parts, "  •  ")
	if m.status != "" {
		footer += "   " + m.status
	}
	return footer
}

// runBubbleTeaApp starts the interactive interpreter
func runBubbleTeaApp(tree *rbtree.Tree, config *Config) error {
	InitializeColors()

	// Warnings would draw over the alternate screen.
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	program := tea.NewProgram(
		InitialModel(tree, config),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
