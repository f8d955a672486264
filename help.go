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
	"runtime"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/charmbracelet/glamour"
)

// Single quotes become code spans so glamour keeps the <placeholders>.
var commandReference = strings.ReplaceAll(`
# Commands
| Command | Effect |
|---------|--------|
| 'insert <key> <value>' | Store the pair. Keys may hold many values |
| 'find <key>' | Print every value of the key as "key value" |
| 'delete <key> <value>' | Remove every copy of the exact pair |
| 'print' | Show the tree sideways, highest key first, with node colours |
| 'count' | Print the number of stored pairs |
| 'verify' | Check the red-black rules |
| 'clear' | Remove everything |
| 'help' | Show this reference |
| 'quit' | Leave the interpreter (end of input works too) |

Quote keys containing spaces: 'insert "new york" big apple'. The value is the rest of the line, kept as typed.
`, "'", "`")

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Redblack %s**

A sorted string multimap backed by a red-black tree, driven by a tiny command language.
Insertion, deletion and lookup stay O(log n) no matter the insertion order.

Built with Go %s

# 1. Usage
* redblack < commands.txt
* redblack run --file commands.txt
* redblack tui
* redblack bench --pairs 100000
%s
# Settings
Run "redblack settings" to create and show ~/.redblack.yaml

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), commandReference)
	result := markdown.Render(message, 80, 3)
	return string(result)
}

// renderInterpreterHelp renders the command reference for the interpreter
// and TUI. It falls back to the raw markdown if glamour fails.
func renderInterpreterHelp(width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return commandReference
	}
	out, err := renderer.Render(commandReference)
	if err != nil {
		return commandReference
	}
	return out
}
