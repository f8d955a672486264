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
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/redblack/rbtree"
)

var ErrMissingArgument = errors.New("missing argument")

// Interpreter reads textual commands and applies them to a tree:
//
//	insert <key> <value...>
//	find <key>
//	delete <key> <value...>
//	print
//	quit
//
// plus help, count, verify and clear.
type Interpreter struct {
	tree    *rbtree.Tree
	out     io.Writer
	config  *Config
	printer *TreePrinter

	findCache *cache.Cache // nil when disabled
	keys      *KeyFilter   // nil when disabled
}

func NewInterpreter(tree *rbtree.Tree, out io.Writer, config *Config) *Interpreter {
	if config == nil {
		config = DefaultConfig()
	}
	in := &Interpreter{
		tree:    tree,
		out:     out,
		config:  config,
		printer: NewTreePrinter(lipgloss.NewRenderer(out), config.Print),
	}
	if config.Cache.Enabled {
		in.findCache = NewFindCache(config.Cache)
	}
	if config.Bloom.Enabled {
		in.keys = NewKeyFilter(config.Bloom)
		for k := range tree.Keys() {
			in.keys.Add(k)
		}
	}
	return in
}

// Run executes commands from r until end of input or quit. A bad command is
// logged and skipped; only read errors are returned.
func (in *Interpreter) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for {
		if prompt := in.config.Interpreter.Prompt; prompt != "" {
			fmt.Fprint(in.out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		quit, err := in.Execute(scanner.Text())
		if err != nil {
			log.Printf("%v", err)
		}
		if quit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}
	return nil
}

// Execute runs a single command line and reports whether it asked to quit.
func (in *Interpreter) Execute(line string) (bool, error) {
	cmd, rest, err := nextWord(line)
	if err != nil {
		return false, err
	}
	if cmd == "" {
		return false, nil
	}

	switch cmd {
	case "insert":
		key, value, err := keyValueArgs(cmd, rest)
		if err != nil {
			return false, err
		}
		in.insert(key, value)
	case "find":
		key, _, err := nextWord(rest)
		if err != nil {
			return false, err
		}
		if key == "" {
			return false, fmt.Errorf("%s: %w: expected <key>", cmd, ErrMissingArgument)
		}
		for _, value := range in.find(key) {
			fmt.Fprintf(in.out, "%s %s\n", key, value)
		}
	case "delete":
		key, value, err := keyValueArgs(cmd, rest)
		if err != nil {
			return false, err
		}
		in.delete(key, value)
	case "print":
		if err := in.printer.Print(in.out, in.tree); err != nil {
			return false, fmt.Errorf("print: %w", err)
		}
	case "quit":
		return true, nil
	case "help":
		fmt.Fprint(in.out, renderInterpreterHelp(80))
	case "count":
		fmt.Fprintln(in.out, in.tree.Len())
	case "verify":
		if err := in.tree.Verify(); err != nil {
			fmt.Fprintf(in.out, "invalid: %v\n", err)
		} else {
			fmt.Fprintln(in.out, "ok")
		}
	case "clear":
		in.clear()
	default:
		if in.config.Interpreter.WarnUnknown {
			log.Printf("unknown command %q ignored", cmd)
		}
	}
	return false, nil
}

func (in *Interpreter) insert(key, value string) {
	in.tree.Insert(key, value)
	if in.keys != nil {
		in.keys.Add(key)
	}
	if in.findCache != nil {
		InvalidateFindResult(in.findCache, key)
	}
}

func (in *Interpreter) find(key string) []string {
	if in.keys != nil && !in.keys.MayContain(key) {
		return nil
	}
	if in.findCache != nil {
		if values, ok := GetFindResult(in.findCache, key); ok {
			return values
		}
	}
	values := in.tree.Find(key)
	if in.findCache != nil {
		CacheFindResult(in.findCache, key, values)
	}
	return values
}

func (in *Interpreter) delete(key, value string) {
	if in.keys != nil && !in.keys.MayContain(key) {
		return
	}
	if in.tree.Delete(key, value) > 0 && in.findCache != nil {
		InvalidateFindResult(in.findCache, key)
	}
}

func (in *Interpreter) clear() {
	in.tree.Clear()
	if in.keys != nil {
		in.keys.Reset()
	}
	if in.findCache != nil {
		in.findCache.Flush()
	}
}

// keyValueArgs splits the text after "<cmd> " into a key and a value. The
// key is one word and may be quoted. The value is everything after the single
// separator that follows the key, kept byte for byte.
func keyValueArgs(cmd, rest string) (string, string, error) {
	key, after, err := nextWord(rest)
	if err != nil {
		return "", "", err
	}
	if key == "" || len(after) < 2 {
		return "", "", fmt.Errorf("%s: %w: expected <key> <value>", cmd, ErrMissingArgument)
	}
	return key, after[1:], nil
}

// nextWord returns the first word of s and the raw text following it. Leading
// blanks are skipped. A word containing quotes is unquoted with shellwords;
// any other word is returned as typed.
func nextWord(s string) (word, rest string, err error) {
	s = strings.TrimLeft(s, " \t")
	end, quoted := wordEnd(s)
	raw, rest := s[:end], s[end:]
	if !quoted {
		return raw, rest, nil
	}

	args, err := shellwords.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse %q: %w", raw, err)
	}
	if len(args) != 1 {
		return "", "", fmt.Errorf("failed to parse %q: expected one word, got %d", raw, len(args))
	}
	return args[0], rest, nil
}

// wordEnd finds the first blank outside quotes and reports whether the word
// before it contains a quote.
func wordEnd(s string) (int, bool) {
	var quote rune
	quoted, escaped := false, false
	for i, r := range s {
		switch {
		case escaped:
			escaped = false
		case quote != 0:
			if r == quote {
				quote = 0
			} else if r == '\\' && quote == '"' {
				escaped = true
			}
		case r == '\'' || r == '"':
			quote, quoted = r, true
		case r == ' ' || r == '\t':
			return i, quoted
		}
	}
	return len(s), quoted
}
