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
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cybrota/redblack/rbtree"
)

// Overridden at release time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	asciiLogo := `
█▀█ █▀▀ █▀▄ █▄▄ █   ▄▀█ █▀▀ █▄▀
█▀▄ ██▄ █▄▀ █▄█ █▄▄ █▀█ █▄▄ █ █
A sorted string multimap on a red-black tree, driven by a tiny command language [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Execute interpreter commands from a file or stdin",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run reads one command per line and writes results to stdout`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			file, _ := cmd.Flags().GetString("file")
			if err := runInterpreter(file, loadConfigOrDefault()); err != nil {
				log.Fatalf("Error running commands: %v", err)
			}
		},
	}
	cmdRun.Flags().StringP("file", "f", "", "read commands from this file instead of stdin")

	var cmdTUI = &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive interpreter UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `TUI shows a command prompt next to a live view of the tree`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runBubbleTeaApp(rbtree.New(), loadConfigOrDefault()); err != nil {
				log.Fatalf("Error running TUI: %v", err)
			}
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Insert and delete random pairs, then verify the tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Bench stresses the tree with random keys and checks every red-black rule afterwards`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			pairs, _ := cmd.Flags().GetInt("pairs")
			keySpace, _ := cmd.Flags().GetInt("key-space")
			seed, _ := cmd.Flags().GetInt64("seed")
			noProgress, _ := cmd.Flags().GetBool("no-progress")

			report, err := RunBench(BenchOptions{
				Pairs:        pairs,
				KeySpace:     keySpace,
				Seed:         seed,
				ShowProgress: !noProgress,
				Progress:     os.Stderr,
			})
			if err != nil {
				log.Fatalf("Bench failed: %v", err)
			}
			report.WriteTo(os.Stdout)
		},
	}
	cmdBench.Flags().Int("pairs", 100000, "number of pairs to insert")
	cmdBench.Flags().Int("key-space", 0, "draw keys from this many distinct values (default: pairs)")
	cmdBench.Flags().Int64("seed", 42, "random seed")
	cmdBench.Flags().Bool("no-progress", false, "hide progress bars")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Redblack usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the redblack CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the current settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings creates ~/.redblack.yaml when missing and prints it`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(os.Stdout)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Redblack version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "redblack",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to reading commands from stdin when no subcommand is provided
			if err := runInterpreter("", loadConfigOrDefault()); err != nil {
				log.Fatalf("Error running commands: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdRun, cmdTUI, cmdBench, cmdUsage, cmdSettings, cmdVersion)
	rootCmd.Execute()
}

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		return DefaultConfig()
	}
	return config
}

// runInterpreter feeds path, or stdin when path is empty, to a fresh tree.
func runInterpreter(path string, config *Config) error {
	var in io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		in = f
	}
	return NewInterpreter(rbtree.New(), os.Stdout, config).Run(in)
}
