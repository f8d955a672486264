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
	"math/rand"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/redblack/rbtree"
)

type BenchOptions struct {
	Pairs        int
	KeySpace     int // keys are drawn from [0, KeySpace) so duplicates occur
	Seed         int64
	ShowProgress bool
	Progress     io.Writer
}

type BenchReport struct {
	Inserted    int
	Deleted     int
	Remaining   int
	Height      int
	BlackHeight int
	Insert      time.Duration
	Delete      time.Duration
	Verify      time.Duration
}

type benchPair struct{ key, value string }

// RunBench inserts random pairs, deletes a random half of them by exact pair
// and then checks the red-black rules and that every surviving pair is found.
func RunBench(opts BenchOptions) (*BenchReport, error) {
	if opts.Pairs <= 0 {
		return nil, fmt.Errorf("pairs must be positive, got %d", opts.Pairs)
	}
	if opts.KeySpace <= 0 {
		opts.KeySpace = opts.Pairs
	}
	r := rand.New(rand.NewSource(opts.Seed))
	tree := rbtree.New()
	report := &BenchReport{}

	pairs := make([]benchPair, opts.Pairs)
	for i := range pairs {
		pairs[i] = benchPair{key: strconv.Itoa(r.Intn(opts.KeySpace)), value: strconv.Itoa(i)}
	}

	bar := newBenchBar(opts, opts.Pairs, "🌱 Inserting...")
	start := time.Now()
	for _, p := range pairs {
		tree.Insert(p.key, p.value)
		if bar != nil {
			bar.Add(1)
		}
	}
	report.Insert = time.Since(start)
	report.Inserted = len(pairs)
	finishBar(bar)

	r.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	doomed, survivors := pairs[:len(pairs)/2], pairs[len(pairs)/2:]

	bar = newBenchBar(opts, len(doomed), "🪓 Deleting...")
	start = time.Now()
	for _, p := range doomed {
		report.Deleted += tree.Delete(p.key, p.value)
		if bar != nil {
			bar.Add(1)
		}
	}
	report.Delete = time.Since(start)
	finishBar(bar)

	start = time.Now()
	if err := tree.Verify(); err != nil {
		return report, fmt.Errorf("tree invalid after deletes: %w", err)
	}
	for _, p := range survivors {
		if !tree.Contains(p.key, p.value) {
			return report, fmt.Errorf("surviving pair (%s, %s) not found", p.key, p.value)
		}
	}
	report.Verify = time.Since(start)

	report.Remaining = tree.Len()
	report.Height = tree.Height()
	report.BlackHeight = tree.BlackHeight()
	log.Printf("Bench completed. %d inserted, %d deleted, %d remaining", report.Inserted, report.Deleted, report.Remaining)
	return report, nil
}

func newBenchBar(opts BenchOptions, total int, description string) *progressbar.ProgressBar {
	if !opts.ShowProgress {
		return nil
	}
	options := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	}
	if opts.Progress != nil {
		options = append(options, progressbar.OptionSetWriter(opts.Progress))
	}
	return progressbar.NewOptions(total, options...)
}

func finishBar(bar *progressbar.ProgressBar) {
	if bar != nil {
		bar.Finish()
	}
}

func (r *BenchReport) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, `
%s🌳 Bench results%s
  • inserted:      %d pairs in %s
  • deleted:       %d pairs in %s
  • verified:      %d pairs in %s
  • height:        %d
  • black-height:  %d
`, Green, Reset,
		r.Inserted, r.Insert,
		r.Deleted, r.Delete,
		r.Remaining, r.Verify,
		r.Height, r.BlackHeight)
	return int64(n), err
}
