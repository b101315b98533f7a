// Copyright 2023 The tinybit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bench

import (
	"context"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"
)

// Result is the time one runner took for one op.
type Result struct {
	Runner  string
	Op      Op
	Elapsed time.Duration
}

// Run times every op for every runner, one at a time. It stops early
// if ctx is cancelled between measurements.
func Run(ctx context.Context, runners []Runner, ops []Op, w Workload) ([]Result, error) {
	results := make([]Result, 0, len(runners)*len(ops))
	for _, op := range ops {
		for _, r := range runners {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			elapsed, err := r.Time(op, w)
			if err != nil {
				return results, fmt.Errorf("%s %v: %w", r.Name, op, err)
			}
			results = append(results, Result{Runner: r.Name, Op: op, Elapsed: elapsed})
		}
	}
	return results, nil
}

// Verify checks that every runner drains w.Elems in the same order as
// the first runner.
func Verify(runners []Runner, w Workload) error {
	if len(runners) == 0 {
		return nil
	}
	expected, err := runners[0].Drain(w.Capacity, w.Elems)
	if err != nil {
		return err
	}
	for _, r := range runners[1:] {
		got, err := r.Drain(w.Capacity, w.Elems)
		if err != nil {
			return err
		}
		if !slices.Equal(expected, got) {
			return fmt.Errorf("%s disagrees with %s: %v != %v", r.Name, runners[0].Name, got, expected)
		}
	}
	return nil
}

// WriteReport writes results as a table with one row per op and one
// column per runner, in the order they first appear.
func WriteReport(out io.Writer, results []Result) error {
	var runners []string
	var ops []Op
	elapsed := make(map[Op]map[string]time.Duration)
	for _, r := range results {
		if !slices.Contains(runners, r.Runner) {
			runners = append(runners, r.Runner)
		}
		if _, ok := elapsed[r.Op]; !ok {
			ops = append(ops, r.Op)
			elapsed[r.Op] = make(map[string]time.Duration)
		}
		elapsed[r.Op][r.Runner] = r.Elapsed
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "op\t")
	for _, name := range runners {
		fmt.Fprintf(tw, "%s\t", name)
	}
	fmt.Fprintln(tw)
	for _, op := range ops {
		fmt.Fprintf(tw, "%v\t", op)
		for _, name := range runners {
			if d, ok := elapsed[op][name]; ok {
				fmt.Fprintf(tw, "%v\t", d)
			} else {
				fmt.Fprint(tw, "-\t")
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
