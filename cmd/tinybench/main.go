// Copyright 2023 The tinybit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Command tinybench times tinybit sets against a map-backed set,
// bits-and-blooms/bitset and roaring bitmaps.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/bpowers/tinybit/internal/bench"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:  "tinybench",
		Usage: "times tinybit set operations against other set implementations",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "capacity", Aliases: []string{"c"}, Value: 64, Usage: "largest element (1-64)"},
			&cli.IntFlag{Name: "n", Value: 1000000, Usage: "number of random elements per operand"},
			&cli.Int64Flag{Name: "seed", Usage: "random seed (default: random)"},
			&cli.StringSliceFlag{Name: "ops", Usage: "operations to time (default: all)"},
			&cli.StringSliceFlag{Name: "runners", Usage: "set implementations to time (default: all)"},
			&cli.BoolFlag{Name: "verify", Value: true, Usage: "check all runners agree before timing"},
			&cli.StringFlag{Name: "log-format", Value: "text", Usage: "text or json"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log at debug level"},
		},
		Writer:    stdout,
		ErrWriter: stderr,
		Action: func(c *cli.Context) error {
			logger, err := newLogger(stderr, c.String("log-format"), c.Bool("verbose"))
			if err != nil {
				return err
			}

			runners := bench.Runners()
			if names := c.StringSlice("runners"); len(names) > 0 {
				if runners, err = bench.RunnersByName(names); err != nil {
					return err
				}
			}
			ops := bench.AllOps
			if names := c.StringSlice("ops"); len(names) > 0 {
				ops = nil
				for _, name := range names {
					op, err := bench.ParseOp(name)
					if err != nil {
						return err
					}
					ops = append(ops, op)
				}
			}

			seed := c.Int64("seed")
			if !c.IsSet("seed") {
				seed = bench.RandomSeed()
			}
			w, err := bench.NewWorkload(seed, c.Int("capacity"), c.Int("n"))
			if err != nil {
				return err
			}
			logger.Info("workload ready", "capacity", w.Capacity, "n", len(w.Elems), "seed", w.Seed)

			if c.Bool("verify") {
				if err := bench.Verify(runners, w); err != nil {
					return fmt.Errorf("verify: %w", err)
				}
				logger.Debug("runners agree", "runners", len(runners))
			}

			results, err := bench.Run(c.Context, runners, ops, w)
			if err != nil {
				return err
			}
			for _, r := range results {
				logger.Debug("timed", "runner", r.Runner, "op", r.Op.String(), "elapsed", r.Elapsed)
			}
			return bench.WriteReport(stdout, results)
		},
	}
}
