// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/linalg/internal/render"
	"github.com/katalvlaran/linalg/internal/worksheet"
	"golang.org/x/sync/errgroup"
)

type runConfig struct {
	styled   bool
	failFast bool
	logger   *slog.Logger
}

// fileResult is the outcome of one worksheet file.
type fileResult struct {
	path string
	rep  *worksheet.Report
	err  error
}

// runFiles evaluates every path concurrently and renders the results in
// argument order. Each worksheet owns its values, so the goroutines share
// nothing but the Runner configuration.
//
// Without failFast every file is evaluated and failures are rendered in
// place; with failFast the first failure cancels the remaining evaluations.
// Either way the returned error reports how many files failed.
func runFiles(ctx context.Context, w io.Writer, runner *worksheet.Runner, paths []string, cfg runConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]fileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			res := fileResult{path: path}
			ws, err := worksheet.Load(path)
			if err == nil {
				res.rep, err = runner.Run(gctx, ws)
			}
			res.err = err
			results[i] = res
			if err != nil {
				cfg.logger.ErrorContext(gctx, "worksheet failed", "path", path, "error", err)
				if cfg.failFast {
					return fmt.Errorf("%s: %w", path, err)
				}
				return nil
			}
			cfg.logger.DebugContext(gctx, "worksheet completed", "path", path, "steps", len(res.rep.Outputs))
			return nil
		})
	}
	firstErr := g.Wait()

	r := render.New(cfg.styled)
	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			if err := r.Failure(w, res.path, res.err); err != nil {
				return err
			}
			continue
		}
		if err := r.Report(w, res.rep); err != nil {
			return err
		}
	}
	if firstErr != nil {
		return firstErr
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d worksheet(s) failed", failed, len(paths))
	}

	return nil
}
