// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/go-schubfach/schubfach/internal/config"
	"github.com/go-schubfach/schubfach/internal/service"
)

func newBatchCmd() *cobra.Command {
	var (
		input     string
		output    string
		asFloat32 bool
		workers   int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Format a newline-delimited list of values concurrently",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync()

			if cmd.Flags().Changed("input") {
				cfg.Batch.Input = input
			}
			if cmd.Flags().Changed("output") {
				cfg.Batch.Output = output
			}
			if cmd.Flags().Changed("float32") {
				cfg.Batch.Float32 = asFloat32
			}
			if workers <= 0 {
				workers = cfg.Workers
			}

			return runBatch(cmd.Context(), cfg.Batch, workers, logger)
		},
	}
	cmd.Flags().StringVar(&input, "input", "-", "input file, one value per line (- for stdin)")
	cmd.Flags().StringVar(&output, "output", "-", "output file (- for stdout)")
	cmd.Flags().BoolVar(&asFloat32, "float32", false, "format every value as binary32")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker count (default: GOMAXPROCS)")
	return cmd
}

func runBatch(ctx context.Context, cfg *config.BatchConfig, workers int, logger *zap.SugaredLogger) error {
	in, err := openInput(cfg.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	lines, err := readBatchInput(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	progress := mpb.New(mpb.WithOutput(os.Stderr))
	bar := progress.AddBar(int64(len(lines)),
		mpb.PrependDecorators(decor.Name("batch")),
		mpb.AppendDecorators(decor.Percentage()),
	)

	counts := &service.Counts{}
	results, err := runWithProgress(ctx, lines, cfg.Float32, workers, counts, bar)
	progress.Wait()
	if err != nil {
		return err
	}

	out, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%s,ERROR: %v\n", r.Input, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s,%s\n", r.Input, r.Formatted)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logger.Infow("batch complete", "count", len(lines), "shapes", counts.Snapshot())
	return nil
}

// readBatchInput accepts either a YAML list of values or a flat text file
// with one literal per line. It reads the whole input, first tries to
// decode it as a YAML sequence of scalars, and falls back to scanning it
// line by line (skipping blank lines) when that decode fails, which is
// the common case for a document that isn't YAML at all.
func readBatchInput(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var values []string
	if err := yaml.Unmarshal(data, &values); err == nil && values != nil {
		return values, nil
	}

	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// runWithProgress is a thin wrapper over service.FormatAll that sets bar to
// its total once FormatAll has returned without error. The bar does not
// advance per line while the values are being formatted.
func runWithProgress(ctx context.Context, lines []string, asFloat32 bool, workers int, counts *service.Counts, bar *mpb.Bar) ([]service.Result, error) {
	results, err := service.FormatAll(ctx, lines, asFloat32, workers, counts)
	if err == nil {
		bar.SetCurrent(int64(len(lines)))
	}
	return results, err
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" || path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input %s: %w", path, err)
	}
	return f, nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" || path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output %s: %w", path, err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
