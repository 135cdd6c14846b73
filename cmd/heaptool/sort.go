// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/dsa/container/heap"
	"cloudeng.io/logging/ctxlog"
)

func sortCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*sortFlags)
	if err := flags.OneOf(fv.Keys).Validate("string", "number"); err != nil {
		return err
	}
	return run(ctx, &fv.CommonFlags, args, func(ctx context.Context, rd io.Reader) error {
		return sortLines(ctx, rd, os.Stdout, fv.Keys == "number")
	})
}

// readLines returns the non-empty lines in rd along with their first
// whitespace separated field.
func readLines(rd io.Reader) (keys, lines []string, err error) {
	sc := bufio.NewScanner(rd)
	for sc.Scan() {
		line := sc.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		keys = append(keys, fields[0])
		lines = append(lines, line)
	}
	return keys, lines, sc.Err()
}

func parseNumbers(keys []string) ([]float64, error) {
	nums := make([]float64, len(keys))
	for i, k := range keys {
		f, err := strconv.ParseFloat(k, 64)
		if err != nil {
			return nil, fmt.Errorf("line %v: key %q: %w", i+1, k, err)
		}
		nums[i] = f
	}
	return nums, nil
}

// sortLines writes the lines read from rd to w in ascending order of their
// first field.
func sortLines(ctx context.Context, rd io.Reader, w io.Writer, numeric bool) error {
	keys, lines, err := readLines(rd)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("read input", "lines", len(lines), "numeric", numeric)
	if !numeric {
		return drain(ctx, w, heap.NewMin(heap.WithData(keys, lines)))
	}
	nums, err := parseNumbers(keys)
	if err != nil {
		return err
	}
	return drain(ctx, w, heap.NewMin(heap.WithData(nums, lines)))
}

func drain[K heap.Ordered](ctx context.Context, w io.Writer, h *heap.T[K, string]) error {
	ctxlog.Logger(ctx).Debug("heap built", "comparisons", h.Stats().Comparisons, "swaps", h.Stats().Swaps)
	bw := bufio.NewWriter(w)
	for !h.Empty() {
		_, line, err := h.Pop()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	ctxlog.Logger(ctx).Debug("heap drained", "comparisons", h.Stats().Comparisons, "swaps", h.Stats().Swaps)
	return bw.Flush()
}
