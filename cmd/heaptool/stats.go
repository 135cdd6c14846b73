// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/dsa/container/heap"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

type statsConfig struct {
	Sizes []int  `yaml:"sizes"`
	Seed  int64  `yaml:"seed"`
	Order string `yaml:"order"`
}

type sizeStats struct {
	Size              int        `yaml:"size"`
	Heapify           heap.Stats `yaml:"heapify"`
	Push              heap.Stats `yaml:"push"`
	HeapifyPerElement float64    `yaml:"heapify_comparisons_per_element"`
	PushPerElement    float64    `yaml:"push_comparisons_per_element"`
}

type statsReport struct {
	Order   string      `yaml:"order"`
	Seed    int64       `yaml:"seed"`
	Results []sizeStats `yaml:"results"`
}

func statsCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*statsFlags)
	cfg, err := fv.config()
	if err != nil {
		return err
	}
	ctx, closeLog, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	errs := &errors.M{}
	errs.Append(writeStats(ctx, os.Stdout, cfg))
	errs.Append(closeLog())
	return errs.Err()
}

func (fv *statsFlags) config() (statsConfig, error) {
	cfg := statsConfig{Seed: fv.Seed, Order: fv.Order}
	if len(fv.Config) > 0 {
		if err := cmdutil.ParseYAMLConfigFile(fv.Config, &cfg); err != nil {
			return cfg, err
		}
	} else {
		if fv.MinSize <= 0 || fv.Factor < 2 {
			return cfg, fmt.Errorf("--min-size must be positive and --factor at least 2")
		}
		for n := fv.MinSize; n <= fv.MaxSize; n *= fv.Factor {
			cfg.Sizes = append(cfg.Sizes, n)
		}
	}
	return cfg, cfg.validate()
}

func (cfg statsConfig) validate() error {
	if err := flags.OneOf(cfg.Order).Validate("random", "ascending", "descending"); err != nil {
		return err
	}
	for _, n := range cfg.Sizes {
		if n <= 0 {
			return fmt.Errorf("invalid heap size: %v", n)
		}
	}
	return nil
}

func (cfg statsConfig) keys(rnd *rand.Rand, n int) []int {
	keys := make([]int, n)
	for i := range keys {
		switch cfg.Order {
		case "ascending":
			keys[i] = i
		case "descending":
			keys[i] = n - i
		default:
			keys[i] = rnd.Int()
		}
	}
	return keys
}

// measure builds a heap of n keys twice, once in bulk and once by pushing
// each key in turn, and returns the work done by each.
func (cfg statsConfig) measure(rnd *rand.Rand, n int) sizeStats {
	keys := cfg.keys(rnd, n)
	bulk := heap.NewMin(heap.WithData(keys, make([]struct{}, n)))
	pushed := heap.NewMin(heap.WithSliceCap[int, struct{}](n))
	for _, k := range keys {
		pushed.Push(k, struct{}{})
	}
	st := sizeStats{
		Size:    n,
		Heapify: bulk.Stats(),
		Push:    pushed.Stats(),
	}
	st.HeapifyPerElement = float64(st.Heapify.Comparisons) / float64(n)
	st.PushPerElement = float64(st.Push.Comparisons) / float64(n)
	return st
}

func writeStats(ctx context.Context, w io.Writer, cfg statsConfig) error {
	rnd := rand.New(rand.NewSource(cfg.Seed)) // #nosec: G404
	report := statsReport{Order: cfg.Order, Seed: cfg.Seed}
	for _, n := range cfg.Sizes {
		st := cfg.measure(rnd, n)
		ctxlog.Logger(ctx).Info("measured", "size", n, "heapify", st.Heapify.Comparisons, "push", st.Push.Comparisons)
		report.Results = append(report.Results, st)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	errs := &errors.M{}
	errs.Append(enc.Encode(report))
	errs.Append(enc.Close())
	return errs.Err()
}
