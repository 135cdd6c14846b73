// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command heaptool sorts, ranks and measures data using the heaps
// provided by cloudeng.io/dsa/container/heap.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: heaptool
summary: sort, rank and measure data using a binary heap
commands:
  - name: sort
    summary: sort 'key value' lines read from a file or stdin by key
    arguments:
      - "[file]"
  - name: top
    summary: print the most frequently occurring words in a file or stdin
    arguments:
      - "[file]"
  - name: stats
    summary: compare the comparisons needed to build a heap in bulk against repeated pushes
`

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
}

type sortFlags struct {
	CommonFlags
	Keys string `subcmd:"keys,string,'how to compare keys: string or number'"`
}

type topFlags struct {
	CommonFlags
	N int `subcmd:"n,10,number of words to print"`
}

type statsFlags struct {
	CommonFlags
	Config  string `subcmd:"config,,'yaml file specifying the sizes, seed and key distribution, overrides the other flags'"`
	MinSize int    `subcmd:"min-size,1000,smallest heap to build"`
	MaxSize int    `subcmd:"max-size,1000000,largest heap to build"`
	Factor  int    `subcmd:"factor,10,multiplier applied to each successive size"`
	Seed    int64  `subcmd:"seed,1,seed for the random number generator"`
	Order   string `subcmd:"order,random,'key order: random, ascending or descending'"`
}

var cmdSet = subcmd.MustFromYAML(cmdSpec)

func init() {
	sortFlagSet := subcmd.NewFlagSet()
	sortFlagSet.MustRegisterFlagStruct(&sortFlags{}, nil, nil)
	topFlagSet := subcmd.NewFlagSet()
	topFlagSet.MustRegisterFlagStruct(&topFlags{}, nil, nil)
	statsFlagSet := subcmd.NewFlagSet()
	statsFlagSet.MustRegisterFlagStruct(&statsFlags{}, nil, nil)

	cmdSet.Set("sort").MustRunnerAndFlags(sortCmd, sortFlagSet)
	cmdSet.Set("top").MustRunnerAndFlags(topCmd, topFlagSet)
	cmdSet.Set("stats").MustRunnerAndFlags(statsCmd, statsFlagSet)
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}

// withLogger configures the logger specified by the logging flags and
// stores it in the returned context. The returned function must be called
// to close any log file.
func (c *CommonFlags) withLogger(ctx context.Context) (context.Context, func() error, error) {
	logger, err := c.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.Context(ctx, logger.Logger), logger.Close, nil
}

// openInput returns stdin if no file was specified.
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(args[0])
}

// run is common to all commands: it sets up logging, opens the input and
// ensures that errors from closing the input and log file are reported.
func run(ctx context.Context, cf *CommonFlags, args []string, fn func(context.Context, io.Reader) error) error {
	ctx, closeLog, err := cf.withLogger(ctx)
	if err != nil {
		return err
	}
	errs := &errors.M{}
	if rd, err := openInput(args); err != nil {
		errs.Append(err)
	} else {
		errs.Append(fn(ctx, rd))
		errs.Append(rd.Close())
	}
	errs.Append(closeLog())
	return errs.Err()
}
