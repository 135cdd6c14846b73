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

	"cloudeng.io/dsa/container/heap"
	"cloudeng.io/logging/ctxlog"
)

func topCmd(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*topFlags)
	if fv.N <= 0 {
		return fmt.Errorf("--n must be positive: %v", fv.N)
	}
	return run(ctx, &fv.CommonFlags, args, func(ctx context.Context, rd io.Reader) error {
		return topWords(ctx, rd, os.Stdout, fv.N)
	})
}

// countWords maintains a count for every word in a keyed heap. Counts are
// stored negated so that the most frequent word is at the top of the
// min-heap.
func countWords(rd io.Reader) (*heap.Keyed[string, int64], error) {
	kh := heap.NewKeyed[string, int64]()
	sc := bufio.NewScanner(rd)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		w := sc.Text()
		c, _ := kh.Key(w)
		kh.Update(w, c-1)
	}
	return kh, sc.Err()
}

func topWords(ctx context.Context, rd io.Reader, w io.Writer, n int) error {
	kh, err := countWords(rd)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("counted words", "distinct", kh.Len())
	bw := bufio.NewWriter(w)
	for _, it := range kh.TopN(n) {
		if _, err := fmt.Fprintf(bw, "%v %v\n", it.ID, -it.Key); err != nil {
			return err
		}
	}
	return bw.Flush()
}
