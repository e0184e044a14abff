// Copyright 2025 go-shellsort Authors
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

// Command sortbench times shellsort.SortBytes against the standard library
// sort on identical data and verifies the result (sortedness and
// permutation preservation).
//
// Usage:
//
//	sortbench -count 100000 -width 8 -pattern random
//	sortbench -count 50000 -width 16 -pattern reverse -runs 5
package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"slices"
	"sort"
	"time"

	"github.com/edofic/go-shellsort/shellsort"
	"github.com/urfave/cli"
)

var (
	countFlag = cli.IntFlag{
		Name:  "count",
		Usage: "Number of elements to sort",
		Value: 100000,
	}
	widthFlag = cli.IntFlag{
		Name:  "width",
		Usage: "Element width in bytes",
		Value: 8,
	}
	patternFlag = cli.StringFlag{
		Name:  "pattern",
		Usage: "Input pattern: random, sorted, reverse or equal",
		Value: "random",
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "Seed for the random generator",
		Value: 1,
	}
	runsFlag = cli.IntFlag{
		Name:  "runs",
		Usage: "Number of timed runs per implementation",
		Value: 3,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "Shellsort benchmark tool"
	app.Version = "v0.1.0"
	app.Usage = "Times and verifies shellsort.SortBytes against the standard library sort"
	app.Flags = []cli.Flag{countFlag, widthFlag, patternFlag, seedFlag, runsFlag}
	app.Action = func(c *cli.Context) error {
		return run(c)
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	nel := ctx.GlobalInt("count")
	width := ctx.GlobalInt("width")
	pattern := ctx.GlobalString("pattern")
	runs := ctx.GlobalInt("runs")

	if nel < 0 || width <= 0 || runs < 1 {
		return fmt.Errorf("invalid arguments: count=%d width=%d runs=%d", nel, width, runs)
	}

	ref, err := generate(nel, width, pattern, ctx.GlobalInt64("seed"))
	if err != nil {
		return err
	}

	fmt.Printf("elements=%d width=%d pattern=%s kernel=%s\n",
		nel, width, pattern, shellsort.CurrentKernel())

	buf := make([]byte, len(ref))
	best := time.Duration(1<<63 - 1)
	for i := 0; i < runs; i++ {
		copy(buf, ref)
		start := time.Now()
		shellsort.SortBytes(buf, nel, width, bytes.Compare)
		if d := time.Since(start); d < best {
			best = d
		}
	}
	fmt.Printf("shellsort.SortBytes  best of %d: %v\n", runs, best)

	if err := verify(ref, buf, nel, width); err != nil {
		return err
	}

	stdBest := time.Duration(1<<63 - 1)
	for i := 0; i < runs; i++ {
		copy(buf, ref)
		start := time.Now()
		stdlibSortBytes(buf, nel, width)
		if d := time.Since(start); d < stdBest {
			stdBest = d
		}
	}
	fmt.Printf("stdlib sort.Slice    best of %d: %v\n", runs, stdBest)

	return nil
}

// generate builds a buffer of nel width-byte elements in the given pattern.
func generate(nel, width int, pattern string, seed int64) ([]byte, error) {
	rnd := rand.New(rand.NewSource(seed))
	buf := make([]byte, nel*width)
	rnd.Read(buf)

	switch pattern {
	case "random":
	case "sorted":
		stdlibSortBytes(buf, nel, width)
	case "reverse":
		stdlibSortBytes(buf, nel, width)
		for i, j := 0, nel-1; i < j; i, j = i+1, j-1 {
			a := buf[i*width : (i+1)*width]
			b := buf[j*width : (j+1)*width]
			for k := range a {
				a[k], b[k] = b[k], a[k]
			}
		}
	case "equal":
		for i := 1; i < nel; i++ {
			copy(buf[i*width:(i+1)*width], buf[:width])
		}
	default:
		return nil, fmt.Errorf("unknown pattern %q", pattern)
	}
	return buf, nil
}

// stdlibSortBytes sorts width-byte elements of buf with sort.Slice, moving
// elements through an index permutation.
func stdlibSortBytes(buf []byte, nel, width int) {
	idx := make([]int, nel)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		a := buf[idx[i]*width : (idx[i]+1)*width]
		b := buf[idx[j]*width : (idx[j]+1)*width]
		return bytes.Compare(a, b) < 0
	})

	out := make([]byte, len(buf))
	for i, src := range idx {
		copy(out[i*width:(i+1)*width], buf[src*width:(src+1)*width])
	}
	copy(buf, out)
}

// verify checks sortedness and that got is a permutation of ref.
func verify(ref, got []byte, nel, width int) error {
	for i := 1; i < nel; i++ {
		a := got[(i-1)*width : i*width]
		b := got[i*width : (i+1)*width]
		if bytes.Compare(a, b) > 0 {
			return fmt.Errorf("verification failed: elements %d and %d out of order", i-1, i)
		}
	}

	before := elementSet(ref, nel, width)
	after := elementSet(got, nel, width)
	if !slices.Equal(before, after) {
		return fmt.Errorf("verification failed: output is not a permutation of the input")
	}
	return nil
}

func elementSet(buf []byte, nel, width int) []string {
	set := make([]string, nel)
	for i := 0; i < nel; i++ {
		set[i] = string(buf[i*width : (i+1)*width])
	}
	slices.Sort(set)
	return set
}
