// Copyright 2025 go-highway Authors
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
	"image"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-spatial/hwy"
	"github.com/ajroetker/go-spatial/hwy/contrib/spatial"
	"github.com/ajroetker/go-spatial/hwy/contrib/workerpool"
)

// options holds the parsed command line.
type options struct {
	input   string
	output  string
	radius  int
	stat    statisticFlag
	workers int
	depth   int
	verbose bool
}

// statisticFlag adapts spatial.Statistic to pflag.Value.
type statisticFlag spatial.Statistic

var _ pflag.Value = (*statisticFlag)(nil)

func (f *statisticFlag) String() string { return spatial.Statistic(*f).String() }

func (f *statisticFlag) Set(name string) error {
	stat, err := spatial.ParseStatistic(name)
	if err != nil {
		return err
	}
	*f = statisticFlag(stat)
	return nil
}

func (f *statisticFlag) Type() string { return "statistic" }

func newRootCmd() *cobra.Command {
	opts := &options{
		radius: 1,
		stat:   statisticFlag(spatial.Mean),
	}

	cmd := &cobra.Command{
		Use:   "spatialstat -i input -o output",
		Short: "Apply a windowed statistic filter to a grayscale image",
		Long: "spatialstat replaces every pixel with a statistic of the (2r+1)x(2r+1)\n" +
			"window around it, replicating edge pixels at the border.\n\n" +
			"Statistics:\n" + statisticTable(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(opts)
		},
	}

	names := lo.Map(spatial.Statistics(), func(s spatial.Statistic, _ int) string { return s.String() })

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "input image (PNG or TIFF)")
	flags.StringVarP(&opts.output, "output", "o", "", "output image, format chosen by extension (.png, .tif, .tiff)")
	flags.IntVarP(&opts.radius, "radius", "r", opts.radius, "window radius; windows are (2r+1)x(2r+1) pixels")
	flags.VarP(&opts.stat, "statistic", "s", "statistic to compute: "+strings.Join(names, ", "))
	flags.IntVarP(&opts.workers, "workers", "w", 0, "worker goroutines; 0 uses GOMAXPROCS, 1 runs sequentially")
	flags.IntVar(&opts.depth, "depth", 0, "sample depth in bits: 0 follows the input, 8 or 16 forces it")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	lo.ForEach([]string{"input", "output"}, func(name string, _ int) {
		_ = cmd.MarkFlagRequired(name)
	})

	cmd.AddCommand(newListCmd())
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the statistics and the names they accept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), statisticTable())
			return err
		},
	}
}

// statisticTable renders one line per statistic with its accepted names.
func statisticTable() string {
	byStat := lo.GroupBy(spatial.Aliases(), func(alias string) spatial.Statistic {
		stat, _ := spatial.ParseStatistic(alias)
		return stat
	})
	lines := lo.Map(spatial.Statistics(), func(stat spatial.Statistic, _ int) string {
		return fmt.Sprintf("  %-10s %s\n", stat, strings.Join(byStat[stat], ", "))
	})
	return strings.Join(lines, "")
}

func run(opts *options) error {
	if !lo.Contains([]int{0, 8, 16}, opts.depth) {
		return errors.Errorf("invalid --depth %d, want 0, 8 or 16", opts.depth)
	}
	stat := spatial.Statistic(opts.stat)

	src, format, err := readImage(opts.input)
	if err != nil {
		return err
	}
	bounds := src.Bounds()
	wide := opts.depth == 16 || (opts.depth == 0 && isWide(src))

	logger := log.WithFields(logrus.Fields{
		"input":     opts.input,
		"format":    format,
		"width":     bounds.Dx(),
		"height":    bounds.Dy(),
		"statistic": stat,
		"radius":    opts.radius,
		"wide":      wide,
	})
	logger.WithFields(logrus.Fields{
		"dispatch": hwy.CurrentName(),
		"lanes":    hwy.CurrentWidth(),
	}).Debug("decoded input")

	var pool *workerpool.Pool
	if opts.workers != 1 {
		pool = workerpool.New(opts.workers)
		defer pool.Close()
	}

	start := time.Now()
	var dst image.Image
	if wide {
		dst, err = filterGray16(pool, toGray16(src), opts.radius, stat)
	} else {
		dst, err = filterGray(pool, toGray(src), opts.radius, stat)
	}
	if err != nil {
		return errors.Wrapf(err, "filter %s", opts.input)
	}
	elapsed := time.Since(start)

	if err := writeImage(opts.output, dst); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"output":  opts.output,
		"elapsed": elapsed,
	}).Info("filtered image")
	return nil
}
