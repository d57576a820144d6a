/*
 * reduce.go, part of gomdft.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goChem is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mdft "github.com/rmera/gomdft"
	"github.com/rmera/gomdft/cube"
	"github.com/rmera/gomdft/cubeplot"
	"github.com/rmera/gomdft/histo"
	"github.com/rmera/gomdft/reduce"
	"github.com/rmera/gomdft/v3"
)

var (
	reduceFactors   []int
	reduceOut       string
	reducePlot      string
	reducePlotAxis  int
	reducePlotIndex int
	reduceHist      string
	reduceBins      int
)

var reduceCmd = &cobra.Command{
	Use:   "reduce [cube file]",
	Short: "Take points off a cube grid",
	Long: `Takes, along each axis, the given number of evenly spaced points off the
grid of a cube file, and writes the remaining points as "x y z value" lines.
Each number must divide the number of points on its axis.

Example:
  mdftprep reduce density.cube --factors 2,2,2 --out density.dat`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task := reduceTask{
			Input:     args[0],
			Output:    reduceOut,
			Factors:   reduceFactors,
			Plot:      reducePlot,
			PlotAxis:  reducePlotAxis,
			PlotIndex: reducePlotIndex,
			Histogram: reduceHist,
			Bins:      reduceBins,
		}
		return task.run(logger)
	},
}

func init() {
	reduceCmd.Flags().IntSliceVar(&reduceFactors, "factors", []int{2, 2, 2}, "Points to take off each axis")
	reduceCmd.Flags().StringVarP(&reduceOut, "out", "o", "", "Output file (default: input name with .dat)")
	reduceCmd.Flags().StringVar(&reducePlot, "plot", "", "Also plot a plane of the original grid to this file")
	reduceCmd.Flags().IntVar(&reducePlotAxis, "axis", 2, "Axis perpendicular to the plotted plane")
	reduceCmd.Flags().IntVar(&reducePlotIndex, "index", 0, "Index of the plotted plane along --axis")
	reduceCmd.Flags().StringVar(&reduceHist, "hist", "", "Also plot a histogram of the reduced values to this file")
	reduceCmd.Flags().IntVar(&reduceBins, "compare", 0, "Log how the value distribution changed, using this many bins")
}

//reduceTask is one grid reduction. It is also a [[reduce]] entry of a job file.
type reduceTask struct {
	Input     string `toml:"input"`
	Output    string `toml:"output"`
	Factors   []int  `toml:"factors"`
	Plot      string `toml:"plot"`
	PlotAxis  int    `toml:"plot_axis"`
	PlotIndex int    `toml:"plot_index"`
	Histogram string `toml:"histogram"`
	Bins      int    `toml:"compare_bins"`
}

func (t reduceTask) run(log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	if len(t.Factors) != 3 {
		return fmt.Errorf("reduce %s: 3 factors needed, got %d", t.Input, len(t.Factors))
	}
	if t.Output == "" {
		t.Output = defaultOutput(t.Input)
	}
	C, err := cube.Read(t.Input)
	if err != nil {
		return fmt.Errorf("reduce: %w", err)
	}
	if t.Plot != "" {
		if err := cubeplot.HeatMap(C, t.PlotAxis, t.PlotIndex, C.Comment[0], t.Plot); err != nil {
			return fmt.Errorf("reduce %s: %w", t.Input, err)
		}
	}
	grid, values, err := reduce.New(log).Reduce(C, [3]int{t.Factors[0], t.Factors[1], t.Factors[2]})
	if err != nil {
		return fmt.Errorf("reduce %s: %w", t.Input, err)
	}
	if t.Histogram != "" {
		if err := cubeplot.Histogram(values, 20, "Reduced "+C.Comment[0], t.Histogram); err != nil {
			return fmt.Errorf("reduce %s: %w", t.Input, err)
		}
	}
	if t.Bins > 0 {
		orig, red, diff, err := histo.Compare(C.Values, values, t.Bins)
		if err != nil {
			return fmt.Errorf("reduce %s: %w", t.Input, err)
		}
		log.Info("value distribution", zap.Float64("difference", diff),
			zap.Reflect("original", orig), zap.Reflect("reduced", red))
	}
	if err := writePoints(t.Output, grid, values); err != nil {
		return fmt.Errorf("reduce %s: %w", t.Input, err)
	}
	log.Info("reduced grid written", zap.String("file", t.Output), zap.Int("points", len(values)))
	return nil
}

//defaultOutput is the input name without compression and .cube
//extensions, with .dat added.
func defaultOutput(input string) string {
	name := input
	for _, ext := range []string{".gz", ".zst", ".zstd"} {
		name = strings.TrimSuffix(name, ext)
	}
	return strings.TrimSuffix(name, ".cube") + ".dat"
}

//writePoints writes one "x y z value" line per point.
func writePoints(fname string, grid *v3.Matrix, values []float64) error {
	var b strings.Builder
	for i, v := range values {
		c := grid.Vec(i)
		fmt.Fprintf(&b, "%15.10f%15.10f%15.10f%20.10E\n", c[0], c[1], c[2], v)
	}
	return mdft.WriteFile(fname, []byte(b.String()))
}
