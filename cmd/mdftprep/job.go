/*
 * job.go, part of gomdft.
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
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run [job file]",
	Short: "Run the steps described in a TOML job file",
	Long: `Runs all the [[params]] entries of a job file, then all its [[reduce]] entries.
Relative paths are taken from the directory of the job file.

Example job file:

  [[params]]
  input = "pars.in"
  output = "pars_renumbered.in"
  validate = true

  [[reduce]]
  input = "density.cube"
  output = "density.dat"
  factors = [2, 2, 2]
  plot = "density_z0.png"
  plot_axis = 2
  plot_index = 0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		J, err := newJob(args[0])
		if err != nil {
			return err
		}
		return J.start(logger)
	},
}

//job is the content of a TOML job file.
type job struct {
	Params []paramsTask `toml:"params"`
	Reduce []reduceTask `toml:"reduce"`
}

//newJob reads the job file at path. Relative file names in it are made
//relative to the directory of path.
func newJob(path string) (job, error) {
	f, err := os.Open(path)
	if err != nil {
		return job{}, err
	}
	defer f.Close()

	var J job
	dec := toml.NewDecoder(f)
	err = dec.Decode(&J)
	if err != nil {
		return job{}, fmt.Errorf("job %s: %w", path, err)
	}
	if len(J.Params) == 0 && len(J.Reduce) == 0 {
		return job{}, fmt.Errorf("job %s: nothing to do", path)
	}

	dir := filepath.Dir(path)
	rel := func(name string) string {
		if name == "" || filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(dir, name)
	}
	for i, t := range J.Params {
		if t.Input == "" {
			return job{}, fmt.Errorf("job %s: params entry %d has no input", path, i)
		}
		J.Params[i].Input, J.Params[i].Output = rel(t.Input), rel(t.Output)
	}
	for i, t := range J.Reduce {
		if t.Input == "" {
			return job{}, fmt.Errorf("job %s: reduce entry %d has no input", path, i)
		}
		J.Reduce[i].Input, J.Reduce[i].Output = rel(t.Input), rel(t.Output)
		J.Reduce[i].Plot, J.Reduce[i].Histogram = rel(t.Plot), rel(t.Histogram)
	}
	return J, nil
}

//start runs every step of the job, stopping at the first error.
func (J job) start(log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	for i, t := range J.Params {
		if err := t.run(log); err != nil {
			return fmt.Errorf("params step %d: %w", i, err)
		}
	}
	for i, t := range J.Reduce {
		if err := t.run(log); err != nil {
			return fmt.Errorf("reduce step %d: %w", i, err)
		}
	}
	return nil
}
