/*
 * params.go, part of gomdft.
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
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	mdft "github.com/rmera/gomdft"
	"github.com/rmera/gomdft/params"
)

var renumberComment string

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Read, check and renumber MDFT parameter files",
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [parameter file]",
	Short: "Print a summary of a parameter file and check its columns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd.OutOrStdout(), args[0])
	},
}

var renumberCmd = &cobra.Command{
	Use:   "renumber [input] [output]",
	Short: "Write a parameter file again, with its groups assigned from scratch",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		task := paramsTask{Input: args[0], Output: args[1], Comment: renumberComment}
		return task.run(logger)
	},
}

func init() {
	renumberCmd.Flags().StringVar(&renumberComment, "comment", "", "New comment line (default: keep the input's)")
}

//paramsTask is a [[params]] entry of a job file. The input is always read.
//If Validate is set its columns are checked, and if Output is set it is
//written again to Output, with groups assigned from scratch.
type paramsTask struct {
	Input    string `toml:"input"`
	Output   string `toml:"output"`
	Comment  string `toml:"comment"`
	Validate bool   `toml:"validate"`
}

func (t paramsTask) run(log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	P, err := params.Read(t.Input)
	if err != nil {
		return fmt.Errorf("params: %w", err)
	}
	log.Info("parameter file read", zap.String("file", t.Input), zap.Int("atoms", P.Len()), zap.Int("uniques", P.Uniques))
	if t.Validate {
		if err := params.ValidateFile(t.Input); err != nil {
			return fmt.Errorf("params: %w", err)
		}
	}
	if t.Output == "" {
		return nil
	}
	if t.Comment != "" {
		P.Comment = t.Comment + "\n"
	}
	if err := params.Write(t.Output, P); err != nil {
		return fmt.Errorf("params %s: %w", t.Input, err)
	}
	_, n := params.AssignGroups(P.Charge, P.Sigma)
	log.Info("parameter file written", zap.String("file", t.Output), zap.Int("uniques", n))
	return nil
}

func inspect(w io.Writer, fname string) error {
	P, err := params.Read(fname)
	if err != nil {
		return err
	}
	groups, n := params.AssignGroups(P.Charge, P.Sigma)
	fmt.Fprintf(w, "file:          %s\n", fname)
	fmt.Fprintf(w, "comment:       %s", P.Comment)
	fmt.Fprintf(w, "atoms:         %d\n", P.Len())
	fmt.Fprintf(w, "unique groups: %d (file says %d)\n", n, P.Uniques)
	fmt.Fprintf(w, "total charge:  %.6f\n", floats.Sum(P.Charge))
	mean, std := stat.MeanStdDev(P.Sigma, nil)
	fmt.Fprintf(w, "sigma:         mean %.6f, stddev %.6f\n", mean, std)
	renumbered := false
	for i, g := range groups {
		if g != P.Indices[i] {
			renumbered = true
			break
		}
	}
	if renumbered {
		fmt.Fprintln(w, "groups:        differ from a fresh assignment, see 'mdftprep params renumber'")
	}
	if err := params.ValidateFile(fname); err != nil {
		if errors.Is(err, mdft.ErrFormat) {
			fmt.Fprintf(w, "columns:       %s\n", err)
			return nil
		}
		return err
	}
	fmt.Fprintln(w, "columns:       ok")
	return nil
}
