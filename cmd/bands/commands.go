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
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-bands/band"
	"github.com/ajroetker/go-bands/internal/bandio"
)

func kernelName() string {
	return band.CurrentKernel().String()
}

func (a *app) mergeCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "merge RED GREEN BLUE",
		Short: "Pack three gray planes into one RGB image",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			planes, err := readGrays(args)
			if err != nil {
				return err
			}
			rgb, err := band.Merge3Pool(a.pool, planes[0], planes[1], planes[2])
			if err != nil {
				return fmt.Errorf("merge: %w", err)
			}
			a.log.Printf("merge %s -> %s", strings.Join(args, ", "), rgb)
			return a.write(out, bandio.RGBToImage(rgb))
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func (a *app) splitCmd() *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "split RGB",
		Short: "Unpack an RGB image into three gray planes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := bandio.ReadRGB(args[0])
			if err != nil {
				return err
			}
			r, g, b := band.Split3Pool(a.pool, rgb)
			a.log.Printf("split %s -> 3 x %s", args[0], r)
			ext := string(a.cfg.Format)
			for i, p := range []*band.Gray8{r, g, b} {
				path := fmt.Sprintf("%s_%c.%s", prefix, "rgb"[i], ext)
				if err := a.write(path, bandio.GrayToImage(p)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&prefix, "output", "o", "", "output prefix (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// joinCmd builds a subcommand that folds its gray inputs left to right with j.
func (a *app) joinCmd(name, short string, j func() band.Joiner) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   name + " FIRST SECOND [MORE...]",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			planes, err := readGrays(args)
			if err != nil {
				return err
			}
			joiner := j()
			var acc band.Plane = planes[0]
			for i, p := range planes[1:] {
				if acc, err = joiner.Join(acc, p); err != nil {
					return fmt.Errorf("%s %s: %w", name, args[i+1], err)
				}
			}
			a.log.Printf("%s %d planes -> %s", name, len(planes), acc)
			return a.write(out, bandio.GrayToImage(acc.(*band.Gray8)))
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (required)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func (a *app) add() band.Joiner { return band.SaturatingAdd{Pool: a.pool} }
func (a *app) sub() band.Joiner { return band.SaturatingSub{Pool: a.pool} }

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the kernel and CPU features in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			features := band.CPUFeatures()
			if len(features) == 0 {
				features = []string{"none"}
			}
			fmt.Fprintf(w, "kernel:   %s\n", kernelName())
			fmt.Fprintf(w, "cpu:      %s/%s %s\n", runtime.GOOS, runtime.GOARCH, strings.Join(features, " "))
			fmt.Fprintf(w, "workers:  %d\n", a.pool.NumWorkers())
			fmt.Fprintf(w, "format:   %s\n", a.cfg.Format)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the bands version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "bands", version)
		},
	}
}

func readGrays(paths []string) ([]*band.Gray8, error) {
	planes := make([]*band.Gray8, len(paths))
	for i, p := range paths {
		g, err := bandio.ReadGray(p)
		if err != nil {
			return nil, err
		}
		planes[i] = g
	}
	return planes, nil
}

func (a *app) write(path string, img image.Image) error {
	f := bandio.FormatFromPath(path, a.cfg.Format)
	if err := bandio.WriteFile(path, img, f); err != nil {
		return err
	}
	a.log.Printf("wrote %s (%s)", path, f)
	return nil
}
