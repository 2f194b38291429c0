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
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-bands/band/contrib/workerpool"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config
	pool    *workerpool.Pool
	log     *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: newViper()}

	root := &cobra.Command{
		Use:   "bands",
		Short: "Band algebra on image planes",
		Long: `bands merges gray planes into packed RGB images, splits them again,
and combines planes with saturating arithmetic.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error { a.teardown(); return nil },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./bands.yaml or ~/.config/bands/bands.yaml)")
	pf.Int(keyWorkers, 1, "row workers; 0 uses GOMAXPROCS, 1 runs sequentially")
	pf.String(keyFormat, "png", "output format when the extension does not name one (png, bmp, tiff)")
	pf.BoolP(keyVerbose, "v", false, "log each operation to stderr")
	for _, key := range []string{keyWorkers, keyFormat, keyVerbose} {
		// Lookup cannot fail for flags defined just above.
		_ = a.v.BindPFlag(key, pf.Lookup(key))
	}

	root.AddCommand(
		a.mergeCmd(),
		a.splitCmd(),
		a.joinCmd("add", "Add two gray planes with saturation", a.add),
		a.joinCmd("sub", "Subtract the second gray plane from the first with saturation", a.sub),
		a.infoCmd(),
		versionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := readConfig(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := resolve(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	out := io.Discard
	if cfg.Verbose {
		out = cmd.ErrOrStderr()
	}
	a.log = log.New(out, "bands: ", 0)

	if cfg.Workers != 1 {
		a.pool = workerpool.New(cfg.Workers)
	}
	a.log.Printf("workers=%d kernel=%s", a.pool.NumWorkers(), kernelName())
	return nil
}

func (a *app) teardown() {
	a.pool.Close()
	a.pool = nil
}
