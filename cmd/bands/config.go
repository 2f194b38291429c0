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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ajroetker/go-bands/internal/bandio"
)

const (
	configName = "bands"
	configType = "yaml"
	envPrefix  = "BANDS"

	keyWorkers = "workers"
	keyFormat  = "format"
	keyVerbose = "verbose"
)

// config is the resolved configuration of one invocation.
type config struct {
	Workers int
	Format  bandio.Format
	Verbose bool
}

// newViper returns a Viper with defaults and the BANDS_ environment prefix.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyWorkers, 1)
	v.SetDefault(keyFormat, string(bandio.FormatPNG))
	v.SetDefault(keyVerbose, false)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

// readConfig loads cfgFile if given, otherwise bands.yaml from the working
// directory or $HOME/.config/bands. A missing default file is not an error.
func readConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		return nil
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", configName))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// resolve validates the merged flag, env and file settings.
func resolve(v *viper.Viper) (config, error) {
	f, err := bandio.ParseFormat(v.GetString(keyFormat))
	if err != nil {
		return config{}, fmt.Errorf("config %s: %w", keyFormat, err)
	}
	workers := v.GetInt(keyWorkers)
	if workers < 0 {
		return config{}, fmt.Errorf("config %s: must be >= 0, got %d", keyWorkers, workers)
	}
	return config{
		Workers: workers,
		Format:  f,
		Verbose: v.GetBool(keyVerbose),
	}, nil
}
