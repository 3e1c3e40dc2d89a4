// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/consensys/go-epistemic/pkg/conditional"
	"github.com/consensys/go-epistemic/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the settings which can be given in a configuration file.  Any
// setting given on the command line overrides the file.
type Config struct {
	// Policy applied by conditionals whose condition is uncertain.
	Policy conditional.Policy `yaml:"policy"`
	// LogLevel is the name of the logrus level to log at.
	LogLevel string `yaml:"log-level"`
	// Colour determines whether rendered values are coloured.
	Colour termio.ColourMode `yaml:"colour"`
	// Debounce is how long to wait for further changes before re-running a
	// watched script.
	Debounce time.Duration `yaml:"debounce"`
	// Jobs is the maximum number of scripts run concurrently.
	Jobs int `yaml:"jobs"`
}

// Default returns the configuration used in the absence of a configuration
// file.
func Default() Config {
	return Config{
		Policy:   conditional.RunBoth,
		LogLevel: log.WarnLevel.String(),
		Colour:   termio.COLOUR_AUTO,
		Debounce: 250 * time.Millisecond,
		Jobs:     runtime.NumCPU(),
	}
}

// Load reads a configuration file.  Settings missing from the file take their
// default values.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	//
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return cfg, nil
}

// Parse a configuration from its YAML representation.  Unknown keys are
// rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	//
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	//
	return cfg, cfg.Validate()
}

// Validate checks this configuration is well formed.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	} else if c.Jobs < 1 {
		return fmt.Errorf("jobs must be positive (was %d)", c.Jobs)
	} else if c.Debounce < 0 {
		return fmt.Errorf("debounce cannot be negative (was %s)", c.Debounce)
	}
	//
	return nil
}

// Level returns the configured logging level.
func (c Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}
