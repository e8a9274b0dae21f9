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
package cmd

import (
	"bytes"
	"fmt"
	"os"
	"runtime"

	"github.com/goccy/go-yaml"
)

// EncodeConfig encapsulates the parameters used by the encode command.  These
// can be given in a YAML file, with command-line flags taking precedence.
type EncodeConfig struct {
	// Added to every digit before exponentiation.
	Offset int `yaml:"offset"`
	// Pair the first prime with the least significant digit.
	Reverse bool `yaml:"reverse"`
	// Print the BLS12-377 fingerprint of each result, rather than the result
	// itself.
	Field bool `yaml:"field"`
	// Maximum number of integers encoded concurrently.
	Jobs int `yaml:"jobs"`
}

// DefaultEncodeConfig returns the configuration used in the absence of a
// configuration file.
func DefaultEncodeConfig() EncodeConfig {
	return EncodeConfig{Jobs: runtime.NumCPU()}
}

// LoadEncodeConfig reads a configuration from a given YAML file.  Keys missing
// from the file retain their default values, whilst unknown keys are
// rejected.
func LoadEncodeConfig(filename string) (EncodeConfig, error) {
	config := DefaultEncodeConfig()
	//
	data, err := os.ReadFile(filename)
	if err != nil {
		return config, fmt.Errorf("read %q: %w", filename, err)
	}
	// An empty file is fine.
	if len(bytes.TrimSpace(data)) == 0 {
		return config, nil
	}
	//
	dec := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	//
	if err := dec.Decode(&config); err != nil {
		return config, fmt.Errorf("yaml: %w", err)
	}
	//
	return config, config.Validate()
}

// Validate checks the configuration is sensible.
func (p EncodeConfig) Validate() error {
	switch {
	case p.Offset < 0:
		return fmt.Errorf("invalid offset %d (must be non-negative)", p.Offset)
	case p.Jobs < 1:
		return fmt.Errorf("invalid jobs %d (must be positive)", p.Jobs)
	}
	//
	return nil
}
