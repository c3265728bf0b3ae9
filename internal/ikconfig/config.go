/*
 * Open Chinese Convert
 *
 * Copyright 2010-2020 Carbo Kuo <byvoid@byvoid.com>
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package ikconfig loads the JSON configuration that tells an IKSegmenter
// which dictionary files to read at startup (spec.md §6). Structured the
// way the teacher's pkg/config loads a conversion pipeline's dictionary
// files: a JSON document unmarshaled directly into a plain struct, then
// relative paths resolved against the config file's directory.
package ikconfig

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// ErrMissingMainDict is returned by Validate when UseMainDict is true but
// MainDictPath is empty.
var ErrMissingMainDict = errors.New("ikconfig: main_dict_path is required when use_main_dict is true")

// Config is the on-disk shape of an analyzer's dictionary configuration.
type Config struct {
	UseMainDict        bool     `json:"use_main_dict"`
	MainDictPath       string   `json:"main_dict_path"`
	QuantifierDictPath string   `json:"quantifier_dict_path,omitempty"`
	ExtDictPaths       []string `json:"ext_dict_paths,omitempty"`
	StopDictPaths      []string `json:"stop_dict_paths,omitempty"`
}

// LoadConfig reads and parses a configuration file, resolving any
// relative dictionary paths against the file's own directory.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return LoadConfigFromData(data, filepath.Dir(filename))
}

// LoadConfigFromData parses JSON config data, resolving relative
// dictionary paths against configDir.
func LoadConfigFromData(data []byte, configDir string) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.resolvePaths(configDir)
	return &cfg, nil
}

func (c *Config) resolvePaths(configDir string) {
	c.MainDictPath = resolvePath(configDir, c.MainDictPath)
	c.QuantifierDictPath = resolvePath(configDir, c.QuantifierDictPath)
	for i, p := range c.ExtDictPaths {
		c.ExtDictPaths[i] = resolvePath(configDir, p)
	}
	for i, p := range c.StopDictPaths {
		c.StopDictPaths[i] = resolvePath(configDir, p)
	}
}

func resolvePath(configDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(configDir, p)
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.UseMainDict && c.MainDictPath == "" {
		return ErrMissingMainDict
	}
	return nil
}
