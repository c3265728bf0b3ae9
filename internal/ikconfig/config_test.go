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

package ikconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikanalyzer/ikgo/internal/dictionary"
)

func TestLoadConfigFromDataResolvesRelativePaths(t *testing.T) {
	data := []byte(`{
		"use_main_dict": true,
		"main_dict_path": "main.dic",
		"ext_dict_paths": ["ext/custom.dic"],
		"stop_dict_paths": ["stop.dic"]
	}`)

	cfg, err := LoadConfigFromData(data, "/etc/ik")
	require.NoError(t, err)
	assert.Equal(t, "/etc/ik/main.dic", cfg.MainDictPath)
	assert.Equal(t, []string{"/etc/ik/ext/custom.dic"}, cfg.ExtDictPaths)
	assert.Equal(t, []string{"/etc/ik/stop.dic"}, cfg.StopDictPaths)
}

func TestLoadConfigFromDataKeepsAbsolutePaths(t *testing.T) {
	data := []byte(`{"use_main_dict": true, "main_dict_path": "/opt/dict/main.dic"}`)
	cfg, err := LoadConfigFromData(data, "/etc/ik")
	require.NoError(t, err)
	assert.Equal(t, "/opt/dict/main.dic", cfg.MainDictPath)
}

func TestValidateRequiresMainDictPath(t *testing.T) {
	cfg := &Config{UseMainDict: true}
	assert.ErrorIs(t, cfg.Validate(), ErrMissingMainDict)

	cfg2 := &Config{UseMainDict: false}
	assert.NoError(t, cfg2.Validate())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestApplyLoadsMainExtAndStopDictionaries(t *testing.T) {
	dir := t.TempDir()
	mainPath := writeFile(t, dir, "main.dic", "北京大学\n技术学校\n")
	extPath := writeFile(t, dir, "ext.dic", "百货公司\n")
	stopPath := writeFile(t, dir, "stop.dic", "的\n")

	cfg := &Config{
		UseMainDict:   true,
		MainDictPath:  mainPath,
		ExtDictPaths:  []string{extPath},
		StopDictPaths: []string{stopPath},
	}

	dict := dictionary.NewGlobal()
	require.NoError(t, Apply(cfg, dict))

	input := []rune("北京大学百货公司的")
	hits := dict.MatchMainDict(input, 0, 4)
	require.NotEmpty(t, hits)
	assert.True(t, hits[len(hits)-1].IsMatch())

	assert.True(t, dict.IsStopWord(input, 8, 1))
}

func TestApplyMissingExtDictIsNonFatal(t *testing.T) {
	dir := t.TempDir()
	mainPath := writeFile(t, dir, "main.dic", "北京大学\n")

	cfg := &Config{
		UseMainDict:  true,
		MainDictPath: mainPath,
		ExtDictPaths: []string{filepath.Join(dir, "missing.dic")},
	}

	dict := dictionary.NewGlobal()
	assert.NoError(t, Apply(cfg, dict))
}

func TestApplyMissingMainDictIsFatal(t *testing.T) {
	cfg := &Config{UseMainDict: true, MainDictPath: "/does/not/exist.dic"}
	dict := dictionary.NewGlobal()
	assert.Error(t, Apply(cfg, dict))
}
