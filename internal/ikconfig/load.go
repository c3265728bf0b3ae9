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
	"fmt"
	"log"

	"github.com/ikanalyzer/ikgo/internal/dictionary"
)

// Apply loads the dictionaries named by cfg into dict, following spec.md
// §7's severity rules: a missing main dictionary is fatal, a missing
// extension/stop-word/quantifier file is logged and skipped.
func Apply(cfg *Config, dict *dictionary.Global) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.UseMainDict {
		trie, err := dictionary.LoadMainDictFile(cfg.MainDictPath)
		if err != nil {
			return fmt.Errorf("ikconfig: loading main dictionary: %w", err)
		}
		for _, extPath := range cfg.ExtDictPaths {
			if err := dictionary.MergeExtDictFile(trie, extPath); err != nil {
				log.Printf("ikconfig: skipping extension dictionary %s: %v", extPath, err)
			}
		}
		dict.ReplaceMainDict(trie)
	}

	if cfg.QuantifierDictPath != "" {
		q, err := dictionary.LoadQuantifierDictFile(cfg.QuantifierDictPath)
		if err != nil {
			log.Printf("ikconfig: skipping quantifier dictionary %s: %v", cfg.QuantifierDictPath, err)
		} else {
			dict.ReplaceQuantifierDict(q)
		}
	}

	for _, stopPath := range cfg.StopDictPaths {
		sw, err := dictionary.LoadStopWordsFile(stopPath)
		if err != nil {
			log.Printf("ikconfig: skipping stop-word dictionary %s: %v", stopPath, err)
			continue
		}
		dict.MergeStopWords(sw)
	}

	return nil
}
