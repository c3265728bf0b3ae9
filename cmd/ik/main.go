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

// Package main is the entry point for the ik CLI, a command-line front
// end over the lexeme analyzer for tokenizing text and managing
// dictionary files from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	ikgo "github.com/ikanalyzer/ikgo"
	"github.com/ikanalyzer/ikgo/internal/dictionary"
	"github.com/ikanalyzer/ikgo/internal/ikconfig"
)

const version = "1.0.0-go"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ik",
		Short:   "ik - a CJK-aware lexeme analyzer",
		Version: version,
	}
	cmd.AddCommand(newTokenizeCmd())
	cmd.AddCommand(newDictCmd())
	return cmd
}

func loadDictionary(configPath string) (*dictionary.Global, error) {
	dict := dictionary.NewGlobal()
	if configPath == "" {
		return dict, nil
	}
	cfg, err := ikconfig.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := ikconfig.Apply(cfg, dict); err != nil {
		return nil, fmt.Errorf("applying config: %w", err)
	}
	return dict, nil
}

func newTokenizeCmd() *cobra.Command {
	var (
		configPath string
		searchMode bool
	)

	cmd := &cobra.Command{
		Use:   "tokenize <text>",
		Short: "Tokenize text and print one lexeme per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDictionary(configPath)
			if err != nil {
				return err
			}

			mode := ikgo.Index
			if searchMode {
				mode = ikgo.Search
			}

			seg := ikgo.NewWithDictionary(dict)
			for _, lx := range seg.Tokenize(args[0], mode) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%d\n", lx.Text, lx.LType, lx.Begin, lx.Length)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Dictionary configuration file")
	cmd.Flags().BoolVarP(&searchMode, "search", "s", false, "Use search mode instead of index mode")
	return cmd
}

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Inspect and edit a dictionary file",
	}
	cmd.AddCommand(newDictAddCmd())
	cmd.AddCommand(newDictDisableCmd())
	return cmd
}

func newDictAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <dict-file> <word>",
		Short: "Append a word to a dictionary file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appendWordToFile(args[0], args[1])
		},
	}
}

func newDictDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable <dict-file> <word>",
		Short: "Load a dictionary file and verify a word can be disabled",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			trie, err := dictionary.LoadMainDictFile(args[0])
			if err != nil {
				return err
			}
			trie.DisableWord([]rune(args[1]))
			if trie.MatchWord([]rune(args[1])) {
				return fmt.Errorf("word %q still matches after disabling", args[1])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q disabled in memory (file on disk is unchanged)\n", args[1])
			return nil
		},
	}
}

func appendWordToFile(path, word string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening dictionary file: %w", err)
	}
	defer f.Close()
	_, err = fmt.Fprintln(f, word)
	return err
}
