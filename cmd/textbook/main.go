// Copyright 2026 Google Inc.
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

// Command textbook exercises the bst, linkedlist and sieve packages from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "textbook",
	Short: "Drive the textbook data structures from the command line",
	Long: `textbook builds a binary search tree, a singly linked list or a table of
primes from its arguments and prints what the structure reports back.

Examples:
  textbook primes 13
  textbook bst --search 3 --search 6 2 4 1 5 9 6
  textbook list 1 2 3`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config = zap.NewDevelopmentConfig()
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")

	bstCmd.Flags().IntSliceVar(&searchKeys, "search", nil, "value to look up after inserting (repeatable)")
	bstCmd.Flags().BoolVar(&printShape, "print", false, "dump the shape of the tree")

	rootCmd.AddCommand(primesCmd, bstCmd, listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Debug("command failed", zap.Error(err))
		os.Exit(1)
	}
}
