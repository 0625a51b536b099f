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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gokata/textbook/bst"
	"github.com/gokata/textbook/linkedlist"
	"github.com/gokata/textbook/sieve"
)

var (
	searchKeys []int
	printShape bool
)

var primesCmd = &cobra.Command{
	Use:   "primes N",
	Short: "Print the primes less than or equal to N",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrimes,
}

var bstCmd = &cobra.Command{
	Use:   "bst [--search V]... VALUES...",
	Short: "Insert VALUES into a binary search tree and query it",
	RunE:  runBST,
}

var listCmd = &cobra.Command{
	Use:   "list VALUES...",
	Short: "Push VALUES onto a linked list and report its contents",
	RunE:  runList,
}

// parseInts converts every argument to an int.
func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", a, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func joinInts(values []int) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, " ")
}

// optional renders a (value, ok) pair, "none" when ok is false.
func optional(v int, ok bool) string {
	if !ok {
		return "none"
	}
	return strconv.Itoa(v)
}

func runPrimes(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid bound %q: %w", args[0], err)
	}
	primes := sieve.Primes(n)
	logger.Debug("sieved", zap.Int("bound", n), zap.Int("primes", len(primes)))
	fmt.Fprintln(cmd.OutOrStdout(), joinInts(primes))
	return nil
}

func runBST(cmd *cobra.Command, args []string) error {
	values, err := parseInts(args)
	if err != nil {
		return err
	}
	tr := bst.NewOrdered[int]()
	for _, v := range values {
		tr.Insert(v)
	}
	logger.Debug("built tree", zap.Ints("values", values), zap.Int("height", tr.Height()))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "len: %d\n", tr.Len())
	fmt.Fprintf(out, "height: %d\n", tr.Height())
	fmt.Fprintf(out, "min: %s\n", optional(tr.Min()))
	fmt.Fprintf(out, "max: %s\n", optional(tr.Max()))
	for _, k := range searchKeys {
		fmt.Fprintf(out, "search %d: %t\n", k, tr.Search(k))
	}
	if printShape {
		tr.Print(out)
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	values, err := parseInts(args)
	if err != nil {
		return err
	}
	l := linkedlist.FromSlice(values)
	logger.Debug("built list", zap.Ints("values", values))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "list: %s\n", l)
	fmt.Fprintf(out, "len: %d\n", l.Len())
	fmt.Fprintf(out, "peek: %s\n", optional(l.Peek()))
	fmt.Fprintf(out, "reversed: %s\n", linkedlist.FromSlice(values).Reverse())

	var popped []int
	for v, ok := l.Pop(); ok; v, ok = l.Pop() {
		popped = append(popped, v)
	}
	fmt.Fprintf(out, "pop: %s\n", joinInts(popped))
	return nil
}
