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
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func run(t *testing.T, fn func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()
	logger = zap.NewNop()
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	err := fn(cmd, args)
	return buf.String(), err
}

func TestPrimesCmd(t *testing.T) {
	for _, tc := range []struct {
		arg  string
		want string
	}{
		{"13", "2 3 5 7 11 13\n"},
		{"2", "2\n"},
		{"1", "\n"},
	} {
		got, err := run(t, runPrimes, tc.arg)
		if err != nil {
			t.Fatalf("primes %s: %v", tc.arg, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("primes %s (-want +got):\n%s", tc.arg, diff)
		}
	}
}

func TestBSTCmd(t *testing.T) {
	searchKeys, printShape = []int{3, 6}, false
	defer func() { searchKeys, printShape = nil, false }()

	got, err := run(t, runBST, "2", "4", "1", "5", "9", "6")
	if err != nil {
		t.Fatal(err)
	}
	want := `len: 6
height: 5
min: 1
max: 9
search 3: false
search 6: true
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("bst (-want +got):\n%s", diff)
	}

	searchKeys, printShape = nil, true
	got, err = run(t, runBST, "2", "1")
	if err != nil {
		t.Fatal(err)
	}
	want = "len: 2\nheight: 2\nmin: 1\nmax: 2\nROOT:2\n  L:1\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("bst --print (-want +got):\n%s", diff)
	}
}

func TestBSTCmdEmpty(t *testing.T) {
	got, err := run(t, runBST)
	if err != nil {
		t.Fatal(err)
	}
	want := "len: 0\nheight: 0\nmin: none\nmax: none\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("empty bst (-want +got):\n%s", diff)
	}
}

func TestListCmd(t *testing.T) {
	got, err := run(t, runList, "1", "2", "3")
	if err != nil {
		t.Fatal(err)
	}
	want := `list: [1 2 3]
len: 3
peek: 3
reversed: [3 2 1]
pop: 3 2 1
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("list (-want +got):\n%s", diff)
	}
}

func TestInvalidIntegers(t *testing.T) {
	for name, fn := range map[string]func(*cobra.Command, []string) error{
		"primes": runPrimes,
		"bst":    runBST,
		"list":   runList,
	} {
		_, err := run(t, fn, "x")
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) {
			t.Errorf("%s: expected wrapped *strconv.NumError, got %v", name, err)
		}
	}
}

func TestRootExecute(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"primes", "10"})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	}()
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("2 3 5 7\n", buf.String()); diff != "" {
		t.Fatalf("execute (-want +got):\n%s", diff)
	}
}
