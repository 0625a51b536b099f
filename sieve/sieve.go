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

// Package sieve enumerates primes with the Sieve of Eratosthenes.
package sieve

import "golang.org/x/exp/constraints"

// slot is a candidate in the sieve table.  An invalid slot has been
// eliminated as a composite or already consumed as a prime.
type slot[T constraints.Integer] struct {
	n     T
	valid bool
}

// Primes returns the primes less than or equal to n in ascending order, or
// nil if n < 2.
//
// Every prime found rescans the remainder of the table for its multiples, so
// Primes is quadratic in n and only meant for small bounds.  n must be small
// enough that n+1 does not overflow T.
func Primes[T constraints.Integer](n T) []T {
	if n < 2 {
		return nil
	}
	table := make([]slot[T], 0, int(n-1))
	for m := T(2); m <= n; m++ {
		table = append(table, slot[T]{n: m, valid: true})
	}
	var primes []T
	for i := range table {
		if !table[i].valid {
			continue
		}
		a := table[i].n
		primes = append(primes, a)
		for j := i + 1; j < len(table); j++ {
			if table[j].valid && table[j].n%a == 0 {
				table[j].valid = false
			}
		}
		table[i].valid = false
	}
	return primes
}
