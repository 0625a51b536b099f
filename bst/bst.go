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

// Package bst implements an unbalanced in-memory binary search tree.
//
// Each node holds an optional value and up to two children.  A node without
// a value is an empty tree; the root of a freshly created tree is such a node
// until the first insertion.
//
// For every node holding v, all values in its left subtree are strictly less
// than v and all values in its right subtree are greater than or equal to v.
// Equal values therefore always descend to the right, and unlike btree the
// tree may hold multiple equivalent values.
//
// No rebalancing is performed.  Inserting already sorted input yields a chain
// whose depth equals the number of values, so the tree is only suitable for
// small or randomly ordered data sets.
package bst

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// LessFunc[T] determines how to order a type 'T'.  It should implement a strict
// ordering, and should return true if within that ordering, 'a' < 'b'.
type LessFunc[T any] func(a, b T) bool

// Less[T] returns a default LessFunc that uses the '<' operator for types that support it.
func Less[T constraints.Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

type optionalItem[T any] struct {
	item  T
	valid bool
}

func optional[T any](item T) optionalItem[T] {
	return optionalItem[T]{item: item, valid: true}
}

// node is a subtree.  Children always hold a value; only the root of an
// empty tree may not.
type node[T any] struct {
	value optionalItem[T]
	left  *node[T]
	right *node[T]
}

// insert places item in the subtree rooted at this node, creating the child
// it descends into when absent.
func (n *node[T]) insert(item T, less LessFunc[T]) {
	if !n.value.valid {
		n.value = optional(item)
		return
	}
	if less(item, n.value.item) {
		if n.left == nil {
			n.left = new(node[T])
		}
		n.left.insert(item, less)
		return
	}
	if n.right == nil {
		n.right = new(node[T])
	}
	n.right.insert(item, less)
}

// search reports whether an item equivalent to key is in the subtree.
func (n *node[T]) search(key T, less LessFunc[T]) bool {
	if n == nil || !n.value.valid {
		return false
	}
	switch {
	case less(key, n.value.item):
		return n.left.search(key, less)
	case less(n.value.item, key):
		return n.right.search(key, less)
	}
	return true
}

// leftmost returns the first item in the subtree.
func leftmost[T any](n *node[T]) (_ T, found bool) {
	if n == nil || !n.value.valid {
		return
	}
	for n.left != nil {
		n = n.left
	}
	return n.value.item, true
}

// rightmost returns the last item in the subtree.
func rightmost[T any](n *node[T]) (_ T, found bool) {
	if n == nil || !n.value.valid {
		return
	}
	for n.right != nil {
		n = n.right
	}
	return n.value.item, true
}

func (n *node[T]) height() int {
	if n == nil || !n.value.valid {
		return 0
	}
	l, r := n.left.height(), n.right.height()
	if l > r {
		return l + 1
	}
	return r + 1
}

func (n *node[T]) print(w io.Writer, side string, level int) {
	if n == nil || !n.value.valid {
		return
	}
	fmt.Fprintf(w, "%s%s:%v\n", strings.Repeat("  ", level), side, n.value.item)
	n.left.print(w, "L", level+1)
	n.right.print(w, "R", level+1)
}

// Tree is a binary search tree holding values of type T.
//
// Tree is not safe for concurrent mutation by multiple goroutines.
type Tree[T any] struct {
	root   *node[T]
	length int
	less   LessFunc[T]
}

// NewG creates an empty tree ordered by less.
func NewG[T any](less LessFunc[T]) *Tree[T] {
	if less == nil {
		panic("nil less func")
	}
	return &Tree[T]{
		root: new(node[T]),
		less: less,
	}
}

// NewOrdered creates an empty tree for ordered types.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return NewG[T](Less[T]())
}

// Insert adds item to the tree.  Items equivalent to one already present are
// kept as well and placed in its right subtree.
func (t *Tree[T]) Insert(item T) {
	t.root.insert(item, t.less)
	t.length++
}

// Search reports whether an item equivalent to key is in the tree.
func (t *Tree[T]) Search(key T) bool {
	return t.root.search(key, t.less)
}

// Min returns the smallest item in the tree, or (zeroValue, false) if the tree is empty.
func (t *Tree[T]) Min() (_ T, _ bool) {
	return leftmost(t.root)
}

// Max returns the largest item in the tree, or (zeroValue, false) if the tree is empty.
func (t *Tree[T]) Max() (_ T, _ bool) {
	return rightmost(t.root)
}

// Len returns the number of items in the tree, duplicates included.
func (t *Tree[T]) Len() int {
	return t.length
}

// Height returns the number of nodes on the longest path from the root to a
// leaf, 0 for an empty tree.
func (t *Tree[T]) Height() int {
	return t.root.height()
}

// Print writes the shape of the tree to w, one item per line, indented by
// depth.  Children are marked L or R.
func (t *Tree[T]) Print(w io.Writer) {
	t.root.print(w, "ROOT", 0)
}
