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

// Package linkedlist implements a singly linked list with stack semantics.
//
// Values are pushed to and popped from the head.  FromSlice and ToSlice are
// inverses of each other: the head of a list built with FromSlice is the last
// element of the slice, and ToSlice returns elements oldest-pushed first.
package linkedlist

import (
	"fmt"
	"strings"
)

type node[T any] struct {
	data T
	next *node[T]
}

// List is a singly linked list.  The zero value is an empty list ready to
// use.
//
// List is not safe for concurrent mutation by multiple goroutines.
type List[T any] struct {
	head *node[T]
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// FromSlice creates a list by pushing each value in order, so the last value
// ends up at the head.
func FromSlice[T any](values []T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Push(v)
	}
	return l
}

// IsEmpty returns true if the list holds no values.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len walks the list and returns the number of values in it.
func (l *List[T]) Len() int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}
	return count
}

// Push adds value at the head of the list.
func (l *List[T]) Push(value T) {
	l.head = &node[T]{data: value, next: l.head}
}

// Pop removes the head of the list and returns its value.  If the list is
// empty, returns (zeroValue, false).
func (l *List[T]) Pop() (_ T, _ bool) {
	n := l.head
	if n == nil {
		return
	}
	l.head, n.next = n.next, nil
	return n.data, true
}

// Peek returns the value at the head of the list without removing it, or
// (zeroValue, false) if the list is empty.
func (l *List[T]) Peek() (_ T, _ bool) {
	if l.head == nil {
		return
	}
	return l.head.data, true
}

// PeekMut returns a pointer to the value at the head of the list, or nil if
// the list is empty.  The pointer stays valid until the head is popped.
func (l *List[T]) PeekMut() *T {
	if l.head == nil {
		return nil
	}
	return &l.head.data
}

// Reverse moves every value of l into a new list in reverse order and returns
// it.  l is left empty.
func (l *List[T]) Reverse() *List[T] {
	reversed := New[T]()
	for v, ok := l.Pop(); ok; v, ok = l.Pop() {
		reversed.Push(v)
	}
	return reversed
}

// ToSlice returns the values of the list oldest-pushed first, i.e. from the
// tail to the head.
func (l *List[T]) ToSlice() []T {
	var out []T
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.data)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// String formats the list in ToSlice order.
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range l.ToSlice() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}
