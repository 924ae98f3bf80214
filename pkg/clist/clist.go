// Copyright 2025 The CircularLikedList Authors.
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

// Package clist provides a singly-linked circular list of integers.
//
// The list keeps a single anchor, the tail node. The head is always the
// node that follows the tail, so both ends can be reached in O(1) time.
// Nodes are stored in an arena owned by the list and refer to each other
// by slot reference; no node ever escapes the package, only values are
// copied out.
package clist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPosition is returned when a position falls outside the
	// valid range of the operation.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrEmpty is returned by operations that need at least one element.
	ErrEmpty = errors.New("list is empty")

	// ErrNotFound is returned by Search when no element holds the value.
	ErrNotFound = errors.New("value not found")
)

// ref identifies a node slot in the arena. Slot i is stored at nodes[i-1];
// the zero ref means no node.
type ref int

// node is the storage unit of the list.
type node struct {
	value int
	next  ref
}

// List is a circular singly-linked list.
//
// The zero value for List is an empty list ready to use.
//
// List is not safe for concurrent use. Callers that share a List between
// goroutines must serialize access themselves.
type List struct {
	// tail is the anchor. It is zero iff size is zero.
	tail ref

	// size is the number of nodes in the cycle.
	size int

	// nodes is the arena. free holds the refs of released slots.
	nodes []node
	free  []ref
}

// New returns an empty list.
func New() *List {
	return &List{}
}

// Empty returns true iff the list holds no elements.
func (l *List) Empty() bool {
	return l.size == 0
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return l.size
}

func (l *List) node(r ref) *node {
	return &l.nodes[r-1]
}

// alloc stores v in a free slot, growing the arena if none is available.
func (l *List) alloc(v int) ref {
	if n := len(l.free); n > 0 {
		r := l.free[n-1]
		l.free = l.free[:n-1]
		*l.node(r) = node{value: v}
		return r
	}
	l.nodes = append(l.nodes, node{value: v})
	return ref(len(l.nodes))
}

// release returns the slot of r to the free list and yields its value.
func (l *List) release(r ref) int {
	n := l.node(r)
	v := n.value
	*n = node{}
	l.free = append(l.free, r)
	return v
}

func (l *List) head() ref {
	return l.node(l.tail).next
}

// walk returns the node at index i, counting from the head.
//
// Precondition: 0 <= i < l.size.
func (l *List) walk(i int) ref {
	r := l.head()
	for ; i > 0; i-- {
		r = l.node(r).next
	}
	return r
}

// PushFront inserts v at the front of the list.
func (l *List) PushFront(v int) {
	r := l.alloc(v)
	if l.tail == 0 {
		l.node(r).next = r
		l.tail = r
	} else {
		l.node(r).next = l.head()
		l.node(l.tail).next = r
	}
	l.size++
}

// PushBack inserts v at the back of the list.
func (l *List) PushBack(v int) {
	if l.tail == 0 {
		l.PushFront(v)
		return
	}
	r := l.alloc(v)
	l.node(r).next = l.head()
	l.node(l.tail).next = r
	l.tail = r
	l.size++
}

// Insert inserts v so that it ends up at index pos. Valid positions are
// 0 through Len(), inclusive.
func (l *List) Insert(pos, v int) error {
	if pos < 0 || pos > l.size {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidPosition, pos, l.size)
	}
	switch pos {
	case 0:
		l.PushFront(v)
		return nil
	case l.size:
		l.PushBack(v)
		return nil
	}
	prev := l.walk(pos - 1)
	r := l.alloc(v)
	l.node(r).next = l.node(prev).next
	l.node(prev).next = r
	l.size++
	return nil
}

// PopFront removes the first element and returns its value.
func (l *List) PopFront() (int, error) {
	if l.tail == 0 {
		return 0, ErrEmpty
	}
	h := l.head()
	if h == l.tail {
		l.tail = 0
	} else {
		l.node(l.tail).next = l.node(h).next
	}
	l.size--
	return l.release(h), nil
}

// PopBack removes the last element and returns its value.
//
// The predecessor of the tail has to be found by walking from the head, so
// this is an O(n) operation.
func (l *List) PopBack() (int, error) {
	if l.tail == 0 {
		return 0, ErrEmpty
	}
	t := l.tail
	if l.node(t).next == t {
		l.tail = 0
	} else {
		prev := l.walk(l.size - 2)
		l.node(prev).next = l.node(t).next
		l.tail = prev
	}
	l.size--
	return l.release(t), nil
}

// Remove removes the element at index pos and returns its value. Valid
// positions are 0 through Len()-1, inclusive.
func (l *List) Remove(pos int) (int, error) {
	if l.tail == 0 {
		return 0, ErrEmpty
	}
	if pos < 0 || pos >= l.size {
		return 0, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidPosition, pos, l.size-1)
	}
	switch pos {
	case 0:
		return l.PopFront()
	case l.size - 1:
		return l.PopBack()
	}
	prev := l.walk(pos - 1)
	t := l.node(prev).next
	l.node(prev).next = l.node(t).next
	l.size--
	return l.release(t), nil
}

// Search returns the index of the first element equal to v, counting from
// the head. It returns ErrNotFound if there is none.
func (l *List) Search(v int) (int, error) {
	if l.tail == 0 {
		return 0, ErrNotFound
	}
	r := l.head()
	for i := 0; i < l.size; i++ {
		n := l.node(r)
		if n.value == v {
			return i, nil
		}
		r = n.next
	}
	return 0, ErrNotFound
}

// Front returns the value of the first element.
func (l *List) Front() (int, error) {
	if l.tail == 0 {
		return 0, ErrEmpty
	}
	return l.node(l.head()).value, nil
}

// Back returns the value of the last element.
func (l *List) Back() (int, error) {
	if l.tail == 0 {
		return 0, ErrEmpty
	}
	return l.node(l.tail).value, nil
}

// ForEach calls visit once for every element, from head to tail. visit must
// not modify the list.
func (l *List) ForEach(visit func(v int)) {
	if l.tail == 0 || visit == nil {
		return
	}
	r := l.head()
	for i := 0; i < l.size; i++ {
		n := l.node(r)
		visit(n.value)
		r = n.next
	}
}

// Values returns a copy of the elements, from head to tail.
func (l *List) Values() []int {
	vs := make([]int, 0, l.size)
	l.ForEach(func(v int) {
		vs = append(vs, v)
	})
	return vs
}

// Clear removes every element. It is a no-op on an empty list.
func (l *List) Clear() {
	for l.tail != 0 {
		l.PopFront()
	}
	l.nodes = nil
	l.free = nil
}
