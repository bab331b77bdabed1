// Copyright 2025 The Tern Authors.
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

// Package clist provides an intrusive circular doubly-linked list.
//
// A list is anchored by a sentinel node carrying no value; element nodes
// carry exactly one value each. Nodes are spliced in and out by handle in
// O(1) time with no additional memory allocations, so collections whose
// members come and go frequently (live connections, pending timers) can
// drop a member without scanning.
//
// To iterate over a list (where l is a *List):
//
//	for e := l.Front(); e != nil; e = e.Next() {
//		// do something with e.Value().
//	}
//
// Lists are not safe for concurrent use. A node may be in at most one
// list at a time; the caller owns node lifetime and is responsible for
// keeping the node-to-list association straight, since a node does not
// know which list it is in.
package clist

// A Node is a single link in a circular list: either the sentinel
// anchoring a list or an element carrying a value of type T. A node
// always references some node through its links, possibly itself; a
// detached node is a cycle of size one.
//
// The zero Node is not usable. Nodes are created detached by New and
// NewNode.
type Node[T any] struct {
	next  *Node[T]
	prev  *Node[T]
	value T
	elem  bool
}

// List anchors a circular list of values of type T. A List and its
// sentinel node are the same object; there is no separate list header.
type List[T any] = Node[T]

// New returns a new empty list: a fresh, self-looped sentinel.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.next = l
	l.prev = l
	return l
}

// NewNode returns a new detached element node carrying v. The node is in
// no list until spliced in with InsertAfter, PushFront or PushBack; the
// value it carries never changes.
func NewNode[T any](v T) *Node[T] {
	n := &Node[T]{value: v, elem: true}
	n.next = n
	n.prev = n
	return n
}

// Value returns the value carried by element node n.
//
// Value panics if n is a list sentinel; sentinels carry no value.
func (n *Node[T]) Value() T {
	if !n.elem {
		panic("clist: Value of a list sentinel")
	}
	return n.value
}

// Linked returns whether n is spliced into a cycle of size greater than
// one. It says nothing about which list that cycle belongs to.
func (n *Node[T]) Linked() bool {
	return n.next != n
}

// Empty returns true iff list l has no elements.
//
// Preconditions: l is a list sentinel.
func (l *Node[T]) Empty() bool {
	return l.next == l
}

// InsertAfter splices node into a list immediately after anchor, which
// may be the list sentinel or any node already in the list. The same
// value may be carried by any number of distinct nodes; no comparison
// or search takes place.
//
// Preconditions: anchor participates in some cycle (a list sentinel
// always does, even when its list is empty). node is detached; inserting
// a node that is still linked silently corrupts the structure it came
// from, so callers must Remove it first.
func (anchor *Node[T]) InsertAfter(node *Node[T]) {
	if checkInvariants {
		if node.Linked() {
			panic("clist: InsertAfter of a linked node")
		}
	}
	node.next = anchor.next
	node.prev = anchor
	anchor.next.prev = node
	anchor.next = node
}

// Remove splices n out of whatever list it is in and restores it to the
// detached state, so it may be inserted elsewhere or dropped. Removing an
// already-detached node is a no-op.
//
// Preconditions: n is an element node. Removing a list sentinel corrupts
// the list it anchors.
func (n *Node[T]) Remove() {
	if checkInvariants {
		if !n.elem {
			panic("clist: Remove of a list sentinel")
		}
	}
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = n
	n.prev = n
}

// PushFront inserts node at the front of list l.
//
// Preconditions: node is detached.
func (l *Node[T]) PushFront(node *Node[T]) {
	l.InsertAfter(node)
}

// PushBack inserts node at the back of list l.
//
// Preconditions: node is detached.
func (l *Node[T]) PushBack(node *Node[T]) {
	l.prev.InsertAfter(node)
}

// Front returns the first element of list l, or nil if l is empty.
func (l *Node[T]) Front() *Node[T] {
	if l.next == l {
		return nil
	}
	return l.next
}

// Back returns the last element of list l, or nil if l is empty.
func (l *Node[T]) Back() *Node[T] {
	if l.prev == l {
		return nil
	}
	return l.prev
}

// Next returns the element following n in its list, or nil if n is the
// last element or detached.
func (n *Node[T]) Next() *Node[T] {
	if n.next == n || !n.next.elem {
		return nil
	}
	return n.next
}

// Prev returns the element preceding n in its list, or nil if n is the
// first element or detached.
func (n *Node[T]) Prev() *Node[T] {
	if n.prev == n || !n.prev.elem {
		return nil
	}
	return n.prev
}

// Len returns the number of elements in the list.
//
// NOTE: This is an O(n) operation.
func (l *Node[T]) Len() int {
	count := 0
	for n := l.next; n.elem; n = n.next {
		count++
	}
	return count
}

// ForEach calls f on each element value in list order, front to back,
// stopping once the traversal returns to the sentinel. f may Remove the
// node being visited; inserting or removing other nodes of l during the
// traversal leaves the visitation sequence unspecified.
func (l *Node[T]) ForEach(f func(T)) {
	for n := l.next; n.elem; {
		next := n.next
		f(n.value)
		n = next
	}
}

// Fold accumulates the element values of list l in the order ForEach
// visits them, threading acc through f.
func Fold[T, A any](l *List[T], acc A, f func(A, T) A) A {
	for n := l.next; n.elem; {
		next := n.next
		acc = f(acc, n.value)
		n = next
	}
	return acc
}
