// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package keetree

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Node is a path segment trie. Each node optionally holds a value and owns a [Map] of children
// keyed by segment. A path is a slice of segments, the zero value is an empty root ready to use.
//
// [Node.Insert], [Node.Get] and [Node.Remove] address registered patterns exactly, segment by segment.
// [Node.At] resolves a concrete path against the registered patterns, trying at each level the exact
// segment, then regexps in registration order, then the parameter, then the catch-all, and backtracking
// to the next candidate when a subtree does not match the rest of the path.
//
// A Node is not safe for concurrent use. Concurrent reads are safe as long as no write happens.
type Node[V any] struct {
	// Nil unless a pattern terminates on this node.
	value *V

	children Map[Node[V]]

	// Set when this node is reached through a catch-all key. Once assigned, catchAll is immutable.
	catchAll bool
}

// IsEmpty reports whether the node holds neither a value nor children.
func (n *Node[V]) IsEmpty() bool {
	return n.value == nil && n.children.IsEmpty()
}

// Get returns the value registered at the exact path. Parameter, regexp and catch-all
// segments are compared literally, e.g. Get([]string{"users", ":id"}).
func (n *Node[V]) Get(path []string) (value V, ok bool) {
	if p := n.GetPtr(path); p != nil {
		return *p, true
	}
	return
}

// GetPtr is like [Node.Get] but returns a pointer to the stored value, allowing
// in place modification. It returns nil if no value is registered at path.
func (n *Node[V]) GetPtr(path []string) *V {
	current := n
	for _, key := range path {
		child, ok := current.children.Get(key)
		if !ok {
			return nil
		}
		current = child
	}
	return current.value
}

// Insert registers value at path, creating the missing nodes. An existing value at the same path
// is replaced. If a regexp segment cannot be compiled, Insert returns an error wrapping
// [ErrInvalidPattern] and the trie is left unchanged.
func (n *Node[V]) Insert(path []string, value V) error {
	// Compile every regexp first, a partial insertion could change the active
	// parameter or catch-all key of the maps already visited.
	for _, key := range path {
		if classify(key) == regex {
			if _, err := parseRegexp(key); err != nil {
				return err
			}
		}
	}

	current := n
	for _, key := range path {
		child, err := current.children.Insert(key)
		if err != nil {
			return err
		}
		if classify(key) == catchAll {
			child.catchAll = true
		}
		current = child
	}
	current.value = &value
	return nil
}

// MustInsert is like [Node.Insert] but panics if the path cannot be registered.
func (n *Node[V]) MustInsert(path []string, value V) {
	if err := n.Insert(path, value); err != nil {
		panic(err)
	}
}

// Remove deletes the subtree registered at path and returns the value it held, if any.
// Every ancestor left empty by the removal is deleted as well. If path does not lead to an existing
// node, the trie is not modified. Removing the empty path clears the receiver.
func (n *Node[V]) Remove(path []string) (value V, ok bool) {
	old, _ := n.remove(path)
	if old != nil {
		return *old, true
	}
	return
}

func (n *Node[V]) remove(path []string) (old *V, found bool) {
	if len(path) == 0 {
		old = n.value
		n.value = nil
		n.children = Map[Node[V]]{}
		return old, true
	}

	child, ok := n.children.Get(path[0])
	if !ok {
		return nil, false
	}

	old, found = child.remove(path[1:])
	if found && child.IsEmpty() {
		n.children.Remove(path[0])
	}
	return old, found
}

// At resolves a concrete path against the registered patterns and returns the value of the best
// match. Once a catch-all node is reached, the remaining segments are ignored.
func (n *Node[V]) At(path []string) (value V, ok bool) {
	if p := n.at(path); p != nil {
		return *p, true
	}
	return
}

func (n *Node[V]) at(path []string) *V {
	if n.catchAll || len(path) == 0 {
		return n.value
	}

	for child := range n.children.Matches(path[0]) {
		if v := child.at(path[1:]); v != nil {
			return v
		}
	}
	return nil
}

// Len returns the number of values stored in the trie.
func (n *Node[V]) Len() int {
	var size int
	if n.value != nil {
		size++
	}
	for _, child := range n.children.All() {
		size += child.Len()
	}
	return size
}

// Walk returns a depth-first sequence of every registered path and its value. Siblings are
// visited in key order. Each yielded path is a fresh slice owned by the caller.
func (n *Node[V]) Walk() iter.Seq2[[]string, V] {
	return func(yield func([]string, V) bool) {
		n.walk(nil, yield)
	}
}

func (n *Node[V]) walk(path []string, yield func([]string, V) bool) bool {
	if n.value != nil && !yield(slices.Clone(path), *n.value) {
		return false
	}
	for key, child := range n.children.All() {
		if !child.walk(append(path, key), yield) {
			return false
		}
	}
	return true
}

func (n *Node[V]) String() string {
	sb := strings.Builder{}
	n.string(&sb, "", 0)
	return sb.String()
}

func (n *Node[V]) string(sb *strings.Builder, key string, space int) {
	sb.WriteString(strings.Repeat(" ", space))
	sb.WriteString("path: ")
	sb.WriteString(key)

	if n.value != nil {
		sb.WriteString(" [leaf=")
		fmt.Fprint(sb, *n.value)
		sb.WriteByte(']')
	}
	if n.catchAll {
		sb.WriteString(" [catchall]")
	}

	sb.WriteByte('\n')

	for k, child := range n.children.All() {
		child.string(sb, k, space+4)
	}
}
