// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package keetree

import (
	"iter"
	"maps"
	"slices"
)

// Map associates path segment keys with child items of type T. Every inserted key is
// classified once as a literal, a regexp (r{pattern}), a parameter (:name) or a catch-all
// (*name), which determines how it is considered by [Map.Matches]. The zero value is an
// empty map ready to use. A Map is not safe for concurrent use.
type Map[T any] struct {
	// Every key, including regexp, parameter and catch-all keys, has an entry here.
	children map[string]*T

	// Compiled regexp keys in registration order.
	regexps []segmentRegexp

	// Keys of the active parameter and catch-all entries, empty if unset.
	// They always reference an existing entry of children.
	param    string
	catchAll string
}

// IsEmpty reports whether the map holds no entry.
func (m *Map[T]) IsEmpty() bool {
	return len(m.children) == 0
}

// Len returns the number of entries, whatever their kind.
func (m *Map[T]) Len() int {
	return len(m.children)
}

// Get returns the entry registered under the exact key. No pattern interpretation
// is applied, so Get(":id") returns the parameter entry itself.
func (m *Map[T]) Get(key string) (*T, bool) {
	child, ok := m.children[key]
	return child, ok
}

// Insert returns the entry registered under key, creating a zero T if it does not exist.
// Inserting a parameter or catch-all key makes it the active one for this map, replacing any
// previously registered key of the same kind for matching purpose. A regexp key that fails to
// compile returns an error wrapping [ErrInvalidPattern] and leaves the map unchanged.
func (m *Map[T]) Insert(key string) (*T, error) {
	child, exists := m.children[key]

	switch classify(key) {
	case regex:
		if !exists {
			re, err := parseRegexp(key)
			if err != nil {
				return nil, err
			}
			m.regexps = append(m.regexps, segmentRegexp{key: key, re: re})
		}
	case param:
		m.param = key
	case catchAll:
		m.catchAll = key
	}

	if !exists {
		if m.children == nil {
			m.children = make(map[string]*T)
		}
		child = new(T)
		m.children[key] = child
	}
	return child, nil
}

// MustInsert is like [Map.Insert] but panics if the key cannot be registered.
func (m *Map[T]) MustInsert(key string) *T {
	child, err := m.Insert(key)
	if err != nil {
		panic(err)
	}
	return child
}

// Remove deletes the entry registered under key and returns it. If key is the active
// parameter or catch-all key, it is unset.
func (m *Map[T]) Remove(key string) (*T, bool) {
	switch classify(key) {
	case regex:
		m.regexps = slices.DeleteFunc(m.regexps, func(r segmentRegexp) bool {
			return r.key == key
		})
	case param:
		if m.param == key {
			m.param = ""
		}
	case catchAll:
		if m.catchAll == key {
			m.catchAll = ""
		}
	}

	child, ok := m.children[key]
	if !ok {
		return nil, false
	}
	delete(m.children, key)
	return child, true
}

// Matches returns a lazy sequence of the entries matching segment, in precedence order:
//   - the entry registered under the exact segment, if any;
//   - every regexp entry whose expression matches segment, in registration order;
//   - the active parameter entry, if any;
//   - the active catch-all entry, if any.
//
// The sequence is evaluated on each iteration and stops as soon as the consumer does.
// The map must not be modified while iterating.
func (m *Map[T]) Matches(segment string) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if child, ok := m.children[segment]; ok {
			if !yield(child) {
				return
			}
		}

		for _, r := range m.regexps {
			if r.re.MatchString(segment) {
				if !yield(m.children[r.key]) {
					return
				}
			}
		}

		if m.param != "" {
			if !yield(m.children[m.param]) {
				return
			}
		}

		if m.catchAll != "" {
			yield(m.children[m.catchAll])
		}
	}
}

// All returns every entry with its key, sorted by key.
func (m *Map[T]) All() iter.Seq2[string, *T] {
	return func(yield func(string, *T) bool) {
		for _, key := range slices.Sorted(maps.Keys(m.children)) {
			if !yield(key, m.children[key]) {
				return
			}
		}
	}
}
