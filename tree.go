// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package keetree

import (
	"errors"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/leizaf/keetree/internal/iterutil"
)

// Tree registers values against separator delimited patterns such as "/users/:id" or "/files/*rest"
// and resolves concrete paths to the best match. It is a thin layer over a root [Node] that takes care
// of splitting strings into segments: leading separators are trimmed and every remaining separator
// starts a new segment, so "/doc/" yields the segments "doc" and "".
//
// A Tree is not safe for concurrent use; callers sharing a Tree must serialize writes
// with their own lock.
type Tree[V any] struct {
	root   Node[V]
	sep    string
	logger *slog.Logger
}

// New returns a ready to use Tree.
func New[V any](opts ...Option) (*Tree[V], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	return &Tree[V]{
		sep:    cfg.sep,
		logger: slog.New(cfg.handler),
	}, nil
}

// MustNew is a convenience wrapper for [New] that panics on error.
func MustNew[V any](opts ...Option) *Tree[V] {
	t, err := New[V](opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Segments splits path the same way the tree does for every operation.
func (t *Tree[V]) Segments(path string) []string {
	return slices.Collect(iterutil.SplitPathSeq(path, t.sep))
}

// Insert registers value for pattern, replacing any value previously registered for the same pattern.
// It returns a [PatternError] wrapping [ErrInvalidPattern] if a regexp segment does not compile, in which
// case the tree is not modified.
func (t *Tree[V]) Insert(pattern string, value V) error {
	segments := t.Segments(pattern)
	if err := t.root.Insert(segments, value); err != nil {
		var perr *PatternError
		if errors.As(err, &perr) {
			perr.Pattern = pattern
		}
		t.logger.Warn("pattern rejected", slog.String("pattern", pattern), slog.Any("error", err))
		return err
	}

	t.logger.Debug(
		"pattern registered",
		slog.String("pattern", pattern),
		slog.String("kind", classify(segments[len(segments)-1]).String()),
		slog.Int("segments", len(segments)),
	)
	return nil
}

// MustInsert is like [Tree.Insert] but panics if the pattern cannot be registered.
func (t *Tree[V]) MustInsert(pattern string, value V) {
	if err := t.Insert(pattern, value); err != nil {
		panic(err)
	}
}

// Get returns the value registered for the exact pattern.
func (t *Tree[V]) Get(pattern string) (V, bool) {
	return t.root.Get(t.Segments(pattern))
}

// Update calls fn with a pointer to the value registered for the exact pattern and reports
// whether such a value exists.
func (t *Tree[V]) Update(pattern string, fn func(value *V)) bool {
	p := t.root.GetPtr(t.Segments(pattern))
	if p == nil {
		return false
	}
	fn(p)
	return true
}

// Lookup resolves path against the registered patterns. See [Node.At] for the precedence rules.
func (t *Tree[V]) Lookup(path string) (V, bool) {
	return t.root.At(t.Segments(path))
}

// Delete removes pattern, and every pattern it prefixes, from the tree. It returns the value registered
// for pattern, if any.
func (t *Tree[V]) Delete(pattern string) (V, bool) {
	value, ok := t.root.Remove(t.Segments(pattern))
	if ok {
		t.logger.Debug("pattern removed", slog.String("pattern", pattern))
	}
	return value, ok
}

// Len returns the number of registered patterns.
func (t *Tree[V]) Len() int {
	return t.root.Len()
}

// Routes returns every registered pattern, rebuilt with a leading separator, and its value.
func (t *Tree[V]) Routes() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for path, value := range t.root.Walk() {
			if !yield(t.sep+strings.Join(path, t.sep), value) {
				return
			}
		}
	}
}

// Root returns the root node of the tree.
func (t *Tree[V]) Root() *Node[V] {
	return &t.root
}

func (t *Tree[V]) String() string {
	return t.root.String()
}
