// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

// Package keetree implements a path segment trie used to register values, typically handlers,
// against hierarchical patterns and to resolve concrete paths to the best matching value.
//
// A pattern is a sequence of segments. Each segment is one of:
//
//	contact      literal, matched by string equality
//	r{^\d+$}     regexp, matched when the enclosed expression matches the segment
//	:id          parameter, matches any single segment
//	*rest        catch-all, matches the segment and every segment after it
//
// When resolving a path, candidates are tried at each level in that order: literal, regexps in
// registration order, parameter, catch-all. The first candidate whose subtree matches the rest
// of the path wins, otherwise the next one is tried.
//
//	t := keetree.MustNew[string]()
//	t.MustInsert("/users/:id", "user")
//	t.MustInsert("/users/me", "me")
//	t.MustInsert("/files/*rest", "files")
//
//	t.Lookup("/users/me")    // "me", true
//	t.Lookup("/users/42")    // "user", true
//	t.Lookup("/files/a/b/c") // "files", true
//
// [Node] and [Map] are the building blocks of [Tree] and can be used directly with
// pre-split paths.
package keetree
