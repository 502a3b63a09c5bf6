// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package keetree

import (
	"regexp"
	"strings"
)

const (
	paramDelim    byte = ':'
	catchAllDelim byte = '*'

	regexpPrefix = "r{"
	regexpSuffix = "}"
)

// kind is the match kind of a registered segment key.
type kind uint8

const (
	literal kind = iota
	regex
	param
	catchAll
)

func (k kind) String() string {
	switch k {
	case regex:
		return "regexp"
	case param:
		return "param"
	case catchAll:
		return "catchall"
	default:
		return "literal"
	}
}

// classify returns the match kind of key. The regexp form takes priority over the
// single character prefixes, so "r{:x}" is a regexp and ":r{x}" a parameter.
func classify(key string) kind {
	switch {
	case isRegexpKey(key):
		return regex
	case len(key) > 0 && key[0] == paramDelim:
		return param
	case len(key) > 0 && key[0] == catchAllDelim:
		return catchAll
	default:
		return literal
	}
}

func isRegexpKey(key string) bool {
	return len(key) >= len(regexpPrefix)+len(regexpSuffix) &&
		strings.HasPrefix(key, regexpPrefix) &&
		strings.HasSuffix(key, regexpSuffix)
}

// segmentRegexp pairs a compiled expression with the key it was registered under.
type segmentRegexp struct {
	key string
	re  *regexp.Regexp
}

// parseRegexp compiles the expression enclosed in a "r{...}" key.
func parseRegexp(key string) (*regexp.Regexp, error) {
	pattern := key[len(regexpPrefix) : len(key)-len(regexpSuffix)]
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Segment: key, Err: err}
	}
	return re, nil
}
