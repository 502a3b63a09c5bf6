// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package keetree

import (
	"errors"
	"strings"
)

var (
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrInvalidConfig  = errors.New("invalid config")
)

// PatternError is returned when a segment of a pattern cannot be registered.
// It reports the offending segment and the full pattern it belongs to, if known.
type PatternError struct {
	// Pattern is the full pattern being registered. It may be empty when the error
	// originates from a single segment insertion.
	Pattern string
	// Segment is the segment that failed to register.
	Segment string
	// Err is the underlying cause, usually a *regexp/syntax.Error.
	Err error
}

func (e *PatternError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid pattern: segment '")
	sb.WriteString(e.Segment)
	sb.WriteByte('\'')
	if e.Pattern != "" {
		sb.WriteString(" in ")
		sb.WriteString(e.Pattern)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap returns the sentinel value [ErrInvalidPattern] and the underlying cause.
func (e *PatternError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidPattern}
	}
	return []error{ErrInvalidPattern, e.Err}
}
