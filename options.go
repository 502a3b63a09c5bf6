// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package keetree

import (
	"fmt"
	"log/slog"

	"github.com/leizaf/keetree/internal/slogpretty"
)

const defaultSeparator = "/"

// Option configures a [Tree].
type Option interface {
	apply(*config) error
}

type config struct {
	sep     string
	handler slog.Handler
}

func defaultConfig() *config {
	return &config{
		sep:     defaultSeparator,
		handler: slog.DiscardHandler,
	}
}

type optionFunc func(*config) error

func (o optionFunc) apply(c *config) error {
	return o(c)
}

// WithSeparator sets the string used to split patterns and paths into segments. Leading
// separators are trimmed before splitting. By default, the separator is "/".
func WithSeparator(sep string) Option {
	return optionFunc(func(c *config) error {
		if sep == "" {
			return fmt.Errorf("%w: separator cannot be empty", ErrInvalidConfig)
		}
		c.sep = sep
		return nil
	})
}

// WithLogger sets the handler receiving the tree events. Registrations and removals are
// logged at debug level, rejected patterns at warn level. By default, nothing is logged.
func WithLogger(handler slog.Handler) Option {
	return optionFunc(func(c *config) error {
		if handler == nil {
			return fmt.Errorf("%w: log handler cannot be nil", ErrInvalidConfig)
		}
		c.handler = handler
		return nil
	})
}

// WithPrettyLogger logs the tree events in a human-readable, colored format to os.Stdout
// (and os.Stderr for errors). It is meant for development.
func WithPrettyLogger() Option {
	return WithLogger(slogpretty.DefaultHandler)
}
