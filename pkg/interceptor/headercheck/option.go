// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package headercheck

import (
	"github.com/pion/logging"
	"github.com/pkg/errors"
)

var errNilLoggerFactory = errors.New("headercheck: logger factory is nil")

// An Option is a function that can be used to configure a header check Interceptor.
type Option func(*Interceptor) error

// WithLoggerFactory sets the logger factory for the interceptor.
func WithLoggerFactory(loggerFactory logging.LoggerFactory) Option {
	return func(i *Interceptor) error {
		if loggerFactory == nil {
			return errNilLoggerFactory
		}
		i.loggerFactory = loggerFactory

		return nil
	}
}

// DropInvalid makes the interceptor discard invalid batches and keep reading
// instead of returning the error to the caller.
func DropInvalid() Option {
	return func(i *Interceptor) error {
		i.dropInvalid = true

		return nil
	}
}
