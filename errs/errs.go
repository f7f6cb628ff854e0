// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package errs defines the error categories shared by all htm packages.

Every error returned by the library wraps exactly one of the sentinel
values below, so callers can classify failures with errors.Is:

	if errors.Is(err, errs.ErrBounds) { ... }

ErrDomain is for invalid numeric input to a pure function (k > n in
combinations, negative factorial argument, zero-width normalization range).
ErrBounds is for an index outside [0, capacity) or a coordinate outside a
grid dimension. ErrConfig is for a parameter violating a declared invariant,
e.g. a permanence or density outside [0, 1].
*/
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned for invalid arguments to pure numeric functions
	ErrDomain = errors.New("domain error")

	// ErrBounds is returned for out-of-range indexes and coordinates
	ErrBounds = errors.New("bounds error")

	// ErrConfig is returned for parameters violating a declared invariant
	ErrConfig = errors.New("config error")
)

// Domainf returns a formatted error wrapping ErrDomain
func Domainf(format string, args ...any) error {
	return wrap(ErrDomain, format, args...)
}

// Boundsf returns a formatted error wrapping ErrBounds
func Boundsf(format string, args ...any) error {
	return wrap(ErrBounds, format, args...)
}

// Configf returns a formatted error wrapping ErrConfig
func Configf(format string, args ...any) error {
	return wrap(ErrConfig, format, args...)
}

func wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), kind)
}
