// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrEmptyText is returned when there is nothing to outline.
	ErrEmptyText = errors.New("text: empty text")

	// ErrInvalidSize is returned for sizes that are not finite and positive.
	ErrInvalidSize = errors.New("text: invalid size")
)
