// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package text turns strings into glyph outline paths that can be stroked
// by tess.
//
// Text is shaped with the HarfBuzz port of go-text/typesetting, so kerning,
// ligatures and right-to-left runs come out positioned as a text renderer
// would place them. Glyph outlines are then loaded with
// golang.org/x/image/font/sfnt and appended to a path.Path, one closed
// sub-path per contour.
//
// # Example usage
//
//	f, err := text.NewFont(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, err := f.Outline("Hello", 48)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_, err = tess.Stroke(p, tess.DefaultStrokeOptions(), sink)
//
// # Coordinate System
//
// Outlines are y-up like the rest of tess. The origin is the pen position
// at the start of the baseline of the first line; each further line moves
// down by the font's line height.
package text
