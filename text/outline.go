// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/tess"
	"github.com/gogpu/tess/path"
)

// Font is a parsed TrueType or OpenType font.
//
// Font is safe for concurrent use. The parsed tables are read-only; each
// Outline call gets its own shaping face and glyph buffer.
type Font struct {
	outlines *sfnt.Font
	shaping  *font.Font

	// HarfbuzzShaper keeps mutable buffers and is not safe for
	// concurrent use.
	shapers sync.Pool
}

// NewFont parses font data. The data is parsed twice: once for shaping and
// once for glyph outlines.
func NewFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	outlines, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &Font{
		outlines: outlines,
		shaping:  face.Font,
		shapers: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// Name returns the family name of the font, or "" if it has none.
func (f *Font) Name() string {
	name, err := f.outlines.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// LineHeight returns the recommended distance between baselines at size.
func (f *Font) LineHeight(size float64) (float64, error) {
	if !validSize(size) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	var buf sfnt.Buffer
	m, err := f.outlines.Metrics(&buf, floatToFixed(size), xfont.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("text: font metrics: %w", err)
	}
	return fixedToFloat(m.Height), nil
}

// Outline shapes s at size pixels per em and returns the outlines of its
// glyphs. Every contour is a closed sub-path. Lines are separated by '\n'.
//
// Glyphs without outlines, such as spaces, only move the pen, so a string
// of blanks yields an empty path.
func (f *Font) Outline(s string, size float64) (*path.Path, error) {
	if s == "" {
		return nil, ErrEmptyText
	}
	lineHeight, err := f.LineHeight(size)
	if err != nil {
		return nil, err
	}

	o := outliner{
		font:  f,
		ppem:  floatToFixed(size),
		b:     path.NewPathBuilder(),
		shape: font.NewFace(f.shaping),
	}
	for i, line := range strings.Split(s, "\n") {
		if err := o.line(line, -float64(i)*lineHeight); err != nil {
			return nil, err
		}
	}

	tess.Logger().Debug("text: outlined string",
		"runes", len([]rune(s)), "glyphs", o.glyphs, "contours", o.contours, "size", size)
	return o.b.Build(), nil
}

// outliner appends the glyphs of one Outline call to a path builder.
type outliner struct {
	font  *Font
	ppem  fixed.Int26_6
	b     *path.PathBuilder
	buf   sfnt.Buffer
	shape *font.Face

	glyphs, contours int
}

func (o *outliner) line(line string, baseline float64) error {
	runes := []rune(line)
	if len(runes) == 0 {
		return nil
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: direction(runes),
		Face:      o.shape,
		Size:      o.ppem,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := o.font.shapers.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	o.font.shapers.Put(hb)

	// Shaped glyphs are in visual order; the pen always moves right.
	var pen float64
	for _, g := range output.Glyphs {
		origin := path.Pt(pen+fixedToFloat(g.XOffset), baseline+fixedToFloat(g.YOffset))
		if err := o.glyph(sfnt.GlyphIndex(g.GlyphID), origin); err != nil { //nolint:gosec // glyph IDs fit in 16 bits
			return err
		}
		pen += fixedToFloat(g.Advance)
	}
	return nil
}

func (o *outliner) glyph(gid sfnt.GlyphIndex, origin path.Point) error {
	segments, err := o.font.outlines.LoadGlyph(&o.buf, gid, o.ppem, nil)
	if err != nil {
		return fmt.Errorf("text: failed to load glyph %d: %w", gid, err)
	}
	o.glyphs++

	// sfnt outlines are y-down.
	pt := func(p fixed.Point26_6) path.Point {
		return path.Pt(origin.X+fixedToFloat(p.X), origin.Y-fixedToFloat(p.Y))
	}
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				o.b.Close()
			}
			o.b.MoveTo(pt(seg.Args[0]))
			open = true
			o.contours++
		case sfnt.SegmentOpLineTo:
			o.b.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			o.b.QuadraticBezierTo(pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			o.b.CubicBezierTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	if open {
		o.b.Close()
	}
	return nil
}

// direction returns the direction of the first strongly directional rune.
func direction(runes []rune) di.Direction {
	for _, r := range runes {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL:
			return di.DirectionRTL
		case bidi.L:
			return di.DirectionLTR
		}
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// validSize reports whether size is finite and at least one 26.6 unit.
func validSize(size float64) bool {
	return size*64 >= 1 && !math.IsInf(size, 0)
}

func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
