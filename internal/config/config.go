// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads the TOML configuration of the tessdemo command.
//
// A configuration file only needs the keys it changes; everything else
// keeps the value from Default:
//
//	[stroke]
//	width = 6.0
//	join = "round"
//	start_cap = "round"
//	end_cap = "square"
//	dash = [12.0, 6.0]
//
//	[canvas]
//	background = "#101820"
//	color = "gold"
//
//	[input]
//	shape = "wave"
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/tess"
	"github.com/gogpu/tess/path"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid configuration")

// Built-in input shapes.
const (
	ShapeStar   = "star"
	ShapeWave   = "wave"
	ShapeShapes = "shapes"
)

// Shapes lists the built-in input shapes.
var Shapes = []string{ShapeStar, ShapeWave, ShapeShapes}

// Config is the full demo configuration.
type Config struct {
	Stroke Stroke `toml:"stroke"`
	Canvas Canvas `toml:"canvas"`
	Input  Input  `toml:"input"`
}

// Stroke mirrors tess.StrokeOptions.
type Stroke struct {
	Width          float64       `toml:"width"`
	Tolerance      float64       `toml:"tolerance"`
	Join           tess.LineJoin `toml:"join"`
	StartCap       tess.LineCap  `toml:"start_cap"`
	EndCap         tess.LineCap  `toml:"end_cap"`
	MiterLimit     float64       `toml:"miter_limit"`
	ApplyLineWidth bool          `toml:"apply_line_width"`

	// Dash is a dash pattern of alternating dash and gap lengths. Empty
	// means solid.
	Dash       []float64 `toml:"dash,omitempty"`
	DashOffset float64   `toml:"dash_offset"`
}

// Canvas describes the output image.
type Canvas struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Margin     float64 `toml:"margin"`
	Background Color   `toml:"background"`
	Color      Color   `toml:"color"`
}

// Input selects what gets stroked: Text when it is not empty, the
// built-in Shape otherwise.
type Input struct {
	Text     string  `toml:"text"`
	FontSize float64 `toml:"font_size"`
	Shape    string  `toml:"shape"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	opts := tess.DefaultStrokeOptions()
	return Config{
		Stroke: Stroke{
			Width:          4,
			Tolerance:      opts.Tolerance,
			Join:           opts.LineJoin,
			StartCap:       opts.StartCap,
			EndCap:         opts.EndCap,
			MiterLimit:     opts.MiterLimit,
			ApplyLineWidth: opts.ApplyLineWidth,
		},
		Canvas: Canvas{
			Width:      512,
			Height:     512,
			Margin:     16,
			Background: MustParseColor("white"),
			Color:      MustParseColor("black"),
		},
		Input: Input{
			FontSize: 64,
			Shape:    ShapeStar,
		},
	}
}

// Load reads the TOML file name on top of Default and validates the
// result. Unknown keys are an error.
func Load(name string) (Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

// Decode is Load for an already opened reader.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (cfg Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Validate checks the canvas and input sections, and the stroke section
// through tess.StrokeOptions.Validate.
func (cfg Config) Validate() error {
	if err := cfg.StrokeOptions().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	// StrokeOptions raises the miter limit; a file asking for less is
	// still wrong.
	if cfg.Stroke.MiterLimit < tess.MinimumMiterLimit {
		return fmt.Errorf("%w: stroke.miter_limit %v is below %v", ErrInvalid, cfg.Stroke.MiterLimit, tess.MinimumMiterLimit)
	}

	for _, l := range cfg.Stroke.Dash {
		if !(l >= 0) || math.IsInf(l, 0) {
			return fmt.Errorf("%w: stroke.dash length %v", ErrInvalid, l)
		}
	}
	if math.IsNaN(cfg.Stroke.DashOffset) || math.IsInf(cfg.Stroke.DashOffset, 0) {
		return fmt.Errorf("%w: stroke.dash_offset %v", ErrInvalid, cfg.Stroke.DashOffset)
	}
	// The star is stroked through the builder API, which takes no path.
	if cfg.Dash().IsDashed() && cfg.Input.Text == "" && cfg.Input.Shape == ShapeStar {
		return fmt.Errorf("%w: stroke.dash is not supported for input.shape %q", ErrInvalid, ShapeStar)
	}

	c := cfg.Canvas
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Width, c.Height)
	case !(c.Margin >= 0) || 2*c.Margin >= float64(min(c.Width, c.Height)):
		return fmt.Errorf("%w: canvas.margin %v", ErrInvalid, c.Margin)
	}

	in := cfg.Input
	switch {
	case in.Text != "":
		if !(in.FontSize > 0) || math.IsInf(in.FontSize, 0) {
			return fmt.Errorf("%w: input.font_size %v", ErrInvalid, in.FontSize)
		}
	case !slices.Contains(Shapes, in.Shape):
		return fmt.Errorf("%w: unknown input.shape %q", ErrInvalid, in.Shape)
	}
	return nil
}

// StrokeOptions converts the stroke section.
func (cfg Config) StrokeOptions() tess.StrokeOptions {
	s := cfg.Stroke
	opts := tess.DefaultStrokeOptions().
		WithLineWidth(s.Width).
		WithTolerance(s.Tolerance).
		WithLineJoin(s.Join).
		WithStartCap(s.StartCap).
		WithEndCap(s.EndCap).
		WithMiterLimit(s.MiterLimit)
	if !s.ApplyLineWidth {
		opts = opts.DontApplyLineWidth()
	}
	return opts
}

// Dash returns the dash pattern of the stroke section, or nil for a
// solid stroke.
func (cfg Config) Dash() *path.Dash {
	return path.NewDash(cfg.Stroke.Dash...).WithOffset(cfg.Stroke.DashOffset)
}
