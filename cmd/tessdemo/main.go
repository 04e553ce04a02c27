// Command tessdemo strokes a shape or a line of text with tess and writes
// the triangles, rasterized on the CPU, to a PNG file.
//
// Usage:
//
//	tessdemo [-config demo.toml] [-out stroke.png] [-text "Hello"] [-join round] [-cap square] [-width 6] [-dash 8,4] [-shape wave] [-v] [-dump-config]
//
// Flags override the values of the configuration file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/font/gofont/goregular"
	"honnef.co/go/curve"

	"github.com/gogpu/tess"
	"github.com/gogpu/tess/internal/config"
	"github.com/gogpu/tess/path"
	"github.com/gogpu/tess/raster"
	"github.com/gogpu/tess/text"
)

func main() {
	var (
		configFile = flag.String("config", "", "TOML configuration file")
		output     = flag.String("out", "stroke.png", "output file")
		input      = flag.String("text", "", "text to stroke instead of the built-in shape")
		join       = flag.String("join", "", "line join: miter, miter-clip, round or bevel")
		lineCap    = flag.String("cap", "", "line cap at both ends: butt, square or round")
		width      = flag.Float64("width", 0, "line width")
		dash       = flag.String("dash", "", "comma-separated dash pattern, e.g. 8,4")
		shape      = flag.String("shape", "", "built-in shape: star, wave or shapes")
		verbose    = flag.Bool("v", false, "log tessellation details")
		dump       = flag.Bool("dump-config", false, "print the effective configuration and exit")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	tess.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Only flags given on the command line override the file.
	flag.Visit(func(f *flag.Flag) {
		var err error
		switch f.Name {
		case "text":
			cfg.Input.Text = *input
		case "join":
			err = cfg.Stroke.Join.UnmarshalText([]byte(*join))
		case "cap":
			err = cfg.Stroke.StartCap.UnmarshalText([]byte(*lineCap))
			cfg.Stroke.EndCap = cfg.Stroke.StartCap
		case "width":
			cfg.Stroke.Width = *width
		case "dash":
			cfg.Stroke.Dash, err = parseDash(*dash)
		case "shape":
			cfg.Input.Shape = *shape
		}
		if err != nil {
			log.Fatalf("Invalid -%s: %v", f.Name, err)
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	if *dump {
		if err := cfg.Encode(os.Stdout); err != nil {
			log.Fatalf("Failed to print config: %v", err)
		}
		return
	}

	buffers := tess.NewVertexBuffers[tess.StrokeVertex, uint32](0, 0)
	sink := tess.NewBuffersBuilder(buffers, tess.StrokeVertices)
	count, err := tessellate(cfg, sink)
	if err != nil {
		log.Fatalf("Failed to tessellate: %v", err)
	}

	img := render(cfg.Canvas, buffers)
	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Stroke saved to %s (%dx%d, %d triangles)\n",
		*output, cfg.Canvas.Width, cfg.Canvas.Height, count.Indices/3)
}

func tessellate(cfg config.Config, sink tess.StrokeGeometryBuilder) (tess.Count, error) {
	opts := cfg.StrokeOptions()

	var p *path.Path
	switch {
	case cfg.Input.Text != "":
		f, err := text.NewFont(goregular.TTF)
		if err != nil {
			return tess.Count{}, err
		}
		if p, err = f.Outline(cfg.Input.Text, cfg.Input.FontSize); err != nil {
			return tess.Count{}, err
		}
	case cfg.Input.Shape == config.ShapeWave:
		p = wave()
	case cfg.Input.Shape == config.ShapeShapes:
		p = shapes()
	default:
		return star(opts, sink)
	}
	return tess.Stroke(cfg.Dash().Apply(p), opts, sink)
}

// star strokes a five-pointed star with curved inner corners, and an arc
// around it, through the builder API.
func star(opts tess.StrokeOptions, sink tess.StrokeGeometryBuilder) (tess.Count, error) {
	const (
		points = 5
		outer  = 100.0
		inner  = 40.0
	)
	tip := func(i int, r float64) curve.Point {
		angle := math.Pi/2 + float64(i)*math.Pi/points
		return curve.Pt(r*math.Cos(angle), r*math.Sin(angle))
	}

	b := tess.NewStrokeBuilder(opts, sink)
	b.MoveTo(tip(0, outer))
	for i := 1; i < 2*points; i += 2 {
		b.LineTo(tip(i, inner))
		b.QuadraticBezierTo(tip(i+1, inner), tip(i+1, outer))
	}
	b.Close()

	b.MoveTo(curve.Pt(outer+20, 0))
	b.Arc(curve.Pt(0, 0), curve.Vec(outer+20, outer+20), 1.5*math.Pi, 0)
	return b.Build()
}

// wave is an open sine-like curve made of cubic segments.
func wave() *path.Path {
	const (
		segments = 6
		step     = 60.0
		height   = 50.0
	)
	b := path.NewPathBuilder()
	b.MoveTo(path.Pt(0, 0))
	for i := range segments {
		x := float64(i) * step
		h := height
		if i%2 == 1 {
			h = -height
		}
		b.CubicBezierTo(path.Pt(x+step/3, h), path.Pt(x+2*step/3, h), path.Pt(x+step, 0))
	}
	return b.Build()
}

// shapes lays out the built-in shape helpers of the path package.
func shapes() *path.Path {
	b := path.NewPathBuilder()
	path.AddRoundedRectangle(b, curve.Rect{X0: 0, Y0: 0, X1: 200, Y1: 120}, 24)
	path.AddCircle(b, curve.Pt(60, 60), 36)
	path.AddEllipse(b, curve.Pt(150, 60), curve.Vec(30, 18))
	path.AddRegularPolygon(b, curve.Pt(60, -80), 50, 6)
	path.AddStar(b, curve.Pt(150, -80), 50, 20, 7)
	return b.Build()
}

func render(c config.Canvas, buffers *tess.VertexBuffers[tess.StrokeVertex, uint32]) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)

	pts := raster.Positions(buffers.Vertices)
	aff := raster.FitTransform(raster.Bounds(pts), c.Width, c.Height, c.Margin)
	raster.Fill(img, pts, buffers.Indices, aff, image.NewUniform(c.Color))
	return img
}

// parseDash parses a comma-separated list of lengths. An empty string
// means solid.
func parseDash(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	lengths := make([]float64, len(fields))
	for i, f := range fields {
		l, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("dash length %q: %w", f, err)
		}
		lengths[i] = l
	}
	return lengths, nil
}

func savePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return f.Close()
}
