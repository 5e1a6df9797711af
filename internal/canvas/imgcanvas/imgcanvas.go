// Package imgcanvas renders the logical surface into an RGBA image using the
// Go font family. It backs the screenshot command and pixel-level tests.
package imgcanvas

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/muurk/wificonnect/internal/canvas"
)

// PresentFunc receives the finished frame on every Present.
type PresentFunc func(img *image.RGBA) error

// Canvas implements canvas.Canvas on an *image.RGBA.
type Canvas struct {
	img     *image.RGBA
	faces   map[canvas.Font]font.Face
	present PresentFunc
}

// New creates a canvas of the device screen size. present may be nil.
func New(present PresentFunc) (*Canvas, error) {
	faces, err := loadFaces()
	if err != nil {
		return nil, err
	}
	return &Canvas{
		img:     image.NewRGBA(image.Rect(0, 0, canvas.ScreenWidth, canvas.ScreenHeight)),
		faces:   faces,
		present: present,
	}, nil
}

// PNGFile returns a PresentFunc that overwrites path with each frame.
func PNGFile(path string) PresentFunc {
	return func(img *image.RGBA) error {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return fmt.Errorf("failed to encode png: %w", err)
		}
		return f.Close()
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds implements canvas.Canvas.
func (c *Canvas) Bounds() canvas.Size {
	b := c.img.Bounds()
	return canvas.Size{W: b.Dx(), H: b.Dy()}
}

// MeasureText implements canvas.Canvas.
func (c *Canvas) MeasureText(text string, f canvas.Font) canvas.Size {
	face := c.face(f)
	return canvas.Size{
		W: font.MeasureString(face, text).Ceil(),
		H: face.Metrics().Height.Ceil(),
	}
}

// DrawText implements canvas.Canvas.
func (c *Canvas) DrawText(p canvas.Point, text string, f canvas.Font, fg, bg canvas.Color) {
	sz := c.MeasureText(text, f)
	c.DrawRect(canvas.Rect{X: p.X, Y: p.Y, W: sz.W, H: sz.H}, bg, 0)

	face := c.face(f)
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(fg.RGBA()),
		Face: face,
		Dot:  fixed.P(p.X, p.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// DrawRect implements canvas.Canvas.
func (c *Canvas) DrawRect(r canvas.Rect, col canvas.Color, border int) {
	if border == 0 {
		c.fill(r, col)
		return
	}
	c.fill(canvas.Rect{X: r.X, Y: r.Y, W: r.W, H: border}, col)
	c.fill(canvas.Rect{X: r.X, Y: r.Bottom() - border, W: r.W, H: border}, col)
	c.fill(canvas.Rect{X: r.X, Y: r.Y, W: border, H: r.H}, col)
	c.fill(canvas.Rect{X: r.Right() - border, Y: r.Y, W: border, H: r.H}, col)
}

// DrawCircle implements canvas.Canvas.
func (c *Canvas) DrawCircle(center canvas.Point, radius int, col canvas.Color) {
	rgba := col.RGBA()
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				c.img.SetRGBA(center.X+dx, center.Y+dy, rgba)
			}
		}
	}
}

// Present implements canvas.Canvas.
func (c *Canvas) Present() error {
	if c.present == nil {
		return nil
	}
	return c.present(c.img)
}

func (c *Canvas) fill(r canvas.Rect, col canvas.Color) {
	rect := image.Rect(r.X, r.Y, r.Right(), r.Bottom())
	draw.Draw(c.img, rect, image.NewUniform(col.RGBA()), image.Point{}, draw.Src)
}

func (c *Canvas) face(f canvas.Font) font.Face {
	if face, ok := c.faces[f]; ok {
		return face
	}
	return c.faces[canvas.FontMedium]
}

type faceSpec struct {
	ttf  []byte
	size float64
}

var faceSpecs = map[canvas.Font]faceSpec{
	canvas.FontTiny:      {goregular.TTF, 8},
	canvas.FontSmall:     {goregular.TTF, 10},
	canvas.FontMonoSmall: {gomono.TTF, 11},
	canvas.FontMedium:    {goregular.TTF, 12},
	canvas.FontLarge:     {goregular.TTF, 16},
	canvas.FontHuge:      {goregular.TTF, 48},
	canvas.FontLogo:      {gobold.TTF, 25},
}

func loadFaces() (map[canvas.Font]font.Face, error) {
	parsed := make(map[*byte]*opentype.Font)
	faces := make(map[canvas.Font]font.Face, len(faceSpecs))
	for role, spec := range faceSpecs {
		key := &spec.ttf[0]
		otf, ok := parsed[key]
		if !ok {
			var err error
			otf, err = opentype.Parse(spec.ttf)
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s font: %w", role, err)
			}
			parsed[key] = otf
		}
		face, err := opentype.NewFace(otf, &opentype.FaceOptions{
			Size:    spec.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s face: %w", role, err)
		}
		faces[role] = face
	}
	return faces, nil
}
