package canvas

import "image/color"

// Logical screen dimensions of the target device.
const (
	ScreenWidth  = 320
	ScreenHeight = 240
)

// Color is a logical palette role. Implementations resolve it through Palette.
type Color int

const (
	ColorDarkBG Color = iota
	ColorLightBG
	ColorActiveSelection
	ColorInactiveSelection
	ColorActiveText
	ColorInactiveText
	ColorLightGrey
	ColorLogoPrimary
	ColorLogoSecondary
	ColorYellow
	ColorBlue
	ColorRed
	ColorGreen
	ColorBlack
	ColorWhite
)

// Palette maps each logical color to RGB.
var Palette = map[Color]color.RGBA{
	ColorDarkBG:            {41, 41, 41, 255},
	ColorLightBG:           {84, 84, 84, 255},
	ColorActiveSelection:   {160, 24, 24, 255},
	ColorInactiveSelection: {84, 84, 84, 255},
	ColorActiveText:        {255, 255, 255, 255},
	ColorInactiveText:      {128, 128, 128, 255},
	ColorLightGrey:         {200, 200, 200, 255},
	ColorLogoPrimary:       {255, 255, 255, 255},
	ColorLogoSecondary:     {216, 32, 32, 255},
	ColorYellow:            {128, 128, 0, 255},
	ColorBlue:              {0, 0, 128, 255},
	ColorRed:               {128, 0, 0, 255},
	ColorGreen:             {0, 128, 0, 255},
	ColorBlack:             {0, 0, 0, 255},
	ColorWhite:             {255, 255, 255, 255},
}

// RGBA returns the palette entry for c, falling back to white.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := Palette[c]; ok {
		return rgba
	}
	return color.RGBA{255, 255, 255, 255}
}

// Font is a logical typeface role.
type Font int

const (
	FontTiny Font = iota
	FontSmall
	FontMonoSmall
	FontMedium
	FontLarge
	FontHuge
	FontLogo
)

// String returns the role name.
func (f Font) String() string {
	switch f {
	case FontTiny:
		return "tiny"
	case FontSmall:
		return "small"
	case FontMonoSmall:
		return "mono-small"
	case FontMedium:
		return "medium"
	case FontLarge:
		return "large"
	case FontHuge:
		return "huge"
	case FontLogo:
		return "logo"
	default:
		return "unknown"
	}
}

// Point is a logical pixel coordinate.
type Point struct {
	X, Y int
}

// Size is a logical extent.
type Size struct {
	W, H int
}

// Rect is an axis-aligned logical rectangle.
type Rect struct {
	X, Y, W, H int
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the center point of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Canvas is the drawing capability screens render through.
type Canvas interface {
	// Bounds returns the logical surface size.
	Bounds() Size
	// MeasureText returns the extent text would occupy in font.
	MeasureText(text string, font Font) Size
	// DrawText draws text with its top-left corner at p over a bg fill.
	DrawText(p Point, text string, font Font, fg, bg Color)
	// DrawRect fills r when border is 0, otherwise strokes an outline border pixels wide.
	DrawRect(r Rect, c Color, border int)
	// DrawCircle draws a filled circle.
	DrawCircle(center Point, radius int, c Color)
	// Present makes all draw calls since the previous Present visible.
	Present() error
}

// Clear fills the whole surface with c.
func Clear(cv Canvas, c Color) {
	b := cv.Bounds()
	cv.DrawRect(Rect{W: b.W, H: b.H}, c, 0)
}

// TextCentered draws text centered inside r and returns the text rectangle.
func TextCentered(cv Canvas, r Rect, text string, font Font, fg, bg Color) Rect {
	sz := cv.MeasureText(text, font)
	c := r.Center()
	tr := Rect{X: c.X - sz.W/2, Y: c.Y - sz.H/2, W: sz.W, H: sz.H}
	cv.DrawText(Point{X: tr.X, Y: tr.Y}, text, font, fg, bg)
	return tr
}

// TextRightAligned draws text whose right edge sits at right.
func TextRightAligned(cv Canvas, right, top int, text string, font Font, fg, bg Color) Rect {
	sz := cv.MeasureText(text, font)
	tr := Rect{X: right - sz.W, Y: top, W: sz.W, H: sz.H}
	cv.DrawText(Point{X: tr.X, Y: tr.Y}, text, font, fg, bg)
	return tr
}
