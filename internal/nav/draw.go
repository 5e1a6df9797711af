package nav

import (
	"strings"

	"github.com/muurk/wificonnect/internal/canvas"
	"github.com/muurk/wificonnect/internal/network"
)

func drawLogoBar(cv canvas.Canvas) {
	cv.DrawRect(canvas.Rect{X: 0, Y: 0, W: canvas.ScreenWidth, H: 34}, canvas.ColorLightBG, 0)
	cv.DrawRect(canvas.Rect{X: 0, Y: 34, W: canvas.ScreenWidth, H: 1}, canvas.ColorWhite, 0)

	p := canvas.Point{X: 14, Y: 5}
	cv.DrawText(p, "GCW", canvas.FontLogo, canvas.ColorLogoPrimary, canvas.ColorLightBG)
	p.X += cv.MeasureText("GCW", canvas.FontLogo).W
	cv.DrawText(p, "CONNECT", canvas.FontLogo, canvas.ColorLogoSecondary, canvas.ColorLightBG)
}

// statusText is the left half of the status bar.
func statusText(info network.Info) string {
	switch {
	case info.Status == network.StatusOff:
		return info.Interface + " is off."
	case info.SSID != "":
		return info.SSID
	default:
		return "Not connected"
	}
}

// drawStatusBar shows the network on the left and the address on the right:
// the IP while the interface is up, otherwise the last known MAC.
func drawStatusBar(cv canvas.Canvas, info network.Info, lastMAC string) {
	cv.DrawRect(canvas.Rect{X: 0, Y: 224, W: canvas.ScreenWidth, H: 16}, canvas.ColorLightBG, 0)
	cv.DrawRect(canvas.Rect{X: 0, Y: 223, W: canvas.ScreenWidth, H: 1}, canvas.ColorWhite, 0)

	cv.DrawText(canvas.Point{X: 2, Y: 225}, statusText(info), canvas.FontMonoSmall, canvas.ColorWhite, canvas.ColorLightBG)

	addr := lastMAC
	if info.Status.Enabled() {
		addr = info.IP
	}
	if addr == "" {
		return
	}
	// The leading space overdraws the tail of a long SSID.
	canvas.TextRightAligned(cv, 317, 225, " "+addr, canvas.FontMonoSmall, canvas.ColorWhite, canvas.ColorLightBG)
}

var buttonColors = map[string]canvas.Color{
	"a": canvas.ColorGreen,
	"b": canvas.ColorBlue,
	"x": canvas.ColorRed,
	"y": canvas.ColorYellow,
}

// drawHint draws a button glyph followed by its label.
func drawHint(cv canvas.Canvas, button, label string, x, y int, bg canvas.Color) {
	var glyph canvas.Rect
	switch button {
	case "select", "start":
		glyph = canvas.Rect{X: x, Y: y, W: 34, H: 11}
		cv.DrawRect(glyph, canvas.ColorBlack, 0)
		canvas.TextCentered(cv, glyph, strings.ToUpper(button), canvas.FontTiny, canvas.ColorWhite, canvas.ColorBlack)
	case "left", "right", "up", "down":
		glyph = canvas.Rect{X: x, Y: y, W: 11, H: 11}
		cv.DrawRect(glyph, canvas.ColorBlack, 0)
		arrow := map[string]string{"left": "<", "right": ">", "up": "^", "down": "v"}[button]
		canvas.TextCentered(cv, glyph, arrow, canvas.FontTiny, canvas.ColorWhite, canvas.ColorBlack)
	default:
		glyph = canvas.Rect{X: x, Y: y, W: 11, H: 11}
		cv.DrawCircle(glyph.Center(), 5, buttonColors[button])
		canvas.TextCentered(cv, glyph, button, canvas.FontTiny, canvas.ColorWhite, buttonColors[button])
	}
	sz := cv.MeasureText(label, canvas.FontTiny)
	cv.DrawText(canvas.Point{X: glyph.Right() + 4, Y: glyph.Center().Y - sz.H/2}, label, canvas.FontTiny, canvas.ColorWhite, bg)
}
