package ui

import (
	"fmt"
	"io"

	"github.com/muurk/wificonnect/internal/netconf"
	"github.com/muurk/wificonnect/internal/network"
)

// Printer writes styled output for one subcommand.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter returns a Printer sized to the current terminal.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, width: GetTerminalWidth()}
}

// SetWidth overrides the render width.
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Writer returns the underlying output.
func (p *Printer) Writer() io.Writer { return p.out }

func (p *Printer) println(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

// Header prints the command banner.
func (p *Printer) Header(title, command string, params map[string]string) {
	p.println(NewHeader(title, command, params).SetWidth(p.width).Render())
	p.println("")
}

// Success prints a success box.
func (p *Printer) Success(title string, details map[string]string) {
	p.println(NewSuccessResult(title, details).SetWidth(p.width).Render())
}

// Failure prints a failure box with troubleshooting tips.
func (p *Printer) Failure(title string, err error, troubleshooting []string) {
	p.println(NewFailureResult(title, err, troubleshooting).SetWidth(p.width).Render())
}

// Warning prints a warning box.
func (p *Printer) Warning(title string, details map[string]string) {
	p.println(NewWarningResult(title, details).SetWidth(p.width).Render())
}

// AccessPoints prints a scan result table.
func (p *Printer) AccessPoints(aps []network.AccessPoint, saved map[string]bool) {
	p.println(RenderAccessPoints(aps, saved))
}

// SavedNetworks prints the stored network records.
func (p *Printer) SavedNetworks(recs []netconf.Record, reveal bool) {
	p.println(RenderSavedNetworks(recs, reveal))
}

// Status prints an interface snapshot.
func (p *Printer) Status(info network.Info) {
	p.println(RenderStatus(info))
}
