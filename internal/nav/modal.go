package nav

import (
	"context"
	"time"

	"github.com/muurk/wificonnect/internal/canvas"
	"github.com/muurk/wificonnect/internal/input"
	"go.uber.org/zap"
)

// ModalKind selects how a modal is dismissed.
type ModalKind int

const (
	// ModalWait is acknowledged with A.
	ModalWait ModalKind = iota
	// ModalTimeout dismisses itself after the configured delay.
	ModalTimeout
	// ModalQuery asks a yes/no question: A confirms, B cancels.
	ModalQuery
)

// String returns the kind name.
func (k ModalKind) String() string {
	switch k {
	case ModalWait:
		return "wait"
	case ModalTimeout:
		return "timeout"
	case ModalQuery:
		return "query"
	default:
		return "unknown"
	}
}

type modal struct {
	kind     ModalKind
	text     string
	deadline time.Time
	// done runs after the modal is removed and before the redraw.
	done func(ctx context.Context, ok bool)
}

// Modal box geometry.
var (
	modalBox    = canvas.Rect{X: 64, Y: 88, W: 192, H: 72}
	modalBorder = canvas.Rect{X: 62, Y: 86, W: 194, H: 74}
)

// wait queues a modal the user must acknowledge.
func (n *Navigator) wait(text string) {
	n.pushModal(&modal{kind: ModalWait, text: text})
}

// notify queues a modal that disappears on its own.
func (n *Navigator) notify(text string) {
	n.pushModal(&modal{kind: ModalTimeout, text: text, deadline: n.opts.Now().Add(n.opts.ModalTimeout)})
}

// query queues a confirm/cancel question. then receives the answer.
func (n *Navigator) query(text string, then func(ctx context.Context, ok bool)) {
	n.pushModal(&modal{kind: ModalQuery, text: text, done: then})
}

func (n *Navigator) pushModal(m *modal) {
	from := n.Active()
	n.modals = append(n.modals, m)
	n.log.Debug("modal queued",
		zap.Stringer("kind", m.kind),
		zap.String("text", m.text),
		zap.Int("queued", len(n.modals)))
	if from != StateModal {
		n.transition(from, StateModal, m.text)
	}
}

// Modal reports the modal currently shown, if any.
func (n *Navigator) Modal() (kind ModalKind, text string, ok bool) {
	if len(n.modals) == 0 {
		return 0, "", false
	}
	m := n.modals[0]
	return m.kind, m.text, true
}

// Deadline returns when the current timeout modal expires. ok is false when
// no timeout modal is showing.
func (n *Navigator) Deadline() (deadline time.Time, ok bool) {
	if len(n.modals) == 0 || n.modals[0].kind != ModalTimeout {
		return time.Time{}, false
	}
	return n.modals[0].deadline, true
}

// Tick dismisses an expired timeout modal. It is a no-op otherwise.
func (n *Navigator) Tick(ctx context.Context, now time.Time) error {
	deadline, ok := n.Deadline()
	if !ok || now.Before(deadline) {
		return nil
	}
	return n.resolveModal(ctx, true)
}

// handleModal routes a button to the front modal. Buttons a modal does not
// accept are dropped.
func (n *Navigator) handleModal(ctx context.Context, b input.Button) error {
	m := n.modals[0]
	switch m.kind {
	case ModalWait:
		if b == input.A {
			return n.resolveModal(ctx, true)
		}
	case ModalQuery:
		switch b {
		case input.A:
			return n.resolveModal(ctx, true)
		case input.B:
			return n.resolveModal(ctx, false)
		}
	case ModalTimeout:
		n.log.Debug("input dropped while timeout modal is up", zap.Stringer("button", b))
	}
	return nil
}

// resolveModal removes the front modal, runs its continuation and redraws
// the whole screen so no part of the overlay survives.
func (n *Navigator) resolveModal(ctx context.Context, ok bool) error {
	m := n.modals[0]
	n.modals = n.modals[1:]
	n.log.Debug("modal resolved", zap.Stringer("kind", m.kind), zap.String("text", m.text), zap.Bool("result", ok))
	if len(n.modals) == 0 {
		n.transition(StateModal, n.Active(), "modal dismissed")
	}
	if m.done != nil {
		m.done(ctx, ok)
	}
	return n.Redraw(ctx)
}

// progress shows text in a modal box immediately, ahead of a blocking call.
// The next redraw removes it.
func (n *Navigator) progress(text string) {
	drawModalBox(n.cv, text)
	if err := n.cv.Present(); err != nil {
		n.log.Warn("present failed", zap.Error(err))
	}
}

func drawModalBox(cv canvas.Canvas, text string) {
	cv.DrawRect(modalBox, canvas.ColorLightBG, 0)
	cv.DrawRect(modalBorder, canvas.ColorWhite, 2)
	canvas.TextCentered(cv, modalBox, text, canvas.FontMedium, canvas.ColorWhite, canvas.ColorLightBG)
}

func drawModal(cv canvas.Canvas, m *modal) {
	drawModalBox(cv, m.text)
	switch m.kind {
	case ModalWait:
		drawHint(cv, "a", "Continue", 205, 145, canvas.ColorLightBG)
	case ModalQuery:
		drawHint(cv, "a", "Confirm", 150, 145, canvas.ColorLightBG)
		drawHint(cv, "b", "Cancel", 205, 145, canvas.ColorLightBG)
	}
}
