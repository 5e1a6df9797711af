// Package nav is the on-screen state machine: the main menu, the scanned and
// saved network lists, the soft-keyboard text entry, and the modal overlay
// that any of them may raise.
//
// A Navigator is driven by one logical button at a time. Each call mutates
// state, talks to the network backend and config store synchronously, and
// finishes with a full redraw so the canvas never carries pixels from a
// previous state.
//
//	n := nav.New(cv, backend, store, nav.Options{Interface: "wlan0"})
//	n.Start(ctx)
//	for !n.Done() {
//		n.HandleButton(ctx, <next button>)
//	}
//
// Modals are queued. Wait modals resolve on A, query modals on A (true) or B
// (false), and timeout modals only through Tick once their deadline passes;
// buttons pressed while a timeout modal is up are dropped.
package nav
