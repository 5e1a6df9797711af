// Package input maps terminal key events onto the handheld's logical buttons.
package input

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Button is a logical device button.
type Button int

const (
	None Button = iota
	Up
	Down
	Left
	Right
	A
	B
	X
	Y
	Start
	Select
)

var buttonNames = map[Button]string{
	Up:     "up",
	Down:   "down",
	Left:   "left",
	Right:  "right",
	A:      "a",
	B:      "b",
	X:      "x",
	Y:      "y",
	Start:  "start",
	Select: "select",
}

// String returns the lower-case button name used in settings files.
func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return "none"
}

// ParseButton resolves a settings-file button name.
func ParseButton(name string) (Button, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range buttonNames {
		if n == name {
			return b, nil
		}
	}
	return None, fmt.Errorf("unknown button %q", name)
}

// DefaultBindings returns the default terminal keys for each button.
func DefaultBindings() map[string][]string {
	return map[string][]string{
		"up":     {"Up", "k"},
		"down":   {"Down", "j"},
		"left":   {"Left", "h"},
		"right":  {"Right", "l"},
		"a":      {"Enter", "a"},
		"b":      {"Backspace2", "Backspace", "b"},
		"x":      {"Delete", "x"},
		"y":      {"Tab", "y"},
		"start":  {"s", "Ctrl-S"},
		"select": {"Esc", "e"},
	}
}

// keysByName is the reverse of tcell.KeyNames, lower-cased.
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// KeyMap resolves key events to buttons.
type KeyMap struct {
	runes map[rune]Button
	keys  map[tcell.Key]Button
}

// NewKeyMap builds a map from button name to key names. A key name is
// either a single character or a tcell key name such as "Enter" or "Ctrl-S".
// Binding one key to two buttons is an error.
func NewKeyMap(bindings map[string][]string) (*KeyMap, error) {
	m := &KeyMap{
		runes: make(map[rune]Button),
		keys:  make(map[tcell.Key]Button),
	}

	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		btn, err := ParseButton(name)
		if err != nil {
			return nil, err
		}
		for _, key := range bindings[name] {
			if err := m.bind(key, btn); err != nil {
				return nil, fmt.Errorf("button %s: %w", btn, err)
			}
		}
	}
	return m, nil
}

func (m *KeyMap) bind(key string, btn Button) error {
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		if prev, ok := m.runes[r]; ok && prev != btn {
			return fmt.Errorf("key %q already bound to %s", key, prev)
		}
		m.runes[r] = btn
		return nil
	}

	k, ok := keysByName[strings.ToLower(key)]
	if !ok {
		return fmt.Errorf("unknown key %q", key)
	}
	if prev, ok := m.keys[k]; ok && prev != btn {
		return fmt.Errorf("key %q already bound to %s", key, prev)
	}
	m.keys[k] = btn
	return nil
}

// Lookup returns the button bound to ev.
func (m *KeyMap) Lookup(ev *tcell.EventKey) (Button, bool) {
	if ev.Key() == tcell.KeyRune {
		b, ok := m.runes[ev.Rune()]
		return b, ok
	}
	b, ok := m.keys[ev.Key()]
	return b, ok
}
