// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"errors"
	"slices"
)

// ErrInvalidScreen is returned when a screen or menu item is malformed.
var ErrInvalidScreen = errors.New("invalid screen")

// All type declarations consolidated in a single block.
type (
	// ItemHandler is invoked when the user selects a menu item. It receives
	// any extra whitespace-separated tokens the user entered after the
	// trigger. Returning ErrExit stops the shell loop.
	ItemHandler func(args []string) error

	// MenuItem is an individual menu entry the user can interact with. The
	// shell determines which item the user selected and invokes its
	// handler. The shell reserves certain triggers for general use; screen
	// item triggers must not overlap with the shell-level ones.
	MenuItem struct {
		Triggers    []string
		Description string
		Handler     ItemHandler
	}

	// Screen is an individual section of a shell, comparable to a screen
	// in a graphical UI. Only the active screen's menu is used when
	// resolving user input.
	Screen struct {
		id string

		byTrigger map[string]*MenuItem
		ordered   []*MenuItem
	}
)

// NewMenuItem creates a menu item. A nil handler is replaced with a no-op
// so menus can be prototyped before every handler exists.
func NewMenuItem(triggers []string, description string, handler ItemHandler) *MenuItem {
	if handler == nil {
		handler = func([]string) error { return nil }
	}
	return &MenuItem{Triggers: triggers, Description: description, Handler: handler}
}

// NewScreen creates an empty screen with the given ID.
func NewScreen(id string) (*Screen, error) {
	if id == "" {
		return nil, errors.New("screen id may not be empty")
	}
	return &Screen{id: id, byTrigger: map[string]*MenuItem{}}, nil
}

// ID returns the screen's identifier.
func (s *Screen) ID() string { return s.id }

// AddMenuItem adds a menu item to this screen. An existing item with the
// same trigger is replaced by the new one.
func (s *Screen) AddMenuItem(item *MenuItem) {
	addItem(&s.ordered, s.byTrigger, item)
}

// Item returns the menu item for the given trigger, or nil.
func (s *Screen) Item(trigger string) *MenuItem {
	return s.byTrigger[trigger]
}

// Items returns the menu items in the order they were added.
func (s *Screen) Items() []*MenuItem {
	return s.ordered
}

// addItem registers the item under each of its triggers and keeps the
// ordered list free of duplicates: an item with an identical trigger set
// replaces the old one in place.
func addItem(ordered *[]*MenuItem, byTrigger map[string]*MenuItem, item *MenuItem) {
	for _, trigger := range item.Triggers {
		byTrigger[trigger] = item
	}
	for i, existing := range *ordered {
		if slices.Equal(existing.Triggers, item.Triggers) {
			(*ordered)[i] = item
			return
		}
	}
	*ordered = append(*ordered, item)
}
