// SPDX-License-Identifier: MPL-2.0

// Package shell implements an interactive menu-driven shell: a set of
// screens, each with its own menu, plus shell-level items for moving
// between them.
package shell

import (
	"errors"
	"strings"

	"github.com/charmbracelet/log"

	"conch/pkg/prompt"
)

// ErrExit may be returned by any menu item handler to stop the shell loop.
var ErrExit = errors.New("shell exit requested")

// Shell represents a single shell interface, consisting of one or more
// screens. Only the active screen's menu is used when interacting with the
// user's input; menu item handlers transition the shell between screens.
type Shell struct {
	prompt *prompt.Prompt
	logger *log.Logger

	// PromptPrefix is written before each read; $s is replaced with the
	// current screen's ID.
	PromptPrefix string

	// AutoRenderMenu re-renders the menu after each executed item.
	AutoRenderMenu bool

	screens  map[string]*Screen
	home     *Screen
	current  *Screen
	previous *Screen

	shellItems   []*MenuItem
	shellTrigger map[string]*MenuItem
}

// Option configures a Shell.
type Option func(*shellConfig)

type shellConfig struct {
	longTriggers bool
	logger       *log.Logger
}

// WithoutLongTriggers registers only the single-character versions of the
// default shell triggers.
func WithoutLongTriggers() Option {
	return func(c *shellConfig) { c.longTriggers = false }
}

// WithLogger sets the logger used for screen transition errors and
// SafeStart reports.
func WithLogger(logger *log.Logger) Option {
	return func(c *shellConfig) { c.logger = logger }
}

// New creates an empty shell reading and writing through p. At least one
// screen must be added before the shell is started.
func New(p *prompt.Prompt, opts ...Option) *Shell {
	cfg := shellConfig{longTriggers: true, logger: log.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Shell{
		prompt:       p,
		logger:       cfg.logger,
		PromptPrefix: "($s) => ",
		screens:      map[string]*Screen{},
		shellTrigger: map[string]*MenuItem{},
	}

	home := []string{"^"}
	previous := []string{"<"}
	help := []string{"?"}
	clear := []string{"/"}
	quit := []string{"q"}
	if cfg.longTriggers {
		home = append(home, "home")
		help = append(help, "help")
		clear = append(clear, "clear")
		quit = append(quit, "quit", "exit")
	}

	s.AddMenuItem(NewMenuItem(home, "move to the home screen", func([]string) error {
		s.Home()
		return nil
	}))
	s.AddMenuItem(NewMenuItem(previous, "move to the previous screen", func([]string) error {
		s.Previous()
		return nil
	}))
	s.AddMenuItem(NewMenuItem(help, "display help", func([]string) error {
		s.RenderMenu()
		return nil
	}))
	s.AddMenuItem(NewMenuItem(clear, "clears the screen", func([]string) error {
		s.ClearScreen()
		return nil
	}))
	s.AddMenuItem(NewMenuItem(quit, "exit", func([]string) error {
		return ErrExit
	}))

	return s
}

// AddScreen adds a screen to the shell, replacing any previously added
// screen with the same ID. The first screen added becomes the current and
// home screen; isHome reassigns home explicitly.
func (s *Shell) AddScreen(screen *Screen, isHome bool) {
	s.screens[screen.id] = screen

	if s.current == nil {
		s.current = screen
	}
	if isHome || s.home == nil {
		s.home = screen
	}
}

// AddMenuItem adds an item available anywhere in the shell, regardless of
// the current screen. An existing item with the same trigger is replaced.
func (s *Shell) AddMenuItem(item *MenuItem) {
	addItem(&s.shellItems, s.shellTrigger, item)
}

// Current returns the active screen.
func (s *Shell) Current() *Screen { return s.current }

// Start runs the loop reading user input and dispatching it against the
// current screen. It returns nil when the user quits or aborts the read,
// and the handler's error when an item fails with anything but ErrExit.
func (s *Shell) Start(showMenu, clear bool) error {
	if clear {
		s.ClearScreen()
	}
	if showMenu {
		s.RenderMenu()
	}

	for {
		line, err := s.prompt.Read(s.promptPrefix(), prompt.AllowEmpty())
		if err != nil {
			// The abort newline has already been written.
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		if rest, ok := strings.CutPrefix(line, "!"); ok {
			s.runBang(rest)
			continue
		}

		tokens := strings.Fields(line)
		trigger, args := tokens[0], tokens[1:]

		item := s.shellTrigger[trigger]
		if item == nil {
			item = s.current.Item(trigger)
		}
		if item == nil {
			s.prompt.Write(`Invalid menu item; type "?" for a list of available commands`)
			continue
		}

		if err := item.Handler(args); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			return err
		}

		if s.AutoRenderMenu {
			s.RenderMenu()
		}
	}
}

// SafeStart runs Start but catches handler errors and panics to keep the
// shell from crashing: the failure is logged, the user is told, and the
// loop restarts without clearing.
func (s *Shell) SafeStart(showMenu, clear bool) {
	restart := false
	func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("unexpected panic caught at the shell level", "panic", r)
				restart = true
			}
		}()
		if err := s.Start(showMenu, clear); err != nil {
			s.logger.Error("unexpected error caught at the shell level", "err", err)
			restart = true
		}
	}()

	if restart {
		s.prompt.Write("")
		s.prompt.Write("An unexpected error has occurred during the last operation.")
		s.prompt.Write("More information can be found in the log.")
		s.prompt.Write("")
		s.SafeStart(false, false)
	}
}

// Transition changes the shell to the identified screen. When no screen
// exists with the given ID, the error is logged and the shell moves to the
// home screen instead.
func (s *Shell) Transition(id string) {
	if _, ok := s.screens[id]; !ok {
		s.logger.Error("attempt to transition to non-existent screen", "screen", id)
		id = s.home.id
	}
	s.previous = s.current
	s.current = s.screens[id]
}

// Previous transitions to the previous screen, or home when there is none.
func (s *Shell) Previous() {
	if s.previous == nil {
		s.Home()
		return
	}
	s.Transition(s.previous.id)
}

// Home transitions to the home screen.
func (s *Shell) Home() {
	s.Transition(s.home.id)
}

// Stop returns the error that ends the shell loop; menu item handlers can
// return it directly.
func (s *Shell) Stop() error {
	return ErrExit
}

// ClearScreen clears the console.
func (s *Shell) ClearScreen() {
	s.prompt.Clear()
}

// RenderMenu writes the current screen's menu followed by the shell-level
// items.
func (s *Shell) RenderMenu() {
	s.renderMenu(true)
}

func (s *Shell) renderMenu(includeShellItems bool) {
	s.prompt.Write("")
	for _, item := range s.current.Items() {
		s.renderMenuItem(item)
	}

	if includeShellItems && len(s.shellItems) > 0 {
		s.prompt.Write("")
		for _, item := range s.shellItems {
			s.renderMenuItem(item)
		}
	}
	s.prompt.Write("")
}

// renderMenuItem writes a single menu item; long trigger lists push the
// description onto its own line.
func (s *Shell) renderMenuItem(item *MenuItem) {
	triggers := strings.Join(item.Triggers, ", ")
	if len(triggers) < 4 {
		s.prompt.Writef("   %-4s%s", triggers, item.Description)
		return
	}
	s.prompt.Writef("   %s", triggers)
	s.prompt.Writef("       %s", item.Description)
}

// promptPrefix substitutes the current screen's ID into the configured
// prefix.
func (s *Shell) promptPrefix() string {
	return strings.ReplaceAll(s.PromptPrefix, "$s", s.current.id)
}
