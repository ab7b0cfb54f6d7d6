// Package nav drives the interactive menu loop.
//
// A Session owns the navigation stack and the cancellation latch. Run shows
// the menu on top of the stack, waits for a choice and applies it:
//
//   - a submenu is pushed and becomes the next menu shown;
//   - an action runs to completion and the same menu is shown again;
//   - "Back" pops the current menu (only offered below the root);
//   - a cancelled prompt returns to the root, and a second cancellation in a
//     row ends the loop after printing a farewell line.
//
// Any submitted prompt, including inputs asked for by actions through
// Session.Prompter, resets the latch. A Session is not safe for concurrent
// use and only one Run may be active on it at a time.
package nav

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atomicstack/menunav/internal/logging"
	"github.com/atomicstack/menunav/internal/logging/events"
	"github.com/atomicstack/menunav/internal/menu"
	"github.com/atomicstack/menunav/internal/prompt"
	"github.com/cockroachdb/errors"
)

const (
	// BackTitle labels the synthetic choice that returns to the parent menu.
	BackTitle = "Back"
	// DefaultMessage is the question shown above every menu.
	DefaultMessage = "Select an operation"
	// Farewell is printed when a second consecutive cancellation ends the loop.
	Farewell = "Bye!"

	breadcrumbSeparator = " → "
)

type entryKind int

const (
	entrySubmenu entryKind = iota
	entryAction
	entryBack
)

type entry struct {
	kind   entryKind
	menu   *menu.Menu
	action menu.Action
}

// Option configures a Session.
type Option func(*Session)

// WithScreen sets the screen cleared before entering a submenu or running an
// action.
func WithScreen(screen prompt.Screen) Option {
	return func(s *Session) { s.screen = screen }
}

// WithClearScreen toggles screen clearing.
func WithClearScreen(enabled bool) Option {
	return func(s *Session) { s.clear = enabled }
}

// WithOutput sets where the farewell line is written.
func WithOutput(w io.Writer) Option {
	return func(s *Session) { s.out = w }
}

// WithMessage overrides the select prompt message.
func WithMessage(message string) Option {
	return func(s *Session) {
		if strings.TrimSpace(message) != "" {
			s.message = message
		}
	}
}

// Session holds navigation state for one interactive loop.
type Session struct {
	prompter prompt.Prompter
	screen   prompt.Screen
	out      io.Writer
	clear    bool
	message  string

	stack               *Stack
	lastActionWasCancel bool
}

// New creates a session rendering prompts with p.
func New(p prompt.Prompter, opts ...Option) *Session {
	s := &Session{
		prompter: p,
		out:      os.Stdout,
		clear:    true,
		message:  DefaultMessage,
		stack:    NewStack(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stack exposes the navigation stack.
func (s *Session) Stack() *Stack {
	return s.stack
}

// LastActionWasCancel reports whether the latest prompt was cancelled.
func (s *Session) LastActionWasCancel() bool {
	return s.lastActionWasCancel
}

// Run shows root (or, when the session already has a stack, its current top)
// and keeps navigating until the user cancels twice in a row, in which case
// it returns nil. Action failures, renderer failures and context
// cancellation end the loop with an error.
func (s *Session) Run(ctx context.Context, root *menu.Menu) error {
	if s.prompter == nil {
		return errors.AssertionFailedf("nav: session has no prompter")
	}
	if s.stack.Len() == 0 {
		if root == nil {
			return errors.AssertionFailedf("nav: nil root menu")
		}
		s.stack.Push(root)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		current := s.stack.Peek()
		entries, choices := s.choicesFor(current)
		events.Nav.Select(current.Name, s.stack.Len(), len(choices))
		result, err := s.prompter.Select(ctx, prompt.SelectRequest{
			Message: s.message,
			Title:   strings.Join(s.stack.Titles(), breadcrumbSeparator),
			Choices: choices,
		})
		if err != nil {
			return errors.Wrap(err, "select")
		}
		if result.Outcome == prompt.Cancelled {
			events.Nav.Cancel(s.stack.Len(), events.NavReasonPrompt)
			if s.Cancel() {
				return nil
			}
			continue
		}
		s.Submit()
		if result.Index < 0 || result.Index >= len(entries) {
			return errors.AssertionFailedf("nav: selection %d out of range (%d choices)", result.Index, len(entries))
		}
		chosen := entries[result.Index]
		switch chosen.kind {
		case entryBack:
			if s.stack.Len() <= 1 {
				return errors.AssertionFailedf("nav: back selected at the root menu")
			}
			popped := s.stack.Pop()
			events.Nav.Pop(popped.Name, s.stack.Len())
		case entrySubmenu:
			s.stack.Push(chosen.menu)
			events.Nav.Push(chosen.menu.Name, s.stack.Len())
			s.clearScreen()
		case entryAction:
			s.clearScreen()
			if err := s.runAction(ctx, chosen.action); err != nil {
				if prompt.IsCancelled(err) {
					events.Nav.Cancel(s.stack.Len(), events.NavReasonAction)
					if s.Cancel() {
						return nil
					}
					continue
				}
				return err
			}
		}
	}
}

// Choices lists what the current menu offers: submenus in insertion order,
// then actions, then Back when below the root.
func (s *Session) Choices() []prompt.Choice {
	_, choices := s.choicesFor(s.stack.Peek())
	return choices
}

func (s *Session) choicesFor(current *menu.Menu) ([]entry, []prompt.Choice) {
	if current == nil {
		return nil, nil
	}
	n := current.Submenus.Len() + len(current.Items) + 1
	entries := make([]entry, 0, n)
	choices := make([]prompt.Choice, 0, n)
	for _, sub := range current.Submenus.Values() {
		entries = append(entries, entry{kind: entrySubmenu, menu: sub})
		choices = append(choices, prompt.Choice{Title: sub.Name, Value: sub})
	}
	for _, item := range current.Items {
		entries = append(entries, entry{kind: entryAction, action: item})
		choices = append(choices, prompt.Choice{Title: item.Name, Value: item})
	}
	if s.stack.Len() > 1 {
		entries = append(entries, entry{kind: entryBack})
		choices = append(choices, prompt.Choice{Title: BackTitle, Value: BackTitle})
	}
	return entries, choices
}

// Cancel applies a cancelled prompt. The first cancellation sets the latch
// and returns to the root menu; a second one in a row prints the farewell
// line and reports that the loop should end.
func (s *Session) Cancel() bool {
	if s.lastActionWasCancel {
		fmt.Fprintln(s.out, Farewell)
		events.Nav.Exit()
		return true
	}
	s.lastActionWasCancel = true
	s.stack.TruncateToRoot()
	return false
}

// Submit records a submitted prompt and resets the cancellation latch.
func (s *Session) Submit() {
	s.lastActionWasCancel = false
}

func (s *Session) runAction(ctx context.Context, action menu.Action) error {
	events.Action.Start(action.Name)
	if action.Run == nil {
		events.Action.Success(action.Name)
		return nil
	}
	if err := action.Run(ctx); err != nil {
		if !prompt.IsCancelled(err) {
			events.Action.Error(action.Name, err)
		}
		return errors.Wrapf(err, "action %q", action.Name)
	}
	events.Action.Success(action.Name)
	return nil
}

func (s *Session) clearScreen() {
	if !s.clear || s.screen == nil {
		return
	}
	events.UI.Clear()
	if err := s.screen.Clear(); err != nil {
		logging.Error(errors.Wrap(err, "clear screen"))
	}
}

// Prompter returns a prompter for actions that keeps the cancellation latch
// in sync: a submitted prompt resets it, a cancelled one reports
// prompt.ErrCancelled so the loop can treat it like a cancelled menu.
func (s *Session) Prompter() prompt.Prompter {
	return &trackedPrompter{session: s}
}

type trackedPrompter struct {
	session *Session
}

func (t *trackedPrompter) Select(ctx context.Context, req prompt.SelectRequest) (prompt.Result, error) {
	result, err := t.session.prompter.Select(ctx, req)
	if err != nil {
		return result, err
	}
	if result.Outcome == prompt.Cancelled {
		return result, prompt.ErrCancelled
	}
	t.session.Submit()
	return result, nil
}

func (t *trackedPrompter) Input(ctx context.Context, req prompt.InputRequest) (string, error) {
	value, err := t.session.prompter.Input(ctx, req)
	if err != nil {
		return "", err
	}
	t.session.Submit()
	return value, nil
}
