// Package ui contains the Bubble Tea programs that render menunav prompts.
// The package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own navigation, filter input, and rendering.
//
// Message flow:
//   - Prompter.Select starts a program around a Model built from a
//     prompt.SelectRequest. Bubble Tea invokes Model.Update with incoming
//     messages, which are routed through a typed handler registry so each
//     tea.Msg is handled by a focused function.
//   - Navigation helpers (navigation.go) move the cursor and turn enter, esc
//     and ctrl+c into a prompt.Result. Filter helpers (input.go) keep text
//     entry isolated from the event loop.
//   - Prompter.Input runs an InputModel wrapping a bubbles textinput. The
//     request's validator runs on every edit and again on submit; a failing
//     submit keeps the prompt open.
//
// State ownership:
//   - The single menu level shown by a Model lives in internal/ui/state.Level,
//     which tracks items, filtering, cursor and viewport calculations. The
//     navigation stack itself belongs to internal/nav; the UI only renders the
//     breadcrumb title it is given.
//
// Harness drives either model without a terminal so tests can exercise key
// handling and rendering directly.
package ui
