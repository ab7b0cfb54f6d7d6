package events

import "github.com/atomicstack/menunav/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type PromptTracer struct{}

type PromptReason string

const (
	PromptReasonEscape    PromptReason = "escape"
	PromptReasonInterrupt PromptReason = "interrupt"
)

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Action = ActionTracer{}
	Prompt = PromptTracer{}
)

func (UITracer) MenuEnter(title, label string, index int, filter string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"title":  title,
		"label":  label,
		"index":  index,
		"filter": filter,
	})
}

func (UITracer) MenuCursor(title string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"title": title, "cursor": cursor})
}

func (UITracer) Clear() {
	logging.Trace("screen.clear", nil)
}

func (ActionTracer) Start(name string) {
	logging.Trace("action.start", map[string]interface{}{"name": name})
}

func (ActionTracer) Error(name string, err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"name": name, "error": err.Error()})
}

func (ActionTracer) Success(name string) {
	logging.Trace("action.success", map[string]interface{}{"name": name})
}

func (FilterTracer) Cleared(title string) {
	logging.Trace("filter.clear", map[string]interface{}{"title": title})
}

func (FilterTracer) Append(title, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"title": title, "filter": filter})
}

func (FilterTracer) Backspace(title, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"title": title, "filter": filter})
}

func (PromptTracer) Cancel(name string, reason PromptReason) {
	logging.Trace("prompt.cancel", map[string]interface{}{"name": name, "reason": string(reason)})
}

func (PromptTracer) Submit(name string) {
	logging.Trace("prompt.submit", map[string]interface{}{"name": name})
}

func (PromptTracer) Invalid(name, message string) {
	logging.Trace("prompt.invalid", map[string]interface{}{"name": name, "message": message})
}
