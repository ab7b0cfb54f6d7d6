package events

import "github.com/atomicstack/menunav/internal/logging"

type NavTracer struct{}

type MenuTracer struct{}

type navReason string

const (
	NavReasonPrompt navReason = "prompt"
	NavReasonAction navReason = "action"
)

var (
	Nav  = NavTracer{}
	Menu = MenuTracer{}
)

func (NavTracer) Select(menu string, depth, choices int) {
	logging.Trace("nav.select", map[string]interface{}{"menu": menu, "depth": depth, "choices": choices})
}

func (NavTracer) Push(menu string, depth int) {
	logging.Trace("nav.push", map[string]interface{}{"menu": menu, "depth": depth})
}

func (NavTracer) Pop(menu string, depth int) {
	logging.Trace("nav.pop", map[string]interface{}{"menu": menu, "depth": depth})
}

func (NavTracer) Cancel(depth int, reason navReason) {
	logging.Trace("nav.cancel", map[string]interface{}{"depth": depth, "reason": string(reason)})
}

func (NavTracer) Exit() {
	logging.Trace("nav.exit", nil)
}

func (MenuTracer) Load(path, format string, submenus int) {
	logging.Trace("menu.load", map[string]interface{}{"path": path, "format": format, "submenus": submenus})
}
