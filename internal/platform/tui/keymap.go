package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

var actionHelp = map[core.Action]string{
	core.ActionQuit:      "quit",
	core.ActionRotateCW:  "rotate",
	core.ActionRotateCCW: "rotate back",
	core.ActionMoveLeft:  "left",
	core.ActionMoveRight: "right",
	core.ActionSoftDrop:  "drop one",
	core.ActionHardDrop:  "hard drop",
	core.ActionRestart:   "restart",
}

type actionBinding struct {
	action  core.Action
	binding key.Binding
}

// KeyMap translates Bubble Tea key messages to game actions using the
// configured bindings. It also implements help.KeyMap.
type KeyMap struct {
	bindings []actionBinding
	Help     key.Binding
}

// NewKeyMap builds bindings for every action that has at least one key.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	km := KeyMap{
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	}
	for _, a := range core.Actions() {
		names := kb.Keys(a)
		if len(names) == 0 {
			continue
		}
		km.bindings = append(km.bindings, actionBinding{
			action: a,
			binding: key.NewBinding(
				key.WithKeys(teaKeys(names)...),
				key.WithHelp(strings.Join(names, "/"), actionHelp[a]),
			),
		})
	}
	return km
}

// teaKeys adds the spellings Bubble Tea may report for a configured name.
func teaKeys(names []string) []string {
	out := make([]string, 0, len(names)+1)
	for _, n := range names {
		out = append(out, n)
		if n == "space" {
			out = append(out, " ")
		}
	}
	return out
}

// Action returns the action bound to msg, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, b := range k.bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// Binding returns the key binding for a, if any.
func (k KeyMap) Binding(a core.Action) (key.Binding, bool) {
	for _, b := range k.bindings {
		if b.action == a {
			return b.binding, true
		}
	}
	return key.Binding{}, false
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return k.pick(core.ActionMoveLeft, core.ActionMoveRight, core.ActionRotateCW, core.ActionHardDrop, core.ActionQuit)
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.pick(core.ActionMoveLeft, core.ActionMoveRight, core.ActionSoftDrop, core.ActionHardDrop),
		k.pick(core.ActionRotateCW, core.ActionRotateCCW),
		append(k.pick(core.ActionRestart, core.ActionQuit), k.Help),
	}
}

func (k KeyMap) pick(actions ...core.Action) []key.Binding {
	out := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		if b, ok := k.Binding(a); ok {
			out = append(out, b)
		}
	}
	return out
}
