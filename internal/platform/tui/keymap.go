package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/isotd/internal/input"
)

// HostKeyMap holds the bindings shown in the help line. The action
// bindings mirror the input mapper; Screenshot is handled by the host.
type HostKeyMap struct {
	Actions    []key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HostKeyMap) ShortHelp() []key.Binding {
	return append(append([]key.Binding(nil), k.Actions...), k.Screenshot)
}

// FullHelp returns key bindings for the full help view.
func (k HostKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.Actions, {k.Screenshot}}
}

// NewHostKeyMap builds the help bindings from the mapper's binding table.
func NewHostKeyMap(bindings []input.Binding) HostKeyMap {
	km := HostKeyMap{
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
	for _, b := range bindings {
		if b.Source.Device != input.DeviceKeyboard {
			continue
		}
		keys := b.Source.Code
		label := keys
		if b.Action == input.ActionExit {
			keys = "ctrl+" + keys
			label = keys
		}
		km.Actions = append(km.Actions, key.NewBinding(
			key.WithKeys(keys),
			key.WithHelp(label, helpText(b.Action)),
		))
	}
	return km
}

func helpText(a input.Action) string {
	switch a {
	case input.ActionTogglePause:
		return "pause"
	case input.ActionExit:
		return "exit"
	case input.ActionPanUp:
		return "pan up"
	case input.ActionPanDown:
		return "pan down"
	case input.ActionPanLeft:
		return "pan left"
	case input.ActionPanRight:
		return "pan right"
	default:
		return a.String()
	}
}

// ParseKey translates a Bubble Tea key message into an input source and
// the modifiers held with it. Uppercase letters report Shift.
func ParseKey(msg tea.KeyMsg) (input.Source, input.Modifier, bool) {
	s := msg.String()
	var mods input.Modifier

	for {
		mod, rest, ok := cutModifier(s)
		if !ok {
			break
		}
		mods |= mod
		s = rest
	}

	switch s {
	case "":
		return input.Source{}, 0, false
	case " ":
		s = "space"
	}

	if r := []rune(s); len(r) == 1 && unicode.IsUpper(r[0]) {
		mods |= input.ModShift
	}
	return input.Key(s), mods, true
}

var modifierPrefixes = []struct {
	prefix string
	mod    input.Modifier
}{
	{"ctrl+", input.ModCtrl},
	{"alt+", input.ModAlt},
	{"shift+", input.ModShift},
}

// cutModifier strips one leading modifier prefix from a key string.
func cutModifier(s string) (input.Modifier, string, bool) {
	for _, p := range modifierPrefixes {
		if rest, ok := strings.CutPrefix(s, p.prefix); ok && rest != "" {
			return p.mod, rest, true
		}
	}
	return 0, s, false
}
