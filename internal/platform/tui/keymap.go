package tui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tron/internal/core"
)

// zoneKeys maps the number row onto directional zones: "1" is zone 0 (north).
var zoneKeys = [core.MaxZones]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}

// GameKeyMap defines key bindings during play.
type GameKeyMap struct {
	Steer     key.Binding
	TurnLeft  key.Binding
	TurnRight key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings for the help footer.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Steer, k.TurnLeft, k.TurnRight, k.Pause, k.Restart, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Steer, k.TurnLeft, k.TurnRight},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns the play bindings for an arena with the given zone count.
func DefaultGameKeyMap(zones int) GameKeyMap {
	zones = core.Clamp(zones, 1, core.MaxZones)
	return GameKeyMap{
		Steer: key.NewBinding(
			key.WithKeys(zoneKeys[:zones]...),
			key.WithHelp(fmt.Sprintf("1-%s", zoneKeys[zones-1]), "steer"),
		),
		TurnLeft: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "turn left"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "turn right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a semantic action.
// Zone keys yield ActionNone; use MapKeyToFrame to capture them.
func (k GameKeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.TurnLeft):
		return core.ActionTurnLeft
	case key.Matches(msg, k.TurnRight):
		return core.ActionTurnRight
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// MapKeyToFrame records a key message in an input frame.
// Returns true if the key was a quit request.
func (k GameKeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if key.Matches(msg, k.Steer) {
		frame.PressZone(slices.Index(zoneKeys[:], msg.String()))
		return false
	}

	action := k.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return action == core.ActionQuit
}

// MenuKeyMap defines key bindings for the variant picker.
// Cursor movement is handled by the table's own bindings.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings for the help footer.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns the default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
