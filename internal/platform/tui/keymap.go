package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings for play mode.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Act     key.Binding
	Use     key.Binding
	View    key.Binding
	Restart key.Binding
	Help    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Act, k.Use, k.View, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Act, k.Use, k.View, k.Restart},
		{k.Help, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default play bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "cursor down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "cursor right"),
		),
		Act: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "go / use"),
		),
		Use: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "use ahead"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "iso view"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// EditKeyMap defines the key bindings for the level editor.
type EditKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Paint     key.Binding
	Erase     key.Binding
	Drag      key.Binding
	PrevBrush key.Binding
	NextBrush key.Binding
	LinkID    key.Binding
	Wider     key.Binding
	Narrower  key.Binding
	Taller    key.Binding
	Shorter   key.Binding
	View      key.Binding
	Save      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k EditKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Paint, k.Erase, k.PrevBrush, k.NextBrush, k.Save, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k EditKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Paint, k.Erase, k.Drag, k.LinkID},
		{k.PrevBrush, k.NextBrush, k.View},
		{k.Wider, k.Narrower, k.Taller, k.Shorter},
		{k.Save, k.Help, k.Quit},
	}
}

// DefaultEditKeyMap returns default editor bindings.
func DefaultEditKeyMap() EditKeyMap {
	return EditKeyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Paint:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "paint")),
		Erase:     key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "erase")),
		Drag:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "drag paint")),
		PrevBrush: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev brush")),
		NextBrush: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next brush")),
		LinkID:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "link id")),
		Wider:     key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "wider")),
		Narrower:  key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "narrower")),
		Taller:    key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "taller")),
		Shorter:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "shorter")),
		View:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "iso view")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}

	return MenuActionNone
}
