package bubble_adapter

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds control keys to editor commands. Bindings only fire in insert
// mode; in command mode every key edits the command line.
type KeyMap struct {
	Save      key.Binding
	Open      key.Binding
	Find      key.Binding
	Replace   key.Binding
	Count     key.Binding
	Upper     key.Binding
	Lower     key.Binding
	Stats     key.Binding
	Game      key.Binding
	Merge     key.Binding
	Encode    key.Binding
	Paragraph key.Binding
	Yank      key.Binding
	Paste     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
}

// shortcut describes what a binding does: either it prefills the command
// line and waits for arguments, or it runs a complete command.
type shortcut struct {
	binding key.Binding
	prefill string
	command string
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Open:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open file")),
		Find:      key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "find word")),
		Replace:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "replace")),
		Count:     key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "count substring")),
		Upper:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "uppercase word")),
		Lower:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "lowercase word")),
		Stats:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "statistics")),
		Game:      key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "word game")),
		Merge:     key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "merge files")),
		Encode:    key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "run-length encode")),
		Paragraph: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "new paragraph")),
		Yank:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy line")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit without saving")),
		Help:      key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "toggle help")),
	}
}

func (k KeyMap) shortcuts() []shortcut {
	return []shortcut{
		{binding: k.Save, command: "w"},
		{binding: k.Open, prefill: "e "},
		{binding: k.Find, prefill: "find "},
		{binding: k.Replace, prefill: "replace "},
		{binding: k.Count, prefill: "count "},
		{binding: k.Upper, command: "upper"},
		{binding: k.Lower, command: "lower"},
		{binding: k.Stats, command: "stats"},
		{binding: k.Game, prefill: "game "},
		{binding: k.Merge, prefill: "merge "},
		{binding: k.Encode, prefill: "rle "},
		{binding: k.Paragraph, command: "para"},
		{binding: k.Yank, command: "yank"},
		{binding: k.Paste, command: "paste"},
		{binding: k.Quit, command: "q"},
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Open, k.Find, k.Stats, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Save, k.Open, k.Quit, k.ForceQuit, k.Help},
		{k.Find, k.Replace, k.Count, k.Upper, k.Lower},
		{k.Stats, k.Game, k.Merge, k.Encode},
		{k.Paragraph, k.Yank, k.Paste},
	}
}
