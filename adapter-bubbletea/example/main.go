package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	editor "github.com/ogguyhere/dos-and-text-editor/adapter-bubbletea"
	"github.com/ogguyhere/dos-and-text-editor/config"
	"github.com/ogguyhere/dos-and-text-editor/core"
)

type Model struct {
	editor editor.Model
}

func (m Model) Init() tea.Cmd {
	return m.editor.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor.SetSize(msg.Width-4, msg.Height-2)

	case editor.SaveMsg:
		log.Printf("saved %s (%d lines)", msg.Path, msg.Lines)

	case editor.QuitMsg:
		return m, tea.Quit
	}

	editorModel, cmd := m.editor.Update(msg)
	m.editor = editorModel.(editor.Model)

	return m, cmd
}

func (m Model) View() string {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(m.editor.View())
}

func main() {
	configPath := flag.String("config", "dte.toml", "path to a .toml or .yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dte: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		fmt.Fprintf(os.Stderr, "dte: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "dte: %v\n", err)
		os.Exit(1)
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "dte")
		if err != nil {
			fmt.Fprintf(os.Stderr, "dte: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	session := core.New(core.NewFileStorage(), &editor.SystemClipboard{})
	session.SetCaseSensitive(cfg.CaseSensitive)
	session.SetMaxCommandHistory(cfg.MaxCommandHistory)

	textEditor := editor.NewWithEditor(session, 80, 20)
	textEditor.Focus()
	textEditor.SetLanguage(cfg.Language, cfg.Theme)
	textEditor.SetMessageDuration(cfg.MessageDuration)
	textEditor.HideLineNumbers(!cfg.ShowLineNumbers)

	if file := flag.Arg(0); file != "" {
		if err := textEditor.Open(file); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(os.Stderr, "dte: %v\n", err)
				os.Exit(1)
			}
			session.SetFileName(file)
		}
	}

	p := tea.NewProgram(Model{editor: textEditor}, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running Bubble Tea program: %v\n", err)
		os.Exit(1)
	}
}
