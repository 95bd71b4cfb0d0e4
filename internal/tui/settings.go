package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmunix/pdfimport/internal/config"
)

// SettingsStore is the write-through store behind the settings panel.
type SettingsStore interface {
	Settings() config.Settings
	Set(fn func(*config.Settings)) error
}

type settingsModel struct {
	store SettingsStore
	input textinput.Model
	saved string
	err   error
}

func newSettingsModel(store SettingsStore) settingsModel {
	in := textinput.New()
	in.Placeholder = config.DefaultImportFolder
	in.CharLimit = 0
	in.Width = 40
	current := store.Settings().ImportFolder
	in.SetValue(current)
	in.CursorEnd()
	in.Focus()

	return settingsModel{store: store, input: in, saved: current}
}

func (m settingsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m settingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter, tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Every edit is written through immediately.
	if v := m.input.Value(); v != m.saved {
		m.err = m.store.Set(func(s *config.Settings) { s.ImportFolder = v })
		if m.err == nil {
			m.saved = v
		}
	}
	return m, cmd
}

func (m settingsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("PDF Import settings") + "\n\n")
	b.WriteString(labelStyle.Render("Import folder") + "\n")
	b.WriteString(dimStyle.Render("Vault folder that imported PDFs are copied into.") + "\n")
	b.WriteString(m.input.View() + "\n")
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("  "+m.err.Error()) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("changes save as you type  enter/esc to close"))
	return b.String()
}

// RunSettings shows the settings panel until the user closes it.
func RunSettings(ctx context.Context, store SettingsStore, run RunFunc) error {
	if run == nil {
		run = RunProgram
	}
	final, err := run(ctx, newSettingsModel(store))
	if err != nil {
		return err
	}
	if m, ok := final.(settingsModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
