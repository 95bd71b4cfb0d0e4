package tui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmunix/pdfimport/internal/prompt"
)

// renameModel holds the answer until the program exits. The request is
// resolved only after the terminal is restored.
type renameModel struct {
	input     textinput.Model
	confirmed bool
	done      bool
}

func newRenameModel(original string) renameModel {
	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 0
	in.Width = 60
	in.SetValue(original)
	in.CursorEnd()
	in.Focus()

	return renameModel{input: in}
}

func (m renameModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m renameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.confirmed, m.done = true, true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.done = true
			return m, tea.Quit
		}
	}
	if m.done {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m renameModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Rename PDF") + "\n\n")
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(dimStyle.Render("enter import  esc cancel"))
	return b.String()
}

// answer returns the confirmed name, if any.
func (m renameModel) answer() (string, bool) {
	if !m.confirmed {
		return "", false
	}
	return m.input.Value(), true
}

// Prompter shows the rename prompt in the terminal.
type Prompter struct {
	Run RunFunc
	Log *slog.Logger
}

// NewPrompter returns a prompter that draws on the terminal.
func NewPrompter(log *slog.Logger) *Prompter {
	if log == nil {
		log = slog.Default()
	}
	return &Prompter{Run: RunProgram, Log: log}
}

// PromptFilename starts the prompt and returns immediately. The request
// resolves once the program has exited: confirmed on enter, cancelled on
// anything else.
func (p *Prompter) PromptFilename(ctx context.Context, original string) *prompt.Request {
	req := prompt.New(original)
	go func() {
		final, err := p.Run(ctx, newRenameModel(original))
		if err != nil {
			p.Log.Debug("rename prompt ended", "error", err)
		}
		if m, ok := final.(renameModel); ok {
			if name, ok := m.answer(); ok {
				req.Confirm(name)
				return
			}
		}
		req.Cancel()
	}()
	return req
}
