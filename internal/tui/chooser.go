package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/vmunix/pdfimport/internal/importer"
)

type chooserModel struct {
	picker   filepicker.Model
	filter   importer.Filter
	selected string
	quitting bool
	notice   string
}

func newChooserModel(dir string, filter importer.Filter) chooserModel {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = filter.Extensions
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.ShowHidden = false
	fp.AutoHeight = true

	return chooserModel{picker: fp, filter: filter}
}

func (m chooserModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m chooserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		return m.choose(path)
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.notice = fmt.Sprintf("%s is not a %s file", path, m.filter.Name)
		return m, cmd
	}
	return m, cmd
}

// choose records path and ends the program. Paths the filter rejects are
// refused even if the picker let them through.
func (m chooserModel) choose(path string) (tea.Model, tea.Cmd) {
	if !m.filter.Match(path) {
		m.notice = fmt.Sprintf("%s is not a %s file", path, m.filter.Name)
		return m, nil
	}
	m.selected = path
	return m, tea.Quit
}

func (m chooserModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Import PDF") + "\n")
	b.WriteString(dimStyle.Render(m.picker.CurrentDirectory) + "\n\n")
	b.WriteString(m.picker.View() + "\n")
	if m.notice != "" {
		b.WriteString(errorStyle.Render(m.notice) + "\n")
	}
	b.WriteString(dimStyle.Render("↑/↓ move  → open  ← back  enter select  q cancel"))
	return b.String()
}

// Chooser is a terminal file picker.
type Chooser struct {
	Dir string
	Fs  afero.Fs
	Run RunFunc
}

// NewChooser browses from dir on the local filesystem.
func NewChooser(dir string) *Chooser {
	return &Chooser{Dir: dir, Fs: afero.NewOsFs(), Run: RunProgram}
}

// ChooseFile runs the picker. Quitting without a selection returns a nil
// Source and no error.
func (c *Chooser) ChooseFile(ctx context.Context, filter importer.Filter) (importer.Source, error) {
	final, err := c.Run(ctx, newChooserModel(c.Dir, filter))
	if err != nil {
		return nil, fmt.Errorf("file chooser: %w", err)
	}
	m, ok := final.(chooserModel)
	if !ok || m.selected == "" {
		return nil, nil
	}
	return importer.NewFileSource(c.Fs, m.selected), nil
}
