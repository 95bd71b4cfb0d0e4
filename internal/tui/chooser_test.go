package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/pdfimport/internal/importer"
)

func TestChooserModel_QuitCancels(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		m := newChooserModel(t.TempDir(), importer.PDFFilter)
		m2, cmd := m.Update(k)
		require.NotNil(t, cmd)
		result := m2.(chooserModel)
		assert.True(t, result.quitting)
		assert.Empty(t, result.selected)
	}
}

func TestChooserModel_RestrictedToPDF(t *testing.T) {
	m := newChooserModel(t.TempDir(), importer.PDFFilter)
	assert.Equal(t, []string{".pdf"}, m.picker.AllowedTypes)
	assert.False(t, m.picker.DirAllowed)

	m2, cmd := m.choose("/docs/notes.txt")
	assert.Nil(t, cmd)
	assert.Empty(t, m2.(chooserModel).selected)
	assert.Contains(t, m2.(chooserModel).notice, "not a PDF file")

	m3, cmd := m.choose("/docs/report.pdf")
	require.NotNil(t, cmd)
	assert.Equal(t, "/docs/report.pdf", m3.(chooserModel).selected)
}

func TestChooser_ChooseFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/docs/report.pdf", []byte("%PDF"), 0o644))

	c := &Chooser{
		Dir: "/docs",
		Fs:  fs,
		Run: func(ctx context.Context, m tea.Model) (tea.Model, error) {
			next, _ := m.(chooserModel).choose("/docs/report.pdf")
			return next, nil
		},
	}

	src, err := c.ChooseFile(context.Background(), importer.PDFFilter)
	require.NoError(t, err)
	require.NotNil(t, src)
	assert.Equal(t, "report.pdf", src.Name())

	data, err := src.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))
}

func TestChooser_Dismissed(t *testing.T) {
	c := &Chooser{
		Dir: "/docs",
		Fs:  afero.NewMemMapFs(),
		Run: func(ctx context.Context, m tea.Model) (tea.Model, error) {
			next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
			return next, nil
		},
	}

	src, err := c.ChooseFile(context.Background(), importer.PDFFilter)
	require.NoError(t, err)
	assert.Nil(t, src)
}

func TestChooser_RunError(t *testing.T) {
	c := &Chooser{
		Run: func(ctx context.Context, m tea.Model) (tea.Model, error) {
			return nil, errors.New("no tty")
		},
	}

	_, err := c.ChooseFile(context.Background(), importer.PDFFilter)
	assert.ErrorContains(t, err, "no tty")
}
