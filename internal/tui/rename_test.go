package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/pdfimport/internal/prompt"
)

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestRenameModel_PrefilledWithOriginal(t *testing.T) {
	m := newRenameModel("report.pdf")
	assert.Equal(t, "report.pdf", m.input.Value())
	assert.Contains(t, m.View(), "Rename PDF")
}

func TestRenameModel_EnterConfirmsUnchanged(t *testing.T) {
	m, cmd := newRenameModel("report.pdf").Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	name, ok := m.(renameModel).answer()
	assert.True(t, ok)
	assert.Equal(t, "report.pdf", name)
	assert.Empty(t, m.View())
}

func TestRenameModel_EditThenConfirm(t *testing.T) {
	var m tea.Model = newRenameModel("report.pdf")

	// Clear the field, then type a new name.
	for range "report.pdf" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = typeText(m, "annual-report.pdf")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	name, ok := m.(renameModel).answer()
	assert.True(t, ok)
	assert.Equal(t, "annual-report.pdf", name)
}

func TestRenameModel_EmptyConfirmPassesThrough(t *testing.T) {
	var m tea.Model = newRenameModel("a.pdf")
	for range "a.pdf" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	name, ok := m.(renameModel).answer()
	assert.True(t, ok, "empty names are not rejected")
	assert.Equal(t, "", name)
}

func TestRenameModel_EscCancels(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m, cmd := newRenameModel("report.pdf").Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		_, ok := m.(renameModel).answer()
		assert.False(t, ok)
	}
}

func TestPrompter_ResolvesAfterProgramExits(t *testing.T) {
	exited := make(chan struct{})
	p := NewPrompter(nil)
	p.Run = func(ctx context.Context, m tea.Model) (tea.Model, error) {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		// The terminal is still being restored here.
		<-exited
		return m, nil
	}

	req := p.PromptFilename(context.Background(), "report.pdf")

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, prompt.StateOpen, req.State(), "enter alone does not resolve the request")

	close(exited)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	name, ok, err := req.Wait(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "report.pdf", name)
}

func TestPrompter_RunErrorCancels(t *testing.T) {
	p := NewPrompter(nil)
	p.Run = func(ctx context.Context, m tea.Model) (tea.Model, error) {
		return nil, errors.New("no tty")
	}

	req := p.PromptFilename(context.Background(), "report.pdf")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, ok, err := req.Wait(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPrompter_ExitWithoutAnswerCancels(t *testing.T) {
	p := NewPrompter(nil)
	p.Run = func(ctx context.Context, m tea.Model) (tea.Model, error) { return m, nil }

	req := p.PromptFilename(context.Background(), "report.pdf")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, ok, err := req.Wait(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPrompter_ConfirmFromProgram(t *testing.T) {
	p := NewPrompter(nil)
	p.Run = func(ctx context.Context, m tea.Model) (tea.Model, error) {
		m = typeText(m, "-v2")
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		return m, nil
	}

	req := p.PromptFilename(context.Background(), "report.pdf")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	name, ok, err := req.Wait(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "report.pdf-v2", name)
}
