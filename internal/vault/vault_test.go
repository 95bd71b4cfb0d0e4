// internal/vault/vault_test.go
package vault

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVault_CreateFolder_Idempotent(t *testing.T) {
	ctx := context.Background()
	v := NewWithFs(afero.NewMemMapFs())

	require.NoError(t, v.CreateFolder(ctx, "PDFs"))
	require.NoError(t, v.CreateFolder(ctx, "PDFs"), "second create should be a no-op")

	ok, err := v.Exists(ctx, "PDFs")
	require.NoError(t, err)
	assert.True(t, ok)

	entries, err := afero.ReadDir(v.Fs(), "/")
	require.NoError(t, err)
	var count int
	for _, e := range entries {
		if e.Name() == "PDFs" {
			count++
		}
	}
	assert.Equal(t, 1, count, "folder should exist exactly once")
}

func TestVault_CreateFolder_Nested(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	v := New(root)

	require.NoError(t, v.CreateFolder(ctx, "Docs/PDFs"))

	info, err := os.Stat(filepath.Join(root, "Docs", "PDFs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestVault_CreateFolder_FileInTheWay(t *testing.T) {
	ctx := context.Background()
	v := NewWithFs(afero.NewMemMapFs())
	require.NoError(t, afero.WriteFile(v.Fs(), "PDFs", []byte("not a folder"), 0o644))

	err := v.CreateFolder(ctx, "PDFs")
	assert.ErrorIs(t, err, ErrNotDirectory)
}

func TestVault_Exists(t *testing.T) {
	ctx := context.Background()
	v := NewWithFs(afero.NewMemMapFs())

	ok, err := v.Exists(ctx, "PDFs")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, v.CreateFolder(ctx, "PDFs"))

	ok, err = v.Exists(ctx, "/PDFs/")
	require.NoError(t, err)
	assert.True(t, ok, "lookup should normalize the path")
}

func TestVault_WriteBinary_RoundTrip(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	v := New(root)
	require.NoError(t, v.CreateFolder(ctx, "PDFs"))

	data := make([]byte, 500)
	for i := range data {
		data[i] = byte(i * 7)
	}
	require.NoError(t, v.WriteBinary(ctx, "PDFs/report.pdf", data))

	got, err := os.ReadFile(filepath.Join(root, "PDFs", "report.pdf"))
	require.NoError(t, err)
	assert.Equal(t, data, got)

	viaVault, err := v.ReadBinary(ctx, "PDFs/report.pdf")
	require.NoError(t, err)
	assert.Equal(t, data, viaVault)
}

func TestVault_WriteBinary_Overwrites(t *testing.T) {
	ctx := context.Background()
	v := NewWithFs(afero.NewMemMapFs())
	require.NoError(t, v.CreateFolder(ctx, "PDFs"))

	require.NoError(t, v.WriteBinary(ctx, "PDFs/a.pdf", []byte("first version, longer")))
	require.NoError(t, v.WriteBinary(ctx, "PDFs/a.pdf", []byte("second")))

	got, err := v.ReadBinary(ctx, "PDFs/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestVault_WriteBinary_Directory(t *testing.T) {
	ctx := context.Background()
	v := NewWithFs(afero.NewMemMapFs())
	require.NoError(t, v.CreateFolder(ctx, "PDFs"))

	err := v.WriteBinary(ctx, "PDFs/", []byte("x"))
	assert.ErrorIs(t, err, ErrIsDirectory)
}

func TestVault_WriteBinary_MissingParent(t *testing.T) {
	ctx := context.Background()
	v := New(t.TempDir())

	err := v.WriteBinary(ctx, "Nope/a.pdf", []byte("x"))
	assert.Error(t, err, "parent folders are not created by writes")
}

func TestVault_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v := NewWithFs(afero.NewMemMapFs())

	_, err := v.Exists(ctx, "PDFs")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, v.CreateFolder(ctx, "PDFs"), context.Canceled)
	assert.ErrorIs(t, v.WriteBinary(ctx, "PDFs/a.pdf", nil), context.Canceled)
}
