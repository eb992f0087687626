package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/files"})
	require.NoError(t, err)
	return s
}

func TestLocalStorage_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestLocalStorage(t)

	content := []byte("%PDF-1.4 fake resume")
	err := s.Save(ctx, "resumes/abc.pdf", bytes.NewReader(content), "application/pdf")
	require.NoError(t, err)

	exists, err := s.Exists(ctx, "resumes/abc.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := s.Get(ctx, "resumes/abc.pdf")
	require.NoError(t, err)
	defer reader.Close()

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	require.NoError(t, s.Delete(ctx, "resumes/abc.pdf"))

	exists, err = s.Exists(ctx, "resumes/abc.pdf")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_DeleteMissingIsNoError(t *testing.T) {
	s := newTestLocalStorage(t)
	assert.NoError(t, s.Delete(context.Background(), "resumes/never-existed.pdf"))
}

func TestLocalStorage_GetURL(t *testing.T) {
	s := newTestLocalStorage(t)
	assert.Equal(t, "/files/resumes/abc.pdf", s.GetURL("resumes/abc.pdf"))

	bare, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "/files/resumes/abc.pdf", bare.GetURL("resumes/abc.pdf"))
}
