package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aseptimu/flatfile-shortener/internal/app/service"
	"github.com/aseptimu/flatfile-shortener/internal/app/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDatabase(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urls.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_AddGetLookup(t *testing.T) {
	path := newDatabase(t, "")

	var out bytes.Buffer
	require.NoError(t, run([]string{"-f", path, "-b", "http://short.ly", "add", "http://foo.com/"}, &out))
	shortURL := strings.TrimSpace(out.String())
	require.True(t, strings.HasPrefix(shortURL, "http://short.ly/"))

	out.Reset()
	require.NoError(t, run([]string{"-f", path, "-b", "http://short.ly", "add", "http://foo.com/"}, &out))
	assert.Equal(t, shortURL, strings.TrimSpace(out.String()))

	out.Reset()
	code := strings.TrimPrefix(shortURL, "http://short.ly/")
	require.NoError(t, run([]string{"--file", path, "--base", "http://short.ly", "get", code}, &out))
	assert.Equal(t, "http://foo.com/\n", out.String())

	out.Reset()
	require.NoError(t, run([]string{"-f", path, "-b", "http://short.ly", "lookup", "http://foo.com/"}, &out))
	assert.Equal(t, shortURL+"\n", out.String())
}

func TestRun_Misses(t *testing.T) {
	path := newDatabase(t, `{"abc123": "http://foo.com/"}`)
	var out bytes.Buffer

	err := run([]string{"-f", path, "-b", "http://short.ly", "get", "zzz999"}, &out)
	assert.ErrorIs(t, err, service.ErrURLNotFound)

	err = run([]string{"-f", path, "-b", "http://short.ly", "lookup", "http://bar.com/"}, &out)
	assert.ErrorIs(t, err, errNotFound)
	assert.Empty(t, out.String())
}

func TestRun_BadInvocation(t *testing.T) {
	path := newDatabase(t, "{}")
	var out bytes.Buffer

	assert.Error(t, run([]string{"-f", path, "-b", "http://short.ly", "add"}, &out))
	assert.Error(t, run([]string{"-f", path, "-b", "http://short.ly", "remove", "abc123"}, &out))
	assert.Error(t, run([]string{"-b", "http://short.ly", "get", "abc123"}, &out))

	err := run([]string{"-f", filepath.Join(t.TempDir(), "missing.json"), "-b", "http://short.ly", "get", "abc123"}, &out)
	assert.ErrorIs(t, err, store.ErrConfiguration)
}
