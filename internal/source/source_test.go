package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.mg")
	require.NoError(t, os.WriteFile(file, []byte("x = 1"), 0644))

	assert.True(t, Exists(file))
	assert.False(t, Exists(dir))
	assert.False(t, Exists(filepath.Join(dir, "missing.mg")))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.mg")
	require.NoError(t, os.WriteFile(file, []byte("x = 1\n"), 0644))

	src, err := ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", src)

	_, err = ReadFile(filepath.Join(dir, "missing.mg"))
	require.Error(t, err)
}

func TestReadAll(t *testing.T) {
	src, err := ReadAll(strings.NewReader("print(1)"))
	require.NoError(t, err)
	assert.Equal(t, "print(1)", src)
}
