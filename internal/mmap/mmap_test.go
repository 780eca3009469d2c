package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapping(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.bin")
	payload := []byte("sparse matrix snapshot payload")
	require.NoError(t, os.WriteFile(path, payload, 0o644))

	m, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, len(payload), m.Size())
	assert.Equal(t, payload, m.Bytes())
	require.NoError(t, m.Advise(AccessSequential))

	buf := make([]byte, 6)
	n, err := m.ReadAt(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, "sparse", string(buf))

	_, err = m.ReadAt(buf, -1)
	require.ErrorIs(t, err, ErrInvalidOffset)

	require.NoError(t, m.Close())
	require.NoError(t, m.Close(), "Close is idempotent")
	assert.Nil(t, m.Bytes())

	_, err = m.ReadAt(buf, 0)
	require.ErrorIs(t, err, ErrClosed)
}

func TestMappingEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	m, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Size())
	require.NoError(t, m.Close())
}

func TestMappingMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
