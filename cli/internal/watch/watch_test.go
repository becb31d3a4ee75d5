package watch

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
)

func TestWatcherRerunsOnChange(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "schema.prisma")
	require.NoError(t, os.WriteFile(schema, []byte("model A {\n  id Int @id\n}\n"), 0o644))

	var runs atomic.Int32
	w, err := NewWatcher(schema, func() error {
		runs.Add(1)
		return nil
	}, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, w.Start())
	assert.Equal(t, int32(1), runs.Load())

	require.NoError(t, os.WriteFile(schema, []byte("model B {\n  id Int @id\n}\n"), 0o644))
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "schema.prisma")
	require.NoError(t, os.WriteFile(schema, []byte(""), 0o644))

	var runs atomic.Int32
	w, err := NewWatcher(schema, func() error {
		runs.Add(1)
		return nil
	}, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })
	require.NoError(t, w.Start())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}

func TestWatcherInitialFailure(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "schema.prisma")
	require.NoError(t, os.WriteFile(schema, nil, 0o644))

	w, err := NewWatcher(schema, func() error { return errors.New("broken schema") })
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	err = w.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initial run: broken schema")
}

func TestNewWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "schema.prisma"), func() error { return nil })
	require.Error(t, err)
}
