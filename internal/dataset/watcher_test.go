package dataset

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatcherNotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("Country,Region,RandomValue\n"), 0o644))

	notified := make(chan struct{}, 4)
	w, err := NewWatcher(path, 20*time.Millisecond, zap.NewNop(), func() {
		notified <- struct{}{}
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("Country,Region,RandomValue\nBrazil,Bahia,1\n"), 0o644))

	select {
	case <-notified:
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification")
	}
}

func TestWatcherCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	var count atomic.Int32
	w, err := NewWatcher(path, 50*time.Millisecond, zap.NewNop(), func() {
		count.Add(1)
	})
	require.NoError(t, err)
	defer w.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("burst\n"), 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), count.Load(), "rapid writes should collapse into one notification")
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	var count atomic.Int32
	w, err := NewWatcher(path, 10*time.Millisecond, zap.NewNop(), func() {
		count.Add(1)
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0o644))

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, count.Load())
}

func TestWatcherCloseStopsNotifications(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	var count atomic.Int32
	w, err := NewWatcher(path, 30*time.Millisecond, zap.NewNop(), func() {
		count.Add(1)
	})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("b\n"), 0o644))
	require.NoError(t, w.Close())

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, count.Load(), "notifications after Close must not fire")
}
