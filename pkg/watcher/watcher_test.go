package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerCollapsesBursts(t *testing.T) {
	d := newDebouncer(50 * time.Millisecond)
	defer d.stop()

	for i := 0; i < 5; i++ {
		d.hit()
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-d.fired():
		t.Fatal("fired before the burst settled")
	default:
	}

	select {
	case <-d.fired():
	case <-time.After(500 * time.Millisecond):
		t.Fatal("never fired after the burst settled")
	}
}

func TestDebouncerRearmsAfterFiring(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	defer d.stop()

	d.hit()
	select {
	case <-d.fired():
	case <-time.After(500 * time.Millisecond):
		t.Fatal("first firing missed")
	}

	d.hit()
	select {
	case <-d.fired():
	case <-time.After(500 * time.Millisecond):
		t.Fatal("second firing missed")
	}
}

func TestWatcherTriggersOnChange(t *testing.T) {
	root := t.TempDir()

	var fired atomic.Int32
	w, err := New([]string{root}, func(ctx context.Context) {
		fired.Add(1)
	}, WithDebounce(30*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()

	// settle watcher startup
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.MkdirAll(filepath.Join(root, "new-skill"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "new-skill", "SKILL.md"), []byte("---\nname: x\ndescription: y\n---\n"), 0o644))

	assert.Eventually(t, func() bool {
		return fired.Load() >= 1
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	<-done
}

func TestWatcherSkipsMissingRoots(t *testing.T) {
	w, err := New([]string{filepath.Join(t.TempDir(), "absent")}, func(context.Context) {})
	require.NoError(t, err)
	require.NoError(t, w.fsw.Close())
}
