package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "dojo.dev/pkg/dojo/internal/model"
)

func TestTranslateEvent(t *testing.T) {
	tests := []struct {
		name     string
		event    fsnotify.Event
		want     m.EventKind
		relevant bool
	}{
		{"create", fsnotify.Event{Name: "a.go", Op: fsnotify.Create}, m.EventCreate, true},
		{"write", fsnotify.Event{Name: "a.go", Op: fsnotify.Write}, m.EventWrite, true},
		{"remove", fsnotify.Event{Name: "a.go", Op: fsnotify.Remove}, m.EventRemove, true},
		{"rename", fsnotify.Event{Name: "a.go", Op: fsnotify.Rename}, m.EventRename, true},
		{"chmod", fsnotify.Event{Name: "a.go", Op: fsnotify.Chmod}, m.EventChmod, true},
		{"write and chmod prefers write", fsnotify.Event{Name: "a.go", Op: fsnotify.Write | fsnotify.Chmod}, m.EventWrite, true},
		{"hidden swap file", fsnotify.Event{Name: "dir/.a.go.swp", Op: fsnotify.Write}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, relevant := translateEvent(tt.event)
			assert.Equal(t, tt.relevant, relevant)

			if tt.relevant {
				assert.Equal(t, tt.want, got.Kind)
				assert.Equal(t, m.Path(tt.event.Name), got.Path)
			}
		})
	}
}

func waitForEvent(t *testing.T, sub Subscription, match func(m.FileChangeEvent) bool) m.FileChangeEvent {
	t.Helper()

	timeout := time.After(5 * time.Second)

	for {
		select {
		case event, ok := <-sub.Events():
			require.True(t, ok, "event channel closed")

			if match(event) {
				return event
			}
		case <-timeout:
			t.Fatal("timed out waiting for filesystem event")
			return m.FileChangeEvent{}
		}
	}
}

func TestFSNotifyWatchAdapter_Watch(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "intro"), 0o755))

	adapter := NewFSNotifyWatchAdapter(NewLocalSourceFSAdapter())

	sub, err := adapter.Watch(context.Background(), m.Path(root))
	require.NoError(t, err)

	defer func() { _ = sub.Close() }()

	target := filepath.Join(root, "intro", "main.go")
	require.NoError(t, os.WriteFile(target, []byte("package main\n"), 0o600))

	event := waitForEvent(t, sub, func(e m.FileChangeEvent) bool {
		return e.Path == m.Path(target)
	})
	assert.True(t, event.Triggers())
}

func TestFSNotifyWatchAdapter_NewDirectoryIsWatched(t *testing.T) {
	root := t.TempDir()

	adapter := NewFSNotifyWatchAdapter(NewLocalSourceFSAdapter())

	sub, err := adapter.Watch(context.Background(), m.Path(root))
	require.NoError(t, err)

	defer func() { _ = sub.Close() }()

	newDir := filepath.Join(root, "later")
	require.NoError(t, os.Mkdir(newDir, 0o755))

	waitForEvent(t, sub, func(e m.FileChangeEvent) bool {
		return e.Path == m.Path(newDir) && e.Kind == m.EventCreate
	})

	target := filepath.Join(newDir, "main.go")
	require.NoError(t, os.WriteFile(target, []byte("package main\n"), 0o600))

	waitForEvent(t, sub, func(e m.FileChangeEvent) bool {
		return e.Path == m.Path(target)
	})
}

func TestFSNotifyWatchAdapter_MissingRoot(t *testing.T) {
	adapter := NewFSNotifyWatchAdapter(NewLocalSourceFSAdapter())

	_, err := adapter.Watch(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing")))
	require.Error(t, err)
}

func TestFSNotifySubscription_CloseClosesChannels(t *testing.T) {
	adapter := NewFSNotifyWatchAdapter(NewLocalSourceFSAdapter())

	sub, err := adapter.Watch(context.Background(), m.Path(t.TempDir()))
	require.NoError(t, err)

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())

	_, ok := <-sub.Events()
	assert.False(t, ok)

	_, ok = <-sub.Errors()
	assert.False(t, ok)
}
