package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	m "dojo.dev/pkg/dojo/internal/model"
)

// Subscription is a live stream of filesystem changes.
type Subscription interface {
	// Events delivers change notifications. It is closed after Close.
	Events() <-chan m.FileChangeEvent
	// Errors delivers non-fatal watcher errors. It is closed after Close.
	Errors() <-chan error
	// Close stops watching. It is safe to call more than once.
	Close() error
}

// WatchAdapter opens filesystem subscriptions.
type WatchAdapter interface {
	// Watch subscribes to root and every directory beneath it.
	Watch(ctx context.Context, root m.Path) (Subscription, error)
}

// FSNotifyWatchAdapter implements WatchAdapter with fsnotify.
type FSNotifyWatchAdapter struct {
	fs SourceFSAdapter
}

// NewFSNotifyWatchAdapter constructs a FSNotifyWatchAdapter. fs is used to
// enumerate the directories to watch, since fsnotify is not recursive.
func NewFSNotifyWatchAdapter(fs SourceFSAdapter) *FSNotifyWatchAdapter {
	return &FSNotifyWatchAdapter{fs: fs}
}

// Watch adds root and its subdirectories to a new fsnotify watcher.
// Directories created later are added as their create events arrive.
func (a *FSNotifyWatchAdapter) Watch(ctx context.Context, root m.Path) (Subscription, error) {
	dirs, err := a.fs.Dirs(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("list watch directories: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	for _, dir := range dirs {
		if err := watcher.Add(string(dir)); err != nil {
			_ = watcher.Close()
			slog.Error("Failed to watch directory", "dir", dir, "error", err)

			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	slog.Debug("Watching directories", "root", root, "count", len(dirs))

	sub := &fsnotifySubscription{
		watcher: watcher,
		fs:      a.fs,
		events:  make(chan m.FileChangeEvent),
		errors:  make(chan error),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}

	go sub.run()

	return sub, nil
}

type fsnotifySubscription struct {
	watcher *fsnotify.Watcher
	fs      SourceFSAdapter
	events  chan m.FileChangeEvent
	errors  chan error

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
	closeErr error
}

func (s *fsnotifySubscription) Events() <-chan m.FileChangeEvent { return s.events }

func (s *fsnotifySubscription) Errors() <-chan error { return s.errors }

func (s *fsnotifySubscription) Close() error {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		s.closeErr = s.watcher.Close()
		<-s.doneCh
	})

	return s.closeErr
}

func (s *fsnotifySubscription) run() {
	defer close(s.doneCh)
	defer close(s.events)
	defer close(s.errors)

	for {
		select {
		case <-s.stopCh:
			return

		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			change, relevant := translateEvent(event)
			if !relevant {
				continue
			}

			if change.Kind == m.EventCreate {
				s.watchNewDir(change.Path)
			}

			select {
			case s.events <- change:
			case <-s.stopCh:
				return
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}

			select {
			case s.errors <- err:
			case <-s.stopCh:
				return
			}
		}
	}
}

// watchNewDir extends the subscription to a directory created after Watch.
func (s *fsnotifySubscription) watchNewDir(path m.Path) {
	info, err := os.Stat(string(path))
	if err != nil || !info.IsDir() || isHidden(filepath.Base(string(path))) {
		return
	}

	dirs, err := s.fs.Dirs(context.Background(), path)
	if err != nil {
		slog.Warn("Failed to list new directory", "dir", path, "error", err)
		return
	}

	for _, dir := range dirs {
		if err := s.watcher.Add(string(dir)); err != nil {
			slog.Warn("Failed to watch new directory", "dir", dir, "error", err)
		}
	}
}

// translateEvent maps an fsnotify event onto the model. Events for hidden
// files (editor swap files, .git) are dropped.
func translateEvent(event fsnotify.Event) (m.FileChangeEvent, bool) {
	if isHidden(filepath.Base(event.Name)) {
		return m.FileChangeEvent{}, false
	}

	var kind m.EventKind

	switch {
	case event.Has(fsnotify.Create):
		kind = m.EventCreate
	case event.Has(fsnotify.Write):
		kind = m.EventWrite
	case event.Has(fsnotify.Remove):
		kind = m.EventRemove
	case event.Has(fsnotify.Rename):
		kind = m.EventRename
	case event.Has(fsnotify.Chmod):
		kind = m.EventChmod
	default:
		return m.FileChangeEvent{}, false
	}

	return m.FileChangeEvent{Path: m.Path(event.Name), Kind: kind}, true
}
