package editor

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/facetcraft/internal/engine/model"
	"github.com/Faultbox/facetcraft/internal/logger"
)

// ErrWatcherClosed is returned by Watch after Close.
var ErrWatcherClosed = errors.New("slot watcher closed")

// SlotWatcher reloads slot models when their files change on disk. Files
// are tracked through their directories so replacing a file by rename, as
// Save does, is seen too.
type SlotWatcher struct {
	fs   *fsnotify.Watcher
	post func(Update)
	log  *zap.Logger

	mu     sync.Mutex
	files  map[string]map[int]struct{} // absolute path -> slots following it
	slots  map[int]string // slot -> absolute path
	dirs   map[string]int // directory -> number of files watched in it
	closed bool
}

// NewSlotWatcher creates a watcher that posts reloads through post.
func NewSlotWatcher(post func(Update)) (*SlotWatcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &SlotWatcher{
		fs:    fs,
		post:  post,
		log:   logger.Named("watch"),
		files: make(map[string]map[int]struct{}),
		slots: make(map[int]string),
		dirs:  make(map[string]int),
	}, nil
}

// Watch follows path for slot, replacing whatever the slot followed
// before. An empty path only stops following.
func (w *SlotWatcher) Watch(slot int, path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	var abs string
	if path != "" {
		var err error
		if abs, err = filepath.Abs(path); err != nil {
			return err
		}
	}
	if old, ok := w.slots[slot]; ok {
		if old == abs {
			return nil
		}
		w.forget(slot, old)
	}
	if abs == "" {
		return nil
	}

	dir := filepath.Dir(abs)
	if w.dirs[dir] == 0 {
		if err := w.fs.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	if w.files[abs] == nil {
		w.files[abs] = make(map[int]struct{})
	}
	w.files[abs][slot] = struct{}{}
	w.slots[slot] = abs
	w.log.Debug("watching slot file", zap.Int("slot", slot+1), zap.String("path", abs))
	return nil
}

func (w *SlotWatcher) forget(slot int, abs string) {
	delete(w.slots, slot)
	delete(w.files[abs], slot)
	if len(w.files[abs]) == 0 {
		delete(w.files, abs)
	}
	dir := filepath.Dir(abs)
	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		_ = w.fs.Remove(dir)
	}
}

// Watched returns the absolute path followed for slot.
func (w *SlotWatcher) Watched(slot int) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.slots[slot]
	return p, ok
}

// Run handles file events until ctx is cancelled or the watcher is closed.
func (w *SlotWatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			path := filepath.Clean(e.Name)
			if slots := w.following(path); len(slots) > 0 {
				w.reload(slots, path)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

// following returns the slots that follow path, in ascending order.
func (w *SlotWatcher) following(path string) []int {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []int
	for slot := range w.files[path] {
		out = append(out, slot)
	}
	sort.Ints(out)
	return out
}

// reload parses the file here, off the main loop, and posts one update per
// slot. A file caught half written fails to parse and is skipped; the final
// write brings it back.
func (w *SlotWatcher) reload(slots []int, path string) {
	m := model.New()
	if err := m.Load(path); err != nil {
		w.log.Warn("cannot reload slot file",
			zap.Ints("slots", slots),
			zap.String("path", path),
			zap.Error(err),
		)
		return
	}

	w.log.Info("slot file reloaded", zap.Ints("slots", slots), zap.String("path", path))
	for i, slot := range slots {
		mesh := m
		if i > 0 {
			mesh = m.Clone()
		}
		w.post(func(s *Session) {
			sl := s.Slots.Get(slot)
			if cur, err := filepath.Abs(sl.Path); err != nil || cur != path {
				return
			}
			s.Slots.Set(slot, mesh, sl.Path)
		})
	}
}

// Close stops watching.
func (w *SlotWatcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.fs.Close()
}
