package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchRecursive adds dir and every directory below it to the
// watcher. fsnotify watches are not recursive on their own, but
// ScanDir covers the whole tree, so the watcher must too.
func watchRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return watcher.Add(path)
	})
}

// Watch rescans cue sheets under dir as they are created or change,
// until ctx is done. The whole tree is watched, including directories
// created while watching. Rippers write sheets incrementally, so a
// sheet is only rescanned after it has sat untouched for settle.
func (s *Scanner) Watch(ctx context.Context, dir string, settle time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("scanner: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchRecursive(watcher, dir); err != nil {
		return fmt.Errorf("scanner: watch %s: %w", dir, err)
	}
	s.log.Info("watching", zap.String("dir", dir))

	// one pending timer per path, reset on every new event
	pending := make(map[string]*time.Timer)
	scans := make(chan string)

	for {
		select {
		case <-ctx.Done():
			for _, t := range pending {
				t.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchRecursive(watcher, event.Name); err != nil {
						s.log.Warn("watch new dir", zap.String("dir", event.Name), zap.Error(err))
					}
					continue
				}
			}
			if !isCueFile(event.Name) {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if t, ok := pending[event.Name]; ok {
				t.Reset(settle)
				continue
			}
			path := event.Name
			pending[path] = time.AfterFunc(settle, func() {
				select {
				case scans <- path:
				case <-ctx.Done():
				}
			})

		case path := <-scans:
			delete(pending, path)
			if err := s.ScanFile(path); err != nil {
				s.log.Warn("rescan failed", zap.String("path", path), zap.Error(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("watch error", zap.Error(err))
		}
	}
}
