// Package scanner walks a music library for cue sheets, assembles
// them and records the results in the catalog.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/rabidaudio/cuetools/catalog"
	"github.com/rabidaudio/cuetools/tracklist"
)

// Scanner parses cue sheets and stores them.
type Scanner struct {
	store *catalog.Store
	log   *zap.Logger
}

func New(store *catalog.Store, log *zap.Logger) *Scanner {
	return &Scanner{store: store, log: log}
}

func isCueFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".cue")
}

// ScanDir walks dir for cue sheets. A sheet that fails to tokenize
// or store is logged and skipped; the walk itself keeps going.
func (s *Scanner) ScanDir(dir string) error {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isCueFile(path) {
			return nil
		}
		if err := s.ScanFile(path); err != nil {
			s.log.Warn("skipping sheet", zap.String("path", path), zap.Error(err))
			return nil
		}
		count++
		return nil
	})
	if err != nil {
		return fmt.Errorf("scanner: walk %s: %w", dir, err)
	}
	s.log.Info("scan complete", zap.String("dir", dir), zap.Int("sheets", count))
	return nil
}

// ScanFile parses one cue sheet and stores the result. Assembly
// diagnostics are not fatal: the partial tracklist is stored and the
// issues are logged.
func (s *Scanner) ScanFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	list, issues, err := tracklist.Parse(string(data))
	if err != nil {
		return fmt.Errorf("scanner: parse %s: %w", path, err)
	}
	for _, issue := range issues {
		s.log.Warn("incomplete assembly", zap.String("path", path), zap.Error(issue))
	}

	if err := s.store.Save(path, list); err != nil {
		return err
	}
	s.log.Debug("scanned sheet",
		zap.String("path", path),
		zap.String("title", list.Title),
		zap.Int("files", len(list.Files)))
	return nil
}
