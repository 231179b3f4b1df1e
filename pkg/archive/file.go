package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/swaplab/swapplan/pkg/errors"
	"github.com/swaplab/swapplan/pkg/plan"
)

// FileStore archives plans as JSON files, one per document.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based archive.
// If baseDir is empty, defaults to ~/.config/swapplan/history/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "swapplan", "history")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) planPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

func (s *FileStore) Put(ctx context.Context, doc *plan.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	if err := os.WriteFile(s.planPath(doc.ID), data, 0600); err != nil {
		return fmt.Errorf("write plan file: %w", err)
	}
	return nil
}

func (s *FileStore) Get(ctx context.Context, id string) (*plan.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.planPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodePlanNotFound, "plan %s not found", id)
		}
		return nil, fmt.Errorf("read plan file: %w", err)
	}

	var doc plan.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	return &doc, nil
}

func (s *FileStore) List(ctx context.Context) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read archive dir: %w", err)
	}

	var out []Summary
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var doc plan.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			continue
		}
		out = append(out, summarize(&doc))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.planPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove plan file: %w", err)
	}
	return nil
}

func (s *FileStore) Close(ctx context.Context) error { return nil }

// Path returns the base directory for archived plans.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)
