package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/telshop/backoffice/internal/catalog/domain"
	"github.com/telshop/backoffice/internal/normalize"
)

const productsFile = "products.json"

// JSONStore keeps the whole catalog as a pretty-printed JSON array on disk.
type JSONStore struct {
	path string
}

func NewJSONStore(dataDir string) (*JSONStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &JSONStore{path: filepath.Join(dataDir, productsFile)}, nil
}

func (s *JSONStore) LoadAll(ctx context.Context) ([]domain.Product, error) {
	_ = ctx
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []domain.Product{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var items []domain.Product
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return items, nil
}

func (s *JSONStore) ReplaceAll(ctx context.Context, items []domain.Product) error {
	_ = ctx
	if items == nil {
		items = []domain.Product{}
	}
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	// write-then-rename so a crash mid-write cannot truncate the snapshot
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, s.path)
}

// ViableImportRow skips rows that carry neither model nor quality.
func (s *JSONStore) ViableImportRow(p domain.Product) bool {
	return normalize.OneLine(p.Model) != "" || normalize.OneLine(p.Quality) != ""
}
