package assets

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"sort"
	"sync"

	"github.com/zeusync/assetkit/internal/core/models"
	"github.com/zeusync/assetkit/internal/core/observability/log"
	"github.com/zeusync/assetkit/pkg/concurrent"
)

// Problem describes an entry whose source file cannot be used.
type Problem struct {
	Kind models.Kind
	UUID models.UUID
	Name string
	Path string
	Err  error
}

// Verify stats the source path of every entry with at most workers checks in
// flight and returns the entries whose file is missing or unreadable, ordered
// by kind then identifier. The registry is not modified.
func (m *Manager) Verify(ctx context.Context, workers int) ([]Problem, error) {
	var all []Entry
	for _, kind := range models.Kinds {
		all = append(all, m.catalog.Sorted(kind)...)
	}

	var (
		mu       sync.Mutex
		problems []Problem
	)
	err := concurrent.ForEach(ctx, all, workers, func(ctx context.Context, e Entry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		info, err := os.Stat(e.Path)
		if err == nil && info.IsDir() {
			err = errors.New("source path is a directory")
		}
		if err == nil {
			return nil
		}
		mu.Lock()
		problems = append(problems, Problem{Kind: e.Kind, UUID: e.UUID, Name: e.Name, Path: e.Path, Err: err})
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(problems, func(i, j int) bool {
		if problems[i].Kind != problems[j].Kind {
			return problems[i].Kind < problems[j].Kind
		}
		return problems[i].UUID < problems[j].UUID
	})
	for _, p := range problems {
		level := log.LevelWarn
		if errors.Is(p.Err, fs.ErrNotExist) {
			level = log.LevelError
		}
		m.log.Log(level, "asset source unavailable",
			log.Stringer("kind", p.Kind),
			log.Uint64("uuid", p.UUID.Uint64()),
			log.String("path", p.Path),
			log.Error(p.Err),
		)
	}
	return problems, nil
}
