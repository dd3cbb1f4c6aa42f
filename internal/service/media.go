package service

import (
	"context"
	"slices"

	"github.com/deppfellow/portfolio-backend/internal/lib/storage"
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// mediaDeleteConcurrency bounds the parallel object deletes of one update.
const mediaDeleteConcurrency = 4

// ObjectRemover deletes stored objects by key.
type ObjectRemover interface {
	Delete(ctx context.Context, key string) error
}

// MediaJanitor removes stored objects that an update stops referencing.
type MediaJanitor struct {
	store ObjectRemover
}

func NewMediaJanitor(store ObjectRemover) *MediaJanitor {
	return &MediaJanitor{store: store}
}

// RemovedReferences returns the references of old missing from updated,
// in their original order. Duplicates are reported once.
func RemovedReferences(old, updated []string) []string {
	var removed []string
	for _, ref := range old {
		if ref == "" || slices.Contains(updated, ref) || slices.Contains(removed, ref) {
			continue
		}
		removed = append(removed, ref)
	}
	return removed
}

// removedSingle is RemovedReferences for a single-value field. A nil
// replacement means the field is not part of the update.
func removedSingle(old string, replacement *string) []string {
	if replacement == nil || old == "" || old == *replacement {
		return nil
	}
	return []string{old}
}

// removedList is RemovedReferences for a list field that may be absent
// from the update.
func removedList(old, replacement []string) []string {
	if replacement == nil {
		return nil
	}
	return RemovedReferences(old, replacement)
}

// Purge deletes every reference and waits for all deletes to finish.
// A failed delete is logged and does not stop the others or the caller's write.
func (m *MediaJanitor) Purge(ctx context.Context, kind model.MediaKind, refs []string) {
	if len(refs) == 0 {
		return
	}

	logger := zerolog.Ctx(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(mediaDeleteConcurrency)

	for _, ref := range refs {
		key := storage.KeyFromURL(ref)
		if key == "" {
			continue
		}

		g.Go(func() error {
			if err := m.store.Delete(gctx, key); err != nil {
				logger.Warn().
					Err(err).
					Str("resource", string(kind)).
					Str("key", key).
					Msg("failed to delete replaced media object")
				return nil
			}

			logger.Debug().
				Str("resource", string(kind)).
				Str("key", key).
				Msg("deleted replaced media object")
			return nil
		})
	}

	_ = g.Wait()
}
