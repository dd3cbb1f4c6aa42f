package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/stretchr/testify/assert"
)

// fakeObjectStore records deleted keys and fails for keys listed in failOn.
type fakeObjectStore struct {
	mu      sync.Mutex
	deleted []string
	failOn  map[string]bool
}

func (f *fakeObjectStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deleted = append(f.deleted, key)
	if f.failOn[key] {
		return errors.New("object store unavailable")
	}
	return nil
}

func (f *fakeObjectStore) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

func TestRemovedReferences(t *testing.T) {
	tests := []struct {
		name    string
		old     []string
		updated []string
		want    []string
	}{
		{"replaced one", []string{"https://cdn/a.png", "https://cdn/b.png"}, []string{"https://cdn/b.png", "https://cdn/c.png"}, []string{"https://cdn/a.png"}},
		{"unchanged", []string{"https://cdn/a.png"}, []string{"https://cdn/a.png"}, nil},
		{"reordered", []string{"https://cdn/a.png", "https://cdn/b.png"}, []string{"https://cdn/b.png", "https://cdn/a.png"}, nil},
		{"cleared", []string{"https://cdn/a.png", "https://cdn/a.png"}, []string{}, []string{"https://cdn/a.png"}},
		{"nothing stored", nil, []string{"https://cdn/a.png"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemovedReferences(tt.old, tt.updated))
		})
	}
}

func TestRemovedSingle(t *testing.T) {
	logo := "https://cdn/new.png"
	same := "https://cdn/old.png"

	assert.Equal(t, []string{"https://cdn/old.png"}, removedSingle("https://cdn/old.png", &logo))
	assert.Nil(t, removedSingle("https://cdn/old.png", &same))
	assert.Nil(t, removedSingle("https://cdn/old.png", nil))
	assert.Nil(t, removedSingle("", &logo))
}

func TestPurgeDeletesByKey(t *testing.T) {
	store := &fakeObjectStore{}
	janitor := NewMediaJanitor(store)

	janitor.Purge(context.Background(), model.KindProject, []string{
		"https://bucket.example.com/a.png",
		"https://bucket.example.com/nested/b.webp",
	})

	assert.ElementsMatch(t, []string{"a.png", "b.webp"}, store.keys())
}

func TestPurgeContinuesAfterFailure(t *testing.T) {
	store := &fakeObjectStore{failOn: map[string]bool{"a.png": true}}
	janitor := NewMediaJanitor(store)

	janitor.Purge(context.Background(), model.KindAchievement, []string{
		"https://bucket.example.com/a.png",
		"https://bucket.example.com/b.png",
	})

	assert.ElementsMatch(t, []string{"a.png", "b.png"}, store.keys())
}

func TestPurgeSkipsReferencesWithoutKey(t *testing.T) {
	store := &fakeObjectStore{}
	janitor := NewMediaJanitor(store)

	janitor.Purge(context.Background(), model.KindOwner, []string{
		"https://bucket.example.com/",
		"https://bucket.example.com",
		"https://bucket.example.com/c.png",
	})

	assert.Equal(t, []string{"c.png"}, store.keys())
}
