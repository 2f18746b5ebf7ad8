// Package store keeps processed documents in memory with TTL eviction.
// Document IDs are content-addressed, so resubmitting the same bytes lands on
// the same entry.
package store

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dgallion1/xmlgest/internal/kvtree"
)

// Document is a processed XML document and its transformed structure.
type Document struct {
	ID        string       `json:"doc_id"`
	Name      string       `json:"name"`
	Data      *kvtree.Dict `json:"data"`
	CreatedAt time.Time    `json:"created_at"`
}

// Store is a thread-safe in-memory document registry with TTL eviction.
type Store struct {
	mu   sync.Mutex
	docs map[string]*Document
	ttl  time.Duration
}

func New(ttl time.Duration) *Store {
	return &Store{
		docs: make(map[string]*Document),
		ttl:  ttl,
	}
}

func (s *Store) Put(doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
}

func (s *Store) Get(id string) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[id]
}

// Delete removes a document and reports whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return false
	}
	delete(s.docs, id)
	return true
}

// List returns all documents, newest first.
func (s *Store) List() []*Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Document, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, doc)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Cleanup removes expired documents.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, doc := range s.docs {
		if now.Sub(doc.CreatedAt) > s.ttl {
			delete(s.docs, id)
		}
	}
}

// StartCleanup evicts expired documents on a ticker until ctx is done.
func (s *Store) StartCleanup(ctx context.Context, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Cleanup()
			}
		}
	}()
}

// ContentID computes the content-addressed document ID: the first 16 hex
// characters of the SHA-256 of the raw input.
func ContentID(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])[:16]
}
