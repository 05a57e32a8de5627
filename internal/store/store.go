// Package store keeps finished CV analyses in memory with TTL eviction
// and content-hash deduplication.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/mkrol/cvsift/internal/analyze"
	"github.com/mkrol/cvsift/internal/scoring"
	"github.com/mkrol/cvsift/internal/section"
)

// AnalysisResult is the complete output for one processed CV.
type AnalysisResult struct {
	DocID       string            `json:"doc_id"`
	Filename    string            `json:"filename"`
	Title       string            `json:"title"`
	ContentHash string            `json:"content_hash"`
	CreatedAt   time.Time         `json:"created_at"`
	Sections    []section.Section `json:"sections"`
	Scorecard   scoring.Scorecard `json:"scorecard"`
	Feedback    *analyze.Feedback `json:"feedback,omitempty"`
}

// Store is a thread-safe in-memory result registry with TTL eviction.
// Results are also indexed by content hash so re-uploads of the same
// file can be answered from the existing analysis.
type Store struct {
	mu      sync.Mutex
	results map[string]*AnalysisResult
	byHash  map[string]string
	ttl     time.Duration
}

func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{
		results: make(map[string]*AnalysisResult),
		byHash:  make(map[string]string),
		ttl:     ttl,
	}
}

func (s *Store) Put(res *AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[res.DocID] = res
	if res.ContentHash != "" {
		s.byHash[res.ContentHash] = res.DocID
	}
}

func (s *Store) Get(docID string) *AnalysisResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results[docID]
}

// FindByHash returns the stored result for an identical document, if any.
func (s *Store) FindByHash(contentHash string) *AnalysisResult {
	if contentHash == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	docID, ok := s.byHash[contentHash]
	if !ok {
		return nil
	}
	return s.results[docID]
}

// List returns all stored results, newest first.
func (s *Store) List() []*AnalysisResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*AnalysisResult, 0, len(s.results))
	for _, res := range s.results {
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Delete removes a result. Returns false if the doc was not present.
func (s *Store) Delete(docID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.results[docID]
	if !ok {
		return false
	}
	delete(s.results, docID)
	if res.ContentHash != "" && s.byHash[res.ContentHash] == docID {
		delete(s.byHash, res.ContentHash)
	}
	return true
}

// Cleanup removes expired results.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for docID, res := range s.results {
		if now.Sub(res.CreatedAt) > s.ttl {
			delete(s.results, docID)
			if res.ContentHash != "" && s.byHash[res.ContentHash] == docID {
				delete(s.byHash, res.ContentHash)
			}
		}
	}
}

// Len returns the number of stored results.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}
