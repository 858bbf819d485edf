package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"scamgraph/internal/models"
	"scamgraph/internal/similarity"
)

// MemoryStore is a session-scoped in-memory implementation of both
// SubmissionRepository and GraphRepository, used when no database URL is
// configured (demo mode) and by tests. Safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	submissions []*models.Submission
	nodes       []*models.Node
	edges       []*models.Edge
}

var (
	_ SubmissionRepository = (*MemoryStore)(nil)
	_ GraphRepository      = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewDemoStore returns a MemoryStore seeded with a sample scam submission so
// a fresh demo instance has something to show.
func NewDemoStore(logger *zap.Logger) *MemoryStore {
	store := NewMemoryStore()
	logger.Info("No database configured - running in demo mode, data is stored in memory only")

	sample := &models.Submission{
		ID:           "demo-1",
		Text:         "URGENT: Your PayPal account has been suspended. Click here to verify: https://paypal-secure-login.com",
		Type:         models.TypeEmail,
		RiskScore:    95,
		RiskCategory: models.CategoryScam,
		Timestamp:    time.Now(),
	}
	_ = store.Save(context.Background(), sample)
	_ = store.SaveNode(context.Background(), &models.Node{
		ID:           sample.ID,
		Label:        "URGENT: Your PayPal account has been suspended...",
		RiskScore:    sample.RiskScore,
		RiskCategory: sample.RiskCategory,
		Type:         sample.Type,
		Timestamp:    sample.Timestamp,
	})
	return store
}

func (s *MemoryStore) Save(_ context.Context, sub *models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *sub
	s.submissions = append(s.submissions, &copied)
	return nil
}

func (s *MemoryStore) Recent(_ context.Context, limit int) ([]similarity.CorpusEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ordered := s.sortedByTimestampLocked()
	if limit > 0 && len(ordered) > limit {
		ordered = ordered[:limit]
	}

	corpus := make([]similarity.CorpusEntry, 0, len(ordered))
	for _, sub := range ordered {
		corpus = append(corpus, similarity.CorpusEntry{ID: sub.ID, Text: sub.Text})
	}
	return corpus, nil
}

func (s *MemoryStore) List(_ context.Context, limit int) ([]*models.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ordered := s.sortedByTimestampLocked()
	if limit > 0 && len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered, nil
}

func (s *MemoryStore) SaveNode(_ context.Context, node *models.Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.nodes {
		if existing.ID == node.ID {
			return nil
		}
	}
	copied := *node
	s.nodes = append(s.nodes, &copied)
	return nil
}

func (s *MemoryStore) SaveEdges(_ context.Context, edges []models.Edge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, edge := range edges {
		if s.hasEdgeLocked(edge.ID) {
			continue
		}
		copied := edge
		s.edges = append(s.edges, &copied)
	}
	return nil
}

func (s *MemoryStore) Graph(_ context.Context) ([]*models.Node, []*models.Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make([]*models.Node, len(s.nodes))
	copy(nodes, s.nodes)
	edges := make([]*models.Edge, len(s.edges))
	copy(edges, s.edges)
	return nodes, edges, nil
}

func (s *MemoryStore) hasEdgeLocked(id string) bool {
	for _, edge := range s.edges {
		if edge.ID == id {
			return true
		}
	}
	return false
}

func (s *MemoryStore) sortedByTimestampLocked() []*models.Submission {
	ordered := make([]*models.Submission, len(s.submissions))
	copy(ordered, s.submissions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.After(ordered[j].Timestamp)
	})
	return ordered
}
