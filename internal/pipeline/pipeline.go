// Package pipeline composes feature extraction, risk scoring, similarity
// search and graph building into one classify-and-link operation per
// submission. Each invocation is stateless and independent; the only shared
// resource is the corpus store, read through a snapshot at invocation time.
package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"scamgraph/internal/classifier"
	"scamgraph/internal/graph"
	"scamgraph/internal/models"
	"scamgraph/internal/similarity"
)

var (
	// ErrEmptyText rejects empty or whitespace-only submissions before any
	// feature extraction happens.
	ErrEmptyText = errors.New("submission text is required")
	// ErrInvalidType rejects unknown submission types.
	ErrInvalidType = errors.New("unknown submission type")
)

// CorpusReader supplies the snapshot of prior submissions the similarity
// engine compares against.
type CorpusReader interface {
	Recent(ctx context.Context, limit int) ([]similarity.CorpusEntry, error)
}

// Clock supplies submission timestamps.
type Clock interface {
	Now() time.Time
}

// IDGenerator supplies unique submission ids.
type IDGenerator interface {
	NewID() string
}

// Result is the full output of one pipeline invocation. The caller is
// responsible for persisting it: submission and node first, then edges.
// Failed edge persistence must not roll back the classified submission.
type Result struct {
	Submission *models.Submission
	Node       models.Node
	Edges      []models.Edge
}

// Pipeline classifies submissions and links them into the similarity graph.
type Pipeline struct {
	corpus        CorpusReader
	engine        *similarity.Engine
	clock         Clock
	ids           IDGenerator
	logger        *zap.Logger
	corpusLimit   int
	corpusTimeout time.Duration
}

// Option overrides a pipeline collaborator, mainly for tests.
type Option func(*Pipeline)

// WithClock replaces the wall clock.
func WithClock(clock Clock) Option {
	return func(p *Pipeline) { p.clock = clock }
}

// WithIDGenerator replaces the uuid-backed id source.
func WithIDGenerator(ids IDGenerator) Option {
	return func(p *Pipeline) { p.ids = ids }
}

// New creates a pipeline reading at most corpusLimit prior submissions per
// invocation, giving each corpus read corpusTimeout before degrading.
func New(corpus CorpusReader, engine *similarity.Engine, logger *zap.Logger, corpusLimit int, corpusTimeout time.Duration, opts ...Option) *Pipeline {
	p := &Pipeline{
		corpus:        corpus,
		engine:        engine,
		clock:         systemClock{},
		ids:           uuidGenerator{},
		logger:        logger,
		corpusLimit:   corpusLimit,
		corpusTimeout: corpusTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Classify runs the full classify-and-link operation for one submission.
// Validation failures return ErrEmptyText or ErrInvalidType. A failed or
// timed-out corpus read does not fail classification: the result is returned
// with an empty similarity set and no edges.
func (p *Pipeline) Classify(ctx context.Context, text string, subType models.SubmissionType) (*Result, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyText
	}
	if subType == "" {
		subType = models.TypeMessage
	}
	if !models.ValidSubmissionType(subType) {
		return nil, ErrInvalidType
	}

	features := classifier.ExtractFeatures(trimmed)
	score := classifier.ScoreRisk(features)
	category := classifier.Categorize(score)

	sub := &models.Submission{
		ID:           p.ids.NewID(),
		Text:         trimmed,
		Type:         subType,
		Features:     features,
		RiskScore:    score,
		RiskCategory: category,
		Timestamp:    p.clock.Now(),
	}

	matches := p.findSimilar(ctx, sub)
	sub.SimilarSubmissionIDs = make([]string, 0, len(matches))
	for _, match := range matches {
		sub.SimilarSubmissionIDs = append(sub.SimilarSubmissionIDs, match.ID)
	}

	node, edges := graph.BuildUpdate(sub, matches)

	p.logger.Info("Submission classified",
		zap.String("submission_id", sub.ID),
		zap.Int("risk_score", score),
		zap.String("risk_category", string(category)),
		zap.Int("similar_count", len(matches)))

	return &Result{Submission: sub, Node: node, Edges: edges}, nil
}

// findSimilar reads the corpus snapshot and runs the similarity engine.
// Corpus unavailability degrades to an empty match set.
func (p *Pipeline) findSimilar(ctx context.Context, sub *models.Submission) []similarity.Match {
	corpusCtx, cancel := context.WithTimeout(ctx, p.corpusTimeout)
	defer cancel()

	corpus, err := p.corpus.Recent(corpusCtx, p.corpusLimit)
	if err != nil {
		p.logger.Warn("Corpus read failed, classifying without similarity links",
			zap.String("submission_id", sub.ID), zap.Error(err))
		return nil
	}

	return p.engine.FindSimilar(sub.ID, sub.Text, corpus)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }
