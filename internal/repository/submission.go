package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"scamgraph/internal/models"
	"scamgraph/internal/similarity"
)

// SubmissionRepository persists classified submissions and serves the corpus
// snapshots the similarity engine reads.
type SubmissionRepository interface {
	Save(ctx context.Context, sub *models.Submission) error
	// Recent returns id+text of the most recently stored submissions,
	// newest first, for similarity comparison.
	Recent(ctx context.Context, limit int) ([]similarity.CorpusEntry, error)
	List(ctx context.Context, limit int) ([]*models.Submission, error)
}

type submissionRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSubmissionRepository(db *sqlx.DB, logger *zap.Logger) SubmissionRepository {
	return &submissionRepository{db: db, logger: logger}
}

func (r *submissionRepository) Save(ctx context.Context, sub *models.Submission) error {
	query := `INSERT INTO submissions (id, text, type, features, risk_score, risk_category, timestamp, similar_submission_ids)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, sub.ID, sub.Text, sub.Type, sub.Features,
		sub.RiskScore, sub.RiskCategory, sub.Timestamp, pq.Array(sub.SimilarSubmissionIDs))
	if err != nil {
		return fmt.Errorf("failed to save submission %s: %w", sub.ID, err)
	}
	return nil
}

func (r *submissionRepository) Recent(ctx context.Context, limit int) ([]similarity.CorpusEntry, error) {
	query := `SELECT id, text FROM submissions ORDER BY timestamp DESC LIMIT $1`
	rows, err := r.db.QueryxContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	defer rows.Close()

	var corpus []similarity.CorpusEntry
	for rows.Next() {
		var entry similarity.CorpusEntry
		if err := rows.Scan(&entry.ID, &entry.Text); err != nil {
			return nil, fmt.Errorf("failed to scan corpus entry: %w", err)
		}
		corpus = append(corpus, entry)
	}
	return corpus, rows.Err()
}

func (r *submissionRepository) List(ctx context.Context, limit int) ([]*models.Submission, error) {
	query := `SELECT id, text, type, features, risk_score, risk_category, timestamp, similar_submission_ids
	          FROM submissions ORDER BY timestamp DESC LIMIT $1`
	rows, err := r.db.QueryxContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*models.Submission
	for rows.Next() {
		sub := &models.Submission{}
		var similarIDs pq.StringArray
		err := rows.Scan(&sub.ID, &sub.Text, &sub.Type, &sub.Features,
			&sub.RiskScore, &sub.RiskCategory, &sub.Timestamp, &similarIDs)
		if err != nil {
			r.logger.Error("Failed to scan submission row", zap.Error(err))
			continue
		}
		sub.SimilarSubmissionIDs = similarIDs
		submissions = append(submissions, sub)
	}
	return submissions, rows.Err()
}
