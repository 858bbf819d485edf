package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"scamgraph/internal/models"
)

// GraphRepository persists the node/edge records built for each submission
// and serves the full graph for visualization clients.
type GraphRepository interface {
	SaveNode(ctx context.Context, node *models.Node) error
	// SaveEdges stores every edge it can; it returns the first error seen
	// but keeps going, since a missing edge must not lose the others.
	SaveEdges(ctx context.Context, edges []models.Edge) error
	Graph(ctx context.Context) ([]*models.Node, []*models.Edge, error)
}

type graphRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewGraphRepository(db *sqlx.DB, logger *zap.Logger) GraphRepository {
	return &graphRepository{db: db, logger: logger}
}

func (r *graphRepository) SaveNode(ctx context.Context, node *models.Node) error {
	query := `INSERT INTO nodes (id, label, risk_score, risk_category, type, timestamp)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, node.ID, node.Label, node.RiskScore,
		node.RiskCategory, node.Type, node.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to save node %s: %w", node.ID, err)
	}
	return nil
}

func (r *graphRepository) SaveEdges(ctx context.Context, edges []models.Edge) error {
	query := `INSERT INTO edges (id, source, target, weight, type)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (id) DO NOTHING`

	var firstErr error
	for _, edge := range edges {
		_, err := r.db.ExecContext(ctx, query, edge.ID, edge.Source, edge.Target, edge.Weight, edge.Type)
		if err != nil {
			r.logger.Error("Failed to save edge", zap.String("edge_id", edge.ID), zap.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to save edge %s: %w", edge.ID, err)
			}
		}
	}
	return firstErr
}

func (r *graphRepository) Graph(ctx context.Context) ([]*models.Node, []*models.Edge, error) {
	var nodes []*models.Node
	err := r.db.SelectContext(ctx, &nodes, `SELECT id, label, risk_score, risk_category, type, timestamp FROM nodes`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load nodes: %w", err)
	}

	var edges []*models.Edge
	err = r.db.SelectContext(ctx, &edges, `SELECT id, source, target, weight, type FROM edges`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load edges: %w", err)
	}

	return nodes, edges, nil
}
