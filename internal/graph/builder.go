// Package graph turns a classified submission and its similarity matches
// into the node and edge records the graph store persists.
package graph

import (
	"fmt"

	"scamgraph/internal/models"
	"scamgraph/internal/similarity"
)

// labelLimit is the maximum node label length before truncation.
const labelLimit = 50

// BuildUpdate produces exactly one node for the submission and one edge per
// similarity match, weighted with the raw similarity coefficient. Pure given
// its inputs; it performs no storage access.
func BuildUpdate(sub *models.Submission, matches []similarity.Match) (models.Node, []models.Edge) {
	node := models.Node{
		ID:           sub.ID,
		Label:        truncateLabel(sub.Text),
		RiskScore:    sub.RiskScore,
		RiskCategory: sub.RiskCategory,
		Type:         sub.Type,
		Timestamp:    sub.Timestamp,
	}

	edges := make([]models.Edge, 0, len(matches))
	for _, match := range matches {
		if match.ID == sub.ID {
			// No self-loops, whatever the engine handed us.
			continue
		}
		edges = append(edges, models.Edge{
			ID:     fmt.Sprintf("%s-%s", sub.ID, match.ID),
			Source: sub.ID,
			Target: match.ID,
			Weight: match.Score,
			Type:   models.EdgeTypeSimilarity,
		})
	}

	return node, edges
}

func truncateLabel(text string) string {
	runes := []rune(text)
	if len(runes) <= labelLimit {
		return text
	}
	return string(runes[:labelLimit]) + "..."
}
