package models

import "time"

// EdgeTypeSimilarity is the only edge type the engine emits today.
const EdgeTypeSimilarity = "similarity"

// Node represents a submission in the similarity graph, stored in the
// 'nodes' table. There is exactly one node per submission, sharing its id.
type Node struct {
	ID           string         `db:"id" json:"id"`
	Label        string         `db:"label" json:"label"`
	RiskScore    int            `db:"risk_score" json:"riskScore"`
	RiskCategory RiskCategory   `db:"risk_category" json:"riskCategory"`
	Type         SubmissionType `db:"type" json:"type"`
	Timestamp    time.Time      `db:"timestamp" json:"timestamp"`
}

// Edge links a new submission to an earlier similar one, stored in the
// 'edges' table. Directed in storage (source is always the newer
// submission) but the relation it records is symmetric.
type Edge struct {
	ID     string  `db:"id" json:"id"`
	Source string  `db:"source" json:"source"`
	Target string  `db:"target" json:"target"`
	Weight float64 `db:"weight" json:"weight"`
	Type   string  `db:"type" json:"type"`
}
