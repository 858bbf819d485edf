package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SubmissionType is the channel a piece of content arrived through.
type SubmissionType string

const (
	TypeMessage SubmissionType = "message"
	TypeURL     SubmissionType = "url"
	TypeEmail   SubmissionType = "email"
	TypeSMS     SubmissionType = "sms"
)

// ValidSubmissionType reports whether t is one of the known submission types.
func ValidSubmissionType(t SubmissionType) bool {
	switch t {
	case TypeMessage, TypeURL, TypeEmail, TypeSMS:
		return true
	}
	return false
}

// RiskCategory is the discrete bucket a risk score falls into.
type RiskCategory string

const (
	CategorySafe       RiskCategory = "safe"
	CategorySuspicious RiskCategory = "suspicious"
	CategoryScam       RiskCategory = "scam"
)

// FeatureVector is the fixed set of indicators extracted from submission text.
// It is a struct rather than an open map so that feature names are checked at
// compile time.
type FeatureVector struct {
	Length              int  `json:"length"`
	HasURL              bool `json:"hasUrl"`
	HasPhone            bool `json:"hasPhone"`
	HasEmail            bool `json:"hasEmail"`
	HasCurrency         bool `json:"hasCurrency"`
	HasUrgency          bool `json:"hasUrgency"`
	HasThreat           bool `json:"hasThreat"`
	HasReward           bool `json:"hasReward"`
	HasAuthority        bool `json:"hasAuthority"`
	HasAction           bool `json:"hasAction"`
	HasSuspiciousDomain bool `json:"hasSuspiciousDomain"`
	KeywordMatches      int  `json:"keywordMatches"`
}

// Value serializes the vector for storage in a JSONB column.
func (f FeatureVector) Value() (driver.Value, error) {
	return json.Marshal(f)
}

// Scan deserializes the vector from a JSONB column.
func (f *FeatureVector) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	case nil:
		*f = FeatureVector{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into FeatureVector", src)
	}
}

// Submission represents one classified piece of content stored in the
// 'submissions' table. Immutable once created.
type Submission struct {
	ID                   string         `db:"id" json:"id"`
	Text                 string         `db:"text" json:"text"`
	Type                 SubmissionType `db:"type" json:"type"`
	Features             FeatureVector  `db:"features" json:"features"`
	RiskScore            int            `db:"risk_score" json:"riskScore"`
	RiskCategory         RiskCategory   `db:"risk_category" json:"riskCategory"`
	Timestamp            time.Time      `db:"timestamp" json:"timestamp"`
	SimilarSubmissionIDs []string       `db:"-" json:"similarSubmissions"`
}

func (s *Submission) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("submission has empty id")
	}
	if s.Text == "" {
		return fmt.Errorf("submission %s has empty text", s.ID)
	}
	if !ValidSubmissionType(s.Type) {
		return fmt.Errorf("submission %s has unknown type %q", s.ID, s.Type)
	}
	if s.RiskScore < 0 || s.RiskScore > 100 {
		return fmt.Errorf("submission %s has risk score %d outside [0,100]", s.ID, s.RiskScore)
	}
	return nil
}
