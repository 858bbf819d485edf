package classifier

import "scamgraph/internal/models"

// Feature weights for the additive risk model. Hand-tuned constants, not
// learned; every contribution is non-negative, so adding a feature can never
// lower a score.
const (
	weightURL              = 15
	weightPhone            = 10
	weightEmail            = 10
	weightCurrency         = 15
	weightUrgency          = 20
	weightThreat           = 25
	weightReward           = 15
	weightAuthority        = 20
	weightAction           = 15
	weightSuspiciousDomain = 40
	weightPerKeyword       = 5

	longTextBonus     = 5  // over 100 chars
	veryLongTextBonus = 10 // over 200 chars
)

// Category thresholds, shared by every call site. Boundary values take the
// higher category.
const (
	ScamThreshold       = 70
	SuspiciousThreshold = 40
)

// ScoreRisk maps a feature vector to a risk score in [0,100]. The model is a
// sum of independent contributions with a final clamp; order of evaluation
// does not matter.
func ScoreRisk(f models.FeatureVector) int {
	score := 0

	if f.Length > 200 {
		score += veryLongTextBonus
	} else if f.Length > 100 {
		score += longTextBonus
	}

	if f.HasURL {
		score += weightURL
	}
	if f.HasPhone {
		score += weightPhone
	}
	if f.HasEmail {
		score += weightEmail
	}
	if f.HasCurrency {
		score += weightCurrency
	}
	if f.HasUrgency {
		score += weightUrgency
	}
	if f.HasThreat {
		score += weightThreat
	}
	if f.HasReward {
		score += weightReward
	}
	if f.HasAuthority {
		score += weightAuthority
	}
	if f.HasAction {
		score += weightAction
	}
	if f.HasSuspiciousDomain {
		score += weightSuspiciousDomain
	}

	score += f.KeywordMatches * weightPerKeyword

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// Categorize maps a risk score to its discrete category.
func Categorize(score int) models.RiskCategory {
	if score >= ScamThreshold {
		return models.CategoryScam
	}
	if score >= SuspiciousThreshold {
		return models.CategorySuspicious
	}
	return models.CategorySafe
}
