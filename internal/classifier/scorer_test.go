package classifier

import (
	"testing"

	"scamgraph/internal/models"
)

func TestScoreRisk_Weights(t *testing.T) {
	tests := []struct {
		name     string
		features models.FeatureVector
		want     int
	}{
		{"zero vector", models.FeatureVector{}, 0},
		{"url only", models.FeatureVector{HasURL: true}, 15},
		{"phone only", models.FeatureVector{HasPhone: true}, 10},
		{"email only", models.FeatureVector{HasEmail: true}, 10},
		{"currency only", models.FeatureVector{HasCurrency: true}, 15},
		{"urgency only", models.FeatureVector{HasUrgency: true}, 20},
		{"threat only", models.FeatureVector{HasThreat: true}, 25},
		{"reward only", models.FeatureVector{HasReward: true}, 15},
		{"authority only", models.FeatureVector{HasAuthority: true}, 20},
		{"action only", models.FeatureVector{HasAction: true}, 15},
		{"suspicious domain only", models.FeatureVector{HasSuspiciousDomain: true}, 40},
		{"keywords multiply", models.FeatureVector{KeywordMatches: 3}, 15},
		{"long text bonus", models.FeatureVector{Length: 150}, 5},
		{"very long text bonus", models.FeatureVector{Length: 250}, 10},
		{"length boundary 100", models.FeatureVector{Length: 100}, 0},
		{"length boundary 200", models.FeatureVector{Length: 200}, 5},
		{"sums independently", models.FeatureVector{HasURL: true, HasUrgency: true, KeywordMatches: 2}, 45},
		{"clamped at 100", models.FeatureVector{
			Length: 250, HasURL: true, HasPhone: true, HasEmail: true, HasCurrency: true,
			HasUrgency: true, HasThreat: true, HasReward: true, HasAuthority: true,
			HasAction: true, HasSuspiciousDomain: true, KeywordMatches: 10,
		}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreRisk(tt.features); got != tt.want {
				t.Errorf("ScoreRisk(%+v) = %d, want %d", tt.features, got, tt.want)
			}
		})
	}
}

func TestScoreRisk_Bounds(t *testing.T) {
	texts := []string{
		"",
		"hi",
		"URGENT: verify your account now http://paypal-secure-login.com",
		"Hey, are we still on for lunch tomorrow?",
		"free gift free gift free gift free gift free gift free gift free gift free gift",
	}
	for _, text := range texts {
		score := ScoreRisk(ExtractFeatures(text))
		if score < 0 || score > 100 {
			t.Errorf("ScoreRisk(ExtractFeatures(%q)) = %d, outside [0,100]", text, score)
		}
	}
}

// Every boolean contribution is non-negative, so turning a feature on must
// never lower the score.
func TestScoreRisk_Monotonic(t *testing.T) {
	base := models.FeatureVector{HasURL: true, KeywordMatches: 2, Length: 120}
	baseScore := ScoreRisk(base)

	toggles := map[string]func(*models.FeatureVector){
		"phone":             func(f *models.FeatureVector) { f.HasPhone = true },
		"email":             func(f *models.FeatureVector) { f.HasEmail = true },
		"currency":          func(f *models.FeatureVector) { f.HasCurrency = true },
		"urgency":           func(f *models.FeatureVector) { f.HasUrgency = true },
		"threat":            func(f *models.FeatureVector) { f.HasThreat = true },
		"reward":            func(f *models.FeatureVector) { f.HasReward = true },
		"authority":         func(f *models.FeatureVector) { f.HasAuthority = true },
		"action":            func(f *models.FeatureVector) { f.HasAction = true },
		"suspicious domain": func(f *models.FeatureVector) { f.HasSuspiciousDomain = true },
		"extra keyword":     func(f *models.FeatureVector) { f.KeywordMatches++ },
	}

	for name, toggle := range toggles {
		f := base
		toggle(&f)
		if got := ScoreRisk(f); got < baseScore {
			t.Errorf("enabling %s lowered score from %d to %d", name, baseScore, got)
		}
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		score int
		want  models.RiskCategory
	}{
		{0, models.CategorySafe},
		{39, models.CategorySafe},
		{40, models.CategorySuspicious}, // boundary takes the higher category
		{69, models.CategorySuspicious},
		{70, models.CategoryScam}, // boundary takes the higher category
		{100, models.CategoryScam},
	}

	for _, tt := range tests {
		if got := Categorize(tt.score); got != tt.want {
			t.Errorf("Categorize(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestClassifyScenarios(t *testing.T) {
	scam := "URGENT: verify your account now http://paypal-secure-login.com"
	f := ExtractFeatures(scam)
	if !f.HasURL || !f.HasUrgency || !f.HasAction || !f.HasSuspiciousDomain {
		t.Fatalf("scam scenario features = %+v, expected url/urgency/action/suspicious-domain all set", f)
	}
	score := ScoreRisk(f)
	if score < 70 {
		t.Errorf("scam scenario score = %d, want >= 70", score)
	}
	if got := Categorize(score); got != models.CategoryScam {
		t.Errorf("scam scenario category = %s, want scam", got)
	}

	benign := "Hey, are we still on for lunch tomorrow?"
	bf := ExtractFeatures(benign)
	bscore := ScoreRisk(bf)
	if bscore >= 40 {
		t.Errorf("benign scenario score = %d, want < 40", bscore)
	}
	if got := Categorize(bscore); got != models.CategorySafe {
		t.Errorf("benign scenario category = %s, want safe", got)
	}
}
