package classifier

import (
	"testing"

	"scamgraph/internal/models"
)

func TestExtractFeatures_Detectors(t *testing.T) {
	tests := []struct {
		name string
		text string
		get  func(models.FeatureVector) bool
		want bool
	}{
		{"url present", "check this out http://example.com/page", func(f models.FeatureVector) bool { return f.HasURL }, true},
		{"url https", "see https://example.com", func(f models.FeatureVector) bool { return f.HasURL }, true},
		{"url absent", "no links in here", func(f models.FeatureVector) bool { return f.HasURL }, false},
		{"bare domain is not a url", "go to example.com", func(f models.FeatureVector) bool { return f.HasURL }, false},

		{"phone with dashes", "call 555-123-4567 today", func(f models.FeatureVector) bool { return f.HasPhone }, true},
		{"phone with dots", "call 555.123.4567", func(f models.FeatureVector) bool { return f.HasPhone }, true},
		{"phone plain digits", "call 5551234567", func(f models.FeatureVector) bool { return f.HasPhone }, true},
		{"short number is not a phone", "extension 12345", func(f models.FeatureVector) bool { return f.HasPhone }, false},

		{"email present", "write to support@example.com please", func(f models.FeatureVector) bool { return f.HasEmail }, true},
		{"email absent", "no address here", func(f models.FeatureVector) bool { return f.HasEmail }, false},

		{"dollar amount", "you owe $1,234.56 immediately", func(f models.FeatureVector) bool { return f.HasCurrency }, true},
		{"dollar amount no cents", "send $500", func(f models.FeatureVector) bool { return f.HasCurrency }, true},
		{"currency word without sign", "send 500 dollars", func(f models.FeatureVector) bool { return f.HasCurrency }, false},

		{"urgency word", "act NOW before it is too late", func(f models.FeatureVector) bool { return f.HasUrgency }, true},
		{"urgency expires", "this expires tomorrow", func(f models.FeatureVector) bool { return f.HasUrgency }, true},
		{"urgency absent", "see you whenever", func(f models.FeatureVector) bool { return f.HasUrgency }, false},

		{"threat word", "your account will be suspended", func(f models.FeatureVector) bool { return f.HasThreat }, true},
		{"threat arrest", "there is a warrant out", func(f models.FeatureVector) bool { return f.HasThreat }, true},
		{"threat absent", "have a nice day", func(f models.FeatureVector) bool { return f.HasThreat }, false},

		{"reward word", "claim your free gift", func(f models.FeatureVector) bool { return f.HasReward }, true},
		{"reward absent", "the meeting is at noon", func(f models.FeatureVector) bool { return f.HasReward }, false},

		{"authority word", "the IRS has contacted you", func(f models.FeatureVector) bool { return f.HasAuthority }, true},
		{"authority brand", "your PayPal profile", func(f models.FeatureVector) bool { return f.HasAuthority }, true},
		{"authority absent", "your neighbor called", func(f models.FeatureVector) bool { return f.HasAuthority }, false},

		{"action word", "please verify your identity", func(f models.FeatureVector) bool { return f.HasAction }, true},
		{"action absent", "thanks for the flowers", func(f models.FeatureVector) bool { return f.HasAction }, false},

		{"partial word does not match", "he was reclaiming furniture", func(f models.FeatureVector) bool { return f.HasReward }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.get(ExtractFeatures(tt.text))
			if got != tt.want {
				t.Errorf("ExtractFeatures(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractFeatures_SuspiciousDomain(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"listed domain", "login at http://paypal-secure-login.com/verify", true},
		{"listed domain as host suffix", "https://www.amazon-verify-account.net", true},
		{"hyphens stripped variant", "go to http://paypalsecurelogin.com now", true},
		{"clean domain", "read https://example.com/news", false},
		{"listed domain but no url", "I heard about paypal-secure-login.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ExtractFeatures(tt.text)
			if f.HasSuspiciousDomain != tt.want {
				t.Errorf("HasSuspiciousDomain(%q) = %v, want %v", tt.text, f.HasSuspiciousDomain, tt.want)
			}
		})
	}
}

func TestExtractFeatures_KeywordMatches(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"no keywords", "see you at the park", 0},
		{"single keyword", "this is urgent business", 1},
		{"two keywords", "urgent: click here", 2},
		{"case insensitive", "URGENT: CLICK HERE", 2},
		{"phrase keyword", "your account suspended notice", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ExtractFeatures(tt.text)
			if f.KeywordMatches != tt.want {
				t.Errorf("KeywordMatches(%q) = %d, want %d", tt.text, f.KeywordMatches, tt.want)
			}
		})
	}
}

func TestExtractFeatures_Length(t *testing.T) {
	if got := ExtractFeatures("hello").Length; got != 5 {
		t.Errorf("Length = %d, want 5", got)
	}
	// Rune count, not byte count.
	if got := ExtractFeatures("héllo").Length; got != 5 {
		t.Errorf("Length = %d, want 5", got)
	}
	if got := ExtractFeatures("").Length; got != 0 {
		t.Errorf("Length = %d, want 0", got)
	}
}

func TestExtractFeatures_EmptyText(t *testing.T) {
	f := ExtractFeatures("")
	if f != (models.FeatureVector{}) {
		t.Errorf("ExtractFeatures(\"\") = %+v, want zero vector", f)
	}
}

func TestExtractFeatures_Deterministic(t *testing.T) {
	text := "URGENT: verify your account now http://paypal-secure-login.com"
	first := ExtractFeatures(text)
	second := ExtractFeatures(text)
	if first != second {
		t.Errorf("ExtractFeatures is not deterministic: %+v vs %+v", first, second)
	}
}
