package classifier

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"scamgraph/internal/models"
)

// Detection patterns, compiled once at startup. Each detector is independent
// of the others.
var (
	urlPattern      = regexp.MustCompile(`https?://[^\s]+`)
	phonePattern    = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	currencyPattern = regexp.MustCompile(`\$[\d,]+(\.\d{2})?`)
	hostPattern     = regexp.MustCompile(`https?://([^/\s]+)`)

	urgencyPattern   = regexp.MustCompile(`(?i)\b(urgent|immediate|now|asap|quick|fast|hurry|limited|expires?|deadline)\b`)
	threatPattern    = regexp.MustCompile(`(?i)\b(suspended|blocked|locked|terminated|deleted|removed|banned|penalty|fine|jail|arrest|warrant)\b`)
	rewardPattern    = regexp.MustCompile(`(?i)\b(free|gift|prize|won|winner|congratulations|claim|reward|bonus|discount|offer|deal)\b`)
	authorityPattern = regexp.MustCompile(`(?i)\b(government|irs|fbi|police|court|legal|official|security|bank|paypal|amazon|apple|microsoft)\b`)
	actionPattern    = regexp.MustCompile(`(?i)\b(click|verify|confirm|update|login|password|account|secure|protect|defend|guard|shield)\b`)
)

// ExtractFeatures derives the feature vector for a piece of submission text.
// It is a pure function: same text in, same vector out, no external state.
// It never fails, including on empty input (empty text is rejected by the
// pipeline before extraction).
func ExtractFeatures(text string) models.FeatureVector {
	f := models.FeatureVector{
		Length:       utf8.RuneCountInString(text),
		HasURL:       urlPattern.MatchString(text),
		HasPhone:     phonePattern.MatchString(text),
		HasEmail:     emailPattern.MatchString(text),
		HasCurrency:  currencyPattern.MatchString(text),
		HasUrgency:   urgencyPattern.MatchString(text),
		HasThreat:    threatPattern.MatchString(text),
		HasReward:    rewardPattern.MatchString(text),
		HasAuthority: authorityPattern.MatchString(text),
		HasAction:    actionPattern.MatchString(text),
	}

	if f.HasURL {
		f.HasSuspiciousDomain = matchesPhishingDomain(text)
	}

	lower := strings.ToLower(text)
	for _, keyword := range spamKeywords {
		if strings.Contains(lower, keyword) {
			f.KeywordMatches++
		}
	}

	return f
}

// matchesPhishingDomain extracts the host of the first URL in text and tests
// it against the phishing-domain list, both verbatim and with the entry's
// hyphens stripped.
func matchesPhishingDomain(text string) bool {
	m := hostPattern.FindStringSubmatch(text)
	if m == nil {
		return false
	}
	host := strings.ToLower(m[1])
	for _, domain := range phishingDomains {
		if strings.Contains(host, domain) || strings.Contains(host, strings.ReplaceAll(domain, "-", "")) {
			return true
		}
	}
	return false
}
