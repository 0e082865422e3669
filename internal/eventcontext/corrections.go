package eventcontext

import (
	"sort"
	"strings"

	"github.com/framesight/framesight/internal/repositories/feedback"
)

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "was": {}, "are": {}, "were": {},
	"it": {}, "its": {}, "this": {}, "that": {}, "there": {}, "not": {},
	"no": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"of": {}, "to": {}, "for": {}, "with": {}, "should": {}, "have": {},
	"has": {}, "be": {}, "been": {}, "i": {}, "you": {}, "my": {},
}

// ExtractCommonPatterns tokenizes correction text from unhelpful feedback and
// returns the most frequent non-stop-word terms, most frequent first. Every
// occurrence counts, so a single correction can establish a pattern.
func ExtractCommonPatterns(entries []feedback.Entry, limit int) []string {
	counts := make(map[string]int)
	for _, e := range entries {
		if e.Rating == feedback.RatingHelpful || e.Correction == "" {
			continue
		}
		for _, tok := range strings.Fields(strings.ToLower(e.Correction)) {
			tok = strings.Trim(tok, ".,!?;:\"'()")
			if len(tok) < 3 {
				continue
			}
			if _, stop := stopWords[tok]; stop {
				continue
			}
			counts[tok]++
		}
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if limit > 0 && len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}
