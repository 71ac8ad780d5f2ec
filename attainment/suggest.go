package attainment

import (
	"sort"
	"strings"
	"unicode"
)

// Similarity thresholds for suggested mapping strengths. Below the minimum,
// no suggestion is produced.
const (
	minSimilarity    = 0.10
	mediumSimilarity = 0.25
	highSimilarity   = 0.45
)

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "have": {}, "in": {},
	"is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "or": {}, "that": {},
	"the": {}, "to": {}, "was": {}, "were": {}, "will": {}, "with": {},
	"able": {}, "ability": {}, "apply": {}, "student": {}, "students": {},
	"understand": {}, "using": {}, "use": {},
}

// Recommendation is a best-effort CO to PO mapping suggestion
type Recommendation struct {
	COID              uint    `json:"co_id"`
	POID              uint    `json:"po_id"`
	Similarity        float64 `json:"similarity"`
	SuggestedStrength int     `json:"suggested_strength"`
}

// tokenize lowercases the text, splits on non-alphanumeric runes and drops
// stop words
func tokenize(text string) map[string]struct{} {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := map[string]struct{}{}
	for _, w := range words {
		if _, stop := stopWords[w]; stop {
			continue
		}
		tokens[w] = struct{}{}
	}
	return tokens
}

// jaccard is |a ∩ b| / |a ∪ b|, 0 when both sets are empty
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return SafeDivide(float64(intersection), float64(union), 0)
}

// strengthFor maps a similarity score to a suggested mapping strength,
// 0 meaning no suggestion
func strengthFor(score float64) int {
	switch {
	case score < minSimilarity:
		return 0
	case score < mediumSimilarity:
		return 1
	case score < highSimilarity:
		return 2
	default:
		return 3
	}
}

// SuggestMappings proposes CO to PO mappings for a department from keyword
// similarity between outcome descriptions. Pairs that already have a mapping
// are skipped. Best-effort only; suggestions are reviewed by staff before
// a mapping is created.
func (c *Calculator) SuggestMappings(departmentID uint) ([]Recommendation, error) {
	pos, err := c.store.GetProgramOutcomes(departmentID)
	if err != nil {
		return nil, err
	}

	subjects, err := c.store.GetDepartmentSubjects(departmentID)
	if err != nil {
		return nil, err
	}

	poTokens := make(map[uint]map[string]struct{}, len(pos))
	for _, po := range pos {
		poTokens[po.ID] = tokenize(po.Description)
	}

	recommendations := []Recommendation{}
	for _, subject := range subjects {
		cos, err := c.store.GetCourseOutcomes(subject.ID)
		if err != nil {
			return nil, err
		}
		for _, co := range cos {
			existing, err := c.store.GetCOPOMappings(&co.ID, nil)
			if err != nil {
				return nil, err
			}
			mapped := make(map[uint]struct{}, len(existing))
			for _, m := range existing {
				mapped[m.POID] = struct{}{}
			}

			coTokens := tokenize(co.Description)
			for _, po := range pos {
				if _, ok := mapped[po.ID]; ok {
					continue
				}
				score := jaccard(coTokens, poTokens[po.ID])
				strength := strengthFor(score)
				if strength == 0 {
					continue
				}
				recommendations = append(recommendations, Recommendation{
					COID:              co.ID,
					POID:              po.ID,
					Similarity:        Round2(score),
					SuggestedStrength: strength,
				})
			}
		}
	}

	sort.Slice(recommendations, func(i, j int) bool {
		return recommendations[i].Similarity > recommendations[j].Similarity
	})
	return recommendations, nil
}
