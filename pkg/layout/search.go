package layout

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/salesmock/crmkit/pkg/model"
)

// FindField returns the field whose label best matches the query, used by
// the interactive layer's jump-to-field action. Exact and substring matches
// win outright; otherwise labels are ranked by normalised edit distance and
// a match is only reported below the 0.5 similarity cutoff.
func (l *Layout) FindField(query string) (model.Field, bool) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return model.Field{}, false
	}

	best := model.Field{}
	bestScore := 1.0
	for _, section := range l.object.Sections {
		for _, field := range section.Fields {
			label := strings.ToLower(field.Label)
			if label == needle || strings.Contains(label, needle) {
				return field.Clone(), true
			}
			score := normalisedDistance(label, needle)
			if score < bestScore {
				bestScore = score
				best = field
			}
		}
	}
	if bestScore < 0.5 {
		return best.Clone(), true
	}
	return model.Field{}, false
}

func normalisedDistance(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}
