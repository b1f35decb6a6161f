package match

import (
	"slices"
)

// MinSimilarity is the lowest normalized similarity still worth suggesting.
const MinSimilarity = 0.5

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates closest to name, best first.
//
// Candidates are compared after Normalize. Ties keep candidate order and
// duplicates are reported once. A normalized exact match is always
// suggested; anything below MinSimilarity never is.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	norm := Normalize(name)
	seen := make(map[string]struct{}, len(candidates))

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if _, dup := seen[c]; dup {
			continue
		}

		seen[c] = struct{}{}

		score := Similarity(norm, Normalize(c))
		if score < MinSimilarity {
			continue
		}

		ranked = append(ranked, scored{name: c, score: score})
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for _, r := range ranked[:min(limit, len(ranked))] {
		out = append(out, r.name)
	}

	return out
}
