package difficulty

import (
	"sort"

	"github.com/aldirar/mufradat-api/internal/domain"
)

// Adaptive selection weights.
const (
	adaptiveBaseWeight    = 1.0
	adaptiveCategoryBonus = 2.0
	adaptivePhoneticBonus = 1.5
)

// SelectAdaptive picks the n words from the pool a learner most needs
// to practice. Every word starts at weight 1; words in categories the
// learner struggles with gain 2, and words whose characteristics match
// past mistakes gain 1.5. The sort is stable so ties keep the pool's
// original order.
func SelectAdaptive(pool []*domain.Word, pattern *domain.LearningPattern, n int) []*domain.Word {
	if n <= 0 || len(pool) == 0 {
		return nil
	}

	type candidate struct {
		word   *domain.Word
		weight float64
	}

	candidates := make([]candidate, 0, len(pool))
	for _, w := range pool {
		weight := adaptiveBaseWeight
		if rate, ok := pattern.SuccessRates[w.Category]; ok && rate < lowSuccessRate {
			weight += adaptiveCategoryBonus
		}
		if pattern.HasMistakeType(domain.MistakePhonetic) && HasComplexPhonetics(w) {
			weight += adaptivePhoneticBonus
		}
		candidates = append(candidates, candidate{word: w, weight: weight})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})

	if n > len(candidates) {
		n = len(candidates)
	}
	selected := make([]*domain.Word, n)
	for i := 0; i < n; i++ {
		selected[i] = candidates[i].word
	}
	return selected
}
