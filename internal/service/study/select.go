package study

import (
	"math/rand/v2"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// DefaultSessionSize is the number of cards in a session when no size is given.
const DefaultSessionSize = 10

// SelectCards picks the words for a session: mastered words are dropped, the
// rest keep their order (or are shuffled uniformly when shuffle is set) and
// at most size words are returned. A size <= 0 means DefaultSessionSize.
// rng may be nil, in which case the global source is used.
func SelectCards(words []domain.Word, size int, shuffle bool, rng *rand.Rand) []domain.Word {
	if size <= 0 {
		size = DefaultSessionSize
	}

	eligible := make([]domain.Word, 0, len(words))
	for _, w := range words {
		if w.Level != domain.LevelMastered {
			eligible = append(eligible, w)
		}
	}

	if shuffle {
		swap := func(i, j int) { eligible[i], eligible[j] = eligible[j], eligible[i] }
		if rng != nil {
			rng.Shuffle(len(eligible), swap)
		} else {
			rand.Shuffle(len(eligible), swap)
		}
	}

	if len(eligible) > size {
		eligible = eligible[:size]
	}
	return eligible
}
