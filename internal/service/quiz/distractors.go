package quiz

import (
	"math/rand"
	"sync"

	"github.com/nmoskvina/lexiday/internal/domain"
)

// lockedRand serializes access to a rand.Rand so one seeded source can
// serve concurrent question requests.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func newLockedRand(rnd *rand.Rand) *lockedRand {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}
	return &lockedRand{rnd: rnd}
}

func (l *lockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rnd.Shuffle(n, swap)
}

// distractorStrategy proposes wrong-answer headwords for a recognition
// exercise, in random order. Candidates sharing the target's ID are
// skipped. Strategies return every match they have: quota enforcement
// and word-level dedup are deliberately centralized in the composite,
// so a tier with enough distinct candidates is never bypassed because
// a per-tier sample happened to draw duplicates.
type distractorStrategy interface {
	propose(rnd *lockedRand, target domain.Flashcard, pool []domain.Flashcard) []string
}

// similarityStrategy keeps candidates whose headword is within
// maxDistance edits of the target's headword (exclusive bound).
type similarityStrategy struct {
	maxDistance int
}

func (s similarityStrategy) propose(rnd *lockedRand, target domain.Flashcard, pool []domain.Flashcard) []string {
	var words []string
	for _, c := range pool {
		if c.ID == target.ID {
			continue
		}
		if Distance(c.Word, target.Word) < s.maxDistance {
			words = append(words, c.Word)
		}
	}
	return shuffled(rnd, words)
}

// categoryStrategy keeps candidates sharing the target's part of speech.
type categoryStrategy struct{}

func (categoryStrategy) propose(rnd *lockedRand, target domain.Flashcard, pool []domain.Flashcard) []string {
	var words []string
	for _, c := range pool {
		if c.ID == target.ID {
			continue
		}
		if c.PartOfSpeech == target.PartOfSpeech {
			words = append(words, c.Word)
		}
	}
	return shuffled(rnd, words)
}

// fallbackStrategy draws from the whole pool.
type fallbackStrategy struct{}

func (fallbackStrategy) propose(rnd *lockedRand, target domain.Flashcard, pool []domain.Flashcard) []string {
	var words []string
	for _, c := range pool {
		if c.ID == target.ID {
			continue
		}
		words = append(words, c.Word)
	}
	return shuffled(rnd, words)
}

func shuffled(rnd *lockedRand, words []string) []string {
	rnd.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	return words
}

// DistractorGenerator fills a wrong-answer quota by strategy priority:
// similar spellings first, then same part of speech, then anything in
// the pool. A later tier only fills what the earlier tiers left open.
type DistractorGenerator struct {
	rnd        *lockedRand
	strategies []distractorStrategy
}

// NewDistractorGenerator builds the standard three-tier chain.
// maxDistance bounds the similarity tier; rnd may be nil for a
// self-seeded source.
func NewDistractorGenerator(rnd *rand.Rand, maxDistance int) *DistractorGenerator {
	return &DistractorGenerator{
		rnd: newLockedRand(rnd),
		strategies: []distractorStrategy{
			similarityStrategy{maxDistance: maxDistance},
			categoryStrategy{},
			fallbackStrategy{},
		},
	}
}

// Generate returns up to count distinct headwords from pool, never
// including the target card or its spelling. A pool too small to fill
// the quota yields a short result rather than an error.
func (g *DistractorGenerator) Generate(target domain.Flashcard, pool []domain.Flashcard, count int) []string {
	if count <= 0 {
		return nil
	}

	seen := map[string]struct{}{target.Word: {}}
	out := make([]string, 0, count)

	for _, strat := range g.strategies {
		if len(out) >= count {
			break
		}
		for _, w := range strat.propose(g.rnd, target, pool) {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
			if len(out) >= count {
				break
			}
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
