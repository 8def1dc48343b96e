// Package recommend ranks un-mastered items for practice and derives
// adaptive difficulty settings from the event log.
package recommend

import (
	"math"
	"sort"

	"github.com/avelar/wordsight/internal/events"
	"github.com/avelar/wordsight/internal/patterns"
)

const (
	// maxRecommendations caps every recommendation list.
	maxRecommendations = 5

	// minEventsForRanking is the floor below which ranking falls back to
	// catalog order.
	minEventsForRanking = 5

	// minCandidatesForRanking: with so few un-mastered items left, ranking
	// them is pointless.
	minCandidatesForRanking = 6

	// minEventsForAdaptive is the floor below which adaptive settings stay
	// at their defaults.
	minEventsForAdaptive = 10

	// weakConfidence marks a pattern as needing attention.
	weakConfidence = 65.0
)

// Engine ranks practice items and derives adaptive settings.
type Engine struct {
	detector *patterns.Detector
}

// NewEngine creates an Engine over the given detector.
func NewEngine(d *patterns.Detector) *Engine {
	return &Engine{detector: d}
}

// Recommend returns up to five un-mastered items to practice next. Without
// personalization, with a thin event log, or with few candidates left, the
// result is simply the first un-mastered items in catalog order — stable
// and explainable. Otherwise candidates are ranked: items tied to a weak
// pattern first, then never-attempted items, then ascending per-item
// accuracy.
func (e *Engine) Recommend(catalog []Item, mastered map[string]bool, evs []events.Event, allowPersonalization bool) []Item {
	var candidates []Item
	for _, it := range catalog {
		if !mastered[it.ID] {
			candidates = append(candidates, it)
		}
	}

	if !allowPersonalization || len(evs) < minEventsForRanking || len(candidates) < minCandidatesForRanking {
		return capItems(candidates)
	}

	weak := e.weakItemSet(evs)
	attempts, correct := perItemCounts(evs)

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		if wa, wb := weak[a.ID], weak[b.ID]; wa != wb {
			return wa
		}
		za, zb := attempts[a.ID] == 0, attempts[b.ID] == 0
		if za != zb {
			return za
		}
		return itemAccuracy(a.ID, attempts, correct) < itemAccuracy(b.ID, attempts, correct)
	})
	return capItems(candidates)
}

// Adaptive derives difficulty parameters from the event log. Personalization
// off or fewer than ten events yields the fixed defaults.
func (e *Engine) Adaptive(evs []events.Event, allowPersonalization bool) AdaptiveSettings {
	if !allowPersonalization || len(evs) < minEventsForAdaptive {
		return DefaultAdaptiveSettings()
	}

	var correct int
	for _, ev := range evs {
		if ev.IsCorrect {
			correct++
		}
	}
	acc := 100 * float64(correct) / float64(len(evs))

	s := AdaptiveSettings{RecommendedDifficulty: events.DifficultyMedium}
	switch {
	case acc > 85:
		s.RecommendedDifficulty = events.DifficultyHard
	case acc < 60:
		s.RecommendedDifficulty = events.DifficultyEasy
	}

	s.ChallengeLevel = clampInt(int(math.Round(acc/10)), 1, 10)

	switch avg := e.detector.AverageHintsUsed(evs); {
	case avg > 1.5:
		s.HintFrequency = HintHigh
	case avg < 0.5:
		s.HintFrequency = HintLow
	default:
		s.HintFrequency = HintMedium
	}

	for _, p := range e.detector.DetectPatterns(evs) {
		if p.Confidence < weakConfidence {
			s.FocusAreas = append(s.FocusAreas, p.Type)
		}
	}

	retention := e.detector.MemoryRetention(evs)
	s.RepeatIntervalDays = int(math.Round(retention / 20))
	if s.RepeatIntervalDays < 1 {
		s.RepeatIntervalDays = 1
	}
	return s
}

// weakItemSet collects the related items of every weak pattern.
func (e *Engine) weakItemSet(evs []events.Event) map[string]bool {
	weak := make(map[string]bool)
	for _, p := range e.detector.DetectPatterns(evs) {
		if p.Confidence >= weakConfidence {
			continue
		}
		for _, id := range p.RelatedItemIDs {
			weak[id] = true
		}
	}
	return weak
}

func perItemCounts(evs []events.Event) (attempts, correct map[string]int) {
	attempts = make(map[string]int)
	correct = make(map[string]int)
	for _, ev := range evs {
		attempts[ev.ItemID]++
		if ev.IsCorrect {
			correct[ev.ItemID]++
		}
	}
	return attempts, correct
}

func itemAccuracy(id string, attempts, correct map[string]int) float64 {
	n := attempts[id]
	if n == 0 {
		return 0
	}
	return float64(correct[id]) / float64(n)
}

func capItems(items []Item) []Item {
	if len(items) > maxRecommendations {
		return items[:maxRecommendations]
	}
	return items
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
