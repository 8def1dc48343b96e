package recommend

import (
	"github.com/avelar/wordsight/internal/events"
	"github.com/avelar/wordsight/internal/patterns"
)

// Item is one practice item from the host's catalog.
type Item struct {
	ID         string            `json:"id"`
	Word       string            `json:"word"`
	Difficulty events.Difficulty `json:"difficulty"`
	Category   string            `json:"category,omitempty"`
}

// HintFrequency tunes how eagerly the host should offer hints.
type HintFrequency string

const (
	HintLow    HintFrequency = "low"
	HintMedium HintFrequency = "medium"
	HintHigh   HintFrequency = "high"
)

// AdaptiveSettings are difficulty parameters derived from the live event
// log. Recomputed per query, never persisted.
type AdaptiveSettings struct {
	RecommendedDifficulty events.Difficulty `json:"recommendedDifficulty"`
	FocusAreas            []patterns.Type   `json:"focusAreas"`
	ChallengeLevel        int               `json:"challengeLevel"` // 1–10
	HintFrequency         HintFrequency     `json:"hintFrequency"`
	RepeatIntervalDays    int               `json:"repeatIntervalDays"`
}

// DefaultAdaptiveSettings is what a new or personalization-off learner gets.
func DefaultAdaptiveSettings() AdaptiveSettings {
	return AdaptiveSettings{
		RecommendedDifficulty: events.DifficultyMedium,
		ChallengeLevel:        5,
		HintFrequency:         HintMedium,
		RepeatIntervalDays:    3,
	}
}
