// Package patterns computes confidence scores for recurring difficulty
// patterns from the event log.
//
// The per-type filters are deliberate placeholders keyed off mistake tags,
// difficulty, and attempt counts rather than genuine phonetic or visual
// similarity. Real linguistic classification would need the word catalog,
// which this engine never sees.
package patterns

import (
	"sort"

	"github.com/avelar/wordsight/internal/events"
)

// minEventsForRetention is the floor below which memory retention stays at
// the neutral midpoint instead of being computed.
const minEventsForRetention = 10

const retentionMidpoint = 50.0

// rule is one pattern type's heuristic partition of the event log.
type rule struct {
	typ      Type
	neutral  float64 // confidence when the partition is empty
	match    func(events.Event) bool
	desc     string
	approach string
}

func defaultRules() []rule {
	return []rule{
		{
			typ:     TypePhonetic,
			neutral: 70,
			match: func(ev events.Event) bool {
				return ev.MistakePattern == "pronunciation" || ev.Difficulty == events.DifficultyHard
			},
			desc:     "Sound-based mistakes on harder words",
			approach: "Practice listening before spelling; repeat words aloud",
		},
		{
			typ:     TypeVisual,
			neutral: 75,
			match: func(ev events.Event) bool {
				return ev.MistakePattern == "spelling" || (!ev.IsCorrect && ev.LettersCorrect > 0)
			},
			desc:     "Near-miss spellings with most letters in place",
			approach: "Use letter-tile exercises and picture association",
		},
		{
			typ:     TypeStructural,
			neutral: 72,
			match: func(ev events.Event) bool {
				return ev.MistakePattern == "structure" || ev.MistakePattern == "grammar" || ev.AttemptCount > 2
			},
			desc:     "Difficulty with word structure and repeated retries",
			approach: "Break words into syllables and build them up",
		},
		{
			typ:     TypeMemory,
			neutral: 68,
			match: func(ev events.Event) bool {
				return ev.AttemptCount > 1
			},
			desc:     "Words that needed more than one attempt",
			approach: "Shorter, more frequent review sessions",
		},
	}
}

// Detector derives patterns and aggregate statistics from events.
type Detector struct {
	rules []rule
}

// NewDetector creates a Detector with the default heuristic rules.
func NewDetector() *Detector {
	return &Detector{rules: defaultRules()}
}

// DetectPatterns partitions events per rule and scores each partition by its
// percent-correct. An empty partition falls back to the rule's neutral
// confidence so downstream consumers always see all four types.
func (d *Detector) DetectPatterns(evs []events.Event) []Pattern {
	out := make([]Pattern, 0, len(d.rules))
	for _, r := range d.rules {
		var total, correct int
		var related []string
		seen := make(map[string]bool)

		for _, ev := range evs {
			if !r.match(ev) {
				continue
			}
			total++
			if ev.IsCorrect {
				correct++
			} else if !seen[ev.ItemID] {
				seen[ev.ItemID] = true
				related = append(related, ev.ItemID)
			}
		}

		conf := r.neutral
		if total > 0 {
			conf = 100 * float64(correct) / float64(total)
		}
		out = append(out, Pattern{
			Type:                r.typ,
			Confidence:          conf,
			RelatedItemIDs:      related,
			Description:         r.desc,
			RecommendedApproach: r.approach,
		})
	}
	return out
}

// AverageResponseTime returns the mean attempt duration in milliseconds.
func (d *Detector) AverageResponseTime(evs []events.Event) float64 {
	if len(evs) == 0 {
		return 0
	}
	var sum float64
	for _, ev := range evs {
		sum += float64(ev.AttemptDurationMs)
	}
	return sum / float64(len(evs))
}

// AverageHintsUsed returns the mean hint count per attempt.
func (d *Detector) AverageHintsUsed(evs []events.Event) float64 {
	if len(evs) == 0 {
		return 0
	}
	var sum float64
	for _, ev := range evs {
		sum += float64(ev.HintsUsed)
	}
	return sum / float64(len(evs))
}

// MemoryRetention scores how well items stick across repeated attempts,
// 0–100 around a midpoint of 50. Each repeated item's first and last attempt
// are compared: wrong-then-right pulls the score up, right-then-wrong pulls
// it down. Under 10 total events the sample is too thin; the neutral
// midpoint is returned instead.
func (d *Detector) MemoryRetention(evs []events.Event) float64 {
	if len(evs) < minEventsForRetention {
		return retentionMidpoint
	}

	byItem := make(map[string][]events.Event)
	for _, ev := range evs {
		byItem[ev.ItemID] = append(byItem[ev.ItemID], ev)
	}

	var repeated, improved, declined int
	for _, attempts := range byItem {
		if len(attempts) < 2 {
			continue
		}
		sort.Slice(attempts, func(i, j int) bool {
			return attempts[i].Timestamp.Before(attempts[j].Timestamp)
		})
		repeated++
		first, last := attempts[0], attempts[len(attempts)-1]
		switch {
		case last.IsCorrect && !first.IsCorrect:
			improved++
		case !last.IsCorrect && first.IsCorrect:
			declined++
		}
	}
	if repeated == 0 {
		return retentionMidpoint
	}

	score := retentionMidpoint + retentionMidpoint*float64(improved-declined)/float64(repeated)
	return clamp(score, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
