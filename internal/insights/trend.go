package insights

import (
	"fmt"
	"math"
	"sort"

	"github.com/avelar/wordsight/internal/events"
)

const (
	// minEventsForTrend is the floor below which no trend is reported.
	minEventsForTrend = 10

	// trendThreshold is the noise floor in accuracy percentage points.
	trendThreshold = 5.0
)

// DetectTrend compares first-half and second-half accuracy of the log.
// Returns nil when the sample is too small or the delta sits inside the
// noise threshold; otherwise a strength (improving) or weakness (declining)
// insight carrying the signed delta.
func DetectTrend(evs []events.Event) *Insight {
	if len(evs) < minEventsForTrend {
		return nil
	}

	ordered := make([]events.Event, len(evs))
	copy(ordered, evs)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	mid := len(ordered) / 2
	first := accuracyPct(ordered[:mid])
	second := accuracyPct(ordered[mid:])
	delta := second - first

	if math.Abs(delta) < trendThreshold {
		return nil
	}

	if delta > 0 {
		return &Insight{
			Type:        TypeStrength,
			Description: fmt.Sprintf("Your accuracy improved by %.1f points over recent practice", delta),
			Score:       math.Abs(delta),
		}
	}
	return &Insight{
		Type:        TypeWeakness,
		Description: fmt.Sprintf("Your accuracy dropped by %.1f points over recent practice", -delta),
		Score:       math.Abs(delta),
	}
}

func accuracyPct(evs []events.Event) float64 {
	if len(evs) == 0 {
		return 0
	}
	var correct int
	for _, ev := range evs {
		if ev.IsCorrect {
			correct++
		}
	}
	return 100 * float64(correct) / float64(len(evs))
}
