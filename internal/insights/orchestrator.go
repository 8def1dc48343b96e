// Package insights assembles the final ordered insight list from the
// pattern detector, the trend analyzer, and aggregate statistics.
package insights

import (
	"fmt"
	"os"

	"github.com/avelar/wordsight/internal/events"
	"github.com/avelar/wordsight/internal/patterns"
)

// patternCutoff is the confidence above which a detected pattern is worth
// surfacing to the user.
const patternCutoff = 50.0

// strengthCutoff separates an overall-accuracy strength from a weakness.
const strengthCutoff = 70.0

// slowResponseMs marks an average response time worth commenting on.
const slowResponseMs = 10000

// Orchestrator generates the ordered insight list.
type Orchestrator struct {
	detector *patterns.Detector
}

// NewOrchestrator creates an Orchestrator over the given detector.
func NewOrchestrator(d *patterns.Detector) *Orchestrator {
	return &Orchestrator{detector: d}
}

// Generate returns insights in presentation order. Any panic inside the
// pipeline degrades to a single zero-score entry; analytics never takes the
// host down with it.
func (o *Orchestrator) Generate(evs []events.Event, allowPersonalization bool) (out []Insight) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "warning: insight generation failed: %v\n", r)
			out = []Insight{{
				Type:        TypeRecommendation,
				Description: "Unable to generate insights right now",
				Score:       0,
			}}
		}
	}()

	if len(evs) == 0 {
		return []Insight{{
			Type:        TypeRecommendation,
			Description: "Not enough data yet — keep practicing to unlock insights",
			Score:       50,
		}}
	}

	out = append(out, o.overallAccuracy(evs, allowPersonalization))
	out = append(out, o.difficultyBuckets(evs)...)

	for _, p := range o.detector.DetectPatterns(evs) {
		if p.Confidence <= patternCutoff {
			continue
		}
		out = append(out, Insight{
			Type:               TypePattern,
			Description:        p.Description,
			Score:              p.Confidence,
			RelatedItemIDs:     p.RelatedItemIDs,
			RecommendedActions: []string{p.RecommendedApproach},
		})
	}

	out = append(out, o.responseTime(evs))
	if avg := o.detector.AverageHintsUsed(evs); avg > 0 {
		out = append(out, o.hintsUsed(avg))
	}
	if trend := DetectTrend(evs); trend != nil {
		out = append(out, *trend)
	}
	return out
}

func (o *Orchestrator) overallAccuracy(evs []events.Event, personalized bool) Insight {
	acc := accuracyPct(evs)

	ins := Insight{Score: acc}
	if acc >= strengthCutoff {
		ins.Type = TypeStrength
		ins.Description = fmt.Sprintf("Strong overall accuracy: %.0f%% of attempts correct", acc)
	} else {
		ins.Type = TypeWeakness
		ins.Description = fmt.Sprintf("Overall accuracy is %.0f%% — room to grow", acc)
	}

	if personalized {
		if acc >= strengthCutoff {
			ins.PersonalTip = "You're ready for harder words — try raising the difficulty"
		} else {
			ins.PersonalTip = "Slow down and use hints when unsure; accuracy builds confidence"
		}
		// Confidence in the estimate grows with sample size, capped short
		// of certainty.
		ins.ConfidenceScore = clamp(float64(len(evs))*5, 0, 95)
	}
	return ins
}

func (o *Orchestrator) difficultyBuckets(evs []events.Event) []Insight {
	buckets := []events.Difficulty{events.DifficultyEasy, events.DifficultyMedium, events.DifficultyHard}

	var out []Insight
	for _, d := range buckets {
		var subset []events.Event
		for _, ev := range evs {
			if ev.Difficulty == d {
				subset = append(subset, ev)
			}
		}
		if len(subset) == 0 {
			continue
		}
		acc := accuracyPct(subset)
		ins := Insight{Score: acc, AdaptiveLevel: string(d)}
		if acc >= strengthCutoff {
			ins.Type = TypeStrength
			ins.Description = fmt.Sprintf("%s words: %.0f%% correct across %d attempts", titleDifficulty(d), acc, len(subset))
		} else {
			ins.Type = TypeWeakness
			ins.Description = fmt.Sprintf("%s words are a struggle: %.0f%% correct across %d attempts", titleDifficulty(d), acc, len(subset))
		}
		out = append(out, ins)
	}
	return out
}

func (o *Orchestrator) responseTime(evs []events.Event) Insight {
	avgMs := o.detector.AverageResponseTime(evs)
	ins := Insight{
		Type:        TypeRecommendation,
		Description: fmt.Sprintf("Average response time: %.1f seconds", avgMs/1000),
		Score:       50,
	}
	if avgMs > slowResponseMs {
		ins.RecommendedActions = []string{"Try shorter practice bursts to keep focus sharp"}
	}
	return ins
}

func (o *Orchestrator) hintsUsed(avg float64) Insight {
	if avg > 1.5 {
		return Insight{
			Type:               TypeWeakness,
			Description:        fmt.Sprintf("Heavy hint use: %.1f hints per attempt", avg),
			Score:              50,
			RecommendedActions: []string{"Attempt each word once before reaching for a hint"},
		}
	}
	return Insight{
		Type:        TypeRecommendation,
		Description: fmt.Sprintf("Hint use is moderate: %.1f hints per attempt", avg),
		Score:       50,
	}
}

func titleDifficulty(d events.Difficulty) string {
	switch d {
	case events.DifficultyEasy:
		return "Easy"
	case events.DifficultyMedium:
		return "Medium"
	default:
		return "Hard"
	}
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
