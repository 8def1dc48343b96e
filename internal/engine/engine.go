// Package engine is the boundary surface the host talks to. It wires the
// privacy gate, the encrypted event log, and the analysis pipeline behind a
// single explicitly constructed object; nothing in here is a package-level
// singleton, so tests run against in-memory backends.
package engine

import (
	"fmt"

	"github.com/avelar/wordsight/internal/events"
	"github.com/avelar/wordsight/internal/insights"
	"github.com/avelar/wordsight/internal/kv"
	"github.com/avelar/wordsight/internal/patterns"
	"github.com/avelar/wordsight/internal/privacy"
	"github.com/avelar/wordsight/internal/recommend"
	"github.com/avelar/wordsight/internal/recorder"
)

// Progress is the host's own progress snapshot. The engine never derives it;
// it flows through to the export document and keeps the insight query
// signature stable for hosts that track progress externally.
type Progress struct {
	MasteredItemIDs []string `json:"masteredItemIds"`
	TotalSessions   int      `json:"totalSessions"`
	CurrentLevel    string   `json:"currentLevel,omitempty"`
}

// Engine is the assembled analytics engine.
type Engine struct {
	Settings *privacy.Settings
	Events   *events.Store

	rec          *recorder.Recorder
	orchestrator *insights.Orchestrator
	recommender  *recommend.Engine
}

// New builds an engine over the given storage backend, loading or creating
// device secrets as needed.
func New(backend kv.Store) (*Engine, error) {
	settings, err := privacy.NewSettings(backend)
	if err != nil {
		return nil, fmt.Errorf("init settings: %w", err)
	}

	store := events.NewStore(backend, settings.Secrets())
	detector := patterns.NewDetector()

	return &Engine{
		Settings:     settings,
		Events:       store,
		rec:          recorder.New(settings, store, backend),
		orchestrator: insights.NewOrchestrator(detector),
		recommender:  recommend.NewEngine(detector),
	}, nil
}

// RecordAttempt records one raw attempt. Fire-and-forget; a no-op without
// consent.
func (e *Engine) RecordAttempt(a recorder.Attempt) {
	e.rec.Record(a)
}

// SetConsent records the user's consent decision.
func (e *Engine) SetConsent(v bool) error { return e.Settings.SetConsent(v) }

// HasConsent reports whether analytics may operate.
func (e *Engine) HasConsent() bool { return e.Settings.HasConsent() }

// SetPreferences merges a partial preferences update.
func (e *Engine) SetPreferences(p privacy.PreferencesPatch) error {
	return e.Settings.SetPreferences(p)
}

// GetPreferences returns the current privacy preferences.
func (e *Engine) GetPreferences() privacy.Preferences { return e.Settings.GetPreferences() }

// GetInsights generates the ordered insight list. Insights derive solely
// from the anonymized event log; the host's progress snapshot rides along
// only into the export surface.
func (e *Engine) GetInsights(progress Progress) []insights.Insight {
	return e.orchestrator.Generate(e.Events.ReadAll(), e.Settings.GetPreferences().AllowPersonalization)
}

// GetRecommendedItems returns up to five un-mastered items to practice next.
func (e *Engine) GetRecommendedItems(catalog []recommend.Item, masteredIDs []string) []recommend.Item {
	mastered := make(map[string]bool, len(masteredIDs))
	for _, id := range masteredIDs {
		mastered[id] = true
	}
	return e.recommender.Recommend(
		catalog, mastered, e.Events.ReadAll(),
		e.Settings.GetPreferences().AllowPersonalization,
	)
}

// GetAdaptiveSettings derives adaptive difficulty parameters from the log.
func (e *Engine) GetAdaptiveSettings() recommend.AdaptiveSettings {
	return e.recommender.Adaptive(
		e.Events.ReadAll(),
		e.Settings.GetPreferences().AllowPersonalization,
	)
}

// PurgeAllData erases the event log (right to be forgotten). Device secrets
// survive so anonymized identity stays consistent if recording resumes.
func (e *Engine) PurgeAllData() bool { return e.Events.PurgeAll() }

// CheckAndPurgeExpiredData purges the log if its retention window has
// passed. Hosts call this once per session start; the engine runs no timers.
func (e *Engine) CheckAndPurgeExpiredData() { e.Events.PurgeIfExpired() }
