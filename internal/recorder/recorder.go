// Package recorder turns raw learning attempts into anonymized events. It is
// the only write path into the event log, and the only place the consent
// gate is enforced.
package recorder

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/avelar/wordsight/internal/events"
	"github.com/avelar/wordsight/internal/kv"
	"github.com/avelar/wordsight/internal/privacy"
)

const keySession = "wordsight.session"

// placeholderRawID stands in for a per-user identifier. A real deployment
// must supply a genuine raw id here; the anonymizer makes it opaque either
// way.
const placeholderRawID = "local-learner"

// Attempt is one raw exercise result as reported by the host.
type Attempt struct {
	ItemID         string
	IsCorrect      bool
	DurationMs     int
	HintsUsed      int
	LanguageID     string
	Difficulty     events.Difficulty
	MistakePattern string
	AttemptCount   int
	LettersCorrect int
}

// Recorder validates consent and writes anonymized events.
type Recorder struct {
	settings *privacy.Settings
	store    *events.Store
	kv       kv.Store

	// Now is the clock; overridable in tests.
	Now func() time.Time
}

// New creates a Recorder.
func New(settings *privacy.Settings, store *events.Store, backend kv.Store) *Recorder {
	return &Recorder{settings: settings, store: store, kv: backend, Now: time.Now}
}

// Record builds and persists one event. Fire-and-forget: without consent (or
// with the engine disabled) it is a no-op, and persistence failures are
// logged, never surfaced. Analytics must not break an exercise.
func (r *Recorder) Record(a Attempt) {
	if !r.settings.IsEnabled() || !r.settings.HasConsent() {
		return
	}

	prefs := r.settings.GetPreferences()

	ev := events.Event{
		UserToken:         privacy.Anonymize(placeholderRawID, r.settings.Secrets()),
		SessionID:         r.sessionID(),
		Timestamp:         r.Now().UTC(),
		LanguageID:        a.LanguageID,
		ItemID:            a.ItemID,
		IsCorrect:         a.IsCorrect,
		AttemptDurationMs: a.DurationMs,
		HintsUsed:         a.HintsUsed,
		Difficulty:        a.Difficulty,
		MistakePattern:    a.MistakePattern,
		AttemptCount:      a.AttemptCount,
		LettersCorrect:    a.LettersCorrect,
	}
	if ev.Difficulty == "" {
		ev.Difficulty = events.DifficultyMedium
	}
	if ev.AttemptCount < 1 {
		ev.AttemptCount = 1
	}
	if prefs.ShareDemographics {
		ev.Region = prefs.Region
		ev.AgeGroup = prefs.AgeGroup
	}

	if err := r.store.Append(ev, prefs); err != nil {
		fmt.Fprintf(os.Stderr, "warning: record attempt: %v\n", err)
	}
}

// sessionID returns the current session id, minting and persisting one on
// the first write of a session.
func (r *Recorder) sessionID() string {
	if v, ok, err := r.kv.Get(keySession); err == nil && ok && v != "" {
		return v
	}
	id := uuid.New().String()
	if err := r.kv.Set(keySession, id); err != nil {
		fmt.Fprintf(os.Stderr, "warning: persist session id: %v\n", err)
	}
	return id
}
