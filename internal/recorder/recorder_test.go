package recorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelar/wordsight/internal/events"
	"github.com/avelar/wordsight/internal/kv"
	"github.com/avelar/wordsight/internal/privacy"
)

func newTestRecorder(t *testing.T) (*Recorder, *privacy.Settings, *events.Store) {
	t.Helper()
	backend := kv.NewMemory()
	settings, err := privacy.NewSettings(backend)
	require.NoError(t, err)
	store := events.NewStore(backend, settings.Secrets())
	return New(settings, store, backend), settings, store
}

func TestRecord_NoConsentIsNoOp(t *testing.T) {
	r, _, store := newTestRecorder(t)

	r.Record(Attempt{ItemID: "w1", IsCorrect: true})
	assert.Empty(t, store.ReadAll(), "event written without consent")
}

func TestRecord_DisabledEngineIsNoOp(t *testing.T) {
	r, settings, store := newTestRecorder(t)
	require.NoError(t, settings.SetConsent(true))
	settings.SetEnabled(false)

	r.Record(Attempt{ItemID: "w1", IsCorrect: true})
	assert.Empty(t, store.ReadAll(), "event written while engine disabled")
}

func TestRecord_WritesAnonymizedEvent(t *testing.T) {
	r, settings, store := newTestRecorder(t)
	require.NoError(t, settings.SetConsent(true))

	r.Record(Attempt{
		ItemID:     "w1",
		IsCorrect:  true,
		DurationMs: 4200,
		HintsUsed:  1,
		LanguageID: "es",
		Difficulty: events.DifficultyHard,
	})

	evs := store.ReadAll()
	require.Len(t, evs, 1)
	ev := evs[0]
	assert.Equal(t, "w1", ev.ItemID)
	assert.Equal(t, "es", ev.LanguageID)
	assert.Equal(t, events.DifficultyHard, ev.Difficulty)
	assert.Equal(t, 1, ev.AttemptCount, "attempt count defaults to 1")
	assert.NotEmpty(t, ev.UserToken)
	assert.NotContains(t, ev.UserToken, placeholderRawID, "raw id leaked into token")
	assert.NotEmpty(t, ev.SessionID)
	assert.False(t, ev.Timestamp.IsZero())
}

func TestRecord_SessionIDStableAcrossWrites(t *testing.T) {
	r, settings, store := newTestRecorder(t)
	require.NoError(t, settings.SetConsent(true))

	r.Record(Attempt{ItemID: "w1"})
	r.Record(Attempt{ItemID: "w2"})

	evs := store.ReadAll()
	require.Len(t, evs, 2)
	assert.Equal(t, evs[0].SessionID, evs[1].SessionID)
}

func TestRecord_DemographicsGated(t *testing.T) {
	r, settings, store := newTestRecorder(t)
	require.NoError(t, settings.SetConsent(true))

	share, region, age := true, "eu-west", "25-34"
	require.NoError(t, settings.SetPreferences(privacy.PreferencesPatch{
		ShareDemographics: &share,
		Region:            &region,
		AgeGroup:          &age,
	}))
	r.Record(Attempt{ItemID: "w1"})

	noShare := false
	require.NoError(t, settings.SetPreferences(privacy.PreferencesPatch{ShareDemographics: &noShare}))
	r.Record(Attempt{ItemID: "w2"})

	evs := store.ReadAll()
	require.Len(t, evs, 2)
	assert.Equal(t, "eu-west", evs[0].Region)
	assert.Equal(t, "25-34", evs[0].AgeGroup)
	assert.Empty(t, evs[1].Region, "demographics attached after opt-out")
	assert.Empty(t, evs[1].AgeGroup)
}

func TestRecord_TokenDeterministicPerDevice(t *testing.T) {
	r, settings, store := newTestRecorder(t)
	require.NoError(t, settings.SetConsent(true))

	r.Record(Attempt{ItemID: "w1"})
	r.Record(Attempt{ItemID: "w2"})

	evs := store.ReadAll()
	require.Len(t, evs, 2)
	assert.Equal(t, evs[0].UserToken, evs[1].UserToken,
		"same device + same raw id must keep events linkable")
}
