package recommend

import (
	"reflect"
	"testing"
	"time"

	"github.com/avelar/wordsight/internal/events"
	"github.com/avelar/wordsight/internal/patterns"
)

func catalogOf(ids ...string) []Item {
	items := make([]Item, len(ids))
	for i, id := range ids {
		items[i] = Item{ID: id, Word: id, Difficulty: events.DifficultyMedium}
	}
	return items
}

func attempt(itemID string, correct bool, i int) events.Event {
	return events.Event{
		UserToken:  "tok",
		SessionID:  "sess",
		Timestamp:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Minute),
		ItemID:     itemID,
		IsCorrect:  correct,
		Difficulty: events.DifficultyMedium,
	}
}

func newEngine() *Engine {
	return NewEngine(patterns.NewDetector())
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestRecommend_FallbackCatalogOrder(t *testing.T) {
	e := newEngine()
	catalog := catalogOf("a", "b", "c", "d", "e", "f", "g")

	// Fewer than 5 events: catalog order regardless of personalization.
	evs := []events.Event{attempt("g", false, 0)}
	got := e.Recommend(catalog, nil, evs, true)

	want := []string{"a", "b", "c", "d", "e"}
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
	}
}

func TestRecommend_FallbackWhenPersonalizationOff(t *testing.T) {
	e := newEngine()
	catalog := catalogOf("a", "b", "c", "d", "e", "f", "g")

	var evs []events.Event
	for i := 0; i < 20; i++ {
		evs = append(evs, attempt("g", false, i))
	}
	got := e.Recommend(catalog, nil, evs, false)
	if gotIDs := ids(got); gotIDs[0] != "a" || len(gotIDs) != 5 {
		t.Errorf("personalization off: got %v, want first 5 in catalog order", gotIDs)
	}
}

func TestRecommend_ExcludesMastered(t *testing.T) {
	e := newEngine()
	catalog := catalogOf("a", "b", "c", "d", "e", "f")
	mastered := map[string]bool{"a": true, "c": true}

	got := e.Recommend(catalog, mastered, nil, false)
	for _, it := range got {
		if mastered[it.ID] {
			t.Errorf("mastered item %s recommended", it.ID)
		}
	}
	if len(got) != 4 {
		t.Errorf("got %d items, want the 4 un-mastered", len(got))
	}
}

func TestRecommend_RanksWeakAndUnseenFirst(t *testing.T) {
	e := newEngine()
	catalog := catalogOf("a", "b", "c", "d", "e", "f", "g", "h")

	// "h" fails repeatedly on hard difficulty: lands in the weak phonetic
	// pattern's related set. "a".."c" get perfect scores; the rest unseen.
	var evs []events.Event
	i := 0
	for ; i < 6; i++ {
		ev := attempt("h", false, i)
		ev.Difficulty = events.DifficultyHard
		evs = append(evs, ev)
	}
	for _, id := range []string{"a", "b", "c"} {
		evs = append(evs, attempt(id, true, i))
		i++
	}

	got := ids(e.Recommend(catalog, nil, evs, true))
	if got[0] != "h" {
		t.Errorf("weak-pattern item not first: %v", got)
	}
	// Unseen items (d, e, f, g) before the well-answered ones.
	for _, id := range got[1:5] {
		if id == "a" || id == "b" || id == "c" {
			t.Errorf("high-accuracy item %s ranked above unseen items: %v", id, got)
		}
	}
}

func TestRecommend_CapsAtFive(t *testing.T) {
	e := newEngine()
	got := e.Recommend(catalogOf("a", "b", "c", "d", "e", "f", "g"), nil, nil, false)
	if len(got) != 5 {
		t.Errorf("got %d items, want 5", len(got))
	}
}

func TestAdaptive_DefaultsUnderTenEvents(t *testing.T) {
	e := newEngine()
	var evs []events.Event
	for i := 0; i < 9; i++ {
		evs = append(evs, attempt("a", true, i))
	}
	got := e.Adaptive(evs, true)
	if !reflect.DeepEqual(got, DefaultAdaptiveSettings()) {
		t.Errorf("Adaptive under 10 events = %+v, want defaults", got)
	}
}

func TestAdaptive_DefaultsWhenPersonalizationOff(t *testing.T) {
	e := newEngine()
	var evs []events.Event
	for i := 0; i < 30; i++ {
		evs = append(evs, attempt("a", true, i))
	}
	got := e.Adaptive(evs, false)
	want := DefaultAdaptiveSettings()
	if got.RecommendedDifficulty != want.RecommendedDifficulty || got.ChallengeLevel != want.ChallengeLevel {
		t.Errorf("Adaptive with personalization off = %+v, want defaults", got)
	}
}

func TestAdaptive_HighAccuracyRaisesDifficulty(t *testing.T) {
	e := newEngine()
	var evs []events.Event
	for i := 0; i < 20; i++ {
		evs = append(evs, attempt("w"+string(rune('a'+i)), i < 18, i)) // 90%
	}
	got := e.Adaptive(evs, true)
	if got.RecommendedDifficulty != events.DifficultyHard {
		t.Errorf("difficulty = %s, want hard at 90%% accuracy", got.RecommendedDifficulty)
	}
	if got.ChallengeLevel != 9 {
		t.Errorf("challenge level = %d, want 9", got.ChallengeLevel)
	}
}

func TestAdaptive_LowAccuracyLowersDifficulty(t *testing.T) {
	e := newEngine()
	var evs []events.Event
	for i := 0; i < 20; i++ {
		evs = append(evs, attempt("w"+string(rune('a'+i)), i < 10, i)) // 50%
	}
	got := e.Adaptive(evs, true)
	if got.RecommendedDifficulty != events.DifficultyEasy {
		t.Errorf("difficulty = %s, want easy at 50%% accuracy", got.RecommendedDifficulty)
	}
	if got.ChallengeLevel != 5 {
		t.Errorf("challenge level = %d, want 5", got.ChallengeLevel)
	}
	if got.RepeatIntervalDays < 1 {
		t.Errorf("repeat interval = %d, want >= 1", got.RepeatIntervalDays)
	}
}

func TestAdaptive_HintFrequency(t *testing.T) {
	e := newEngine()

	heavy := make([]events.Event, 0, 12)
	for i := 0; i < 12; i++ {
		ev := attempt("a", true, i)
		ev.HintsUsed = 2
		heavy = append(heavy, ev)
	}
	if got := e.Adaptive(heavy, true); got.HintFrequency != HintHigh {
		t.Errorf("hint frequency = %s, want high", got.HintFrequency)
	}

	none := make([]events.Event, 0, 12)
	for i := 0; i < 12; i++ {
		none = append(none, attempt("w"+string(rune('a'+i)), true, i))
	}
	if got := e.Adaptive(none, true); got.HintFrequency != HintLow {
		t.Errorf("hint frequency = %s, want low", got.HintFrequency)
	}
}

func TestAdaptive_FocusAreasFromWeakPatterns(t *testing.T) {
	e := newEngine()

	// All hard attempts wrong: phonetic partition at 0% confidence.
	var evs []events.Event
	for i := 0; i < 12; i++ {
		ev := attempt("w"+string(rune('a'+i)), false, i)
		ev.Difficulty = events.DifficultyHard
		evs = append(evs, ev)
	}
	got := e.Adaptive(evs, true)

	found := false
	for _, f := range got.FocusAreas {
		if f == patterns.TypePhonetic {
			found = true
		}
	}
	if !found {
		t.Errorf("focus areas = %v, want to include phonetic", got.FocusAreas)
	}
}
