// Package events persists the bounded, encrypted learning-event log.
//
// The whole log lives under a single storage key as one sealed JSON array.
// Every append decrypts, mutates, and re-seals the full blob; at the 100-
// event cap this stays cheap and keeps the persisted layout down to one key
// plus an expiry marker.
package events

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/avelar/wordsight/internal/cipher"
	"github.com/avelar/wordsight/internal/kv"
	"github.com/avelar/wordsight/internal/privacy"
)

const (
	keyLog    = "wordsight.events"
	keyExpiry = "wordsight.events_expiry"

	// MaxEvents caps the ring buffer; the oldest event is evicted first.
	MaxEvents = 100

	// RetentionDays is how long the log survives without a purge check
	// finding it expired. Refreshed on every append.
	RetentionDays = 90
)

// Store is the encrypted event log.
type Store struct {
	kv      kv.Store
	secrets privacy.SecretMaterial

	// Now is the clock; overridable in tests.
	Now func() time.Time
}

// NewStore creates a Store over the given key-value backend.
func NewStore(backend kv.Store, secrets privacy.SecretMaterial) *Store {
	return &Store{kv: backend, secrets: secrets, Now: time.Now}
}

// Append adds one event to the log, evicting the oldest entries beyond
// MaxEvents, and refreshes the expiry marker. The encryption level comes
// from the preferences active right now.
func (s *Store) Append(ev Event, prefs privacy.Preferences) error {
	evs := s.ReadAll()
	evs = append(evs, ev)
	if len(evs) > MaxEvents {
		evs = evs[len(evs)-MaxEvents:]
	}

	raw, err := json.Marshal(evs)
	if err != nil {
		return fmt.Errorf("marshal event log: %w", err)
	}
	sealed, err := cipher.Encrypt(string(raw), s.secrets.EncryptionKey, prefs.EncryptionLevel)
	if err != nil {
		return fmt.Errorf("seal event log: %w", err)
	}
	if err := s.kv.Set(keyLog, sealed); err != nil {
		return fmt.Errorf("write event log: %w", err)
	}

	expiry := s.Now().Add(RetentionDays * 24 * time.Hour)
	if err := s.kv.Set(keyExpiry, expiry.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("write expiry marker: %w", err)
	}
	return nil
}

// ReadAll decrypts and returns the full log in append order. Every failure
// mode (missing blob, bad envelope, shape mismatch) degrades to an empty
// slice; analytics never hard-fails on a bad log.
func (s *Store) ReadAll() []Event {
	sealed, ok, err := s.kv.Get(keyLog)
	if err != nil {
		warnf("read event log: %v", err)
		return nil
	}
	if !ok {
		return nil
	}

	raw := cipher.Decrypt(sealed, s.secrets.EncryptionKey)
	evs, err := decodeLog(raw)
	if err != nil {
		warnf("event log rejected: %v", err)
		return nil
	}
	return evs
}

// PurgeAll deletes the event log and its expiry marker. Device secrets are
// untouched so future events from the same raw id stay linkable. Reports
// whether the purge fully succeeded.
func (s *Store) PurgeAll() bool {
	ok := true
	if err := s.kv.Remove(keyLog); err != nil {
		warnf("purge event log: %v", err)
		ok = false
	}
	if err := s.kv.Remove(keyExpiry); err != nil {
		warnf("purge expiry marker: %v", err)
		ok = false
	}
	return ok
}

// PurgeIfExpired purges the log when the stored expiry has passed. The
// engine runs no timers; the host calls this once at session start.
func (s *Store) PurgeIfExpired() {
	v, ok, err := s.kv.Get(keyExpiry)
	if err != nil {
		warnf("read expiry marker: %v", err)
		return
	}
	if !ok {
		return
	}

	expiry, err := time.Parse(time.RFC3339, v)
	if err != nil {
		// An unreadable marker means the retention clock is lost; purge
		// rather than keep data of unknown age.
		warnf("expiry marker unreadable, purging: %v", err)
		s.PurgeAll()
		return
	}
	if s.Now().After(expiry) {
		s.PurgeAll()
	}
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
