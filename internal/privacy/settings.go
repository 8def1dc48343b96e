// Package privacy owns consent, privacy preferences, and the device-local
// secret material. Every other part of the engine asks this package before
// touching learner data.
package privacy

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/avelar/wordsight/internal/cipher"
	"github.com/avelar/wordsight/internal/kv"
)

// Storage keys. One key per concern, mirroring the engine's flat persisted
// layout.
const (
	keyConsent       = "wordsight.consent"
	keyPreferences   = "wordsight.preferences"
	keyAnonPrimary   = "wordsight.anon_primary"
	keyAnonSecondary = "wordsight.anon_secondary"
	keyCipherSecret  = "wordsight.cipher_secret"
)

const secretBytes = 32

// Settings is the engine's consent and preference store. It loads lazily
// persisted state from the key-value store and generates the device secrets
// on first use. All failures degrade to safe defaults; nothing here returns
// an error to a read path.
type Settings struct {
	store   kv.Store
	enabled bool

	consent bool
	prefs   Preferences
	secrets SecretMaterial
}

// NewSettings loads (or initializes) settings from the store. Corrupt
// persisted preferences reset consent to false: a user whose recorded
// choices can't be trusted is treated as not having consented.
func NewSettings(store kv.Store) (*Settings, error) {
	s := &Settings{
		store:   store,
		enabled: true,
		prefs:   DefaultPreferences(),
	}

	if err := s.loadOrCreateSecrets(); err != nil {
		return nil, err
	}
	s.loadConsent()
	s.loadPreferences()
	return s, nil
}

// SetEnabled toggles the engine kill-switch. Independent of consent: a host
// can disable analytics entirely without touching the user's consent record.
func (s *Settings) SetEnabled(v bool) { s.enabled = v }

// IsEnabled reports whether the engine is allowed to operate at all.
func (s *Settings) IsEnabled() bool { return s.enabled }

// SetConsent records the user's consent decision.
func (s *Settings) SetConsent(v bool) error {
	s.consent = v
	if err := s.store.Set(keyConsent, fmt.Sprintf("%t", v)); err != nil {
		return fmt.Errorf("persist consent: %w", err)
	}
	return nil
}

// HasConsent reports whether the user has opted in to analytics.
func (s *Settings) HasConsent() bool { return s.consent }

// SetPreferences merges a partial update into the current preferences and
// persists the result.
func (s *Settings) SetPreferences(patch PreferencesPatch) error {
	if patch.ShareDemographics != nil {
		s.prefs.ShareDemographics = *patch.ShareDemographics
	}
	if patch.AllowPersonalization != nil {
		s.prefs.AllowPersonalization = *patch.AllowPersonalization
	}
	if patch.EncryptionLevel != nil {
		s.prefs.EncryptionLevel = normalizeLevel(*patch.EncryptionLevel)
	}
	if patch.Region != nil {
		s.prefs.Region = *patch.Region
	}
	if patch.AgeGroup != nil {
		s.prefs.AgeGroup = *patch.AgeGroup
	}

	raw, err := json.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := s.store.Set(keyPreferences, string(raw)); err != nil {
		return fmt.Errorf("persist preferences: %w", err)
	}
	return nil
}

// GetPreferences returns a copy of the current preferences.
func (s *Settings) GetPreferences() Preferences { return s.prefs }

// Secrets returns the device secret material.
func (s *Settings) Secrets() SecretMaterial { return s.secrets }

// loadOrCreateSecrets restores the three device secrets, generating and
// persisting any that are missing. Partial loss (e.g. one key wiped) just
// regenerates that key; anonymized-identity linkage breaks, nothing else.
func (s *Settings) loadOrCreateSecrets() error {
	var err error
	if s.secrets.PrimaryAnonKey, err = s.loadOrCreateSecret(keyAnonPrimary); err != nil {
		return err
	}
	if s.secrets.SecondaryAnonKey, err = s.loadOrCreateSecret(keyAnonSecondary); err != nil {
		return err
	}
	if s.secrets.EncryptionKey, err = s.loadOrCreateSecret(keyCipherSecret); err != nil {
		return err
	}
	return nil
}

func (s *Settings) loadOrCreateSecret(key string) (string, error) {
	v, ok, err := s.store.Get(key)
	if err != nil {
		return "", fmt.Errorf("load secret %s: %w", key, err)
	}
	if ok && v != "" {
		return v, nil
	}

	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate secret: %w", err)
	}
	secret := hex.EncodeToString(buf)
	if err := s.store.Set(key, secret); err != nil {
		return "", fmt.Errorf("persist secret %s: %w", key, err)
	}
	return secret, nil
}

func (s *Settings) loadConsent() {
	v, ok, err := s.store.Get(keyConsent)
	if err != nil {
		warnf("load consent: %v", err)
		return
	}
	s.consent = ok && v == "true"
}

// loadPreferences restores persisted preferences. A blob that doesn't parse
// or doesn't match the expected shape resets both preferences and consent
// (fail-closed) and is logged, never surfaced.
func (s *Settings) loadPreferences() {
	raw, ok, err := s.store.Get(keyPreferences)
	if err != nil {
		warnf("load preferences: %v", err)
		return
	}
	if !ok {
		return
	}

	if err := ValidatePreferencesJSON(raw); err != nil {
		warnf("preferences blob rejected, resetting consent: %v", err)
		s.prefs = DefaultPreferences()
		s.consent = false
		s.store.Set(keyConsent, "false")
		return
	}

	var p Preferences
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		warnf("preferences blob unreadable, resetting consent: %v", err)
		s.prefs = DefaultPreferences()
		s.consent = false
		s.store.Set(keyConsent, "false")
		return
	}
	p.EncryptionLevel = normalizeLevel(p.EncryptionLevel)
	s.prefs = p
}

func normalizeLevel(l cipher.Level) cipher.Level {
	if l == cipher.LevelEnhanced {
		return cipher.LevelEnhanced
	}
	return cipher.LevelStandard
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
