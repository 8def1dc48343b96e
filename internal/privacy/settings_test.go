package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelar/wordsight/internal/cipher"
	"github.com/avelar/wordsight/internal/kv"
)

func TestNewSettings_GeneratesSecretsOnce(t *testing.T) {
	store := kv.NewMemory()

	s1, err := NewSettings(store)
	require.NoError(t, err)
	sec := s1.Secrets()
	assert.NotEmpty(t, sec.PrimaryAnonKey)
	assert.NotEmpty(t, sec.SecondaryAnonKey)
	assert.NotEmpty(t, sec.EncryptionKey)
	assert.NotEqual(t, sec.PrimaryAnonKey, sec.SecondaryAnonKey)

	// A second load on the same store sees the same material.
	s2, err := NewSettings(store)
	require.NoError(t, err)
	assert.Equal(t, sec, s2.Secrets())
}

func TestSettings_ConsentDefaultsClosed(t *testing.T) {
	s, err := NewSettings(kv.NewMemory())
	require.NoError(t, err)
	assert.False(t, s.HasConsent())
	assert.True(t, s.IsEnabled())
}

func TestSettings_ConsentPersists(t *testing.T) {
	store := kv.NewMemory()
	s, err := NewSettings(store)
	require.NoError(t, err)

	require.NoError(t, s.SetConsent(true))
	assert.True(t, s.HasConsent())

	reloaded, err := NewSettings(store)
	require.NoError(t, err)
	assert.True(t, reloaded.HasConsent())
}

func TestSettings_PreferencesMerge(t *testing.T) {
	store := kv.NewMemory()
	s, err := NewSettings(store)
	require.NoError(t, err)

	share := true
	require.NoError(t, s.SetPreferences(PreferencesPatch{ShareDemographics: &share}))

	level := cipher.LevelEnhanced
	require.NoError(t, s.SetPreferences(PreferencesPatch{EncryptionLevel: &level}))

	p := s.GetPreferences()
	assert.True(t, p.ShareDemographics, "earlier patch field survives later patch")
	assert.Equal(t, cipher.LevelEnhanced, p.EncryptionLevel)
	assert.False(t, p.AllowPersonalization)

	reloaded, err := NewSettings(store)
	require.NoError(t, err)
	assert.Equal(t, p, reloaded.GetPreferences())
}

func TestSettings_CorruptPreferencesFailClosed(t *testing.T) {
	store := kv.NewMemory()
	s, err := NewSettings(store)
	require.NoError(t, err)
	require.NoError(t, s.SetConsent(true))

	// Simulate a corrupted blob written by something else.
	require.NoError(t, store.Set("wordsight.preferences", `{"shareDemographics":"yes"}`))

	reloaded, err := NewSettings(store)
	require.NoError(t, err)
	assert.False(t, reloaded.HasConsent(), "corrupt preferences must reset consent")
	assert.Equal(t, DefaultPreferences(), reloaded.GetPreferences())
}

func TestSettings_KillSwitchIndependentOfConsent(t *testing.T) {
	s, err := NewSettings(kv.NewMemory())
	require.NoError(t, err)
	require.NoError(t, s.SetConsent(true))

	s.SetEnabled(false)
	assert.False(t, s.IsEnabled())
	assert.True(t, s.HasConsent(), "disabling the engine must not revoke consent")
}

func TestAnonymize_Deterministic(t *testing.T) {
	secrets := SecretMaterial{PrimaryAnonKey: "k1", SecondaryAnonKey: "k2"}

	a := Anonymize("learner-7", secrets)
	b := Anonymize("learner-7", secrets)
	assert.Equal(t, a, b)
	assert.Len(t, a, tokenLen)
}

func TestAnonymize_DifferentSecretsDifferentTokens(t *testing.T) {
	deviceA := SecretMaterial{PrimaryAnonKey: "k1", SecondaryAnonKey: "k2"}
	deviceB := SecretMaterial{PrimaryAnonKey: "k3", SecondaryAnonKey: "k4"}

	assert.NotEqual(t, Anonymize("learner-7", deviceA), Anonymize("learner-7", deviceB))
}

func TestAnonymize_DistinctIDsDistinctTokens(t *testing.T) {
	secrets := SecretMaterial{PrimaryAnonKey: "k1", SecondaryAnonKey: "k2"}
	assert.NotEqual(t, Anonymize("learner-7", secrets), Anonymize("learner-8", secrets))
}

func TestValidatePreferencesJSON(t *testing.T) {
	good := `{"shareDemographics":true,"allowPersonalization":false,"encryptionLevel":"enhanced"}`
	assert.NoError(t, ValidatePreferencesJSON(good))

	bad := []string{
		`not json`,
		`{"shareDemographics":1,"allowPersonalization":false,"encryptionLevel":"standard"}`,
		`{"shareDemographics":true,"allowPersonalization":false,"encryptionLevel":"military"}`,
		`{"allowPersonalization":false}`,
	}
	for _, b := range bad {
		assert.Error(t, ValidatePreferencesJSON(b), "blob %q should be rejected", b)
	}
}
