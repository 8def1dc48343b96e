package privacy

import "github.com/avelar/wordsight/internal/cipher"

// Preferences are the user's privacy choices. They gate what the recorder is
// allowed to attach to events and how the event log is sealed at rest.
type Preferences struct {
	ShareDemographics    bool         `json:"shareDemographics"`
	AllowPersonalization bool         `json:"allowPersonalization"`
	EncryptionLevel      cipher.Level `json:"encryptionLevel"`
	Region               string       `json:"region,omitempty"`
	AgeGroup             string       `json:"ageGroup,omitempty"`
}

// DefaultPreferences is the fail-closed baseline: nothing shared, no
// personalization, standard encryption.
func DefaultPreferences() Preferences {
	return Preferences{
		ShareDemographics:    false,
		AllowPersonalization: false,
		EncryptionLevel:      cipher.LevelStandard,
	}
}

// PreferencesPatch is a partial update; nil fields keep their current value.
type PreferencesPatch struct {
	ShareDemographics    *bool
	AllowPersonalization *bool
	EncryptionLevel      *cipher.Level
	Region               *string
	AgeGroup             *string
}

// SecretMaterial holds the three device-local secrets. Generated once per
// device and never rotated automatically; deleting them breaks continuity of
// anonymized-identity linkage but is otherwise harmless.
type SecretMaterial struct {
	PrimaryAnonKey   string
	SecondaryAnonKey string
	EncryptionKey    string
}
