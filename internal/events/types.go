package events

import "time"

// Difficulty buckets an exercise by how hard it was presented.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Event is one anonymized learning attempt. Immutable once written; identity
// is (SessionID, ItemID, Timestamp).
type Event struct {
	UserToken         string     `json:"userToken"`
	SessionID         string     `json:"sessionId"`
	Timestamp         time.Time  `json:"timestamp"`
	LanguageID        string     `json:"languageId"`
	ItemID            string     `json:"itemId"`
	IsCorrect         bool       `json:"isCorrect"`
	AttemptDurationMs int        `json:"attemptDurationMs"`
	HintsUsed         int        `json:"hintsUsed"`
	Difficulty        Difficulty `json:"difficulty"`
	MistakePattern    string     `json:"mistakePattern,omitempty"`
	AttemptCount      int        `json:"attemptCount"`
	LettersCorrect    int        `json:"lettersCorrect"`

	// Present only if shareDemographics was true at write time.
	Region   string `json:"region,omitempty"`
	AgeGroup string `json:"ageGroup,omitempty"`
}
