package insights

// Type classifies an insight for the consuming UI.
type Type string

const (
	TypeStrength       Type = "strength"
	TypeWeakness       Type = "weakness"
	TypePattern        Type = "pattern"
	TypeRecommendation Type = "recommendation"
)

// Insight is one human-readable finding. Derived, ephemeral.
type Insight struct {
	Type               Type     `json:"type"`
	Description        string   `json:"description"`
	Score              float64  `json:"score"` // 0–100
	RelatedItemIDs     []string `json:"relatedItemIds,omitempty"`
	RecommendedActions []string `json:"recommendedActions,omitempty"`
	PersonalTip        string   `json:"personalTip,omitempty"`
	AdaptiveLevel      string   `json:"adaptiveLevel,omitempty"`
	ConfidenceScore    float64  `json:"confidenceScore,omitempty"`
}
