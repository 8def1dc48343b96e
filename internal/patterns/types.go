package patterns

// Type classifies a recurring difficulty pattern.
type Type string

const (
	TypePhonetic   Type = "phonetic"
	TypeVisual     Type = "visual"
	TypeStructural Type = "structural"
	TypeSemantic   Type = "semantic"
	TypeMemory     Type = "memory"
)

// Pattern is one detected difficulty pattern. Derived, recomputed on every
// query, never persisted.
type Pattern struct {
	Type                Type     `json:"type"`
	Confidence          float64  `json:"confidence"` // 0–100
	RelatedItemIDs      []string `json:"relatedItemIds"`
	Description         string   `json:"description"`
	RecommendedApproach string   `json:"recommendedApproach"`
}
