package domain

const (
	MatchModeComplementary = "complementary"
	MatchModeSearch        = "search"
)

// ScoredCandidate pairs a member with a ranking score for one viewer.
// It is computed per query and never persisted.
type ScoredCandidate struct {
	Member Member `json:"member"`
	Score  int    `json:"score"`
}
