package models

// ConsensusResult is the derived classification consensus for one target. It
// is recomputed from the countable vote set, never stored authoritatively.
// Classification is nil below quorum.
type ConsensusResult struct {
	TargetID       string                 `json:"target_id"`
	Classification *Classification        `json:"classification"`
	DisplayName    string                 `json:"display_name,omitempty"`
	TotalVotes     int                    `json:"total_votes"`
	Counts         map[Classification]int `json:"counts"`
	RawScore       float64                `json:"raw_score"`
}

type RatingConsensus struct {
	Rating    int `json:"rating"`
	VoteCount int `json:"vote_count"`
}
