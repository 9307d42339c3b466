package model

// TeamsInfo carries the identity fields scraped from the match page,
// supplied to the assembler alongside the detail feed.
type TeamsInfo struct {
	HomeTeam  string
	HomeLogo  string
	AwayTeam  string
	AwayLogo  string
	StartTime string // already normalized by the source layer
}

// MatchInfo is the merged header block of a match: identity, status,
// clocks, scores and the free-form supplementary facts panel.
type MatchInfo struct {
	HomeTeam string `json:"home_team"`
	HomeLogo string `json:"home_logo"`
	AwayTeam string `json:"away_team"`
	AwayLogo string `json:"away_logo"`

	StartTime   string `json:"start_time,omitempty"`
	CurrentTime string `json:"current_time,omitempty"`
	Status      string `json:"status"`
	Live        bool   `json:"is_live"`

	HomeScore string `json:"home_score,omitempty"`
	AwayScore string `json:"away_score,omitempty"`
	HomeAgg   string `json:"home_agg,omitempty"`
	AwayAgg   string `json:"away_agg,omitempty"`
	HomePens  string `json:"home_pens,omitempty"`
	AwayPens  string `json:"away_pens,omitempty"`

	// Winner is resolved only for finished or suspended matches.
	Winner Side `json:"winner,omitempty"`

	// Facts is the supplementary key->value panel scraped as-is.
	Facts map[string]string `json:"facts,omitempty"`
}

// StatPair holds one two-sided statistic. Values are int, float64 or the
// original string when the source text is not numeric.
type StatPair struct {
	Home any `json:"home"`
	Away any `json:"away"`
}

// MatchDetail is the full assembled output for one match: header info,
// the labeled statistics map and the timeline in most-recent-first order.
type MatchDetail struct {
	Info   MatchInfo           `json:"info"`
	Stats  map[string]StatPair `json:"stats"`
	Events []TimelineEntry     `json:"events"`
}
