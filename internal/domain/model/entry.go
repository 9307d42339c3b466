// Package model contains domain models passed between layers.
package model

import "encoding/json"

// Side identifies which team a timeline entry belongs to.
type Side string

// Team sides as exposed by the API.
const (
	Home Side = "Home"
	Away Side = "Away"
)

// EntryKind discriminates the timeline entry variants.
type EntryKind string

// Timeline entry kinds.
const (
	KindEvent    EntryKind = "event"
	KindStop     EntryKind = "stop"
	KindShootout EntryKind = "pens"
)

// TimelineEntry is the tagged union over match events, period-boundary
// stops and the penalty shootout. The assembler consumes entries
// polymorphically; serialization carries a flat "type" discriminant.
type TimelineEntry interface {
	Kind() EntryKind
}

// EventType classifies a match event.
type EventType string

// Event types as exposed by the API. The values double as the JSON
// discriminant for event entries.
const (
	Goal                EventType = "goal"
	PenaltyGoal         EventType = "goal_penalty"
	OwnGoal             EventType = "own_goal"
	YellowCard          EventType = "yellow card"
	SecondYellowRedCard EventType = "second yellow red card"
	RedCard             EventType = "red card"
	Substitution        EventType = "substitution"
)

// Event is a single extracted match event. Only the fields relevant to
// its type are populated: Player for cards, Scorer and Assist for goals,
// PlayerIn and PlayerOut for substitutions.
type Event struct {
	Type      EventType `json:"type"`
	Team      Side      `json:"team"`
	Time      string    `json:"time,omitempty"`
	Player    string    `json:"player_name,omitempty"`
	Assist    string    `json:"assist,omitempty"`
	PlayerIn  string    `json:"player_in,omitempty"`
	PlayerOut string    `json:"player_out,omitempty"`
}

// Kind implements TimelineEntry.
func (Event) Kind() EntryKind { return KindEvent }

// StopName is a canonical period-boundary name.
type StopName string

// The fixed set of period stops, in match order.
const (
	Kickoff              StopName = "kickoff"
	HalfTime             StopName = "half-time"
	ExtraTimeFirstStart  StopName = "extra time first half"
	ExtraTimeSecondStart StopName = "extra time second half"
	ExtraTimeOver        StopName = "end of extra time"
	FullTime             StopName = "full time"
)

// PeriodStop is a named boundary marker anchoring a timeline segment.
// Time is set only for markers that carry their own clock value; Score is
// the optional score snapshot at the boundary.
type PeriodStop struct {
	Name  StopName `json:"name"`
	Time  string   `json:"time,omitempty"`
	Score string   `json:"score,omitempty"`
}

// Kind implements TimelineEntry.
func (PeriodStop) Kind() EntryKind { return KindStop }

// MarshalJSON injects the "stop" discriminant alongside the flat fields.
func (s PeriodStop) MarshalJSON() ([]byte, error) {
	type alias PeriodStop
	return json.Marshal(struct {
		Type EntryKind `json:"type"`
		alias
	}{Type: KindStop, alias: alias(s)})
}

// KickResult is the outcome of a single penalty kick.
type KickResult string

// Penalty kick outcomes.
const (
	KickScored KickResult = "scored"
	KickMissed KickResult = "missed"
)

// PenaltyKick pairs a taker with the outcome of their kick.
type PenaltyKick struct {
	Player string     `json:"player"`
	Result KickResult `json:"result"`
}

// Shootout holds the parsed penalty-shootout block: the final "H - A"
// score text and the ordered kicks per team.
type Shootout struct {
	Score  string                 `json:"pens_score"`
	Takers map[Side][]PenaltyKick `json:"penalty_takers"`
}

// Kind implements TimelineEntry.
func (Shootout) Kind() EntryKind { return KindShootout }

// MarshalJSON injects the "pens" discriminant alongside the flat fields.
func (s Shootout) MarshalJSON() ([]byte, error) {
	type alias Shootout
	return json.Marshal(struct {
		Type EntryKind `json:"type"`
		alias
	}{Type: KindShootout, alias: alias(s)})
}
