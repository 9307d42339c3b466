package model

import "time"

// FixtureStatus is the coarse state of a listed fixture.
type FixtureStatus string

// Fixture statuses used by the listing endpoint.
const (
	FixtureUpcoming  FixtureStatus = "upcoming"
	FixtureLive      FixtureStatus = "live"
	FixtureFinished  FixtureStatus = "finished"
	FixturePostponed FixtureStatus = "postponed"
)

// Fixture is one row of the fixture listing. KickoffAt is the parsed
// form of KickoffRaw and is the zero time when parsing failed.
type Fixture struct {
	ID         string        `json:"id"`
	League     string        `json:"league,omitempty"`
	HomeTeam   string        `json:"home_team"`
	AwayTeam   string        `json:"away_team"`
	HomeScore  string        `json:"home_score,omitempty"`
	AwayScore  string        `json:"away_score,omitempty"`
	KickoffRaw string        `json:"kickoff,omitempty"`
	KickoffAt  time.Time     `json:"-"`
	Status     FixtureStatus `json:"status"`
}
