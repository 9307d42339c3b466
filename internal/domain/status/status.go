// Package status maps the source feed's numeric match-status codes to
// display text and a liveness flag.
package status

// Code is the numeric match-status identifier carried by the detail feed.
type Code int

// Known status codes. The source skips 6.
const (
	NotStarted        Code = 0
	FirstHalf         Code = 1
	HalfTime          Code = 2
	SecondHalf        Code = 3
	Finished          Code = 4
	ToExtraTime       Code = 5
	ExtraTimeFirst    Code = 7
	ExtraTimeFirstEnd Code = 8
	ExtraTimeSecond   Code = 9
	ExtraTimeEnd      Code = 10
	PenaltyShootout   Code = 11
	Suspended         Code = 12
)

// Status is the resolved display state for a code.
type Status struct {
	Text string
	Live bool
}

// unknownText is returned for codes outside the table.
const unknownText = "unknown"

var table = map[Code]string{
	NotStarted:        "not started",
	FirstHalf:         "first half",
	HalfTime:          "half-time",
	SecondHalf:        "second half",
	Finished:          "finished",
	ToExtraTime:       "transitioning to extra time",
	ExtraTimeFirst:    "extra time first half",
	ExtraTimeFirstEnd: "end of extra time first half",
	ExtraTimeSecond:   "extra time second half",
	ExtraTimeEnd:      "end of extra time second half",
	PenaltyShootout:   "penalty shootout",
	Suspended:         "match suspended",
}

// notLive holds the codes for which the match is not in progress.
// Everything else, including transition codes, counts as live.
var notLive = map[Code]bool{
	NotStarted: true,
	Finished:   true,
	Suspended:  true,
}

// Lookup resolves a status code to its display text and liveness flag.
// Unknown codes resolve to "unknown" and not live.
func Lookup(code Code) Status {
	text, ok := table[code]
	if !ok {
		return Status{Text: unknownText, Live: false}
	}
	return Status{Text: text, Live: !notLive[code]}
}

// Terminal reports whether the code marks a match that has concluded or
// been abandoned. Winner resolution only applies to terminal matches.
func Terminal(code Code) bool {
	return code == Finished || code == Suspended
}
