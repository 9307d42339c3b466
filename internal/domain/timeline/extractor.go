package timeline

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/okian/matchline/internal/domain/model"
	"github.com/okian/matchline/internal/domain/timex"
	"github.com/okian/matchline/pkg/metrics"
)

// extractEvents classifies every event fragment in the document into a
// typed, deduplicated event set, sorted ascending by parsed clock value.
// Fragments with no team-side marker, an unknown action identifier or
// neither a time nor a type are dropped; a fragment whose full field set
// matches an already extracted event collapses into it.
func extractEvents(doc *goquery.Document) []model.Event {
	seen := make(map[string]bool)
	var events []model.Event

	doc.Find("div.match-event-item").Each(func(_ int, item *goquery.Selection) {
		ev, ok := classifyFragment(item)
		if !ok {
			metrics.RecordFragmentDropped()
			return
		}
		key := identityKey(ev)
		if seen[key] {
			metrics.RecordFragmentDuplicate()
			return
		}
		seen[key] = true
		events = append(events, ev)
	})

	sort.SliceStable(events, func(i, j int) bool {
		return timex.Parse(events[i].Time).Less(timex.Parse(events[j].Time))
	})
	return events
}

// classifyFragment reads one raw fragment into a typed event. The second
// return value is false when the fragment carries no usable event.
func classifyFragment(item *goquery.Selection) (model.Event, bool) {
	var ev model.Event

	switch {
	case item.HasClass("for-team-a"):
		ev.Team = model.Home
	case item.HasClass("for-team-b"):
		ev.Team = model.Away
	default:
		return model.Event{}, false
	}

	link := item.Find("a[event_name]").First()
	if link.Length() == 0 {
		return model.Event{}, false
	}
	action, _ := link.Attr("event_name")
	playerA, _ := link.Attr("player_a")
	playerS, _ := link.Attr("player_s")

	switch action {
	case actionYellowCard:
		ev.Type = model.YellowCard
		ev.Player = playerA
	case actionSubstitution:
		ev.Type = model.Substitution
		ev.PlayerIn = playerS
		ev.PlayerOut = playerA
	case actionGoal, actionPenaltyGoal, actionOwnGoal:
		switch action {
		case actionGoal:
			ev.Type = model.Goal
		case actionPenaltyGoal:
			ev.Type = model.PenaltyGoal
		case actionOwnGoal:
			ev.Type = model.OwnGoal
		}
		ev.Player = playerA
		ev.Assist = playerS
	case actionRedCard:
		ev.Type = model.RedCard
		if item.Find(`path[fill="` + secondYellowFill + `"]`).Length() > 0 {
			ev.Type = model.SecondYellowRedCard
		}
		ev.Player = playerA
	default:
		// Unknown action identifiers are dropped, forward-compatible.
		return model.Event{}, false
	}

	ev.Time = fragmentTime(item)
	if ev.Time == "" && ev.Type == "" {
		return model.Event{}, false
	}
	return ev, true
}

// fragmentTime reads the display time from the fragment's time label,
// stripping the trailing minute mark.
func fragmentTime(item *goquery.Selection) string {
	t := item.Find("div.time").First()
	if t.Length() == 0 {
		return ""
	}
	return strings.ReplaceAll(strings.TrimSpace(t.Text()), minuteMark, "")
}

// identityKey builds the canonical dedup key for an event: its non-empty
// (field, value) pairs, sorted, so that two fragments describing the same
// logical event compare equal regardless of attribute order.
func identityKey(e model.Event) string {
	pairs := make([]string, 0, 7)
	add := func(field, value string) {
		if value != "" {
			pairs = append(pairs, field+"="+value)
		}
	}
	add("type", string(e.Type))
	add("team", string(e.Team))
	add("time", e.Time)
	add("player", e.Player)
	add("assist", e.Assist)
	add("player_in", e.PlayerIn)
	add("player_out", e.PlayerOut)
	sort.Strings(pairs)
	return strings.Join(pairs, "\x1f")
}
