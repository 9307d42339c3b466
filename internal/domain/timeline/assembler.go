package timeline

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/okian/matchline/internal/domain/model"
	"github.com/okian/matchline/pkg/metrics"
)

// Assemble builds the full match detail from one detail document and the
// caller-supplied team identity. It is a pure single-pass function: given
// identical input it produces identical output, holds no state across
// calls and performs no I/O. The timeline is returned most-recent-first.
//
// Context is accepted first per the project-wide convention; assembly
// never blocks so it is currently unused.
func Assemble(_ context.Context, doc *goquery.Document, teams model.TeamsInfo) model.MatchDetail {
	info := extractInfo(doc, teams)
	stats := extractStats(doc)

	events := extractEvents(doc)
	pool := buildPool(events, extractTimedStops(doc))
	stops := extractNamedStops(doc)
	shootout := parseShootout(doc)

	entries := segment(stops, pool, shootout)
	reverse(entries)

	metrics.RecordMatchAssembled()
	return model.MatchDetail{
		Info:   info,
		Stats:  stats,
		Events: entries,
	}
}

// reverse flips the chronological timeline into display order.
func reverse(entries []model.TimelineEntry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}
