package timeline

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/okian/matchline/internal/domain/model"
	"github.com/okian/matchline/internal/domain/timex"
)

// phase is one entry of the fixed match-phase sequence. Phases with a
// window collect the events whose base minute falls inside it; terminal
// phases only emit their stop marker.
type phase struct {
	name       model.StopName
	raw        string // marker text in the source document
	start, end int
	terminal   bool
}

// phases is the ordered phase table the segmenter walks. Full time is
// held separately because the shootout, when present, precedes it.
var phases = []phase{
	{name: model.Kickoff, raw: rawKickoff, start: 1, end: 45},
	{name: model.HalfTime, raw: rawHalfTime, start: 46, end: 90},
	{name: model.ExtraTimeFirstStart, raw: rawExtraTimeFirstStart, start: 91, end: 105},
	{name: model.ExtraTimeSecondStart, raw: rawExtraTimeSecondStart, start: 106, end: 120},
	{name: model.ExtraTimeOver, raw: rawExtraTimeOver, terminal: true},
}

var fullTime = phase{name: model.FullTime, raw: rawFullTime, terminal: true}

// timedEntry pairs a pool entry with its parsed clock value so events and
// timed stop markers sort and window-match uniformly.
type timedEntry struct {
	at    timex.Expression
	entry model.TimelineEntry
}

// buildPool merges extracted events and timed stop markers into one pool
// ordered ascending by clock value.
func buildPool(events []model.Event, timedStops []model.PeriodStop) []timedEntry {
	pool := make([]timedEntry, 0, len(events)+len(timedStops))
	for _, e := range events {
		pool = append(pool, timedEntry{at: timex.Parse(e.Time), entry: e})
	}
	for _, s := range timedStops {
		pool = append(pool, timedEntry{at: timex.Parse(s.Time), entry: s})
	}
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].at.Less(pool[j].at) })
	return pool
}

// segment walks the fixed phase sequence and produces the chronological
// (ascending) timeline: each observed stop marker, followed by the
// not-yet-emitted pool entries inside its window, then the shootout if
// present, then the full-time marker if observed. Stops absent from the
// document are skipped; no stop name or pool entry is emitted twice.
func segment(stops map[model.StopName]model.PeriodStop, pool []timedEntry, shootout *model.Shootout) []model.TimelineEntry {
	out := make([]model.TimelineEntry, 0, len(pool)+len(stops)+1)
	emitted := make([]bool, len(pool))

	for _, p := range phases {
		stop, ok := stops[p.name]
		if !ok {
			continue
		}
		out = append(out, stop)
		if p.terminal {
			continue
		}
		for i := range pool {
			if emitted[i] || !pool[i].at.InRange(p.start, p.end) {
				continue
			}
			emitted[i] = true
			out = append(out, pool[i].entry)
		}
	}

	if shootout != nil {
		out = append(out, *shootout)
	}
	if stop, ok := stops[fullTime.name]; ok {
		out = append(out, stop)
	}
	return out
}

// rawStopNames maps source marker text to canonical stop names.
var rawStopNames = map[string]model.StopName{
	rawKickoff:              model.Kickoff,
	rawHalfTime:             model.HalfTime,
	rawExtraTimeFirstStart:  model.ExtraTimeFirstStart,
	rawExtraTimeSecondStart: model.ExtraTimeSecondStart,
	rawExtraTimeOver:        model.ExtraTimeOver,
	rawFullTime:             model.FullTime,
}

var scoreDashRe = regexp.MustCompile(`\s*-\s*`)
var spaceRunRe = regexp.MustCompile(`\s+`)

// extractNamedStops collects the named period-boundary markers, keyed by
// canonical name, with their optional score snapshot. Markers carrying a
// clock value belong to the timed pool and are skipped here.
func extractNamedStops(doc *goquery.Document) map[model.StopName]model.PeriodStop {
	stops := make(map[model.StopName]model.PeriodStop)
	doc.Find("div.match-event-item.start-end-match").Each(func(_ int, item *goquery.Selection) {
		title := strings.TrimSpace(item.Find("span.title").First().Text())
		if title == "" || strings.Contains(title, minuteMark) {
			return
		}
		name, ok := rawStopNames[title]
		if !ok {
			return
		}
		stop := model.PeriodStop{Name: name}
		if score := item.Find("div.m-result").First(); score.Length() > 0 {
			raw := strings.TrimSpace(score.Text())
			raw = scoreDashRe.ReplaceAllString(raw, " - ")
			stop.Score = strings.TrimSpace(spaceRunRe.ReplaceAllString(raw, " "))
		}
		stops[name] = stop
	})
	return stops
}

// extractTimedStops collects the stop markers that carry their own clock
// value ("45’..."); they are merged into the event pool and windowed like
// any other entry.
func extractTimedStops(doc *goquery.Document) []model.PeriodStop {
	var stops []model.PeriodStop
	doc.Find("div.match-event-item.start-end-match").Each(func(_ int, item *goquery.Selection) {
		title := strings.TrimSpace(item.Find("span.title").First().Text())
		if !strings.Contains(title, minuteMark) {
			return
		}
		timePart, namePart, _ := strings.Cut(title, minuteMark)
		stops = append(stops, model.PeriodStop{
			Name: model.StopName(strings.TrimSpace(namePart)),
			Time: strings.TrimSpace(timePart),
		})
	})
	return stops
}
