package timeline

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/okian/matchline/internal/domain/model"
)

var digitsRe = regexp.MustCompile(`\d+`)

// parseShootout reads the optional penalty-shootout block. A missing
// block yields nil, not an error.
func parseShootout(doc *goquery.Document) *model.Shootout {
	block := doc.Find(".match-event-item.penalties").First()
	if block.Length() == 0 {
		return nil
	}

	shootout := &model.Shootout{
		Score:  shootoutScore(block),
		Takers: make(map[model.Side][]model.PenaltyKick),
	}

	block.Find(".team-item").Each(func(_ int, team *goquery.Selection) {
		side := model.Away
		if team.HasClass("team-a") {
			side = model.Home
		}
		shootout.Takers[side] = teamKicks(team)
	})
	return shootout
}

// shootoutScore joins the first two integers of the block's result text
// as "H - A". A single integer stands alone; none yields empty.
func shootoutScore(block *goquery.Selection) string {
	result := block.Find(".result").First()
	if result.Length() == 0 {
		return ""
	}
	scores := digitsRe.FindAllString(strings.TrimSpace(result.Text()), -1)
	switch {
	case len(scores) >= 2:
		return scores[0] + " - " + scores[1]
	case len(scores) == 1:
		return scores[0]
	}
	return ""
}

// teamKicks zips the ordered taker names with the parallel outcome list.
// The two lists are scraped independently; when their lengths differ the
// result truncates to the shorter list.
func teamKicks(team *goquery.Selection) []model.PenaltyKick {
	var names []string
	team.Find("ol.shots-text li").Each(func(_ int, li *goquery.Selection) {
		names = append(names, cleanName(li.Text()))
	})

	var results []model.KickResult
	team.Find(".p-shot-item").Each(func(_ int, shot *goquery.Selection) {
		if shot.HasClass("success") {
			results = append(results, model.KickScored)
		} else {
			results = append(results, model.KickMissed)
		}
	})

	n := len(names)
	if len(results) < n {
		n = len(results)
	}
	kicks := make([]model.PenaltyKick, 0, n)
	for i := 0; i < n; i++ {
		kicks = append(kicks, model.PenaltyKick{Player: names[i], Result: results[i]})
	}
	return kicks
}

// cleanName truncates a scraped taker name at the first parenthesis or
// line break and trims surrounding space.
func cleanName(text string) string {
	if i := strings.IndexAny(text, "(\n"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}
