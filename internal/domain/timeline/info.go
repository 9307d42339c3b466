package timeline

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/okian/matchline/internal/domain/model"
	"github.com/okian/matchline/internal/domain/status"
	"github.com/okian/matchline/internal/domain/timex"
)

// unknownCode is used when the document carries no parsable status value.
// It resolves to "unknown" in the registry and has no period base.
const unknownCode status.Code = -1

// extractInfo merges the caller-supplied team identity with the status,
// clock, score and supplementary-facts fields of the detail document.
// The winner slot is resolved only for terminal statuses.
func extractInfo(doc *goquery.Document, teams model.TeamsInfo) model.MatchInfo {
	code := statusCode(doc)
	st := status.Lookup(code)

	info := model.MatchInfo{
		HomeTeam:  teams.HomeTeam,
		HomeLogo:  teams.HomeLogo,
		AwayTeam:  teams.AwayTeam,
		AwayLogo:  teams.AwayLogo,
		StartTime: teams.StartTime,
		Status:    st.Text,
		Live:      st.Live,
		Facts:     extractFacts(doc),
	}

	if current, ok := timex.Current(code, inputValue(doc, "match_time")); ok {
		info.CurrentTime = current
	}

	match := doc.Find("div.match-details").First()
	if match.Length() == 0 {
		return info
	}

	info.HomeScore, info.AwayScore = scorePair(match.Find("div.main-result").First())
	info.HomeAgg, info.AwayAgg = scorePair(match.Find("div.other-result.agg.live-match-agg").First())
	info.HomePens, info.AwayPens = pensPair(match)

	if status.Terminal(code) {
		info.Winner = winnerSide(match)
	}
	return info
}

// statusCode reads the numeric status from the hidden input. Absent or
// malformed values resolve to the unknown code.
func statusCode(doc *goquery.Document) status.Code {
	v := inputValue(doc, "match_status")
	if v == "" {
		return unknownCode
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return unknownCode
	}
	return status.Code(n)
}

// inputValue reads the value attribute of an <input> by id.
func inputValue(doc *goquery.Document, id string) string {
	v, _ := doc.Find("input#" + id).First().Attr("value")
	return v
}

// scorePair reads the two bold score figures of a result element. A
// missing element or fewer than two figures yields empty values.
func scorePair(result *goquery.Selection) (home, away string) {
	b := result.Find("b")
	if b.Length() < 2 {
		return "", ""
	}
	return strings.TrimSpace(b.Eq(0).Text()), strings.TrimSpace(b.Eq(1).Text())
}

// pensPair locates the secondary result element labeled as the shootout
// score and reads its two figures.
func pensPair(match *goquery.Selection) (home, away string) {
	match.Find("div.other-result").EachWithBreak(func(_ int, div *goquery.Selection) bool {
		span := div.Find("span").First()
		if span.Length() == 0 || !strings.Contains(span.Text(), pensScoreLabel) {
			return true
		}
		home, away = scorePair(div)
		return home == "" && away == ""
	})
	return home, away
}

// winnerSide reports which positional slot carries the winner marker on
// the score element, empty when no marker is present.
func winnerSide(match *goquery.Selection) model.Side {
	win := match.Find("b.win").First()
	if win.Length() == 0 {
		return ""
	}
	siblings := win.Parent().Find("b")
	if siblings.Length() < 2 {
		return ""
	}
	if siblings.Get(0) == win.Get(0) {
		return model.Home
	}
	return model.Away
}

// extractFacts reads the supplementary-facts panel as arbitrary
// title->content pairs. Hyperlinks inside the content flatten to their
// text. A missing panel yields nil.
func extractFacts(doc *goquery.Document) map[string]string {
	var facts map[string]string
	doc.Find("div.match-block-item.pt-2").EachWithBreak(func(_ int, block *goquery.Selection) bool {
		title := strings.TrimSpace(block.Find("div.section-title").First().Text())
		if title != factsSectionTitle {
			return true
		}
		facts = make(map[string]string)
		block.Find("div.match-info-item").Each(func(_ int, item *goquery.Selection) {
			k := strings.TrimSpace(item.Find("div.title").First().Text())
			v := strings.TrimSpace(item.Find("div.content").First().Text())
			if k != "" && v != "" {
				facts[k] = v
			}
		})
		return false
	})
	if len(facts) == 0 {
		return nil
	}
	return facts
}
