package source

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/okian/matchline/internal/domain/model"
	"github.com/okian/matchline/pkg/logger"
)

var matchIDRe = regexp.MustCompile(`/match/(\d+)`)

// Fixtures fetches and scrapes the day's fixture listing. Rows without a
// resolvable match id are skipped. Ordering and capping are the caller's
// concern.
func (c *Client) Fixtures(ctx context.Context) ([]model.Fixture, error) {
	doc, err := c.get(ctx, c.base+"/ar/matches", docFixtures, ErrFixtureFetch)
	if err != nil {
		return nil, err
	}

	var fixtures []model.Fixture
	doc.Find("div.match-item").Each(func(_ int, item *goquery.Selection) {
		f, ok := c.scrapeFixture(item)
		if !ok {
			return
		}
		fixtures = append(fixtures, f)
	})

	c.logger.Debug(ctx, "scraped fixture listing", logger.Int("count", len(fixtures)))
	return fixtures, nil
}

// scrapeFixture reads one listing row. The match id comes from the row's
// detail link; the coarse status from the row's state classes.
func (c *Client) scrapeFixture(item *goquery.Selection) (model.Fixture, bool) {
	href, _ := item.Find("a").First().Attr("href")
	m := matchIDRe.FindStringSubmatch(href)
	if m == nil {
		return model.Fixture{}, false
	}

	f := model.Fixture{
		ID:       m[1],
		League:   strings.TrimSpace(item.Find(".championship-title").First().Text()),
		HomeTeam: strings.TrimSpace(item.Find(".team-a .team-name").First().Text()),
		AwayTeam: strings.TrimSpace(item.Find(".team-b .team-name").First().Text()),
		Status:   fixtureStatus(item),
	}

	scores := item.Find(".match-result b")
	if scores.Length() >= 2 {
		f.HomeScore = strings.TrimSpace(scores.Eq(0).Text())
		f.AwayScore = strings.TrimSpace(scores.Eq(1).Text())
	}

	if raw, ok := item.Attr("data-start"); ok {
		f.KickoffRaw = c.normalizeStartTime(strings.TrimSpace(raw))
		if t, err := time.Parse(layout24h, f.KickoffRaw); err == nil {
			f.KickoffAt = t
		}
	}
	return f, true
}

// fixtureStatus maps a row's state classes to the coarse listing status.
func fixtureStatus(item *goquery.Selection) model.FixtureStatus {
	switch {
	case item.HasClass("live"):
		return model.FixtureLive
	case item.HasClass("finished"):
		return model.FixtureFinished
	case item.HasClass("postponed"):
		return model.FixturePostponed
	}
	return model.FixtureUpcoming
}
