package source

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/okian/matchline/internal/domain/model"
)

// Arabic 12-hour markers used by the source's start-time strings.
const (
	arabicPM = "مساءً"
	arabicAM = "صباحاً"
)

// Start-time layouts. The source renders either a 12-hour form with the
// Arabic AM/PM words or a plain 24-hour form.
const (
	layout12h     = "2006-01-02 3:04 PM"
	layout24h     = "2006-01-02 15:04"
	logoSmallPath = "teams/64/"
	logoLargePath = "teams/128/"
)

// scrapeTeams reads team identity and the normalized start time from the
// match page. Missing elements yield empty fields, never an error: the
// detail feed is still worth assembling without them.
func (c *Client) scrapeTeams(page *goquery.Document) model.TeamsInfo {
	var info model.TeamsInfo

	teams := page.Find(".team-item")
	if teams.Length() >= 1 {
		info.HomeTeam, info.HomeLogo = teamIdentity(teams.Eq(0))
	}
	if teams.Length() >= 2 {
		info.AwayTeam, info.AwayLogo = teamIdentity(teams.Eq(1))
	}

	raw := strings.TrimSpace(page.Find(".time-title").First().Text())
	info.StartTime = c.normalizeStartTime(raw)
	return info
}

// teamIdentity reads one team's display name and logo. The name falls
// back to the logo's title attribute; the logo is upgraded to the large
// asset variant when the small path fragment is present.
func teamIdentity(team *goquery.Selection) (name, logo string) {
	name = strings.TrimSpace(team.Find("h3").First().Text())
	img := team.Find("img").First()
	if name == "" {
		name, _ = img.Attr("title")
		name = strings.TrimSpace(name)
	}
	logo, _ = img.Attr("src")
	return name, upgradeLogo(strings.TrimSpace(logo))
}

// upgradeLogo swaps the small logo asset for the large variant.
func upgradeLogo(url string) string {
	if strings.Contains(url, logoSmallPath) {
		return strings.Replace(url, logoSmallPath, logoLargePath, 1)
	}
	return url
}

// normalizeStartTime shifts the source-local start time by the display
// offset and renders it in 24-hour form. A 12-hour input with Arabic
// AM/PM words is converted first. Unparsable input is returned unchanged
// rather than failing.
func (c *Client) normalizeStartTime(raw string) string {
	if raw == "" {
		return ""
	}

	s := strings.ReplaceAll(raw, arabicPM, "PM")
	s = strings.ReplaceAll(s, arabicAM, "AM")

	var (
		t   time.Time
		err error
	)
	if strings.Contains(s, "PM") || strings.Contains(s, "AM") {
		t, err = time.Parse(layout12h, strings.TrimSpace(s))
	} else {
		t, err = time.Parse(layout24h, raw)
	}
	if err != nil {
		return raw
	}
	return t.Add(c.timeOffset).Format(layout24h)
}
