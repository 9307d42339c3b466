package timeline

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/okian/matchline/internal/domain/model"
)

// extractStats reads the optional statistics panel: the possession split
// plus every labeled two-sided metric row. A missing panel yields an
// empty map.
func extractStats(doc *goquery.Document) map[string]model.StatPair {
	stats := make(map[string]model.StatPair)
	section := doc.Find("div.tab-content-item.inner-match-tab-content.stats").First()
	if section.Length() == 0 {
		return stats
	}

	if possession := section.Find(".progress-wrapper").First(); possession.Length() > 0 {
		stats[possessionLabel] = model.StatPair{
			Home: parseMetric(possession.Find(".team-a").First().Text()),
			Away: parseMetric(possession.Find(".team-b").First().Text()),
		}
	}

	section.Find(".progress-state-item").Each(func(_ int, item *goquery.Selection) {
		title := strings.TrimSpace(item.Find(".title").First().Text())
		spans := item.Find(".text span")
		if title == "" || spans.Length() < 3 {
			return
		}
		stats[title] = model.StatPair{
			Home: parseMetric(spans.Eq(0).Text()),
			Away: parseMetric(spans.Eq(2).Text()),
		}
	})
	return stats
}

// parseMetric coerces a statistic cell: an integer when the text is all
// digits, a float when numeric, otherwise the cleaned original string.
// Percent signs are stripped before coercion.
func parseMetric(text string) any {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), "%", "")
	if cleaned != "" && isDigits(cleaned) {
		n, err := strconv.Atoi(cleaned)
		if err == nil {
			return n
		}
	}
	if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return f
	}
	return cleaned
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
