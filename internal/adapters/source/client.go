// Package source fetches and scrapes raw documents from the upstream
// site: the match page (team identity, start time), the live detail
// feed, and the fixture listing. All network policy - timeouts, headers,
// concurrency - lives here; the timeline engine never fetches.
package source

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/okian/matchline/internal/domain/model"
	"github.com/okian/matchline/pkg/logger"
	"github.com/okian/matchline/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultBaseURL    = "https://www.ysscores.com"
	defaultUserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	defaultTimeout    = 10 * time.Second
	defaultTimeOffset = 8 * time.Hour
)

// Document labels used in fetch metrics and errors.
const (
	docMatchPage  = "match_page"
	docDetailFeed = "detail_feed"
	docFixtures   = "fixtures"
)

// Client scrapes the upstream site over plain HTTP.
type Client struct {
	base       string
	userAgent  string
	timeOffset time.Duration
	httpc      *http.Client
	logger     logger.Logger
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL sets the root URL of the scraped site.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.base = base
		}
	}
}

// WithUserAgent sets the User-Agent header sent upstream.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout bounds each upstream request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpc.Timeout = d
		}
	}
}

// WithTimeOffset sets the display offset applied to source-local times.
func WithTimeOffset(d time.Duration) Option {
	return func(c *Client) {
		c.timeOffset = d
	}
}

// WithLogger sets a custom logger for the client.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New constructs a Client with default configuration.
func New(opts ...Option) *Client {
	c := &Client{
		base:       defaultBaseURL,
		userAgent:  defaultUserAgent,
		timeOffset: defaultTimeOffset,
		httpc:      &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.Get().Named("source")
	}
	return c
}

// MatchDocuments fetches the two documents a match needs: the match page
// (scraped into team identity) and the live detail feed. The fetches run
// concurrently; the first failure wins and is tagged with its document's
// sentinel kind.
func (c *Client) MatchDocuments(ctx context.Context, matchID string) (model.TeamsInfo, *goquery.Document, error) {
	pageURL := fmt.Sprintf("%s/ar/match/%s/-", c.base, matchID)
	feedURL := fmt.Sprintf("%s/ar/get_match_detail?match_id=%s", c.base, matchID)

	var (
		wg      sync.WaitGroup
		page    *goquery.Document
		feed    *goquery.Document
		pageErr error
		feedErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		page, pageErr = c.get(ctx, pageURL, docMatchPage, ErrPageFetch)
	}()
	go func() {
		defer wg.Done()
		feed, feedErr = c.get(ctx, feedURL, docDetailFeed, ErrFeedFetch)
	}()
	wg.Wait()

	if pageErr != nil {
		return model.TeamsInfo{}, nil, pageErr
	}
	if feedErr != nil {
		return model.TeamsInfo{}, nil, feedErr
	}
	return c.scrapeTeams(page), feed, nil
}

// get fetches one document and parses it. Fetch and parse failures carry
// distinct sentinel kinds.
func (c *Client) get(ctx context.Context, url, document string, kind error) (*goquery.Document, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		metrics.RecordFetchError(document)
		return nil, fmt.Errorf("%w: %w", kind, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.RecordFetchError(document)
		return nil, fmt.Errorf("%w: %w", kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordFetchError(document)
		return nil, fmt.Errorf("%w: unexpected status %d", kind, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		metrics.RecordFetchError(document)
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	metrics.RecordFetchDuration(document, float64(time.Since(start).Milliseconds()))
	c.logger.Debug(ctx, "fetched document",
		logger.String("document", document),
		logger.String("url", url),
	)
	return doc, nil
}
