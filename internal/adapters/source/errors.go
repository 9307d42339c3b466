package source

import "errors"

// Sentinel kinds for upstream failures. The caller distinguishes which
// document failed; retry policy, if any, belongs here and not in the
// timeline engine.
var (
	ErrPageFetch    = errors.New("match page fetch failed")
	ErrFeedFetch    = errors.New("detail feed fetch failed")
	ErrFixtureFetch = errors.New("fixture list fetch failed")
	ErrParse        = errors.New("document parse failed")
)
