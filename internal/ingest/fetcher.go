package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// maxFeedBytes caps how much of the feed body is read. The tracked
// sheet is tens to low thousands of rows; anything past this is junk.
const maxFeedBytes = 10 << 20

// SheetFetcher downloads the issue feed as CSV text from a published
// spreadsheet.
type SheetFetcher struct {
	url    string
	client *http.Client
}

// NewSheetFetcher builds a fetcher for the given spreadsheet id and
// sheet name. A non-empty overrideURL wins over the constructed one.
func NewSheetFetcher(spreadsheetID, sheetName, overrideURL string) *SheetFetcher {
	feedURL := overrideURL
	if feedURL == "" {
		feedURL = fmt.Sprintf(
			"https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s",
			url.PathEscape(spreadsheetID), url.QueryEscape(sheetName),
		)
	}
	return &SheetFetcher{
		url:    feedURL,
		client: &http.Client{},
	}
}

// Fetch performs one GET of the feed. Cancellation and deadlines come
// from ctx; callers own the timeout.
func (f *SheetFetcher) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}
