// Package sheet fetches published spreadsheet CSV feeds and turns them
// into raw header-to-value records for the normalization pipeline.
package sheet

import (
	"fmt"
	"net/http"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

const DefaultFetchTimeout = 30 * time.Second

/*
FetchRecords downloads the CSV document at feedURL and parses it into raw
records (one map per data row, keyed by the header labels exactly as they
appear in the sheet).

Fetching happens once per load; the caller fully replaces its in-memory
collection with the result. Any failure (network, non-2xx status, broken
CSV) comes back as a *xerr.Error so the caller can log it and keep serving
its previous data.
*/
func FetchRecords(feedURL string, timeout time.Duration) (records []RawRecord, e *xerr.Error) {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	tl.Log(tl.Info, palette.Blue, "%s CSV feed from '%s'", "Fetching", feedURL)

	req, newReqErr := http.NewRequest("GET", feedURL, nil)
	if newReqErr != nil {
		return records, xerr.NewError(newReqErr, "Failed to create HTTP request", feedURL)
	}
	req.Header.Set("Accept", "text/csv")

	client := &http.Client{Timeout: timeout}
	resp, httpErr := client.Do(req)
	if httpErr != nil {
		return records, xerr.NewError(httpErr, "HTTP error fetching CSV feed", map[string]any{"url": feedURL})
	}
	defer resp.Body.Close()

	body, e := GetBody(resp, feedURL)
	if e != nil {
		return records, e
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return records, xerr.NewError(fmt.Errorf("status is '%s'", resp.Status), "Feed returned non-success status", feedURL)
	}

	records, e = ParseRecords(string(body))
	if e != nil {
		return records, e
	}

	tl.Log(tl.Info1, palette.Green, "Fetched '%v' rows from '%s'", len(records), feedURL)

	return records, e
}
