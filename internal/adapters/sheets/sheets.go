// Package sheets fetches delivery configuration from a Google Sheets
// key/value tab via the v4 values endpoint
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"padala/internal/core/schedule"
	perr "padala/internal/platform/errors"
	"padala/internal/platform/logger"
)

const (
	baseURLDefault = "https://sheets.googleapis.com"
	defaultRange   = "Config!A:B"
	defaultTimeout = 10 * time.Second
)

// Options configures the Client
type Options struct {
	BaseURL       string
	SpreadsheetID string
	APIKey        string
	Range         string
	Timeout       time.Duration
}

// Client reads the configuration tab. It satisfies the rates SourcePort.
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options, log logger.Logger) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.Range == "" {
		o.Range = defaultRange
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  log,
	}
}

// valuesResponse is the subset of the v4 values payload we consume
type valuesResponse struct {
	Values [][]string `json:"values"`
}

// Fetch returns the raw key/value rows of the configuration tab.
func (c *Client) Fetch(ctx context.Context) ([][]string, error) {
	u := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s",
		c.opts.BaseURL,
		url.PathEscape(c.opts.SpreadsheetID),
		url.PathEscape(c.opts.Range),
		url.QueryEscape(c.opts.APIKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeConfig, "build sheet request")
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeConfig, "sheet request failed")
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		c.log.Warn().
			Int("status", res.StatusCode).
			Str("body", string(body)).
			Msg("sheet request rejected")
		return nil, perr.Configf("sheet request returned status %d", res.StatusCode)
	}

	var payload valuesResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeConfig, "decode sheet payload")
	}
	if len(payload.Values) == 0 {
		return nil, perr.Configf("sheet returned no rows")
	}
	return payload.Values, nil
}

// Parse turns key/value rows into a configuration snapshot. Rows with fewer
// than two cells or unknown keys are skipped. Validation is the caller's job.
func (c *Client) Parse(rows [][]string) (*schedule.Config, error) {
	cfg := &schedule.Config{}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(row[0]))
		val := strings.TrimSpace(row[1])
		switch key {
		case "store_name":
			cfg.StoreName = val
		case "timezone":
			cfg.Timezone = val
		case "cutoff_time":
			cfg.CutoffTime = val
		case "working_days":
			cfg.WorkingDays = splitCSV(val)
		case "couriers":
			var couriers map[string]map[string]int
			if err := json.Unmarshal([]byte(val), &couriers); err != nil {
				return nil, perr.Wrap(err, perr.ErrorCodeConfig, "couriers cell is not a valid mapping")
			}
			cfg.Couriers = couriers
		}
	}
	return cfg, nil
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}
