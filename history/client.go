package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"time"

	"eurojackpot/generator"
	"eurojackpot/models"

	"github.com/tidwall/gjson"
)

const (
	// DefaultBaseURL is the public EuroJackpot results service
	DefaultBaseURL = "https://www.eurojackpot.com/wlinfo/WL_InfoService"

	mainDrawLabel   = "5 of 50"
	maxResponseSize = 1 << 20
	requestTimeout  = 15 * time.Second
)

// Euro number draws were 2 of 8 until 2014, 2 of 10 until 2022 and 2 of 12 since
var starDrawLabels = []string{"2 of 8", "2 of 10", "2 of 12"}

var (
	// ErrNoDraw is returned when the service has no results for a date
	ErrNoDraw = errors.New("no draw results for date")

	// ErrIncompleteDraw is returned when a result lacks the expected number of values
	ErrIncompleteDraw = errors.New("incomplete draw results")
)

// Client reads published draw results from the results service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a results client. Empty arguments fall back to defaults.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// FetchDraw returns the normalized draw held on date
func (c *Client) FetchDraw(ctx context.Context, date time.Time) (*models.Draw, error) {
	day := date.Format(dateLayout)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.drawURL(day), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch draw %s: %w", day, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch draw %s: HTTP %d", day, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read draw %s: %w", day, err)
	}

	return parseDraw(day, body)
}

func (c *Client) drawURL(day string) string {
	params := url.Values{}
	params.Set("client", "jsn")
	params.Set("gruppe", "ZahlenUndQuoten")
	params.Set("ewGewsum", "ja")
	params.Set("historie", "ja")
	params.Set("spielart", "EJ")
	params.Set("adg", "ja")
	params.Set("lang", "en")
	params.Set("datum", day)
	return c.baseURL + "?" + params.Encode()
}

func parseDraw(day string, body []byte) (*models.Draw, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("failed to decode draw %s: invalid JSON", day)
	}

	var mains, stars []int
	gjson.GetBytes(body, "zahlen.hauptlotterie.ziehungen").ForEach(func(_, draw gjson.Result) bool {
		label := draw.Get("bezeichnung").String()
		switch {
		case label == mainDrawLabel:
			mains = resultInts(draw.Get("zahlenSortiert"))
		case slices.Contains(starDrawLabels, label):
			stars = resultInts(draw.Get("zahlenSortiert"))
		}
		return true
	})

	if len(mains) == 0 || len(stars) == 0 {
		return nil, fmt.Errorf("%w %s", ErrNoDraw, day)
	}

	normalized := generator.Normalize([]models.RawDraw{models.NewRawDraw(day, mains, stars)})[0]
	if len(normalized.Numbers) != generator.MainPickCount || len(normalized.StarNumbers) != generator.StarPickCount {
		return nil, fmt.Errorf("%w for %s: %v + %v", ErrIncompleteDraw, day, mains, stars)
	}
	return &normalized, nil
}

func resultInts(values gjson.Result) []int {
	var out []int
	for _, v := range values.Array() {
		out = append(out, int(v.Int()))
	}
	return out
}
