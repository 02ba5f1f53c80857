package mealplan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/uhppoted/mealplan-sheets/log"
	"github.com/uhppoted/mealplan-sheets/preferences"
)

const (
	Weekly = "week"
	Daily  = "day"

	// Key used for the single day returned by a 'day' request
	Today = "today"
)

// Config is the meal planning API configuration.
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
	HTTP    *http.Client
}

// Client requests generated meal plans from the meal planning API.
type Client struct {
	url    string
	key    string
	client *http.Client
}

// APIError is returned for a failed meal plan request: transport errors, non-2xx
// responses and response bodies that are not valid JSON.
type APIError struct {
	Op     string
	Status int
	Err    error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("meal plan API %v failed (status %v: %v)", e.Op, e.Status, e.Err)
	}

	return fmt.Sprintf("meal plan API %v failed (%v)", e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// generic response, covering both the 'week' and 'day' time frames
type response struct {
	Week      map[string]Day `json:"week"`
	Meals     []Meal         `json:"meals"`
	Nutrients *Nutrients     `json:"nutrients"`
}

func NewClient(cfg Config) *Client {
	client := cfg.HTTP
	if client == nil {
		client = &http.Client{
			Timeout: cfg.Timeout,
		}
	}

	return &Client{
		url:    cfg.URL,
		key:    cfg.APIKey,
		client: client,
	}
}

// TimeFrame returns 'week' for 7 or more days and 'day' otherwise. The API does
// not support any other granularity.
func TimeFrame(days int) string {
	if days >= 7 {
		return Weekly
	}

	return Daily
}

// URL builds the meal plan request URL for the preferences.
func (c *Client) URL(p *preferences.Preferences) (string, error) {
	if p == nil {
		return "", fmt.Errorf("missing preferences")
	}

	base, err := url.Parse(c.url)
	if err != nil {
		return "", fmt.Errorf("invalid meal plan API URL '%v' (%w)", c.url, err)
	}

	query := []string{
		"timeFrame=" + escape(TimeFrame(p.Days)),
		"targetCalories=" + strconv.FormatFloat(p.CalorieGoal, 'f', -1, 64),
	}

	if p.Diet != "" {
		query = append(query, "diet="+escape(p.Diet))
	}

	if len(p.Exclude) > 0 {
		query = append(query, "exclude="+escape(strings.Join(p.Exclude, ",")))
	}

	if c.key != "" {
		query = append(query, "apiKey="+escape(c.key))
	}

	if base.RawQuery != "" {
		query = append([]string{base.RawQuery}, query...)
	}

	base.RawQuery = strings.Join(query, "&")

	return base.String(), nil
}

// Generate requests a meal plan for the preferences. The request is not retried.
func (c *Client) Generate(ctx context.Context, p *preferences.Preferences) (*Plan, error) {
	uri, err := c.URL(p)
	if err != nil {
		return nil, &APIError{Op: "request", Err: err}
	}

	rq, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, &APIError{Op: "request", Err: err}
	}

	rq.Header.Set("Accept", "application/json")

	log.Debugf("meal plan request  timeFrame:%v  calories:%v  diet:'%v'  exclude:%q", TimeFrame(p.Days), p.CalorieGoal, p.Diet, p.Exclude)

	resp, err := c.client.Do(rq)
	if err != nil {
		return nil, &APIError{Op: "request", Err: redact(err, c.key)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, &APIError{Op: "request", Status: resp.StatusCode, Err: fmt.Errorf("%s", strings.TrimSpace(string(body)))}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Op: "request", Err: redact(err, c.key)}
	}

	var r response
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, &APIError{Op: "decode", Err: err}
	}

	plan := Plan{
		Week: map[string]Day{},
	}

	switch {
	case len(r.Week) > 0:
		plan.Week = r.Week

	case r.Meals != nil:
		day := Day{Meals: r.Meals}
		if r.Nutrients != nil {
			day.Nutrients = *r.Nutrients
		}

		plan.Week[Today] = day
	}

	log.Debugf("meal plan response  days:%v  meals:%v", len(plan.Week), plan.Meals())

	return &plan, nil
}

// escape percent-encodes a query value, encoding spaces as %20
func escape(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

// redact removes the API key from transport errors, which embed the request URL
func redact(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), escape(key)) {
		return err
	}

	return fmt.Errorf("%s", strings.ReplaceAll(err.Error(), escape(key), "****"))
}
