package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

const (
	// DefaultBaseURL is the weatherapi.com v1 endpoint
	DefaultBaseURL = "https://api.weatherapi.com/v1"

	// DefaultTimeout bounds a single request at the transport level
	DefaultTimeout = 30 * time.Second

	userAgent  = "WeatherTerminal/1.0 (github.com/ngmaloney/weather-terminal)"
	dateLayout = "2006-01-02"
)

// APIClient implements Client using the weatherapi.com HTTP API
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	apiKey     KeyFunc
}

// Option configures an APIClient
type Option func(*APIClient)

// WithBaseURL points the client at a different API root
func WithBaseURL(baseURL string) Option {
	return func(c *APIClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the transport timeout
func WithTimeout(d time.Duration) Option {
	return func(c *APIClient) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *APIClient) {
		c.httpClient = hc
	}
}

// NewClient creates a new weatherapi.com client
func NewClient(apiKey KeyFunc, opts ...Option) *APIClient {
	c := &APIClient{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		userAgent: userAgent,
		apiKey:    apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchForecast retrieves current conditions and the forecast for a place
func (c *APIClient) FetchForecast(ctx context.Context, place string) (*models.WeatherSnapshot, error) {
	const op = "forecast"

	key := c.key()
	if key == "" {
		return nil, newConfigError(op)
	}

	params := url.Values{}
	params.Set("key", key)
	params.Set("q", place)
	params.Set("days", strconv.Itoa(models.ForecastLength))
	params.Set("aqi", "no")

	var forecastResp forecastResponse
	if err := c.getJSON(ctx, op, "/forecast.json", params, &forecastResp); err != nil {
		return nil, err
	}

	snapshot, err := forecastResp.toSnapshot()
	if err != nil {
		return nil, newProviderError(op, 0, err)
	}
	return snapshot, nil
}

// SearchPlaces retrieves place-name suggestions for a partial query.
// An empty fragment returns no suggestions without contacting the provider.
func (c *APIClient) SearchPlaces(ctx context.Context, fragment string) ([]models.SuggestionEntry, error) {
	const op = "search"

	if strings.TrimSpace(fragment) == "" {
		return []models.SuggestionEntry{}, nil
	}

	key := c.key()
	if key == "" {
		return nil, newConfigError(op)
	}

	params := url.Values{}
	params.Set("key", key)
	params.Set("q", fragment)

	var results []searchResult
	if err := c.getJSON(ctx, op, "/search.json", params, &results); err != nil {
		return nil, err
	}

	entries := make([]models.SuggestionEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, models.SuggestionEntry{
			ID:      r.ID,
			Name:    r.Name,
			Region:  r.Region,
			Country: r.Country,
		})
	}
	return entries, nil
}

func (c *APIClient) key() string {
	if c.apiKey == nil {
		return ""
	}
	return strings.TrimSpace(c.apiKey())
}

// getJSON issues a single GET and decodes a 2xx body into out
func (c *APIClient) getJSON(ctx context.Context, op, path string, params url.Values, out interface{}) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return newNetworkError(op, fmt.Errorf("creating request: %w", err))
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newNetworkError(op, fmt.Errorf("executing request: %w", redactKey(err)))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return newNetworkError(op, fmt.Errorf("reading response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newProviderError(op, resp.StatusCode, errors.New(providerMessage(body, resp.Status)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return newProviderError(op, resp.StatusCode, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}

// redactKey strips the query string from *url.Error so the credential never
// reaches logs
func redactKey(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if u, perr := url.Parse(urlErr.URL); perr == nil {
			u.RawQuery = ""
			return &url.Error{Op: urlErr.Op, URL: u.String(), Err: urlErr.Err}
		}
	}
	return err
}

// providerMessage extracts the provider's error message, falling back to the HTTP status
func providerMessage(body []byte, status string) string {
	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return status
}

// Internal types for weatherapi.com responses

type forecastResponse struct {
	Location struct {
		Name    string `json:"name"`
		Region  string `json:"region"`
		Country string `json:"country"`
	} `json:"location"`
	Current struct {
		TempC      float64 `json:"temp_c"`
		FeelsLikeC float64 `json:"feelslike_c"`
		WindKph    float64 `json:"wind_kph"`
		Humidity   int     `json:"humidity"`
		UV         float64 `json:"uv"`
		Condition  struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MaxTempC float64 `json:"maxtemp_c"`
				MinTempC float64 `json:"mintemp_c"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

type searchResult struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// toSnapshot converts the decoded body, rejecting bodies the dashboard cannot render
func (r *forecastResponse) toSnapshot() (*models.WeatherSnapshot, error) {
	if r.Location.Name == "" {
		return nil, errors.New("response has no location")
	}

	snapshot := &models.WeatherSnapshot{
		Location: models.Location{
			Name:    r.Location.Name,
			Region:  r.Location.Region,
			Country: r.Location.Country,
		},
		Current: models.CurrentConditions{
			TemperatureC:    r.Current.TempC,
			FeelsLikeC:      r.Current.FeelsLikeC,
			WindKph:         r.Current.WindKph,
			HumidityPercent: r.Current.Humidity,
			UVIndex:         r.Current.UV,
			ConditionText:   r.Current.Condition.Text,
		},
		ForecastDays: make([]models.ForecastDay, 0, models.ForecastLength),
		FetchedAt:    time.Now(),
	}

	for _, day := range r.Forecast.ForecastDay {
		if len(snapshot.ForecastDays) == models.ForecastLength {
			break
		}
		date, err := time.Parse(dateLayout, day.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing forecast date %q: %w", day.Date, err)
		}
		snapshot.ForecastDays = append(snapshot.ForecastDays, models.ForecastDay{
			Date:     date,
			MaxTempC: day.Day.MaxTempC,
			MinTempC: day.Day.MinTempC,
		})
	}

	return snapshot, nil
}
