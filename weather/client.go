// Package weather fetches current conditions from the weatherapi.com
// current-conditions endpoint. Every outcome, success or failure, is
// rendered as a tagged in-band string that is injected verbatim into the
// model's context; the provider never returns an error to its caller.
package weather

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Tags prefixing every provider result. The model is instructed to read
// and react to the _ERROR tag gracefully.
const (
	DataTag  = "WEATHER_API_DATA:"
	ErrorTag = "WEATHER_API_DATA_ERROR:"
)

// placeholderKey is the unconfigured-credential sentinel.
const placeholderKey = "YOUR_ACTUAL_WEATHER_API_KEY"

// Client is the weather API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new weather client.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type conditionsResponse struct {
	Current struct {
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
		TempC    *float64 `json:"temp_c"`
		Humidity *int     `json:"humidity"`
	} `json:"current"`
}

// Fetch returns a single-line weather fact for the location, or a tagged
// error string. The request is bounded by the client timeout.
func (c *Client) Fetch(location, lang string) string {
	if c.apiKey == "" || c.apiKey == placeholderKey {
		log.Printf("WARN: weather API key not set or is default value, cannot fetch live weather")
		return ErrorTag + " Weather info unavailable: API key missing or invalid."
	}

	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("q", location)
	q.Set("aqi", "no")
	q.Set("lang", lang)

	resp, err := c.httpClient.Get(c.baseURL + "?" + q.Encode())
	if err != nil {
		return c.classifyTransportError(location, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("%s Sorry, weather information is currently unavailable due to an unexpected error: %v", ErrorTag, err)
	}

	if resp.StatusCode != http.StatusOK {
		errorInfo := fmt.Sprintf("HTTP Status: %d, Response: %s", resp.StatusCode, string(body))
		log.Printf("ERROR: weather API call failed for %s (Error: %s)", location, errorInfo)
		return fmt.Sprintf("%s Sorry, weather information for %s is currently unavailable. (Error: %s)", ErrorTag, location, errorInfo)
	}

	var data conditionsResponse
	if err := json.Unmarshal(body, &data); err != nil {
		log.Printf("ERROR: unexpected error decoding weather response for %s: %v", location, err)
		return fmt.Sprintf("%s Sorry, weather information is currently unavailable due to an unexpected error: %v", ErrorTag, err)
	}

	condText := data.Current.Condition.Text
	if condText == "" {
		condText = "N/A"
	}
	tempC := "N/A"
	if data.Current.TempC != nil {
		tempC = fmt.Sprintf("%v", *data.Current.TempC)
	}
	humidity := "N/A"
	if data.Current.Humidity != nil {
		humidity = fmt.Sprintf("%v", *data.Current.Humidity)
	}

	return fmt.Sprintf("%s Location: %s, Condition: %s, Temperature: %s°C, Humidity: %s%%.", DataTag, location, condText, tempC, humidity)
}

// classifyTransportError maps a failed request to the matching tagged error
// string: timeout, connection failure, or anything else.
func (c *Client) classifyTransportError(location string, err error) string {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		log.Printf("ERROR: weather API call timed out for %s", location)
		return fmt.Sprintf("%s Sorry, weather information for %s could not be retrieved in time.", ErrorTag, location)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		log.Printf("ERROR: could not connect to weather API for %s: %v", location, err)
		return fmt.Sprintf("%s Sorry, I'm unable to connect to the weather service for %s.", ErrorTag, location)
	}

	log.Printf("ERROR: weather API call failed for %s: %v", location, err)
	return fmt.Sprintf("%s Sorry, weather information for %s is currently unavailable. (Error: %v)", ErrorTag, location, err)
}
