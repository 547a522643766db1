// Package yandex implements the Geocoder port against the Yandex Maps
// geocoding HTTP API.
package yandex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/ports"
	"starburger/internal/pkg/errs"
)

// DefaultBaseURL is the production geocoding endpoint.
const DefaultBaseURL = "https://geocode-maps.yandex.ru/1.x"

const defaultHTTPTimeout = 5 * time.Second

// Client calls the Yandex geocoding API. Failure classification follows
// the Geocoder port contract: an answered request with zero placemarks is
// ErrAddressNotFound; everything that prevents an answer is
// ErrGeocodingUnavailable.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a geocoding client. baseURL may be empty to use
// DefaultBaseURL; the API key is required.
func NewClient(apiKey string, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}, nil
}

// geocodeResponse mirrors the subset of the API response we consume. The
// position is a single "longitude latitude" string.
type geocodeResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Geocode resolves address to a point.
func (c *Client) Geocode(ctx context.Context, address string) (kernel.GeoPoint, error) {
	if address == "" {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("address")
	}

	query := url.Values{}
	query.Set("geocode", address)
	query.Set("apikey", c.apiKey)
	query.Set("format", "json")

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("%w: %w", ports.ErrGeocodingUnavailable, err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("%w: %w", ports.ErrGeocodingUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return kernel.GeoPoint{}, fmt.Errorf("%w: provider returned status %d",
			ports.ErrGeocodingUnavailable, response.StatusCode)
	}

	var payload geocodeResponse
	if err = json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("%w: %w", ports.ErrGeocodingUnavailable, err)
	}

	members := payload.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return kernel.GeoPoint{}, fmt.Errorf("%w: %q", ports.ErrAddressNotFound, address)
	}

	return parsePos(members[0].GeoObject.Point.Pos)
}

// parsePos converts the provider's "longitude latitude" pair into a GeoPoint.
func parsePos(pos string) (kernel.GeoPoint, error) {
	parts := strings.Fields(pos)
	if len(parts) != 2 {
		return kernel.GeoPoint{}, fmt.Errorf("%w: malformed position %q",
			ports.ErrGeocodingUnavailable, pos)
	}

	longitude, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("%w: malformed longitude %q",
			ports.ErrGeocodingUnavailable, parts[0])
	}

	latitude, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("%w: malformed latitude %q",
			ports.ErrGeocodingUnavailable, parts[1])
	}

	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("%w: %w", ports.ErrGeocodingUnavailable, err)
	}

	return point, nil
}
