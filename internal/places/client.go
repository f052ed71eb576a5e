package places

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"

	"github.com/Adiiii-i/travara/internal/models/response_models"
	"github.com/Adiiii-i/travara/pkg/utils"
)

// Category restricts a nearby search to one kind of place.
type Category string

const (
	CategoryAttraction Category = "attraction"
	CategoryRestaurant Category = "restaurant"
	CategoryCafe       Category = "cafe"
)

// ParseCategory maps a request string onto a known category.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryAttraction, CategoryRestaurant, CategoryCafe:
		return Category(s), true
	}
	return "", false
}

func (c Category) placeType() maps.PlaceType {
	switch c {
	case CategoryAttraction:
		return maps.PlaceTypeTouristAttraction
	case CategoryRestaurant:
		return maps.PlaceTypeRestaurant
	case CategoryCafe:
		return maps.PlaceTypeCafe
	}
	return ""
}

const (
	placesPlaceholderKey = "your_google_places_api_key_here"

	// searchRadiusMeters bounds the nearby search around the geocoded
	// destination.
	searchRadiusMeters = 5000
	callTimeout        = 5 * time.Second

	// DefaultLimit caps results per category when the caller does not say.
	DefaultLimit = 5
)

// Client resolves a destination to coordinates and returns ranked nearby
// points of interest. All lookups are best-effort: faults are logged and
// reported as empty results, never as errors.
type Client struct {
	maps   *maps.Client
	logger *zap.Logger
}

// NewClient fails with a ConfigurationError when the key is absent or the
// sample placeholder. Extra options (e.g. maps.WithBaseURL in tests) are
// appended after the API key.
func NewClient(apiKey string, logger *zap.Logger, opts ...maps.ClientOption) (*Client, error) {
	if apiKey == "" || apiKey == placesPlaceholderKey {
		return nil, &utils.ConfigurationError{
			Service: "places",
			Reason:  "GOOGLE_PLACES_API_KEY not found in environment variables",
		}
	}
	all := append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)
	mc, err := maps.NewClient(all...)
	if err != nil {
		return nil, &utils.ConfigurationError{
			Service: "places",
			Reason:  fmt.Sprintf("failed to initialize Google Places client: %v", err),
		}
	}
	return &Client{maps: mc, logger: logger}, nil
}

// Search geocodes destination and returns up to limit records for the given
// category, ranked by prominence within a fixed radius. A destination that
// geocodes to zero results yields an empty slice: ambiguous or misspelled
// destinations are an expected degraded outcome, not an error.
func (c *Client) Search(ctx context.Context, destination string, category Category, limit int) []response_models.PlaceRecord {
	if limit <= 0 {
		limit = DefaultLimit
	}

	geoCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()
	geo, err := c.maps.Geocode(geoCtx, &maps.GeocodingRequest{Address: destination})
	if err != nil {
		c.logger.Warn("geocoding failed",
			zap.String("destination", destination), zap.Error(err))
		return nil
	}
	if len(geo) == 0 {
		return nil
	}
	loc := geo[0].Geometry.Location

	searchCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()
	resp, err := c.maps.NearbySearch(searchCtx, &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: loc.Lat, Lng: loc.Lng},
		Radius:   searchRadiusMeters,
		Type:     category.placeType(),
		RankBy:   maps.RankByProminence,
	})
	if err != nil {
		c.logger.Warn("nearby search failed",
			zap.String("destination", destination),
			zap.String("category", string(category)), zap.Error(err))
		return nil
	}

	records := make([]response_models.PlaceRecord, 0, limit)
	for _, place := range resp.Results {
		if len(records) >= limit {
			break
		}

		name := place.Name
		if name == "" {
			name = "Unknown"
		}
		rating := "N/A"
		if place.Rating > 0 {
			rating = fmt.Sprintf("%.1f", place.Rating)
		}
		address := place.Vicinity
		if address == "" {
			address = "Address not available"
		}

		rec := response_models.PlaceRecord{
			Name:     name,
			Rating:   rating,
			Address:  address,
			Category: string(category),
			PlaceID:  place.PlaceID,
		}
		if category == CategoryRestaurant && place.PriceLevel > 0 {
			tier := place.PriceLevel
			rec.PriceLevel = &tier
		}
		records = append(records, rec)
	}
	return records
}
