package nominatim

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sidequests/backend/config"
	"github.com/sidequests/backend/pkg/api"
	"github.com/sidequests/backend/pkg/xcontext"
)

type Place struct {
	PlaceID     int64
	DisplayName string
	Latitude    float64
	Longitude   float64
}

type Endpoint struct {
	email        string
	limit        int
	apiGenerator api.Generator
}

func New(cfg config.GeocodeConfigs) *Endpoint {
	return &Endpoint{
		email:        cfg.Email,
		limit:        cfg.Limit,
		apiGenerator: api.NewGenerator(cfg.Endpoint),
	}
}

func (e *Endpoint) Search(ctx xcontext.Context, query string) ([]Place, error) {
	resp, err := e.apiGenerator.New("/search").
		Query(api.Parameter{
			"q":      query,
			"format": "jsonv2",
			"limit":  strconv.Itoa(e.limit),
			"email":  e.email,
		}).
		Header("User-Agent", "sidequests-backend").
		GET(ctx)
	if err != nil {
		return nil, err
	}

	body, ok := resp.Body.(api.Array)
	if !ok {
		return nil, errors.New("invalid body type")
	}

	places := []Place{}
	for _, item := range body {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, errors.New("invalid place type")
		}

		place, err := parsePlace(api.JSON(obj))
		if err != nil {
			return nil, err
		}

		places = append(places, place)
	}

	return places, nil
}

func parsePlace(obj api.JSON) (Place, error) {
	placeID, err := obj.GetFloat64("place_id")
	if err != nil {
		return Place{}, err
	}

	displayName, err := obj.GetString("display_name")
	if err != nil {
		return Place{}, err
	}

	// Nominatim returns coordinates as strings.
	rawLat, err := obj.GetString("lat")
	if err != nil {
		return Place{}, err
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return Place{}, fmt.Errorf("invalid latitude %q: %w", rawLat, err)
	}

	rawLon, err := obj.GetString("lon")
	if err != nil {
		return Place{}, err
	}

	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return Place{}, fmt.Errorf("invalid longitude %q: %w", rawLon, err)
	}

	return Place{
		PlaceID:     int64(placeID),
		DisplayName: displayName,
		Latitude:    lat,
		Longitude:   lon,
	}, nil
}
