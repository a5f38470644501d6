package domain

import (
	"strconv"
	"strings"

	"github.com/sidequests/backend/internal/model"
	"github.com/sidequests/backend/pkg/api/nominatim"
	"github.com/sidequests/backend/pkg/errorx"
	"github.com/sidequests/backend/pkg/xcontext"
)

const minAddressQueryLen = 3

type GeocodeDomain interface {
	SearchAddress(xcontext.Context, *model.SearchAddressRequest) (*model.SearchAddressResponse, error)
}

type geocodeDomain struct {
	nominatimEndpoint *nominatim.Endpoint
}

func NewGeocodeDomain(nominatimEndpoint *nominatim.Endpoint) GeocodeDomain {
	return &geocodeDomain{nominatimEndpoint: nominatimEndpoint}
}

func (d *geocodeDomain) SearchAddress(
	ctx xcontext.Context, req *model.SearchAddressRequest,
) (*model.SearchAddressResponse, error) {
	query := strings.TrimSpace(req.Query)
	if len(query) < minAddressQueryLen {
		// Too short to geocode; an empty suggestion list, not an error.
		return &model.SearchAddressResponse{Suggestions: []model.AddressSuggestion{}}, nil
	}

	places, err := d.nominatimEndpoint.Search(ctx, query)
	if err != nil {
		ctx.Logger().Errorf("Cannot search address: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Address search is unavailable")
	}

	suggestions := []model.AddressSuggestion{}
	for _, place := range places {
		suggestions = append(suggestions, model.AddressSuggestion{
			DisplayName: place.DisplayName,
			Latitude:    place.Latitude,
			Longitude:   place.Longitude,
			PlaceID:     strconv.FormatInt(place.PlaceID, 10),
		})
	}

	return &model.SearchAddressResponse{Suggestions: suggestions}, nil
}
