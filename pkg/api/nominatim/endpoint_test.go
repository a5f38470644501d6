package nominatim

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sidequests/backend/config"
	"github.com/sidequests/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func TestEndpoint_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		require.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		require.Equal(t, "golden gate park", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"place_id": 12345,
				"display_name": "Golden Gate Park, San Francisco, CA",
				"lat": "37.7694",
				"lon": "-122.4862"
			}
		]`))
	}))
	defer server.Close()

	endpoint := New(config.GeocodeConfigs{Endpoint: server.URL, Limit: 5})
	places, err := endpoint.Search(testutil.NewMockContext(), "golden gate park")
	require.NoError(t, err)
	require.Len(t, places, 1)
	require.Equal(t, int64(12345), places[0].PlaceID)
	require.Equal(t, "Golden Gate Park, San Francisco, CA", places[0].DisplayName)
	require.InDelta(t, 37.7694, places[0].Latitude, 1e-6)
	require.InDelta(t, -122.4862, places[0].Longitude, 1e-6)
}

func TestEndpoint_Search_BadCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"place_id": 1, "display_name": "x", "lat": "north", "lon": "0"}]`))
	}))
	defer server.Close()

	endpoint := New(config.GeocodeConfigs{Endpoint: server.URL, Limit: 5})
	_, err := endpoint.Search(testutil.NewMockContext(), "somewhere")
	require.Error(t, err)
}
