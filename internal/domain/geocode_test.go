package domain

import (
	"testing"

	"github.com/sidequests/backend/internal/model"
	"github.com/sidequests/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_geocodeDomain_SearchAddress_ShortQuery(t *testing.T) {
	d := NewGeocodeDomain(nil)
	ctx := testutil.NewMockContext()

	for _, query := range []string{"", "ab", "  a  "} {
		resp, err := d.SearchAddress(ctx, &model.SearchAddressRequest{Query: query})
		require.NoError(t, err)
		require.Empty(t, resp.Suggestions)
	}
}
