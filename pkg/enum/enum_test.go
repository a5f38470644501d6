package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	type LocationKind string

	online := New(LocationKind("online"))
	require.Equal(t, online, LocationKind("online"))

	v, err := ToEnum[LocationKind]("online")
	require.NoError(t, err)
	require.Equal(t, v, online)

	_, err = ToEnum[LocationKind]("onsite")
	require.Error(t, err)
}
