package authenticator_test

import (
	"testing"
	"time"

	"github.com/sidequests/backend/config"
	"github.com/sidequests/backend/pkg/authenticator"
	"github.com/stretchr/testify/require"
)

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine[string]("secret", config.TokenConfigs{
		Name:       "access_token",
		Expiration: time.Minute,
	})

	token, err := engine.Generate("user1", "abc")
	require.Nil(t, err)

	msg, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "abc", msg)
}

func TestJWTExpiration(t *testing.T) {
	engine := authenticator.NewTokenEngine[string]("secret", config.TokenConfigs{
		Name:       "access_token",
		Expiration: -time.Minute,
	})

	token, err := engine.Generate("user1", "abc")
	require.Nil(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}
