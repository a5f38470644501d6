package domain

import (
	"testing"

	"github.com/sidequests/backend/internal/model"
	"github.com/sidequests/backend/internal/repository"
	"github.com/sidequests/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestAuthDomain() AuthDomain {
	return NewAuthDomain(repository.NewUserRepository(), repository.NewOAuth2Repository(), nil)
}

func Test_authDomain_Register(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestAuthDomain()
	ctx := testutil.NewMockContextWithDb(db)

	resp, err := d.Register(ctx, &model.RegisterRequest{
		Name:     "carol",
		Email:    "carol@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.UserID)
	require.NotEmpty(t, resp.AccessToken)
}

func Test_authDomain_Register_Invalid(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestAuthDomain()
	ctx := testutil.NewMockContextWithDb(db)

	_, err := d.Register(ctx, &model.RegisterRequest{
		Email:    "carol@example.com",
		Password: "supersecret",
	})
	require.Error(t, err)

	_, err = d.Register(ctx, &model.RegisterRequest{
		Name:     "carol",
		Email:    "carol@example.com",
		Password: "short",
	})
	require.Error(t, err)

	// The fixture user already owns this email.
	_, err = d.Register(ctx, &model.RegisterRequest{
		Name:     "carol",
		Email:    testutil.User1.Email,
		Password: "supersecret",
	})
	require.Error(t, err)
}

func Test_authDomain_Login(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := newTestAuthDomain()
	ctx := testutil.NewMockContextWithDb(db)

	_, err := d.Register(ctx, &model.RegisterRequest{
		Name:     "carol",
		Email:    "carol@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	resp, err := d.Login(ctx, &model.LoginRequest{
		Email:    "carol@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	_, err = d.Login(ctx, &model.LoginRequest{
		Email:    "carol@example.com",
		Password: "wrongpassword",
	})
	require.Error(t, err)

	_, err = d.Login(ctx, &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})
	require.Error(t, err)
}
