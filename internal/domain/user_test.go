package domain

import (
	"testing"

	"github.com/sidequests/backend/internal/model"
	"github.com/sidequests/backend/internal/repository"
	"github.com/sidequests/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_userDomain_GetMe(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := NewUserDomain(repository.NewUserRepository())
	ctx := testutil.NewMockContextWithUserID(db, testutil.User1.ID)

	me, err := d.GetMe(ctx, &model.GetUserRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.Name, me.Name)

	other, err := d.GetMe(ctx, &model.GetUserRequest{ID: testutil.User2.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.User2.Name, other.Name)

	_, err = d.GetMe(ctx, &model.GetUserRequest{ID: "ghost"})
	require.Error(t, err)
}

func Test_userDomain_Update(t *testing.T) {
	db := testutil.CreateFixtureDb()
	d := NewUserDomain(repository.NewUserRepository())
	ctx := testutil.NewMockContextWithUserID(db, testutil.User1.ID)

	_, err := d.Update(ctx, &model.UpdateUserRequest{Bio: "Paper folder", BirthYear: 1990})
	require.NoError(t, err)

	me, err := d.GetMe(ctx, &model.GetUserRequest{})
	require.NoError(t, err)
	require.Equal(t, "Paper folder", me.Bio)
	require.Equal(t, 1990, me.BirthYear)

	// The name survives a partial update.
	require.Equal(t, testutil.User1.Name, me.Name)

	_, err = d.Update(ctx, &model.UpdateUserRequest{BirthYear: 1600})
	require.Error(t, err)
}
