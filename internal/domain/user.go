package domain

import (
	"time"

	"github.com/sidequests/backend/internal/entity"
	"github.com/sidequests/backend/internal/model"
	"github.com/sidequests/backend/internal/repository"
	"github.com/sidequests/backend/pkg/errorx"
	"github.com/sidequests/backend/pkg/xcontext"
)

type UserDomain interface {
	GetMe(xcontext.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
	Update(xcontext.Context, *model.UpdateUserRequest) (*model.UpdateUserResponse, error)
}

type userDomain struct {
	userRepo repository.UserRepository
}

func NewUserDomain(userRepo repository.UserRepository) UserDomain {
	return &userDomain{userRepo: userRepo}
}

func (d *userDomain) GetMe(
	ctx xcontext.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	id := req.ID
	if id == "" {
		id = xcontext.GetRequestUserID(ctx)
	}

	user, err := d.userRepo.GetByID(ctx, id)
	if err != nil {
		ctx.Logger().Errorf("Cannot get user: %v", err)
		return nil, errorx.New(errorx.NotFound, "Not found user")
	}

	resp := model.GetUserResponse(convertUser(user))
	return &resp, nil
}

func (d *userDomain) Update(
	ctx xcontext.Context, req *model.UpdateUserRequest,
) (*model.UpdateUserResponse, error) {
	userID := xcontext.GetRequestUserID(ctx)

	if req.BirthYear != 0 {
		currentYear := time.Now().Year()
		if req.BirthYear < 1900 || req.BirthYear > currentYear {
			return nil, errorx.New(errorx.BadRequest, "Invalid birth year %d", req.BirthYear)
		}
	}

	data := &entity.User{
		Name:      req.Name,
		Bio:       req.Bio,
		BirthYear: req.BirthYear,
		AvatarURL: req.AvatarURL,
	}

	if err := d.userRepo.UpdateByID(ctx, userID, data); err != nil {
		ctx.Logger().Errorf("Cannot update user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateUserResponse{}, nil
}
