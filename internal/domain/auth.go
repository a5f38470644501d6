package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sidequests/backend/internal/entity"
	"github.com/sidequests/backend/internal/model"
	"github.com/sidequests/backend/internal/repository"
	"github.com/sidequests/backend/pkg/authenticator"
	"github.com/sidequests/backend/pkg/crypto"
	"github.com/sidequests/backend/pkg/errorx"
	"github.com/sidequests/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type AuthDomain interface {
	Register(xcontext.Context, *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(xcontext.Context, *model.LoginRequest) (*model.LoginResponse, error)
	OAuth2Verify(xcontext.Context, *model.OAuth2VerifyRequest) (*model.OAuth2VerifyResponse, error)
}

type authDomain struct {
	userRepo       repository.UserRepository
	oauth2Repo     repository.OAuth2Repository
	oauth2Services []authenticator.IOAuth2Service
}

func NewAuthDomain(
	userRepo repository.UserRepository,
	oauth2Repo repository.OAuth2Repository,
	oauth2Services []authenticator.IOAuth2Service,
) AuthDomain {
	return &authDomain{
		userRepo:       userRepo,
		oauth2Repo:     oauth2Repo,
		oauth2Services: oauth2Services,
	}
}

func (d *authDomain) Register(
	ctx xcontext.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	if req.Name == "" || req.Email == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty name or email")
	}

	if len(req.Password) < 8 {
		return nil, errorx.New(errorx.BadRequest, "Password must be at least 8 characters")
	}

	_, err := d.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "This email is already registered")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.Logger().Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		ctx.Logger().Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	user := &entity.User{
		Base:           entity.Base{ID: uuid.NewString()},
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hashed,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		ctx.Logger().Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	token, err := d.generateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &model.RegisterResponse{UserID: user.ID, AccessToken: token}, nil
}

func (d *authDomain) Login(
	ctx xcontext.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	user, err := d.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid email or password")
		}

		ctx.Logger().Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	if !crypto.ComparePassword(user.HashedPassword, req.Password) {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid email or password")
	}

	token, err := d.generateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{UserID: user.ID, AccessToken: token}, nil
}

func (d *authDomain) OAuth2Verify(
	ctx xcontext.Context, req *model.OAuth2VerifyRequest,
) (*model.OAuth2VerifyResponse, error) {
	service, ok := d.getOAuth2Service(req.Service)
	if !ok {
		return nil, errorx.New(errorx.BadRequest, "Unsupported service %s", req.Service)
	}

	if req.IDToken == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty id token")
	}

	serviceUser, err := service.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		ctx.Logger().Errorf("Cannot verify id token: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByServiceUserID(ctx, service.Service(), serviceUser.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.Logger().Errorf("Cannot get user by service user id: %v", err)
			return nil, errorx.Unknown
		}

		user, err = d.registerServiceUser(ctx, service.Service(), serviceUser)
		if err != nil {
			return nil, err
		}
	}

	token, err := d.generateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &model.OAuth2VerifyResponse{UserID: user.ID, AccessToken: token}, nil
}

func (d *authDomain) registerServiceUser(
	ctx xcontext.Context, service string, serviceUser authenticator.OAuth2User,
) (*entity.User, error) {
	user := &entity.User{
		Base:  entity.Base{ID: uuid.NewString()},
		Name:  serviceUser.Username,
		Email: serviceUser.Username,
	}

	ctx.BeginTx()
	defer ctx.RollbackTx()

	if err := d.userRepo.Create(ctx, user); err != nil {
		ctx.Logger().Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	err := d.oauth2Repo.Create(ctx, &entity.OAuth2{
		UserID:        user.ID,
		Service:       service,
		ServiceUserID: serviceUser.ID,
	})
	if err != nil {
		ctx.Logger().Errorf("Cannot link user with oauth2 service: %v", err)
		return nil, errorx.Unknown
	}

	ctx.CommitTx()
	return user, nil
}

func (d *authDomain) generateAccessToken(ctx xcontext.Context, user *entity.User) (string, error) {
	token, err := ctx.TokenEngine().Generate(user.ID, model.AccessToken{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
	if err != nil {
		ctx.Logger().Errorf("Cannot generate access token: %v", err)
		return "", errorx.Unknown
	}

	return token, nil
}

func (d *authDomain) getOAuth2Service(service string) (authenticator.IOAuth2Service, bool) {
	for i := range d.oauth2Services {
		if d.oauth2Services[i].Service() == strings.ToLower(service) {
			return d.oauth2Services[i], true
		}
	}
	return nil, false
}
