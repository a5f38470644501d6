package domain

import (
	"errors"

	"github.com/sidequests/backend/internal/entity"
	"github.com/sidequests/backend/internal/model"
	"github.com/sidequests/backend/internal/repository"
	"github.com/sidequests/backend/pkg/errorx"
	"github.com/sidequests/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type WishlistDomain interface {
	Add(xcontext.Context, *model.AddToWishlistRequest) (*model.AddToWishlistResponse, error)
	Remove(xcontext.Context, *model.RemoveFromWishlistRequest) (*model.RemoveFromWishlistResponse, error)
	GetList(xcontext.Context, *model.GetWishlistRequest) (*model.GetWishlistResponse, error)
	StartQuest(xcontext.Context, *model.StartQuestRequest) (*model.StartQuestResponse, error)
}

type wishlistDomain struct {
	wishlistRepo  repository.WishlistRepository
	questRepo     repository.SideQuestRepository
	questStepRepo repository.QuestStepRepository
	questDomain   QuestDomain
}

func NewWishlistDomain(
	wishlistRepo repository.WishlistRepository,
	questRepo repository.SideQuestRepository,
	questStepRepo repository.QuestStepRepository,
	questDomain QuestDomain,
) WishlistDomain {
	return &wishlistDomain{
		wishlistRepo:  wishlistRepo,
		questRepo:     questRepo,
		questStepRepo: questStepRepo,
		questDomain:   questDomain,
	}
}

func (d *wishlistDomain) Add(
	ctx xcontext.Context, req *model.AddToWishlistRequest,
) (*model.AddToWishlistResponse, error) {
	userID := xcontext.GetRequestUserID(ctx)

	quest, err := d.questRepo.GetByID(ctx, req.QuestID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get quest: %v", err)
		return nil, errorx.New(errorx.NotFound, "Not found quest")
	}

	if !quest.IsPublic {
		return nil, errorx.New(errorx.PermissionDenied, "Cannot wishlist a private quest")
	}

	if _, err := d.wishlistRepo.Get(ctx, userID, quest.ID); err == nil {
		return &model.AddToWishlistResponse{}, nil
	}

	err = d.wishlistRepo.Create(ctx, &entity.Wishlist{UserID: userID, QuestID: quest.ID})
	if err != nil {
		ctx.Logger().Errorf("Cannot add quest to wishlist: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AddToWishlistResponse{}, nil
}

func (d *wishlistDomain) Remove(
	ctx xcontext.Context, req *model.RemoveFromWishlistRequest,
) (*model.RemoveFromWishlistResponse, error) {
	userID := xcontext.GetRequestUserID(ctx)

	if err := d.wishlistRepo.Delete(ctx, userID, req.QuestID); err != nil {
		ctx.Logger().Errorf("Cannot remove quest from wishlist: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RemoveFromWishlistResponse{}, nil
}

func (d *wishlistDomain) GetList(
	ctx xcontext.Context, req *model.GetWishlistRequest,
) (*model.GetWishlistResponse, error) {
	userID := xcontext.GetRequestUserID(ctx)

	items, err := d.wishlistRepo.GetByUserID(ctx, userID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get wishlist: %v", err)
		return nil, errorx.Unknown
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.QuestID)
	}

	quests, err := d.questRepo.GetByIDs(ctx, ids)
	if err != nil {
		ctx.Logger().Errorf("Cannot get wishlist quests: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.SideQuest{}
	for i := range quests {
		result = append(result, convertSideQuest(&quests[i], nil))
	}

	return &model.GetWishlistResponse{Quests: result}, nil
}

func (d *wishlistDomain) StartQuest(
	ctx xcontext.Context, req *model.StartQuestRequest,
) (*model.StartQuestResponse, error) {
	userID := xcontext.GetRequestUserID(ctx)

	if _, err := d.wishlistRepo.Get(ctx, userID, req.QuestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "This quest is not in your wishlist")
		}

		ctx.Logger().Errorf("Cannot get wishlist item: %v", err)
		return nil, errorx.Unknown
	}

	resp, err := d.questDomain.AddToMyQuests(ctx, &model.AddToMyQuestsRequest{QuestID: req.QuestID})
	if err != nil {
		return nil, err
	}

	// The copy already exists at this point. A failure here leaves the item
	// on the wishlist, which is harmless; starting again is idempotent.
	if err := d.wishlistRepo.Delete(ctx, userID, req.QuestID); err != nil {
		ctx.Logger().Warnf("Cannot remove started quest from wishlist: %v", err)
	}

	return &model.StartQuestResponse{ID: resp.ID}, nil
}
