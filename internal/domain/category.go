package domain

import (
	"github.com/sidequests/backend/internal/domain/questfilter"
	"github.com/sidequests/backend/internal/model"
	"github.com/sidequests/backend/internal/repository"
	"github.com/sidequests/backend/pkg/errorx"
	"github.com/sidequests/backend/pkg/xcontext"
)

type CategoryDomain interface {
	GetList(xcontext.Context, *model.GetListCategoryRequest) (*model.GetListCategoryResponse, error)
	GetCategoryQuests(xcontext.Context, *model.GetCategoryQuestsRequest) (*model.GetCategoryQuestsResponse, error)
}

type categoryDomain struct {
	categoryRepo repository.CategoryRepository
	questRepo    repository.SideQuestRepository
}

func NewCategoryDomain(
	categoryRepo repository.CategoryRepository,
	questRepo repository.SideQuestRepository,
) CategoryDomain {
	return &categoryDomain{
		categoryRepo: categoryRepo,
		questRepo:    questRepo,
	}
}

func (d *categoryDomain) GetList(
	ctx xcontext.Context, req *model.GetListCategoryRequest,
) (*model.GetListCategoryResponse, error) {
	categories, err := d.categoryRepo.GetList(ctx)
	if err != nil {
		ctx.Logger().Errorf("Cannot get category list: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Category{}
	for i := range categories {
		result = append(result, convertCategory(&categories[i]))
	}

	return &model.GetListCategoryResponse{Categories: result}, nil
}

func (d *categoryDomain) GetCategoryQuests(
	ctx xcontext.Context, req *model.GetCategoryQuestsRequest,
) (*model.GetCategoryQuestsResponse, error) {
	apiCfg := ctx.Configs().ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	category, err := d.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get category: %v", err)
		return nil, errorx.New(errorx.NotFound, "Not found category")
	}

	quests, err := d.questRepo.GetPublicByCategory(ctx, category.ID, req.Offset, req.Limit)
	if err != nil {
		ctx.Logger().Errorf("Cannot get quests of category: %v", err)
		return nil, errorx.Unknown
	}

	// Hide templates the caller has already taken a copy of.
	if userID := ctx.GetUserID(); userID != "" {
		owned, err := d.questRepo.GetAllByUserID(ctx, userID)
		if err != nil {
			ctx.Logger().Errorf("Cannot get owned quests: %v", err)
			return nil, errorx.Unknown
		}

		quests = questfilter.ExcludeOwned(quests, owned)
	}

	result := []model.SideQuest{}
	for i := range quests {
		result = append(result, convertSideQuest(&quests[i], category))
	}

	return &model.GetCategoryQuestsResponse{Quests: result}, nil
}
