package domain

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	mathUtil "github.com/pkg/math"
	"github.com/sidequests/backend/internal/domain/questfilter"
	"github.com/sidequests/backend/internal/domain/search"
	"github.com/sidequests/backend/internal/entity"
	"github.com/sidequests/backend/internal/model"
	"github.com/sidequests/backend/internal/repository"
	"github.com/sidequests/backend/pkg/enum"
	"github.com/sidequests/backend/pkg/errorx"
	"github.com/sidequests/backend/pkg/pubsub"
	"github.com/sidequests/backend/pkg/xcontext"
	"github.com/sidequests/backend/pkg/xredis"
	"gorm.io/gorm"
)

const feedCacheTTL = time.Minute

type QuestDomain interface {
	Create(xcontext.Context, *model.CreateQuestRequest) (*model.CreateQuestResponse, error)
	Get(xcontext.Context, *model.GetQuestRequest) (*model.GetQuestResponse, error)
	GetList(xcontext.Context, *model.GetListQuestRequest) (*model.GetListQuestResponse, error)
	GetNearby(xcontext.Context, *model.GetNearbyQuestsRequest) (*model.GetNearbyQuestsResponse, error)
	Update(xcontext.Context, *model.UpdateQuestRequest) (*model.UpdateQuestResponse, error)
	Delete(xcontext.Context, *model.DeleteQuestRequest) (*model.DeleteQuestResponse, error)

	AddToMyQuests(xcontext.Context, *model.AddToMyQuestsRequest) (*model.AddToMyQuestsResponse, error)
	GetMyQuests(xcontext.Context, *model.GetMyQuestsRequest) (*model.GetMyQuestsResponse, error)
	GetJournal(xcontext.Context, *model.GetJournalRequest) (*model.GetJournalResponse, error)
	Complete(xcontext.Context, *model.CompleteQuestRequest) (*model.CompleteQuestResponse, error)
	Remove(xcontext.Context, *model.RemoveQuestRequest) (*model.RemoveQuestResponse, error)

	GetSteps(xcontext.Context, *model.GetQuestStepsRequest) (*model.GetQuestStepsResponse, error)
	GetStepProgress(xcontext.Context, *model.GetStepProgressRequest) (*model.GetStepProgressResponse, error)
	CompleteStep(xcontext.Context, *model.CompleteQuestStepRequest) (*model.CompleteQuestStepResponse, error)
	UncompleteStep(xcontext.Context, *model.UncompleteQuestStepRequest) (*model.UncompleteQuestStepResponse, error)

	Filter(xcontext.Context, *model.FilterQuestsRequest) (*model.FilterQuestsResponse, error)
}

type questDomain struct {
	questRepo        repository.SideQuestRepository
	questStepRepo    repository.QuestStepRepository
	stepProgressRepo repository.StepProgressRepository
	categoryRepo     repository.CategoryRepository

	searchCaller search.Caller
	redisClient  xredis.Client
	publisher    pubsub.Publisher
}

func NewQuestDomain(
	questRepo repository.SideQuestRepository,
	questStepRepo repository.QuestStepRepository,
	stepProgressRepo repository.StepProgressRepository,
	categoryRepo repository.CategoryRepository,
	searchCaller search.Caller,
	redisClient xredis.Client,
	publisher pubsub.Publisher,
) QuestDomain {
	return &questDomain{
		questRepo:        questRepo,
		questStepRepo:    questStepRepo,
		stepProgressRepo: stepProgressRepo,
		categoryRepo:     categoryRepo,
		searchCaller:     searchCaller,
		redisClient:      redisClient,
		publisher:        publisher,
	}
}

func (d *questDomain) Create(
	ctx xcontext.Context, req *model.CreateQuestRequest,
) (*model.CreateQuestResponse, error) {
	userID := xcontext.GetRequestUserID(ctx)

	quest, err := d.validateQuestFields(ctx, &questFields{
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		Difficulty:    req.Difficulty,
		Uniqueness:    req.Uniqueness,
		LocationType:  req.LocationType,
		LocationText:  req.LocationText,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Cost:          req.Cost,
		DurationValue: req.DurationValue,
		DurationUnit:  req.DurationUnit,
		PhotoURL:      req.PhotoURL,
	})
	if err != nil {
		return nil, err
	}

	if len(req.Steps) > ctx.Configs().Quest.MaxSteps {
		return nil, errorx.New(errorx.BadRequest,
			"Exceed the maximum of steps (%d)", ctx.Configs().Quest.MaxSteps)
	}

	quest.Base = entity.Base{ID: uuid.NewString()}
	quest.CreatedBy = sql.NullString{Valid: true, String: userID}
	quest.IsPublic = true
	if req.IsPublic != nil {
		quest.IsPublic = *req.IsPublic
	}

	steps := make([]entity.QuestStep, 0, len(req.Steps))
	for i, step := range req.Steps {
		if step.Title == "" {
			return nil, errorx.New(errorx.BadRequest, "Not allow an empty step title")
		}

		steps = append(steps, entity.QuestStep{
			Base:        entity.Base{ID: uuid.NewString()},
			QuestID:     quest.ID,
			StepOrder:   i + 1,
			Title:       step.Title,
			Description: step.Description,
		})
	}

	ctx.BeginTx()
	defer ctx.RollbackTx()

	if err := d.questRepo.Create(ctx, quest); err != nil {
		ctx.Logger().Errorf("Cannot create quest: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.questStepRepo.CreateMany(ctx, steps); err != nil {
		ctx.Logger().Errorf("Cannot create quest steps: %v", err)
		return nil, errorx.Unknown
	}

	ctx.CommitTx()

	if quest.IsPublic {
		d.indexQuest(ctx, quest)
		d.invalidateFeedCache(ctx)
	}

	return &model.CreateQuestResponse{ID: quest.ID}, nil
}

func (d *questDomain) Get(
	ctx xcontext.Context, req *model.GetQuestRequest,
) (*model.GetQuestResponse, error) {
	quest, err := d.questRepo.GetByID(ctx, req.ID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get quest: %v", err)
		return nil, errorx.New(errorx.NotFound, "Not found quest")
	}

	if !quest.IsPublic && quest.CreatedBy.String != ctx.GetUserID() {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	steps, err := d.questStepRepo.GetByQuestID(ctx, quest.ID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get quest steps: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetQuestResponse{SideQuest: convertSideQuest(quest, d.category(ctx, quest))}
	for i := range steps {
		resp.Steps = append(resp.Steps, convertQuestStep(&steps[i]))
	}

	return resp, nil
}

func (d *questDomain) GetList(
	ctx xcontext.Context, req *model.GetListQuestRequest,
) (*model.GetListQuestResponse, error) {
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

	// Plain first pages are served from cache. Search, filters, and
	// personalized exclusion always hit the database.
	cacheable := req.Q == "" && req.Filters == "" && !req.ExcludeOwned
	cacheKey := fmt.Sprintf("feed/%d/%d", req.Offset, req.Limit)
	if cacheable {
		var cached []model.SideQuest
		if err := d.redisClient.GetObj(ctx, cacheKey, &cached); err == nil {
			return &model.GetListQuestResponse{Quests: cached}, nil
		}
	}

	var quests []entity.SideQuest
	var err error
	if req.Q != "" {
		quests, err = d.searchQuests(ctx, req.Q, req.Offset, req.Limit)
	} else {
		quests, err = d.questRepo.GetPublicList(ctx, req.Offset, req.Limit)
	}
	if err != nil {
		ctx.Logger().Errorf("Cannot get quest list: %v", err)
		return nil, errorx.Unknown
	}

	if req.Filters != "" {
		quests = questfilter.ApplyFeedFilters(quests, strings.Split(req.Filters, ","))
	}

	if req.ExcludeOwned {
		userID := ctx.GetUserID()
		if userID == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		owned, err := d.questRepo.GetAllByUserID(ctx, userID)
		if err != nil {
			ctx.Logger().Errorf("Cannot get owned quests: %v", err)
			return nil, errorx.Unknown
		}

		quests = questfilter.ExcludeOwned(quests, owned)
	}

	result := []model.SideQuest{}
	for i := range quests {
		result = append(result, convertSideQuest(&quests[i], d.category(ctx, &quests[i])))
	}

	if cacheable {
		if err := d.redisClient.SetObj(ctx, cacheKey, result, feedCacheTTL); err != nil {
			ctx.Logger().Warnf("Cannot cache quest feed: %v", err)
		}
	}

	return &model.GetListQuestResponse{Quests: result}, nil
}

func (d *questDomain) GetNearby(
	ctx xcontext.Context, req *model.GetNearbyQuestsRequest,
) (*model.GetNearbyQuestsResponse, error) {
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return nil, errorx.New(errorx.BadRequest, "Invalid coordinates")
	}

	questCfg := ctx.Configs().Quest
	radius := req.RadiusKm
	if radius <= 0 {
		radius = questCfg.NearbyDefaultRadiusKm
	}

	limit := questCfg.NearbyMaxLimit
	if req.Limit > 0 {
		limit = mathUtil.MinInt(req.Limit, questCfg.NearbyMaxLimit)
	}

	nearby, err := d.questRepo.GetNearby(ctx, req.Latitude, req.Longitude, radius, limit)
	if err != nil {
		ctx.Logger().Errorf("Cannot get nearby quests: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.SideQuest{}
	for i := range nearby {
		result = append(result, convertSideQuest(&nearby[i].SideQuest, d.category(ctx, &nearby[i].SideQuest)))
	}

	return &model.GetNearbyQuestsResponse{Quests: result}, nil
}

func (d *questDomain) Update(
	ctx xcontext.Context, req *model.UpdateQuestRequest,
) (*model.UpdateQuestResponse, error) {
	userID := xcontext.GetRequestUserID(ctx)

	quest, err := d.questRepo.GetByID(ctx, req.ID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get quest: %v", err)
		return nil, errorx.New(errorx.NotFound, "Not found quest")
	}

	if quest.CreatedBy.String != userID {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	data, err := d.validateQuestFields(ctx, &questFields{
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		Difficulty:    req.Difficulty,
		Uniqueness:    req.Uniqueness,
		LocationType:  req.LocationType,
		LocationText:  req.LocationText,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Cost:          req.Cost,
		DurationValue: req.DurationValue,
		DurationUnit:  req.DurationUnit,
		PhotoURL:      req.PhotoURL,
	})
	if err != nil {
		return nil, err
	}

	if err := d.questRepo.Update(ctx, quest.ID, data); err != nil {
		ctx.Logger().Errorf("Cannot update quest: %v", err)
		return nil, errorx.Unknown
	}

	if quest.IsPublic {
		data.Base = quest.Base
		d.indexQuest(ctx, data)
		d.invalidateFeedCache(ctx)
	}

	return &model.UpdateQuestResponse{}, nil
}

func (d *questDomain) Delete(
	ctx xcontext.Context, req *model.DeleteQuestRequest,
) (*model.DeleteQuestResponse, error) {
	userID := xcontext.GetRequestUserID(ctx)

	quest, err := d.questRepo.GetByID(ctx, req.ID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get quest: %v", err)
		return nil, errorx.New(errorx.NotFound, "Not found quest")
	}

	if err := d.questRepo.Delete(ctx, userID, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
		}

		ctx.Logger().Errorf("Cannot delete quest: %v", err)
		return nil, errorx.Unknown
	}

	if quest.IsPublic {
		if err := d.searchCaller.Delete(search.QuestDoc, quest.ID); err != nil {
			ctx.Logger().Warnf("Cannot remove quest from search index: %v", err)
		}
		d.invalidateFeedCache(ctx)
	}

	return &model.DeleteQuestResponse{}, nil
}

func (d *questDomain) AddToMyQuests(
	ctx xcontext.Context, req *model.AddToMyQuestsRequest,
) (*model.AddToMyQuestsResponse, error) {
	userID := xcontext.GetRequestUserID(ctx)

	template, err := d.questRepo.GetByID(ctx, req.QuestID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get quest: %v", err)
		return nil, errorx.New(errorx.NotFound, "Not found quest")
	}

	if !template.IsPublic {
		return nil, errorx.New(errorx.PermissionDenied, "Cannot take a private quest")
	}

	// Adding twice must not create a second copy. Ownership is decided by
	// the (name, description) pair, not by the template id.
	existing, err := d.questRepo.GetByFingerprint(ctx, userID, template.Name, template.Description)
	if err == nil {
		return &model.AddToMyQuestsResponse{ID: existing.ID, AlreadyAdded: true}, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.Logger().Errorf("Cannot check quest ownership: %v", err)
		return nil, errorx.Unknown
	}

	copyQuest, err := d.copyForUser(ctx, template, userID)
	if err != nil {
		return nil, err
	}

	return &model.AddToMyQuestsResponse{ID: copyQuest.ID}, nil
}

func (d *questDomain) GetMyQuests(
	ctx xcontext.Context, req *model.GetMyQuestsRequest,
) (*model.GetMyQuestsResponse, error) {
	userID := xcontext.GetRequestUserID(ctx)

	quests, err := d.questRepo.GetActiveByUserID(ctx, userID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get my quests: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.SideQuest{}
	for i := range quests {
		result = append(result, convertSideQuest(&quests[i], d.category(ctx, &quests[i])))
	}

	return &model.GetMyQuestsResponse{Quests: result}, nil
}

func (d *questDomain) GetJournal(
	ctx xcontext.Context, req *model.GetJournalRequest,
) (*model.GetJournalResponse, error) {
	userID := xcontext.GetRequestUserID(ctx)

	quests, err := d.questRepo.GetCompletedByUserID(ctx, userID, 0, ctx.Configs().ApiServer.MaxLimit)
	if err != nil {
		ctx.Logger().Errorf("Cannot get journal: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.SideQuest{}
	for i := range quests {
		result = append(result, convertSideQuest(&quests[i], d.category(ctx, &quests[i])))
	}

	return &model.GetJournalResponse{Quests: result}, nil
}

func (d *questDomain) Complete(
	ctx xcontext.Context, req *model.CompleteQuestRequest,
) (*model.CompleteQuestResponse, error) {
	userID := xcontext.GetRequestUserID(ctx)

	if strings.TrimSpace(req.CompletionNotes) == "" {
		return nil, errorx.New(errorx.BadRequest, "Completion notes are required")
	}

	quest, err := d.questRepo.GetByID(ctx, req.ID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get quest: %v", err)
		return nil, errorx.New(errorx.NotFound, "Not found quest")
	}

	if quest.CreatedBy.String != userID || quest.IsPublic {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if quest.IsCompleted {
		return nil, errorx.New(errorx.AlreadyExists, "This quest is already completed")
	}

	completedAt := time.Now()
	err = d.questRepo.Complete(ctx, userID, quest.ID, req.CompletionNotes, req.CompletionPhotoURL, completedAt)
	if err != nil {
		ctx.Logger().Errorf("Cannot complete quest: %v", err)
		return nil, errorx.Unknown
	}

	d.publishCompleted(ctx, quest, userID, completedAt)

	return &model.CompleteQuestResponse{}, nil
}

func (d *questDomain) Remove(
	ctx xcontext.Context, req *model.RemoveQuestRequest,
) (*model.RemoveQuestResponse, error) {
	userID := xcontext.GetRequestUserID(ctx)

	quest, err := d.questRepo.GetByID(ctx, req.ID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get quest: %v", err)
		return nil, errorx.New(errorx.NotFound, "Not found quest")
	}

	if quest.IsPublic {
		return nil, errorx.New(errorx.PermissionDenied, "Cannot remove a public quest here")
	}

	ctx.BeginTx()
	defer ctx.RollbackTx()

	if err := d.questRepo.Delete(ctx, userID, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
		}

		ctx.Logger().Errorf("Cannot remove quest: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.stepProgressRepo.DeleteByUserQuestID(ctx, req.ID); err != nil {
		ctx.Logger().Errorf("Cannot remove step progress: %v", err)
		return nil, errorx.Unknown
	}

	ctx.CommitTx()
	return &model.RemoveQuestResponse{}, nil
}

func (d *questDomain) GetSteps(
	ctx xcontext.Context, req *model.GetQuestStepsRequest,
) (*model.GetQuestStepsResponse, error) {
	steps, err := d.questStepRepo.GetByQuestID(ctx, req.QuestID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get quest steps: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetQuestStepsResponse{Steps: []model.QuestStep{}}
	for i := range steps {
		resp.Steps = append(resp.Steps, convertQuestStep(&steps[i]))
	}

	return resp, nil
}

func (d *questDomain) GetStepProgress(
	ctx xcontext.Context, req *model.GetStepProgressRequest,
) (*model.GetStepProgressResponse, error) {
	if _, err := d.ownedQuest(ctx, req.UserQuestID); err != nil {
		return nil, err
	}

	progress, err := d.stepProgressRepo.GetByUserQuestID(ctx, req.UserQuestID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get step progress: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetStepProgressResponse{Progress: []model.StepProgress{}}
	for i := range progress {
		resp.Progress = append(resp.Progress, convertStepProgress(&progress[i]))
	}

	return resp, nil
}

func (d *questDomain) CompleteStep(
	ctx xcontext.Context, req *model.CompleteQuestStepRequest,
) (*model.CompleteQuestStepResponse, error) {
	if err := d.verifyStep(ctx, req.UserQuestID, req.StepOrder); err != nil {
		return nil, err
	}

	err := d.stepProgressRepo.Upsert(ctx, &entity.StepProgress{
		Base:        entity.Base{ID: uuid.NewString()},
		UserQuestID: req.UserQuestID,
		StepOrder:   req.StepOrder,
		CompletedAt: sql.NullTime{Valid: true, Time: time.Now()},
	})
	if err != nil {
		ctx.Logger().Errorf("Cannot complete quest step: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CompleteQuestStepResponse{}, nil
}

func (d *questDomain) UncompleteStep(
	ctx xcontext.Context, req *model.UncompleteQuestStepRequest,
) (*model.UncompleteQuestStepResponse, error) {
	if err := d.verifyStep(ctx, req.UserQuestID, req.StepOrder); err != nil {
		return nil, err
	}

	if err := d.stepProgressRepo.Clear(ctx, req.UserQuestID, req.StepOrder); err != nil {
		ctx.Logger().Errorf("Cannot uncomplete quest step: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UncompleteQuestStepResponse{}, nil
}

func (d *questDomain) Filter(
	ctx xcontext.Context, req *model.FilterQuestsRequest,
) (*model.FilterQuestsResponse, error) {
	apiCfg := ctx.Configs().ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit")
	}

	criterion, err := questfilter.NewCriterion(map[string]any{
		"type":  req.Type,
		"value": req.Value,
	})
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid filter: %v", err)
	}

	quests, err := d.questRepo.GetPublicList(ctx, req.Offset, req.Limit)
	if err != nil {
		ctx.Logger().Errorf("Cannot get quest list: %v", err)
		return nil, errorx.Unknown
	}

	quests = criterion.Apply(quests)

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
		result = append(result, convertSideQuest(&quests[i], d.category(ctx, &quests[i])))
	}

	return &model.FilterQuestsResponse{Quests: result}, nil
}

type questFields struct {
	Name          string
	Description   string
	CategoryID    string
	Difficulty    int
	Uniqueness    int
	LocationType  string
	LocationText  string
	Latitude      float64
	Longitude     float64
	Cost          float64
	DurationValue int
	DurationUnit  string
	PhotoURL      string
}

func (d *questDomain) validateQuestFields(
	ctx xcontext.Context, f *questFields,
) (*entity.SideQuest, error) {
	if f.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty name")
	}

	if f.Description == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty description")
	}

	if f.Cost < 0 {
		return nil, errorx.New(errorx.BadRequest, "Cost must not be negative")
	}

	if f.Difficulty < 1 || f.Difficulty > 5 {
		return nil, errorx.New(errorx.BadRequest, "Difficulty must be between 1 and 5")
	}

	if f.Uniqueness < 1 || f.Uniqueness > 5 {
		return nil, errorx.New(errorx.BadRequest, "Uniqueness must be between 1 and 5")
	}

	locationType, err := enum.ToEnum[entity.LocationType](f.LocationType)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid location type %s", f.LocationType)
	}

	durationUnit, err := enum.ToEnum[entity.DurationUnit](f.DurationUnit)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid duration unit %s", f.DurationUnit)
	}

	if f.DurationValue <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Duration must be positive")
	}

	quest := &entity.SideQuest{
		Name:          f.Name,
		Description:   f.Description,
		Difficulty:    f.Difficulty,
		Uniqueness:    f.Uniqueness,
		LocationType:  locationType,
		LocationText:  f.LocationText,
		DurationValue: f.DurationValue,
		DurationUnit:  durationUnit,
		PhotoURL:      f.PhotoURL,
	}

	if f.CategoryID != "" {
		if _, err := d.categoryRepo.GetByID(ctx, f.CategoryID); err != nil {
			return nil, errorx.New(errorx.NotFound, "Not found category %s", f.CategoryID)
		}

		quest.CategoryID = sql.NullString{Valid: true, String: f.CategoryID}
	}

	if locationType == entity.LocationAddress {
		if f.LocationText == "" {
			return nil, errorx.New(errorx.BadRequest, "Address quests need a location text")
		}

		quest.Latitude = sql.NullFloat64{Valid: true, Float64: f.Latitude}
		quest.Longitude = sql.NullFloat64{Valid: true, Float64: f.Longitude}
	}

	if f.Cost > 0 {
		quest.Cost = sql.NullFloat64{Valid: true, Float64: f.Cost}
	}

	return quest, nil
}

func (d *questDomain) copyForUser(
	ctx xcontext.Context, template *entity.SideQuest, userID string,
) (*entity.SideQuest, error) {
	copyQuest := *template
	copyQuest.Base = entity.Base{ID: uuid.NewString()}
	copyQuest.IsPublic = false
	copyQuest.CreatedBy = sql.NullString{Valid: true, String: userID}
	copyQuest.SourceQuestID = sql.NullString{Valid: true, String: template.ID}
	copyQuest.IsCompleted = false
	copyQuest.CompletedAt = sql.NullTime{}
	copyQuest.CompletionNotes = ""
	copyQuest.CompletionPhotoURL = ""

	templateSteps, err := d.questStepRepo.GetByQuestID(ctx, template.ID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get template steps: %v", err)
		return nil, errorx.Unknown
	}

	steps := make([]entity.QuestStep, 0, len(templateSteps))
	for _, step := range templateSteps {
		steps = append(steps, entity.QuestStep{
			Base:        entity.Base{ID: uuid.NewString()},
			QuestID:     copyQuest.ID,
			StepOrder:   step.StepOrder,
			Title:       step.Title,
			Description: step.Description,
		})
	}

	ctx.BeginTx()
	defer ctx.RollbackTx()

	if err := d.questRepo.Create(ctx, &copyQuest); err != nil {
		ctx.Logger().Errorf("Cannot create quest copy: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.questStepRepo.CreateMany(ctx, steps); err != nil {
		ctx.Logger().Errorf("Cannot copy quest steps: %v", err)
		return nil, errorx.Unknown
	}

	ctx.CommitTx()
	return &copyQuest, nil
}

func (d *questDomain) ownedQuest(ctx xcontext.Context, questID string) (*entity.SideQuest, error) {
	userID := xcontext.GetRequestUserID(ctx)

	quest, err := d.questRepo.GetByID(ctx, questID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get quest: %v", err)
		return nil, errorx.New(errorx.NotFound, "Not found quest")
	}

	if quest.IsPublic || quest.CreatedBy.String != userID {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	return quest, nil
}

func (d *questDomain) verifyStep(ctx xcontext.Context, questID string, stepOrder int) error {
	quest, err := d.ownedQuest(ctx, questID)
	if err != nil {
		return err
	}

	steps, err := d.questStepRepo.GetByQuestID(ctx, quest.ID)
	if err != nil {
		ctx.Logger().Errorf("Cannot get quest steps: %v", err)
		return errorx.Unknown
	}

	for _, step := range steps {
		if step.StepOrder == stepOrder {
			return nil
		}
	}

	return errorx.New(errorx.NotFound, "Not found step %d", stepOrder)
}

func (d *questDomain) searchQuests(
	ctx xcontext.Context, query string, offset, limit int,
) ([]entity.SideQuest, error) {
	ids, err := d.searchCaller.Search(search.QuestDoc, query, offset, limit)
	if err != nil {
		return nil, err
	}

	quests, err := d.questRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Keep the relevance order returned by the index.
	byID := map[string]entity.SideQuest{}
	for i := range quests {
		byID[quests[i].ID] = quests[i]
	}

	ordered := []entity.SideQuest{}
	for _, id := range ids {
		if quest, ok := byID[id]; ok && quest.IsPublic {
			ordered = append(ordered, quest)
		}
	}

	return ordered, nil
}

func (d *questDomain) indexQuest(ctx xcontext.Context, quest *entity.SideQuest) {
	err := d.searchCaller.Index(search.QuestDoc, quest.ID, search.QuestData{
		Name:        quest.Name,
		Description: quest.Description,
	})
	if err != nil {
		ctx.Logger().Warnf("Cannot index quest: %v", err)
	}
}

func (d *questDomain) invalidateFeedCache(ctx xcontext.Context) {
	// Cached pages expire quickly; dropping the first page is enough to make
	// fresh quests show up immediately.
	key := fmt.Sprintf("feed/%d/%d", 0, ctx.Configs().ApiServer.DefaultLimit)
	if err := d.redisClient.Del(ctx, key); err != nil {
		ctx.Logger().Warnf("Cannot invalidate feed cache: %v", err)
	}
}

func (d *questDomain) publishCompleted(
	ctx xcontext.Context, quest *entity.SideQuest, userID string, completedAt time.Time,
) {
	event := model.QuestCompletedEvent{
		UserID:      userID,
		QuestID:     quest.ID,
		CategoryID:  quest.CategoryID.String,
		CompletedAt: completedAt.Format(time.RFC3339),
	}

	b, err := json.Marshal(event)
	if err != nil {
		ctx.Logger().Errorf("Cannot marshal quest completed event: %v", err)
		return
	}

	topic := ctx.Configs().Kafka.Topic
	if err := d.publisher.Publish(ctx, topic, &pubsub.Pack{Key: []byte(userID), Msg: b}); err != nil {
		ctx.Logger().Warnf("Cannot publish quest completed event: %v", err)
	}
}

func (d *questDomain) category(ctx xcontext.Context, quest *entity.SideQuest) *entity.Category {
	if !quest.CategoryID.Valid {
		return nil
	}

	category, err := d.categoryRepo.GetByID(ctx, quest.CategoryID.String)
	if err != nil {
		return nil
	}

	return category
}
