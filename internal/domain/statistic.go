package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sidequests/backend/internal/entity"
	"github.com/sidequests/backend/internal/model"
	"github.com/sidequests/backend/internal/repository"
	"github.com/sidequests/backend/pkg/dateutil"
	"github.com/sidequests/backend/pkg/enum"
	"github.com/sidequests/backend/pkg/errorx"
	"github.com/sidequests/backend/pkg/logger"
	"github.com/sidequests/backend/pkg/pubsub"
	"github.com/sidequests/backend/pkg/xcontext"
	"github.com/sidequests/backend/pkg/xredis"
)

const leaderboardKeyPrefix = "leaderboard/"

type StatisticDomain interface {
	GetLeaderboard(xcontext.Context, *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
	HandleQuestCompletedEvent(ctx context.Context, pack *pubsub.Pack, t time.Time)
}

type statisticDomain struct {
	userRepo    repository.UserRepository
	redisClient xredis.Client
	logger      logger.Logger
}

func NewStatisticDomain(
	userRepo repository.UserRepository,
	redisClient xredis.Client,
	log logger.Logger,
) StatisticDomain {
	return &statisticDomain{
		userRepo:    userRepo,
		redisClient: redisClient,
		logger:      log,
	}
}

func (d *statisticDomain) GetLeaderboard(
	ctx xcontext.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
	apiCfg := ctx.Configs().ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit")
	}

	period, err := enum.ToEnum[entity.LeaderboardPeriod](req.Period)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid period %s", req.Period)
	}

	value, err := dateutil.GetCurrentValueByPeriod(period)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid period %s", req.Period)
	}

	scores, err := d.redisClient.ZRevRangeWithScores(ctx, leaderboardKeyPrefix+value, req.Offset, req.Limit)
	if err != nil {
		ctx.Logger().Errorf("Cannot get leaderboard: %v", err)
		return nil, errorx.Unknown
	}

	entries := []model.LeaderboardEntry{}
	for _, z := range scores {
		userID, ok := z.Member.(string)
		if !ok {
			continue
		}

		entry := model.LeaderboardEntry{
			UserID:         userID,
			CompletedCount: int64(z.Score),
		}

		if user, err := d.userRepo.GetByID(ctx, userID); err == nil {
			entry.Name = user.Name
		}

		entries = append(entries, entry)
	}

	return &model.GetLeaderboardResponse{Entries: entries}, nil
}

func (d *statisticDomain) HandleQuestCompletedEvent(
	ctx context.Context, pack *pubsub.Pack, t time.Time,
) {
	var event model.QuestCompletedEvent
	if err := json.Unmarshal(pack.Msg, &event); err != nil {
		d.logger.Errorf("Cannot unmarshal quest completed event: %v", err)
		return
	}

	completedAt, err := time.Parse(time.RFC3339, event.CompletedAt)
	if err != nil {
		completedAt = t
	}

	periods := []entity.LeaderboardPeriod{
		entity.LeaderboardPeriodWeek,
		entity.LeaderboardPeriodMonth,
		entity.LeaderboardPeriodTotal,
	}

	for _, period := range periods {
		value, err := dateutil.GetValueByPeriod(completedAt, period)
		if err != nil {
			d.logger.Errorf("Cannot build leaderboard key: %v", err)
			continue
		}

		err = d.redisClient.ZIncrBy(ctx, leaderboardKeyPrefix+value, 1, event.UserID)
		if err != nil {
			d.logger.Errorf("Cannot increase leaderboard score: %v", err)
		}
	}
}
