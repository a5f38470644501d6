package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sidequests/backend/internal/model"
	"github.com/sidequests/backend/internal/repository"
	"github.com/sidequests/backend/pkg/logger"
	"github.com/sidequests/backend/pkg/pubsub"
	"github.com/sidequests/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_statisticDomain_HandleQuestCompletedEvent(t *testing.T) {
	incremented := map[string]int64{}
	redisClient := &testutil.MockRedisClient{
		ZIncrByFunc: func(_ context.Context, key string, incr int64, member string) error {
			require.Equal(t, testutil.User1.ID, member)
			incremented[key] += incr
			return nil
		},
	}

	d := NewStatisticDomain(
		repository.NewUserRepository(), redisClient, logger.NewLogger(logger.SILENCE))

	completedAt := time.Date(2024, time.March, 6, 12, 0, 0, 0, time.UTC)
	msg, err := json.Marshal(model.QuestCompletedEvent{
		UserID:      testutil.User1.ID,
		QuestID:     testutil.Quest1.ID,
		CompletedAt: completedAt.Format(time.RFC3339),
	})
	require.NoError(t, err)

	d.HandleQuestCompletedEvent(context.Background(), &pubsub.Pack{Msg: msg}, time.Now())

	year, week := completedAt.ISOWeek()
	require.Equal(t, int64(1), incremented[fmt.Sprintf("leaderboard/week/%d/%d", week, year)])
	require.Equal(t, int64(1), incremented["leaderboard/month/3/2024"])
	require.Equal(t, int64(1), incremented["leaderboard/total"])
}

func Test_statisticDomain_HandleQuestCompletedEvent_BadTimestamp(t *testing.T) {
	var keys []string
	redisClient := &testutil.MockRedisClient{
		ZIncrByFunc: func(_ context.Context, key string, incr int64, member string) error {
			keys = append(keys, key)
			return nil
		},
	}

	d := NewStatisticDomain(
		repository.NewUserRepository(), redisClient, logger.NewLogger(logger.SILENCE))

	msg, err := json.Marshal(model.QuestCompletedEvent{
		UserID:      testutil.User1.ID,
		QuestID:     testutil.Quest1.ID,
		CompletedAt: "not-a-timestamp",
	})
	require.NoError(t, err)

	// An unparseable timestamp falls back to the receive time.
	now := time.Date(2024, time.July, 1, 8, 0, 0, 0, time.UTC)
	d.HandleQuestCompletedEvent(context.Background(), &pubsub.Pack{Msg: msg}, now)

	year, week := now.ISOWeek()
	require.Contains(t, keys, fmt.Sprintf("leaderboard/week/%d/%d", week, year))
	require.Contains(t, keys, "leaderboard/month/7/2024")
	require.Contains(t, keys, "leaderboard/total")
}

func Test_statisticDomain_GetLeaderboard(t *testing.T) {
	db := testutil.CreateFixtureDb()
	redisClient := &testutil.MockRedisClient{
		ZRevRangeWithScoresFunc: func(_ context.Context, key string, offset, limit int) ([]redis.Z, error) {
			return []redis.Z{
				{Member: testutil.User1.ID, Score: 5},
				{Member: testutil.User2.ID, Score: 2},
			}, nil
		},
	}

	d := NewStatisticDomain(
		repository.NewUserRepository(), redisClient, logger.NewLogger(logger.SILENCE))
	ctx := testutil.NewMockContextWithDb(db)

	resp, err := d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Period: "week"})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	require.Equal(t, testutil.User1.Name, resp.Entries[0].Name)
	require.Equal(t, int64(5), resp.Entries[0].CompletedCount)
	require.Equal(t, testutil.User2.ID, resp.Entries[1].UserID)

	_, err = d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Period: "decade"})
	require.Error(t, err)
}
