package testutil

import (
	"context"
	"net/http/httptest"
	"time"

	"github.com/sidequests/backend/config"
	"github.com/sidequests/backend/pkg/logger"
	"github.com/sidequests/backend/pkg/xcontext"
	"gorm.io/gorm"
)

func MockConfigs() config.Configs {
	return config.Configs{
		Env:      "testing",
		LogLevel: "silence",
		ApiServer: config.ServerConfigs{
			Host:         "localhost",
			Port:         "8080",
			DefaultLimit: 20,
			MaxLimit:     50,
		},
		Auth: config.AuthConfigs{
			TokenSecret:     "secret",
			AccessTokenName: "access_token",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
		},
		Session: config.SessionConfigs{
			Secret: "secret",
			Name:   "session",
		},
		File: config.FileConfigs{
			MaxSize:     2 * 1024 * 1024,
			ImageBucket: "images",
		},
		Quest: config.QuestConfigs{
			MaxSteps:              20,
			NearbyDefaultRadiusKm: 10,
			NearbyMaxLimit:        20,
		},
		Kafka: config.KafkaConfigs{
			Addr:  "localhost:9092",
			Topic: "quest_events",
		},
	}
}

func NewMockContext() xcontext.Context {
	return NewMockContextWithDb(CreateFixtureDb())
}

func NewMockContextWithDb(db *gorm.DB) xcontext.Context {
	r := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	return xcontext.NewContext(context.Background(), r, w,
		MockConfigs(), logger.NewLogger(logger.SILENCE), db)
}

func NewMockContextWithUserID(db *gorm.DB, userID string) xcontext.Context {
	if db == nil {
		db = CreateFixtureDb()
	}

	ctx := NewMockContextWithDb(db)
	xcontext.SetRequestUserID(ctx, userID)
	return ctx
}
