package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sidequests/backend/internal/domain"
	"github.com/sidequests/backend/pkg/kafka"
	"github.com/urfave/cli/v2"
)

func (s *srv) startSubscriber(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadRedisClient()
	s.loadRepos()

	s.statisticDomain = domain.NewStatisticDomain(s.userRepo, s.redisClient, s.logger)

	var err error
	s.subscriber, err = kafka.NewSubscriber(
		"sidequests-statistic",
		[]string{s.configs.Kafka.Addr},
		[]string{s.configs.Kafka.Topic},
		s.statisticDomain.HandleQuestCompletedEvent,
		s.logger,
	)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Infof("Starting subscriber on topic: %s", s.configs.Kafka.Topic)
	s.subscriber.Subscribe(ctx)

	<-ctx.Done()
	return s.subscriber.Stop(context.Background())
}
