package main

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/sidequests/backend/internal/domain/search"
	"github.com/sidequests/backend/internal/entity"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCron(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadSearchCaller()

	defer s.searchCaller.Close()

	sched, err := gocron.NewScheduler()
	if err != nil {
		panic(err)
	}

	// Daily rebuild keeps the index consistent with quests changed outside
	// the api process.
	_, err = sched.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(s.reindexQuests),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		panic(err)
	}

	s.logger.Infof("Starting cron jobs")
	sched.Start()

	select {}
}

func (s *srv) reindexQuests() {
	var quests []entity.SideQuest
	if err := s.db.Where("is_public=?", true).Find(&quests).Error; err != nil {
		s.logger.Errorf("Cannot load quests for reindexing: %v", err)
		return
	}

	for i := range quests {
		err := s.searchCaller.Index(search.QuestDoc, quests[i].ID, search.QuestData{
			Name:        quests[i].Name,
			Description: quests[i].Description,
		})
		if err != nil {
			s.logger.Errorf("Cannot index quest %s: %v", quests[i].ID, err)
		}
	}

	s.logger.Infof("Reindexed %d quests", len(quests))
}
