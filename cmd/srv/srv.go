package main

import (
	"context"
	"net/http"
	"os"

	"github.com/sidequests/backend/config"
	"github.com/sidequests/backend/internal/domain"
	"github.com/sidequests/backend/internal/domain/search"
	"github.com/sidequests/backend/internal/entity"
	"github.com/sidequests/backend/internal/repository"
	"github.com/sidequests/backend/pkg/api/nominatim"
	"github.com/sidequests/backend/pkg/authenticator"
	"github.com/sidequests/backend/pkg/kafka"
	"github.com/sidequests/backend/pkg/logger"
	"github.com/sidequests/backend/pkg/pubsub"
	"github.com/sidequests/backend/pkg/router"
	"github.com/sidequests/backend/pkg/storage"
	"github.com/sidequests/backend/pkg/xredis"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	configs config.Configs
	logger  logger.Logger
	db      *gorm.DB

	storage        storage.Storage
	redisClient    xredis.Client
	publisher      pubsub.Publisher
	subscriber     pubsub.Subscriber
	searchCaller   search.Caller
	oauth2Services []authenticator.IOAuth2Service
	nominatim      *nominatim.Endpoint

	userRepo         repository.UserRepository
	oauth2Repo       repository.OAuth2Repository
	categoryRepo     repository.CategoryRepository
	questRepo        repository.SideQuestRepository
	questStepRepo    repository.QuestStepRepository
	stepProgressRepo repository.StepProgressRepository
	wishlistRepo     repository.WishlistRepository

	authDomain      domain.AuthDomain
	userDomain      domain.UserDomain
	categoryDomain  domain.CategoryDomain
	questDomain     domain.QuestDomain
	wishlistDomain  domain.WishlistDomain
	geocodeDomain   domain.GeocodeDomain
	fileDomain      domain.FileDomain
	statisticDomain domain.StatisticDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig() {
	configs, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic(err)
	}

	s.configs = configs
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(logger.LevelFromString(s.configs.LogLevel))
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	if err := entity.MigrateTable(s.db); err != nil {
		panic(err)
	}
}

func (s *srv) loadStorage() {
	s.storage = storage.NewS3Storage(s.configs.Storage)
}

func (s *srv) loadRedisClient() {
	var err error
	s.redisClient, err = xredis.NewClient(context.Background(), s.configs.Redis)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadPublisher() {
	var err error
	s.publisher, err = kafka.NewPublisher("sidequests-api", []string{s.configs.Kafka.Addr})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadSearchCaller() {
	s.searchCaller = search.NewBleveIndex(s.configs.Search, s.logger)
}

func (s *srv) loadEndpoint() {
	googleService, err := authenticator.NewOAuth2Service(context.Background(), s.configs.Auth.Google)
	if err != nil {
		panic(err)
	}

	s.oauth2Services = []authenticator.IOAuth2Service{googleService}
	s.nominatim = nominatim.New(s.configs.Geocode)
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.oauth2Repo = repository.NewOAuth2Repository()
	s.categoryRepo = repository.NewCategoryRepository()
	s.questRepo = repository.NewSideQuestRepository()
	s.questStepRepo = repository.NewQuestStepRepository()
	s.stepProgressRepo = repository.NewStepProgressRepository()
	s.wishlistRepo = repository.NewWishlistRepository()
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.userRepo, s.oauth2Repo, s.oauth2Services)
	s.userDomain = domain.NewUserDomain(s.userRepo)
	s.categoryDomain = domain.NewCategoryDomain(s.categoryRepo, s.questRepo)
	s.questDomain = domain.NewQuestDomain(
		s.questRepo, s.questStepRepo, s.stepProgressRepo, s.categoryRepo,
		s.searchCaller, s.redisClient, s.publisher,
	)
	s.wishlistDomain = domain.NewWishlistDomain(
		s.wishlistRepo, s.questRepo, s.questStepRepo, s.questDomain)
	s.geocodeDomain = domain.NewGeocodeDomain(s.nominatim)
	s.fileDomain = domain.NewFileDomain(s.storage)
	s.statisticDomain = domain.NewStatisticDomain(s.userRepo, s.redisClient, s.logger)
}
