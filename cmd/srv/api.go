package main

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"
	"github.com/sidequests/backend/internal/middleware"
	"github.com/sidequests/backend/pkg/router"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()
	s.loadStorage()
	s.loadRedisClient()
	s.loadPublisher()
	s.loadSearchCaller()
	s.loadEndpoint()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	defer s.searchCaller.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: c.Handler(s.router.Handler()),
	}

	s.logger.Infof("Starting server on port: %s", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	// Auth API.
	authRouter := s.router.Branch()
	authRouter.After(middleware.HandleSetAccessToken())
	authRouter.After(middleware.HandleSaveSession())
	{
		router.POST(authRouter, "/register", s.authDomain.Register)
		router.POST(authRouter, "/login", s.authDomain.Login)
		router.POST(authRouter, "/verifyOAuth2", s.authDomain.OAuth2Verify)
	}

	// These following APIs need authentication.
	authedRouter := s.router.Branch()
	authedRouter.Before(middleware.Authenticate)
	{
		// User API.
		router.GET(authedRouter, "/getMe", s.userDomain.GetMe)
		router.POST(authedRouter, "/updateUser", s.userDomain.Update)

		// Quest API.
		router.POST(authedRouter, "/createQuest", s.questDomain.Create)
		router.POST(authedRouter, "/updateQuest", s.questDomain.Update)
		router.POST(authedRouter, "/deleteQuest", s.questDomain.Delete)

		// My quests API.
		router.POST(authedRouter, "/addToMyQuests", s.questDomain.AddToMyQuests)
		router.GET(authedRouter, "/getMyQuests", s.questDomain.GetMyQuests)
		router.GET(authedRouter, "/getJournal", s.questDomain.GetJournal)
		router.POST(authedRouter, "/completeQuest", s.questDomain.Complete)
		router.POST(authedRouter, "/removeQuest", s.questDomain.Remove)

		// Step API.
		router.GET(authedRouter, "/getStepProgress", s.questDomain.GetStepProgress)
		router.POST(authedRouter, "/completeQuestStep", s.questDomain.CompleteStep)
		router.POST(authedRouter, "/uncompleteQuestStep", s.questDomain.UncompleteStep)

		// Wishlist API.
		router.POST(authedRouter, "/addToWishlist", s.wishlistDomain.Add)
		router.POST(authedRouter, "/removeFromWishlist", s.wishlistDomain.Remove)
		router.GET(authedRouter, "/getWishlist", s.wishlistDomain.GetList)
		router.POST(authedRouter, "/startQuest", s.wishlistDomain.StartQuest)

		// Image API.
		router.POST(authedRouter, "/uploadImage", s.fileDomain.UploadImage)
		router.POST(authedRouter, "/uploadAvatar", s.fileDomain.UploadAvatar)
	}

	// Public API.
	router.GET(s.router, "/getUser", s.userDomain.GetMe)
	router.GET(s.router, "/getQuest", s.questDomain.Get)
	router.GET(s.router, "/getListQuest", s.questDomain.GetList)
	router.GET(s.router, "/getNearbyQuests", s.questDomain.GetNearby)
	router.GET(s.router, "/filterQuests", s.questDomain.Filter)
	router.GET(s.router, "/getQuestSteps", s.questDomain.GetSteps)
	router.GET(s.router, "/getListCategory", s.categoryDomain.GetList)
	router.GET(s.router, "/getCategoryQuests", s.categoryDomain.GetCategoryQuests)
	router.GET(s.router, "/searchAddress", s.geocodeDomain.SearchAddress)
	router.GET(s.router, "/getLeaderboard", s.statisticDomain.GetLeaderboard)
}
