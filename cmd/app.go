package main

import (
	"log"

	"github.com/akuhn/pt/internal/catalog"
	"github.com/akuhn/pt/internal/client"
	"github.com/akuhn/pt/internal/config"
	"github.com/akuhn/pt/internal/repository"
	"github.com/akuhn/pt/internal/scheduler"
	"github.com/akuhn/pt/internal/service"
	"github.com/akuhn/pt/internal/storage/cache"
	"github.com/akuhn/pt/internal/storage/db"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type app struct {
	cfg      *config.Config
	log      *zap.Logger
	db       *sqlx.DB
	cache    *cache.Cache
	services *service.Service
}

func newApp(configPath string) *app {
	cfg, err := config.Init(configPath)
	if err != nil {
		log.Fatal("failed load config " + err.Error())
	}

	logger := setupLogger(cfg.Env)

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	repos := repository.NewRepository(db, cfg.DB.Driver)

	words, err := catalog.LoadFile(cfg.Quiz.WordsFile)
	if err != nil {
		logger.Fatal("failed load words", zap.String("file", cfg.Quiz.WordsFile), zap.Error(err))
	}
	logger.Debug("catalog loaded", zap.Int("items", words.Len()))

	cache := cache.NewCache()
	services := service.InitServices(words, repos, newSpeaker(cfg.Speech, logger), cache, scheduler.NewRandomSource(), cfg.Quiz, logger)

	return &app{
		cfg:      cfg,
		log:      logger,
		db:       db,
		cache:    cache,
		services: services,
	}
}

func newSpeaker(cfg config.SpeechConfig, log *zap.Logger) service.SpeakerI {
	if !cfg.Enabled {
		return client.Silent{}
	}
	say, err := client.NewSayCommand(cfg.Command)
	if err != nil {
		log.Warn("speech disabled", zap.Error(err))
		return client.Silent{}
	}
	return say
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn("failed to close db", zap.Error(err))
	}
	_ = a.log.Sync()
}
