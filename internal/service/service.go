package service

//go:generate mockgen -source=service.go -destination=mock/mock_service.go

import (
	"context"
	"strings"

	"github.com/akuhn/pt/internal/config"
	"github.com/akuhn/pt/internal/models"
	"github.com/akuhn/pt/internal/scheduler"
	"github.com/akuhn/pt/internal/storage/cache"
	"go.uber.org/zap"
)

type AttemptRI interface {
	AppendAttempt(ctx context.Context, item models.Item, attempt models.Attempt) error
	LoadAllAttempts(ctx context.Context) ([]models.Attempt, error)
}

type StatsRI interface {
	AttemptStats(ctx context.Context) (models.AttemptStats, error)
}

type RepositoryI interface {
	AttemptRI
	StatsRI
}

type CatalogI interface {
	Items() []models.Item
	Lookup(ref string) (models.Item, bool)
}

type SpeakerI interface {
	Say(ctx context.Context, text string, item models.Item) error
}

// DialogI is the conversation with the user. Answer returns io.EOF when the user is gone.
type DialogI interface {
	Send(ctx context.Context, text string) error
	Answer(ctx context.Context) (string, error)
}

type Service struct {
	*QuizS
	*ReportS
}

func InitServices(
	catalog CatalogI,
	repo RepositoryI,
	speaker SpeakerI,
	cache *cache.Cache,
	rnd scheduler.RandomSource,
	cfg config.QuizConfig,
	log *zap.Logger,
) *Service {
	return &Service{
		QuizS:   NewQuizService(catalog, repo, speaker, cache, rnd, cfg, log),
		ReportS: NewReportService(catalog, repo, cache, cfg, log),
	}
}

// language returns the upper-cased label of the form the user has to type.
func language(cfg config.QuizConfig, d models.Direction) string {
	if d == models.DirectionBA {
		return strings.ToUpper(cfg.LangA)
	}
	return strings.ToUpper(cfg.LangB)
}
