package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/akuhn/pt/internal/config"
	"github.com/akuhn/pt/internal/models"
	"github.com/akuhn/pt/internal/scheduler"
	"github.com/akuhn/pt/internal/storage/cache"
	"go.uber.org/zap"
)

type QuizS struct {
	catalog  CatalogI
	repo     AttemptRI
	speaker  SpeakerI
	cache    *cache.Cache
	selector *scheduler.Selector
	cfg      config.QuizConfig
	log      *zap.Logger
	now      func() time.Time
}

func NewQuizService(
	catalog CatalogI,
	repo AttemptRI,
	speaker SpeakerI,
	cache *cache.Cache,
	rnd scheduler.RandomSource,
	cfg config.QuizConfig,
	log *zap.Logger,
) *QuizS {
	return &QuizS{
		catalog:  catalog,
		repo:     repo,
		speaker:  speaker,
		cache:    cache,
		selector: scheduler.NewSelector(rnd, cfg.SessionSize),
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// Prepare loads the attempt log and stores the aggregated history and weights as the
// snapshot used for the rest of the session.
func (q *QuizS) Prepare(ctx context.Context) error {
	attempts, err := q.repo.LoadAllAttempts(ctx)
	if err != nil {
		q.log.Error("failed to load history", zap.Error(err))
		return err
	}

	groups := scheduler.Aggregate(attempts)
	table := scheduler.Assign(groups, q.cfg.DefaultWeight)
	q.cache.SetSnapshot(groups, table)

	q.log.Debug("history loaded",
		zap.Int("attempts", len(attempts)),
		zap.Int("groups", len(groups)),
	)

	return nil
}

// Run asks the selected questions one by one. It stops early, without error, when the
// dialog reports end of input.
func (q *QuizS) Run(ctx context.Context, dialog DialogI) (models.SessionStats, error) {
	questions := q.selector.Select(q.catalog.Items(), q.cache.Table())
	q.log.Debug("session selected", zap.Int("questions", len(questions)))

	state := models.SessionStats{}
	for _, question := range questions {
		next, err := q.askQuestion(ctx, dialog, state, question)
		if errors.Is(err, io.EOF) {
			q.log.Info("session stopped by user", zap.Int("answered", state.Total()))
			break
		}
		if err != nil {
			return state, err
		}
		state = next
	}

	results := fmt.Sprintf("Results:\nCorrect: %d\nWrong: %d", state.Correct, state.Wrong)
	if err := dialog.Send(ctx, results); err != nil {
		q.log.Warn("failed to send results", zap.Error(err))
	}

	return state, nil
}

func (q *QuizS) askQuestion(ctx context.Context, dialog DialogI, state models.SessionStats, question scheduler.Question) (models.SessionStats, error) {
	item, d := question.Item, question.Direction

	prompt := fmt.Sprintf("Translate to %s: %s", language(q.cfg, d), item.Question(d))
	if err := dialog.Send(ctx, prompt); err != nil {
		return state, fmt.Errorf("failed to ask %s: %w", question.Key(), err)
	}

	typed, err := dialog.Answer(ctx)
	if err != nil {
		return state, err
	}
	typed = strings.TrimSpace(typed)

	expected := item.Answer(d)
	success := matchAnswer(expected, typed)

	var feedback []string
	if success {
		state.Correct++
		feedback = append(feedback, "Correct!")
	} else {
		state.Wrong++
		if g, ok := q.cache.GetGroup(question.Key()); ok {
			for _, previous := range g.WrongAnswers() {
				if strings.TrimSpace(previous) != "" {
					feedback = append(feedback, previous)
				}
			}
		}
		feedback = append(feedback, "Wrong, the correct answer is:\n"+expected)
	}

	if err := dialog.Send(ctx, strings.Join(feedback, "\n")); err != nil {
		q.log.Warn("failed to send feedback", zap.String("key", question.Key().String()), zap.Error(err))
	}

	if err := q.speaker.Say(ctx, item.FormA, item); err != nil {
		q.log.Warn("speech unavailable", zap.String("reference", item.Reference), zap.Error(err))
	}

	attempt := models.Attempt{
		Reference: item.Reference,
		Direction: d,
		Succeeded: success,
		Timestamp: q.now(),
	}
	if !success {
		attempt.TypedAnswer = &typed
	}
	if err := q.repo.AppendAttempt(ctx, item, attempt); err != nil {
		q.log.Error("failed to record attempt", zap.String("key", question.Key().String()), zap.Error(err))
		return state, err
	}

	if err := dialog.Send(ctx, fmt.Sprintf("%d%%\n", state.Percent())); err != nil {
		q.log.Warn("failed to send score", zap.Error(err))
	}

	return state, nil
}
