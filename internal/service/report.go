package service

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/akuhn/pt/internal/config"
	"github.com/akuhn/pt/internal/models"
	"github.com/akuhn/pt/internal/storage/cache"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const reportSheet = "Report"

type ReportS struct {
	catalog CatalogI
	repo    StatsRI
	cache   *cache.Cache
	cfg     config.QuizConfig
	log     *zap.Logger
}

func NewReportService(catalog CatalogI, repo StatsRI, cache *cache.Cache, cfg config.QuizConfig, log *zap.Logger) *ReportS {
	return &ReportS{
		catalog: catalog,
		repo:    repo,
		cache:   cache,
		cfg:     cfg,
		log:     log,
	}
}

// TopFailures ranks the snapshot by failure score, where the failure n attempts back
// counts decay^n. Groups without failures and items missing from the catalog are left out.
func (r *ReportS) TopFailures(n int) []models.Difficulty {
	var ranked []models.Difficulty
	for _, g := range r.cache.Groups() {
		item, ok := r.catalog.Lookup(g.Key.Reference)
		if !ok {
			r.log.Debug("history for unknown item", zap.String("key", g.Key.String()))
			continue
		}

		score := failureScore(g, r.cfg.ReportDecay)
		if score == 0 {
			continue
		}

		var answers []string
		for _, a := range g.WrongAnswers() {
			if s := strings.TrimSpace(a); s != "" {
				answers = append(answers, s)
			}
		}

		ranked = append(ranked, models.Difficulty{
			Item:         item,
			Direction:    g.Key.Direction,
			Score:        score,
			WrongAnswers: answers,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Item.Key(ranked[i].Direction).String() < ranked[j].Item.Key(ranked[j].Direction).String()
	})

	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func failureScore(g models.AttemptGroup, decay float64) float64 {
	score := 0.0
	for i, a := range g.Attempts {
		if !a.Succeeded {
			score += math.Pow(decay, float64(i))
		}
	}
	return score
}

// Report renders the hardest items as plain text.
func (r *ReportS) Report(ctx context.Context, n int) (string, error) {
	stats, err := r.repo.AttemptStats(ctx)
	if err != nil {
		r.log.Warn("failed to get attempt stats", zap.Error(err))
		return "", err
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "# Top %d Areas of Improvement\n\n", n)
	fmt.Fprintf(&sb, "%d attempts, %d correct, %d wrong\n\n", stats.TotalCount, stats.RightCount, stats.WrongCount)

	for _, d := range r.TopFailures(n) {
		fmt.Fprintf(&sb, "Translate to %s: %s\n", language(r.cfg, d.Direction), d.Item.Question(d.Direction))
		for _, a := range d.WrongAnswers {
			sb.WriteString(a)
			sb.WriteString("\n")
		}
		sb.WriteString("Wrong, the correct answer is:\n")
		sb.WriteString(d.Item.Answer(d.Direction))
		sb.WriteString("\n0%\n\n")
	}

	return sb.String(), nil
}

// Export writes the hardest items as a spreadsheet.
func (r *ReportS) Export(w io.Writer, n int) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reportSheet)
	if err != nil {
		return fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	rows := [][]interface{}{{"Reference", "Direction", "Prompt", "Expected", "Score", "Wrong answers"}}
	for _, d := range r.TopFailures(n) {
		rows = append(rows, []interface{}{
			d.Item.Reference,
			d.Direction.Code(),
			d.Item.Question(d.Direction),
			d.Item.Answer(d.Direction),
			math.Round(d.Score*1000) / 1000,
			strings.Join(d.WrongAnswers, "; "),
		})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}
