package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"alphadash/internal/client/refdata"
	"alphadash/internal/models"
	"alphadash/internal/perf"
	"alphadash/internal/repository"
)

// MarketSnapshotService polls the reference-data sidecar for every ticker with
// a project currently in its execution window and stores one snapshot per
// ticker per day. Failures are logged and skipped; a bad ticker must not
// starve the rest.
type MarketSnapshotService struct {
	Repo   repository.Repository
	Client *refdata.Client
	Logger *zap.Logger
}

func (s *MarketSnapshotService) RunOnce(ctx context.Context) error {
	if s == nil || s.Repo == nil || s.Client == nil {
		return nil
	}
	today := time.Now().UTC().Format("2006-01-02")

	projects, err := s.Repo.ListProjects(ctx, repository.ListProjectsParams{})
	if err != nil {
		return err
	}

	seen := make(map[string]struct{})
	for _, p := range projects {
		ticker := strings.TrimSpace(p.Ticker)
		if ticker == "" || !coversDay(p, today) {
			continue
		}
		if _, ok := seen[ticker]; ok {
			continue
		}
		seen[ticker] = struct{}{}

		quote, err := s.Client.ReferenceData(ctx, ticker)
		if err != nil {
			if s.Logger != nil {
				s.Logger.Warn("refdata fetch failed",
					zap.String("ticker", ticker), zap.Error(err))
			}
			continue
		}

		snap := &models.MarketSnapshot{
			Ticker:       quote.Ticker,
			SnapshotDate: today,
			Price:        quote.Price,
			AllDayVWAP:   quote.AllDayVWAP,
			ChgPct1D:     quote.ChgPct1D,
			FetchedAt:    time.Now().UTC(),
		}
		if err := s.Repo.UpsertMarketSnapshot(ctx, snap); err != nil {
			if s.Logger != nil {
				s.Logger.Warn("snapshot upsert failed",
					zap.String("ticker", ticker), zap.Error(err))
			}
			continue
		}
	}

	if s.Logger != nil {
		s.Logger.Info("market snapshot pass complete", zap.Int("tickers", len(seen)))
	}
	return nil
}

func coversDay(p models.Project, day string) bool {
	start := perf.DayKey(p.StartDate)
	end := perf.DayKey(p.EndDate)
	if start != "" && day < start {
		return false
	}
	if end != "" && day > end {
		return false
	}
	return true
}
