package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"alphadash/internal/models"
)

func dp(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func sp(s string) *string { return &s }

func intp(v int) *int { return &v }

func seedProject(repo *stubRepo, projectID string) models.Project {
	p := models.Project{
		ProjectID:    sp(projectID),
		Ticker:       "700 HK Equity",
		Side:         models.SideBuy,
		TotalShares:  dp(1000),
		BusinessDays: intp(10),
	}
	_ = repo.InsertProject(context.Background(), &p)
	return p
}

func seedOrder(repo *stubRepo, parent, date string, qty, avgPx, vwapPx float64) {
	o := models.ChildOrder{
		ParentOrderID: parent,
		TradeDate:     date,
		ExecQty:       dp(qty),
		AvgPx:         dp(avgPx),
		VwapPx:        dp(vwapPx),
	}
	_ = repo.InsertChildOrder(context.Background(), &o)
}

func TestProjectDetail(t *testing.T) {
	repo := &stubRepo{}
	seedProject(repo, "PO-1")
	seedOrder(repo, "PO-1", "2025-03-03", 100, 10, 10)
	seedOrder(repo, "PO-1", "2025-03-04", 100, 9, 11)
	seedOrder(repo, "PO-2", "2025-03-03", 999, 1, 1)

	svc := &ProjectQueryService{Repo: repo}
	detail, err := svc.ProjectDetail(context.Background(), "PO-1")
	if err != nil {
		t.Fatalf("ProjectDetail: %v", err)
	}
	if detail == nil {
		t.Fatal("detail = nil")
	}
	if len(detail.Orders) != 2 {
		t.Fatalf("len(orders) = %d, want 2 (other parents excluded)", len(detail.Orders))
	}

	if detail.Summary.FinalPL == nil || !detail.Summary.FinalPL.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("final pl = %v, want 200", detail.Summary.FinalPL)
	}
	last := detail.Orders[len(detail.Orders)-1]
	if !detail.Summary.FinalPL.Equal(*last.PL) {
		t.Fatalf("summary pl %s != last row pl %s", detail.Summary.FinalPL, last.PL)
	}

	if detail.Progress.TradedDaysCount != 2 {
		t.Fatalf("traded days = %d, want 2", detail.Progress.TradedDaysCount)
	}
	if detail.Progress.ExecutionProgress != 20 {
		t.Fatalf("execution progress = %v, want 20", detail.Progress.ExecutionProgress)
	}
	if detail.Progress.DaysProgress != 20 {
		t.Fatalf("days progress = %v, want 20", detail.Progress.DaysProgress)
	}
}

func TestProjectDetailUnknownProject(t *testing.T) {
	svc := &ProjectQueryService{Repo: &stubRepo{}}
	detail, err := svc.ProjectDetail(context.Background(), "missing")
	if err != nil {
		t.Fatalf("ProjectDetail: %v", err)
	}
	if detail != nil {
		t.Fatalf("detail = %+v, want nil", detail)
	}
}

func TestProjectDetailNoOrders(t *testing.T) {
	repo := &stubRepo{}
	seedProject(repo, "PO-1")

	svc := &ProjectQueryService{Repo: repo}
	detail, err := svc.ProjectDetail(context.Background(), "PO-1")
	if err != nil {
		t.Fatalf("ProjectDetail: %v", err)
	}
	if len(detail.Orders) != 0 {
		t.Fatalf("len(orders) = %d, want 0", len(detail.Orders))
	}
	if detail.Summary.FinalPL == nil || !detail.Summary.FinalPL.IsZero() {
		t.Fatalf("final pl = %v, want 0", detail.Summary.FinalPL)
	}
	if detail.Summary.BenchmarkVWAP != nil {
		t.Fatalf("benchmark = %s, want nil", detail.Summary.BenchmarkVWAP)
	}
}

func TestListProjectsWithProgress(t *testing.T) {
	repo := &stubRepo{}
	seedProject(repo, "PO-1")
	noID := models.Project{Ticker: "5 HK Equity", Side: models.SideSell}
	_ = repo.InsertProject(context.Background(), &noID)
	seedOrder(repo, "PO-1", "2025-03-03", 100, 10, 10)
	seedOrder(repo, "PO-1", "2025-03-04", 150, 11, 11)

	svc := &ProjectQueryService{Repo: repo}
	out, err := svc.ListProjectsWithProgress(context.Background())
	if err != nil {
		t.Fatalf("ListProjectsWithProgress: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}

	withOrders := out[0]
	if !withOrders.Progress.TotalExecQty.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("total qty = %s, want 250", withOrders.Progress.TotalExecQty)
	}
	if withOrders.Progress.ExecutionProgress != 25 {
		t.Fatalf("execution progress = %v, want 25", withOrders.Progress.ExecutionProgress)
	}

	zero := out[1]
	if zero.Progress.ExecutionProgress != 0 || zero.Progress.TradedDaysCount != 0 {
		t.Fatalf("project without project id should have zero progress, got %+v", zero.Progress)
	}
}

func TestListProjectsWithProgressRepoError(t *testing.T) {
	repo := &stubRepo{aggregateErr: errors.New("db down")}
	seedProject(repo, "PO-1")

	svc := &ProjectQueryService{Repo: repo}
	if _, err := svc.ListProjectsWithProgress(context.Background()); err == nil {
		t.Fatal("expected aggregate error to surface")
	}
}
