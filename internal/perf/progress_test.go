package perf

import (
	"testing"

	"github.com/shopspring/decimal"

	"alphadash/internal/models"
)

func intp(v int) *int { return &v }

func TestAggregateProgressPermutationInvariant(t *testing.T) {
	project := models.Project{
		Side:         models.SideBuy,
		TotalShares:  dp(1000),
		BusinessDays: intp(10),
	}
	orders := []models.ChildOrder{
		order("", "2025-03-03", dp(100), dp(10), dp(10)),
		order("", "2025-03-03", dp(50), dp(11), dp(10)),
		order("", "2025-03-04", dp(200), dp(9), dp(9.5)),
		order("", "2025-03-05", nil, nil, nil),
	}
	perms := [][]models.ChildOrder{
		{orders[0], orders[1], orders[2], orders[3]},
		{orders[3], orders[2], orders[1], orders[0]},
		{orders[2], orders[0], orders[3], orders[1]},
	}

	first := AggregateProgress(project, perms[0])
	for i, p := range perms[1:] {
		got := AggregateProgress(project, p)
		if got.DaysProgress != first.DaysProgress ||
			got.ExecutionProgress != first.ExecutionProgress ||
			!got.TotalExecQty.Equal(first.TotalExecQty) ||
			!got.TotalExecAmount.Equal(first.TotalExecAmount) ||
			got.TradedDaysCount != first.TradedDaysCount {
			t.Fatalf("permutation %d: %+v != %+v", i+1, got, first)
		}
	}

	if first.TradedDaysCount != 3 {
		t.Fatalf("traded days = %d, want 3", first.TradedDaysCount)
	}
	if !first.TotalExecQty.Equal(decimal.NewFromInt(350)) {
		t.Fatalf("total qty = %s, want 350", first.TotalExecQty)
	}
	if first.DaysProgress != 30 {
		t.Fatalf("days progress = %v, want 30", first.DaysProgress)
	}
	if first.ExecutionProgress != 35 {
		t.Fatalf("execution progress = %v, want 35", first.ExecutionProgress)
	}
}

func TestAggregateProgressNormalizesDateForms(t *testing.T) {
	project := models.Project{Side: models.SideBuy, BusinessDays: intp(4)}
	orders := []models.ChildOrder{
		order("", "2025/03/03", dp(10), dp(1), nil),
		order("", "2025-03-03", dp(10), dp(1), nil),
		order("", " 2025-03-04", dp(10), dp(1), nil),
	}
	got := AggregateProgress(project, orders)
	if got.TradedDaysCount != 2 {
		t.Fatalf("traded days = %d, want 2", got.TradedDaysCount)
	}
	if got.DaysProgress != 50 {
		t.Fatalf("days progress = %v, want 50", got.DaysProgress)
	}
}

func TestProgressSharesTargetTakesPrecedence(t *testing.T) {
	project := models.Project{
		Side:        models.SideBuy,
		TotalShares: dp(200),
		TotalAmount: dp(1000000),
	}
	orders := []models.ChildOrder{
		order("", "2025-03-03", dp(100), dp(10), nil),
	}
	got := AggregateProgress(project, orders)
	if got.ExecutionProgress != 50 {
		t.Fatalf("execution progress = %v, want 50 (shares target wins)", got.ExecutionProgress)
	}
}

func TestProgressAmountFallback(t *testing.T) {
	project := models.Project{Side: models.SideBuy, TotalAmount: dp(4000)}
	orders := []models.ChildOrder{
		order("", "2025-03-03", dp(100), dp(10), nil),
	}
	got := AggregateProgress(project, orders)
	if got.ExecutionProgress != 25 {
		t.Fatalf("execution progress = %v, want 25", got.ExecutionProgress)
	}
}

func TestProgressClampAndUnsetTargets(t *testing.T) {
	overshoot := models.Project{
		Side:         models.SideBuy,
		TotalShares:  dp(100),
		BusinessDays: intp(1),
	}
	orders := []models.ChildOrder{
		order("", "2025-03-03", dp(300), dp(10), nil),
		order("", "2025-03-04", dp(300), dp(10), nil),
	}
	got := AggregateProgress(overshoot, orders)
	if got.ExecutionProgress != 100 {
		t.Fatalf("execution progress = %v, want clamp to 100", got.ExecutionProgress)
	}
	if got.DaysProgress != 100 {
		t.Fatalf("days progress = %v, want clamp to 100", got.DaysProgress)
	}

	unset := models.Project{Side: models.SideBuy}
	got = AggregateProgress(unset, orders)
	if got.ExecutionProgress != 0 || got.DaysProgress != 0 {
		t.Fatalf("progress with no targets = %v/%v, want 0/0", got.DaysProgress, got.ExecutionProgress)
	}
	if !got.TotalExecQty.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("totals still accumulate: qty = %s, want 600", got.TotalExecQty)
	}
}

func TestProgressFromTotalsMatchesAggregate(t *testing.T) {
	project := models.Project{
		Side:         models.SideBuy,
		TotalShares:  dp(500),
		BusinessDays: intp(5),
	}
	orders := []models.ChildOrder{
		order("", "2025-03-03", dp(100), dp(10), nil),
		order("", "2025-03-04", dp(150), dp(11), nil),
	}
	aggregated := AggregateProgress(project, orders)
	fromTotals := ProgressFromTotals(project,
		aggregated.TotalExecQty, aggregated.TotalExecAmount, aggregated.TradedDaysCount)
	if aggregated != fromTotals {
		t.Fatalf("ProgressFromTotals %+v != AggregateProgress %+v", fromTotals, aggregated)
	}
}

func TestDayKey(t *testing.T) {
	cases := map[string]string{
		"2025-03-03":   "2025-03-03",
		"2025/03/03":   "2025-03-03",
		" 2025-03-03 ": "2025-03-03",
	}
	for in, want := range cases {
		if got := DayKey(in); got != want {
			t.Fatalf("DayKey(%q) = %q, want %q", in, got, want)
		}
	}
}
