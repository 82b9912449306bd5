package perf

import (
	"strings"

	"github.com/shopspring/decimal"

	"alphadash/internal/models"
)

// Progress is the target-versus-executed view of a project. Unlike the
// engine's sequential pass it is a pure sum, so any permutation of the same
// records yields the same Progress.
type Progress struct {
	DaysProgress      float64
	ExecutionProgress float64
	TotalExecQty      decimal.Decimal
	TotalExecAmount   decimal.Decimal
	TradedDaysCount   int
}

func AggregateProgress(project models.Project, orders []models.ChildOrder) Progress {
	days := make(map[string]struct{}, len(orders))
	qty := decimal.Zero
	amount := decimal.Zero
	for _, o := range orders {
		days[DayKey(o.TradeDate)] = struct{}{}
		if o.ExecQty == nil {
			continue
		}
		qty = qty.Add(*o.ExecQty)
		if o.AvgPx != nil {
			amount = amount.Add(o.ExecQty.Mul(*o.AvgPx))
		}
	}
	return ProgressFromTotals(project, qty, amount, len(days))
}

// ProgressFromTotals builds Progress from pre-aggregated totals, so the SQL
// GROUP BY path of the project list shares the exact same percent/clamp rules.
func ProgressFromTotals(project models.Project, totalQty, totalAmount decimal.Decimal, tradedDays int) Progress {
	daysProgress := 0.0
	if project.BusinessDays != nil && *project.BusinessDays > 0 {
		daysProgress = float64(tradedDays) / float64(*project.BusinessDays) * 100
	}

	executionProgress := 0.0
	if project.TotalShares != nil && project.TotalShares.IsPositive() {
		executionProgress = totalQty.Div(*project.TotalShares).InexactFloat64() * 100
	} else if project.TotalAmount != nil && project.TotalAmount.IsPositive() {
		executionProgress = totalAmount.Div(*project.TotalAmount).InexactFloat64() * 100
	}

	return Progress{
		DaysProgress:      clampPct(daysProgress),
		ExecutionProgress: clampPct(executionProgress),
		TotalExecQty:      totalQty,
		TotalExecAmount:   totalAmount,
		TradedDaysCount:   tradedDays,
	}
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// DayKey normalizes a day-precision date string so slash and dash forms of
// the same day compare equal, and ISO-ordered strings sort chronologically.
func DayKey(date string) string {
	return strings.ReplaceAll(strings.TrimSpace(date), "/", "-")
}
