// Package perf computes execution performance against a running VWAP
// benchmark. Everything here is a pure function of (project, child orders);
// derived figures that can be unavailable are nil pointers, never zeros.
package perf

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"alphadash/internal/models"
)

// EnrichedOrder is a ChildOrder plus the engine's running figures. It is only
// meaningful in the context of the ordered sequence it was computed from.
type EnrichedOrder struct {
	models.ChildOrder

	// CumulativeBenchmarkVWAP is the mean of the distinct-date VWAP samples
	// seen up to and including this record; nil before the first sample.
	CumulativeBenchmarkVWAP *decimal.Decimal
	// VwapPerformanceBps measures this record's own execution price against
	// its own day's VWAP, signed so that positive is favorable to the side.
	VwapPerformanceBps   *decimal.Decimal
	CumulativeExecQty    decimal.Decimal
	CumulativeExecAmount decimal.Decimal
	// PL marks the cumulative position against the cumulative benchmark.
	PL                 *decimal.Decimal
	CumulativeFixedFee *decimal.Decimal
}

// Summary is the project-level terminal state. Its P/L, bps and fee figures
// always equal the last enriched record's.
type Summary struct {
	FinalPL             *decimal.Decimal
	FinalPerformanceFee *decimal.Decimal
	FinalFixedFee       *decimal.Decimal
	FinalPLBps          *decimal.Decimal

	BenchmarkVWAP   *decimal.Decimal
	TotalExecQty    decimal.Decimal
	TotalExecAmount decimal.Decimal
	TradedDaysCount int

	AverageExecutionPrice *decimal.Decimal
	AverageDailyQty       *decimal.Decimal
}

var (
	tenThousand = decimal.NewFromInt(10000)
	hundred     = decimal.NewFromInt(100)
)

// Compute runs the single forward pass over the project's child orders.
//
// Input order does not matter: a working copy is stable-sorted by trade date,
// so same-day records aggregate in the order delivered. Missing numeric fields
// degrade the affected outputs to nil instead of aborting; the only error is a
// record referencing a different parent order, which is a caller bug.
func Compute(project models.Project, orders []models.ChildOrder) ([]EnrichedOrder, Summary, error) {
	if project.ProjectID != nil {
		for _, o := range orders {
			if o.ParentOrderID != *project.ProjectID {
				return nil, Summary{}, fmt.Errorf(
					"child order %d belongs to parent %q, project is %q",
					o.ID, o.ParentOrderID, *project.ProjectID)
			}
		}
	}

	sorted := make([]models.ChildOrder, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return DayKey(sorted[i].TradeDate) < DayKey(sorted[j].TradeDate)
	})

	sideValid := project.SideValid()
	buy := project.Side == models.SideBuy

	seenDays := make(map[string]struct{}, len(sorted))
	benchSum := decimal.Zero
	benchDays := 0
	cumQty := decimal.Zero
	cumAmount := decimal.Zero
	cumFixedFee := decimal.Zero

	enriched := make([]EnrichedOrder, 0, len(sorted))
	for _, o := range sorted {
		day := DayKey(o.TradeDate)
		// First record of a day with a present VWAP contributes the day's
		// benchmark sample. A zero price is a sample; a nil price leaves the
		// day open for a later record to claim.
		if _, ok := seenDays[day]; !ok && o.VwapPx != nil {
			seenDays[day] = struct{}{}
			benchSum = benchSum.Add(*o.VwapPx)
			benchDays++
		}
		benchmark := benchmarkMean(benchSum, benchDays)

		var perfBps *decimal.Decimal
		if sideValid && o.AvgPx != nil && o.VwapPx != nil && !o.VwapPx.IsZero() {
			diff := o.VwapPx.Sub(*o.AvgPx)
			if !buy {
				diff = diff.Neg()
			}
			bps := diff.Div(*o.VwapPx).Mul(tenThousand)
			perfBps = &bps
		}

		notional := decimal.Zero
		if o.ExecQty != nil && o.AvgPx != nil {
			notional = o.ExecQty.Mul(*o.AvgPx)
		}
		cumAmount = cumAmount.Add(notional)
		if o.ExecQty != nil {
			cumQty = cumQty.Add(*o.ExecQty)
		}

		if project.FixedFeeRate != nil && project.FixedFeeRate.IsPositive() && notional.IsPositive() {
			cumFixedFee = cumFixedFee.Add(notional.Mul(project.FixedFeeRate.Div(hundred)))
		}

		enriched = append(enriched, EnrichedOrder{
			ChildOrder:              o,
			CumulativeBenchmarkVWAP: benchmark,
			VwapPerformanceBps:      perfBps,
			CumulativeExecQty:       cumQty,
			CumulativeExecAmount:    cumAmount,
			PL:                      markToBenchmark(buy, sideValid, benchmark, cumQty, cumAmount),
			CumulativeFixedFee:      positiveOrNil(cumFixedFee),
		})
	}

	summary := Summary{
		BenchmarkVWAP:   benchmarkMean(benchSum, benchDays),
		TotalExecQty:    cumQty,
		TotalExecAmount: cumAmount,
		TradedDaysCount: benchDays,
		FinalFixedFee:   positiveOrNil(cumFixedFee),
	}
	summary.FinalPL = markToBenchmark(buy, sideValid, summary.BenchmarkVWAP, cumQty, cumAmount)

	if summary.FinalPL != nil && summary.FinalPL.IsPositive() && project.PerformanceFeeRate != nil {
		fee := summary.FinalPL.Mul(project.PerformanceFeeRate.Div(hundred))
		summary.FinalPerformanceFee = &fee
	}

	if summary.FinalPL != nil && summary.BenchmarkVWAP != nil &&
		summary.BenchmarkVWAP.IsPositive() && cumQty.IsPositive() {
		denom := summary.BenchmarkVWAP.Mul(cumQty)
		if !denom.IsZero() {
			bps := summary.FinalPL.Div(denom).Mul(tenThousand)
			summary.FinalPLBps = &bps
		}
	}

	if cumQty.IsPositive() {
		avg := cumAmount.Div(cumQty)
		summary.AverageExecutionPrice = &avg
	}
	if benchDays > 0 && cumQty.Sign() >= 0 {
		avg := cumQty.Div(decimal.NewFromInt(int64(benchDays)))
		summary.AverageDailyQty = &avg
	}

	return enriched, summary, nil
}

// markToBenchmark values the cumulative position at the cumulative benchmark.
// Zero cumulative quantity means "no fills yet" and is a definite 0, distinct
// from a nil "benchmark unavailable".
func markToBenchmark(buy, sideValid bool, benchmark *decimal.Decimal, qty, amount decimal.Decimal) *decimal.Decimal {
	if qty.IsZero() {
		zero := decimal.Zero
		return &zero
	}
	if benchmark == nil || !sideValid {
		return nil
	}
	pl := benchmark.Mul(qty).Sub(amount)
	if !buy {
		pl = pl.Neg()
	}
	return &pl
}

func benchmarkMean(sum decimal.Decimal, days int) *decimal.Decimal {
	if days <= 0 {
		return nil
	}
	mean := sum.Div(decimal.NewFromInt(int64(days)))
	return &mean
}

func positiveOrNil(d decimal.Decimal) *decimal.Decimal {
	if !d.IsPositive() {
		return nil
	}
	v := d
	return &v
}
