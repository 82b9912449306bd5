package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketSnapshot is one day's reference-data reading for a ticker, written by
// the periodic snapshot job and read by the monitoring endpoint.
type MarketSnapshot struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Ticker       string `gorm:"type:varchar(50);not null;uniqueIndex:uidx_snapshot_ticker_date"`
	SnapshotDate string `gorm:"type:varchar(10);not null;uniqueIndex:uidx_snapshot_ticker_date"`

	Price      *decimal.Decimal `gorm:"type:numeric(20,10)"`
	AllDayVWAP *decimal.Decimal `gorm:"column:all_day_vwap;type:numeric(20,10)"`
	ChgPct1D   *decimal.Decimal `gorm:"column:chg_pct_1d;type:numeric(10,4)"`

	FetchedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (MarketSnapshot) TableName() string {
	return "market_snapshots"
}
