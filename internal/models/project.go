package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	SideBuy  = "BUY"
	SideSell = "SELL"
)

// Project is a parent order worked against a VWAP benchmark over several days.
// Exactly one of TotalShares / TotalAmount is the authoritative target; when
// both are set the share target wins.
type Project struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement"`
	ProjectID *string `gorm:"type:varchar(50);uniqueIndex"`
	Ticker    string  `gorm:"type:varchar(50);not null;index"`
	Name      string  `gorm:"type:varchar(200);not null"`
	Side      string  `gorm:"type:varchar(10);not null"`

	TotalShares *decimal.Decimal `gorm:"type:numeric(30,10)"`
	TotalAmount *decimal.Decimal `gorm:"type:numeric(30,10)"`

	StartDate string `gorm:"type:varchar(10);not null"`
	EndDate   string `gorm:"type:varchar(10);not null"`

	PriceLimit         *decimal.Decimal `gorm:"type:numeric(20,10)"`
	PerformanceFeeRate *decimal.Decimal `gorm:"type:numeric(10,6)"`
	FixedFeeRate       *decimal.Decimal `gorm:"type:numeric(10,6)"`

	BusinessDays     *int
	EarliestDayCount *int
	ExcludedDays     *int

	Note    *string `gorm:"type:text"`
	Contact string  `gorm:"type:varchar(100);not null"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}

func (p Project) SideValid() bool {
	return p.Side == SideBuy || p.Side == SideSell
}
