package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChildOrder is one day's (or one batch's) execution against a parent order.
// TradeDate is a calendar day with no time component; several rows may share
// a date. Numeric fields are nullable, a missing value is not a zero.
type ChildOrder struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement"`
	ParentOrderID string `gorm:"type:varchar(50);not null;index"`
	TradeDate     string `gorm:"type:varchar(10);not null;index"`

	ExecQty *decimal.Decimal `gorm:"type:numeric(30,10)"`
	AvgPx   *decimal.Decimal `gorm:"type:numeric(20,10)"`
	VwapPx  *decimal.Decimal `gorm:"type:numeric(20,10)"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
}

func (ChildOrder) TableName() string {
	return "child_orders"
}
