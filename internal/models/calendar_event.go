package models

import "time"

type CalendarEvent struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement"`
	Title     string  `gorm:"type:varchar(200);not null"`
	StartDate string  `gorm:"type:varchar(40);not null"`
	EndDate   string  `gorm:"type:varchar(40);not null"`
	AllDay    bool    `gorm:"not null;default:false"`
	Color     *string `gorm:"type:varchar(20)"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (CalendarEvent) TableName() string {
	return "calendar_events"
}
