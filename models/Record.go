package models

import "time"

// Record is an immutable snapshot of a calculated BMI result, saved
// explicitly by the user. Records are never updated after creation.
type Record struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ClientID   string    `gorm:"index;not null" json:"-"`
	Height     float64   `gorm:"not null" json:"height"`
	Weight     float64   `gorm:"not null" json:"weight"`
	BMI        float64   `gorm:"not null" json:"bmi"`
	Category   string    `gorm:"not null" json:"category"`
	RecordedAt time.Time `gorm:"not null" json:"recorded_at"`
}
