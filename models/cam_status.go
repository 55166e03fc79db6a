package models

import "time"

// CamStatus is one attendance cell: resource × weekday, 0 or 1. One row
// per (resource_id, date); saves upsert on that key.
type CamStatus struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	ResourceID uint   `json:"resource_id" gorm:"uniqueIndex:idx_cam_cell;not null"`
	Date       string `json:"date" gorm:"uniqueIndex:idx_cam_cell;size:10;not null"` // YYYY-MM-DD
	Status     int    `json:"status" gorm:"not null"`                                // 0 | 1

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CamStatus) TableName() string { return "cam_status" }
