package models

import "time"

// BoldMind is a yearly peer-nomination: one tier + month per resource
// per year.
type BoldMind struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	EmpID          string `json:"emp_id" gorm:"uniqueIndex:idx_bold_year;size:20;not null"`
	ResourceName   string `json:"resource_name" gorm:"size:120;not null"`
	NominatedFor   string `json:"nominated_for" gorm:"size:20;not null"` // Gold | Silver | Bronze
	NominatedMonth int    `json:"nominated_month" gorm:"not null"`       // 1-12
	NominatedYear  int    `json:"nominated_year" gorm:"uniqueIndex:idx_bold_year;not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
