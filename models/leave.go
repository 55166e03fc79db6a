package models

import "time"

type Leave struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Date     string `json:"date" gorm:"size:10;not null"` // YYYY-MM-DD
	Resource string `json:"resource" gorm:"size:120;not null"`
	Type     string `json:"type" gorm:"size:40;not null"` // Casual/Sick/Earned/...
	Hours    int    `json:"hours" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
