package models

import "time"

// TimesheetEntry is one resource's hours-booking row for a (year, month,
// week) period. Week is the index into that month's week-range sequence
// and may be null for a whole-month entry.
type TimesheetEntry struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	EmpID       string `json:"emp_id" gorm:"uniqueIndex:idx_timesheet_period;size:20;not null"`
	Year        int    `json:"year" gorm:"uniqueIndex:idx_timesheet_period;not null"`
	Month       int    `json:"month" gorm:"uniqueIndex:idx_timesheet_period;not null"` // 1-12
	Week        *int   `json:"week" gorm:"uniqueIndex:idx_timesheet_period"`
	Whizible    string `json:"whizible" gorm:"default:''"`
	Changepoint string `json:"changepoint" gorm:"default:''"`
	Planview    string `json:"planview" gorm:"default:''"`
	Comments    string `json:"comments" gorm:"default:''"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TimesheetEntry) TableName() string { return "timesheet" }
