package models

import "time"

type Training struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	EmpID        string `json:"empId" gorm:"column:emp_id;index;size:20;not null"`
	ResourceName string `json:"resource_name" gorm:"size:120;not null"`
	Platform     string `json:"platform" gorm:"size:80;not null"`
	CourseName   string `json:"course_name" gorm:"size:200"`
	Description  string `json:"description" gorm:"type:text"`
	StartDate    string `json:"start_date" gorm:"size:10;not null"` // YYYY-MM-DD
	EndDate      string `json:"end_date" gorm:"size:10"`
	Hours        int    `json:"hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
