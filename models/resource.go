package models

import "time"

// Resource is one tracked employee. EmpID is the stable business key
// every per-period record references; ID is the store key.
type Resource struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	EmpID     string    `json:"empId" gorm:"column:emp_id;uniqueIndex;size:20;not null"`
	Name      string    `json:"name" gorm:"size:120;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
