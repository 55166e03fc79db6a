package models

import "time"

type Certification struct {
	ID                uint   `json:"id" gorm:"primaryKey"`
	EmpID             string `json:"empId" gorm:"column:emp_id;index;size:20;not null"`
	ResourceName      string `json:"resource_name" gorm:"size:120;not null"`
	CertificationName string `json:"certification_name" gorm:"size:200;not null"`
	Description       string `json:"description" gorm:"type:text"`
	Date              string `json:"date" gorm:"size:10;not null"` // YYYY-MM-DD

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
