package models

import "time"

// ResourceColumn is an admin-defined extra column on the resources table.
type ResourceColumn struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:60;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// ResourceData holds one custom-column value for one resource.
type ResourceData struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ResourceID uint      `json:"resource_id" gorm:"uniqueIndex:idx_resource_column;not null"`
	ColumnName string    `json:"column_name" gorm:"uniqueIndex:idx_resource_column;size:60;not null"`
	Value      string    `json:"value" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
