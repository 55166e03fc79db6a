package models

import (
	"strings"
	"time"
)

// Holiday is one office holiday. Locations is a comma-separated city
// list; the published calendar differs per office.
type Holiday struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Date      string `json:"date" gorm:"uniqueIndex;size:10;not null"` // YYYY-MM-DD
	Reason    string `json:"reason" gorm:"size:120;not null"`
	Locations string `json:"locations" gorm:"size:200"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppliesTo reports whether the holiday is observed at the location.
// An empty Locations list means all offices.
func (h Holiday) AppliesTo(location string) bool {
	if strings.TrimSpace(h.Locations) == "" {
		return true
	}
	for _, loc := range strings.Split(h.Locations, ",") {
		if strings.EqualFold(strings.TrimSpace(loc), strings.TrimSpace(location)) {
			return true
		}
	}
	return false
}
