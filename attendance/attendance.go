// Package attendance maintains the in-memory CAM status grid: a per
// resource map of "YYYY-MM-DD" keys to a 0/1 marker, with cheap per-row
// counters as cells are toggled. Nothing here talks to the store; a view
// flattens the map with Entries and saves it in one batch.
package attendance

import (
	"sort"
	"time"

	"github.com/ashoksiva-09/expleoVhiInternaltracker/period"
)

// Record is one persisted CAM status cell.
type Record struct {
	ResourceID uint   `json:"resource_id"`
	Date       string `json:"date"` // YYYY-MM-DD
	Status     int    `json:"status"`
}

// Map indexes status by resource id, then by date key.
type Map map[uint]map[string]int

// Build groups records for O(1) cell lookup. Duplicate (resource, date)
// pairs should not occur given the store's unique key, but if they do the
// last one in iteration order wins.
func Build(records []Record) Map {
	m := make(Map)
	for _, r := range records {
		if m[r.ResourceID] == nil {
			m[r.ResourceID] = make(map[string]int)
		}
		m[r.ResourceID][r.Date] = r.Status
	}
	return m
}

// Toggle sets one cell and returns the refreshed (checked, total) pair
// for that resource in the selected month. A resource's map may carry
// keys from previously viewed months; only keys in the selected month
// count. Total is the month's weekday count.
func (m Map) Toggle(resourceID uint, date string, status int, year int, month time.Month) (checked, total int) {
	if m[resourceID] == nil {
		m[resourceID] = make(map[string]int)
	}
	m[resourceID][date] = status
	return m.Count(resourceID, year, month)
}

// Count returns (checked, total) for one resource in the given month.
func (m Map) Count(resourceID uint, year int, month time.Month) (checked, total int) {
	total = len(period.WeekdaysInMonth(year, month))
	for key, status := range m[resourceID] {
		if status == 1 && period.SameMonth(key, year, month) {
			checked++
		}
	}
	return checked, total
}

// Entries flattens the map back into records for a batch save, ordered by
// resource id then date so saves are deterministic.
func (m Map) Entries() []Record {
	out := make([]Record, 0, len(m))
	for id, days := range m {
		for date, status := range days {
			out = append(out, Record{ResourceID: id, Date: date, Status: status})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ResourceID != out[j].ResourceID {
			return out[i].ResourceID < out[j].ResourceID
		}
		return out[i].Date < out[j].Date
	})
	return out
}
