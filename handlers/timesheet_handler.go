package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm/clause"

	"github.com/ashoksiva-09/expleoVhiInternaltracker/database"
	"github.com/ashoksiva-09/expleoVhiInternaltracker/models"
	"github.com/ashoksiva-09/expleoVhiInternaltracker/period"
	"github.com/ashoksiva-09/expleoVhiInternaltracker/snapshot"
)

type TimesheetHandler struct{}

func NewTimesheetHandler() *TimesheetHandler { return &TimesheetHandler{} }

// GET /api/timesheet?year=&month=&week=&emp_id=
func (h *TimesheetHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.TimesheetEntry{})

	if y := strings.TrimSpace(c.QueryParam("year")); y != "" {
		tx = tx.Where("year = ?", atoiOr(y, 0))
	}
	if m := strings.TrimSpace(c.QueryParam("month")); m != "" {
		tx = tx.Where("month = ?", atoiOr(m, 0))
	}
	if w := strings.TrimSpace(c.QueryParam("week")); w != "" {
		tx = tx.Where("week = ?", atoiOr(w, 0))
	}
	if e := strings.TrimSpace(c.QueryParam("emp_id")); e != "" {
		tx = tx.Where("emp_id = ?", e)
	}

	var rows []models.TimesheetEntry
	if err := tx.Order("emp_id ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

type timesheetPayload struct {
	EmpID       string `json:"emp_id" validate:"required,max=20"`
	Year        int    `json:"year" validate:"required,gte=2000,lte=2100"`
	Month       int    `json:"month" validate:"required,gte=1,lte=12"`
	Week        *int   `json:"week"`
	Whizible    string `json:"whizible"`
	Changepoint string `json:"changepoint"`
	Planview    string `json:"planview"`
	Comments    string `json:"comments"`
}

// POST /api/timesheet
//
// Upserts on (emp_id, year, month, week), matching the store's unique
// period key, so re-saving an existing row updates it in place.
func (h *TimesheetHandler) Save(c echo.Context) error {
	var req timesheetPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.EmpID = strings.TrimSpace(req.EmpID)
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Week != nil {
		weeks := period.WeeksInMonth(req.Year, time.Month(req.Month))
		if *req.Week < 0 || *req.Week >= len(weeks) {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_WEEK"})
		}
	}

	rec := models.TimesheetEntry{
		EmpID:       req.EmpID,
		Year:        req.Year,
		Month:       req.Month,
		Week:        req.Week,
		Whizible:    req.Whizible,
		Changepoint: req.Changepoint,
		Planview:    req.Planview,
		Comments:    req.Comments,
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "emp_id"}, {Name: "year"}, {Name: "month"}, {Name: "week"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"whizible", "changepoint", "planview", "comments", "updated_at",
		}),
	}).Create(&rec).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

// PUT /api/timesheet/:id
func (h *TimesheetHandler) Update(c echo.Context) error {
	var req timesheetPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.EmpID = strings.TrimSpace(req.EmpID)
	if err := c.Validate(&req); err != nil {
		return err
	}

	res := database.DB.Model(&models.TimesheetEntry{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]any{
			"emp_id":      req.EmpID,
			"year":        req.Year,
			"month":       req.Month,
			"week":        req.Week,
			"whizible":    req.Whizible,
			"changepoint": req.Changepoint,
			"planview":    req.Planview,
			"comments":    req.Comments,
		})
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Timesheet entry updated successfully"})
}

// DELETE /api/timesheet/:id
func (h *TimesheetHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.TimesheetEntry{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Timesheet entry deleted successfully"})
}

// GET /api/timesheet/weeks?year=&month=
//
// The week-range options for the period filter dropdown.
func (h *TimesheetHandler) Weeks(c echo.Context) error {
	now := time.Now()
	year, month, err := yearMonthParams(c.QueryParam("year"), c.QueryParam("month"), now.Year(), int(now.Month()))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_MONTH"})
	}

	weeks := period.WeeksInMonth(year, time.Month(month))
	out := make([]map[string]any, 0, len(weeks))
	for i, w := range weeks {
		out = append(out, map[string]any{
			"index": i,
			"start": w.Start.Format("2006-01-02"),
			"end":   w.End.Format("2006-01-02"),
			"label": w.String(),
		})
	}
	return c.JSON(http.StatusOK, out)
}

// TimesheetRow is one merged, display-ready grid row.
type TimesheetRow struct {
	EmpID       string `json:"empId"`
	Name        string `json:"name"`
	ID          uint   `json:"id,omitempty"`
	Whizible    string `json:"whizible"`
	Changepoint string `json:"changepoint"`
	Planview    string `json:"planview"`
	Comments    string `json:"comments"`
}

// GET /api/timesheet/grid?year=&month=&week=
//
// Roster-shaped snapshot for the timesheet view: one row per resource,
// persisted entries folded in where they exist. A failed entry fetch
// degrades to defaults-only rows so the view still renders; writes stay
// loud, reads stay quiet.
func (h *TimesheetHandler) Grid(c echo.Context) error {
	now := time.Now()
	year, month, err := yearMonthParams(c.QueryParam("year"), c.QueryParam("month"), now.Year(), int(now.Month()))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_MONTH"})
	}

	var roster []models.Resource
	if err := database.DB.Order("name ASC").Find(&roster).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	tx := database.DB.Where("year = ? AND month = ?", year, month)
	if w := strings.TrimSpace(c.QueryParam("week")); w != "" {
		tx = tx.Where("week = ?", atoiOr(w, 0))
	}
	var entries []models.TimesheetEntry
	persisted := map[string]models.TimesheetEntry{}
	if err := tx.Find(&entries).Error; err != nil {
		log.Printf("[timesheet] grid entry fetch failed, rendering defaults: %v", err)
	} else {
		for _, e := range entries {
			persisted[e.EmpID] = e
		}
	}

	empID := func(r models.Resource) string { return r.EmpID }
	rows := snapshot.Merge(roster, empID, persisted, nil,
		func(r models.Resource, p models.TimesheetEntry) TimesheetRow {
			return TimesheetRow{
				EmpID:       r.EmpID,
				Name:        r.Name,
				ID:          p.ID,
				Whizible:    p.Whizible,
				Changepoint: p.Changepoint,
				Planview:    p.Planview,
				Comments:    p.Comments,
			}
		},
		func(r models.Resource) TimesheetRow {
			return TimesheetRow{EmpID: r.EmpID, Name: r.Name}
		},
	)

	return c.JSON(http.StatusOK, map[string]any{
		"year":    year,
		"month":   month,
		"rows":    rows,
		"orphans": snapshot.Orphans(roster, empID, persisted),
	})
}
