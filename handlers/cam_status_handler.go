package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm/clause"

	"github.com/ashoksiva-09/expleoVhiInternaltracker/attendance"
	"github.com/ashoksiva-09/expleoVhiInternaltracker/database"
	"github.com/ashoksiva-09/expleoVhiInternaltracker/models"
	"github.com/ashoksiva-09/expleoVhiInternaltracker/period"
)

type CamStatusHandler struct{}

func NewCamStatusHandler() *CamStatusHandler { return &CamStatusHandler{} }

type camStatusRow struct {
	models.CamStatus
	ResourceName string `json:"resource_name"`
}

// GET /api/cam-status?year=&month=
func (h *CamStatusHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.CamStatus{}).
		Select("cam_status.*, resources.name AS resource_name").
		Joins("JOIN resources ON resources.id = cam_status.resource_id")

	if y := strings.TrimSpace(c.QueryParam("year")); y != "" {
		tx = tx.Where("substr(cam_status.date, 1, 4) = ?", y)
	}
	if m := strings.TrimSpace(c.QueryParam("month")); m != "" {
		tx = tx.Where("substr(cam_status.date, 6, 2) = ?", monthKey(m))
	}

	var rows []camStatusRow
	if err := tx.Order("cam_status.date ASC, resources.name ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

type camSaveReq struct {
	Entries []attendance.Record `json:"entries"`
}

// POST /api/cam-status
//
// Batch upsert of the whole grid. Upserting on (resource_id, date) makes
// re-saving an unchanged grid a no-op, so the save button is safe to
// mash.
func (h *CamStatusHandler) Save(c echo.Context) error {
	var req camSaveReq
	if err := c.Bind(&req); err != nil || req.Entries == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD", "detail": "expected { entries: [...] }"})
	}

	for _, e := range req.Entries {
		if e.ResourceID == 0 || e.Date == "" || (e.Status != 0 && e.Status != 1) {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ENTRY"})
		}
	}

	ids := make([]uint, 0, len(req.Entries))
	for _, e := range req.Entries {
		rec := models.CamStatus{ResourceID: e.ResourceID, Date: e.Date, Status: e.Status}
		err := database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "resource_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).Create(&rec).Error
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
		}
		ids = append(ids, rec.ID)
	}

	return c.JSON(http.StatusOK, map[string]any{"message": "CAM status entries saved successfully", "ids": ids})
}

type camGridRow struct {
	ResourceID uint           `json:"resource_id"`
	EmpID      string         `json:"empId"`
	Name       string         `json:"name"`
	Statuses   map[string]int `json:"statuses"`
	Checked    int            `json:"checked"`
	Total      int            `json:"total"`
}

// GET /api/cam-status/grid?year=&month=
//
// The month's attendance grid: weekday columns plus one row per roster
// resource with its checked/total counter. A failed status fetch renders
// an all-unchecked grid rather than an error page.
func (h *CamStatusHandler) Grid(c echo.Context) error {
	now := time.Now()
	year, monthNum, err := yearMonthParams(c.QueryParam("year"), c.QueryParam("month"), now.Year(), int(now.Month()))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_MONTH"})
	}
	month := time.Month(monthNum)

	var roster []models.Resource
	if err := database.DB.Order("name ASC").Find(&roster).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	var records []attendance.Record
	err = database.DB.Model(&models.CamStatus{}).
		Select("resource_id, date, status").
		Where("substr(date, 1, 7) = ?", period.DateKey(year, month, 1)[:7]).
		Find(&records).Error
	if err != nil {
		log.Printf("[cam-status] grid fetch failed, rendering empty grid: %v", err)
		records = nil
	}
	statusMap := attendance.Build(records)

	weekdays := period.WeekdaysInMonth(year, month)
	dates := make([]string, 0, len(weekdays))
	for _, day := range weekdays {
		dates = append(dates, period.DateKey(year, month, day))
	}

	rows := make([]camGridRow, 0, len(roster))
	for _, r := range roster {
		statuses := make(map[string]int, len(dates))
		for _, d := range dates {
			statuses[d] = statusMap[r.ID][d]
		}
		checked, total := statusMap.Count(r.ID, year, month)
		rows = append(rows, camGridRow{
			ResourceID: r.ID,
			EmpID:      r.EmpID,
			Name:       r.Name,
			Statuses:   statuses,
			Checked:    checked,
			Total:      total,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"year":     year,
		"month":    monthNum,
		"weekdays": weekdays,
		"dates":    dates,
		"rows":     rows,
	})
}
