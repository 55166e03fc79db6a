package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ashoksiva-09/expleoVhiInternaltracker/database"
	"github.com/ashoksiva-09/expleoVhiInternaltracker/models"
)

type HolidayHandler struct{}

func NewHolidayHandler() *HolidayHandler { return &HolidayHandler{} }

// GET /api/holidays?year=&location=
func (h *HolidayHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Holiday{})

	if y := strings.TrimSpace(c.QueryParam("year")); y != "" {
		tx = tx.Where("substr(date, 1, 4) = ?", y)
	}

	var rows []models.Holiday
	if err := tx.Order("date ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	if loc := strings.TrimSpace(c.QueryParam("location")); loc != "" {
		filtered := rows[:0]
		for _, r := range rows {
			if r.AppliesTo(loc) {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}
	return c.JSON(http.StatusOK, rows)
}

type holidayPayload struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required,max=120"`
	Locations string `json:"locations" validate:"max=200"`
}

// POST /api/holidays
func (h *HolidayHandler) Create(c echo.Context) error {
	var req holidayPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var dup models.Holiday
	if err := database.DB.Where("date = ?", req.Date).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": "HOLIDAY_EXISTS"})
	}

	rec := models.Holiday{Date: req.Date, Reason: req.Reason, Locations: req.Locations}
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

// PUT /api/holidays/:id
func (h *HolidayHandler) Update(c echo.Context) error {
	var req holidayPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res := database.DB.Model(&models.Holiday{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]any{"date": req.Date, "reason": req.Reason, "locations": req.Locations})
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Holiday updated successfully"})
}

// DELETE /api/holidays/:id
func (h *HolidayHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.Holiday{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Holiday deleted successfully"})
}
