package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ashoksiva-09/expleoVhiInternaltracker/database"
	"github.com/ashoksiva-09/expleoVhiInternaltracker/models"
)

type LeaveHandler struct{}

func NewLeaveHandler() *LeaveHandler { return &LeaveHandler{} }

// GET /api/leaves?month=
func (h *LeaveHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Leave{})

	if m := strings.TrimSpace(c.QueryParam("month")); m != "" {
		tx = tx.Where("substr(date, 6, 2) = ?", monthKey(m))
	}

	var rows []models.Leave
	if err := tx.Order("date ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

type leavePayload struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Resource string `json:"resource" validate:"required,max=120"`
	Type     string `json:"type" validate:"required,max=40"`
	Hours    int    `json:"hours" validate:"required,gt=0,lte=24"`
}

// POST /api/leaves
func (h *LeaveHandler) Create(c echo.Context) error {
	var req leavePayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rec := models.Leave{Date: req.Date, Resource: req.Resource, Type: req.Type, Hours: req.Hours}
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

// PUT /api/leaves/:id
func (h *LeaveHandler) Update(c echo.Context) error {
	var req leavePayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res := database.DB.Model(&models.Leave{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]any{
			"date":     req.Date,
			"resource": req.Resource,
			"type":     req.Type,
			"hours":    req.Hours,
		})
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Leave entry updated successfully"})
}

// DELETE /api/leaves/:id
func (h *LeaveHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.Leave{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Leave entry deleted successfully"})
}
