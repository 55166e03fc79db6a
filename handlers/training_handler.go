package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ashoksiva-09/expleoVhiInternaltracker/database"
	"github.com/ashoksiva-09/expleoVhiInternaltracker/models"
)

type TrainingHandler struct{}

func NewTrainingHandler() *TrainingHandler { return &TrainingHandler{} }

// GET /api/trainings?month=&year=
//
// Filters on the start date.
func (h *TrainingHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Training{})

	if y := strings.TrimSpace(c.QueryParam("year")); y != "" {
		tx = tx.Where("substr(start_date, 1, 4) = ?", y)
	}
	if m := strings.TrimSpace(c.QueryParam("month")); m != "" {
		tx = tx.Where("substr(start_date, 6, 2) = ?", monthKey(m))
	}

	var rows []models.Training
	if err := tx.Order("start_date ASC, resource_name ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

type trainingPayload struct {
	EmpID        string `json:"empId" validate:"required,max=20"`
	ResourceName string `json:"resource_name" validate:"required,max=120"`
	Platform     string `json:"platform" validate:"required,max=80"`
	CourseName   string `json:"course_name" validate:"max=200"`
	Description  string `json:"description"`
	StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Hours        int    `json:"hours" validate:"gte=0"`
}

// POST /api/trainings
func (h *TrainingHandler) Create(c echo.Context) error {
	var req trainingPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rec := models.Training{
		EmpID:        strings.TrimSpace(req.EmpID),
		ResourceName: req.ResourceName,
		Platform:     req.Platform,
		CourseName:   req.CourseName,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Hours:        req.Hours,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

// PUT /api/trainings/:id
func (h *TrainingHandler) Update(c echo.Context) error {
	var req trainingPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res := database.DB.Model(&models.Training{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]any{
			"emp_id":        strings.TrimSpace(req.EmpID),
			"resource_name": req.ResourceName,
			"platform":      req.Platform,
			"course_name":   req.CourseName,
			"description":   req.Description,
			"start_date":    req.StartDate,
			"end_date":      req.EndDate,
			"hours":         req.Hours,
		})
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Training entry updated successfully"})
}

// DELETE /api/trainings/:id
func (h *TrainingHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.Training{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Training entry deleted successfully"})
}
