package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ashoksiva-09/expleoVhiInternaltracker/database"
	"github.com/ashoksiva-09/expleoVhiInternaltracker/models"
)

type LearningHandler struct{}

func NewLearningHandler() *LearningHandler { return &LearningHandler{} }

// GET /api/learnings?month=&year=
func (h *LearningHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Learning{})

	if y := strings.TrimSpace(c.QueryParam("year")); y != "" {
		tx = tx.Where("substr(date, 1, 4) = ?", y)
	}
	if m := strings.TrimSpace(c.QueryParam("month")); m != "" {
		tx = tx.Where("substr(date, 6, 2) = ?", monthKey(m))
	}

	var rows []models.Learning
	if err := tx.Order("date ASC, resource_name ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

type learningPayload struct {
	EmpID        string `json:"empId" validate:"required,max=20"`
	ResourceName string `json:"resource_name" validate:"required,max=120"`
	Platform     string `json:"platform" validate:"required,max=80"`
	Description  string `json:"description"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
}

// POST /api/learnings
func (h *LearningHandler) Create(c echo.Context) error {
	var req learningPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rec := models.Learning{
		EmpID:        strings.TrimSpace(req.EmpID),
		ResourceName: req.ResourceName,
		Platform:     req.Platform,
		Description:  req.Description,
		Date:         req.Date,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

// PUT /api/learnings/:id
func (h *LearningHandler) Update(c echo.Context) error {
	var req learningPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res := database.DB.Model(&models.Learning{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]any{
			"emp_id":        strings.TrimSpace(req.EmpID),
			"resource_name": req.ResourceName,
			"platform":      req.Platform,
			"description":   req.Description,
			"date":          req.Date,
		})
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Learning entry updated successfully"})
}

// DELETE /api/learnings/:id
func (h *LearningHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.Learning{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Learning entry deleted successfully"})
}
