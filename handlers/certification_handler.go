package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ashoksiva-09/expleoVhiInternaltracker/database"
	"github.com/ashoksiva-09/expleoVhiInternaltracker/models"
)

type CertificationHandler struct{}

func NewCertificationHandler() *CertificationHandler { return &CertificationHandler{} }

// GET /api/certifications?month=&year=
func (h *CertificationHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.Certification{})

	if y := strings.TrimSpace(c.QueryParam("year")); y != "" {
		tx = tx.Where("substr(date, 1, 4) = ?", y)
	}
	if m := strings.TrimSpace(c.QueryParam("month")); m != "" {
		tx = tx.Where("substr(date, 6, 2) = ?", monthKey(m))
	}

	var rows []models.Certification
	if err := tx.Order("date ASC, resource_name ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

type certificationPayload struct {
	EmpID             string `json:"empId" validate:"required,max=20"`
	ResourceName      string `json:"resource_name" validate:"required,max=120"`
	CertificationName string `json:"certification_name" validate:"required,max=200"`
	Description       string `json:"description"`
	Date              string `json:"date" validate:"required,datetime=2006-01-02"`
}

// POST /api/certifications
func (h *CertificationHandler) Create(c echo.Context) error {
	var req certificationPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rec := models.Certification{
		EmpID:             strings.TrimSpace(req.EmpID),
		ResourceName:      req.ResourceName,
		CertificationName: req.CertificationName,
		Description:       req.Description,
		Date:              req.Date,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

// PUT /api/certifications/:id
func (h *CertificationHandler) Update(c echo.Context) error {
	var req certificationPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res := database.DB.Model(&models.Certification{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]any{
			"emp_id":             strings.TrimSpace(req.EmpID),
			"resource_name":      req.ResourceName,
			"certification_name": req.CertificationName,
			"description":        req.Description,
			"date":               req.Date,
		})
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Certification entry updated successfully"})
}

// DELETE /api/certifications/:id
func (h *CertificationHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.Certification{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Certification entry deleted successfully"})
}
