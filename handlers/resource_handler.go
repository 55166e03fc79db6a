package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ashoksiva-09/expleoVhiInternaltracker/database"
	"github.com/ashoksiva-09/expleoVhiInternaltracker/models"
)

type ResourceHandler struct{}

func NewResourceHandler() *ResourceHandler { return &ResourceHandler{} }

// GET /api/resources
//
// Returns the name-ordered roster together with the custom column names,
// the shape every grid view starts from.
func (h *ResourceHandler) List(c echo.Context) error {
	var resources []models.Resource
	if err := database.DB.Order("name ASC").Find(&resources).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	columns := []string{}
	var cols []models.ResourceColumn
	if err := database.DB.Order("name ASC").Find(&cols).Error; err == nil {
		for _, col := range cols {
			columns = append(columns, col.Name)
		}
	}

	return c.JSON(http.StatusOK, map[string]any{"resources": resources, "columns": columns})
}

type resourcePayload struct {
	EmpID string `json:"empId" validate:"required,max=20"`
	Name  string `json:"name" validate:"required,max=120"`
}

// POST /api/resources
func (h *ResourceHandler) Create(c echo.Context) error {
	var req resourcePayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.EmpID = strings.TrimSpace(req.EmpID)
	req.Name = strings.Join(strings.Fields(req.Name), " ")
	if err := c.Validate(&req); err != nil {
		return err
	}

	var dup models.Resource
	if err := database.DB.Where("emp_id = ?", req.EmpID).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": "EMP_ID_EXISTS"})
	}

	rec := models.Resource{EmpID: req.EmpID, Name: req.Name}
	if err := database.DB.Create(&rec).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

// PUT /api/resources/:empId
func (h *ResourceHandler) Update(c echo.Context) error {
	empID := c.Param("empId")
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	name := strings.Join(strings.Fields(req.Name), " ")
	if name == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	res := database.DB.Model(&models.Resource{}).Where("emp_id = ?", empID).Update("name", name)
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Resource updated successfully"})
}

// DELETE /api/resources/:id
//
// Historical per-period rows keyed by this resource are kept; the grid
// endpoints report them as orphans instead of rendering them.
func (h *ResourceHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.Resource{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Resource deleted successfully"})
}

// GET /api/resources/:empId
func (h *ResourceHandler) GetByEmpID(c echo.Context) error {
	var rec models.Resource
	if err := database.DB.Where("emp_id = ?", c.Param("empId")).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rec)
}

// GET /api/columns
func (h *ResourceHandler) ListColumns(c echo.Context) error {
	var cols []models.ResourceColumn
	if err := database.DB.Order("name ASC").Find(&cols).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	names := make([]string, 0, len(cols))
	for _, col := range cols {
		names = append(names, col.Name)
	}
	return c.JSON(http.StatusOK, names)
}

// POST /api/columns
func (h *ResourceHandler) CreateColumn(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	var dup models.ResourceColumn
	if err := database.DB.Where("name = ?", name).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"error": "COLUMN_EXISTS"})
	}

	col := models.ResourceColumn{Name: name}
	if err := database.DB.Create(&col).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, col)
}

// DELETE /api/columns/:name
func (h *ResourceHandler) DeleteColumn(c echo.Context) error {
	name := c.Param("name")
	res := database.DB.Delete(&models.ResourceColumn{}, "name = ?", name)
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	// values stored under the column go with it
	database.DB.Delete(&models.ResourceData{}, "column_name = ?", name)
	return c.JSON(http.StatusOK, map[string]any{"message": "Column deleted successfully"})
}

// POST /api/resources/:id/data
func (h *ResourceHandler) UpsertData(c echo.Context) error {
	resourceID := atoiOr(c.Param("id"), 0)
	if resourceID <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_RESOURCE_ID"})
	}

	var req struct {
		ColumnName string `json:"column_name"`
		Value      string `json:"value"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if strings.TrimSpace(req.ColumnName) == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	rec := models.ResourceData{
		ResourceID: uint(resourceID),
		ColumnName: strings.TrimSpace(req.ColumnName),
		Value:      req.Value,
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "resource_id"}, {Name: "column_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Resource data updated successfully"})
}
