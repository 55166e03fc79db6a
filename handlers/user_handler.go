package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ashoksiva-09/expleoVhiInternaltracker/database"
	"github.com/ashoksiva-09/expleoVhiInternaltracker/models"
)

// UserHandler manages dashboard accounts. Admin only.
type UserHandler struct{}

func NewUserHandler() *UserHandler { return &UserHandler{} }

// GET /api/users
func (h *UserHandler) List(c echo.Context) error {
	var rows []models.User
	if err := database.DB.Order("username ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

type userUpdateReq struct {
	Role     string  `json:"role" validate:"omitempty,oneof=admin user"`
	Name     *string `json:"name"`
	Menus    *string `json:"menus"`
	Password string  `json:"password" validate:"omitempty,min=8"`
}

// PUT /api/users/:id
func (h *UserHandler) Update(c echo.Context) error {
	var u models.User
	if err := database.DB.First(&u, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	var req userUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updates := map[string]any{}
	if req.Role != "" {
		updates["role"] = req.Role
	}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Menus != nil {
		updates["menus"] = strings.TrimSpace(*req.Menus)
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]any{"error": "HASH_FAILED"})
		}
		updates["password"] = string(hash)
	}
	if len(updates) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	if err := database.DB.Model(&u).Updates(updates).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "User updated successfully"})
}

// DELETE /api/users/:id
func (h *UserHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.User{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "User deleted successfully"})
}
