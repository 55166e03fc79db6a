package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm/clause"

	"github.com/ashoksiva-09/expleoVhiInternaltracker/database"
	"github.com/ashoksiva-09/expleoVhiInternaltracker/models"
	"github.com/ashoksiva-09/expleoVhiInternaltracker/snapshot"
)

type BoldMindsHandler struct{}

func NewBoldMindsHandler() *BoldMindsHandler { return &BoldMindsHandler{} }

// GET /api/bold-minds?year=
func (h *BoldMindsHandler) List(c echo.Context) error {
	tx := database.DB.Model(&models.BoldMind{})

	if y := strings.TrimSpace(c.QueryParam("year")); y != "" {
		tx = tx.Where("nominated_year = ?", atoiOr(y, 0))
	}

	var rows []models.BoldMind
	if err := tx.Order("resource_name ASC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

type nominationPayload struct {
	EmpID          string `json:"emp_id" validate:"required,max=20"`
	ResourceName   string `json:"resource_name" validate:"required,max=120"`
	NominatedFor   string `json:"nominated_for" validate:"required,oneof=Gold Silver Bronze"`
	NominatedMonth int    `json:"nominated_month" validate:"required,gte=1,lte=12"`
	NominatedYear  int    `json:"nominated_year" validate:"required,gte=2000,lte=2100"`
}

type boldMindsSaveReq struct {
	Nominations []nominationPayload `json:"nominations"`
}

// POST /api/bold-minds
//
// Batch upsert on (emp_id, nominated_year): one nomination per resource
// per year, later saves overwrite the tier and month.
func (h *BoldMindsHandler) Save(c echo.Context) error {
	var req boldMindsSaveReq
	if err := c.Bind(&req); err != nil || req.Nominations == nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD", "detail": "expected { nominations: [...] }"})
	}

	for i := range req.Nominations {
		req.Nominations[i].EmpID = strings.TrimSpace(req.Nominations[i].EmpID)
		if err := c.Validate(&req.Nominations[i]); err != nil {
			return err
		}
	}

	ids := make([]uint, 0, len(req.Nominations))
	for _, n := range req.Nominations {
		rec := models.BoldMind{
			EmpID:          n.EmpID,
			ResourceName:   n.ResourceName,
			NominatedFor:   n.NominatedFor,
			NominatedMonth: n.NominatedMonth,
			NominatedYear:  n.NominatedYear,
		}
		err := database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "emp_id"}, {Name: "nominated_year"}},
			DoUpdates: clause.AssignmentColumns([]string{"resource_name", "nominated_for", "nominated_month", "updated_at"}),
		}).Create(&rec).Error
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
		}
		ids = append(ids, rec.ID)
	}

	return c.JSON(http.StatusOK, map[string]any{"message": "Bold Minds nominations saved successfully", "ids": ids})
}

// BoldMindRow is one merged nomination-grid row.
type BoldMindRow struct {
	EmpID          string `json:"emp_id"`
	ResourceName   string `json:"resource_name"`
	NominatedFor   string `json:"nominated_for"`
	NominatedMonth int    `json:"nominated_month,omitempty"`
}

// GET /api/bold-minds/grid?year=
//
// Roster-shaped nomination table for the selected year: every resource
// gets a row, nominated or not.
func (h *BoldMindsHandler) Grid(c echo.Context) error {
	year := atoiOr(strings.TrimSpace(c.QueryParam("year")), time.Now().Year())

	var roster []models.Resource
	if err := database.DB.Order("name ASC").Find(&roster).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	var nominations []models.BoldMind
	persisted := map[string]models.BoldMind{}
	if err := database.DB.Where("nominated_year = ?", year).Find(&nominations).Error; err == nil {
		for _, n := range nominations {
			persisted[n.EmpID] = n
		}
	}

	empID := func(r models.Resource) string { return r.EmpID }
	rows := snapshot.Merge(roster, empID, persisted, nil,
		func(r models.Resource, n models.BoldMind) BoldMindRow {
			return BoldMindRow{
				EmpID:          r.EmpID,
				ResourceName:   r.Name,
				NominatedFor:   n.NominatedFor,
				NominatedMonth: n.NominatedMonth,
			}
		},
		func(r models.Resource) BoldMindRow {
			return BoldMindRow{EmpID: r.EmpID, ResourceName: r.Name}
		},
	)

	return c.JSON(http.StatusOK, map[string]any{"year": year, "rows": rows})
}
