package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finhealth/internal/engine"
	"finhealth/internal/services"
)

// DashboardHandler serves the computed financial health views.
type DashboardHandler struct {
	healthService services.HealthServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(healthService services.HealthServicer) *DashboardHandler {
	return &DashboardHandler{healthService: healthService}
}

// HealthSnapshotResponse wraps the health snapshot.
type HealthSnapshotResponse struct {
	Health *engine.Snapshot `json:"health"`
}

// GetData returns the profile, the health snapshot and all record lists
// @Summary     Dashboard data
// @Description Profile, health snapshot and record lists with goal feasibility inline
// @Tags        health
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Dashboard "Dashboard"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /data [get]
func (h *DashboardHandler) GetData(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dash, err := h.healthService.GetDashboard(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dash)
}

// GetHealthSnapshot returns only the health snapshot
// @Summary     Health snapshot
// @Tags        health
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} HealthSnapshotResponse "Snapshot"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /health-snapshot [get]
func (h *DashboardHandler) GetHealthSnapshot(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snap, err := h.healthService.GetSnapshot(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, HealthSnapshotResponse{Health: snap})
}
