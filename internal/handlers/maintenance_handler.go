package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finhealth/internal/logger"
	"finhealth/internal/services"
)

// MaintenanceHandler exposes housekeeping jobs to trusted callers.
type MaintenanceHandler struct {
	tokenService services.TokenServicer
}

// NewMaintenanceHandler creates a new MaintenanceHandler.
func NewMaintenanceHandler(tokenService services.TokenServicer) *MaintenanceHandler {
	return &MaintenanceHandler{tokenService: tokenService}
}

// PurgeResponse reports how many revocations were removed.
type PurgeResponse struct {
	Purged int64 `json:"purged"`
}

// PurgeRevokedTokens deletes revocations of tokens that have expired
// @Summary     Purge expired revocations
// @Tags        internal
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} PurgeResponse "Purged rows"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     503 {object} ErrorResponse "Service key not configured"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /internal/revoked-tokens/purge [post]
func (h *MaintenanceHandler) PurgeRevokedTokens(c *gin.Context) {
	n, err := h.tokenService.PurgeExpired(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Get().Infow("purged revoked tokens", "count", n, "trigger", "api")
	c.JSON(http.StatusOK, PurgeResponse{Purged: n})
}
