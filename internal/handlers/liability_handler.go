package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finhealth/internal/errors"
	"finhealth/internal/models"
	"finhealth/internal/services"
)

// LiabilityHandler handles liability requests.
type LiabilityHandler struct {
	liabilityService services.LiabilityServicer
	auditService     services.AuditServicer
}

// NewLiabilityHandler creates a new LiabilityHandler.
func NewLiabilityHandler(liabilityService services.LiabilityServicer, auditService services.AuditServicer) *LiabilityHandler {
	return &LiabilityHandler{liabilityService: liabilityService, auditService: auditService}
}

// CreateLiabilityRequest represents the request payload for recording a debt.
// InterestRate is an annual percentage.
type CreateLiabilityRequest struct {
	Name              string  `json:"name" binding:"required,min=1,max=100"`
	Type              string  `json:"type" binding:"required,liability_type"`
	OutstandingAmount float64 `json:"outstanding_amount" binding:"gte=0"`
	InterestRate      float64 `json:"interest_rate" binding:"gte=0,lte=100"`
	MonthlyPayment    float64 `json:"monthly_payment" binding:"gte=0"`
}

// LiabilityResponse wraps a single liability.
type LiabilityResponse struct {
	Liability models.Liability `json:"liability"`
}

// CreateLiability handles the creation of a new liability
// @Summary     Record a liability
// @Description Record a loan or card balance for the authenticated user
// @Tags        liabilities
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateLiabilityRequest true "Liability details"
// @Success     201 {object} LiabilityResponse "Liability created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /liabilities [post]
func (h *LiabilityHandler) CreateLiability(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	liability, err := h.liabilityService.CreateLiability(userID, services.LiabilityInput{
		Name:              req.Name,
		Type:              models.LiabilityType(req.Type),
		OutstandingAmount: req.OutstandingAmount,
		InterestRate:      req.InterestRate,
		MonthlyPayment:    req.MonthlyPayment,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditCreateLiability, "liability", liability.ID, c.ClientIP(),
		map[string]interface{}{"type": liability.Type, "outstanding_amount": liability.OutstandingAmount})

	c.JSON(http.StatusCreated, LiabilityResponse{Liability: *liability})
}

// GetLiabilities lists the user's liabilities
// @Summary     List liabilities
// @Tags        liabilities
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Page size (max 100)"
// @Success     200 {object} pagination.PageResponse[models.Liability] "Liabilities"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /liabilities [get]
func (h *LiabilityHandler) GetLiabilities(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.liabilityService.GetUserLiabilities(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteLiability removes a liability
// @Summary     Delete a liability
// @Tags        liabilities
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Liability ID"
// @Success     200 {object} MessageResponse "Liability deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Liability not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /liabilities/{id} [delete]
func (h *LiabilityHandler) DeleteLiability(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	if err := h.liabilityService.DeleteLiability(userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditDeleteLiability, "liability", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Liability deleted"})
}
