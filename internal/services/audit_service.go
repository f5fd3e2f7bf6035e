package services

import (
	"encoding/json"

	"finhealth/internal/logger"
	"finhealth/internal/models"

	"gorm.io/gorm"
)

// Audit actions.
const (
	AuditRegister        = "REGISTER"
	AuditLogin           = "LOGIN"
	AuditLogout          = "LOGOUT"
	AuditOnboard         = "ONBOARD"
	AuditCreateExpense   = "CREATE_EXPENSE"
	AuditDeleteExpense   = "DELETE_EXPENSE"
	AuditCreateAsset     = "CREATE_ASSET"
	AuditDeleteAsset     = "DELETE_ASSET"
	AuditCreateLiability = "CREATE_LIABILITY"
	AuditDeleteLiability = "DELETE_LIABILITY"
	AuditCreateGoal      = "CREATE_GOAL"
	AuditDeleteGoal      = "DELETE_GOAL"
	AuditExport          = "EXPORT"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Failures are logged and swallowed so the
// audited operation still succeeds.
func (s *auditService) Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{}) {
	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      changesJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}
