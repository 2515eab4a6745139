package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cargoview/opsdash/internal/api/middleware"
	"github.com/cargoview/opsdash/internal/domain"
	"github.com/cargoview/opsdash/pkg/errors"
)

// SmsEntryResponse is one phone-tracking entry keyed by container
type SmsEntryResponse struct {
	ID         string `json:"id"`
	Phone      string `json:"phone"`
	ShipmentID string `json:"shipmentId"`
}

// HandleSmsByContainers handles POST /v1/sms/by-containers
//
// Body is a list of container numbers; the response maps each container
// with an entry to its phone-tracking record.
func HandleSmsByContainers(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var containers []string
		if err := c.ShouldBindJSON(&containers); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed"})
			return
		}

		entries, err := deps.Repos.Sms.ListByContainers(c.Request.Context(), containers)
		if err != nil {
			deps.Logger.Error("Failed to list sms entries", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		byContainer := make(map[string]SmsEntryResponse, len(entries))
		for _, entry := range entries {
			byContainer[entry.Container] = SmsEntryResponse{
				ID:         entry.ID.String(),
				Phone:      entry.MobileList,
				ShipmentID: entry.ShipmentID,
			}
		}

		c.JSON(http.StatusOK, byContainer)
	}
}

// CreateSmsRequest registers phone tracking for a container
type CreateSmsRequest struct {
	Container  string `json:"container" binding:"required"`
	MobileList string `json:"mobileList" binding:"required"`
	ShipmentID string `json:"shipmentId"`
}

// HandleCreateSms handles POST /v1/sms
func HandleCreateSms(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		company, ok := middleware.GetCompanyFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req CreateSmsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		entry := &domain.SmsEntry{
			Container:  req.Container,
			MobileList: req.MobileList,
			ShipmentID: req.ShipmentID,
			UserID:     company.ID.String(),
		}
		if err := deps.Repos.Sms.Create(c.Request.Context(), entry); err != nil {
			deps.Logger.Error("Failed to create sms entry", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": entry.ID.String()})
	}
}

// UpdateSmsRequest updates an existing phone-tracking entry
type UpdateSmsRequest struct {
	MobileList string `json:"mobileList" binding:"required"`
	ShipmentID string `json:"shipmentId"`
}

// HandleUpdateSms handles PUT /v1/sms/:id
func HandleUpdateSms(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sms entry ID"})
			return
		}

		var req UpdateSmsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		entry := &domain.SmsEntry{
			ID:         id,
			MobileList: req.MobileList,
			ShipmentID: req.ShipmentID,
		}
		if err := deps.Repos.Sms.Update(c.Request.Context(), entry); err != nil {
			if _, ok := err.(*errors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "sms entry not found"})
				return
			}
			deps.Logger.Error("Failed to update sms entry", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": id.String()})
	}
}
