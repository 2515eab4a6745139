package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cargoview/opsdash/internal/domain"
	"github.com/cargoview/opsdash/internal/repository"
	"github.com/cargoview/opsdash/pkg/errors"
)

const companyContextKey = "company"

// AuthMiddleware authenticates operator requests by API key. The key is
// verified against the active companies' stored bcrypt hashes and the
// matching company is placed on the request context.
func AuthMiddleware(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing API key"})
			return
		}

		company, err := repos.Company.GetByAPIKey(c.Request.Context(), apiKey)
		if err != nil {
			if _, ok := err.(*errors.ErrUnauthorized); ok {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
				return
			}
			logger.Error("Failed to authenticate API key", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.Set(companyContextKey, company)
		c.Next()
	}
}

// GetCompanyFromContext retrieves the authenticated company
func GetCompanyFromContext(c *gin.Context) (*domain.Company, bool) {
	value, ok := c.Get(companyContextKey)
	if !ok {
		return nil, false
	}
	company, ok := value.(*domain.Company)
	return company, ok
}
