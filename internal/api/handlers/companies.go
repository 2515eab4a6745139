package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go.uber.org/zap"
)

// HandleListCompanies handles GET /v1/companies
//
// Returns the company records used for the company filter's display
// labels.
func HandleListCompanies(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		companies, err := deps.Repos.Company.List(c.Request.Context())
		if err != nil {
			deps.Logger.Error("Failed to list companies", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		response := make([]gin.H, len(companies))
		for i, company := range companies {
			response[i] = gin.H{
				"id":             company.ID.String(),
				"customerNumber": company.CustomerNumber,
				"customerName":   company.CustomerName,
			}
		}

		c.JSON(http.StatusOK, gin.H{"companies": response})
	}
}
