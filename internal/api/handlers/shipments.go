package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zoobzio/clockz"
	"go.uber.org/zap"

	"github.com/cargoview/opsdash/internal/api/middleware"
	"github.com/cargoview/opsdash/internal/domain"
	"github.com/cargoview/opsdash/internal/repository"
	"github.com/cargoview/opsdash/internal/service"
	"github.com/cargoview/opsdash/internal/winword"
	"github.com/cargoview/opsdash/pkg/errors"
)

// ShipmentProvider is the provider-side filter boundary
type ShipmentProvider interface {
	FilterShipments(ctx context.Context, req winword.FilterRequest, customerCodes []string) ([]domain.TrackedShipment, error)
}

// Deps bundles what the dashboard handlers need
type Deps struct {
	Repos    *repository.Repositories
	Provider ShipmentProvider
	Sessions *service.SessionManager
	Mapper   *service.RowMapper
	Clock    clockz.Clock
	Logger   *zap.Logger
}

func (d *Deps) clock() clockz.Clock {
	if d.Clock == nil {
		return clockz.RealClock
	}
	return d.Clock
}

// LoadShipmentsRequest is the provider envelope pushed in by the
// authenticated-session collaborator that fetched it.
type LoadShipmentsRequest = domain.TrackedShipmentsEnvelope

// HandleLoadShipments handles POST /v1/shipments/load
func HandleLoadShipments(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		company, ok := middleware.GetCompanyFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req LoadShipmentsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		shipments := req.Data.TrackedShipments.Data
		session := deps.Sessions.For(company.ID.String())
		session.SetBaseline(shipments)

		deps.Logger.Info("Shipment collection loaded",
			zap.String("company", company.CustomerNumber),
			zap.Int("count", len(shipments)),
		)

		c.JSON(http.StatusOK, gin.H{"loaded": len(shipments)})
	}
}

// HandleListShipments handles GET /v1/shipments
//
// Query parameters update the session's view state and then the page is
// recomputed: page, pageSize, search, companies (repeated), statuses
// (repeated), expanded. Company and status selections commit immediately;
// insight filters go through the apply endpoint.
func HandleListShipments(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		company, ok := middleware.GetCompanyFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		session := deps.Sessions.For(company.ID.String())

		if page, err := strconv.Atoi(c.DefaultQuery("page", "0")); err == nil {
			session.SetPage(page)
		}
		if size, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(service.DefaultPageSize))); err == nil {
			session.SetPageSize(size)
		}
		if search, present := c.GetQuery("search"); present {
			session.SetSearch(search)
		}
		if companies, present := c.GetQueryArray("companies"); present {
			session.SetCompanies(companies)
		}
		if statuses, present := c.GetQueryArray("statuses"); present {
			session.SetStatuses(statuses)
		}
		if expanded, present := c.GetQuery("expanded"); present {
			session.SetExpanded(expanded)
		}

		rows := deps.Mapper.MapAll(session.WorkingSet())
		filtered := service.FilterRows(rows, session.Filter())
		stats := service.AggregateStats(filtered)

		page, pageSize := session.Page()
		start := page * pageSize
		if start > len(filtered) {
			start = len(filtered)
		}
		end := start + pageSize
		if end > len(filtered) {
			end = len(filtered)
		}
		pageRows := filtered[start:end]

		expandedID := session.ReconcileExpansion(pageRows)
		display := service.FlattenPage(pageRows, expandedID)

		c.JSON(http.StatusOK, gin.H{
			"rows":                display,
			"total":               len(filtered),
			"page":                page,
			"pageSize":            pageSize,
			"stats":               stats,
			"insightFilterActive": session.InsightFilterActive(),
		})
	}
}

// ApplyInsightsRequest selects the active insight filters
type ApplyInsightsRequest struct {
	Insights []string `json:"insights"`
}

// HandleApplyInsights handles POST /v1/shipments/insights/apply
//
// Selecting insight tags replaces the working set wholesale with the
// provider's filtered result. An empty selection reverts to the baseline.
// Responses are committed through the session's generation counter so a
// superseded request cannot overwrite a newer one.
func HandleApplyInsights(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		company, ok := middleware.GetCompanyFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		session := deps.Sessions.For(company.ID.String())

		var req ApplyInsightsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		session.SetPendingInsights(req.Insights)
		titles := session.ApplyPendingInsights()

		if len(titles) == 0 {
			session.ResetProviderFilter()
			c.JSON(http.StatusOK, gin.H{"insightFilterActive": false})
			return
		}

		options := winword.InsightOptions(deps.clock().Now())
		filterReq := winword.BuildFilterRequest(titles, options, deps.Logger)

		gen := session.NextGeneration()
		shipments, err := deps.Provider.FilterShipments(c.Request.Context(), filterReq, session.Filter().Companies)
		if err != nil {
			if _, ok := err.(*errors.ErrProviderUnavailable); ok {
				// Working set is left unchanged; the operator can retry.
				c.JSON(http.StatusBadGateway, gin.H{
					"error":     "tracking provider unavailable",
					"retryable": true,
				})
				return
			}
			deps.Logger.Error("Failed to apply insight filters", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply insight filters"})
			return
		}

		if !session.ApplyProviderResult(gen, shipments) {
			deps.Logger.Warn("Discarded superseded provider filter response",
				zap.Uint64("generation", gen),
			)
		}

		c.JSON(http.StatusOK, gin.H{
			"insightFilterActive": session.InsightFilterActive(),
			"count":               len(shipments),
		})
	}
}

// HandleClearInsights handles DELETE /v1/shipments/insights
func HandleClearInsights(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		company, ok := middleware.GetCompanyFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		session := deps.Sessions.For(company.ID.String())
		session.ResetProviderFilter()

		c.JSON(http.StatusOK, gin.H{"insightFilterActive": false})
	}
}

// HandleExportShipments handles GET /v1/shipments/export
//
// Exports the filtered, pre-pagination set as CSV with object-valued
// fields resolved to display strings.
func HandleExportShipments(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		company, ok := middleware.GetCompanyFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		session := deps.Sessions.For(company.ID.String())

		rows := deps.Mapper.MapAll(session.WorkingSet())
		filtered := service.FilterRows(rows, session.Filter())

		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="ShipmentsData.csv"`)
		if err := service.WriteCSV(c.Writer, filtered); err != nil {
			deps.Logger.Error("Failed to write export", zap.Error(err))
		}
	}
}

// HandleListInsightOptions handles GET /v1/shipments/insights/options
func HandleListInsightOptions(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"insights": winword.InsightOptions(deps.clock().Now()),
			"statuses": domain.StatusTagOptions,
		})
	}
}
