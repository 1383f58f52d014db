package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/solar-site-backend-go/internal/models"
	"github.com/jengzang/solar-site-backend-go/internal/scoring"
	"github.com/jengzang/solar-site-backend-go/internal/service"
	"github.com/jengzang/solar-site-backend-go/pkg/response"
)

// RegionHandler handles HTTP requests for scored regions and dashboard views
type RegionHandler struct {
	service *service.DashboardService
}

// NewRegionHandler creates a new region handler
func NewRegionHandler(service *service.DashboardService) *RegionHandler {
	return &RegionHandler{service: service}
}

// Health handles GET /health
func (h *RegionHandler) Health(c *gin.Context) {
	session := h.service.Session()
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Solar Site API is running",
		"regions":   session.Augmented.Len(),
		"source":    session.Source,
		"loaded_at": session.LoadedAt,
	})
}

// ListRegions handles GET /api/v1/regions
func (h *RegionHandler) ListRegions(c *gin.Context) {
	regions := h.service.Regions()
	response.Success(c, gin.H{
		"data":  regions,
		"count": len(regions),
	})
}

// GetRanking handles GET /api/v1/regions/ranking
func (h *RegionHandler) GetRanking(c *gin.Context) {
	var filter models.RankingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	ranking := h.service.Ranking(filter.Limit)
	response.Success(c, gin.H{
		"data":  ranking,
		"count": len(ranking),
		"total": h.service.Session().Augmented.Len(),
	})
}

// GetRegion handles GET /api/v1/regions/:id
func (h *RegionHandler) GetRegion(c *gin.Context) {
	region, err := h.service.Region(c.Param("id"))
	if err != nil {
		handleLookupError(c, err)
		return
	}
	response.Success(c, region)
}

// GetMetrics handles GET /api/v1/regions/:id/metrics
func (h *RegionHandler) GetMetrics(c *gin.Context) {
	cards, err := h.service.Metrics(c.Param("id"))
	if err != nil {
		handleLookupError(c, err)
		return
	}
	response.Success(c, cards)
}

// GetRadar handles GET /api/v1/regions/:id/radar
func (h *RegionHandler) GetRadar(c *gin.Context) {
	radar, err := h.service.Radar(c.Param("id"))
	if err != nil {
		handleLookupError(c, err)
		return
	}
	response.Success(c, radar)
}

// GetDashboard handles GET /api/v1/dashboard?region=
func (h *RegionHandler) GetDashboard(c *gin.Context) {
	var filter models.DashboardFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	dashboard, err := h.service.Dashboard(filter.Region)
	if err != nil {
		handleLookupError(c, err)
		return
	}
	response.Success(c, dashboard)
}

// GetSummary handles GET /api/v1/summary
func (h *RegionHandler) GetSummary(c *gin.Context) {
	response.Success(c, h.service.Summary())
}

// GetWeights handles GET /api/v1/scoring/weights
func (h *RegionHandler) GetWeights(c *gin.Context) {
	response.Success(c, h.service.Policy())
}

// GetColumnStats handles GET /api/v1/stats/columns
func (h *RegionHandler) GetColumnStats(c *gin.Context) {
	response.Success(c, h.service.ColumnStats())
}

func handleLookupError(c *gin.Context, err error) {
	if errors.Is(err, scoring.ErrNotFound) {
		response.NotFound(c, err.Error())
		return
	}
	response.InternalError(c, "Failed to load region", err)
}
