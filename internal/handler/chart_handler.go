package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/solar-site-backend-go/internal/charts"
	"github.com/jengzang/solar-site-backend-go/internal/models"
	"github.com/jengzang/solar-site-backend-go/internal/service"
	"github.com/jengzang/solar-site-backend-go/pkg/response"
)

// ChartHandler serves rendered chart images
type ChartHandler struct {
	service *service.DashboardService
	size    charts.Size
}

// NewChartHandler creates a new chart handler
func NewChartHandler(service *service.DashboardService, size charts.Size) *ChartHandler {
	return &ChartHandler{service: service, size: size}
}

// GetTopChart handles GET /api/v1/charts/top
func (h *ChartHandler) GetTopChart(c *gin.Context) {
	filter, contentType, ok := bindChartFilter(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := charts.RenderTopBar(&buf, h.service.TopChart(filter.Limit), filter.Format, h.size); err != nil {
		response.InternalError(c, "Failed to render chart", err)
		return
	}
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// GetRadarChart handles GET /api/v1/charts/radar/:id
func (h *ChartHandler) GetRadarChart(c *gin.Context) {
	filter, contentType, ok := bindChartFilter(c)
	if !ok {
		return
	}

	radar, err := h.service.Radar(c.Param("id"))
	if err != nil {
		handleLookupError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := charts.RenderRadar(&buf, radar, filter.Format, h.size); err != nil {
		response.InternalError(c, "Failed to render chart", err)
		return
	}
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func bindChartFilter(c *gin.Context) (models.ChartFilter, string, bool) {
	var filter models.ChartFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return filter, "", false
	}
	if filter.Format == "" {
		filter.Format = charts.FormatPNG
	}

	contentType, err := charts.ContentType(filter.Format)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid format parameter", err)
		return filter, "", false
	}
	return filter, contentType, true
}
