package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.ApiService/implementation/dashboard"
	"gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.ApiService/implementation/pipeline"
	logger "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Logger"
	sbsmodels "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Models"
	interfaces "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Repository/Interfaces"
)

// StationController handles the single device-facing route: POST ingests a
// reading, every other method serves the admin dashboard.
type StationController struct {
	pipeline *pipeline.Pipeline
	status   interfaces.StatusRepository
	renderer *dashboard.Renderer
	logger   *logger.Logger
}

// NewStationController creates a new station controller
func NewStationController(p *pipeline.Pipeline, status interfaces.StatusRepository, renderer *dashboard.Renderer, log *logger.Logger) *StationController {
	return &StationController{
		pipeline: p,
		status:   status,
		renderer: renderer,
		logger:   log.WithComponent("station"),
	}
}

// RegisterRoutes registers the station routes with Gin
func (c *StationController) RegisterRoutes(router *gin.Engine) {
	router.Any("/", c.Handle)
}

// Handle dispatches on method: the ESP32 POSTs readings, humans GET the
// dashboard on the same route.
func (c *StationController) Handle(ctx *gin.Context) {
	if ctx.Request.Method == http.MethodPost {
		c.Ingest(ctx)
		return
	}
	c.Dashboard(ctx)
}

func (c *StationController) Ingest(ctx *gin.Context) {
	var payload map[string]interface{}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		// A missing or malformed body falls through as a nil payload;
		// the pipeline rejects it uniformly.
		payload = nil
	}

	rd, err := c.pipeline.Ingest(ctx.Request.Context(), payload)
	switch {
	case errors.Is(err, sbsmodels.ErrInvalidPayload):
		ctx.String(http.StatusBadRequest, "No Data")
	case errors.Is(err, pipeline.ErrStoreUnavailable):
		c.logger.ErrorWithError(err, "ingestion aborted")
		ctx.String(http.StatusInternalServerError, "Store Unavailable")
	case err != nil:
		c.logger.ErrorWithError(err, "ingestion failed")
		ctx.String(http.StatusInternalServerError, "Internal Error")
	default:
		c.logger.WithField("timestamp", rd.Timestamp).Debug("reading ingested")
		ctx.String(http.StatusOK, "Success")
	}
}

func (c *StationController) Dashboard(ctx *gin.Context) {
	rd, found, err := c.status.Get(ctx.Request.Context())
	if err != nil {
		c.logger.ErrorWithError(err, "latest status fetch failed")
		ctx.String(http.StatusInternalServerError, "Store Unavailable")
		return
	}
	if !found {
		rd = sbsmodels.EmptyReading()
	}

	ctx.Header("Content-Type", "text/html; charset=utf-8")
	ctx.Status(http.StatusOK)
	if err := c.renderer.Render(ctx.Writer, rd); err != nil {
		c.logger.ErrorWithError(err, "dashboard render failed")
	}
}
