package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rpgo/drawdown-calculator/internal/calculation"
	"github.com/rpgo/drawdown-calculator/internal/config"
	"github.com/rpgo/drawdown-calculator/internal/domain"
	"github.com/rpgo/drawdown-calculator/internal/logging"
)

// ProjectionHandler serves projections and sensitivity sweeps over HTTP.
type ProjectionHandler struct {
	Engine *calculation.CalculationEngine
	Parser *config.InputParser
	Logger *zap.Logger
	// Now supplies today when a request does not pin it.
	Now func() time.Time
}

// Register mounts the health check and the /api/v1 projection routes on r
func (h *ProjectionHandler) Register(r *gin.Engine) {
	r.GET("/healthz", h.health)
	group := r.Group("/api/v1")
	group.GET("/defaults", h.defaults)
	group.POST("/projections", h.project)
	group.POST("/sensitivity", h.sensitivity)
}

func (h *ProjectionHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *ProjectionHandler) defaults(c *gin.Context) {
	Ok(c, gin.H{
		"inputs":           newInputsDTO(domain.DefaultInputs()),
		"policy":           h.Engine.Rules,
		"sweep_parameters": calculation.SweepParameterNames(),
	}, nil)
}

func (h *ProjectionHandler) project(c *gin.Context) {
	var req projectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	inputs, today, ok := h.bindInputs(c, req.Inputs, req.Today)
	if !ok {
		return
	}
	name := req.Name
	if name == "" {
		name = "Projection"
	}

	summary, err := h.engineFor(c).Project(c.Request.Context(), name, inputs, today)
	if err != nil {
		h.fail(c, err)
		return
	}
	Ok(c, summary, nil)
}

func (h *ProjectionHandler) sensitivity(c *gin.Context) {
	var req sensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body", nil)
		return
	}
	inputs, today, ok := h.bindInputs(c, req.Inputs, req.Today)
	if !ok {
		return
	}

	result, err := h.engineFor(c).RunSensitivity(c.Request.Context(), inputs, today, req.Parameter)
	if err != nil {
		if errors.Is(err, calculation.ErrUnknownParameter) || errors.Is(err, calculation.ErrInvalidSweep) {
			Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.fail(c, err)
		return
	}
	Ok(c, result, map[string]any{"runs": len(result.Points)})
}

// bindInputs converts and validates the request inputs, writing a 400 on failure.
func (h *ProjectionHandler) bindInputs(c *gin.Context, dto inputsDTO, todayStr string) (domain.Inputs, time.Time, bool) {
	inputs, err := dto.toDomain()
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return domain.Inputs{}, time.Time{}, false
	}
	if err := h.Parser.ValidateInputs(inputs); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return domain.Inputs{}, time.Time{}, false
	}
	today := h.today()
	if todayStr != "" {
		if today, err = parseDate("today", todayStr); err != nil {
			Error(c, http.StatusBadRequest, err.Error(), nil)
			return domain.Inputs{}, time.Time{}, false
		}
	}
	return inputs, today, true
}

// engineFor returns a copy of the engine logging through the request logger.
func (h *ProjectionHandler) engineFor(c *gin.Context) *calculation.CalculationEngine {
	engine := *h.Engine
	engine.SetLogger(logging.NewEngineLogger(requestLogger(c, h.Logger)))
	return &engine
}

func (h *ProjectionHandler) today() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return calculation.Today()
}

func (h *ProjectionHandler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	if c.Request.Context().Err() != nil {
		Error(c, http.StatusServiceUnavailable, "request cancelled", nil)
		return
	}
	Error(c, http.StatusInternalServerError, err.Error(), nil)
}
