package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hardik699/Hanuram1-sub001/internal/domain/models"
)

// OpCostService describes the operating cost operations the HTTP layer can perform.
type OpCostService interface {
	Save(ctx context.Context, entry models.OpCostEntry) (models.OpCostEntry, error)
	Get(ctx context.Context, month, year int) (models.OpCostEntry, error)
	Effective(ctx context.Context, month, year int) (float64, bool, error)
}

// OpCostHandler exposes monthly operating cost entries.
type OpCostHandler struct {
	svc    OpCostService
	logger *zap.Logger
}

// NewOpCostHandler constructs the HTTP handler adapter.
func NewOpCostHandler(svc OpCostService, logger *zap.Logger) *OpCostHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpCostHandler{svc: svc, logger: logger}
}

type opCostResponse struct {
	models.OpCostEntry
	EffectiveOpCostPerKg float64 `json:"effective_op_cost_per_kg"`
}

// Save upserts the entry for its month.
func (h *OpCostHandler) Save(c *gin.Context) {
	var entry models.OpCostEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	saved, err := h.svc.Save(c.Request.Context(), entry)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	h.respond(c, saved)
}

// Get returns the entry for /op-costs/:year/:month with its effective figure.
func (h *OpCostHandler) Get(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be an integer"})
		return
	}

	entry, err := h.svc.Get(c.Request.Context(), month, year)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	h.respond(c, entry)
}

func (h *OpCostHandler) respond(c *gin.Context, entry models.OpCostEntry) {
	effective, _, err := h.svc.Effective(c.Request.Context(), entry.Month, entry.Year)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, opCostResponse{OpCostEntry: entry, EffectiveOpCostPerKg: effective})
}
