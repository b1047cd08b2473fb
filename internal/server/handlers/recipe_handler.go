package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hardik699/Hanuram1-sub001/internal/domain/models"
	"github.com/Hardik699/Hanuram1-sub001/internal/service/recipes"
)

// RecipeService describes the recipe operations the HTTP layer can perform.
type RecipeService interface {
	SaveUnit(ctx context.Context, unit models.Unit) (models.Unit, error)
	SaveUnitConversion(ctx context.Context, conv models.UnitConversion) error
	ConvertQuantity(ctx context.Context, quantity float64, fromUnitID, toUnitID string) (float64, bool, error)
	SaveRawMaterial(ctx context.Context, material models.RawMaterial) (models.RawMaterial, error)
	SaveLabour(ctx context.Context, labour models.Labour) (models.Labour, error)
	CreateRecipe(ctx context.Context, in recipes.CreateRecipeInput) (models.Recipe, error)
	GetRecipe(ctx context.Context, id string) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
	AddItem(ctx context.Context, recipeID string, in recipes.AddItemInput) (models.Recipe, error)
	AttachLabour(ctx context.Context, recipeID, labourID string, phase models.Phase) (models.RecipeLabour, error)
	AddPackagingCost(ctx context.Context, recipeID string, in recipes.PackagingInput) (models.PackagingCost, error)
	Breakdown(ctx context.Context, recipeID string) (models.CostBreakdown, error)
	LandedCost(ctx context.Context, recipeID string, month, year int) (models.LandedCost, error)
}

// RecipeHandler exposes recipes, their reference data and cost breakdowns.
type RecipeHandler struct {
	svc    RecipeService
	logger *zap.Logger
}

// NewRecipeHandler constructs the HTTP handler adapter.
func NewRecipeHandler(svc RecipeService, logger *zap.Logger) *RecipeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecipeHandler{svc: svc, logger: logger}
}

type convertRequest struct {
	Quantity   float64 `json:"quantity"`
	FromUnitID string  `json:"from_unit_id" binding:"required"`
	ToUnitID   string  `json:"to_unit_id" binding:"required"`
}

type createRecipeRequest struct {
	Code          string  `json:"code"`
	Name          string  `json:"name" binding:"required"`
	BatchSize     float64 `json:"batch_size" binding:"gt=0"`
	UnitID        string  `json:"unit_id"`
	YieldQuantity float64 `json:"yield_quantity" binding:"gte=0"`
}

type addItemRequest struct {
	RawMaterialID string   `json:"raw_material_id" binding:"required"`
	Quantity      float64  `json:"quantity" binding:"gt=0"`
	UnitID        string   `json:"unit_id"`
	Price         *float64 `json:"price" binding:"omitempty,gte=0"`
}

type attachLabourRequest struct {
	LabourID string       `json:"labour_id" binding:"required"`
	Type     models.Phase `json:"type" binding:"required,oneof=production packing"`
}

type packagingRequest struct {
	Type     string  `json:"type" binding:"required"`
	Cost     float64 `json:"cost" binding:"gte=0"`
	Quantity float64 `json:"quantity" binding:"gte=0"`
}

// CreateUnit stores a unit of measure.
func (h *RecipeHandler) CreateUnit(c *gin.Context) {
	var unit models.Unit
	if err := c.ShouldBindJSON(&unit); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	saved, err := h.svc.SaveUnit(c.Request.Context(), unit)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// CreateConversion stores a directional unit conversion.
func (h *RecipeHandler) CreateConversion(c *gin.Context) {
	var conv models.UnitConversion
	if err := c.ShouldBindJSON(&conv); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	if err := h.svc.SaveUnitConversion(c.Request.Context(), conv); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, conv)
}

// Convert converts a quantity and reports whether a stored conversion applied.
func (h *RecipeHandler) Convert(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	quantity, converted, err := h.svc.ConvertQuantity(c.Request.Context(), req.Quantity, req.FromUnitID, req.ToUnitID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quantity": quantity, "converted": converted})
}

// CreateRawMaterial stores a raw material.
func (h *RecipeHandler) CreateRawMaterial(c *gin.Context) {
	var material models.RawMaterial
	if err := c.ShouldBindJSON(&material); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	saved, err := h.svc.SaveRawMaterial(c.Request.Context(), material)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// CreateLabour stores a labour record.
func (h *RecipeHandler) CreateLabour(c *gin.Context) {
	var labour models.Labour
	if err := c.ShouldBindJSON(&labour); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	saved, err := h.svc.SaveLabour(c.Request.Context(), labour)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// CreateRecipe stores a new, empty recipe owned by the acting user.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	recipe, err := h.svc.CreateRecipe(c.Request.Context(), recipes.CreateRecipeInput{
		Code:          req.Code,
		Name:          req.Name,
		BatchSize:     req.BatchSize,
		UnitID:        req.UnitID,
		YieldQuantity: req.YieldQuantity,
		CreatedBy:     c.GetString(ActorKey),
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// GetRecipe returns a recipe with its items.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.svc.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe removes a recipe and everything it owns.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	if err := h.svc.DeleteRecipe(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddItem appends a raw-material line to a recipe.
func (h *RecipeHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	recipe, err := h.svc.AddItem(c.Request.Context(), c.Param("id"), recipes.AddItemInput{
		RawMaterialID: req.RawMaterialID,
		Quantity:      req.Quantity,
		UnitID:        req.UnitID,
		Price:         req.Price,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// AttachLabour assigns labour to a recipe phase.
func (h *RecipeHandler) AttachLabour(c *gin.Context) {
	var req attachLabourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	entry, err := h.svc.AttachLabour(c.Request.Context(), c.Param("id"), req.LabourID, req.Type)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// AddPackaging records a packaging cost against a recipe.
func (h *RecipeHandler) AddPackaging(c *gin.Context) {
	var req packagingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.logger, err)
		return
	}

	entry, err := h.svc.AddPackagingCost(c.Request.Context(), c.Param("id"), recipes.PackagingInput{
		Type:     req.Type,
		Cost:     req.Cost,
		Quantity: req.Quantity,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Breakdown returns the per-unit cost breakdown of a recipe.
func (h *RecipeHandler) Breakdown(c *gin.Context) {
	breakdown, err := h.svc.Breakdown(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// LandedCost returns the breakdown alongside the month's operating cost.
func (h *RecipeHandler) LandedCost(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be an integer"})
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}

	landed, err := h.svc.LandedCost(c.Request.Context(), c.Param("id"), month, year)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, landed)
}
