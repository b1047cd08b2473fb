package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hardik699/Hanuram1-sub001/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(recipesHandler *handlers.RecipeHandler, opCostHandler *handlers.OpCostHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	r.Use(handlers.Actor())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/units", recipesHandler.CreateUnit)
	r.POST("/units/conversions", recipesHandler.CreateConversion)
	r.POST("/units/convert", recipesHandler.Convert)
	r.POST("/raw-materials", recipesHandler.CreateRawMaterial)
	r.POST("/labour", recipesHandler.CreateLabour)

	recipes := r.Group("/recipes")
	recipes.POST("", recipesHandler.CreateRecipe)
	recipes.GET("/:id", recipesHandler.GetRecipe)
	recipes.DELETE("/:id", recipesHandler.DeleteRecipe)
	recipes.POST("/:id/items", recipesHandler.AddItem)
	recipes.POST("/:id/labour", recipesHandler.AttachLabour)
	recipes.POST("/:id/packaging", recipesHandler.AddPackaging)
	recipes.GET("/:id/cost-breakdown", recipesHandler.Breakdown)
	recipes.GET("/:id/landed-cost", recipesHandler.LandedCost)

	r.PUT("/op-costs", opCostHandler.Save)
	r.GET("/op-costs/:year/:month", opCostHandler.Get)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("actor", c.GetString(handlers.ActorKey)))
	}
}
