package api

import (
	"net/http"

	"hole-map-service/internal/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter wires HTTP handlers with their dependencies and returns the engine.
// This is the API composition root.
func NewRouter(logger zerolog.Logger, production bool) *gin.Engine {
	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), requestID(), accessLog(logger))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	distanceHandler := &handlers.DistanceHandler{Logger: logger}
	holeHandler := &handlers.HoleHandler{Logger: logger}

	r.GET("/health", handlers.Health)

	v1 := r.Group("/v1")
	v1.POST("/distance", distanceHandler.Distance)
	v1.POST("/holes/distances", holeHandler.Distances)
	v1.GET("/holes/:number/step", holeHandler.Step)

	return r
}
