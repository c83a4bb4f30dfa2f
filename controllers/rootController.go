package controllers

import (
	"net/http"

	"HospitalManagement/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRootRoute mounts the unauthenticated operational endpoints.
func SetupRootRoute(router *gin.Engine, health *handlers.HealthHandler, metrics http.Handler) {
	router.GET("/healthz", health.Health)
	router.GET("/metrics", gin.WrapH(metrics))
}
