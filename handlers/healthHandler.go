package handlers

import (
	"context"
	"net/http"
	"time"

	"HospitalManagement/database"
	"HospitalManagement/middlewares"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports liveness and whether the database answers a ping.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, h.db); err != nil {
		middlewares.Logger(c).WithError(err).Warn("health check failed")
		middlewares.HttpError(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	middlewares.RespondJSON(c, http.StatusOK, "ok", gin.H{"database": "up"})
}
