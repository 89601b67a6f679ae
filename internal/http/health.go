package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *database.Database.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Time         string            `json:"time"`
	Version      string            `json:"version,omitempty"`
	DatabasePath string            `json:"database_path,omitempty"`
	SettingsPath string            `json:"settings_path,omitempty"`
	Checks       map[string]string `json:"checks"`
}

type HealthController struct {
	db           Pinger
	databasePath string
	settingsPath string
	version      string
}

func NewHealthController(db Pinger, databasePath, settingsPath, version string) *HealthController {
	return &HealthController{
		db:           db,
		databasePath: databasePath,
		settingsPath: settingsPath,
		version:      version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	// Check database connectivity
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "in-memory"
	}

	health := HealthResponse{
		Status:       status,
		Time:         time.Now().Format(time.RFC3339),
		Version:      h.version,
		DatabasePath: h.databasePath,
		SettingsPath: h.settingsPath,
		Checks:       checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
