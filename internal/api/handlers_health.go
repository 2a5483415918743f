// handlers_health.go - Health check handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mohamedtouja/multipoles/internal/quote"
	"github.com/mohamedtouja/multipoles/internal/simulator"
)

// HealthHandlerImpl implements the HealthHandler interface
type HealthHandlerImpl struct {
	version      string
	simulatorMgr *simulator.Manager
	quoteMgr     *quote.Manager
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string, simulatorMgr *simulator.Manager, quoteMgr *quote.Manager) HealthHandler {
	return &HealthHandlerImpl{
		version:      version,
		simulatorMgr: simulatorMgr,
		quoteMgr:     quoteMgr,
	}
}

// HandleHealth returns server health status
func (h *HealthHandlerImpl) HandleHealth(c echo.Context) error {
	resp := map[string]interface{}{
		"status":  "ok",
		"version": h.version,
	}
	if h.simulatorMgr != nil {
		resp["simulatorSessions"] = h.simulatorMgr.SessionCount()
	}
	return c.JSON(http.StatusOK, resp)
}
