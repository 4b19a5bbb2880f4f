package handler

import (
	"fmt"
	"net/http"

	"github.com/RitterHou/search-platform/internal/resource"
	"github.com/RitterHou/search-platform/pkg/router"
)

// ListAlerts lists the alerts shown at the top of the console
// @Summary List alerts
// @Tags alerts
// @Produce json
// @Success 200 {array} alert.Alert "Alerts"
// @Router /alerts [get]
func (c *Console) ListAlerts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.Alerts.List())
}

// DismissAlert closes one alert
// @Summary Dismiss alert
// @Tags alerts
// @Param id path string true "Alert ID"
// @Success 204 "Dismissed"
// @Failure 404 {object} ErrorResponse "Alert not found"
// @Router /alerts/{id} [delete]
func (c *Console) DismissAlert(w http.ResponseWriter, r *http.Request) {
	id := router.Vars(r)["id"]
	if !c.Alerts.Dismiss(id) {
		writeError(w, fmt.Errorf("alert %s: %w", id, resource.ErrNotFound))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
