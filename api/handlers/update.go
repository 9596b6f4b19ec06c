package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/Deaquay/shiftcodes/config"
	"github.com/Deaquay/shiftcodes/models"
	"github.com/Deaquay/shiftcodes/scraper"
)

// Update exported for testing purposes
type Update struct {
	Refresher scraper.Refresher
}

// UpdateHandler triggers a code refresh and acknowledges immediately. The
// refresh runs detached; no result channel back to the caller, the eventual
// outcome is only logged.
func (u Update) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	go func() {
		if u.Refresher.Refresh() {
			zap.S().Info("Manual update succeeded")
		} else {
			zap.S().Warn("Manual update failed")
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	b, err := json.Marshal(models.UpdateResponse{Message: "Update triggered"})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
