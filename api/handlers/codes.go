package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Deaquay/shiftcodes/config"
	"github.com/Deaquay/shiftcodes/models"
	"github.com/Deaquay/shiftcodes/store"
)

// Codes exported for testing purposes
type Codes struct {
	Store          store.SnapshotStore
	UpdateInterval time.Duration
}

// CodesHandler returns the backing codes file verbatim. When the file is
// missing or unreadable the response is an error object with an empty code
// list rather than a 5xx; stale-or-empty beats an error page here.
func (c Codes) CodesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	snapshot, err := c.Store.Load()
	if err != nil {
		b, _ := json.Marshal(models.CodesErrorResponse{
			Error: "No codes available",
			Codes: []models.CodeRecord{},
		})
		w.WriteHeader(http.StatusOK)
		w.Write(b)
		return
	}

	b, err := json.Marshal(snapshot)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// StatusHandler reports whether the backing file exists and the configured
// refresh interval in seconds
func (c Codes) StatusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	b, err := json.Marshal(models.StatusResponse{
		LocalFileExists: c.Store.Exists(),
		UpdateInterval:  int64(c.UpdateInterval / time.Second),
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
