package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/Deaquay/shiftcodes/codes"
	"github.com/Deaquay/shiftcodes/models"
	"github.com/Deaquay/shiftcodes/store"
	templates "github.com/Deaquay/shiftcodes/templates/html"
)

// Index exported for testing purposes
type Index struct {
	Store store.SnapshotStore
}

// IndexHandler renders the codes listing page. A missing or unreadable
// backing file renders an empty listing, never an error page; the cause is
// already logged at the store boundary.
func (i Index) IndexHandler(w http.ResponseWriter, r *http.Request) {
	var active, expired []models.CodeRecord
	lastUpdated := "Unknown"

	snapshot, err := i.Store.Load()
	if err == nil {
		c := codes.Classify(snapshot.Codes, time.Now().UTC())
		active, expired = c.Active, c.Expired

		if t, perr := time.Parse(time.RFC3339, snapshot.Updated); perr == nil {
			lastUpdated = t.UTC().Format("2006-01-02 15:04:05 UTC")
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, templates.RenderCodesPage(active, expired, lastUpdated))
}
