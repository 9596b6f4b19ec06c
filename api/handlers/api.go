package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Deaquay/shiftcodes/api"
	"github.com/Deaquay/shiftcodes/api/scheduler"
	"github.com/Deaquay/shiftcodes/config"
	"github.com/Deaquay/shiftcodes/scraper"
	"github.com/Deaquay/shiftcodes/store"
)

// App stores the router and service collaborators, so they can be reused
type App struct {
	Router    *mux.Router
	Store     store.SnapshotStore
	Refresher scraper.Refresher
	Scheduler *scheduler.Scheduler
	Config    config.Config
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// base router already carries the health route
	r := api.New()

	idx := Index{Store: a.Store}
	c := Codes{Store: a.Store, UpdateInterval: a.Config.UpdateInterval}
	u := Update{Refresher: a.Refresher}

	r.Handle("/", api.Middleware(http.HandlerFunc(idx.IndexHandler))).Methods("GET")
	r.Handle("/api/codes", api.Middleware(http.HandlerFunc(c.CodesHandler))).Methods("GET")
	r.Handle("/api/update", api.Middleware(http.HandlerFunc(u.UpdateHandler))).Methods("POST", "OPTIONS")
	r.Handle("/api/status", api.Middleware(http.HandlerFunc(c.StatusHandler))).Methods("GET")

	return r
}

// Initialize is invoked by main to wire the store, scraper and scheduler
// and create a router
func (a *App) Initialize() {
	a.Store = store.NewFileStore(a.Config.CodesPath)
	a.Refresher = scraper.New(a.Config.ScraperCommand, a.Config.ScraperDir, a.Config.ScraperTimeout)

	// the scheduler is started once here and owns the hourly refresh cycle
	// for the lifetime of the process
	a.Scheduler = scheduler.New(a.Refresher, a.Config.UpdateWarmup, a.Config.UpdateInterval)
	a.Scheduler.Start()

	// initialize api router
	a.initializeRoutes()
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}
