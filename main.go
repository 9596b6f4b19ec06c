package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/Deaquay/shiftcodes/api/handlers"

	"go.uber.org/zap"

	"github.com/Deaquay/shiftcodes/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	a.Initialize() //initialize scraper, scheduler and router

	port := a.Config.Port
	baseURL := os.Getenv("BASE_URL")
	zap.S().Infow("shiftcodes is up and running",
		"port", port,
		"url", baseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}
