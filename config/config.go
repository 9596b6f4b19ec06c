package config

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Deaquay/shiftcodes/models"
)

// Config holds the project config values
type Config struct {
	Port           string
	BaseUrl        string
	CodesPath      string
	ScraperCommand []string
	ScraperDir     string
	ScraperTimeout time.Duration
	UpdateInterval time.Duration
	UpdateWarmup   time.Duration
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger, err := setLogger(os.Getenv("ENVIRONMENT"))
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		Port:           os.Getenv("PORT"),
		BaseUrl:        os.Getenv("BASE_URL"),
		CodesPath:      envString("CODES_PATH", "docs/codes.json"),
		ScraperCommand: strings.Fields(envString("SCRAPER_COMMAND", "npm run build")),
		ScraperDir:     envString("SCRAPER_DIR", "."),
		ScraperTimeout: envSeconds("SCRAPER_TIMEOUT", 180*time.Second),
		UpdateInterval: envSeconds("UPDATE_INTERVAL", 3600*time.Second),
		UpdateWarmup:   envSeconds("UPDATE_WARMUP", 300*time.Second),
	}

}

// setLogger returns a zap logger for the given deploy environment
func setLogger(environment string) (*zap.Logger, error) {
	switch environment {
	case "development":
		return zap.NewDevelopment()
	case "production":
		return zap.NewProduction()
	default:
		return zap.NewExample(), nil
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envSeconds(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil {
		zap.S().Warnf("invalid %v %q, using default of %v, err: %v", key, v, fallback, err)
		return fallback
	}
	return time.Duration(secs) * time.Second
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(models.ErrorMessageResponse{
		Response: models.MessageError{Message: message, Error: err.Error()},
	})
	w.Write(b)
	return
}
