package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Fetch modes for spreadsheet data
const (
	FetchModeAPI    = "api"    // Google Sheets values REST API
	FetchModeCSV    = "csv"    // CSV export URLs
	FetchModeSample = "sample" // hardcoded sample numbers, no upstream calls
)

type Config struct {
	Server  Server
	Sheets  Sheets
	Cache   Cache
	Limits  Limits
	Program Program
}

type Server struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type Sheets struct {
	SpreadsheetID  string
	APIKey         string
	BaseURL        string
	CSVBaseURL     string
	FetchMode      string
	RequestTimeout time.Duration
	// GIDs maps sheet tab names to export gid values for CSV mode
	GIDs map[string]string
}

type Cache struct {
	TTL time.Duration
}

type Limits struct {
	RequestsPerSecond int
	Burst             int
}

// Program holds the nonprofit's reporting constants
type Program struct {
	// ForestAcres is the total forest size used for the % reached metric
	ForestAcres float64
	// VolunteerHourValue is the dollar value assigned to one volunteer hour
	VolunteerHourValue decimal.Decimal
}

func Load() *Config {
	config := &Config{
		Server: Server{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Sheets: Sheets{
			SpreadsheetID:  getEnv("SPREADSHEET_ID", ""),
			APIKey:         getEnv("GOOGLE_SHEETS_API_KEY", ""),
			BaseURL:        getEnv("SHEETS_BASE_URL", "https://sheets.googleapis.com"),
			CSVBaseURL:     getEnv("SHEETS_CSV_BASE_URL", "https://docs.google.com"),
			FetchMode:      getEnv("SHEETS_FETCH_MODE", FetchModeAPI),
			RequestTimeout: getDurationEnv("SHEETS_REQUEST_TIMEOUT", 10*time.Second),
			GIDs:           loadGIDMap(),
		},
		Cache: Cache{
			TTL: getDurationEnv("CACHE_TTL", 5*time.Minute),
		},
		Limits: Limits{
			RequestsPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			Burst:             getIntEnv("RATE_LIMIT_BURST", 10),
		},
		Program: Program{
			ForestAcres:        getFloatEnv("FOREST_TOTAL_ACRES", 4000),
			VolunteerHourValue: getDecimalEnv("VOLUNTEER_HOUR_VALUE", "13.20"),
		},
	}

	config.Server.CORSAllowOrigins = loadCORSAllowOrigins(config.IsProduction())

	// Sample mode needs no credentials; the other modes do
	if config.Sheets.FetchMode != FetchModeSample && !config.Sheets.Configured() {
		log.Println("WARNING: SPREADSHEET_ID or GOOGLE_SHEETS_API_KEY not set, falling back to sample data mode")
		config.Sheets.FetchMode = FetchModeSample
	}

	return config
}

// Configured reports whether enough settings are present to reach the spreadsheet
func (s *Sheets) Configured() bool {
	if s.SpreadsheetID == "" {
		return false
	}
	if s.FetchMode == FetchModeCSV {
		return true
	}
	return s.APIKey != ""
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue string) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	d, err := decimal.NewFromString(defaultValue)
	if err != nil {
		log.Fatal(fmt.Sprintf("invalid default decimal for %s: %v", key, err))
	}
	return d
}

// loadGIDMap parses SHEETS_GIDS, a comma-separated list of name=gid pairs,
// e.g. "Volunteer Participation Trends=0,Acres Cleaned Timeline=1807719"
func loadGIDMap() map[string]string {
	gids := make(map[string]string)
	raw := os.Getenv("SHEETS_GIDS")
	if raw == "" {
		return gids
	}

	for _, pair := range strings.Split(raw, ",") {
		name, gid, found := strings.Cut(pair, "=")
		if !found {
			log.Printf("WARNING: ignoring malformed SHEETS_GIDS entry %q", pair)
			continue
		}
		gids[strings.TrimSpace(name)] = strings.TrimSpace(gid)
	}

	return gids
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func loadCORSAllowOrigins(isProduction bool) []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if isProduction {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
