package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/starpick-admin/internal/platform/logging"
)

const (
	defaultAPIBaseURL       = "http://starpick-server.test/api/v1"
	defaultSofaScoreBaseURL = "https://www.sofascore.com/api/v1"
	defaultSessionFileName  = ".starpick/session.json"
)

// Config stores runtime configuration for the admin console.
type Config struct {
	AppEnv                         string
	ServiceName                    string
	ServiceVersion                 string
	APIBaseURL                     string
	HTTPTimeout                    time.Duration
	SessionFile                    string
	ReferenceCacheTTL              time.Duration
	SearchDebounce                 time.Duration
	SofaScoreEnabled               bool
	SofaScoreBaseURL               string
	SofaScoreTimeout               time.Duration
	SofaScoreCacheTTL              time.Duration
	SofaScoreCircuitEnabled        bool
	SofaScoreCircuitFailureCount   int
	SofaScoreCircuitOpenTimeout    time.Duration
	SofaScoreCircuitHalfOpenMaxReq int
	SyncMaxWorkers                 int
	UptraceEnabled                 bool
	UptraceDSN                     string
	LogLevel                       logging.Level
	LogFormat                      string
}

// LoadDotEnv seeds the process environment from the first readable .env file.
// Variables already present in the environment win.
func LoadDotEnv(paths ...string) string {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		if err := godotenv.Load(path); err == nil {
			return path
		}
	}
	return ""
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	apiBaseURL := strings.TrimRight(strings.TrimSpace(getEnv("STARPICK_API_BASE_URL", defaultAPIBaseURL)), "/")
	if !strings.HasPrefix(apiBaseURL, "http://") && !strings.HasPrefix(apiBaseURL, "https://") {
		return Config{}, fmt.Errorf("STARPICK_API_BASE_URL must be an http(s) url, got %q", apiBaseURL)
	}

	// zero keeps the transport default, the backend client never sets its own deadline
	httpTimeout, err := time.ParseDuration(getEnv("STARPICK_HTTP_TIMEOUT", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STARPICK_HTTP_TIMEOUT: %w", err)
	}
	if httpTimeout < 0 {
		return Config{}, fmt.Errorf("STARPICK_HTTP_TIMEOUT must be >= 0")
	}

	sessionFile := strings.TrimSpace(getEnv("SESSION_FILE", ""))
	if sessionFile == "" {
		sessionFile, err = defaultSessionFile()
		if err != nil {
			return Config{}, err
		}
	}

	referenceCacheTTL, err := time.ParseDuration(getEnv("REFERENCE_CACHE_TTL", "1m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse REFERENCE_CACHE_TTL: %w", err)
	}
	if referenceCacheTTL < 0 {
		return Config{}, fmt.Errorf("REFERENCE_CACHE_TTL must be >= 0")
	}

	searchDebounce, err := time.ParseDuration(getEnv("SEARCH_DEBOUNCE", "500ms"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SEARCH_DEBOUNCE: %w", err)
	}
	if searchDebounce <= 0 {
		return Config{}, fmt.Errorf("SEARCH_DEBOUNCE must be > 0")
	}

	sofaEnabled, err := strconv.ParseBool(getEnv("SOFASCORE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFASCORE_ENABLED: %w", err)
	}
	sofaTimeout, err := time.ParseDuration(getEnv("SOFASCORE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFASCORE_TIMEOUT: %w", err)
	}
	if sofaTimeout <= 0 {
		return Config{}, fmt.Errorf("SOFASCORE_TIMEOUT must be > 0")
	}
	sofaCacheTTL, err := time.ParseDuration(getEnv("SOFASCORE_CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFASCORE_CACHE_TTL: %w", err)
	}
	if sofaCacheTTL < 0 {
		return Config{}, fmt.Errorf("SOFASCORE_CACHE_TTL must be >= 0")
	}
	sofaCircuitEnabled, err := strconv.ParseBool(getEnv("SOFASCORE_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFASCORE_CIRCUIT_ENABLED: %w", err)
	}
	sofaCircuitFailureCount, err := getEnvAsInt("SOFASCORE_CIRCUIT_FAILURE_COUNT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFASCORE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if sofaCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("SOFASCORE_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	sofaCircuitOpenTimeout, err := time.ParseDuration(getEnv("SOFASCORE_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFASCORE_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if sofaCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("SOFASCORE_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	sofaCircuitHalfOpenMaxReq, err := getEnvAsInt("SOFASCORE_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFASCORE_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if sofaCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("SOFASCORE_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	syncMaxWorkers, err := getEnvAsInt("SYNC_MAX_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse SYNC_MAX_WORKERS: %w", err)
	}
	if syncMaxWorkers < 1 {
		return Config{}, fmt.Errorf("SYNC_MAX_WORKERS must be >= 1")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	logFormat := strings.ToLower(strings.TrimSpace(getEnv("LOG_FORMAT", logging.FormatConsole)))
	if logFormat != logging.FormatConsole && logFormat != logging.FormatJSON {
		return Config{}, fmt.Errorf("invalid LOG_FORMAT %q: valid values are %s, %s", logFormat, logging.FormatConsole, logging.FormatJSON)
	}

	return Config{
		AppEnv:                         appEnv,
		ServiceName:                    strings.TrimSpace(getEnv("SERVICE_NAME", "starpick-admin")),
		ServiceVersion:                 strings.TrimSpace(getEnv("SERVICE_VERSION", "dev")),
		APIBaseURL:                     apiBaseURL,
		HTTPTimeout:                    httpTimeout,
		SessionFile:                    sessionFile,
		ReferenceCacheTTL:              referenceCacheTTL,
		SearchDebounce:                 searchDebounce,
		SofaScoreEnabled:               sofaEnabled,
		SofaScoreBaseURL:               strings.TrimRight(strings.TrimSpace(getEnv("SOFASCORE_BASE_URL", defaultSofaScoreBaseURL)), "/"),
		SofaScoreTimeout:               sofaTimeout,
		SofaScoreCacheTTL:              sofaCacheTTL,
		SofaScoreCircuitEnabled:        sofaCircuitEnabled,
		SofaScoreCircuitFailureCount:   sofaCircuitFailureCount,
		SofaScoreCircuitOpenTimeout:    sofaCircuitOpenTimeout,
		SofaScoreCircuitHalfOpenMaxReq: sofaCircuitHalfOpenMaxReq,
		SyncMaxWorkers:                 syncMaxWorkers,
		UptraceEnabled:                 uptraceEnabled,
		UptraceDSN:                     uptraceDSN,
		LogLevel:                       logging.ParseLevel(getEnv("LOG_LEVEL", "info")),
		LogFormat:                      logFormat,
	}, nil
}

func defaultSessionFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir for SESSION_FILE: %w", err)
	}
	return filepath.Join(home, defaultSessionFileName), nil
}

func getEnv(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
