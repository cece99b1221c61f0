package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	App      AppConfig
	Chart    ChartConfig
	Upstream UpstreamConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level     string // debug, info, warn, error
	Format    string // json, text
	AddSource bool   // include file:line in every record
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	ForecastDays int // Number of days requested from the forecast provider
	HourlyLimit  int // Number of hourly entries returned to clients
	DailyLimit   int // Number of daily entries returned to clients
}

// ChartConfig holds the defaults used to normalize forecast series for charting
type ChartConfig struct {
	StartHour          int
	EndHour            int
	Step               int
	SnapToleranceHours float64
	FallbackCount      int
	WeeklyDays         int
}

// UpstreamConfig holds settings shared by the upstream provider clients
type UpstreamConfig struct {
	Timeout         time.Duration
	UserAgent       string
	OpenMeteoURL    string
	NominatimURL    string
	NominatimRPS    float64
	NominatimBurst  int
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// Load reads configuration from .env, config file and environment variables
func Load() (*Config, error) {
	// A missing .env file is fine, the environment may already be populated
	_ = godotenv.Load()

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.weather-dashboard")

	SetDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("WEATHER_DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return unmarshal(v)
}

// SetDefaults registers the default value of every configuration key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.addSource", false)

	v.SetDefault("app.forecastDays", 10)
	v.SetDefault("app.hourlyLimit", 48)
	v.SetDefault("app.dailyLimit", 10)

	v.SetDefault("chart.startHour", 7)
	v.SetDefault("chart.endHour", 23)
	v.SetDefault("chart.step", 2)
	v.SetDefault("chart.snapToleranceHours", 1)
	v.SetDefault("chart.fallbackCount", 8)
	v.SetDefault("chart.weeklyDays", 10)

	v.SetDefault("upstream.timeout", 10*time.Second)
	v.SetDefault("upstream.userAgent", "WeatherDashboard/1.0")
	v.SetDefault("upstream.openMeteoURL", "https://api.open-meteo.com/v1")
	v.SetDefault("upstream.nominatimURL", "https://nominatim.openstreetmap.org")
	v.SetDefault("upstream.nominatimRPS", 1.0)
	v.SetDefault("upstream.nominatimBurst", 1)
	v.SetDefault("upstream.breakerFailures", 5)
	v.SetDefault("upstream.breakerTimeout", 30*time.Second)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks settings that would make the chart normalizer misbehave
func (c *Config) Validate() error {
	if c.Chart.Step <= 0 {
		return fmt.Errorf("chart.step must be positive, got %d", c.Chart.Step)
	}
	if c.Chart.StartHour < 0 || c.Chart.EndHour > 23 || c.Chart.StartHour > c.Chart.EndHour {
		return fmt.Errorf("chart hours must satisfy 0 <= startHour <= endHour <= 23, got %d..%d", c.Chart.StartHour, c.Chart.EndHour)
	}
	if tol := c.Chart.SnapToleranceHours; !(tol >= 0) || math.IsInf(tol, 0) {
		return fmt.Errorf("chart.snapToleranceHours must be a finite non-negative number, got %v", tol)
	}
	if c.Chart.FallbackCount < 0 {
		return fmt.Errorf("chart.fallbackCount must not be negative, got %d", c.Chart.FallbackCount)
	}
	if c.Chart.WeeklyDays < 0 {
		return fmt.Errorf("chart.weeklyDays must not be negative, got %d", c.Chart.WeeklyDays)
	}
	return nil
}

// TargetHours expands the chart start/end/step settings into the ordered list of target hours
func (c *Config) TargetHours() []int {
	hours := make([]int, 0, (c.Chart.EndHour-c.Chart.StartHour)/c.Chart.Step+1)
	for h := c.Chart.StartHour; h <= c.Chart.EndHour; h += c.Chart.Step {
		hours = append(hours, h)
	}
	return hours
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// ServiceName tags every log record and the health check payload
const ServiceName = "weather-dashboard"

// NewLogger builds the application logger writing to stdout. Every record
// carries the service name.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(c.Log.Level),
		AddSource: c.Log.AddSource,
	}

	var handler slog.Handler
	if strings.EqualFold(c.Log.Format, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler).With("service", ServiceName)
}

// parseLevel accepts slog level names plus "warning", falling back to info
func parseLevel(name string) slog.Level {
	if strings.EqualFold(name, "warning") {
		return slog.LevelWarn
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}
