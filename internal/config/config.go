package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the application.
type Config struct {
	AppName     string
	Environment string
	HTTP        HTTPConfig
	Mongo       MongoConfig
	NATS        NATSConfig
	Context     ContextConfig
	Logger      LoggerConfig
}

type HTTPConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// MongoConfig selects the document store. The repository falls back to the
// in-memory adapter when URI is empty.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// NATSConfig selects the event channel. Publishing is disabled (no-op
// publishers) when URL is empty.
type NATSConfig struct {
	URL              string
	EventsSubject    string
	RequestsSubject  string
	ResponsesSubject string
	MirrorResponses  bool
}

type ContextConfig struct {
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from environment variables (optionally .env)
// and applies sane defaults so the service can boot in any environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "taskforge"),
		Environment: getString("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Host:         getString("SERVER_HOST", "0.0.0.0"),
			Port:         getString("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		},
		Mongo: MongoConfig{
			URI:        strings.TrimSpace(os.Getenv("MONGO_URI")),
			Database:   getString("MONGO_DATABASE", "tasks_db"),
			Collection: getString("MONGO_COLLECTION", "tasks"),
		},
		NATS: NATSConfig{
			URL:              strings.TrimSpace(os.Getenv("NATS_URL")),
			EventsSubject:    getString("NATS_EVENTS_SUBJECT", "tasks.events"),
			RequestsSubject:  getString("NATS_REQUESTS_SUBJECT", "tasks.requests"),
			ResponsesSubject: getString("NATS_RESPONSES_SUBJECT", "tasks.responses"),
			MirrorResponses:  getBool("PUBLISH_RESPONSES", false),
		},
		Context: ContextConfig{
			RequestTimeout:  getDuration("REQUEST_TIMEOUT_SECONDS", 5*time.Second),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "json"),
		},
	}

	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// UseMongo reports whether the document-store repository is selected.
func (c *Config) UseMongo() bool {
	return c.Mongo.URI != ""
}

// UseNATS reports whether queue-backed publishing is selected.
func (c *Config) UseNATS() bool {
	return c.NATS.URL != "" && c.NATS.EventsSubject != ""
}

// IsProduction controls whether error detail leaks into responses.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Address returns the HTTP listen address for the fasthttp server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.HTTP.Host, c.HTTP.Port)
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
