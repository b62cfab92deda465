package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	SeedSourceStatic   = "static"
	SeedSourcePostgres = "postgres"
)

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	GRPC      GRPCConfig      `yaml:"grpc"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Booking   BookingConfig   `yaml:"booking"`
	Seed      SeedConfig      `yaml:"seed"`
	FloorPlan FloorPlanConfig `yaml:"floorplan"`
	Log       LogConfig       `yaml:"log"`
}

type HTTPConfig struct {
	Address        string   `yaml:"address" validate:"required"`
	Mode           string   `yaml:"mode" validate:"oneof=debug release test"`
	SwaggerDir     string   `yaml:"swagger_dir"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// GRPCConfig addresses the gRPC health service. An empty address disables it.
type GRPCConfig struct {
	Address               string `yaml:"address"`
	HealthIntervalSeconds int    `yaml:"health_interval_seconds" validate:"gte=1"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port" validate:"gte=0,lte=65535"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr" validate:"required_if=Enabled true"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"gte=0"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type BookingConfig struct {
	DefaultUserID     string `yaml:"default_user_id" validate:"required"`
	DefaultUserName   string `yaml:"default_user_name" validate:"required"`
	DesksCacheSeconds int    `yaml:"desks_cache_ttl_seconds" validate:"gte=0"`
	Timezone          string `yaml:"timezone"`
}

type SeedConfig struct {
	Source string `yaml:"source" validate:"oneof=static postgres"`
	// Migrations is a golang-migrate source URL applied before loading desks
	// from postgres. Empty skips migrations.
	Migrations string `yaml:"migrations"`
}

type FloorPlanConfig struct {
	SessionTTLMinutes int `yaml:"session_ttl_minutes" validate:"gte=1"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used for any value a file leaves out.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Address:        ":8080",
			Mode:           "release",
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		GRPC:     GRPCConfig{Address: ":9090", HealthIntervalSeconds: 10},
		Database: DatabaseConfig{Port: 5432, SSLMode: "disable"},
		Redis:    RedisConfig{Addr: "localhost:6379"},
		Kafka: KafkaConfig{
			BookingEventsTopic: "desk-booking-events",
			NotificationsTopic: "desk-notifications",
			GroupID:            "deskbuddy-worker",
		},
		Booking: BookingConfig{
			DefaultUserID:     "current-user",
			DefaultUserName:   "You",
			DesksCacheSeconds: 60,
			Timezone:          "UTC",
		},
		Seed:      SeedConfig{Source: SeedSourceStatic, Migrations: "file://migrations"},
		FloorPlan: FloorPlanConfig{SessionTTLMinutes: 60},
		Log:       LogConfig{Level: "info"},
	}
}

// LoadConfig reads the YAML file at path on top of Default, applies
// DESKBUDDY_* environment overrides and validates the result. A .env file
// in the working directory is loaded first when present.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Seed.Source == SeedSourcePostgres && strings.TrimSpace(c.Database.Host) == "" {
		return errors.New("invalid config: database.host is required for the postgres seed source")
	}
	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("invalid config: booking.timezone: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := env("DESKBUDDY_HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v, ok := os.LookupEnv("DESKBUDDY_GRPC_ADDRESS"); ok {
		cfg.GRPC.Address = strings.TrimSpace(v)
	}
	if v := env("DESKBUDDY_DATABASE_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := env("DESKBUDDY_DATABASE_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := env("DESKBUDDY_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := env("DESKBUDDY_KAFKA_BROKERS"); v != "" {
		brokers := make([]string, 0)
		for _, broker := range strings.Split(v, ",") {
			if broker = strings.TrimSpace(broker); broker != "" {
				brokers = append(brokers, broker)
			}
		}
		cfg.Kafka.Brokers = brokers
	}
	if v := env("DESKBUDDY_SEED_SOURCE"); v != "" {
		cfg.Seed.Source = v
	}
	if v := env("DESKBUDDY_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// Location returns the booking timezone. Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Booking.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) GRPCHealthInterval() time.Duration {
	return time.Duration(c.GRPC.HealthIntervalSeconds) * time.Second
}

func (c *Config) DesksCacheTTL() time.Duration {
	return time.Duration(c.Booking.DesksCacheSeconds) * time.Second
}

func (c *Config) FloorPlanSessionTTL() time.Duration {
	return time.Duration(c.FloorPlan.SessionTTLMinutes) * time.Minute
}

func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
