package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	Redis      Redis      `yaml:"redis"`
	Kafka      Kafka      `yaml:"kafka"`
	Mail       Mail       `yaml:"mail"`
	Geocoder   Geocoder   `yaml:"geocoder"`
	Media      Media      `yaml:"media"`
	Admin      Admin      `yaml:"admin"`
	Site       Site       `yaml:"site"`
	Bookings   Bookings   `yaml:"bookings"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
	CORSOrigins []string      `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:","`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"debaren"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Redis struct {
	Address  string        `yaml:"address" env:"REDIS_ADDRESS"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	TTL      time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"5m"`
}

type Kafka struct {
	Brokers []string      `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	Topic   string        `yaml:"topic" env:"KAFKA_TOPIC" env-default:"debaren.events"`
	Timeout time.Duration `yaml:"timeout" env-default:"10s"`
}

// Mail configures the SMTP relay for contact form notifications. An empty
// Host disables mail.
type Mail struct {
	Host      string        `yaml:"host" env:"SMTP_HOST"`
	Port      int           `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username  string        `yaml:"username" env:"SMTP_USERNAME"`
	Password  string        `yaml:"password" env:"SMTP_PASSWORD"`
	From      string        `yaml:"from" env:"MAIL_FROM" env-default:"Debaren <no-reply@debaren.com>"`
	ContactTo string        `yaml:"contact_to" env:"CONTACT_EMAIL"`
	Timeout   time.Duration `yaml:"timeout" env-default:"15s"`
}

type Geocoder struct {
	BaseURL        string        `yaml:"base_url" env:"GEOCODER_BASE_URL" env-default:"https://nominatim.openstreetmap.org"`
	UserAgent      string        `yaml:"user_agent" env:"GEOCODER_USER_AGENT" env-default:"debaren/1.0"`
	AcceptLanguage string        `yaml:"accept_language" env-default:"en"`
	Timeout        time.Duration `yaml:"timeout" env-default:"10s"`
}

type Media struct {
	Dir         string `yaml:"dir" env:"MEDIA_DIR" env-default:"./media"`
	BaseURL     string `yaml:"base_url" env:"MEDIA_BASE_URL" env-default:"/media"`
	MaxUploadMB int64  `yaml:"max_upload_mb" env-default:"32"`
}

type Admin struct {
	Username     string        `yaml:"username" env:"ADMIN_USERNAME" env-default:"admin"`
	PasswordHash string        `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH"`
	JWTSecret    string        `yaml:"jwt_secret" env:"ADMIN_JWT_SECRET"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"12h"`
}

type Site struct {
	Brand        string `yaml:"brand" env-default:"Debaren"`
	SupportEmail string `yaml:"support_email" env-default:"support@debaren.com"`
	Phone        string `yaml:"phone" env-default:"+27 12 345 6789"`
	Address      string `yaml:"address" env-default:"Sandton City, Johannesburg, South Africa"`
}

type Bookings struct {
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"1m"`
}

// MustLoad reads the configuration file pointed to by CONFIG_PATH and exits on failure.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

// Load reads a YAML config file, then applies environment overrides.
// A .env file in the working directory is loaded first when present.
// An empty path means configuration comes from the environment only.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return &cfg, nil
}
