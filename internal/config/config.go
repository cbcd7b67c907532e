package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		// Session lifetime in hours. Defaults to 30 days.
		TTLHours int `yaml:"ttl_hours"`
		// Tokens older than this many hours are silently re-issued.
		RenewAfterHours int `yaml:"renew_after_hours"`
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Storage struct {
		BasePath string `yaml:"base_path"`
		BaseURL  string `yaml:"base_url"`
	} `yaml:"storage"`

	Outbox struct {
		// Dispatcher poll interval in seconds.
		PollSeconds int `yaml:"poll_seconds"`
		MaxAttempts int `yaml:"max_attempts"`
		BatchSize   int `yaml:"batch_size"`
	} `yaml:"outbox"`

	// Bootstrap admin account created at startup if absent.
	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or builds the config entirely from
// environment variables when DATABASE_URL is set (test/deploy mode).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
	} else {
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")

		cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
		cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
		cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
		cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
		cfg.Email.FromEmail = os.Getenv("EMAIL_FROM")
		cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")

		cfg.Storage.BasePath = os.Getenv("STORAGE_PATH")
		cfg.Storage.BaseURL = os.Getenv("STORAGE_URL")

		cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
		cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")
	}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.JWT.TTLHours == 0 {
		cfg.JWT.TTLHours = 30 * 24
	}
	if cfg.JWT.RenewAfterHours == 0 {
		cfg.JWT.RenewAfterHours = 24
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/api/files"
	}
	if cfg.Outbox.PollSeconds == 0 {
		cfg.Outbox.PollSeconds = 30
	}
	if cfg.Outbox.MaxAttempts == 0 {
		cfg.Outbox.MaxAttempts = 3
	}
	if cfg.Outbox.BatchSize == 0 {
		cfg.Outbox.BatchSize = 20
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
