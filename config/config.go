package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/viper"
)

var log = logging.MustGetLogger("log")

// Config holds the application configuration, read from the environment
// after an optional .env file has been applied.
type Config struct {
	Port          string        `mapstructure:"backend_port"`
	DataFile      string        `mapstructure:"data_file"`
	FrontendURI   string        `mapstructure:"frontend_uri"`
	LogLevel      string        `mapstructure:"log_level"`
	SMTPHost      string        `mapstructure:"smtp_host"`
	SMTPPort      int           `mapstructure:"smtp_port"`
	SMTPUsername  string        `mapstructure:"smtp_username"`
	SMTPPassword  string        `mapstructure:"smtp_password"`
	SMTPTimeout   time.Duration `mapstructure:"smtp_timeout"`
	MailFrom      string        `mapstructure:"mail_from"`
	PreviewURL    string        `mapstructure:"mail_preview_url"`
	FilterByVenue bool          `mapstructure:"report_filter_by_venue"`
}

var requiredFields = []string{
	"backend_port",
	"data_file",
}

// field: default value
var optionalFields = map[string]interface{}{
	"frontend_uri":           "*",
	"log_level":              "INFO",
	"smtp_host":              "",
	"smtp_port":              587,
	"smtp_username":          "",
	"smtp_password":          "",
	"smtp_timeout":           "10s",
	"mail_from":              "reports@localhost",
	"mail_preview_url":       "",
	"report_filter_by_venue": false,
}

// Load applies the given .env files (or ./.env when none are given) and reads
// the configuration from the environment. Missing .env files are not an
// error; missing required variables are.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Info("No .env file loaded, using environment variables directly")
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, field := range requiredFields {
		if err := v.BindEnv(field, strings.ToUpper(field)); err != nil {
			return nil, err
		}
	}
	for field, def := range optionalFields {
		if err := v.BindEnv(field, strings.ToUpper(field)); err != nil {
			return nil, err
		}
		v.SetDefault(field, def)
	}

	for _, field := range requiredFields {
		if strings.TrimSpace(v.GetString(field)) == "" {
			return nil, fmt.Errorf("%s env var is undefined", strings.ToUpper(field))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
