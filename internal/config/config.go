package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full process configuration. Non-secret defaults come from
// configs/config.yml; secrets come from the environment (or a .env file in
// development).
type Config struct {
	Port     string
	LogLevel string

	DB       DB
	Session  Session
	Razorpay Razorpay
	SMTP     SMTP
}

// DB describes the Postgres credential store connection.
type DB struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the connection string for the pgx stdlib driver.
func (d DB) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Session holds the token signing secret.
type Session struct {
	Secret string
}

// Razorpay holds the gateway API credentials. The key secret is also the
// shared secret for payment-callback signature verification.
type Razorpay struct {
	KeyID     string
	KeySecret string
}

// SMTP holds the outbound-mail account used by the contact form.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	// Operator is the fixed recipient of contact-form submissions.
	Operator string
}

// Keys that must be present in the environment. There is deliberately no
// fallback for the session secret: running with a default signing key is a
// deployment error, not a degraded mode.
var requiredKeys = []string{
	"session.secret",
	"razorpay.key_id",
	"razorpay.key_secret",
	"smtp.username",
	"smtp.password",
}

// Load reads configs/config.yml, overlays environment variables
// (SESSION_SECRET, DB_HOST, RAZORPAY_KEY_ID, ...) and validates that all
// secrets are present.
func Load() (*Config, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := validateRequired(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:     viper.GetString("port"),
		LogLevel: viper.GetString("log_level"),
		DB: DB{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			Name:     viper.GetString("db.name"),
			SSLMode:  viper.GetString("db.sslmode"),
		},
		Session: Session{
			Secret: viper.GetString("session.secret"),
		},
		Razorpay: Razorpay{
			KeyID:     viper.GetString("razorpay.key_id"),
			KeySecret: viper.GetString("razorpay.key_secret"),
		},
		SMTP: SMTP{
			Host:     viper.GetString("smtp.host"),
			Port:     viper.GetInt("smtp.port"),
			Username: viper.GetString("smtp.username"),
			Password: viper.GetString("smtp.password"),
			Operator: viper.GetString("smtp.operator"),
		},
	}

	if cfg.SMTP.Operator == "" {
		cfg.SMTP.Operator = cfg.SMTP.Username
	}

	return cfg, nil
}

func validateRequired() error {
	var missing []string
	for _, key := range requiredKeys {
		if strings.TrimSpace(viper.GetString(key)) == "" {
			missing = append(missing, strings.ToUpper(strings.ReplaceAll(key, ".", "_")))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
