package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"

	"github.com/parspay/tara-gateway/internal/tara"
)

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Gateway  GatewayConfig  `koanf:"gateway"`
	Logger   LoggerConfig   `koanf:"logger"`
	Worker   WorkerConfig   `koanf:"worker"`
}

// WorkerConfig drives the background reconciler that settles payments whose
// callback never arrived.
type WorkerConfig struct {
	Interval   time.Duration `koanf:"interval" validate:"required"`
	BatchSize  int           `koanf:"batch_size" validate:"required"`
	StaleAfter time.Duration `koanf:"stale_after" validate:"required"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

// GatewayConfig carries the Tara merchant credentials and optional endpoint
// overrides. Empty URLs fall back to the documented production endpoints;
// is_test redirects production URLs to staging at call time.
type GatewayConfig struct {
	Username        string        `koanf:"username" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	IP              string        `koanf:"ip" validate:"required"`
	IsTest          bool          `koanf:"is_test"`
	ConnTimeout     time.Duration `koanf:"conn_timeout" validate:"required"`
	AuthenticateURL string        `koanf:"authenticate_url"`
	GetTokenURL     string        `koanf:"get_token_url"`
	PaymentURL      string        `koanf:"payment_url"`
	VerifyURL       string        `koanf:"verify_url"`
	InquiryURL      string        `koanf:"inquiry_url"`
}

func (c GatewayConfig) Account() tara.Account {
	return tara.Account{
		Username: c.Username,
		Password: c.Password,
		IP:       c.IP,
		IsTest:   c.IsTest,
	}
}

func (c GatewayConfig) Endpoints() tara.Endpoints {
	ep := tara.DefaultEndpoints()
	if c.AuthenticateURL != "" {
		ep.Authenticate = c.AuthenticateURL
	}
	if c.GetTokenURL != "" {
		ep.GetToken = c.GetTokenURL
	}
	if c.PaymentURL != "" {
		ep.Payment = c.PaymentURL
	}
	if c.VerifyURL != "" {
		ep.Verify = c.VerifyURL
	}
	if c.InquiryURL != "" {
		ep.Inquiry = c.InquiryURL
	}
	return ep
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	err := k.Load(env.Provider("TARA_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TARA_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
