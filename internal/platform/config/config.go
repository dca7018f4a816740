package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/coin_vault_app/internal/apperrors"
	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	JWTSecret          string
	JWTIssuer          string
	CurrencyFile       string
	DefaultStackSize   int
	RateLimit          string // ulule/limiter formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string
	MigrationsPath     string
	ShutdownTimeout    time.Duration
}

// DenominationConfig is one configured token kind.
type DenominationConfig struct {
	Kind       string `mapstructure:"kind" validate:"required"`
	Value      int64  `mapstructure:"value" validate:"required,gt=0"`
	MaxPerSlot int    `mapstructure:"max_per_slot" validate:"required,gt=0"`
}

// CurrencyConfig is the `currency` section of the currency file.
type CurrencyConfig struct {
	Name          string               `mapstructure:"name" validate:"required"`
	NamePlural    string               `mapstructure:"name_plural"`
	Digits        int                  `mapstructure:"digits" validate:"gte=0,lte=18"`
	Denominations []DenominationConfig `mapstructure:"denominations" validate:"required,min=1,dive"`
}

var validate = validator.New()

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "coin-vault-app")
	viper.SetDefault("CURRENCY_FILE", "config/currency.yaml")
	viper.SetDefault("DEFAULT_STACK_SIZE", 64)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.DefaultStackSize = viper.GetInt("DEFAULT_STACK_SIZE")
	if cfg.DefaultStackSize <= 0 {
		cfg.DefaultStackSize = 64
		log.Printf("Warning: Invalid DEFAULT_STACK_SIZE. Defaulting to %d.\n", cfg.DefaultStackSize)
	}

	shutdownStr := viper.GetString("SHUTDOWN_TIMEOUT")
	shutdown, err := time.ParseDuration(shutdownStr)
	if err != nil {
		shutdown = 10 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, shutdown)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.CurrencyFile = viper.GetString("CURRENCY_FILE")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.ShutdownTimeout = shutdown

	return cfg, nil
}

// LoadCurrencyConfig reads and validates the currency section of a YAML (or any
// viper-supported) file.
func LoadCurrencyConfig(path string) (*CurrencyConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read currency file %s: %w", path, err)
	}
	return decodeCurrency(v)
}

// WatchCurrencyFile invokes onChange with a freshly validated CurrencyConfig
// every time the file changes. Invalid edits are logged and skipped so the
// running currency stays in place.
func WatchCurrencyFile(path string, logger *slog.Logger, onChange func(*CurrencyConfig)) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read currency file %s: %w", path, err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		cc, err := decodeCurrency(v)
		if err != nil {
			logger.Error("Ignoring invalid currency file change",
				slog.String("file", e.Name),
				slog.String("error", err.Error()))
			return
		}
		logger.Info("Currency file changed", slog.String("file", e.Name), slog.String("op", e.Op.String()))
		onChange(cc)
	})
	v.WatchConfig()
	return nil
}

func decodeCurrency(v *viper.Viper) (*CurrencyConfig, error) {
	var cc CurrencyConfig
	if err := v.UnmarshalKey("currency", &cc); err != nil {
		return nil, fmt.Errorf("failed to decode currency section: %w", err)
	}
	if err := cc.Validate(); err != nil {
		return nil, err
	}
	return &cc, nil
}

// Validate checks struct tags and rejects duplicate token kinds.
func (cc *CurrencyConfig) Validate() error {
	if len(cc.Denominations) == 0 {
		return fmt.Errorf("%w: currency %q", apperrors.ErrNoDenominations, cc.Name)
	}
	if err := validate.Struct(cc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: currency config field %s failed %q", apperrors.ErrValidation, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	seen := make(map[string]struct{}, len(cc.Denominations))
	for _, d := range cc.Denominations {
		if _, dup := seen[d.Kind]; dup {
			return fmt.Errorf("%w: duplicate denomination kind %q", apperrors.ErrValidation, d.Kind)
		}
		seen[d.Kind] = struct{}{}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
