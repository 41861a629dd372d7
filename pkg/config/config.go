package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "saracafe"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "SARACAFE_DB_DSN"
	EnvDBHost = "SARACAFE_DB_HOST"
	EnvDBUser = "SARACAFE_DB_USER"
	EnvDBName = "SARACAFE_DB_NAME"
)

// DefaultJWTSecret ships for local development only. Load refuses to boot a
// prod process that still uses it.
const DefaultJWTSecret = "change-me-saracafe-dev-secret-32-chars"

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	JWT          JWTConfig
	Media        MediaConfig
	Seed         SeedConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if cfg.App.IsProd() && cfg.JWT.Secret == DefaultJWTSecret {
		return nil, fmt.Errorf("%s must be overridden outside dev", "SARACAFE_JWT_SECRET")
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SARACAFE_APP_ENV" default:"dev"`
	Port         string `envconfig:"SARACAFE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SARACAFE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SARACAFE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"SARACAFE_DB_DSN"`

	LegacyHost     string `envconfig:"SARACAFE_DB_HOST"`
	LegacyPort     int    `envconfig:"SARACAFE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SARACAFE_DB_USER"`
	LegacyPassword string `envconfig:"SARACAFE_DB_PASSWORD"`
	LegacyName     string `envconfig:"SARACAFE_DB_NAME"`
	LegacySSLMode  string `envconfig:"SARACAFE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SARACAFE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SARACAFE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SARACAFE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SARACAFE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// JWTConfig carries the symmetric signing key and claim boundaries. The
// defaults mirror the site's historical values and are only suitable for
// local development.
type JWTConfig struct {
	Secret          string `envconfig:"SARACAFE_JWT_SECRET" default:"change-me-saracafe-dev-secret-32-chars"`
	Issuer          string `envconfig:"SARACAFE_JWT_ISSUER" default:"SaraCafe"`
	Audience        string `envconfig:"SARACAFE_JWT_AUDIENCE" default:"SaraCafeUsers"`
	ExpirationHours int    `envconfig:"SARACAFE_JWT_EXPIRATION_HOURS" default:"24"`
}

// Expiration returns the access token TTL.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationHours <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationHours) * time.Hour
}

type MediaConfig struct {
	RootDir     string `envconfig:"SARACAFE_MEDIA_ROOT" default:"wwwroot"`
	MaxUploadMB int    `envconfig:"SARACAFE_MAX_UPLOAD_MB" default:"10"`
}

// MaxUploadBytes converts the configured megabyte cap for multipart parsing.
func (m MediaConfig) MaxUploadBytes() int64 {
	if m.MaxUploadMB <= 0 {
		return 10 << 20
	}
	return int64(m.MaxUploadMB) << 20
}

type SeedConfig struct {
	AdminUsername string `envconfig:"SARACAFE_SEED_ADMIN_USERNAME" default:"admin"`
	AdminEmail    string `envconfig:"SARACAFE_SEED_ADMIN_EMAIL" default:"admin@saracafe.com"`
	AdminPassword string `envconfig:"SARACAFE_SEED_ADMIN_PASSWORD" default:"Admin@123"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SARACAFE_AUTO_MIGRATE" default:"false"`
	SeedOnBoot  bool `envconfig:"SARACAFE_SEED_ON_BOOT" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
