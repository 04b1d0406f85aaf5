package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Inventory     InventoryConfig
	Storage       StorageConfig
	SMTP          SMTPConfig
	Bootstrap     BootstrapConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOCKKEEP_APP_ENV" required:"true"`
	Port         string `envconfig:"STOCKKEEP_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STOCKKEEP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOCKKEEP_LOG_WARN_STACK" default:"false"`

	CORSOrigins []string `envconfig:"STOCKKEEP_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"STOCKKEEP_DB_DSN"`
	Driver string `envconfig:"STOCKKEEP_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"STOCKKEEP_DB_HOST"`
	LegacyPort     int    `envconfig:"STOCKKEEP_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"STOCKKEEP_DB_USER"`
	LegacyPassword string `envconfig:"STOCKKEEP_DB_PASSWORD"`
	LegacyName     string `envconfig:"STOCKKEEP_DB_NAME"`
	LegacySSLMode  string `envconfig:"STOCKKEEP_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"STOCKKEEP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"STOCKKEEP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"STOCKKEEP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STOCKKEEP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RedisConfig is optional; when URL is empty the auth rate limiter is disabled.
type RedisConfig struct {
	URL          string        `envconfig:"STOCKKEEP_REDIS_URL"`
	PoolSize     int           `envconfig:"STOCKKEEP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOCKKEEP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOCKKEEP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOCKKEEP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOCKKEEP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return r.URL != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"STOCKKEEP_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"STOCKKEEP_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"STOCKKEEP_JWT_EXPIRATION_MINUTES" default:"720"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"STOCKKEEP_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"STOCKKEEP_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"STOCKKEEP_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"STOCKKEEP_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"STOCKKEEP_ARGON_KEY_LEN" default:"32"`

	MinLength int `envconfig:"STOCKKEEP_PASSWORD_MIN_LENGTH" default:"6"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"STOCKKEEP_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginUserLimit     int           `envconfig:"STOCKKEEP_AUTH_RATE_LIMIT_LOGIN_USER_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"STOCKKEEP_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"STOCKKEEP_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterUserLimit  int           `envconfig:"STOCKKEEP_AUTH_RATE_LIMIT_REGISTER_USER_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"STOCKKEEP_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type InventoryConfig struct {
	LowStockThreshold int    `envconfig:"STOCKKEEP_LOW_STOCK_THRESHOLD" default:"5"`
	CurrencySymbol    string `envconfig:"STOCKKEEP_CURRENCY_SYMBOL" default:"₹"`
}

type StorageConfig struct {
	PDFDir   string `envconfig:"STOCKKEEP_PDF_DIR" default:"static/pdfs"`
	ImageDir string `envconfig:"STOCKKEEP_IMAGE_DIR" default:"static/images"`
}

type SMTPConfig struct {
	Host     string `envconfig:"STOCKKEEP_SMTP_HOST"`
	Port     int    `envconfig:"STOCKKEEP_SMTP_PORT" default:"465"`
	Username string `envconfig:"STOCKKEEP_SMTP_USERNAME"`
	Password string `envconfig:"STOCKKEEP_SMTP_PASSWORD"`

	// AdminEmail doubles as the sender address and the low-stock fallback
	// recipient.
	AdminEmail string `envconfig:"STOCKKEEP_ADMIN_EMAIL_ADDRESS"`
}

func (s SMTPConfig) Configured() bool {
	return s.Host != "" && s.Port > 0 && s.AdminEmail != ""
}

type BootstrapConfig struct {
	AdminUsername string `envconfig:"STOCKKEEP_DEFAULT_ADMIN_USERNAME"`
	AdminPassword string `envconfig:"STOCKKEEP_DEFAULT_ADMIN_PASSWORD"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"STOCKKEEP_AUTO_MIGRATE" default:"false"`
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
