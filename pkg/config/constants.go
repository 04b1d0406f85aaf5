package config

// EnvPrefix is the envconfig prefix shared by every variable.
const EnvPrefix = "STOCKKEEP"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags (tests, error text).
const (
	EnvAppEnv     = "STOCKKEEP_APP_ENV"
	EnvPort       = "STOCKKEEP_APP_PORT"
	EnvDBDSN      = "STOCKKEEP_DB_DSN"
	EnvDBHost     = "STOCKKEEP_DB_HOST"
	EnvDBUser     = "STOCKKEEP_DB_USER"
	EnvDBName     = "STOCKKEEP_DB_NAME"
	EnvJWTSecret  = "STOCKKEEP_JWT_SECRET"
	EnvJWTIssuer  = "STOCKKEEP_JWT_ISSUER"
	EnvJWTExpMins = "STOCKKEEP_JWT_EXPIRATION_MINUTES"
	EnvSMTPHost   = "STOCKKEEP_SMTP_HOST"
	EnvSMTPPort   = "STOCKKEEP_SMTP_PORT"
	EnvAdminEmail = "STOCKKEEP_ADMIN_EMAIL_ADDRESS"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
