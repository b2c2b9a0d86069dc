package config

const (
	// Configuration file paths
	ConfigPathItems = "configs/items.json"
)

// Environment variable names
const (
	EnvEnvironment        = "ENVIRONMENT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvServiceName        = "SERVICE_NAME"
	EnvVersion            = "VERSION"
	EnvMetricsAddr        = "METRICS_ADDR"
	EnvDevMode            = "COOLDOWN_DEV_MODE"
	EnvDefaultAttackSpeed = "DEFAULT_ATTACK_SPEED"
	EnvTickRate           = "TICK_RATE"
	EnvItemCatalogPath    = "ITEM_CATALOG_PATH"
	EnvColorCacheSize     = "COLOR_CACHE_SIZE"
)

// Defaults
const (
	DefaultEnvironment    = "dev"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultServiceName    = "paper-api"
	DefaultVersion        = "dev"
	DefaultAttackSpeed    = 4.0
	DefaultTickRate       = 20
	DefaultColorCacheSize = 256
)
