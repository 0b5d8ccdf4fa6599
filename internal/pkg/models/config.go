package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	APIKey   APIKeyConfig
	Geo      GeoConfig
	Dispatch DispatchConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig contains API keys for service-to-service communication
type APIKeyConfig struct {
	DispatchService string
	AdminPortal     string
}

// GeoConfig contains routing provider configuration
type GeoConfig struct {
	BaseURL        string // OSRM-compatible routing endpoint
	Profile        string // routing profile, e.g. driving
	TimeoutSeconds int    // HTTP client timeout
}

// DispatchConfig contains dispatch board specific configuration
type DispatchConfig struct {
	ServiceAreaLat     float64 // service area center latitude
	ServiceAreaLng     float64 // service area center longitude
	ServiceAreaMiles   float64 // service area radius in miles
	NearbyRadiusKm     float64 // radius for nearby worker suggestions
	LocationTTLMinutes int     // staleness cutoff for cached worker locations
}

// NewRelicConfig contains New Relic monitoring configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
