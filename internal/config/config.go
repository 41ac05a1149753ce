package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Roadmap   RoadmapConfig   `yaml:"roadmap"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	WebSocket WebSocketConfig `yaml:"websocket"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	HealthCheck     time.Duration `yaml:"health_check"       env:"DATABASE_HEALTH_CHECK"       env-default:"1m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"storefront"`
}

// AuthConfig holds access-token settings. Tokens are issued by the
// storefront's identity provider and only verified here.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"storefront"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RoadmapConfig holds the values applied to roadmap sections whose owner
// left them unset.
type RoadmapConfig struct {
	DefaultTheme       string `yaml:"default_theme"        env:"ROADMAP_DEFAULT_THEME"        env-default:"midnight"`
	DefaultCardOpacity int    `yaml:"default_card_opacity" env:"ROADMAP_DEFAULT_CARD_OPACITY" env-default:"100"`
	DefaultExpanded    bool   `yaml:"default_expanded"     env:"ROADMAP_DEFAULT_EXPANDED"     env-default:"true"`
}

// RateLimitConfig limits how fast one client may post suggestions and
// replies.
type RateLimitConfig struct {
	SubmitPerMinute int           `yaml:"submit_per_minute" env:"RATELIMIT_SUBMIT_PER_MINUTE" env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATELIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// WebSocketConfig holds live-session connection settings.
type WebSocketConfig struct {
	PingInterval   time.Duration `yaml:"ping_interval"    env:"WS_PING_INTERVAL"    env-default:"30s"`
	WriteTimeout   time.Duration `yaml:"write_timeout"    env:"WS_WRITE_TIMEOUT"    env-default:"10s"`
	MaxMessageSize int64         `yaml:"max_message_size" env:"WS_MAX_MESSAGE_SIZE" env-default:"65536"`
	SendBuffer     int           `yaml:"send_buffer"      env:"WS_SEND_BUFFER"      env-default:"16"`
}

// PongWait is how long a live session waits for a pong before dropping the
// connection.
func (c WebSocketConfig) PongWait() time.Duration {
	return c.PingInterval * 10 / 9
}
