package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Session    SessionConfig    `yaml:"session"`
	Suggestion SuggestionConfig `yaml:"suggestion"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Agent-Email,X-Agent-Id,X-Request-Id"`
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

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DatabaseConfig holds PostgreSQL connection settings. Either DSN or the
// discrete Host/User/Password/Name fields must be set; DSN wins when both are.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	Host            string        `yaml:"host"               env:"DATABASE_HOST"`
	Port            int           `yaml:"port"               env:"DATABASE_PORT"               env-default:"5432"`
	User            string        `yaml:"user"               env:"DATABASE_USER"`
	Password        string        `yaml:"password"           env:"DATABASE_PASSWORD"`
	Name            string        `yaml:"name"               env:"DATABASE_NAME"`
	SSLMode         string        `yaml:"ssl_mode"           env:"DATABASE_SSL_MODE"           env-default:"disable"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"0"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30s"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// ConnString returns the DSN, building one from the discrete fields when
// no explicit DSN is configured.
func (c DatabaseConfig) ConnString() string {
	if c.DSN != "" {
		return c.DSN
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	if c.User != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{c.SSLMode}}.Encode()
	}
	return u.String()
}

// RedisConfig holds the optional session store connection.
// An empty URL disables Redis; session cookies are then decoded in place.
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL"`
}

// SessionConfig holds session cookie settings.
type SessionConfig struct {
	CookieName string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME" env-default:"casedesk_session"`
}

// SuggestionConfig holds suggestion intake settings.
type SuggestionConfig struct {
	StatesRaw           string `yaml:"states"               env:"SUGGESTION_STATES"                env-default:"pending,approved,rejected"`
	DefaultState        string `yaml:"default_state"        env:"SUGGESTION_DEFAULT_STATE"         env-default:"pending"`
	DefaultAgentID      int64  `yaml:"default_agent_id"     env:"SUGGESTION_DEFAULT_AGENT_ID"      env-default:"0"`
	CreateRatePerMinute int    `yaml:"create_rate_per_minute" env:"SUGGESTION_CREATE_RATE_PER_MINUTE" env-default:"60"`

	// States is parsed from StatesRaw during validation.
	States domain.StateSet `yaml:"-" env:"-"`
	// Default is DefaultState validated against States.
	Default domain.State `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

func (s *SuggestionConfig) validate() error {
	states, err := domain.ParseStateSet(s.StatesRaw)
	if err != nil {
		return fmt.Errorf("states: %w", err)
	}

	def, err := states.Validate(s.DefaultState)
	if err != nil {
		return fmt.Errorf("default_state %q is not in states %q", s.DefaultState, states.String())
	}

	if s.DefaultAgentID < 0 {
		return fmt.Errorf("default_agent_id must be >= 0 (got %d)", s.DefaultAgentID)
	}
	if s.CreateRatePerMinute < 0 {
		return fmt.Errorf("create_rate_per_minute must be >= 0 (got %d)", s.CreateRatePerMinute)
	}

	s.States = states
	s.Default = def
	return nil
}
