package config

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

type CookieConfig struct {
	Name     string `mapstructure:"name"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"samesite"`
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
}

type SessionConfig struct {
	TTLMinutes int `mapstructure:"ttl_minutes"`
}

type SecurityConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
}

type BootstrapConfig struct {
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

type Config struct {
	Env       string          `mapstructure:"env"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Cookie    CookieConfig    `mapstructure:"cookie"`
	Session   SessionConfig   `mapstructure:"session"`
	Security  SecurityConfig  `mapstructure:"security"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Bootstrap BootstrapConfig `mapstructure:"bootstrap"`
	Log       LogConfig       `mapstructure:"log"`
}

// Load reads configuration from the given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in the current working
// directory. The returned value is built once at startup and passed
// explicitly to every component that needs it; there is no package-level
// config.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	setDefaults(v)

	// environment overrides, e.g. SGP_SERVER_PORT=9000
	v.SetEnvPrefix("SGP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "des")
	v.SetDefault("server.address", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("database.path", "data/sgp.db")
	v.SetDefault("cookie.name", "sgp_plus_session")
	v.SetDefault("cookie.secure", false)
	v.SetDefault("cookie.samesite", "lax")
	v.SetDefault("cookie.path", "/")
	v.SetDefault("session.ttl_minutes", 720)
	v.SetDefault("cors.origins", []string{"http://localhost:5173"})
	v.SetDefault("bootstrap.admin_email", "admin@sgp.local")
}

// Validate checks startup-time invariants. A failure here aborts the
// process; none of these conditions are per-request.
func (c *Config) Validate() error {
	if len(c.CORS.Origins) == 0 {
		return fmt.Errorf("cors.origins must list at least one origin")
	}
	for _, origin := range c.CORS.Origins {
		// cookie auth requires AllowCredentials, which browsers reject
		// in combination with a wildcard origin
		if strings.TrimSpace(origin) == "*" {
			return fmt.Errorf("cors.origins cannot contain '*' when credentials are allowed (cookie auth)")
		}
	}
	if c.Session.TTLMinutes <= 0 {
		return fmt.Errorf("session.ttl_minutes must be positive, got %d", c.Session.TTLMinutes)
	}
	if c.Cookie.Name == "" {
		return fmt.Errorf("cookie.name must not be empty")
	}
	return nil
}

// SameSiteMode maps the configured samesite string to http.SameSite.
// Unknown values fall back to Lax.
func (c *Config) SameSiteMode() http.SameSite {
	switch strings.ToLower(c.Cookie.SameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
