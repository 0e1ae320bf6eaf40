package config

import (
	"fmt"
	"strings"

	"payflux/internal/domain/entities"

	"github.com/spf13/viper"
)

// Config is the process-wide configuration, resolved from environment
// variables (PAYFLUX_ prefix) with local-friendly defaults. None of these
// values change core behavior except the routing table.

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Auth      AuthConfig      `mapstructure:"auth"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Dynamo    DynamoConfig    `mapstructure:"dynamo"`
	Routing   RoutingTable    `mapstructure:"routing"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type AuthConfig struct {
	// APIKey enables the x-api-key header check when non-empty.
	APIKey string `mapstructure:"api_key"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	// RequestsPerSecond is the sustained per-client rate; Burst the bucket size.
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type DynamoConfig struct {
	Region        string `mapstructure:"region"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PaymentsTable string `mapstructure:"payments_table"`
}

// RoutingTable maps a normalized payment method to its preferred gateway.
// Route is total over all strings: unknown methods fall back to the default.

type RoutingTable map[string]entities.Gateway

// DefaultGateway handles every method without an explicit routing entry.
const DefaultGateway = entities.GatewayRazorpay

func (t RoutingTable) Route(method string) entities.Gateway {
	if gw, ok := t[method]; ok {
		return gw
	}
	return DefaultGateway
}

// DefaultRouting returns the built-in method-to-gateway table.
func DefaultRouting() RoutingTable {
	return RoutingTable{
		"upi":        entities.GatewayRazorpay,
		"card":       entities.GatewayStripe,
		"netbanking": entities.GatewayCashfree,
	}
}

// Load resolves the configuration and validates it. Environment variables use
// the PAYFLUX_ prefix with underscores, e.g. PAYFLUX_SERVER_PORT,
// PAYFLUX_AUTH_API_KEY, PAYFLUX_DYNAMO_ENDPOINT.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("payflux")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", 5000)
	v.SetDefault("auth.api_key", "")
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("rate_limit.requests_per_second", 20.0)
	v.SetDefault("rate_limit.burst", 40)
	v.SetDefault("dynamo.region", "us-east-1")
	v.SetDefault("dynamo.endpoint", "")
	v.SetDefault("dynamo.access_key", "local")
	v.SetDefault("dynamo.secret_key", "local")
	v.SetDefault("dynamo.payments_table", "payments")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// The routing table is not env-overridable entry by entry; a custom table
	// comes from an optional config file. Fall back to the built-in one.
	if len(cfg.Routing) == 0 {
		cfg.Routing = DefaultRouting()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the core cannot safely run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("invalid rate limit: rps=%v burst=%d", c.RateLimit.RequestsPerSecond, c.RateLimit.Burst)
	}
	if c.Dynamo.PaymentsTable == "" {
		return fmt.Errorf("payments table name must not be empty")
	}
	for method, gw := range c.Routing {
		if !gw.Known() {
			return fmt.Errorf("routing entry %q points at unknown gateway %q", method, gw)
		}
	}
	return nil
}
