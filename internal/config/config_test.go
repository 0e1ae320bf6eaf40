package config

import (
	"testing"

	"payflux/internal/domain/entities"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Fatalf("expected default port 5000, got %d", cfg.Server.Port)
	}
	if cfg.Dynamo.PaymentsTable != "payments" {
		t.Fatalf("expected default table, got %q", cfg.Dynamo.PaymentsTable)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard origin default, got %v", cfg.CORS.AllowedOrigins)
	}
	if got := cfg.Routing.Route("card"); got != entities.GatewayStripe {
		t.Fatalf("expected stripe for card, got %s", got)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PAYFLUX_SERVER_PORT", "8081")
	t.Setenv("PAYFLUX_AUTH_API_KEY", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8081 {
		t.Fatalf("expected port 8081, got %d", cfg.Server.Port)
	}
	if cfg.Auth.APIKey != "secret" {
		t.Fatalf("expected api key override, got %q", cfg.Auth.APIKey)
	}
}

func TestRoutingTable_Route(t *testing.T) {
	table := DefaultRouting()

	cases := map[string]entities.Gateway{
		"upi":        entities.GatewayRazorpay,
		"card":       entities.GatewayStripe,
		"netbanking": entities.GatewayCashfree,
		"wallet":     entities.GatewayRazorpay,
		"":           entities.GatewayRazorpay,
	}
	for method, want := range cases {
		if got := table.Route(method); got != want {
			t.Fatalf("Route(%q) = %s, want %s", method, got, want)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: 5000},
			RateLimit: RateLimitConfig{RequestsPerSecond: 20, Burst: 40},
			Dynamo:    DynamoConfig{PaymentsTable: "payments"},
			Routing:   DefaultRouting(),
		}
	}

	t.Run("valid", func(t *testing.T) {
		if err := base().Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown routing gateway", func(t *testing.T) {
		cfg := base()
		cfg.Routing["upi"] = entities.Gateway("paypal")
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected validation error")
		}
	})

	t.Run("bad port", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = 0
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected validation error")
		}
	})

	t.Run("empty table", func(t *testing.T) {
		cfg := base()
		cfg.Dynamo.PaymentsTable = ""
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected validation error")
		}
	})
}
