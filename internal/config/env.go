package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
// Private keys are never read from configuration.
type Config struct {
	Chain               string `envconfig:"AGENTKEY_CHAIN" default:"solana"`
	Port                string `envconfig:"PORT" default:"8080"`
	SolanaTestnetRPCURL string `envconfig:"SOLANA_TESTNET_RPC_URL" default:"https://api.testnet.solana.com"`
	AirdropSOL          string `envconfig:"AIRDROP_SOL" default:"1"`
	ShowQR              bool   `envconfig:"SHOW_QR" default:"true"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return cfg, nil
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return ":" + c.Port
}
