package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const APP_NAME = "msig-client"

const (
	DEFAULT_GAS_LIMIT   = 3000000
	DEFAULT_BLOCK_TIME  = 12 * time.Second
	DEFAULT_LISTEN_ADDR = ":8080"
)

type NetworkConfig struct {
	ChainID   uint64        `mapstructure:"chain_id" validate:"required"`
	Name      string        `mapstructure:"name" validate:"required"`
	RPCUrl    string        `mapstructure:"rpc_url" validate:"required"`
	GasLimit  uint64        `mapstructure:"gas_limit"`
	BlockTime time.Duration `mapstructure:"block_time"`
}

// WalletConfig selects the multisig contract the client drives at
// startup. The session can be repointed at runtime through the API.
type WalletConfig struct {
	Address string `mapstructure:"address" validate:"required,eth_addr"`
	ChainID uint64 `mapstructure:"chain_id" validate:"required"`
}

// SignerConfig holds the connected account's key material: either a
// raw hex private key or a BIP-39 mnemonic plus account index.
type SignerConfig struct {
	PrivateKey  string `mapstructure:"private_key"`
	Mnemonic    string `mapstructure:"mnemonic"`
	WalletIndex uint32 `mapstructure:"wallet_index"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type HTTPConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
}

type TelemetryConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Insecure bool   `mapstructure:"insecure"`
}

type Config struct {
	Networks  []NetworkConfig `mapstructure:"networks" validate:"min=1,dive"`
	Wallet    WalletConfig    `mapstructure:"wallet"`
	Signer    SignerConfig    `mapstructure:"signer"`
	Database  DatabaseConfig  `mapstructure:"database"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// Load reads the config file at the given path, merges environment
// overrides (prefix MSIG_) and applies defaults.
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetEnvPrefix("MSIG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	for i := range cfg.Networks {
		if cfg.Networks[i].GasLimit == 0 {
			cfg.Networks[i].GasLimit = DEFAULT_GAS_LIMIT
		}
		if cfg.Networks[i].BlockTime == 0 {
			cfg.Networks[i].BlockTime = DEFAULT_BLOCK_TIME
		}
	}
	if cfg.HTTP.ListenAddr == "" {
		cfg.HTTP.ListenAddr = DEFAULT_LISTEN_ADDR
	}
	if dbURL := viper.GetString("DATABASE_URL"); dbURL != "" {
		cfg.Database.URL = dbURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Signer.PrivateKey == "" && c.Signer.Mnemonic == "" {
		return fmt.Errorf("invalid config: signer requires a private key or a mnemonic")
	}
	if _, ok := c.NetworkByChainID(c.Wallet.ChainID); !ok {
		return fmt.Errorf("invalid config: wallet chain id %d has no network entry", c.Wallet.ChainID)
	}
	return nil
}

// NetworkByChainID returns the network entry for a chain id; a missing
// entry means the chain is unsupported.
func (c *Config) NetworkByChainID(chainID uint64) (*NetworkConfig, bool) {
	for i := range c.Networks {
		if c.Networks[i].ChainID == chainID {
			return &c.Networks[i], true
		}
	}
	return nil, false
}
