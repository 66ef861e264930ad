package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
networks:
  - chain_id: 31337
    name: anvil
    rpc_url: ws://localhost:8545
  - chain_id: 11155111
    name: sepolia
    rpc_url: wss://sepolia.example.org
    gas_limit: 5000000
wallet:
  address: "0x1000000000000000000000000000000000000001"
  chain_id: 31337
signer:
  mnemonic: "test test test test test test test test test test test junk"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeTestConfig(t, testConfigYAML))
	require.NoError(t, err)

	require.Len(t, cfg.Networks, 2)
	require.Equal(t, uint64(DEFAULT_GAS_LIMIT), cfg.Networks[0].GasLimit)
	require.Equal(t, uint64(5000000), cfg.Networks[1].GasLimit)
	require.Equal(t, time.Duration(DEFAULT_BLOCK_TIME), cfg.Networks[0].BlockTime)
	require.Equal(t, DEFAULT_LISTEN_ADDR, cfg.HTTP.ListenAddr)
}

func TestLoadRejectsInvalidWalletAddress(t *testing.T) {
	broken := `
networks:
  - chain_id: 31337
    name: anvil
    rpc_url: ws://localhost:8545
wallet:
  address: "not-an-address"
  chain_id: 31337
signer:
  private_key: "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
`
	_, err := Load(writeTestConfig(t, broken))
	require.Error(t, err)
}

func TestLoadRejectsMissingSigner(t *testing.T) {
	broken := `
networks:
  - chain_id: 31337
    name: anvil
    rpc_url: ws://localhost:8545
wallet:
  address: "0x1000000000000000000000000000000000000001"
  chain_id: 31337
`
	_, err := Load(writeTestConfig(t, broken))
	require.Error(t, err)
	require.Contains(t, err.Error(), "signer")
}

func TestLoadRejectsWalletOnUnknownChain(t *testing.T) {
	broken := `
networks:
  - chain_id: 31337
    name: anvil
    rpc_url: ws://localhost:8545
wallet:
  address: "0x1000000000000000000000000000000000000001"
  chain_id: 1
signer:
  private_key: "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
`
	_, err := Load(writeTestConfig(t, broken))
	require.Error(t, err)
	require.Contains(t, err.Error(), "no network entry")
}

func TestNetworkByChainID(t *testing.T) {
	cfg, err := Load(writeTestConfig(t, testConfigYAML))
	require.NoError(t, err)

	network, ok := cfg.NetworkByChainID(31337)
	require.True(t, ok)
	require.Equal(t, "anvil", network.Name)

	_, ok = cfg.NetworkByChainID(999)
	require.False(t, ok)
}
