package config

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

const testMnemonic = "test test test test test test test test test test test junk"

func TestPrivateKeyECDSAFromMnemonic(t *testing.T) {
	signer := SignerConfig{Mnemonic: testMnemonic, WalletIndex: 0}

	key, err := signer.PrivateKeyECDSA()
	require.NoError(t, err)

	address := crypto.PubkeyToAddress(key.PublicKey)
	require.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", address.Hex())
}

func TestPrivateKeyECDSAFromMnemonicIndexed(t *testing.T) {
	first := SignerConfig{Mnemonic: testMnemonic, WalletIndex: 0}
	second := SignerConfig{Mnemonic: testMnemonic, WalletIndex: 1}

	firstKey, err := first.PrivateKeyECDSA()
	require.NoError(t, err)
	secondKey, err := second.PrivateKeyECDSA()
	require.NoError(t, err)

	require.NotEqual(t,
		crypto.PubkeyToAddress(firstKey.PublicKey),
		crypto.PubkeyToAddress(secondKey.PublicKey),
	)
}

func TestPrivateKeyECDSAFromHex(t *testing.T) {
	// Hex key takes precedence over the mnemonic.
	signer := SignerConfig{
		PrivateKey: "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
		Mnemonic:   testMnemonic,
	}

	key, err := signer.PrivateKeyECDSA()
	require.NoError(t, err)
	require.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", crypto.PubkeyToAddress(key.PublicKey).Hex())
}

func TestPrivateKeyECDSAErrors(t *testing.T) {
	_, err := (&SignerConfig{}).PrivateKeyECDSA()
	require.Error(t, err)

	_, err = (&SignerConfig{PrivateKey: "zz"}).PrivateKeyECDSA()
	require.Error(t, err)

	_, err = (&SignerConfig{Mnemonic: "definitely not a valid mnemonic"}).PrivateKeyECDSA()
	require.Error(t, err)
}
