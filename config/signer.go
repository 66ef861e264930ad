package config

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	bip39 "github.com/cosmos/go-bip39"
	"github.com/ethereum/go-ethereum/crypto"
)

// PrivateKeyECDSA materializes the configured signer key. A raw hex
// key takes precedence; otherwise the key is derived from the mnemonic
// at m/44'/60'/0'/0/<wallet_index>.
func (s *SignerConfig) PrivateKeyECDSA() (*ecdsa.PrivateKey, error) {
	if s.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(s.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse signer private key: %w", err)
		}
		return key, nil
	}
	if s.Mnemonic != "" {
		return deriveFromMnemonic(s.Mnemonic, s.WalletIndex)
	}
	return nil, fmt.Errorf("signer is not configured")
}

func deriveFromMnemonic(mnemonic string, index uint32) (*ecdsa.PrivateKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("invalid mnemonic")
	}
	seed := bip39.NewSeed(mnemonic, "")

	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}
	// m/44'/60'/0'/0/index
	path := []uint32{
		hdkeychain.HardenedKeyStart + 44,
		hdkeychain.HardenedKeyStart + 60,
		hdkeychain.HardenedKeyStart + 0,
		0,
		index,
	}
	for _, step := range path {
		key, err = key.Derive(step)
		if err != nil {
			return nil, fmt.Errorf("failed to derive account %d: %w", index, err)
		}
	}
	privateKey, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to extract private key: %w", err)
	}
	return privateKey.ToECDSA(), nil
}
