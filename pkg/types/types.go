package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// TxStatus is the observed execution state of a multisig transaction.
// The empty value means the status has not been observed yet.
type TxStatus string

const (
	TxStatusPending  TxStatus = "pending"
	TxStatusExecuted TxStatus = "executed"
	TxStatusFailed   TxStatus = "failed"
)

// Transaction is one entry in the on-chain multisig transaction list.
// ID is the stable index into the contract's transaction array; for a
// transaction submitted by this session it is assigned optimistically
// from the current local list length before the chain confirms it.
type Transaction struct {
	ID            uint64           `json:"id"`
	WalletAddress common.Address   `json:"walletAddress"`
	Payload       []byte           `json:"payload,omitempty"`
	Confirmations []common.Address `json:"confirmations,omitempty"`
	Status        TxStatus         `json:"status,omitempty"`
}

// SessionKey identifies a sync session. All cached state is keyed by it
// and discarded whenever it changes.
type SessionKey struct {
	WalletAddress common.Address
	ChainID       uint64
}

func (k SessionKey) String() string {
	return fmt.Sprintf("%s:%d", k.WalletAddress.Hex(), k.ChainID)
}

// ConnectionState carries the ambient wallet-connection inputs as an
// explicit value instead of global context: the chain the client is on,
// the signing account, and the multisig contract being driven.
type ConnectionState struct {
	ChainID       uint64         `json:"chainId"`
	Account       common.Address `json:"account"`
	WalletAddress common.Address `json:"walletAddress"`
	IsConnected   bool           `json:"isConnected"`
}

func (c ConnectionState) SessionKey() SessionKey {
	return SessionKey{WalletAddress: c.WalletAddress, ChainID: c.ChainID}
}

// ActionReceipt is the result reported back to callers once a gateway
// action has been included on chain.
type ActionReceipt struct {
	Action      string `json:"action"`
	TxHash      string `json:"txHash"`
	BlockNumber uint64 `json:"blockNumber"`
	GasUsed     uint64 `json:"gasUsed"`
	Reverted    bool   `json:"reverted"`
}
