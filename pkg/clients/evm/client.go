package evm

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"sync"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog/log"

	"github.com/openmsig/msig-client/config"
	contracts "github.com/openmsig/msig-client/pkg/clients/evm/contracts/generated"
	"github.com/openmsig/msig-client/pkg/events"
	"github.com/openmsig/msig-client/pkg/types"
)

const (
	DIAL_ATTEMPTS    = 3
	DIAL_RETRY_DELAY = 2 * time.Second
)

// Client is the chain binding for one multisig wallet on one network.
// It owns the RPC connection, the contract binding, the signer's
// transact opts and at most one live Submission subscription.
type Client struct {
	networkConfig *config.NetworkConfig
	Client        *ethclient.Client
	Wallet        *contracts.MultiSigWallet
	WalletAddress common.Address
	auth          *bind.TransactOpts

	eventBus *events.EventBus

	mu            sync.Mutex
	submissionSub event.Subscription
	sinkDone      chan struct{}
}

// TransactionDetail is the richer per-transaction read from the
// contract's transactions mapping.
type TransactionDetail struct {
	Destination common.Address
	Value       *big.Int
	Payload     []byte
	Executed    bool
}

func NewClient(ctx context.Context, networkConfig *config.NetworkConfig, walletAddress common.Address, signerKey *ecdsa.PrivateKey, eventBus *events.EventBus) (*Client, error) {
	log.Info().Str("network", networkConfig.Name).
		Str("walletAddress", walletAddress.Hex()).
		Msg("[EvmClient] [NewClient] connecting to EVM network")

	var rpcClient *rpc.Client
	err := retry.Do(func() error {
		var err error
		rpcClient, err = rpc.DialContext(ctx, networkConfig.RPCUrl)
		return err
	},
		retry.Context(ctx),
		retry.Attempts(DIAL_ATTEMPTS),
		retry.Delay(DIAL_RETRY_DELAY),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to EVM network %s: %w", networkConfig.Name, err)
	}
	client := ethclient.NewClient(rpcClient)

	wallet, err := CreateWallet(networkConfig.Name, walletAddress, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet binding for network %s: %w", networkConfig.Name, err)
	}
	auth, err := CreateTransactOpts(signerKey, networkConfig.ChainID, networkConfig.GasLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth for network %s: %w", networkConfig.Name, err)
	}

	return &Client{
		networkConfig: networkConfig,
		Client:        client,
		Wallet:        wallet,
		WalletAddress: walletAddress,
		auth:          auth,
		eventBus:      eventBus,
	}, nil
}

func CreateWallet(networkName string, walletAddress common.Address, client *ethclient.Client) (*contracts.MultiSigWallet, error) {
	if walletAddress == (common.Address{}) {
		return nil, fmt.Errorf("wallet address is not set for network %s", networkName)
	}
	wallet, err := contracts.NewMultiSigWallet(walletAddress, client)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize multisig contract for network %s: %w", networkName, err)
	}
	return wallet, nil
}

func CreateTransactOpts(signerKey *ecdsa.PrivateKey, chainID uint64, gasLimit uint64) (*bind.TransactOpts, error) {
	if signerKey == nil {
		return nil, fmt.Errorf("signer key is not set")
	}
	auth, err := bind.NewKeyedTransactorWithChainID(signerKey, new(big.Int).SetUint64(chainID))
	if err != nil {
		return nil, fmt.Errorf("failed to create keyed transactor for chain %d: %w", chainID, err)
	}
	auth.GasLimit = gasLimit
	return auth, nil
}

// Account returns the signing account's address.
func (c *Client) Account() common.Address {
	return c.auth.From
}

func (c *Client) callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{
		From:    c.auth.From,
		Context: ctx,
	}
}

func (c *Client) transactOpts(ctx context.Context) *bind.TransactOpts {
	opts := *c.auth
	opts.Context = ctx
	return &opts
}

// TransactionCount reads the authoritative transaction count from the
// contract.
func (c *Client) TransactionCount(ctx context.Context) (uint64, error) {
	count, err := c.Wallet.TransactionCount(c.callOpts(ctx))
	if err != nil {
		return 0, fmt.Errorf("failed to read transaction count: %w", err)
	}
	return count.Uint64(), nil
}

// GetTransaction reads one entry of the contract's transaction list.
func (c *Client) GetTransaction(ctx context.Context, id uint64) (*TransactionDetail, error) {
	tx, err := c.Wallet.Transactions(c.callOpts(ctx), new(big.Int).SetUint64(id))
	if err != nil {
		return nil, fmt.Errorf("failed to read transaction %d: %w", id, err)
	}
	return &TransactionDetail{
		Destination: tx.Destination,
		Value:       tx.Value,
		Payload:     tx.Data,
		Executed:    tx.Executed,
	}, nil
}

// GetConfirmations returns the confirming owner set of a transaction.
func (c *Client) GetConfirmations(ctx context.Context, id uint64) ([]common.Address, error) {
	confirmations, err := c.Wallet.GetConfirmations(c.callOpts(ctx), new(big.Int).SetUint64(id))
	if err != nil {
		return nil, fmt.Errorf("failed to read confirmations of transaction %d: %w", id, err)
	}
	return confirmations, nil
}

// GetOwners returns the current owner set of the multisig.
func (c *Client) GetOwners(ctx context.Context) ([]common.Address, error) {
	owners, err := c.Wallet.GetOwners(c.callOpts(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to read owners: %w", err)
	}
	return owners, nil
}

func (c *Client) SubmitTransaction(ctx context.Context, destination common.Address, value *big.Int, data []byte) (*ethtypes.Transaction, error) {
	tx, err := c.Wallet.SubmitTransaction(c.transactOpts(ctx), destination, value, data)
	if err != nil {
		return nil, fmt.Errorf("failed to submit transaction: %w", err)
	}
	log.Info().Str("txHash", tx.Hash().Hex()).
		Str("destination", destination.Hex()).
		Msg("[EvmClient] [SubmitTransaction] proposal sent")
	return tx, nil
}

func (c *Client) ConfirmTransaction(ctx context.Context, id uint64) (*ethtypes.Transaction, error) {
	tx, err := c.Wallet.ConfirmTransaction(c.transactOpts(ctx), new(big.Int).SetUint64(id))
	if err != nil {
		return nil, fmt.Errorf("failed to confirm transaction %d: %w", id, err)
	}
	return tx, nil
}

func (c *Client) RevokeConfirmation(ctx context.Context, id uint64) (*ethtypes.Transaction, error) {
	tx, err := c.Wallet.RevokeConfirmation(c.transactOpts(ctx), new(big.Int).SetUint64(id))
	if err != nil {
		return nil, fmt.Errorf("failed to revoke confirmation of transaction %d: %w", id, err)
	}
	return tx, nil
}

func (c *Client) AddOwner(ctx context.Context, owner common.Address) (*ethtypes.Transaction, error) {
	tx, err := c.Wallet.AddOwner(c.transactOpts(ctx), owner)
	if err != nil {
		return nil, fmt.Errorf("failed to add owner %s: %w", owner.Hex(), err)
	}
	return tx, nil
}

func (c *Client) ReplaceOwner(ctx context.Context, owner common.Address, newOwner common.Address) (*ethtypes.Transaction, error) {
	tx, err := c.Wallet.ReplaceOwner(c.transactOpts(ctx), owner, newOwner)
	if err != nil {
		return nil, fmt.Errorf("failed to replace owner %s: %w", owner.Hex(), err)
	}
	return tx, nil
}

// WaitMined blocks until the transaction is included. No extra timeout
// is layered on top; the underlying network client bounds the wait.
func (c *Client) WaitMined(ctx context.Context, tx *ethtypes.Transaction) (*ethtypes.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, c.Client, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for transaction %s: %w", tx.Hash().Hex(), err)
	}
	return receipt, nil
}

// ExecutionStatus derives the multisig-level status from a receipt's
// logs: an Execution log means the inner transaction ran, an
// ExecutionFailure log means it ran and reverted. A receipt carrying
// neither leaves the transaction pending more confirmations.
func (c *Client) ExecutionStatus(receipt *ethtypes.Receipt) types.TxStatus {
	if receipt == nil {
		return ""
	}
	if receipt.Status == ethtypes.ReceiptStatusFailed {
		return types.TxStatusFailed
	}
	for _, receiptLog := range receipt.Logs {
		if _, err := c.Wallet.ParseExecutionFailure(*receiptLog); err == nil {
			return types.TxStatusFailed
		}
		if _, err := c.Wallet.ParseExecution(*receiptLog); err == nil {
			return types.TxStatusExecuted
		}
	}
	return types.TxStatusPending
}

// Close tears down the Submission subscription and the RPC connection.
func (c *Client) Close() {
	c.UnsubscribeSubmission()
	c.Client.Close()
}
