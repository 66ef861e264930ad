package wallet

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/openmsig/msig-client/pkg/clients/evm"
	"github.com/openmsig/msig-client/pkg/db/models"
	"github.com/openmsig/msig-client/pkg/types"
)

// ChainActions is the write-and-wait surface of the chain client the
// gateway drives. Satisfied by *evm.Client.
type ChainActions interface {
	Account() common.Address
	SubmitTransaction(ctx context.Context, destination common.Address, value *big.Int, data []byte) (*ethtypes.Transaction, error)
	ConfirmTransaction(ctx context.Context, id uint64) (*ethtypes.Transaction, error)
	RevokeConfirmation(ctx context.Context, id uint64) (*ethtypes.Transaction, error)
	AddOwner(ctx context.Context, owner common.Address) (*ethtypes.Transaction, error)
	ReplaceOwner(ctx context.Context, owner common.Address, newOwner common.Address) (*ethtypes.Transaction, error)
	GetOwners(ctx context.Context) ([]common.Address, error)
	GetTransaction(ctx context.Context, id uint64) (*evm.TransactionDetail, error)
	GetConfirmations(ctx context.Context, id uint64) ([]common.Address, error)
	WaitMined(ctx context.Context, tx *ethtypes.Transaction) (*ethtypes.Receipt, error)
	ExecutionStatus(receipt *ethtypes.Receipt) types.TxStatus
}

// ActionRecorder persists the audit row for each attempted action.
type ActionRecorder interface {
	RecordAction(record *models.ActionRecord) error
}

// Gateway is the single path through which wallet mutations reach the
// chain. Every failure crosses the boundary as a *WriteError or
// *ValidationError value; nothing escapes as a panic.
type Gateway struct {
	engine   *Engine
	recorder ActionRecorder
	tracer   trace.Tracer

	mu    sync.RWMutex
	chain ChainActions
}

func NewGateway(engine *Engine, recorder ActionRecorder) *Gateway {
	return &Gateway{
		engine:   engine,
		recorder: recorder,
		tracer:   otel.Tracer("msig-client/gateway"),
	}
}

// Bind attaches the chain client for the current session. A nil chain
// makes every action fail with a precondition message.
func (g *Gateway) Bind(chain ChainActions) {
	g.mu.Lock()
	g.chain = chain
	g.mu.Unlock()
}

func (g *Gateway) Unbind() {
	g.Bind(nil)
}

func (g *Gateway) bound() (ChainActions, error) {
	g.mu.RLock()
	chain := g.chain
	g.mu.RUnlock()
	if chain == nil {
		return nil, &WriteError{Action: "gateway", Message: "no chain client bound"}
	}
	return chain, nil
}

// AddNewTransaction proposes a call against a target contract through
// the wallet. The target method is resolved and its arguments packed
// before the optimistic placeholder is inserted, so malformed input is
// rejected with no local side effects.
func (g *Gateway) AddNewTransaction(ctx context.Context, destination string, targetABI string, methodName string, args map[string]interface{}, value *big.Int) (*types.ActionReceipt, error) {
	const action = "submitTransaction"
	ctx, span := g.tracer.Start(ctx, action)
	defer span.End()

	chain, err := g.bound()
	if err != nil {
		return nil, err
	}
	if !common.IsHexAddress(destination) {
		return nil, &ValidationError{Field: "destination", Message: "not a valid address"}
	}
	dest := common.HexToAddress(destination)

	signature, err := ResolveFunction(targetABI, methodName)
	if err != nil {
		return nil, writeErrorf(action, err, "failed to resolve target method %s", methodName)
	}
	payload, err := signature.Pack(args)
	if err != nil {
		return nil, writeErrorf(action, err, "failed to encode arguments for %s", methodName)
	}
	if value == nil {
		value = big.NewInt(0)
	}
	span.SetAttributes(
		attribute.String("destination", dest.Hex()),
		attribute.String("method", methodName),
	)

	placeholder, err := g.engine.OptimisticInsert()
	if err != nil {
		return nil, writeErrorf(action, err, "sync session rejected the submission")
	}

	tx, err := chain.SubmitTransaction(ctx, dest, value, payload)
	if err != nil {
		g.record(action, &placeholder.ID, "", "rejected", nil, err)
		return nil, writeErrorf(action, err, "submission rejected before inclusion")
	}
	receipt, err := chain.WaitMined(ctx, tx)
	if err != nil {
		g.record(action, &placeholder.ID, tx.Hash().Hex(), "unknown", nil, err)
		return nil, writeErrorf(action, err, "failed waiting for inclusion of %s", tx.Hash().Hex())
	}
	if receipt.Status == ethtypes.ReceiptStatusFailed {
		g.record(action, &placeholder.ID, tx.Hash().Hex(), "reverted", receipt, nil)
		return g.receipt(action, receipt), writeErrorf(action, nil, "transaction %s reverted", tx.Hash().Hex())
	}

	placeholder.Payload = payload
	placeholder.Confirmations = []common.Address{chain.Account()}
	placeholder.Status = chain.ExecutionStatus(receipt)
	g.engine.UpdateTransaction(placeholder)
	g.record(action, &placeholder.ID, tx.Hash().Hex(), "included", receipt, nil)

	log.Info().Uint64("txId", placeholder.ID).
		Str("txHash", tx.Hash().Hex()).
		Msg("[Gateway] [AddNewTransaction] proposal included")
	return g.receipt(action, receipt), nil
}

// ConfirmTransaction adds this account's confirmation to a pending
// transaction. The id is range checked against the local list before
// anything reaches the network.
func (g *Gateway) ConfirmTransaction(ctx context.Context, id uint64) (*types.ActionReceipt, error) {
	return g.confirmation(ctx, "confirmTransaction", id, func(chain ChainActions) (*ethtypes.Transaction, error) {
		return chain.ConfirmTransaction(ctx, id)
	})
}

// RevokeConfirmation withdraws this account's confirmation from a
// pending transaction.
func (g *Gateway) RevokeConfirmation(ctx context.Context, id uint64) (*types.ActionReceipt, error) {
	return g.confirmation(ctx, "revokeConfirmation", id, func(chain ChainActions) (*ethtypes.Transaction, error) {
		return chain.RevokeConfirmation(ctx, id)
	})
}

func (g *Gateway) confirmation(ctx context.Context, action string, id uint64, send func(ChainActions) (*ethtypes.Transaction, error)) (*types.ActionReceipt, error) {
	ctx, span := g.tracer.Start(ctx, action)
	defer span.End()
	span.SetAttributes(attribute.Int64("txId", int64(id)))

	chain, err := g.bound()
	if err != nil {
		return nil, err
	}
	if id >= uint64(g.engine.Len()) {
		return nil, writeErrorf(action, nil, "transaction %d is not in the local list", id)
	}

	tx, err := send(chain)
	if err != nil {
		g.record(action, &id, "", "rejected", nil, err)
		return nil, writeErrorf(action, err, "rejected before inclusion")
	}
	receipt, err := chain.WaitMined(ctx, tx)
	if err != nil {
		g.record(action, &id, tx.Hash().Hex(), "unknown", nil, err)
		return nil, writeErrorf(action, err, "failed waiting for inclusion of %s", tx.Hash().Hex())
	}
	if receipt.Status == ethtypes.ReceiptStatusFailed {
		g.record(action, &id, tx.Hash().Hex(), "reverted", receipt, nil)
		return g.receipt(action, receipt), writeErrorf(action, nil, "transaction %s reverted", tx.Hash().Hex())
	}
	g.record(action, &id, tx.Hash().Hex(), "included", receipt, nil)

	g.refresh(ctx, chain, id, receipt)
	return g.receipt(action, receipt), nil
}

// refresh re-reads the mutated transaction and replaces the local entry
// with the authoritative confirmations and status. Read failures here
// are logged only; the next revalidation heals the entry.
func (g *Gateway) refresh(ctx context.Context, chain ChainActions, id uint64, receipt *ethtypes.Receipt) {
	detail, err := chain.GetTransaction(ctx, id)
	if err != nil {
		log.Warn().Err(err).Uint64("txId", id).Msg("[Gateway] [refresh] failed to re-read transaction")
		return
	}
	confirmations, err := chain.GetConfirmations(ctx, id)
	if err != nil {
		log.Warn().Err(err).Uint64("txId", id).Msg("[Gateway] [refresh] failed to re-read confirmations")
		return
	}
	status := chain.ExecutionStatus(receipt)
	if detail.Executed && status != types.TxStatusFailed {
		status = types.TxStatusExecuted
	}
	g.engine.UpdateTransaction(types.Transaction{
		ID:            id,
		WalletAddress: g.engine.SessionKey().WalletAddress,
		Payload:       detail.Payload,
		Confirmations: confirmations,
		Status:        status,
	})
}

// AddOwner proposes adding a new owner to the wallet. The candidate is
// validated locally against the current owner set before any write.
func (g *Gateway) AddOwner(ctx context.Context, candidate string) (*types.ActionReceipt, error) {
	const action = "addOwner"
	ctx, span := g.tracer.Start(ctx, action)
	defer span.End()

	chain, err := g.bound()
	if err != nil {
		return nil, err
	}
	// Syntactic rejection happens before any chain read.
	if _, err := parseOwnerAddress("owner", candidate); err != nil {
		return nil, err
	}
	owners, err := chain.GetOwners(ctx)
	if err != nil {
		return nil, writeErrorf(action, err, "failed to read current owners")
	}
	owner, err := ValidateNewOwner(candidate, owners)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("owner", owner.Hex()))

	return g.ownerMutation(ctx, action, func() (*ethtypes.Transaction, error) {
		return chain.AddOwner(ctx, owner)
	}, chain)
}

// ReplaceOwner proposes swapping an existing owner for a new one.
func (g *Gateway) ReplaceOwner(ctx context.Context, oldOwner string, newOwner string) (*types.ActionReceipt, error) {
	const action = "replaceOwner"
	ctx, span := g.tracer.Start(ctx, action)
	defer span.End()

	chain, err := g.bound()
	if err != nil {
		return nil, err
	}
	if _, err := parseOwnerAddress("oldOwner", oldOwner); err != nil {
		return nil, err
	}
	if _, err := parseOwnerAddress("owner", newOwner); err != nil {
		return nil, err
	}
	owners, err := chain.GetOwners(ctx)
	if err != nil {
		return nil, writeErrorf(action, err, "failed to read current owners")
	}
	outgoing, incoming, err := ValidateReplacementOwner(oldOwner, newOwner, owners)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("oldOwner", outgoing.Hex()),
		attribute.String("newOwner", incoming.Hex()),
	)

	return g.ownerMutation(ctx, action, func() (*ethtypes.Transaction, error) {
		return chain.ReplaceOwner(ctx, outgoing, incoming)
	}, chain)
}

// Owners returns the current owner set of the bound wallet.
func (g *Gateway) Owners(ctx context.Context) ([]common.Address, error) {
	chain, err := g.bound()
	if err != nil {
		return nil, err
	}
	return chain.GetOwners(ctx)
}

func (g *Gateway) ownerMutation(ctx context.Context, action string, send func() (*ethtypes.Transaction, error), chain ChainActions) (*types.ActionReceipt, error) {
	tx, err := send()
	if err != nil {
		g.record(action, nil, "", "rejected", nil, err)
		return nil, writeErrorf(action, err, "rejected before inclusion")
	}
	receipt, err := chain.WaitMined(ctx, tx)
	if err != nil {
		g.record(action, nil, tx.Hash().Hex(), "unknown", nil, err)
		return nil, writeErrorf(action, err, "failed waiting for inclusion of %s", tx.Hash().Hex())
	}
	if receipt.Status == ethtypes.ReceiptStatusFailed {
		g.record(action, nil, tx.Hash().Hex(), "reverted", receipt, nil)
		return g.receipt(action, receipt), writeErrorf(action, nil, "transaction %s reverted", tx.Hash().Hex())
	}
	g.record(action, nil, tx.Hash().Hex(), "included", receipt, nil)

	// Owner mutations flow through the wallet's own submission path;
	// the Submission event drives the list update.
	return g.receipt(action, receipt), nil
}

func (g *Gateway) receipt(action string, receipt *ethtypes.Receipt) *types.ActionReceipt {
	return &types.ActionReceipt{
		Action:      action,
		TxHash:      receipt.TxHash.Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
		Reverted:    receipt.Status == ethtypes.ReceiptStatusFailed,
	}
}

func (g *Gateway) record(action string, txID *uint64, txHash string, status string, receipt *ethtypes.Receipt, actionErr error) {
	if g.recorder == nil {
		return
	}
	record := &models.ActionRecord{
		SessionID: g.engine.SessionKey().String(),
		Action:    action,
		TxID:      txID,
		TxHash:    txHash,
		Status:    status,
	}
	if receipt != nil {
		record.BlockNumber = receipt.BlockNumber.Uint64()
		record.GasUsed = receipt.GasUsed
	}
	if actionErr != nil {
		record.Error = actionErr.Error()
	}
	if err := g.recorder.RecordAction(record); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("[Gateway] [record] audit write failed")
	}
}
