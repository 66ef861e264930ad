package evm

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	contracts "github.com/openmsig/msig-client/pkg/clients/evm/contracts/generated"
	"github.com/openmsig/msig-client/pkg/types"
)

const testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestCreateTransactOpts(t *testing.T) {
	key, err := crypto.HexToECDSA(testPrivateKey)
	require.NoError(t, err)

	auth, err := CreateTransactOpts(key, 31337, 3000000)
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), auth.From)
	require.Equal(t, uint64(3000000), auth.GasLimit)

	_, err = CreateTransactOpts(nil, 31337, 3000000)
	require.Error(t, err)
}

func TestCreateWalletRejectsZeroAddress(t *testing.T) {
	_, err := CreateWallet("anvil", common.Address{}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "wallet address is not set")
}

func executionLog(signature string, id int64) *ethtypes.Log {
	return &ethtypes.Log{
		Topics: []common.Hash{
			crypto.Keccak256Hash([]byte(signature)),
			common.BigToHash(big.NewInt(id)),
		},
	}
}

func newStatusClient(t *testing.T) *Client {
	t.Helper()
	wallet, err := contracts.NewMultiSigWallet(common.HexToAddress("0x1000000000000000000000000000000000000001"), nil)
	require.NoError(t, err)
	return &Client{Wallet: wallet}
}

func TestExecutionStatusExecuted(t *testing.T) {
	client := newStatusClient(t)
	receipt := &ethtypes.Receipt{
		Status: ethtypes.ReceiptStatusSuccessful,
		Logs:   []*ethtypes.Log{executionLog("Execution(uint256)", 1)},
	}
	require.Equal(t, types.TxStatusExecuted, client.ExecutionStatus(receipt))
}

func TestExecutionStatusFailure(t *testing.T) {
	client := newStatusClient(t)
	receipt := &ethtypes.Receipt{
		Status: ethtypes.ReceiptStatusSuccessful,
		Logs:   []*ethtypes.Log{executionLog("ExecutionFailure(uint256)", 1)},
	}
	require.Equal(t, types.TxStatusFailed, client.ExecutionStatus(receipt))
}

func TestExecutionStatusPending(t *testing.T) {
	client := newStatusClient(t)

	// A confirmation receipt without execution logs leaves the
	// transaction pending more signatures.
	receipt := &ethtypes.Receipt{
		Status: ethtypes.ReceiptStatusSuccessful,
		Logs:   []*ethtypes.Log{executionLog("Confirmation(address,uint256)", 1)},
	}
	require.Equal(t, types.TxStatusPending, client.ExecutionStatus(receipt))
}

func TestExecutionStatusRevertedOuterTransaction(t *testing.T) {
	client := newStatusClient(t)
	receipt := &ethtypes.Receipt{Status: ethtypes.ReceiptStatusFailed}
	require.Equal(t, types.TxStatusFailed, client.ExecutionStatus(receipt))

	require.Equal(t, types.TxStatus(""), client.ExecutionStatus(nil))
}
