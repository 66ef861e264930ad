package wallet

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
)

const testTargetABI = `[
	{"constant":false,"inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"payable":false,"stateMutability":"nonpayable","type":"function"},
	{"constant":false,"inputs":[{"name":"enabled","type":"bool"},{"name":"label","type":"string"},{"name":"payload","type":"bytes"}],"name":"configure","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"}
]`

func TestResolveFunction(t *testing.T) {
	signature, err := ResolveFunction(testTargetABI, "transfer")
	require.NoError(t, err)
	require.Equal(t, "transfer", signature.Method.Name)
	require.Len(t, signature.Method.Inputs, 2)
}

func TestResolveFunctionUnknownMethod(t *testing.T) {
	_, err := ResolveFunction(testTargetABI, "mint")
	require.Error(t, err)
	require.Contains(t, err.Error(), "mint")
}

func TestResolveFunctionMalformedABI(t *testing.T) {
	_, err := ResolveFunction("{not json", "transfer")
	require.Error(t, err)
}

func TestOrderedArgsFollowsDeclaredOrder(t *testing.T) {
	signature, err := ResolveFunction(testTargetABI, "transfer")
	require.NoError(t, err)

	ordered, err := signature.OrderedArgs(map[string]interface{}{
		"value": "1000",
		"to":    "0x3000000000000000000000000000000000000003",
	})
	require.NoError(t, err)
	require.Len(t, ordered, 2)
	require.Equal(t, common.HexToAddress("0x3000000000000000000000000000000000000003"), ordered[0])
	require.Equal(t, big.NewInt(1000), ordered[1])
}

func TestOrderedArgsMissingParameter(t *testing.T) {
	signature, err := ResolveFunction(testTargetABI, "transfer")
	require.NoError(t, err)

	_, err = signature.OrderedArgs(map[string]interface{}{
		"to": "0x3000000000000000000000000000000000000003",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), `missing argument "value"`)
}

func TestOrderedArgsUnknownParameter(t *testing.T) {
	signature, err := ResolveFunction(testTargetABI, "transfer")
	require.NoError(t, err)

	_, err = signature.OrderedArgs(map[string]interface{}{
		"to":     "0x3000000000000000000000000000000000000003",
		"value":  "1000",
		"amount": "5",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown argument "amount"`)
}

func TestPackTransfer(t *testing.T) {
	signature, err := ResolveFunction(testTargetABI, "transfer")
	require.NoError(t, err)

	payload, err := signature.Pack(map[string]interface{}{
		"to":    "0x3000000000000000000000000000000000000003",
		"value": big.NewInt(1000),
	})
	require.NoError(t, err)
	// 4-byte selector plus two 32-byte words.
	require.Len(t, payload, 68)
	require.Equal(t, hexutil.MustDecode("0xa9059cbb"), payload[:4])
}

func TestPackMixedTypes(t *testing.T) {
	signature, err := ResolveFunction(testTargetABI, "configure")
	require.NoError(t, err)

	payload, err := signature.Pack(map[string]interface{}{
		"enabled": true,
		"label":   "main",
		"payload": "0xdeadbeef",
	})
	require.NoError(t, err)
	require.NotEmpty(t, payload)
}

func TestPackRejectsWrongTypes(t *testing.T) {
	signature, err := ResolveFunction(testTargetABI, "transfer")
	require.NoError(t, err)

	_, err = signature.Pack(map[string]interface{}{
		"to":    "0x3000000000000000000000000000000000000003",
		"value": true,
	})
	require.Error(t, err)

	_, err = signature.Pack(map[string]interface{}{
		"to":    42,
		"value": "1000",
	})
	require.Error(t, err)

	_, err = signature.Pack(map[string]interface{}{
		"to":    "0xzz00000000000000000000000000000000000003",
		"value": "1000",
	})
	require.Error(t, err)
}

func TestPackRejectsIntegerOverflow(t *testing.T) {
	const setModeABI = `[{"constant":false,"inputs":[{"name":"mode","type":"uint8"},{"name":"offset","type":"int8"}],"name":"setMode","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"}]`
	signature, err := ResolveFunction(setModeABI, "setMode")
	require.NoError(t, err)

	// Values at the type boundary pack fine.
	_, err = signature.Pack(map[string]interface{}{"mode": 255, "offset": -128})
	require.NoError(t, err)

	// Out-of-range values are rejected, never truncated.
	_, err = signature.Pack(map[string]interface{}{"mode": 300, "offset": 0})
	require.Error(t, err)
	require.Contains(t, err.Error(), "overflows uint8")

	_, err = signature.Pack(map[string]interface{}{"mode": 0, "offset": 128})
	require.Error(t, err)
	require.Contains(t, err.Error(), "overflows int8")

	_, err = signature.Pack(map[string]interface{}{"mode": -1, "offset": 0})
	require.Error(t, err)
	require.Contains(t, err.Error(), "negative value")
}

func TestPackIntegerConversions(t *testing.T) {
	signature, err := ResolveFunction(testTargetABI, "transfer")
	require.NoError(t, err)

	// JSON numbers arrive as float64 and hex strings are accepted.
	for _, value := range []interface{}{float64(1000), "1000", "0x3e8", uint64(1000), 1000} {
		payload, err := signature.Pack(map[string]interface{}{
			"to":    "0x3000000000000000000000000000000000000003",
			"value": value,
		})
		require.NoError(t, err)
		require.Len(t, payload, 68)
	}

	_, err = signature.Pack(map[string]interface{}{
		"to":    "0x3000000000000000000000000000000000000003",
		"value": "ten",
	})
	require.Error(t, err)
}
