package wallet

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestValidateNewOwner(t *testing.T) {
	owners := []common.Address{
		common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		common.HexToAddress("0x1000000000000000000000000000000000000001"),
	}

	owner, err := ValidateNewOwner("0x2000000000000000000000000000000000000002", owners)
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress("0x2000000000000000000000000000000000000002"), owner)
}

func TestValidateNewOwnerRejectsMalformed(t *testing.T) {
	var validation *ValidationError

	_, err := ValidateNewOwner("", nil)
	require.ErrorAs(t, err, &validation)

	_, err = ValidateNewOwner("0x1234", nil)
	require.ErrorAs(t, err, &validation)

	_, err = ValidateNewOwner("not hex at all", nil)
	require.ErrorAs(t, err, &validation)

	_, err = ValidateNewOwner("0x0000000000000000000000000000000000000000", nil)
	require.ErrorAs(t, err, &validation)
	require.Contains(t, validation.Message, "zero address")
}

func TestValidateNewOwnerRejectsDuplicateCaseInsensitive(t *testing.T) {
	checksummed := "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	owners := []common.Address{common.HexToAddress(checksummed)}

	var validation *ValidationError
	_, err := ValidateNewOwner(strings.ToLower(checksummed), owners)
	require.ErrorAs(t, err, &validation)
	require.Contains(t, validation.Message, "already an owner")

	_, err = ValidateNewOwner(strings.ToUpper(strings.TrimPrefix(checksummed, "0x")), owners)
	require.Error(t, err)
}

func TestValidateReplacementOwner(t *testing.T) {
	existing := common.HexToAddress("0x1000000000000000000000000000000000000001")
	owners := []common.Address{existing}

	outgoing, incoming, err := ValidateReplacementOwner(existing.Hex(), "0x2000000000000000000000000000000000000002", owners)
	require.NoError(t, err)
	require.Equal(t, existing, outgoing)
	require.Equal(t, common.HexToAddress("0x2000000000000000000000000000000000000002"), incoming)

	var validation *ValidationError

	// Outgoing address must be an owner.
	_, _, err = ValidateReplacementOwner("0x9000000000000000000000000000000000000009", "0x2000000000000000000000000000000000000002", owners)
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "oldOwner", validation.Field)

	// Incoming address must not already be an owner.
	_, _, err = ValidateReplacementOwner(existing.Hex(), existing.Hex(), owners)
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "owner", validation.Field)
}
