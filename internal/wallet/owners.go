package wallet

import (
	"github.com/ethereum/go-ethereum/common"
)

// parseOwnerAddress is the syntactic half of owner validation: hex
// shape and non-zero. It needs no chain state, so callers run it before
// any network read.
func parseOwnerAddress(field string, candidate string) (common.Address, error) {
	if !common.IsHexAddress(candidate) {
		return common.Address{}, &ValidationError{Field: field, Message: "not a valid address"}
	}
	address := common.HexToAddress(candidate)
	if address == (common.Address{}) {
		return common.Address{}, &ValidationError{Field: field, Message: "zero address"}
	}
	return address, nil
}

// ValidateNewOwner checks a candidate owner address against the current
// owner set. The check is purely local: address syntax first, then a
// case-insensitive duplicate comparison against the checksummed set.
func ValidateNewOwner(candidate string, currentOwners []common.Address) (common.Address, error) {
	address, err := parseOwnerAddress("owner", candidate)
	if err != nil {
		return common.Address{}, err
	}
	for _, owner := range currentOwners {
		if owner == address {
			return common.Address{}, &ValidationError{Field: "owner", Message: "address is already an owner"}
		}
	}
	return address, nil
}

// ValidateReplacementOwner checks an owner swap: the outgoing address
// must currently be an owner and the incoming one must pass the same
// checks as a new owner.
func ValidateReplacementOwner(oldOwner string, newOwner string, currentOwners []common.Address) (common.Address, common.Address, error) {
	outgoing, err := parseOwnerAddress("oldOwner", oldOwner)
	if err != nil {
		return common.Address{}, common.Address{}, err
	}
	found := false
	for _, owner := range currentOwners {
		if owner == outgoing {
			found = true
			break
		}
	}
	if !found {
		return common.Address{}, common.Address{}, &ValidationError{Field: "oldOwner", Message: "address is not an owner"}
	}
	incoming, err := ValidateNewOwner(newOwner, currentOwners)
	if err != nil {
		return common.Address{}, common.Address{}, err
	}
	return outgoing, incoming, nil
}
