package wallet

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// FunctionSignature is a resolved target contract method. Resolution
// happens before any optimistic list mutation so malformed inputs fail
// fast without leaving placeholder entries behind.
type FunctionSignature struct {
	contractABI abi.ABI
	Method      abi.Method
}

// ResolveFunction parses the target contract's ABI and looks up the
// named method.
func ResolveFunction(abiJSON string, methodName string) (*FunctionSignature, error) {
	contractABI, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse target abi: %w", err)
	}
	method, ok := contractABI.Methods[methodName]
	if !ok {
		return nil, fmt.Errorf("method %s not found in target abi", methodName)
	}
	return &FunctionSignature{contractABI: contractABI, Method: method}, nil
}

// OrderedArgs maps named arguments onto the method's declared parameter
// order. Every declared parameter must be present in args and every key
// in args must match a declared parameter; a mismatch is an error, not
// a silently packed zero value.
func (f *FunctionSignature) OrderedArgs(args map[string]interface{}) ([]interface{}, error) {
	declared := make(map[string]struct{}, len(f.Method.Inputs))
	ordered := make([]interface{}, 0, len(f.Method.Inputs))
	for _, input := range f.Method.Inputs {
		declared[input.Name] = struct{}{}
		raw, ok := args[input.Name]
		if !ok {
			return nil, fmt.Errorf("missing argument %q for method %s", input.Name, f.Method.Name)
		}
		value, err := convertArg(input.Type, raw)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", input.Name, err)
		}
		ordered = append(ordered, value)
	}
	for name := range args {
		if _, ok := declared[name]; !ok {
			return nil, fmt.Errorf("unknown argument %q for method %s", name, f.Method.Name)
		}
	}
	return ordered, nil
}

// Pack encodes the method selector plus the named arguments into
// calldata for the wallet's inner transaction.
func (f *FunctionSignature) Pack(args map[string]interface{}) ([]byte, error) {
	ordered, err := f.OrderedArgs(args)
	if err != nil {
		return nil, err
	}
	payload, err := f.contractABI.Pack(f.Method.Name, ordered...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", f.Method.Name, err)
	}
	return payload, nil
}

func convertArg(t abi.Type, v interface{}) (interface{}, error) {
	switch t.T {
	case abi.AddressTy:
		switch value := v.(type) {
		case common.Address:
			return value, nil
		case string:
			if !common.IsHexAddress(value) {
				return nil, fmt.Errorf("%q is not a hex address", value)
			}
			return common.HexToAddress(value), nil
		}
		return nil, fmt.Errorf("cannot use %T as address", v)
	case abi.UintTy, abi.IntTy:
		n, err := toBigInt(v)
		if err != nil {
			return nil, err
		}
		return castInteger(t, n)
	case abi.BoolTy:
		if value, ok := v.(bool); ok {
			return value, nil
		}
		return nil, fmt.Errorf("cannot use %T as bool", v)
	case abi.StringTy:
		if value, ok := v.(string); ok {
			return value, nil
		}
		return nil, fmt.Errorf("cannot use %T as string", v)
	case abi.BytesTy:
		switch value := v.(type) {
		case []byte:
			return value, nil
		case string:
			decoded, err := hexutil.Decode(value)
			if err != nil {
				return nil, fmt.Errorf("invalid bytes value: %w", err)
			}
			return decoded, nil
		}
		return nil, fmt.Errorf("cannot use %T as bytes", v)
	case abi.FixedBytesTy:
		raw, ok := v.([]byte)
		if !ok {
			if s, isString := v.(string); isString {
				decoded, err := hexutil.Decode(s)
				if err != nil {
					return nil, fmt.Errorf("invalid fixed bytes value: %w", err)
				}
				raw = decoded
			} else {
				return nil, fmt.Errorf("cannot use %T as bytes%d", v, t.Size)
			}
		}
		if len(raw) != t.Size {
			return nil, fmt.Errorf("expected %d bytes, got %d", t.Size, len(raw))
		}
		fixed := reflect.New(t.GetType()).Elem()
		reflect.Copy(fixed, reflect.ValueOf(raw))
		return fixed.Interface(), nil
	default:
		return nil, fmt.Errorf("unsupported abi type %s", t.String())
	}
}

func toBigInt(v interface{}) (*big.Int, error) {
	switch value := v.(type) {
	case *big.Int:
		return value, nil
	case big.Int:
		return &value, nil
	case uint64:
		return new(big.Int).SetUint64(value), nil
	case int64:
		return big.NewInt(value), nil
	case int:
		return big.NewInt(int64(value)), nil
	case float64:
		// JSON numbers arrive as float64.
		return new(big.Int).SetInt64(int64(value)), nil
	case string:
		n, ok := new(big.Int).SetString(strings.TrimPrefix(value, "0x"), base(value))
		if !ok {
			return nil, fmt.Errorf("%q is not an integer", value)
		}
		return n, nil
	}
	return nil, fmt.Errorf("cannot use %T as integer", v)
}

func base(s string) int {
	if strings.HasPrefix(s, "0x") {
		return 16
	}
	return 10
}

func castInteger(t abi.Type, n *big.Int) (interface{}, error) {
	if t.T == abi.UintTy {
		if n.Sign() < 0 {
			return nil, fmt.Errorf("negative value for uint%d", t.Size)
		}
		if n.BitLen() > t.Size {
			return nil, fmt.Errorf("value %s overflows uint%d", n, t.Size)
		}
	} else {
		// Signed range is -2^(size-1) .. 2^(size-1)-1.
		limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
		upper := new(big.Int).Sub(limit, big.NewInt(1))
		lower := new(big.Int).Neg(limit)
		if n.Cmp(upper) > 0 || n.Cmp(lower) < 0 {
			return nil, fmt.Errorf("value %s overflows int%d", n, t.Size)
		}
	}
	switch t.Size {
	case 8:
		if t.T == abi.IntTy {
			return int8(n.Int64()), nil
		}
		return uint8(n.Uint64()), nil
	case 16:
		if t.T == abi.IntTy {
			return int16(n.Int64()), nil
		}
		return uint16(n.Uint64()), nil
	case 32:
		if t.T == abi.IntTy {
			return int32(n.Int64()), nil
		}
		return uint32(n.Uint64()), nil
	case 64:
		if t.T == abi.IntTy {
			return n.Int64(), nil
		}
		return n.Uint64(), nil
	default:
		return n, nil
	}
}
