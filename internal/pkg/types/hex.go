package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Hex represents a hexadecimal-encoded quantity as a string (e.g., "0x1a"), as used by
// Ethereum JSON-RPC for block numbers, nonces, gas and wei amounts.
// It provides validation, JSON marshaling/unmarshaling, and numeric conversions.
type Hex string

// HexFromString validates the input string and returns a Hex value if valid.
func HexFromString(s string) (Hex, error) {
	if err := validateHex(s); err != nil {
		return "", err
	}
	return Hex(s), nil
}

// HexFromUint64 encodes n as a Hex quantity.
func HexFromUint64(n uint64) Hex {
	return Hex(fmt.Sprintf("0x%x", n))
}

// HexFromBig encodes a non-negative n as a Hex quantity. A nil value encodes as zero.
func HexFromBig(n *big.Int) Hex {
	if n == nil {
		return "0x0"
	}
	return Hex("0x" + n.Text(16))
}

// digits returns the hexadecimal digits without the 0x prefix.
func (h Hex) digits() (string, bool) {
	s := string(h)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return "", false
	}
	return s[2:], true
}

// validateHex checks whether a string is a valid hexadecimal number starting with "0x" or "0X".
func validateHex(s string) error {
	digits, ok := Hex(s).digits()
	if !ok {
		return fmt.Errorf("hex string must start with 0x")
	}

	if _, ok := new(big.Int).SetString(digits, 16); !ok {
		return fmt.Errorf("invalid hexadecimal value: %q", s)
	}

	return nil
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON parses and validates a JSON-encoded hexadecimal string.
// A JSON null leaves the value empty.
func (h *Hex) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if err := validateHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// Big returns the decoded value. Empty or invalid values decode as zero.
func (h Hex) Big() *big.Int {
	digits, ok := h.digits()
	if !ok {
		return new(big.Int)
	}

	v, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return new(big.Int)
	}
	return v
}

// Uint64 returns the decoded value truncated to 64 bits. Empty or invalid
// values decode as zero.
func (h Hex) Uint64() uint64 {
	return h.Big().Uint64()
}

// IsEmpty reports whether the value was absent from the decoded payload.
func (h Hex) IsEmpty() bool {
	return h == ""
}
