package txsubmit

import (
	"bytes"
	"errors"
	"math/big"

	"github.com/gabapcia/txsend/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
)

// maxWordBits is the width of every value and fee field in a transaction.
const maxWordBits = 256

// GasParams holds the optional gas settings of a Request. Zero values are
// resolved by the Signer (estimation and network fee suggestions).
//
// Price selects a legacy transaction and cannot be combined with FeeCap or TipCap.
type GasParams struct {
	Limit  uint64   // Gas limit; 0 lets the signer estimate it
	Price  *big.Int // Legacy gas price in wei
	FeeCap *big.Int // EIP-1559 max fee per gas in wei
	TipCap *big.Int // EIP-1559 max priority fee per gas in wei
}

func (g GasParams) clone() GasParams {
	return GasParams{
		Limit:  g.Limit,
		Price:  cloneBig(g.Price),
		FeeCap: cloneBig(g.FeeCap),
		TipCap: cloneBig(g.TipCap),
	}
}

// IsLegacy reports whether the parameters select a legacy gas-price transaction.
func (g GasParams) IsLegacy() bool {
	return g.Price != nil
}

// Request describes a transfer or contract creation to be signed and broadcast.
// It is immutable: constructors copy their inputs and accessors return copies.
//
// A Request either targets a recipient address or is a contract creation, never
// neither and never both. Requests are validated by Submit, not on construction.
type Request struct {
	to               string
	contractCreation bool
	value            *big.Int
	data             []byte
	gas              GasParams
}

// RequestOption customizes a Request at construction time.
type RequestOption func(*Request)

// NewRequest builds a transfer of value wei to the given hex address.
func NewRequest(to string, value *big.Int, opts ...RequestOption) Request {
	r := Request{
		to:    to,
		value: cloneBig(value),
	}
	for _, opt := range opts {
		opt(&r)
	}

	return r
}

// NewContractCreation builds a request that deploys initCode, endowing the new
// contract with value wei.
func NewContractCreation(initCode []byte, value *big.Int, opts ...RequestOption) Request {
	r := Request{
		contractCreation: true,
		value:            cloneBig(value),
		data:             bytes.Clone(initCode),
	}
	for _, opt := range opts {
		opt(&r)
	}

	return r
}

// WithData attaches an opaque payload to the request.
func WithData(data []byte) RequestOption {
	return func(r *Request) {
		r.data = bytes.Clone(data)
	}
}

// WithGasLimit fixes the gas limit instead of estimating it.
func WithGasLimit(limit uint64) RequestOption {
	return func(r *Request) {
		r.gas.Limit = limit
	}
}

// WithGasPrice selects a legacy transaction with a fixed gas price.
func WithGasPrice(price *big.Int) RequestOption {
	return func(r *Request) {
		r.gas.Price = cloneBig(price)
	}
}

// WithDynamicFee sets EIP-1559 fee caps. Either value may be nil to let the
// signer fill it in.
func WithDynamicFee(feeCap, tipCap *big.Int) RequestOption {
	return func(r *Request) {
		r.gas.FeeCap = cloneBig(feeCap)
		r.gas.TipCap = cloneBig(tipCap)
	}
}

// IsContractCreation reports whether the request deploys a contract.
func (r Request) IsContractCreation() bool {
	return r.contractCreation
}

// RawRecipient returns the recipient exactly as it was given.
func (r Request) RawRecipient() string {
	return r.to
}

// Recipient returns the parsed recipient, or nil for contract creations.
// Callers should only rely on it after Validate succeeds.
func (r Request) Recipient() *common.Address {
	if r.contractCreation || r.to == "" {
		return nil
	}

	addr := common.HexToAddress(r.to)
	return &addr
}

// Value returns a copy of the transferred amount in wei. It is never nil.
func (r Request) Value() *big.Int {
	if r.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(r.value)
}

// Data returns a copy of the payload.
func (r Request) Data() []byte {
	return bytes.Clone(r.data)
}

// Gas returns a copy of the gas parameters.
func (r Request) Gas() GasParams {
	return r.gas.clone()
}

// recipient is the validated view of a recipient address.
type recipient struct {
	Address string `validate:"required,eth_addr"`
}

// Validate checks the request locally. It returns a *ValidationError naming
// the offending field, or nil.
func (r Request) Validate() error {
	switch {
	case r.to == "" && !r.contractCreation:
		return &ValidationError{Field: "to", Reason: "recipient address is required unless the request creates a contract"}
	case r.to != "" && r.contractCreation:
		return &ValidationError{Field: "to", Reason: "contract creation requests cannot carry a recipient"}
	}

	if !r.contractCreation {
		if err := validator.Validate(recipient{Address: r.to}); err != nil {
			return &ValidationError{Field: "to", Reason: "must be a 0x-prefixed 20-byte hex address", Err: err}
		}
	}

	if err := checkAmount("value", r.value); err != nil {
		return err
	}

	return r.gas.validate()
}

func (g GasParams) validate() error {
	for _, field := range []struct {
		name  string
		value *big.Int
	}{
		{"gas.price", g.Price},
		{"gas.feeCap", g.FeeCap},
		{"gas.tipCap", g.TipCap},
	} {
		if err := checkAmount(field.name, field.value); err != nil {
			return err
		}
	}

	if g.Price != nil && (g.FeeCap != nil || g.TipCap != nil) {
		return &ValidationError{Field: "gas.price", Reason: "legacy gas price cannot be combined with dynamic fee caps"}
	}

	if g.FeeCap != nil && g.TipCap != nil && g.TipCap.Cmp(g.FeeCap) > 0 {
		return &ValidationError{Field: "gas.tipCap", Reason: "priority fee cannot exceed the max fee per gas"}
	}

	return nil
}

var (
	errNegativeAmount = errors.New("amount is negative")
	errAmountTooLarge = errors.New("amount does not fit in 256 bits")
)

func checkAmount(field string, v *big.Int) error {
	if v == nil {
		return nil
	}

	if v.Sign() < 0 {
		return &ValidationError{Field: field, Reason: "must not be negative", Err: errNegativeAmount}
	}

	if v.BitLen() > maxWordBits {
		return &ValidationError{Field: field, Reason: "must fit in 256 bits", Err: errAmountTooLarge}
	}

	return nil
}

func cloneBig(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
