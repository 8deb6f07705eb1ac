// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package chaindata

// ErrorCode identifies a kind of error reported by the consensus-rule
// checks in this package.
type ErrorCode int

const (
	// ErrNoTxInputs indicates a transaction does not have any inputs.
	ErrNoTxInputs ErrorCode = iota

	// ErrNoTxOutputs indicates a transaction does not have any outputs.
	ErrNoTxOutputs

	// ErrTxTooBig indicates a transaction exceeds the maximum allowed size
	// when serialized.
	ErrTxTooBig

	// ErrBadTxOutValue indicates an output or the sum of all outputs has
	// a value that is out of range.
	ErrBadTxOutValue

	// ErrDuplicateTxInputs indicates a transaction references the same
	// previous output more than once.
	ErrDuplicateTxInputs

	// ErrBadTxInput indicates a transaction input references a null
	// previous output outside of a coinbase.
	ErrBadTxInput

	// ErrBadCoinbaseScriptLen indicates the length of the signature script
	// for a coinbase transaction is not within the valid range.
	ErrBadCoinbaseScriptLen

	// ErrMissingTxOut indicates a transaction references an output that
	// either does not exist or has already been spent.
	ErrMissingTxOut

	// ErrImmatureSpend indicates a transaction attempts to spend a
	// coinbase or coinstake output before it has reached the required
	// maturity.
	ErrImmatureSpend

	// ErrSpendTooHigh indicates a transaction attempts to spend more value
	// than the sum of its inputs provides.
	ErrSpendTooHigh

	// ErrTooManySigOps indicates the total signature operation cost of a
	// transaction or block exceeds the allowed maximum.
	ErrTooManySigOps

	// ErrBlockTooBig indicates a block exceeds the maximum allowed size or
	// weight.
	ErrBlockTooBig

	// ErrGasLimitExceeded indicates a contract call's declared gas limit
	// exceeds a governing budget (per-transaction, soft block, or hard
	// block).
	ErrGasLimitExceeded

	// ErrGasPriceTooLow indicates a contract call's declared gas price is
	// below the minimum the network currently accepts.
	ErrGasPriceTooLow

	// ErrContractExecutionFailed indicates the VM collaborator rejected or
	// failed to execute a contract-invoking transaction.
	ErrContractExecutionFailed
)

// errorCodeStrings houses the human-readable descriptions of each
// ErrorCode.
var errorCodeStrings = map[ErrorCode]string{
	ErrNoTxInputs:              "ErrNoTxInputs",
	ErrNoTxOutputs:             "ErrNoTxOutputs",
	ErrTxTooBig:                "ErrTxTooBig",
	ErrBadTxOutValue:           "ErrBadTxOutValue",
	ErrDuplicateTxInputs:       "ErrDuplicateTxInputs",
	ErrBadTxInput:              "ErrBadTxInput",
	ErrBadCoinbaseScriptLen:    "ErrBadCoinbaseScriptLen",
	ErrMissingTxOut:            "ErrMissingTxOut",
	ErrImmatureSpend:           "ErrImmatureSpend",
	ErrSpendTooHigh:            "ErrSpendTooHigh",
	ErrTooManySigOps:           "ErrTooManySigOps",
	ErrBlockTooBig:             "ErrBlockTooBig",
	ErrGasLimitExceeded:        "ErrGasLimitExceeded",
	ErrGasPriceTooLow:          "ErrGasPriceTooLow",
	ErrContractExecutionFailed: "ErrContractExecutionFailed",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return "Unknown ErrorCode"
}

// RuleError identifies a rule violation. It is used to indicate that
// processing of a transaction or block failed due to one of the many
// validation rules, as opposed to an unexpected I/O or programming error.
type RuleError struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// NewRuleError creates a RuleError given a set of arguments.
func NewRuleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether err is a RuleError carrying the given code.
func IsErrorCode(err error, c ErrorCode) bool {
	ruleErr, ok := err.(RuleError)
	return ok && ruleErr.ErrorCode == c
}
