// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

import (
	"time"

	"github.com/coriumchain/coriumd/chaincfg"
	"github.com/coriumchain/coriumd/node/chaindata"
	"github.com/coriumchain/coriumd/types/chainhash"
	"github.com/coriumchain/coriumd/wire"
)

// ChainState is the external collaborator that supplies everything the
// assembler needs to know about the chain it is building on top of, without
// granting it the ability to mutate that chain. A build takes exactly one
// ChainState snapshot and treats it as immutable for the build's duration;
// the caller is responsible for acquiring whatever lock made the snapshot
// coherent before passing it in.
type ChainState interface {
	// Tip returns the chain's current best-block snapshot.
	Tip() *chaindata.BestState

	// Params returns the active network's consensus parameters.
	Params() *chaincfg.Params

	// ComputeBlockVersion returns the block header version a block at the
	// given height should advertise, accounting for active soft-fork
	// deployments.
	ComputeBlockVersion(height int32) int32

	// GenerateCoinbaseCommitment computes the witness-commitment payload for
	// block, to be embedded as an OP_RETURN output on its coinbase.
	GenerateCoinbaseCommitment(block *wire.MsgBlock) ([]byte, error)

	// GetNextWorkRequired returns the proof-of-work target (in compact
	// form) the next block must satisfy, given the block's timestamp and
	// whether it is a proof-of-stake block.
	GetNextWorkRequired(isProofOfStake bool, newTime time.Time) uint32

	// GetBlockSubsidy returns the block subsidy, in base units, for a block
	// at the given height.
	GetBlockSubsidy(height int32) int64

	// TestBlockValidity runs the full block-connection validation pipeline
	// against the tip, minus whichever of the proof-of-work and Merkle-root
	// checks the caller asks to skip (the assembler always skips both,
	// since it has not yet solved the header or does not need the Merkle
	// check repeated after computing it locally).
	TestBlockValidity(block *wire.MsgBlock, checkPoW, checkMerkle bool) error

	// AdjustedTime returns the node's network-adjusted wall-clock time.
	AdjustedTime() time.Time

	// GetContractScriptFlags returns the script-verification flags active
	// for contract-transaction extraction at the given height.
	GetContractScriptFlags(height int32) uint32

	// DGPLimits returns the current Decentralized Governance Protocol
	// resource limits.
	DGPLimits() DGPLimits

	// TimestampDownscaleFactor and TargetSpacing drive C8's height-dependent
	// scaling of lookahead/polling/buffer constants.
	TimestampDownscaleFactor(height int32) uint32
	TargetSpacing(height int32) uint32

	// AllowsMinDifficultyBlocks reports whether the active network permits
	// minimum-difficulty blocks after a target-spacing timeout, the
	// condition under which header times and targets are recomputed
	// whenever the timestamp advances.
	AllowsMinDifficultyBlocks() bool

	// IsSignet reports whether the active network is a signet-equivalent
	// network, where blocks are produced by an authorized signer rather
	// than proof-of-stake, so CanStake must always report ineligible.
	IsSignet() bool
}

// DGPLimits carries the on-chain-governed resource ceilings that bound a
// block template, as reported by the chain state collaborator's
// Decentralized Governance Protocol contract.
type DGPLimits struct {
	// MaxBlockWeight is dgpMaxBlockWeight: the consensus ceiling
	// nBlockMaxWeight is clamped against.
	MaxBlockWeight uint64

	// MaxBlockSigOps is dgpMaxBlockSigOps.
	MaxBlockSigOps int64

	// SoftBlockGasLimit is the operator-tunable per-block contract gas
	// inclusion ceiling.
	SoftBlockGasLimit uint64

	// HardBlockGasLimit is the consensus-critical per-block contract gas
	// execution ceiling passed to the VM regardless of the soft limit.
	HardBlockGasLimit uint64

	// MinGasPrice is the minimum gas price, in base units, a contract
	// transaction's declared gas price must meet.
	MinGasPrice uint64

	// TxGasLimit is the maximum gas a single contract-invoking transaction
	// may declare.
	TxGasLimit uint64
}

// MempoolEntry is a read-only view of one mempool-resident transaction and
// the ancestor statistics the selector needs. Size/fee/sigop figures are in
// the same units chaindata and txscript use throughout (vsize-equivalent
// bytes, base-unit fees, legacy sigop counts).
type MempoolEntry interface {
	// Tx returns the underlying transaction.
	Tx() *wire.MsgTx

	// Hash returns the transaction's identifying hash.
	Hash() chainhash.Hash

	// TxSize returns the entry's own serialized size.
	TxSize() uint64

	// TxWeight returns the entry's own block weight.
	TxWeight() uint64

	// ModifiedFee returns the entry's own fee, after any operator priority
	// adjustment.
	ModifiedFee() int64

	// SigOpCost returns the entry's own legacy signature-operation cost.
	SigOpCost() int64

	// SizeWithAncestors, ModFeesWithAncestors and SigOpCostWithAncestors
	// return the package totals across the entry and all of its currently
	// unconfirmed mempool ancestors.
	SizeWithAncestors() uint64
	ModFeesWithAncestors() int64
	SigOpCostWithAncestors() int64

	// GasPrice returns the gas price of the entry's contract call, or zero
	// for a plain-value transaction. Used as the comparator's tiebreak for
	// contract transactions.
	GasPrice() uint64
}

// MempoolIterator walks a Mempool's native ancestor-score ordering,
// best-first.
type MempoolIterator interface {
	// Done reports whether the iterator has been exhausted.
	Done() bool

	// Entry returns the entry the iterator currently points at. Must not
	// be called when Done reports true.
	Entry() MempoolEntry

	// Next advances the iterator by one position.
	Next()
}

// Mempool is the external collaborator exposing the candidate-transaction
// pool's ancestor-aware ordering and dependency queries. Mempool is
// consulted read-only; the assembler's overlay (see overlay.go) is the only
// place ancestor statistics are ever adjusted, and those adjustments never
// reach back into the real mempool.
type Mempool interface {
	// AncestorOrdered returns a fresh iterator over the mempool's entries,
	// ordered best-first by ancestor_score_or_gas_price.
	AncestorOrdered() MempoolIterator

	// CalculateDescendants returns every mempool entry transitively
	// depending on entry, not including entry itself.
	CalculateDescendants(entry MempoolEntry) []MempoolEntry

	// CalculateMempoolAncestors returns every unconfirmed mempool entry
	// entry transitively depends on, not including entry itself, with no
	// limit applied (the selector always calls this with unlimited
	// bounds, matching the source's nNoLimit call).
	CalculateMempoolAncestors(entry MempoolEntry) []MempoolEntry
}

// ContractTx is one EVM-style call or contract-creation extracted from an
// enclosing transaction by the VM collaborator.
type ContractTx struct {
	Gas      uint64
	GasPrice uint64
}

// ExecResult is what the VM collaborator reports after executing a batch of
// ContractTx against the global contract state.
type ExecResult struct {
	// UsedGas is the total gas consumed by the batch.
	UsedGas uint64

	// RefundSender is the amount, in base units, to deduct from the
	// reward transaction's base value and return to whoever funded the
	// contract call's gas.
	RefundSender int64

	// RefundOutputs are appended verbatim to the reward transaction.
	RefundOutputs []*wire.TxOut

	// ValueTransfers are the plain value-transfer transactions the VM
	// produced as a side effect of contract execution (e.g. a contract
	// paying out to an externally-owned account).
	ValueTransfers []*wire.MsgTx
}

// ContractVM is the external collaborator executing contract-invoking
// transactions against the global, checkpointable contract state trie.
type ContractVM interface {
	// IsContractTx reports whether tx carries any contract-creation or
	// contract-call opcode and should be routed through the contract
	// sub-assembler rather than included directly.
	IsContractTx(tx *wire.MsgTx) bool

	// ExtractContractTransactions decomposes tx into the individual
	// contract calls/creations it carries, resolving the other
	// transactions already placed in the block (blockTxs) and the active
	// script-verification flags as needed.
	ExtractContractTransactions(tx *wire.MsgTx, blockTxs []*wire.MsgTx, scriptFlags uint32) ([]ContractTx, error)

	// Execute runs txs against the current global state, bounded by
	// hardGasLimit, as of the given tip height.
	Execute(txs []ContractTx, hardGasLimit uint64, tipHeight int32) (ExecResult, error)

	// StateRoot and UTXORoot report the current roots of the global
	// contract-state trie and its companion UTXO trie.
	StateRoot() chainhash.Hash
	UTXORoot() chainhash.Hash

	// SetStateRoot and SetUTXORoot restore the global contract state to a
	// previously captured pair of roots. This is the sole rollback
	// primitive C5 relies on: no nested snapshots are ever taken.
	SetStateRoot(chainhash.Hash)
	SetUTXORoot(chainhash.Hash)
}
