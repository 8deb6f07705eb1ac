// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

import (
	"time"

	"github.com/coriumchain/coriumd/wire"
)

// rewardTxIndex returns the position of the reward-minting transaction
// (coinbase for proof-of-work, coinstake for proof-of-stake) within a
// template's transaction list.
func rewardTxIndex(isProofOfStake bool) int {
	if isProofOfStake {
		return 1
	}
	return 0
}

// Template is the candidate block under construction, plus the diagnostic
// and contract-accounting state the assembler needs to keep the block's
// reward transaction reconciled with what was actually included.
type Template struct {
	// Block is the in-progress block. Block.Transactions[0] is always the
	// coinbase, paying the subsidy and fees for proof-of-work or zero value
	// for proof-of-stake; for proof-of-stake templates the reward instead
	// lives in the coinstake at Block.Transactions[1].
	Block *wire.MsgBlock

	// Fees and SigOpsCost run parallel to Block.Transactions. Reward-slot
	// entries are seeded with -1. Each contract inclusion sets the reward
	// slot's sigop cost to that of the rebuilt reward transaction; the
	// finalizer then sets the fee and sigop entries of every reward slot.
	Fees       []int64
	SigOpsCost []int64

	// Height is the height the template is being built for (tip height + 1).
	Height int32

	// LockTimeCutoff is the tip's median-time-past, the reference point
	// IsFinalizedTransaction checks seconds-denominated locktimes against.
	LockTimeCutoff time.Time

	// IsProofOfStake marks whether the template mints via a coinstake
	// (true) or a coinbase (false).
	IsProofOfStake bool

	// OriginalRewardTx is the reward transaction as it existed before any
	// contract inclusion rebuilt it: the synthesized coinbase for
	// proof-of-work, or the externally supplied coinstake for
	// proof-of-stake. The reward/refund builder (C6) always rebuilds from
	// this copy, never from the template's current, possibly
	// already-rebuilt, reward transaction.
	OriginalRewardTx *wire.MsgTx

	// ContractResult accumulates the combined effect of every contract
	// transaction committed into the template so far.
	ContractResult ExecResult

	// LastBlockNumTxs and LastBlockWeight are diagnostics snapshotted
	// immediately after package selection (C4) completes, independent of
	// later mutations made while finalizing the reward transaction.
	LastBlockNumTxs uint64
	LastBlockWeight uint64
}

// rewardIndex returns the position of this template's reward transaction.
func (t *Template) rewardIndex() int {
	return rewardTxIndex(t.IsProofOfStake)
}

// appendTx appends tx, along with its fee and sigop cost, to the template.
func (t *Template) appendTx(tx *wire.MsgTx, fee, sigOpCost int64) {
	t.Block.Transactions = append(t.Block.Transactions, tx)
	t.Fees = append(t.Fees, fee)
	t.SigOpsCost = append(t.SigOpsCost, sigOpCost)
}
