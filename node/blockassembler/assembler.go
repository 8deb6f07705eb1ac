// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/coriumchain/coriumd/node/chaindata"
	"github.com/coriumchain/coriumd/txscript"
	"github.com/coriumchain/coriumd/types/chainhash"
	"github.com/coriumchain/coriumd/wire"
)

// Assembler builds block templates against a particular chain-state,
// mempool, and contract-VM collaborator. It is not safe for concurrent use:
// the source's own concurrency model is single-build-at-a-time (see the
// concurrency design notes), and callers are expected to serialize calls to
// CreateNewBlock the same way they would have had to hold the source's
// cs_main/mempool locks for its duration.
type Assembler struct {
	chainState ChainState
	mempool    Mempool
	vm         ContractVM

	opts Options

	timeParams TimeParams

	ra          *resourceAccountant
	diagnostics *priorityRecorder
}

// NewAssembler returns an Assembler wired to the given collaborators, with
// opts.BlockMaxWeight clamped against the chain state's current DGP
// weight ceiling the same way the source's constructor clamps
// nBlockMaxWeight.
func NewAssembler(chainState ChainState, mempool Mempool, vm ContractVM, opts Options) *Assembler {
	limits := chainState.DGPLimits()
	opts.BlockMaxWeight = clampBlockMaxWeight(opts.BlockMaxWeight, limits.MaxBlockWeight)

	return &Assembler{
		chainState: chainState,
		mempool:    mempool,
		vm:         vm,
		opts:       opts,
		ra:         newResourceAccountant(),
	}
}

// CanStake reports whether this node is configured to attempt
// proof-of-stake block production. It mirrors the source's CanStake: the
// -staking flag, negated outright on a signet-equivalent network (as
// reported by the chain state's IsSignet).
func (a *Assembler) CanStake() bool {
	if !a.opts.Staking {
		return false
	}
	return !a.chainState.IsSignet()
}

// CreateNewBlock builds a new block template paying scriptPubKeyIn,
// proof-of-work or proof-of-stake per isProofOfStake, with an optional
// wall-clock deadline nTimeLimit bounding how long C5 will keep accepting
// new contract inclusions. It returns the finished template and the total
// fees collected.
//
// For a proof-of-stake template the caller must additionally supply
// coinstakeTx: the externally constructed coinstake transaction (staking is
// a wallet/staker-loop concern this package does not implement). Per the
// resolved open question on coinstake provenance, a nil coinstakeTx on a
// proof-of-stake build is an error; the proof-of-work path always
// synthesizes its own coinbase and ignores coinstakeTx.
func (a *Assembler) CreateNewBlock(ctx context.Context, scriptPubKeyIn []byte, isProofOfStake bool,
	coinstakeTx *wire.MsgTx, txProofTime time.Time, nTimeLimit time.Time) (*Template, int64, error) {

	if isProofOfStake && coinstakeTx == nil {
		return nil, 0, errors.New("create new block: proof-of-stake build requires a coinstake transaction")
	}

	a.ra.reset()
	a.diagnostics = nil
	if a.opts.PrintPriority {
		a.diagnostics = &priorityRecorder{}
	}

	tip := a.chainState.Tip()
	height := tip.Height + 1
	a.timeParams.Update(a.chainState, height, a.chainState.AllowsMinDifficultyBlocks())

	limits := a.chainState.DGPLimits()

	header := wire.BlockHeader{
		Version:        a.opts.BlockVersion,
		IsProofOfStake: isProofOfStake,
	}
	if header.Version == 0 {
		header.Version = a.chainState.ComputeBlockVersion(height)
	}

	// The coinbase always occupies Transactions[0], win or stake: for
	// proof-of-work it also doubles as the reward-minting transaction, but
	// for proof-of-stake it pays zero value and the reward instead lives in
	// the coinstake at Transactions[1] (see wire.BlockHeader.IsProofOfStake).
	// It is built up front, with fees at zero, so that any contract
	// inclusion during package selection has a real original to rebuild
	// from instead of a placeholder nil.
	block := wire.NewMsgBlock(&header)
	coinbase := a.buildCoinbaseTx(scriptPubKeyIn, isProofOfStake, height, 0)
	block.AddTransaction(coinbase)

	tmpl := &Template{
		Block:          block,
		Fees:           []int64{-1},
		SigOpsCost:     []int64{-1},
		Height:         height,
		LockTimeCutoff: tip.MedianTime,
		IsProofOfStake: isProofOfStake,
	}

	rewardTx := coinbase
	if isProofOfStake {
		rewardTx = coinstakeTx
		tmpl.appendTx(coinstakeTx, -1, -1)
	}
	tmpl.OriginalRewardTx = rewardTx

	s := &selector{
		a:      a,
		tmpl:   tmpl,
		limits: limits,
	}
	s.run(nTimeLimit)

	tmpl.LastBlockNumTxs = a.ra.txCount
	tmpl.LastBlockWeight = a.ra.weight

	// One authoritative rebuild from the untouched original, now that every
	// fee and every contract refund accumulated over the whole run is
	// known; this folds in fees from plain transactions selected after the
	// last contract inclusion, which no mid-run rebuild could have seen.
	rewardIdx := tmpl.rewardIndex()
	finalReward := rebuildRewardTransaction(tmpl.OriginalRewardTx, rewardIdx, a.ra.fees,
		a.chainState.GetBlockSubsidy(height), tmpl.ContractResult.RefundSender, tmpl.ContractResult.RefundOutputs)
	tmpl.Block.Transactions[rewardIdx] = finalReward

	coinbaseTx := tmpl.Block.Transactions[0]

	// GenerateCoinbaseCommitment reads the coinbase already seated at
	// Transactions[0], so the witness commitment it returns always attaches
	// there too, never to the separate coinstake/reward slot.
	commitment, err := a.chainState.GenerateCoinbaseCommitment(tmpl.Block)
	if err != nil {
		return nil, 0, errors.Wrap(err, "create new block: generate coinbase commitment")
	}
	if len(commitment) > 0 {
		coinbaseTx.AddTxOut(wire.NewTxOut(0, commitment))
	}

	tmpl.Fees[0] = 0
	tmpl.Fees[rewardIdx] = -a.ra.fees

	tmpl.SigOpsCost[0] = int64(chaindata.WitnessScaleFactor * chaindata.CountSigOps(chainutilTx(coinbaseTx)))
	if rewardIdx != 0 {
		tmpl.SigOpsCost[rewardIdx] = int64(chaindata.WitnessScaleFactor * chaindata.CountSigOps(chainutilTx(finalReward)))
	}

	// wire.NewMsgBlock copied header by value, so the final header fields
	// are written to the block's own header.
	blockHeader := &tmpl.Block.Header
	blockHeader.PrevBlock = tip.Hash
	a.updateTime(blockHeader, txProofTime, tip)
	blockHeader.Nonce = 0

	if err := a.chainState.TestBlockValidity(tmpl.Block, false, false); err != nil {
		return nil, 0, errors.Wrap(err, "create new block: candidate failed self-validation")
	}

	return tmpl, a.ra.fees, nil
}

// updateTime sets the header's timestamp to the later of the tip's
// median-time-past + 1 second and the caller-supplied proof time (never
// moving it backwards), then sets the proof-of-work/proof-of-stake target
// from GetNextWorkRequired when none is set yet or when the network allows
// minimum-difficulty blocks.
// This is the Go counterpart of the source's UpdateTime.
func (a *Assembler) updateTime(header *wire.BlockHeader, txProofTime time.Time, tip *chaindata.BestState) {
	oldTime := header.Timestamp
	newTime := tip.MedianTime.Add(time.Second)
	if txProofTime.After(newTime) {
		newTime = txProofTime
	}
	if oldTime.Before(newTime) {
		header.Timestamp = newTime
	}
	if a.chainState.AllowsMinDifficultyBlocks() || header.Bits == 0 {
		header.Bits = a.chainState.GetNextWorkRequired(header.IsProofOfStake, header.Timestamp)
	}
}

// buildCoinbaseTx builds the block's coinbase transaction, the one that
// always occupies Transactions[0] regardless of proof type. A
// proof-of-work coinbase carries the full subsidy plus collected fees; a
// proof-of-stake coinbase pays zero value, since the stake reward is
// carried by the coinstake transaction instead.
func (a *Assembler) buildCoinbaseTx(scriptPubKeyIn []byte, isProofOfStake bool, height int32, fees int64) *wire.MsgTx {
	value := int64(0)
	if !isProofOfStake {
		value = a.chainState.GetBlockSubsidy(height) + fees
	}

	coinbase := wire.NewMsgTx(wire.TxVerRegular)
	coinbase.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.ZeroHash, wire.MaxPrevOutIndex), coinbaseScriptSig(height), nil))
	coinbase.AddTxOut(wire.NewTxOut(value, scriptPubKeyIn))
	return coinbase
}

// coinbaseScriptSig builds the height-push-then-OP_0-filler scriptSig
// BIP0034 requires every coinbase transaction to begin with.
func coinbaseScriptSig(height int32) []byte {
	b := txscript.NewScriptBuilder()
	b.AddInt64(int64(height))
	b.AddOp(txscript.OP_0)
	script, _ := b.Script()
	return script
}

// RegenerateCommitments rebuilds block's witness commitment against
// parentHash, for the block-edit path where an externally edited block
// needs its commitment (and therefore Merkle root) brought back in sync
// with its actual transaction list.
func (a *Assembler) RegenerateCommitments(block *wire.MsgBlock) error {
	coinbase := block.Transactions[0]
	for i, out := range coinbase.TxOut {
		if _, ok := txscript.IsWitnessCommitment(out.PkScript); ok {
			coinbase.TxOut = append(coinbase.TxOut[:i], coinbase.TxOut[i+1:]...)
			break
		}
	}

	commitment, err := a.chainState.GenerateCoinbaseCommitment(block)
	if err != nil {
		return errors.Wrap(err, "regenerate commitments: generate coinbase commitment")
	}
	if len(commitment) > 0 {
		coinbase.AddTxOut(wire.NewTxOut(0, commitment))
	}

	root := merkleRoot(block.Transactions)
	block.Header.MerkleRoot = root
	return nil
}
