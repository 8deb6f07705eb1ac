/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"math/big"
	"time"
)

var bigOne = big.NewInt(1)

// PowParams houses the proof-of-work specific parameters of a chain.
type PowParams struct {
	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits is the highest allowed proof of work value for a block
	// in compact form.
	PowLimitBits uint32

	// TargetTimespan is the desired amount of time it should take to
	// retarget difficulty.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// RetargetAdjustmentFactor is the adjustment factor used to limit the
	// minimum and maximum amount of adjustment that can occur between
	// difficulty retargets.
	RetargetAdjustmentFactor int64
}

// PosParams houses the proof-of-stake specific parameters of a chain.
type PosParams struct {
	// MinStakeAge is the minimum age a UTXO must have before
	// it is eligible to be spent as a coinstake input.
	MinStakeAge time.Duration

	// MinStakeValue is the minimum amount, in base units, a UTXO must carry
	// to be eligible to stake.
	MinStakeValue int64

	// StakeCombineThreshold and StakeSplitThreshold bound coinstake output
	// consolidation: outputs below the combine threshold are merged into
	// the stake, and stakes above the split threshold are split in two.
	StakeCombineThreshold int64
	StakeSplitThreshold   int64
}

// Params defines a chain's network parameters. A running node is configured
// against exactly one of these, selected by name on the command line.
type Params struct {
	Name        string
	Net         uint32
	DefaultPort string
	DNSSeeds    []string

	// GenesisTimestamp is the timestamp embedded in the genesis block
	// header.
	GenesisTimestamp time.Time

	// CoinbaseMaturity is the number of blocks required before newly mined
	// coins, via either PoW coinbase or PoS coinstake, can be spent.
	CoinbaseMaturity uint16

	// SubsidyReductionInterval is the height interval at which the block
	// subsidy is halved. Zero disables subsidy halving.
	SubsidyReductionInterval int32

	PowParams PowParams
	PosParams PosParams

	// RuleChangeActivationThreshold and MinerConfirmationWindow govern
	// version-bits soft-fork deployments.
	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32

	// Address encoding magics.
	Bech32HRPSegwit         string
	PubKeyHashAddrID        byte
	ScriptHashAddrID        byte
	PrivateKeyID            byte
	WitnessPubKeyHashAddrID byte
	WitnessScriptHashAddrID byte

	// RelayNonStdTxs controls whether a mempool collaborator
	// accepts and relays non-standard transactions.
	RelayNonStdTxs bool
}
