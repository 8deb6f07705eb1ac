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

// mainPowLimit is the highest proof of work value a mainnet block can have:
// 2^224 - 1.
var mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne)

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name:             "mainnet",
	Net:              MainNet,
	DefaultPort:      "8333",
	GenesisTimestamp: time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
	CoinbaseMaturity: 100,

	SubsidyReductionInterval: 210000,

	PowParams: PowParams{
		PowLimit:                 mainPowLimit,
		PowLimitBits:             0x1d00ffff,
		TargetTimespan:           time.Hour * 24 * 14,
		TargetTimePerBlock:       time.Minute * 2,
		RetargetAdjustmentFactor: 4,
	},

	PosParams: PosParams{
		MinStakeAge:           time.Hour,
		MinStakeValue:         1 * SatoshiPerCoin,
		StakeCombineThreshold: 1000 * SatoshiPerCoin,
		StakeSplitThreshold:   2000 * SatoshiPerCoin,
	},

	RuleChangeActivationThreshold: 1916,
	MinerConfirmationWindow:       2016,

	RelayNonStdTxs: false,

	Bech32HRPSegwit:         "cor",
	PubKeyHashAddrID:        0x00,
	ScriptHashAddrID:        0x05,
	PrivateKeyID:            0x80,
	WitnessPubKeyHashAddrID: 0x06,
	WitnessScriptHashAddrID: 0x0a,
}
