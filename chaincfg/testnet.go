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

// testNetPowLimit is the highest proof of work value a testnet block can
// have: 2^232 - 1.
var testNetPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 232), bigOne)

// TestNetParams defines the network parameters for the test network.
var TestNetParams = Params{
	Name:             "testnet",
	Net:              TestNet,
	DefaultPort:      "18333",
	GenesisTimestamp: time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
	CoinbaseMaturity: 10,

	SubsidyReductionInterval: 210000,

	PowParams: PowParams{
		PowLimit:                 testNetPowLimit,
		PowLimitBits:             0x1e0fffff,
		TargetTimespan:           time.Hour * 24 * 14,
		TargetTimePerBlock:       time.Minute * 2,
		RetargetAdjustmentFactor: 4,
	},

	PosParams: PosParams{
		MinStakeAge:           time.Minute * 10,
		MinStakeValue:         1 * SatoshiPerCoin,
		StakeCombineThreshold: 1000 * SatoshiPerCoin,
		StakeSplitThreshold:   2000 * SatoshiPerCoin,
	},

	RuleChangeActivationThreshold: 1512,
	MinerConfirmationWindow:       2016,

	RelayNonStdTxs: true,

	Bech32HRPSegwit:         "tcor",
	PubKeyHashAddrID:        0x6f,
	ScriptHashAddrID:        0xc4,
	PrivateKeyID:            0xef,
	WitnessPubKeyHashAddrID: 0x03,
	WitnessScriptHashAddrID: 0x28,
}

// SimNetParams defines the network parameters for the privately run
// simulation test network, used by local node clusters in integration
// tests.
var SimNetParams = Params{
	Name:             "simnet",
	Net:              SimNet,
	DefaultPort:      "18555",
	GenesisTimestamp: time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
	CoinbaseMaturity: 10,

	SubsidyReductionInterval: 210000,

	PowParams: PowParams{
		PowLimit:                 testNetPowLimit,
		PowLimitBits:             0x207fffff,
		TargetTimespan:           time.Hour * 24 * 14,
		TargetTimePerBlock:       time.Minute,
		RetargetAdjustmentFactor: 4,
	},

	PosParams: PosParams{
		MinStakeAge:           time.Second * 10,
		MinStakeValue:         1 * SatoshiPerCoin,
		StakeCombineThreshold: 1000 * SatoshiPerCoin,
		StakeSplitThreshold:   2000 * SatoshiPerCoin,
	},

	RuleChangeActivationThreshold: 75,
	MinerConfirmationWindow:       100,

	RelayNonStdTxs: true,

	Bech32HRPSegwit:         "scor",
	PubKeyHashAddrID:        0x3f,
	ScriptHashAddrID:        0x7b,
	PrivateKeyID:            0x64,
	WitnessPubKeyHashAddrID: 0x19,
	WitnessScriptHashAddrID: 0x28,
}
