/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

const (
	// SatoshiPerCoin is the number of base units in one whole coin.
	SatoshiPerCoin = 1e8

	// MaxCoinAmount is the maximum transaction amount allowed in base units.
	MaxCoinAmount = 21e6 * SatoshiPerCoin
)

// Network identifiers, carried in Params.Net.
const (
	MainNet uint32 = 0xd9b4bef9
	TestNet uint32 = 0x0709110b
	SimNet  uint32 = 0x12141c16
)
