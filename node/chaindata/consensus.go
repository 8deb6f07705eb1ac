// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package chaindata

// WitnessScaleFactor is the factor by which serialized transaction size is
// scaled to arrive at a transaction's weight, as defined by BIP-141: a
// non-witness byte costs WitnessScaleFactor weight units, a witness byte
// costs one.
const WitnessScaleFactor = 4

// MaxBlockBaseSize is the maximum number of bytes a block's base
// (non-witness) serialization is permitted to occupy.
const MaxBlockBaseSize = 1000000

// MaxBlockWeight is the maximum weight, in weight units, a block is
// permitted to occupy. It is the hard consensus ceiling that
// dgpMaxBlockWeight is never allowed to exceed.
const MaxBlockWeight = MaxBlockBaseSize * WitnessScaleFactor

// MaxBlockSigOpsCost is the maximum allowed signature operation cost, in
// sigop-cost units, a block is permitted to carry.
const MaxBlockSigOpsCost = 80000

// CoinbaseWitnessCommitmentSpace is the number of extra weight units the
// coinbase's witness commitment output + the base transaction's marker and
// flag bytes consume. The block assembler does not reserve it separately;
// its only up-front weight reserve is reservedBlockWeight.
const CoinbaseWitnessCommitmentSpace = 2 + 4 + 41
