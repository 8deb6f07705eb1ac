/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package txscript

// A minimal subset of the standard Bitcoin script opcodes: just enough to
// build and recognize the handful of script templates the block assembler
// needs to emit or inspect (coinbase height pushes, P2PKH/P2WPKH/P2SH
// payments, OP_RETURN witness commitments).
const (
	OP_0         = 0x00
	OP_DATA_20   = 0x14
	OP_PUSHDATA1 = 0x4c
	OP_PUSHDATA2 = 0x4d
	OP_PUSHDATA4 = 0x4e
	OP_1NEGATE   = 0x4f
	OP_1         = 0x51
	OP_16        = 0x60
	OP_RETURN    = 0x6a
	OP_DUP       = 0x76
	OP_EQUAL     = 0x87
	OP_EQUALVERIFY = 0x88
	OP_HASH160   = 0xa9
	OP_CHECKSIG  = 0xac
	OP_CHECKMULTISIG = 0xae
)

// LockTimeThreshold is the number below which a transaction's LockTime is
// interpreted as a block height, and at or above which it is interpreted as
// a Unix timestamp. This is the same threshold Bitcoin has used since
// genesis: block 500,000,000 lies far in the future relative to any chain's
// real height, so it is unambiguous to split on it.
const LockTimeThreshold = 5e8 // Tue Nov  5 00:53:20 1985 UTC

// WitnessCommitmentMagic is the prefix identifying an OP_RETURN output that
// carries a segregated-witness commitment.
var WitnessCommitmentMagic = []byte{0xaa, 0x21, 0xa9, 0xed}
