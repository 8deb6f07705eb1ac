/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package wire

import (
	"time"

	"github.com/coriumchain/coriumd/types/chainhash"
)

// BlockHeader defines information about a block. IsProofOfStake
// distinguishes a PoW-mined header, whose Nonce/Bits are solved by hashpower,
// from a PoS-minted header, whose validity instead rests on the coinstake
// transaction at Transactions[1] of the accompanying block.
type BlockHeader struct {
	Version    int32
	PrevBlock  chainhash.Hash
	MerkleRoot chainhash.Hash
	Timestamp  time.Time
	Bits       uint32
	Nonce      uint32

	// IsProofOfStake marks a header minted by a staking kernel rather than
	// solved by proof-of-work. The coinbase at Transactions[0] pays zero
	// value for such blocks and the stake reward lives in the coinstake
	// transaction at Transactions[1] instead.
	IsProofOfStake bool
}

// BlockVersion is the latest supported block header version.
const BlockVersion int32 = 1
