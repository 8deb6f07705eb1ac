// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindata

import (
	"time"

	"github.com/coriumchain/coriumd/types/chainhash"
)

// BestState houses information about the current best block and other info
// related to the state of the chain as it exists from the point of view of
// the current best block.
//
// The snapshot must be treated as immutable since it may be shared by
// multiple callers building block templates concurrently.
type BestState struct {
	Hash           chainhash.Hash // The hash of the block.
	Height         int32          // The height of the block.
	Bits           uint32         // The difficulty bits of the block.
	IsProofOfStake bool           // Whether the tip was minted via PoS.
	BlockSize      uint64         // The size of the block.
	BlockWeight    uint64         // The weight of the block.
	NumTxns        uint64         // The number of txns in the block.
	TotalTxns      uint64         // The total number of txns in the chain.
	MedianTime     time.Time      // Median time as per CalcPastMedianTime.
}

// NewBestState returns a new best-state snapshot for the given parameters.
func NewBestState(hash chainhash.Hash, height int32, bits uint32, isProofOfStake bool,
	blockSize, blockWeight, numTxns, totalTxns uint64, medianTime time.Time) *BestState {

	return &BestState{
		Hash:           hash,
		Height:         height,
		Bits:           bits,
		IsProofOfStake: isProofOfStake,
		BlockSize:      blockSize,
		BlockWeight:    blockWeight,
		NumTxns:        numTxns,
		TotalTxns:      totalTxns,
		MedianTime:     medianTime,
	}
}
