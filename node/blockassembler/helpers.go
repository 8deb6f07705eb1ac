// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

import (
	"github.com/coriumchain/coriumd/chainutil"
	"github.com/coriumchain/coriumd/node/chaindata"
	"github.com/coriumchain/coriumd/types/chainhash"
	"github.com/coriumchain/coriumd/wire"
)

// chainutilTx wraps a raw wire.MsgTx for the handful of chaindata/txscript
// helpers that expect the chainutil.Tx interface.
func chainutilTx(tx *wire.MsgTx) *chainutil.Tx {
	return chainutil.NewTx(tx)
}

// txWeight returns a transaction's block weight: its stripped size scaled
// by the witness scale factor, plus one weight unit per witness byte. The
// assembler never receives witness-carrying candidate transactions from a
// conforming mempool collaborator with any complexity beyond this
// definition, so no separate "total size" accounting is kept.
func txWeight(tx *wire.MsgTx) uint64 {
	base := tx.SerializeSizeStripped()
	total := tx.SerializeSize()
	return uint64(base*(chaindata.WitnessScaleFactor-1) + total)
}

// legacySigOpCost returns the legacy (non-witness-scaled) signature
// operation count for tx.
func legacySigOpCost(tx *wire.MsgTx) int64 {
	return int64(chaindata.CountSigOps(chainutilTx(tx)))
}

// merkleRoot computes the Merkle root of a transaction list.
func merkleRoot(txs []*wire.MsgTx) chainhash.Hash {
	leaves := make([]chainhash.Hash, len(txs))
	for i, tx := range txs {
		leaves[i] = tx.TxHash()
	}
	return chainhash.MerkleTreeRoot(leaves)
}
