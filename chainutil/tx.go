/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chainutil

import (
	"github.com/coriumchain/coriumd/types/chainhash"
	"github.com/coriumchain/coriumd/wire"
)

// Tx defines a transaction that provides easier and more efficient
// manipulation of raw transactions, caching the hash on first access so
// repeated lookups (e.g. across the ancestor-feerate selection loop) don't
// re-hash the same transaction over and over.
type Tx struct {
	msgTx         *wire.MsgTx
	txHash        *chainhash.Hash
	txHashWitness *chainhash.Hash
}

// NewTx returns a new instance of a transaction given an underlying
// wire.MsgTx.
func NewTx(msgTx *wire.MsgTx) *Tx {
	return &Tx{msgTx: msgTx}
}

// MsgTx returns the underlying wire.MsgTx for the transaction.
func (t *Tx) MsgTx() *wire.MsgTx {
	return t.msgTx
}

// Hash returns the hash of the transaction, computing and caching it if
// needed.
func (t *Tx) Hash() *chainhash.Hash {
	if t.txHash != nil {
		return t.txHash
	}
	hash := t.msgTx.TxHash()
	t.txHash = &hash
	return t.txHash
}
