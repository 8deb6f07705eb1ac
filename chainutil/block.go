/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chainutil

import "github.com/coriumchain/coriumd/wire"

// Block defines a block that provides easier and more efficient access to
// the contained transactions, caching their Tx wrappers on first access.
type Block struct {
	msgBlock     *wire.MsgBlock
	transactions []*Tx
}

// NewBlock returns a new instance of a block given an underlying
// wire.MsgBlock.
func NewBlock(msgBlock *wire.MsgBlock) *Block {
	return &Block{msgBlock: msgBlock}
}

// MsgBlock returns the underlying wire.MsgBlock for the block.
func (b *Block) MsgBlock() *wire.MsgBlock {
	return b.msgBlock
}

// Transactions returns a slice of wrapped transactions for all transactions
// in the block, building and caching the slice on first access.
func (b *Block) Transactions() []*Tx {
	if len(b.transactions) == len(b.msgBlock.Transactions) {
		return b.transactions
	}
	b.transactions = make([]*Tx, len(b.msgBlock.Transactions))
	for i, tx := range b.msgBlock.Transactions {
		b.transactions[i] = NewTx(tx)
	}
	return b.transactions
}
