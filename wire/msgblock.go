/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package wire

// defaultTransactionAlloc is the default size used for the backing array of
// a block's transaction slice.
const defaultTransactionAlloc = 2048

// MaxBlockPayload is the maximum permitted size, in bytes, of a serialized
// block.
const MaxBlockPayload = 4000000

// MsgBlock represents a block: a header plus the ordered list of
// transactions it contains. By convention Transactions[0] is the coinbase;
// for proof-of-stake blocks Transactions[1] is the coinstake.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
}

// NewMsgBlock returns a new block message with the given header and no
// transactions.
func NewMsgBlock(header *BlockHeader) *MsgBlock {
	return &MsgBlock{
		Header:       *header,
		Transactions: make([]*MsgTx, 0, defaultTransactionAlloc),
	}
}

// AddTransaction adds a transaction to the message.
func (msg *MsgBlock) AddTransaction(tx *MsgTx) error {
	msg.Transactions = append(msg.Transactions, tx)
	return nil
}

// ClearTransactions removes all transactions from the message.
func (msg *MsgBlock) ClearTransactions() {
	msg.Transactions = make([]*MsgTx, 0, defaultTransactionAlloc)
}

// SerializeSizeStripped returns the serialized size of the block without
// accounting for any witness data present in its transactions.
func (msg *MsgBlock) SerializeSizeStripped() int {
	n := 80 // fixed-size header fields
	n += VarIntSerializeSize(uint64(len(msg.Transactions)))
	for _, tx := range msg.Transactions {
		n += tx.SerializeSizeStripped()
	}
	return n
}
