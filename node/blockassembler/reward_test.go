// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coriumchain/coriumd/types/chainhash"
	"github.com/coriumchain/coriumd/wire"
)

func newCoinbaseFixture() *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVerRegular)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.ZeroHash, wire.MaxPrevOutIndex), []byte{0x51}, nil))
	tx.AddTxOut(wire.NewTxOut(5_000_000, []byte{0x76, 0xa9}))
	return tx
}

func TestRebuildRewardTransactionValue(t *testing.T) {
	original := newCoinbaseFixture()

	rebuilt := rebuildRewardTransaction(original, 0, 1_000, 5_000_000, 0, nil)

	assert.EqualValues(t, 5_001_000, rebuilt.TxOut[0].Value)
	// original must be untouched.
	assert.EqualValues(t, 5_000_000, original.TxOut[0].Value)
}

func TestRebuildRewardTransactionWithRefundSender(t *testing.T) {
	original := newCoinbaseFixture()

	rebuilt := rebuildRewardTransaction(original, 0, 1_000, 5_000_000, 400, nil)

	assert.EqualValues(t, 5_000_600, rebuilt.TxOut[0].Value)
}

func TestRebuildRewardTransactionAppendsRefundOutputs(t *testing.T) {
	original := newCoinbaseFixture()
	refunds := []*wire.TxOut{
		wire.NewTxOut(111, []byte{0x01}),
		wire.NewTxOut(222, []byte{0x02}),
	}

	rebuilt := rebuildRewardTransaction(original, 0, 0, 5_000_000, 0, refunds)

	assert.Len(t, rebuilt.TxOut, 3)
	assert.EqualValues(t, 111, rebuilt.TxOut[1].Value)
	assert.EqualValues(t, 222, rebuilt.TxOut[2].Value)
	assert.Len(t, original.TxOut, 1)
}

func TestRebuildRewardTransactionCoinstakeIndex(t *testing.T) {
	original := wire.NewMsgTx(wire.TxVerRegular)
	original.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.ZeroHash, 0), nil, nil))
	original.AddTxOut(wire.NewTxOut(0, nil))       // marker output at index 0
	original.AddTxOut(wire.NewTxOut(2_000_000, []byte{0x76}))

	rebuilt := rebuildRewardTransaction(original, 1, 500, 2_000_000, 0, nil)

	assert.EqualValues(t, 0, rebuilt.TxOut[0].Value)
	assert.EqualValues(t, 2_000_500, rebuilt.TxOut[1].Value)
}
