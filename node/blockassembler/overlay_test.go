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

// fakeEntry is a minimal MempoolEntry stand-in for exercising the overlay
// and policy helpers without a real mempool collaborator.
type fakeEntry struct {
	hash                   chainhash.Hash
	tx                     *wire.MsgTx
	size, weight           uint64
	fee, sigOps            int64
	sizeAnc                uint64
	feesAnc, sigOpsAnc     int64
	gasPrice               uint64
}

func (f *fakeEntry) Tx() *wire.MsgTx         { return f.tx }
func (f *fakeEntry) Hash() chainhash.Hash    { return f.hash }
func (f *fakeEntry) TxSize() uint64          { return f.size }
func (f *fakeEntry) TxWeight() uint64        { return f.weight }
func (f *fakeEntry) ModifiedFee() int64      { return f.fee }
func (f *fakeEntry) SigOpCost() int64        { return f.sigOps }
func (f *fakeEntry) SizeWithAncestors() uint64 { return f.sizeAnc }
func (f *fakeEntry) ModFeesWithAncestors() int64 { return f.feesAnc }
func (f *fakeEntry) SigOpCostWithAncestors() int64 { return f.sigOpsAnc }
func (f *fakeEntry) GasPrice() uint64        { return f.gasPrice }

func newFakeEntry(name string, size uint64, fee int64) *fakeEntry {
	return &fakeEntry{
		hash:    chainhash.HashH([]byte(name)),
		tx:      wire.NewMsgTx(wire.TxVerRegular),
		size:    size,
		weight:  size * 4,
		fee:     fee,
		sigOps:  1,
		sizeAnc: size,
		feesAnc: fee,
		sigOpsAnc: 1,
	}
}

func TestFeeRateLess(t *testing.T) {
	// 10/100 < 20/100
	assert.True(t, feeRateLess(10, 100, 0, 20, 100, 0))
	assert.False(t, feeRateLess(20, 100, 0, 10, 100, 0))
	// equal fee rates: 10/100 == 20/200, tiebreak on gas price
	assert.True(t, feeRateLess(10, 100, 1, 20, 200, 2))
	assert.False(t, feeRateLess(10, 100, 2, 20, 200, 1))
}

func TestModifiedTxSetInsertUpdateErase(t *testing.T) {
	s := newModifiedTxSet()
	assert.True(t, s.empty())

	child := newFakeEntry("child", 200, 1000)
	parent := newFakeEntry("parent", 100, 500)

	s.insertFresh(child, parent)
	assert.False(t, s.empty())
	assert.True(t, s.contains(child.Hash()))

	m, ok := s.get(child.Hash())
	assert.True(t, ok)
	assert.EqualValues(t, 100, m.sizeWithAncestors)
	assert.EqualValues(t, 500, m.modFeesWithAncestors)

	grandparent := newFakeEntry("grandparent", 50, 250)
	s.updateExisting(child.Hash(), grandparent)

	m, _ = s.get(child.Hash())
	assert.EqualValues(t, 50, m.sizeWithAncestors)
	assert.EqualValues(t, 250, m.modFeesWithAncestors)

	s.erase(child.Hash())
	assert.False(t, s.contains(child.Hash()))
	assert.True(t, s.empty())
}

func TestModifiedTxSetBestOrdersByFeeRate(t *testing.T) {
	s := newModifiedTxSet()

	low := newFakeEntry("low", 1000, 1000)   // rate 1
	high := newFakeEntry("high", 1000, 5000) // rate 5
	mid := newFakeEntry("mid", 1000, 3000)   // rate 3

	// insertFresh requires an "ancestor" to subtract; use a zero-cost one.
	zero := &fakeEntry{hash: chainhash.HashH([]byte("zero"))}
	s.insertFresh(low, zero)
	s.insertFresh(high, zero)
	s.insertFresh(mid, zero)

	best := s.best()
	assert.Equal(t, high.Hash(), best.entry.Hash())
}
