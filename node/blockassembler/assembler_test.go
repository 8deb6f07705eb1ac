// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coriumchain/coriumd/chaincfg"
	"github.com/coriumchain/coriumd/node/chaindata"
	"github.com/coriumchain/coriumd/types/chainhash"
	"github.com/coriumchain/coriumd/wire"
)

// fakeChainState is the smallest ChainState collaborator that lets
// CreateNewBlock run end to end against an empty mempool.
type fakeChainState struct {
	tip     chaindata.BestState
	subsidy int64
}

func (f *fakeChainState) Tip() *chaindata.BestState                { return &f.tip }
func (f *fakeChainState) Params() *chaincfg.Params                 { return &chaincfg.Params{} }
func (f *fakeChainState) ComputeBlockVersion(int32) int32          { return 1 }
func (f *fakeChainState) GenerateCoinbaseCommitment(*wire.MsgBlock) ([]byte, error) {
	return nil, nil
}
func (f *fakeChainState) GetNextWorkRequired(bool, time.Time) uint32 { return 0x1d00ffff }
func (f *fakeChainState) GetBlockSubsidy(int32) int64                { return f.subsidy }
func (f *fakeChainState) TestBlockValidity(*wire.MsgBlock, bool, bool) error {
	return nil
}
func (f *fakeChainState) AdjustedTime() time.Time      { return time.Now() }
func (f *fakeChainState) GetContractScriptFlags(int32) uint32 { return 0 }
func (f *fakeChainState) DGPLimits() DGPLimits {
	return DGPLimits{
		MaxBlockWeight:    defaultBlockMaxWeight,
		MaxBlockSigOps:    80000,
		SoftBlockGasLimit: 40000000,
		HardBlockGasLimit: 80000000,
		MinGasPrice:       1,
		TxGasLimit:        40000000,
	}
}
func (f *fakeChainState) TimestampDownscaleFactor(int32) uint32 { return 1 }
func (f *fakeChainState) TargetSpacing(int32) uint32            { return 150 }
func (f *fakeChainState) AllowsMinDifficultyBlocks() bool       { return false }
func (f *fakeChainState) IsSignet() bool                        { return false }

// emptyMempoolIterator is always done, the iterator equivalent of an empty
// mempool.
type emptyMempoolIterator struct{}

func (emptyMempoolIterator) Done() bool          { return true }
func (emptyMempoolIterator) Entry() MempoolEntry { return nil }
func (emptyMempoolIterator) Next()               {}

type emptyMempool struct{}

func (emptyMempool) AncestorOrdered() MempoolIterator                          { return emptyMempoolIterator{} }
func (emptyMempool) CalculateDescendants(MempoolEntry) []MempoolEntry          { return nil }
func (emptyMempool) CalculateMempoolAncestors(MempoolEntry) []MempoolEntry     { return nil }

func newTestAssembler(chainState *fakeChainState) *Assembler {
	return NewAssembler(chainState, emptyMempool{}, nil, DefaultOptions())
}

func TestCreateNewBlockProofOfWorkCoinbaseAtIndexZero(t *testing.T) {
	cs := &fakeChainState{subsidy: 5000000000}
	a := newTestAssembler(cs)

	tmpl, fees, err := a.CreateNewBlock(context.Background(), []byte{0x51}, false, nil, time.Now(), time.Time{})
	require.NoError(t, err)
	assert.Zero(t, fees)

	require.Len(t, tmpl.Block.Transactions, 1)
	coinbase := tmpl.Block.Transactions[0]
	require.NotNil(t, coinbase)
	assert.Equal(t, cs.subsidy, coinbase.TxOut[0].Value)
}

func TestCreateNewBlockProofOfStakeCoinbaseNeverNil(t *testing.T) {
	cs := &fakeChainState{subsidy: 5000000000}
	a := newTestAssembler(cs)

	coinstake := wire.NewMsgTx(wire.TxVerRegular)
	coinstake.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.ZeroHash, wire.MaxPrevOutIndex), nil, nil))
	coinstake.AddTxOut(wire.NewTxOut(0, nil))
	coinstake.AddTxOut(wire.NewTxOut(cs.subsidy, []byte{0x51}))

	tmpl, _, err := a.CreateNewBlock(context.Background(), []byte{0x51}, true, coinstake, time.Now(), time.Time{})
	require.NoError(t, err)

	require.Len(t, tmpl.Block.Transactions, 2)

	coinbase := tmpl.Block.Transactions[0]
	require.NotNil(t, coinbase, "coinbase at index 0 must never be nil for a proof-of-stake template")
	assert.Equal(t, int64(0), coinbase.TxOut[0].Value, "proof-of-stake coinbase must pay zero value")

	reward := tmpl.Block.Transactions[1]
	require.NotNil(t, reward)
	assert.Equal(t, cs.subsidy, reward.TxOut[1].Value)

	require.NoError(t, a.RegenerateCommitments(tmpl.Block))
}

func TestCreateNewBlockRequiresCoinstakeForProofOfStake(t *testing.T) {
	cs := &fakeChainState{subsidy: 5000000000}
	a := newTestAssembler(cs)

	_, _, err := a.CreateNewBlock(context.Background(), []byte{0x51}, true, nil, time.Now(), time.Time{})
	assert.Error(t, err)
}
