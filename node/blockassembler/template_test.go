// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/coriumchain/coriumd/wire"
)

func TestRewardTxIndex(t *testing.T) {
	assert.EqualValues(t, 0, rewardTxIndex(false))
	assert.EqualValues(t, 1, rewardTxIndex(true))
}

func TestTemplateAppendTx(t *testing.T) {
	tmpl := &Template{
		Block: wire.NewMsgBlock(&wire.BlockHeader{}),
	}

	tx := wire.NewMsgTx(wire.TxVerRegular)
	tmpl.appendTx(tx, 500, 2)

	assert.Len(t, tmpl.Block.Transactions, 1)
	assert.Equal(t, []int64{500}, tmpl.Fees)
	assert.Equal(t, []int64{2}, tmpl.SigOpsCost)
}

func TestTemplateRewardIndexMatchesProofType(t *testing.T) {
	pow := &Template{IsProofOfStake: false}
	pos := &Template{IsProofOfStake: true}

	if diff := cmp.Diff(0, pow.rewardIndex()); diff != "" {
		t.Errorf("proof-of-work reward index mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(1, pos.rewardIndex()); diff != "" {
		t.Errorf("proof-of-stake reward index mismatch (-want +got):\n%s", diff)
	}
}
