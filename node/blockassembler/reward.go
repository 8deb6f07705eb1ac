// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

import "github.com/coriumchain/coriumd/wire"

// rebuildRewardTransaction is component C6, the reward/refund builder. It is
// the Go counterpart of the source's RebuildRefundTransaction: given the
// original reward transaction (the coinbase or coinstake as it stood before
// any contract inclusion), it returns a fresh transaction with the
// reward-index output's value replaced by subsidy plus accumulated fees
// minus whatever must be refunded to contract-call senders, and with every
// accumulated refund output appended after the original outputs.
//
// original is never mutated; rebuildRewardTransaction always returns a new
// *wire.MsgTx, since the in-flight original may still be referenced
// elsewhere in the template being built (e.g. as tmpl.OriginalRewardTx).
func rebuildRewardTransaction(original *wire.MsgTx, rewardIdx int, totalFees int64, subsidy int64,
	refundSender int64, refundOutputs []*wire.TxOut) *wire.MsgTx {

	rebuilt := original.Copy()

	rebuilt.TxOut[rewardIdx].Value = subsidy + totalFees - refundSender

	for _, out := range refundOutputs {
		rebuilt.AddTxOut(wire.NewTxOut(out.Value, out.PkScript))
	}

	return rebuilt
}
