// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

import (
	"time"

	"github.com/coriumchain/coriumd/chainutil"
	"github.com/coriumchain/coriumd/node/chaindata"
	"github.com/coriumchain/coriumd/wire"
)

// testPackage reports whether including a package of the given size and
// sigop cost would keep the accountant strictly under both budgets. It
// preserves the exact strict-inequality predicate of the source's
// TestPackage (rejecting on `>=`, not `>`), per the resolved open question
// in the design notes: one unit of headroom is reserved deliberately and
// must not be optimized away.
func testPackage(ra *resourceAccountant, packageSize uint64, packageSigOpsCost int64, maxWeight uint64, maxSigOps int64) bool {
	return ra.fits(chaindata.WitnessScaleFactor*packageSize, maxWeight, packageSigOpsCost, maxSigOps)
}

// testPackageTransactions reports whether every transaction in package
// satisfies finality at the given height and lock-time cutoff, and passes
// the same context-free sanity checks CheckTransactionSanity applies
// ahead of any full validation: an entry a mempool collaborator somehow
// let through malformed (no inputs/outputs, an out-of-range coinbase
// script length, a duplicate input) must never reach the template.
func testPackageTransactions(pkg []MempoolEntry, height int32, lockTimeCutoff time.Time) bool {
	for _, entry := range pkg {
		if !isFinalTx(entry.Tx(), height, lockTimeCutoff) {
			return false
		}
		if err := chaindata.CheckTransactionSanity(chainutilTx(entry.Tx())); err != nil {
			return false
		}
	}
	return true
}

// isFinalTx adapts chaindata.IsFinalizedTransaction to the raw wire.MsgTx
// the assembler works with, rather than the chainutil.Tx wrapper that API
// expects.
func isFinalTx(tx *wire.MsgTx, height int32, lockTimeCutoff time.Time) bool {
	return chaindata.IsFinalizedTransaction(chainutil.NewTx(tx), height, lockTimeCutoff)
}
