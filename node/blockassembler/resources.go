// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

import "github.com/coriumchain/coriumd/types/chainhash"

// reservedBlockWeight and reservedSigOpsCost are the headroom reserved up
// front for the reward transaction that has not been sized yet when
// selection begins.
const (
	reservedBlockWeight = 4000
	reservedSigOpsCost  = 400
)

// resourceAccountant tracks the running totals a block template accrues as
// transactions are included, and the identity set of what has been
// included so far. It is the Go counterpart of the source's inline
// nBlockWeight/nBlockSigOpsCost/nBlockTx/nFees/inBlock fields, gathered
// into one mutation surface so C4 and C5 share exactly one accounting path
// instead of duplicating counter arithmetic at each call site.
type resourceAccountant struct {
	weight     uint64
	sigOpsCost int64
	txCount    uint64
	fees       int64

	included map[chainhash.Hash]struct{}
}

// newResourceAccountant returns a resourceAccountant reset to its initial
// state.
func newResourceAccountant() *resourceAccountant {
	ra := &resourceAccountant{}
	ra.reset()
	return ra
}

// reset returns the accountant to the state a fresh template build starts
// from: weight and sigops hold only the reward-transaction headroom, and
// nothing is included.
func (ra *resourceAccountant) reset() {
	ra.weight = reservedBlockWeight
	ra.sigOpsCost = reservedSigOpsCost
	ra.txCount = 0
	ra.fees = 0
	ra.included = make(map[chainhash.Hash]struct{})
}

// contains reports whether hash has already been included.
func (ra *resourceAccountant) contains(hash chainhash.Hash) bool {
	_, ok := ra.included[hash]
	return ok
}

// add folds one transaction's resource consumption into the running totals
// and marks it included.
func (ra *resourceAccountant) add(hash chainhash.Hash, weight uint64, fee, sigOpCost int64) {
	ra.weight += weight
	ra.sigOpsCost += sigOpCost
	ra.txCount++
	ra.fees += fee
	ra.included[hash] = struct{}{}
}

// fits reports whether adding addedWeight/addedSigOps would still keep the
// running totals under the given budget. It is the pure predicate C2's
// test_package builds on; resourceAccountant itself never enforces the
// budget, it only reports whether it would be respected.
func (ra *resourceAccountant) fits(addedWeight, maxWeight uint64, addedSigOps, maxSigOps int64) bool {
	return ra.weight+addedWeight < maxWeight && ra.sigOpsCost+addedSigOps < maxSigOps
}
