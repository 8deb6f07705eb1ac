// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

import (
	"sort"
	"time"

	"github.com/coriumchain/coriumd/types/chainhash"
)

// maxConsecutiveFailures bounds how many package fit failures (testPackage
// rejections) in a row the selector tolerates before giving up early, the
// same heuristic the source uses to finish quickly once the mempool has a
// lot of entries that no longer fit. Finality failures neither count toward
// it nor reset it.
const maxConsecutiveFailures = 1000

// selector drives component C4, the greedy package selector, for one
// CreateNewBlock call. It owns nothing beyond what it needs for a single
// run: the shared resourceAccountant lives on the Assembler, the
// overlay/failed-set/cursor state lives here.
type selector struct {
	a      *Assembler
	tmpl   *Template
	limits DGPLimits

	nPackagesSelected  int
	nDescendantsUpdated int
}

// run executes addPackageTxs: the two-stream merge of the mempool's native
// ancestor-score ordering and the modified-entry overlay, described in full
// by component C4.
func (s *selector) run(nTimeLimit time.Time) {
	overlay := newModifiedTxSet()
	failed := make(map[chainhash.Hash]struct{})

	base := s.a.mempool.AncestorOrdered()
	nConsecutiveFailed := 0

	for {
		// Advance base past entries that are already included, present
		// in the overlay, or previously failed — all of which mean the
		// cached mapTx statistics for that entry are stale.
		for !base.Done() {
			hash := base.Entry().Hash()
			_, isFailed := failed[hash]
			if overlay.contains(hash) || s.a.ra.contains(hash) || isFailed {
				base.Next()
				continue
			}
			break
		}

		if base.Done() && overlay.empty() {
			return
		}

		var entry MempoolEntry
		var usingModified bool
		var modEntry *ModifiedEntry

		best := overlay.best()
		switch {
		case base.Done():
			entry = best.entry
			modEntry = best
			usingModified = true
		case best != nil && ancestorScoreLess(bestFromMempoolEntry(base.Entry()), best):
			entry = best.entry
			modEntry = best
			usingModified = true
		default:
			entry = base.Entry()
			base.Next()
		}

		var packageSize uint64
		var packageFees int64
		var packageSigOpsCost int64
		if usingModified {
			packageSize = modEntry.sizeWithAncestors
			packageFees = modEntry.modFeesWithAncestors
			packageSigOpsCost = modEntry.sigOpCostWithAncestors
		} else {
			packageSize = entry.SizeWithAncestors()
			packageFees = entry.ModFeesWithAncestors()
			packageSigOpsCost = entry.SigOpCostWithAncestors()
		}

		// Early exit: everything else has a strictly worse fee rate.
		if packageFees < s.a.opts.feeForSize(packageSize) {
			return
		}

		if !testPackage(s.a.ra, packageSize, packageSigOpsCost, s.a.opts.BlockMaxWeight, s.limits.MaxBlockSigOps) {
			if usingModified {
				overlay.erase(entry.Hash())
				failed[entry.Hash()] = struct{}{}
			}
			nConsecutiveFailed++
			if nConsecutiveFailed > maxConsecutiveFailures &&
				s.a.ra.weight > s.a.opts.BlockMaxWeight-reservedBlockWeight {
				return
			}
			continue
		}

		ancestors := s.a.mempool.CalculateMempoolAncestors(entry)
		pkg := make([]MempoolEntry, 0, len(ancestors)+1)
		for _, anc := range ancestors {
			if !s.a.ra.contains(anc.Hash()) {
				pkg = append(pkg, anc)
			}
		}
		pkg = append(pkg, entry)

		if !testPackageTransactions(pkg, s.tmpl.Height, s.tmpl.LockTimeCutoff) {
			if usingModified {
				overlay.erase(entry.Hash())
				failed[entry.Hash()] = struct{}{}
			}
			continue
		}

		nConsecutiveFailed = 0

		sortByAncestorCount(pkg, s.a.mempool)

		for _, tx := range pkg {
			if s.a.vm != nil && s.a.vm.IsContractTx(tx.Tx()) {
				if !s.a.attemptToAddContractToBlock(s.tmpl, tx, nTimeLimit) {
					continue
				}
			} else {
				s.addToBlock(tx)
			}
			overlay.erase(tx.Hash())
		}
		s.nPackagesSelected++

		s.nDescendantsUpdated += s.updatePackagesForAdded(pkg, overlay)
	}
}

// addToBlock commits a plain, non-contract transaction: append it to the
// template and fold its resource consumption into the accountant.
func (s *selector) addToBlock(entry MempoolEntry) {
	s.tmpl.appendTx(entry.Tx(), entry.ModifiedFee(), entry.SigOpCost())
	s.a.ra.add(entry.Hash(), entry.TxWeight(), entry.ModifiedFee(), entry.SigOpCost())

	if s.a.opts.PrintPriority {
		log.Info().
			Str("txid", entry.Hash().String()).
			Int64("fee", entry.ModifiedFee()).
			Uint64("size", entry.TxSize()).
			Msg("included transaction")
		s.a.diagnostics.record("plain", entry.Hash().String(), entry.ModifiedFee(), entry.TxSize(), s.tmpl.Height)
	}
}

// updatePackagesForAdded walks the in-mempool descendants of every
// newly-included transaction and applies their ancestor's contribution to
// the overlay, per component C3.
func (s *selector) updatePackagesForAdded(alreadyAdded []MempoolEntry, overlay *modifiedTxSet) int {
	added := make(map[chainhash.Hash]struct{}, len(alreadyAdded))
	for _, e := range alreadyAdded {
		added[e.Hash()] = struct{}{}
	}

	updated := 0
	for _, it := range alreadyAdded {
		for _, desc := range s.a.mempool.CalculateDescendants(it) {
			if _, already := added[desc.Hash()]; already {
				continue
			}
			updated++
			if overlay.contains(desc.Hash()) {
				overlay.updateExisting(desc.Hash(), it)
			} else {
				overlay.insertFresh(desc, it)
			}
		}
	}
	return updated
}

// sortByAncestorCount orders package by ancestor count ascending, a valid
// topological order: if A depends on B, A's ancestor count is strictly
// greater than B's.
func sortByAncestorCount(pkg []MempoolEntry, mp Mempool) {
	counts := make(map[chainhash.Hash]int, len(pkg))
	for _, e := range pkg {
		counts[e.Hash()] = len(mp.CalculateMempoolAncestors(e))
	}
	sort.SliceStable(pkg, func(i, j int) bool {
		return counts[pkg[i].Hash()] < counts[pkg[j].Hash()]
	})
}

// bestFromMempoolEntry adapts a plain MempoolEntry into the shape
// ancestorScoreLess compares, for the base-stream side of the merge where
// no ModifiedEntry exists.
func bestFromMempoolEntry(e MempoolEntry) *ModifiedEntry {
	return &ModifiedEntry{
		entry:                  e,
		sizeWithAncestors:      e.SizeWithAncestors(),
		modFeesWithAncestors:   e.ModFeesWithAncestors(),
		sigOpCostWithAncestors: e.SigOpCostWithAncestors(),
	}
}
