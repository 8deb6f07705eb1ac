// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

import (
	"sort"

	"github.com/coriumchain/coriumd/types/chainhash"
)

// ModifiedEntry is a mempool entry whose ancestor-package statistics have
// been reduced because some of its ancestors have already been placed in
// the block. It exists only while the entry is still a selection
// candidate and at least one of its ancestors is in-block; once it itself
// is included, it is erased from the overlay.
type ModifiedEntry struct {
	entry MempoolEntry

	// sizeWithAncestors, modFeesWithAncestors and sigOpCostWithAncestors
	// start out equal to entry's own *WithAncestors figures and are
	// decremented every time one more of entry's ancestors is included.
	sizeWithAncestors      uint64
	modFeesWithAncestors   int64
	sigOpCostWithAncestors int64
}

// subtractAncestor removes one now-included ancestor's contribution from a
// ModifiedEntry's package statistics.
func (m *ModifiedEntry) subtractAncestor(ancestor MempoolEntry) {
	m.sizeWithAncestors -= ancestor.TxSize()
	m.modFeesWithAncestors -= ancestor.ModifiedFee()
	m.sigOpCostWithAncestors -= ancestor.SigOpCost()
}

// modifiedTxSet is the overlay described by component C3: an identity
// index (for erase/contains/update) plus a best-first ordering by the same
// ancestor_score_or_gas_price comparator the mempool's own index uses. A
// sorted slice rebuilt lazily on read stands in for the source's
// boost::multi_index container — any structure exposing both orderings
// suffices, and a lazy rebuild keeps the common case (many subtractAncestor
// calls between reads) cheap without hand-rolling a balanced tree.
type modifiedTxSet struct {
	byHash map[chainhash.Hash]*ModifiedEntry

	ordered []*ModifiedEntry
	dirty   bool
}

// newModifiedTxSet returns an empty overlay.
func newModifiedTxSet() *modifiedTxSet {
	return &modifiedTxSet{byHash: make(map[chainhash.Hash]*ModifiedEntry)}
}

// get returns the overlay record for hash, and whether it exists.
func (s *modifiedTxSet) get(hash chainhash.Hash) (*ModifiedEntry, bool) {
	m, ok := s.byHash[hash]
	return m, ok
}

// contains reports whether hash has an overlay record.
func (s *modifiedTxSet) contains(hash chainhash.Hash) bool {
	_, ok := s.byHash[hash]
	return ok
}

// insertFresh creates a new overlay record for entry, seeded from entry's
// own current ancestor statistics, then applies ancestor's subtraction.
// Used the first time one of entry's ancestors is included.
func (s *modifiedTxSet) insertFresh(entry MempoolEntry, ancestor MempoolEntry) {
	m := &ModifiedEntry{
		entry:                  entry,
		sizeWithAncestors:      entry.SizeWithAncestors(),
		modFeesWithAncestors:   entry.ModFeesWithAncestors(),
		sigOpCostWithAncestors: entry.SigOpCostWithAncestors(),
	}
	m.subtractAncestor(ancestor)
	s.byHash[entry.Hash()] = m
	s.dirty = true
}

// updateExisting subtracts one more included ancestor's contribution from
// an overlay record that already exists for hash.
func (s *modifiedTxSet) updateExisting(hash chainhash.Hash, ancestor MempoolEntry) {
	m, ok := s.byHash[hash]
	if !ok {
		return
	}
	m.subtractAncestor(ancestor)
	s.dirty = true
}

// erase removes hash's overlay record, if any.
func (s *modifiedTxSet) erase(hash chainhash.Hash) {
	if _, ok := s.byHash[hash]; ok {
		delete(s.byHash, hash)
		s.dirty = true
	}
}

// empty reports whether the overlay holds no records.
func (s *modifiedTxSet) empty() bool {
	return len(s.byHash) == 0
}

// best returns the overlay's highest-scoring record by
// ancestor_score_or_gas_price, or nil if the overlay is empty.
func (s *modifiedTxSet) best() *ModifiedEntry {
	s.ensureOrdered()
	if len(s.ordered) == 0 {
		return nil
	}
	return s.ordered[0]
}

// ensureOrdered rebuilds the best-first ordering if records have changed
// since the last rebuild.
func (s *modifiedTxSet) ensureOrdered() {
	if !s.dirty && len(s.ordered) == len(s.byHash) {
		return
	}
	s.ordered = s.ordered[:0]
	for _, m := range s.byHash {
		s.ordered = append(s.ordered, m)
	}
	sort.Slice(s.ordered, func(i, j int) bool {
		return ancestorScoreLess(s.ordered[j], s.ordered[i])
	})
	s.dirty = false
}

// ancestorScoreLess reports whether a's ancestor_score_or_gas_price ranks
// below b's: lower effective ancestor fee rate first, contract
// transactions tiebroken/ordered by gas price, matching the comparator the
// real mempool index uses so the two-stream merge in the selector stays
// monotonic.
func ancestorScoreLess(a, b *ModifiedEntry) bool {
	return feeRateLess(a.modFeesWithAncestors, a.sizeWithAncestors, a.entry.GasPrice(),
		b.modFeesWithAncestors, b.sizeWithAncestors, b.entry.GasPrice())
}

// feeRateLess implements the ancestor_score_or_gas_price total order on
// (fee_rate, gas_price_if_contract): compare fee rates as a cross
// multiplication to avoid floating-point division, tiebreaking on gas
// price when the fee rates are exactly equal.
func feeRateLess(feesA int64, sizeA uint64, gasPriceA uint64, feesB int64, sizeB uint64, gasPriceB uint64) bool {
	lhs := feesA * int64(sizeB)
	rhs := feesB * int64(sizeA)
	if lhs != rhs {
		return lhs < rhs
	}
	return gasPriceA < gasPriceB
}
