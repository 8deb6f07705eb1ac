// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coriumchain/coriumd/types/chainhash"
)

func TestResourceAccountantAddAndContains(t *testing.T) {
	ra := newResourceAccountant()
	h := chainhash.HashH([]byte("tx-1"))

	assert.False(t, ra.contains(h))

	ra.add(h, 1000, 50, 4)

	assert.True(t, ra.contains(h))
	assert.EqualValues(t, reservedBlockWeight+1000, ra.weight)
	assert.EqualValues(t, reservedSigOpsCost+4, ra.sigOpsCost)
	assert.EqualValues(t, 50, ra.fees)
	assert.EqualValues(t, 1, ra.txCount)
}

func TestResourceAccountantReset(t *testing.T) {
	ra := newResourceAccountant()
	ra.add(chainhash.HashH([]byte("tx-1")), 1000, 50, 4)

	ra.reset()

	assert.EqualValues(t, reservedBlockWeight, ra.weight)
	assert.EqualValues(t, reservedSigOpsCost, ra.sigOpsCost)
	assert.Zero(t, ra.fees)
	assert.Zero(t, ra.txCount)
	assert.False(t, ra.contains(chainhash.HashH([]byte("tx-1"))))
}

func TestResourceAccountantFits(t *testing.T) {
	tests := []struct {
		name        string
		weight      uint64
		sigOps      int64
		addedWeight uint64
		maxWeight   uint64
		addedSigOps int64
		maxSigOps   int64
		want        bool
	}{
		{name: "fits under both ceilings", weight: 1000, sigOps: 10, addedWeight: 500, maxWeight: 2000, addedSigOps: 5, maxSigOps: 100, want: true},
		{name: "exactly at weight ceiling rejects", weight: 1000, sigOps: 10, addedWeight: 1000, maxWeight: 2000, addedSigOps: 5, maxSigOps: 100, want: false},
		{name: "exactly at sigops ceiling rejects", weight: 1000, sigOps: 10, addedWeight: 500, maxWeight: 2000, addedSigOps: 90, maxSigOps: 100, want: false},
		{name: "over weight ceiling rejects", weight: 1900, sigOps: 10, addedWeight: 200, maxWeight: 2000, addedSigOps: 5, maxSigOps: 100, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ra := newResourceAccountant()
			ra.weight = tt.weight
			ra.sigOpsCost = tt.sigOps

			got := ra.fits(tt.addedWeight, tt.maxWeight, tt.addedSigOps, tt.maxSigOps)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClampBlockMaxWeight(t *testing.T) {
	tests := []struct {
		name     string
		want     uint64
		requested uint64
		dgpMax   uint64
	}{
		{name: "requested below floor clamps up", requested: 1000, dgpMax: 4_000_000, want: reservedBlockWeight},
		{name: "requested above ceiling clamps down", requested: 10_000_000, dgpMax: 4_000_000, want: 4_000_000 - reservedBlockWeight},
		{name: "requested within range passes through", requested: 1_000_000, dgpMax: 4_000_000, want: 1_000_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clampBlockMaxWeight(tt.requested, tt.dgpMax)
			assert.Equal(t, tt.want, got)
		})
	}
}
