// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsFeeForSize(t *testing.T) {
	o := Options{BlockMinFeeRate: 1000}
	assert.EqualValues(t, 1000, o.feeForSize(1000))
	assert.EqualValues(t, 500, o.feeForSize(500))
	assert.Zero(t, o.feeForSize(0))
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.EqualValues(t, defaultBlockMinFeeRate, o.BlockMinFeeRate)
	assert.EqualValues(t, defaultBlockMaxWeight, o.BlockMaxWeight)
	assert.False(t, o.Staking)
	assert.False(t, o.DisableContractStaking)
}
