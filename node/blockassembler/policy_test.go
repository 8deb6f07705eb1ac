// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/coriumchain/coriumd/types/chainhash"
	"github.com/coriumchain/coriumd/wire"
)

func TestTestPackageStrictInequality(t *testing.T) {
	ra := newResourceAccountant()
	ra.weight = 0
	ra.sigOpsCost = 0

	// package weight exactly equal to the ceiling must be rejected.
	assert.False(t, testPackage(ra, 1000, 0, 4000, 100))
	// one unit under the ceiling must be accepted.
	assert.True(t, testPackage(ra, 999, 0, 4000, 100))
}

func TestTestPackageTransactionsRejectsNonFinal(t *testing.T) {
	finalTx := wire.NewMsgTx(wire.TxVerRegular)
	finalTx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.ZeroHash, 0), nil, nil))
	finalTx.AddTxOut(wire.NewTxOut(1, []byte{0x51}))

	nonFinalTx := wire.NewMsgTx(wire.TxVerTimeLock)
	nonFinalTx.LockTime = 500_000
	nonFinalIn := wire.NewTxIn(wire.NewOutPoint(&chainhash.ZeroHash, 0), nil, nil)
	nonFinalIn.Sequence = 0
	nonFinalTx.AddTxIn(nonFinalIn)

	height := int32(100)
	cutoff := time.Unix(0, 0)

	pkg := []MempoolEntry{
		&fakeEntry{hash: chainhash.HashH([]byte("final")), tx: finalTx},
	}
	assert.True(t, testPackageTransactions(pkg, height, cutoff))

	pkg = append(pkg, &fakeEntry{hash: chainhash.HashH([]byte("nonfinal")), tx: nonFinalTx})
	assert.False(t, testPackageTransactions(pkg, height, cutoff))
}
