// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package chaindata

import (
	"fmt"
	"math"
	"time"

	"github.com/coriumchain/coriumd/chainutil"
	"github.com/coriumchain/coriumd/txscript"
	"github.com/coriumchain/coriumd/types/chainhash"
	"github.com/coriumchain/coriumd/wire"
)

const (
	// MinCoinbaseScriptLen is the minimum length a coinbase script can be.
	MinCoinbaseScriptLen = 2

	// MaxCoinbaseScriptLen is the maximum length a coinbase script can be.
	MaxCoinbaseScriptLen = 100
)

// isNullOutpoint determines whether or not a previous transaction output
// point is set.
func isNullOutpoint(outpoint *wire.OutPoint) bool {
	return outpoint.Index == math.MaxUint32 && outpoint.Hash == chainhash.ZeroHash
}

// IsCoinBaseTx determines whether or not a transaction is a coinbase. A
// coinbase is a special transaction created by miners that has no real
// inputs. This is represented in the chain by a transaction with a single
// input that has a previous output index set to the maximum value along
// with a zero hash.
//
// This function only differs from IsCoinBase in that it works with a raw
// wire transaction as opposed to a higher level chainutil transaction.
func IsCoinBaseTx(msgTx *wire.MsgTx) bool {
	if len(msgTx.TxIn) != 1 {
		return false
	}

	prevOut := &msgTx.TxIn[0].PreviousOutPoint
	return prevOut.Index == math.MaxUint32 && prevOut.Hash == chainhash.ZeroHash
}

// IsCoinBase determines whether or not a transaction is a coinbase.
func IsCoinBase(tx *chainutil.Tx) bool {
	return IsCoinBaseTx(tx.MsgTx())
}

// IsFinalizedTransaction determines whether or not a transaction is
// finalized at the given block height and block time. A transaction is
// final when its LockTime is zero, when it has already passed (as either a
// block height or Unix timestamp, depending on whether it falls under
// txscript.LockTimeThreshold), or when every input's sequence number is
// maxed out even though the locktime itself hasn't passed yet.
func IsFinalizedTransaction(tx *chainutil.Tx, blockHeight int32, blockTime time.Time) bool {
	msgTx := tx.MsgTx()

	lockTime := msgTx.LockTime
	if lockTime == 0 {
		return true
	}

	var blockTimeOrHeight int64
	if lockTime < txscript.LockTimeThreshold {
		blockTimeOrHeight = int64(blockHeight)
	} else {
		blockTimeOrHeight = blockTime.Unix()
	}

	if int64(lockTime) < blockTimeOrHeight {
		return true
	}

	// At this point the transaction's locktime hasn't occurred yet, but it
	// might still be finalized if every input's sequence number is maxed
	// out.
	for _, txIn := range msgTx.TxIn {
		if txIn.Sequence != math.MaxUint32 {
			return false
		}
	}

	return true
}

// CheckTransactionSanity performs preliminary, context-free checks on a
// transaction to ensure it is sane before it is ever considered for
// inclusion in a block template.
func CheckTransactionSanity(tx *chainutil.Tx) error {
	msgTx := tx.MsgTx()
	if len(msgTx.TxIn) == 0 {
		return NewRuleError(ErrNoTxInputs, "transaction has no inputs")
	}
	if len(msgTx.TxOut) == 0 {
		return NewRuleError(ErrNoTxOutputs, "transaction has no outputs")
	}

	serializedTxSize := msgTx.SerializeSizeStripped()
	if serializedTxSize > MaxBlockBaseSize {
		str := fmt.Sprintf("serialized transaction is too big - got %d, max %d",
			serializedTxSize, MaxBlockBaseSize)
		return NewRuleError(ErrTxTooBig, str)
	}

	var totalOut int64
	for _, txOut := range msgTx.TxOut {
		if txOut.Value < 0 {
			str := fmt.Sprintf("transaction output has negative value of %v", txOut.Value)
			return NewRuleError(ErrBadTxOutValue, str)
		}
		if txOut.Value > chainutil.MaxSatoshi {
			str := fmt.Sprintf("transaction output value of %v is higher than max allowed value of %v",
				txOut.Value, chainutil.MaxSatoshi)
			return NewRuleError(ErrBadTxOutValue, str)
		}

		lastTotal := totalOut
		totalOut += txOut.Value
		if totalOut < lastTotal || totalOut > chainutil.MaxSatoshi {
			str := fmt.Sprintf("total value of all transaction outputs exceeds max allowed value of %v",
				chainutil.MaxSatoshi)
			return NewRuleError(ErrBadTxOutValue, str)
		}
	}

	existingTxOut := make(map[wire.OutPoint]struct{}, len(msgTx.TxIn))
	for _, txIn := range msgTx.TxIn {
		if _, exists := existingTxOut[txIn.PreviousOutPoint]; exists {
			return NewRuleError(ErrDuplicateTxInputs, "transaction contains duplicate inputs")
		}
		existingTxOut[txIn.PreviousOutPoint] = struct{}{}
	}

	if IsCoinBase(tx) {
		slen := len(msgTx.TxIn[0].SignatureScript)
		if slen < MinCoinbaseScriptLen || slen > MaxCoinbaseScriptLen {
			str := fmt.Sprintf("coinbase transaction script length of %d is out of range (min: %d, max: %d)",
				slen, MinCoinbaseScriptLen, MaxCoinbaseScriptLen)
			return NewRuleError(ErrBadCoinbaseScriptLen, str)
		}
	} else {
		for _, txIn := range msgTx.TxIn {
			if isNullOutpoint(&txIn.PreviousOutPoint) {
				return NewRuleError(ErrBadTxInput,
					"transaction input refers to previous output that is null")
			}
		}
	}

	return nil
}

// CountSigOps returns the number of signature operations for all
// transaction input and output scripts in the provided transaction, using
// the quicker, imprecise, signature-operation counting mechanism.
func CountSigOps(tx *chainutil.Tx) int {
	msgTx := tx.MsgTx()

	totalSigOps := 0
	for _, txIn := range msgTx.TxIn {
		totalSigOps += txscript.GetSigOpCount(txIn.SignatureScript)
	}
	for _, txOut := range msgTx.TxOut {
		totalSigOps += txscript.GetSigOpCount(txOut.PkScript)
	}
	return totalSigOps
}
