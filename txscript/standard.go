/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package txscript

import "github.com/coriumchain/coriumd/types/chainhash"

// Address is the minimal surface the script templates below need from a
// decoded payment address.
type Address interface {
	ScriptAddress() []byte
	IsWitness() bool
	IsScriptHash() bool
}

// PayToAddrScript creates a new script to pay a transaction output to the
// specified address.
func PayToAddrScript(addr Address) ([]byte, error) {
	hash := addr.ScriptAddress()

	switch {
	case addr.IsWitness():
		return NewScriptBuilder().AddOp(OP_0).AddData(hash).Script()
	case addr.IsScriptHash():
		return NewScriptBuilder().
			AddOp(OP_HASH160).AddData(hash).AddOp(OP_EQUAL).Script()
	default:
		return NewScriptBuilder().
			AddOp(OP_DUP).AddOp(OP_HASH160).AddData(hash).
			AddOp(OP_EQUALVERIFY).AddOp(OP_CHECKSIG).Script()
	}
}

// NullDataScript creates a provably-pruneable OP_RETURN script carrying the
// given data, used for witness commitments and similar out-of-band payloads.
func NullDataScript(data []byte) ([]byte, error) {
	return NewScriptBuilder().AddOp(OP_RETURN).AddData(data).Script()
}

// IsPayToScriptHash reports whether script follows the standard
// pay-to-script-hash template: OP_HASH160 <20-byte hash> OP_EQUAL.
func IsPayToScriptHash(script []byte) bool {
	return len(script) == 23 &&
		script[0] == OP_HASH160 &&
		script[1] == OP_DATA_20 &&
		script[22] == OP_EQUAL
}

// IsWitnessCommitment reports whether script is an OP_RETURN output carrying
// a segregated-witness commitment, and if so returns the embedded 32-byte
// commitment hash.
func IsWitnessCommitment(script []byte) (chainhash.Hash, bool) {
	if len(script) != 38 || script[0] != OP_RETURN || script[1] != 0x24 {
		return chainhash.Hash{}, false
	}
	for i, b := range WitnessCommitmentMagic {
		if script[2+i] != b {
			return chainhash.Hash{}, false
		}
	}
	var commitment chainhash.Hash
	copy(commitment[:], script[6:38])
	return commitment, true
}

// GetSigOpCount provides a quick count of the number of signature operations
// in a script. It does not differentiate between spends, pushes that merely
// look like opcodes, or malformed scripts; GetPreciseSigOpCount is the
// P2SH-aware counterpart.
func GetSigOpCount(script []byte) int {
	n := 0
	for i := 0; i < len(script); {
		op := script[i]
		switch {
		case op == OP_CHECKSIG || op == OP_CHECKMULTISIG:
			n++
			i++
		case op < OP_PUSHDATA1:
			i += 1 + int(op)
		case op == OP_PUSHDATA1:
			if i+1 >= len(script) {
				return n
			}
			i += 2 + int(script[i+1])
		case op == OP_PUSHDATA2:
			if i+2 >= len(script) {
				return n
			}
			i += 3 + int(script[i+1]) + int(script[i+2])<<8
		case op == OP_PUSHDATA4:
			if i+4 >= len(script) {
				return n
			}
			i++
		default:
			i++
		}
	}
	return n
}

// GetPreciseSigOpCount counts the number of signature operations in a
// pay-to-script-hash redeem script referenced by sigScript, as opposed to
// the quick heuristic GetSigOpCount uses for non-P2SH outputs.
func GetPreciseSigOpCount(sigScript, pkScript []byte, bip16 bool) int {
	if !bip16 || !IsPayToScriptHash(pkScript) {
		return GetSigOpCount(pkScript)
	}

	// The redeem script is the final push on the signature script's stack.
	pushes := extractDataPushes(sigScript)
	if len(pushes) == 0 {
		return 0
	}
	return GetSigOpCount(pushes[len(pushes)-1])
}

// extractDataPushes returns the literal data items pushed by a signature
// script consisting solely of data pushes, which is the form the redeem
// script push for a P2SH spend always takes.
func extractDataPushes(script []byte) [][]byte {
	var pushes [][]byte
	for i := 0; i < len(script); {
		op := script[i]
		switch {
		case op < OP_PUSHDATA1:
			n := int(op)
			if i+1+n > len(script) {
				return pushes
			}
			pushes = append(pushes, script[i+1:i+1+n])
			i += 1 + n
		case op == OP_PUSHDATA1:
			if i+1 >= len(script) {
				return pushes
			}
			n := int(script[i+1])
			if i+2+n > len(script) {
				return pushes
			}
			pushes = append(pushes, script[i+2:i+2+n])
			i += 2 + n
		default:
			i++
		}
	}
	return pushes
}
