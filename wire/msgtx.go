/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package wire

import (
	"bytes"
	"encoding/binary"
	"strconv"

	"github.com/coriumchain/coriumd/types/chainhash"
)

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion = 1

	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// MaxPrevOutIndex is the maximum index the index field of a previous
	// outpoint can be.
	MaxPrevOutIndex uint32 = 0xffffffff

	// SequenceLockTimeDisabled is a flag that, if set on a transaction
	// input's sequence number, the sequence number will not be interpreted
	// as a relative locktime.
	SequenceLockTimeDisabled = 1 << 31

	// SequenceLockTimeIsSeconds is a flag that, if set on a transaction
	// input's sequence number, the relative locktime has units of 512
	// seconds.
	SequenceLockTimeIsSeconds = 1 << 22

	// SequenceLockTimeMask extracts the relative locktime when masked
	// against the transaction input's sequence number.
	SequenceLockTimeMask = 0x0000ffff

	// SequenceLockTimeGranularity is the defined time based granularity for
	// seconds-based relative time locks. Enforced relative locktimes are
	// multiples of 1 << SequenceLockTimeGranularity seconds.
	SequenceLockTimeGranularity = 9
)

// TxVersion values beyond the plain regular transaction. TxVerTimeLock marks
// a transaction whose LockTime is an absolute finality cutoff rather than a
// relative sequence lock; TxVerRefundableTimeLock marks a contract-refund
// output carrier that is always considered final regardless of LockTime.
const (
	TxVerRegular            int32 = 1
	TxVerTimeLock           int32 = 2
	TxVerRefundableTimeLock int32 = 3
)

// OutPoint defines a data type that is used to track previous transaction
// outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new transaction outpoint with the provided hash and
// index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{Hash: *hash, Index: index}
}

// String returns the outpoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	buf := make([]byte, 2*chainhash.HashSize+1, 2*chainhash.HashSize+1+10)
	copy(buf, o.Hash.String())
	buf[2*chainhash.HashSize] = ':'
	buf = strconv.AppendUint(buf, uint64(o.Index), 10)
	return string(buf)
}

// TxIn defines a transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Witness          TxWitness
	Sequence         uint32

	// Age is the number of blocks between the height at which the
	// referenced output was created and the height at which this input is
	// being spent. It is populated by the chain state collaborator while
	// checking transaction inputs and is not part of the serialized form.
	Age int32
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction input, not counting witness data.
func (t *TxIn) SerializeSize() int {
	return 40 + VarIntSerializeSize(uint64(len(t.SignatureScript))) + len(t.SignatureScript)
}

// NewTxIn returns a new transaction input with the provided previous
// outpoint and signature script, defaulting Sequence to MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte, witness [][]byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Witness:          witness,
		Sequence:         MaxTxInSequenceNum,
	}
}

// TxWitness defines the witness for a TxIn. A witness is a stack of data
// pushes.
type TxWitness [][]byte

// SerializeSize returns the number of bytes it would take to serialize the
// transaction input's witness.
func (t TxWitness) SerializeSize() int {
	n := VarIntSerializeSize(uint64(len(t)))
	for _, item := range t {
		n += VarIntSerializeSize(uint64(len(item)))
		n += len(item)
	}
	return n
}

// TxOut defines a transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction output.
func (t *TxOut) SerializeSize() int {
	return 8 + VarIntSerializeSize(uint64(len(t.PkScript))) + len(t.PkScript)
}

// NewTxOut returns a new transaction output with the provided value and
// public key script.
func NewTxOut(value int64, pkScript []byte) *TxOut {
	return &TxOut{Value: value, PkScript: pkScript}
}

// MsgTx represents a transaction. Use AddTxIn and AddTxOut to build up the
// list of transaction inputs and outputs.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// NewMsgTx returns a new transaction message with the given version. Txin
// and Txout are allocated lazily on the first AddTxIn/AddTxOut call.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{Version: version}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// HasWitness reports whether any input carries segregated witness data.
func (msg *MsgTx) HasWitness() bool {
	for _, txIn := range msg.TxIn {
		if len(txIn.Witness) > 0 {
			return true
		}
	}
	return false
}

// SerializeSizeStripped returns the serialized size of the transaction
// without accounting for any witness data present on its inputs, which is
// the size consensus rules measure a transaction's "base size" by.
func (msg *MsgTx) SerializeSizeStripped() int {
	n := 8 + VarIntSerializeSize(uint64(len(msg.TxIn))) + VarIntSerializeSize(uint64(len(msg.TxOut)))
	for _, txIn := range msg.TxIn {
		n += txIn.SerializeSize()
	}
	for _, txOut := range msg.TxOut {
		n += txOut.SerializeSize()
	}
	return n
}

// SerializeSize returns the serialized size of the transaction, including
// witness data on its inputs when present.
func (msg *MsgTx) SerializeSize() int {
	n := msg.SerializeSizeStripped()
	if msg.HasWitness() {
		n += len(witnessMarkerBytes)
		for _, txIn := range msg.TxIn {
			n += txIn.Witness.SerializeSize()
		}
	}
	return n
}

var witnessMarkerBytes = []byte{0x00, 0x01}

// Copy creates a deep copy of the transaction so that callers may mutate the
// returned value without affecting the original.
func (msg *MsgTx) Copy() *MsgTx {
	newTx := &MsgTx{
		Version:  msg.Version,
		LockTime: msg.LockTime,
		TxIn:     make([]*TxIn, len(msg.TxIn)),
		TxOut:    make([]*TxOut, len(msg.TxOut)),
	}
	for i, txIn := range msg.TxIn {
		newIn := *txIn
		newIn.SignatureScript = append([]byte(nil), txIn.SignatureScript...)
		if txIn.Witness != nil {
			newWitness := make(TxWitness, len(txIn.Witness))
			for j, item := range txIn.Witness {
				newWitness[j] = append([]byte(nil), item...)
			}
			newIn.Witness = newWitness
		}
		newTx.TxIn[i] = &newIn
	}
	for i, txOut := range msg.TxOut {
		newOut := *txOut
		newOut.PkScript = append([]byte(nil), txOut.PkScript...)
		newTx.TxOut[i] = &newOut
	}
	return newTx
}

// serializeNoWitness writes the non-witness encoding of the transaction,
// which is the form hashed to produce a transaction's identifying hash.
func (msg *MsgTx) serializeNoWitness(w *bytes.Buffer) {
	var scratch [8]byte

	binary.LittleEndian.PutUint32(scratch[:4], uint32(msg.Version))
	w.Write(scratch[:4])

	writeVarInt(w, uint64(len(msg.TxIn)))
	for _, ti := range msg.TxIn {
		w.Write(ti.PreviousOutPoint.Hash[:])
		binary.LittleEndian.PutUint32(scratch[:4], ti.PreviousOutPoint.Index)
		w.Write(scratch[:4])
		writeVarInt(w, uint64(len(ti.SignatureScript)))
		w.Write(ti.SignatureScript)
		binary.LittleEndian.PutUint32(scratch[:4], ti.Sequence)
		w.Write(scratch[:4])
	}

	writeVarInt(w, uint64(len(msg.TxOut)))
	for _, to := range msg.TxOut {
		binary.LittleEndian.PutUint64(scratch[:8], uint64(to.Value))
		w.Write(scratch[:8])
		writeVarInt(w, uint64(len(to.PkScript)))
		w.Write(to.PkScript)
	}

	binary.LittleEndian.PutUint32(scratch[:4], msg.LockTime)
	w.Write(scratch[:4])
}

// writeVarInt writes val to w using the standard CompactSize encoding.
func writeVarInt(w *bytes.Buffer, val uint64) {
	switch {
	case val < 0xfd:
		w.WriteByte(byte(val))
	case val <= 0xffff:
		w.WriteByte(0xfd)
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(val))
		w.Write(b[:])
	case val <= 0xffffffff:
		w.WriteByte(0xfe)
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(val))
		w.Write(b[:])
	default:
		w.WriteByte(0xff)
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], val)
		w.Write(b[:])
	}
}

// TxHash computes the double-SHA256 hash of the non-witness serialization of
// the transaction, which is the hash used to identify it on-chain.
func (msg *MsgTx) TxHash() chainhash.Hash {
	var buf bytes.Buffer
	msg.serializeNoWitness(&buf)
	return chainhash.DoubleHashH(buf.Bytes())
}
