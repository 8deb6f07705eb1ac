// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

import (
	"os"

	"github.com/gocarina/gocsv"
)

// PriorityRecord is one row of the -printpriority diagnostic trace: a
// single transaction's admission into the template, in the order the
// greedy selector (or the contract sub-assembler) committed it.
type PriorityRecord struct {
	TxID   string `csv:"txid"`
	Kind   string `csv:"kind"`
	Fee    int64  `csv:"fee"`
	Size   uint64 `csv:"size"`
	Height int32  `csv:"height"`
}

// priorityRecorder accumulates PriorityRecord rows for a single
// CreateNewBlock call. It is nil on an Assembler unless Options.PrintPriority
// is set, so a normal build pays nothing for it.
type priorityRecorder struct {
	rows []PriorityRecord
}

func (r *priorityRecorder) record(kind, txid string, fee int64, size uint64, height int32) {
	if r == nil {
		return
	}
	r.rows = append(r.rows, PriorityRecord{TxID: txid, Kind: kind, Fee: fee, Size: size, Height: height})
}

// Diagnostics returns the priority trace collected during the most recent
// CreateNewBlock call, or nil if Options.PrintPriority was not set.
func (a *Assembler) Diagnostics() []PriorityRecord {
	if a.diagnostics == nil {
		return nil
	}
	return a.diagnostics.rows
}

// SaveDiagnosticsCSV writes the priority trace collected during the most
// recent CreateNewBlock call to path, in the same row-per-transaction CSV
// shape the UTXO collector tooling uses elsewhere in this codebase.
func (a *Assembler) SaveDiagnosticsCSV(path string) error {
	rows := a.Diagnostics()
	if rows == nil {
		return nil
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.MarshalFile(rows, file)
}
