// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

// defaultBlockMinFeeRate and defaultBlockMaxWeight mirror the operator
// defaults the config package ships, duplicated here (rather than
// imported, to avoid a dependency from this package back onto config) so
// that constructing an Options by hand in a test still gets sane defaults.
const (
	defaultBlockMinFeeRate = 1000
	defaultBlockMaxWeight  = 3000000
)

// Options carries the assembler's operator-tunable knobs, translated from
// the `-block*`/`-disablecontractstaking`/`-printpriority`/`-staking`
// command-line flags config.BlockAssemblerConfig exposes.
type Options struct {
	// BlockMinFeeRate is blockMinFeeRate: packages below this effective
	// fee rate (in base units per 1000 units of package size, the
	// vsize-equivalent bytes MempoolEntry reports) are never included,
	// and discovering one ends selection entirely.
	BlockMinFeeRate int64

	// BlockMaxWeight is clamped to [4000, dgpMaxBlockWeight-4000] by
	// NewAssembler, exactly as the source's constructor clamps
	// nBlockMaxWeight.
	BlockMaxWeight uint64

	// BlockVersion, when non-zero, overrides the consensus-computed block
	// header version. The override is applied on every network; it is not
	// limited to regtest-equivalent networks.
	BlockVersion int32

	// DisableContractStaking refuses every contract-invoking transaction
	// during C5, independent of gas budgets.
	DisableContractStaking bool

	// PrintPriority logs (and, via the CSV exporter, records) a
	// per-inclusion fee/txid diagnostic line while the greedy selector
	// runs.
	PrintPriority bool

	// Staking reports whether the operator has enabled proof-of-stake
	// block production; CanStake consults it.
	Staking bool
}

// DefaultOptions returns the Options a node without an explicit
// configuration file uses, mirroring the source's DefaultOptions().
func DefaultOptions() Options {
	return Options{
		BlockMinFeeRate: defaultBlockMinFeeRate,
		BlockMaxWeight:  defaultBlockMaxWeight,
	}
}

// clampBlockMaxWeight limits weight to between 4000 and dgpMaxBlockWeight-4000
// for sanity, exactly as the source's constructor does.
func clampBlockMaxWeight(requested, dgpMaxBlockWeight uint64) uint64 {
	max := dgpMaxBlockWeight - reservedBlockWeight
	if requested > max {
		requested = max
	}
	if requested < reservedBlockWeight {
		requested = reservedBlockWeight
	}
	return requested
}

// feeForSize returns the minimum fee, in base units, required for a
// package of the given size not to be filtered by BlockMinFeeRate. Fee
// rates are expressed per chaindata.WitnessScaleFactor*1000 weight units,
// matching Bitcoin-style fee-rate accounting.
func (o Options) feeForSize(size uint64) int64 {
	return o.BlockMinFeeRate * int64(size) / 1000
}
