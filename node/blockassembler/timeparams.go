// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

// Base values for the height-dependent constants TimeParams derives,
// expressed in seconds. These match the source's MAX_STAKE_LOOKAHEAD /
// BYTECODE_TIME_BUFFER / STAKE_TIME_BUFFER / STAKER_POLLING_PERIOD /
// STAKER_WAIT_FOR_WALID_BLOCK consensus constants.
const (
	baseMaxStakeLookahead          = 14
	baseBytecodeTimeBuffer         = 6
	baseStakeTimeBuffer            = 6
	baseStakerPollingPeriod        = 10
	baseStakerWaitForValidBlock    = 60
	stakerPollingPeriodMinDifficulty = 20
)

// TimeParams holds the height-dependent downscaling of lookahead, polling,
// and buffer constants component C8 is responsible for. The source keeps
// these as function-local statics inside updateMinerParams; here they are
// instance state on the Assembler, refreshed at the top of every
// CreateNewBlock call, the idiomatic substitution the rest of this
// codebase uses wherever upstream C++ relies on a function-local static.
type TimeParams struct {
	timeDownscale uint32

	MaxStakeLookahead       uint32
	BytecodeTimeBuffer      uint32
	StakeTimeBuffer         uint32
	MinerSleep              uint32
	MinerWaitValidBlock     uint32
}

// Update recomputes the derived constants if the height's
// TimestampDownscaleFactor has changed since the last call, and applies the
// minimum-difficulty override to MinerSleep regardless.
func (tp *TimeParams) Update(chainState ChainState, height int32, minDifficulty bool) {
	downscale := chainState.TimestampDownscaleFactor(height)
	if tp.timeDownscale != downscale {
		tp.timeDownscale = downscale

		tp.MaxStakeLookahead = maxU32(baseMaxStakeLookahead/downscale, 1)
		spacing := chainState.TargetSpacing(height)
		if tp.MaxStakeLookahead > spacing {
			tp.MaxStakeLookahead = spacing
		}
		tp.BytecodeTimeBuffer = maxU32(baseBytecodeTimeBuffer/downscale, 1)
		tp.StakeTimeBuffer = maxU32(baseStakeTimeBuffer/downscale, 1)
		tp.MinerSleep = maxU32(baseStakerPollingPeriod/downscale, 1)
		tp.MinerWaitValidBlock = maxU32(baseStakerWaitForValidBlock/downscale, 1)
	}

	if minDifficulty && tp.MinerSleep != stakerPollingPeriodMinDifficulty {
		tp.MinerSleep = stakerPollingPeriodMinDifficulty
	}
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
