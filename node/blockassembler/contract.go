// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockassembler

import (
	"time"

	"github.com/coriumchain/coriumd/node/chaindata"
	"github.com/coriumchain/coriumd/wire"
)

// attemptToAddContractToBlock is component C5, the contract sub-assembler.
// It operates on local copies of the weight/sigops counters so that a
// failed attempt leaves nothing behind; only on commit are the Assembler's
// shared accountant and the template mutated.
func (a *Assembler) attemptToAddContractToBlock(tmpl *Template, entry MempoolEntry, nTimeLimit time.Time) bool {
	if !nTimeLimit.IsZero() && !a.chainState.AdjustedTime().Before(nTimeLimit.Add(-time.Duration(a.timeParams.BytecodeTimeBuffer)*time.Second)) {
		return false
	}
	if a.opts.DisableContractStaking {
		return false
	}

	oldStateRoot := a.vm.StateRoot()
	oldUTXORoot := a.vm.UTXORoot()

	scriptFlags := a.chainState.GetContractScriptFlags(tmpl.Height)
	contractTxs, err := a.vm.ExtractContractTransactions(entry.Tx(), tmpl.Block.Transactions, scriptFlags)
	if err != nil {
		log.Info().Err(err).Str("txid", entry.Hash().String()).Msg("attempt to add contract to block: extraction failed")
		return false
	}

	limits := a.chainState.DGPLimits()

	var txGas uint64
	for _, c := range contractTxs {
		txGas += c.Gas
		if txGas > limits.TxGasLimit {
			log.Info().Str("txid", entry.Hash().String()).Msg("attempt to add contract to block: tx gas exceeds tx gas limit")
			return false
		}
		if tmpl.ContractResult.UsedGas+c.Gas > limits.SoftBlockGasLimit {
			log.Info().Str("txid", entry.Hash().String()).Msg("attempt to add contract to block: tx gas would exceed soft block gas limit")
			return false
		}
		if c.GasPrice < limits.MinGasPrice {
			log.Info().Str("txid", entry.Hash().String()).Msg("attempt to add contract to block: gas price below minimum")
			return false
		}
	}

	// hardBlockGasLimit, never the soft limit, since this call is
	// consensus-critical.
	execResult, err := a.vm.Execute(contractTxs, limits.HardBlockGasLimit, a.chainState.Tip().Height)
	if err != nil {
		a.vm.SetStateRoot(oldStateRoot)
		a.vm.SetUTXORoot(oldUTXORoot)
		log.Info().Err(err).Str("txid", entry.Hash().String()).Msg("attempt to add contract to block: execution failed")
		return false
	}

	if tmpl.ContractResult.UsedGas+execResult.UsedGas > limits.SoftBlockGasLimit {
		a.vm.SetStateRoot(oldStateRoot)
		a.vm.SetUTXORoot(oldUTXORoot)
		log.Info().Str("txid", entry.Hash().String()).Msg("attempt to add contract to block: used gas would exceed soft block gas limit")
		return false
	}

	localWeight := a.ra.weight + entry.TxWeight()
	localSigOps := a.ra.sigOpsCost + entry.SigOpCost()
	for _, vt := range execResult.ValueTransfers {
		localWeight += txWeight(vt)
		localSigOps += legacySigOpCost(vt)
	}

	rewardIdx := tmpl.rewardIndex()
	localSigOps -= tmpl.SigOpsCost[rewardIdx]

	rebuiltReward := rebuildRewardTransaction(tmpl.OriginalRewardTx, rewardIdx, a.ra.fees+entry.ModifiedFee(),
		a.chainState.GetBlockSubsidy(tmpl.Height), tmpl.ContractResult.RefundSender+execResult.RefundSender,
		append(append([]*wire.TxOut{}, tmpl.ContractResult.RefundOutputs...), execResult.RefundOutputs...))

	localSigOps += legacySigOpCost(rebuiltReward)

	if localSigOps*chaindata.WitnessScaleFactor > limits.MaxBlockSigOps || localWeight > limits.MaxBlockWeight {
		a.vm.SetStateRoot(oldStateRoot)
		a.vm.SetUTXORoot(oldUTXORoot)
		return false
	}

	// Commit: promote local counters, append transactions, accumulate
	// contract results, and rebuild the reward transaction in place.
	a.ra.weight = localWeight
	a.ra.sigOpsCost = localSigOps
	a.ra.txCount++
	a.ra.fees += entry.ModifiedFee()
	a.ra.included[entry.Hash()] = struct{}{}

	tmpl.appendTx(entry.Tx(), entry.ModifiedFee(), entry.SigOpCost())
	for _, vt := range execResult.ValueTransfers {
		tmpl.appendTx(vt, 0, legacySigOpCost(vt))
		a.ra.txCount++
	}

	tmpl.ContractResult.UsedGas += execResult.UsedGas
	tmpl.ContractResult.RefundSender += execResult.RefundSender
	tmpl.ContractResult.RefundOutputs = append(tmpl.ContractResult.RefundOutputs, execResult.RefundOutputs...)

	tmpl.Block.Transactions[rewardIdx] = rebuiltReward
	tmpl.SigOpsCost[rewardIdx] = legacySigOpCost(rebuiltReward)

	if a.opts.PrintPriority {
		log.Info().Str("txid", entry.Hash().String()).Uint64("usedGas", execResult.UsedGas).Msg("included contract transaction")
		a.diagnostics.record("contract", entry.Hash().String(), entry.ModifiedFee(), entry.TxWeight(), tmpl.Height)
	}

	return true
}
