package priorityFee

import (
	go_marginfi "marginfigo"
	"marginfigo/constants"
	"math"

	"github.com/gagliardetto/solana-go"
	computebudget "github.com/gagliardetto/solana-go/programs/compute-budget"
	"github.com/shopspring/decimal"
)

// PriorityFeeIx builds the compute unit price instruction. A nil fee
// defaults to the minimum representable fee of 1 micro-lamport; the value is
// floored before encoding.
func PriorityFeeIx(microLamportsPerCU *float64) solana.Instruction {
	microLamports := constants.MIN_PRIORITY_FEE_MICRO_LAMPORTS
	if microLamportsPerCU != nil {
		microLamports = uint64(math.Floor(*microLamportsPerCU))
	}
	return computebudget.NewSetComputeUnitPriceInstructionBuilder().
		SetMicroLamports(microLamports).
		Build()
}

// scaledMicroLamportsPerCU converts a fee in SOL into micro-lamports per
// compute unit by spreading the lamport budget over the unit limit.
func scaledMicroLamportsPerCU(feeUi float64, computeUnitLimit uint32) uint64 {
	microLamports := decimal.NewFromFloat(feeUi).
		Mul(decimal.NewFromUint64(constants.LAMPORTS_PER_SOL)).
		Mul(decimal.NewFromInt(1_000_000)).
		Div(decimal.NewFromInt(int64(computeUnitLimit)))
	return uint64(microLamports.Floor().IntPart())
}

// LegacyPriorityFeeIxs converts a UI fee in SOL into a compute unit limit
// and price instruction pair. A fee above constants.MAX_UI_PRIORITY_FEE is
// treated as fat-fingered input and replaced by the 1 micro-lamport default;
// the second return reports whether that fallback fired.
func LegacyPriorityFeeIxs(feeUi *float64, computeUnitLimit *uint32) ([]solana.Instruction, bool) {
	limit := constants.DEFAULT_COMPUTE_UNIT_LIMIT
	if computeUnitLimit != nil && *computeUnitLimit != 0 {
		limit = *computeUnitLimit
	}
	microLamports := constants.MIN_PRIORITY_FEE_MICRO_LAMPORTS
	usedFallback := false
	if feeUi != nil {
		if *feeUi > constants.MAX_UI_PRIORITY_FEE {
			usedFallback = true
		} else {
			microLamports = scaledMicroLamportsPerCU(*feeUi, limit)
		}
	}
	return []solana.Instruction{
		computebudget.NewSetComputeUnitLimitInstructionBuilder().
			SetUnits(limit).
			Build(),
		computebudget.NewSetComputeUnitPriceInstructionBuilder().
			SetMicroLamports(microLamports).
			Build(),
	}, usedFallback
}

// BundleTipIx builds the default collector tip transfer, 100_000 lamports
// unless overridden.
func BundleTipIx(feePayer solana.PublicKey, tipLamports ...uint64) solana.Instruction {
	amount := constants.DEFAULT_BUNDLE_TIP_LAMPORTS
	if len(tipLamports) > 0 {
		amount = tipLamports[0]
	}
	return DefaultTipConfig.TipIx(feePayer, amount)
}

// FeeIxs builds fee instructions from explicit parameters: a compute unit
// price instruction, capped at MaxFeeMicroLamports when one is set, plus a
// tip transfer whenever TipLamports is present.
func FeeIxs(params go_marginfi.FeeParams, tipConfig ...*TipConfig) []solana.Instruction {
	config := DefaultTipConfig
	if len(tipConfig) > 0 && tipConfig[0] != nil {
		config = tipConfig[0]
	}
	microLamportsPerCU := params.MicroLamportsPerCU
	if microLamportsPerCU != nil && params.MaxFeeMicroLamports != nil {
		capped := math.Min(*microLamportsPerCU, float64(*params.MaxFeeMicroLamports))
		microLamportsPerCU = &capped
	}
	ixs := []solana.Instruction{PriorityFeeIx(microLamportsPerCU)}
	if params.TipLamports != nil {
		ixs = append(ixs, config.TipIx(params.FeePayer, *params.TipLamports))
	}
	return ixs
}

type PriorityInstructions struct {
	// nil unless the fee routes through a bundle
	TipIx         solana.Instruction
	PriorityFeeIx solana.Instruction
}

// PriorityIxs routes a UI fee in SOL into the instructions matching the
// broadcast mode: bundles tip a collector the full fee and keep the price
// instruction at the default minimum, rpc and dynamic broadcasts scale the
// fee into the price instruction instead.
func PriorityIxs(
	feePayer solana.PublicKey,
	feeUi float64,
	broadcastMode go_marginfi.BroadcastMode,
	tipConfig ...*TipConfig,
) PriorityInstructions {
	config := DefaultTipConfig
	if len(tipConfig) > 0 && tipConfig[0] != nil {
		config = tipConfig[0]
	}
	if broadcastMode == go_marginfi.BroadcastModeBundle {
		tipLamports := uint64(decimal.NewFromFloat(feeUi).
			Mul(decimal.NewFromUint64(constants.LAMPORTS_PER_SOL)).
			IntPart())
		return PriorityInstructions{
			TipIx:         config.TipIx(feePayer, tipLamports),
			PriorityFeeIx: PriorityFeeIx(nil),
		}
	}
	microLamports := float64(scaledMicroLamportsPerCU(feeUi, constants.DEFAULT_COMPUTE_UNIT_LIMIT))
	return PriorityInstructions{
		PriorityFeeIx: PriorityFeeIx(&microLamports),
	}
}
