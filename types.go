package go_marginfi

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

type BroadcastMode string

const (
	BroadcastModeBundle  BroadcastMode = "bundle"
	BroadcastModeRpc     BroadcastMode = "rpc"
	BroadcastModeDynamic BroadcastMode = "dynamic"
)

type ConfirmOptions struct {
	rpc.TransactionOpts
	Commitment rpc.CommitmentType
}

type BaseTxParams struct {
	ComputeUnits      uint64
	ComputeUnitsPrice uint64
}

type ProcessingTxParams struct {
	UseSimulatedComputeUnits     *bool
	ComputeUnitsBufferMultiplier *float64
	GetCUPriceFromComputeUnits   func(computeUnits uint64) uint64
}

type TxParams struct {
	BaseTxParams
	ProcessingTxParams
}

type FeeParams struct {
	/// priority fee per compute unit, in micro-lamports
	MicroLamportsPerCU *float64
	/// flat bundle tip, in lamports
	TipLamports *uint64
	/// fee payer for tip transfers
	FeePayer solana.PublicKey
	/// clamp any computed priority fee to this value, in micro-lamports
	MaxFeeMicroLamports *uint64
}
