package tx

import (
	go_marginfi "marginfigo"

	"github.com/gagliardetto/solana-go"
	addresslookuptable "github.com/gagliardetto/solana-go/programs/address-lookup-table"
)

type ExtraConfirmationOptions struct {
	OnSignedCb func()
}

type TxSigAndSlot struct {
	TxSig solana.Signature
	Slot  uint64
}

// PackContext carries the already-fetched compilation inputs; nothing in the
// packer or the size probe performs network calls.
type PackContext struct {
	Payer           solana.PublicKey
	RecentBlockhash solana.Hash
	LookupTables    []addresslookuptable.KeyedAddressLookupTable
}

type ITxSender interface {
	Send(
		tx *solana.Transaction,
		opts *go_marginfi.ConfirmOptions,
		preSigned bool,
		extraConfirmationOptions *ExtraConfirmationOptions,
	) (*TxSigAndSlot, error)

	SendTransaction(
		tx *solana.Transaction,
		opts *go_marginfi.ConfirmOptions,
		preSigned bool,
		extraConfirmationOptions *ExtraConfirmationOptions,
	) (*TxSigAndSlot, error)

	GetTransaction(
		ixs []solana.Instruction,
		lookupTableAccounts []addresslookuptable.KeyedAddressLookupTable,
		opts *go_marginfi.ConfirmOptions,
		blockhash string,
		sign bool,
	) (*solana.Transaction, error)

	SendRawTransaction(
		rawTransaction []byte,
		opts *go_marginfi.ConfirmOptions,
	) (*TxSigAndSlot, error)

	GetTimeoutCount() uint64
}

type TxSender struct {
	Wallet solana.Wallet
}
