package tx

import (
	"github.com/gagliardetto/solana-go"
	addresslookuptable "github.com/gagliardetto/solana-go/programs/address-lookup-table"
)

// BuildTransaction compiles instructions into an unsigned transaction under
// the given payer, blockhash and lookup tables. Account deduplication and
// flag merging happen here, at compile time.
func BuildTransaction(
	instructions []solana.Instruction,
	payer solana.PublicKey,
	blockhash solana.Hash,
	lookupTableAccounts []addresslookuptable.KeyedAddressLookupTable,
) (*solana.Transaction, error) {
	addressTables := make(map[solana.PublicKey]solana.PublicKeySlice)
	for _, table := range lookupTableAccounts {
		addressTables[table.Key] = table.State.Addresses
	}
	transactionBuilder := solana.NewTransactionBuilder().
		SetFeePayer(payer).
		SetRecentBlockHash(blockhash).
		WithOpt(solana.TransactionAddressTables(addressTables))
	for _, instruction := range instructions {
		transactionBuilder.AddInstruction(instruction)
	}
	return transactionBuilder.Build()
}

// TransactionSize returns the exact wire size of the transaction, counting a
// placeholder signature for every required signer that has not signed yet.
func TransactionSize(transaction *solana.Transaction) (int, error) {
	numRequiredSignatures := int(transaction.Message.Header.NumRequiredSignatures)
	if len(transaction.Signatures) < numRequiredSignatures {
		signatures := make([]solana.Signature, numRequiredSignatures)
		copy(signatures, transaction.Signatures)
		transaction.Signatures = signatures
	}
	rawTransaction, err := transaction.MarshalBinary()
	if err != nil {
		return 0, err
	}
	return len(rawTransaction), nil
}

// MeasureTransaction compiles mandatory ++ extra under the pack context and
// reports the exact serialized byte length.
func MeasureTransaction(
	mandatory []solana.Instruction,
	extra []solana.Instruction,
	packContext PackContext,
) (int, error) {
	instructions := make([]solana.Instruction, 0, len(mandatory)+len(extra))
	instructions = append(instructions, mandatory...)
	instructions = append(instructions, extra...)
	transaction, err := BuildTransaction(
		instructions,
		packContext.Payer,
		packContext.RecentBlockhash,
		packContext.LookupTables,
	)
	if err != nil {
		return 0, err
	}
	return TransactionSize(transaction)
}
