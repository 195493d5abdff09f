package web3

import (
	"github.com/gagliardetto/solana-go"
	addresslookuptable "github.com/gagliardetto/solana-go/programs/address-lookup-table"
	"github.com/go-errors/errors"
)

type TransactionMessage struct {
	PayerKey        solana.PublicKey
	Instructions    []solana.Instruction
	RecentBlockhash solana.Hash
}

// Decompile rebuilds the explicit instruction list of a compiled message.
// Addresses loaded through lookup tables are resolved from the supplied
// table contents; a lookup referencing a table that is missing from the
// supplied set is an error.
func Decompile(
	message *solana.Message,
	addressLookupTableAccounts []addresslookuptable.KeyedAddressLookupTable,
) (*TransactionMessage, error) {
	numRequiredSignatures := int(message.Header.NumRequiredSignatures)
	numReadonlySignedAccounts := int(message.Header.NumReadonlySignedAccounts)
	numReadonlyUnsignedAccounts := int(message.Header.NumReadonlyUnsignedAccounts)
	numStaticAccounts := len(message.AccountKeys)

	if numRequiredSignatures == 0 || numStaticAccounts == 0 {
		return nil, errors.New("message has no account keys")
	}

	tables := make(map[solana.PublicKey]solana.PublicKeySlice)
	for _, table := range addressLookupTableAccounts {
		tables[table.Key] = table.State.Addresses
	}

	type resolvedKey struct {
		key      solana.PublicKey
		signer   bool
		writable bool
	}
	var accountKeys []resolvedKey
	for idx, key := range message.AccountKeys {
		var writable bool
		if idx < numRequiredSignatures {
			writable = idx < numRequiredSignatures-numReadonlySignedAccounts
		} else {
			writable = idx < numStaticAccounts-numReadonlyUnsignedAccounts
		}
		accountKeys = append(accountKeys, resolvedKey{
			key:      key,
			signer:   idx < numRequiredSignatures,
			writable: writable,
		})
	}
	for _, lookup := range message.AddressTableLookups {
		addresses, exists := tables[lookup.AccountKey]
		if !exists {
			return nil, errors.Errorf("missing lookup table %s", lookup.AccountKey)
		}
		for _, tableIdx := range lookup.WritableIndexes {
			if int(tableIdx) >= len(addresses) {
				return nil, errors.Errorf("lookup index %d out of range for table %s", tableIdx, lookup.AccountKey)
			}
			accountKeys = append(accountKeys, resolvedKey{key: addresses[tableIdx], writable: true})
		}
	}
	for _, lookup := range message.AddressTableLookups {
		addresses, exists := tables[lookup.AccountKey]
		if !exists {
			return nil, errors.Errorf("missing lookup table %s", lookup.AccountKey)
		}
		for _, tableIdx := range lookup.ReadonlyIndexes {
			if int(tableIdx) >= len(addresses) {
				return nil, errors.Errorf("lookup index %d out of range for table %s", tableIdx, lookup.AccountKey)
			}
			accountKeys = append(accountKeys, resolvedKey{key: addresses[tableIdx]})
		}
	}

	var instructions []solana.Instruction
	for _, compiledIx := range message.Instructions {
		if int(compiledIx.ProgramIDIndex) >= numStaticAccounts {
			return nil, errors.Errorf("program id index %d is not a static account", compiledIx.ProgramIDIndex)
		}
		programId := message.AccountKeys[compiledIx.ProgramIDIndex]
		accounts := make(solana.AccountMetaSlice, 0, len(compiledIx.Accounts))
		for _, accountIdx := range compiledIx.Accounts {
			if int(accountIdx) >= len(accountKeys) {
				return nil, errors.Errorf("account index %d out of range", accountIdx)
			}
			resolved := accountKeys[accountIdx]
			accounts = append(accounts, &solana.AccountMeta{
				PublicKey:  resolved.key,
				IsSigner:   resolved.signer,
				IsWritable: resolved.writable,
			})
		}
		instructions = append(instructions, solana.NewInstruction(programId, accounts, compiledIx.Data))
	}

	return &TransactionMessage{
		PayerKey:        message.AccountKeys[0],
		Instructions:    instructions,
		RecentBlockhash: message.RecentBlockhash,
	}, nil
}
