package marginfi

import (
	marginfilib "marginfigo/lib/marginfi"
	"marginfigo/lib/web3"
	"strings"

	"github.com/gagliardetto/solana-go"
	addresslookuptable "github.com/gagliardetto/solana-go/programs/address-lookup-table"
)

// IsFlashloanTx reports whether any instruction of a compiled transaction
// decodes to a flashloan instruction of the lending program. Only versioned
// messages are inspected; legacy messages always report false, a known
// precision gap callers must account for. Instructions that do not decode
// against the program interface are skipped.
func IsFlashloanTx(
	transaction *solana.Transaction,
	lookupTableAccounts []addresslookuptable.KeyedAddressLookupTable,
) bool {
	if transaction == nil || !transaction.Message.IsVersioned() {
		return false
	}
	decompiled, err := web3.Decompile(&transaction.Message, lookupTableAccounts)
	if err != nil {
		return false
	}
	for _, instruction := range decompiled.Instructions {
		data, err := instruction.Data()
		if err != nil {
			continue
		}
		name, err := marginfilib.InstructionName(data)
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(name), "flashloan") {
			return true
		}
	}
	return false
}

// FirstFlashloanIndex returns the index of the first flashloan transaction
// in the list, or nil.
func FirstFlashloanIndex(
	transactions []*solana.Transaction,
	lookupTableAccounts []addresslookuptable.KeyedAddressLookupTable,
) *int {
	for idx, transaction := range transactions {
		if IsFlashloanTx(transaction, lookupTableAccounts) {
			index := idx
			return &index
		}
	}
	return nil
}
