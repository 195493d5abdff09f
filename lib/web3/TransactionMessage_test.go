package web3

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	addresslookuptable "github.com/gagliardetto/solana-go/programs/address-lookup-table"
)

// go test --run TestDecompileResolvesLookups

func TestDecompileResolvesLookups(t *testing.T) {
	payer := solana.NewWallet().PublicKey()
	program := solana.NewWallet().PublicKey()
	writableLoaded := solana.NewWallet().PublicKey()
	readonlyLoaded := solana.NewWallet().PublicKey()
	tableKey := solana.NewWallet().PublicKey()

	message := solana.Message{
		Header: solana.MessageHeader{
			NumRequiredSignatures:       1,
			NumReadonlyUnsignedAccounts: 1,
		},
		AccountKeys:     []solana.PublicKey{payer, program},
		RecentBlockhash: solana.Hash{},
		Instructions: []solana.CompiledInstruction{
			{ProgramIDIndex: 1, Accounts: []uint16{0, 2, 3}, Data: []byte{9}},
		},
		AddressTableLookups: solana.MessageAddressTableLookupSlice{
			{AccountKey: tableKey, WritableIndexes: []uint8{0}, ReadonlyIndexes: []uint8{1}},
		},
	}
	message.SetVersion(solana.MessageVersionV0)

	tables := []addresslookuptable.KeyedAddressLookupTable{
		{
			Key: tableKey,
			State: addresslookuptable.AddressLookupTableState{
				Addresses: solana.PublicKeySlice{writableLoaded, readonlyLoaded},
			},
		},
	}

	decompiled, err := Decompile(&message, tables)
	if err != nil {
		t.Fatal(err)
	}
	if !decompiled.PayerKey.Equals(payer) {
		t.Fatalf("wrong payer %s", decompiled.PayerKey)
	}
	if len(decompiled.Instructions) != 1 {
		t.Fatalf("expected 1 instruction, got %d", len(decompiled.Instructions))
	}
	instruction := decompiled.Instructions[0]
	if !instruction.ProgramID().Equals(program) {
		t.Fatalf("wrong program %s", instruction.ProgramID())
	}
	accounts := instruction.Accounts()
	if len(accounts) != 3 {
		t.Fatalf("expected 3 accounts, got %d", len(accounts))
	}
	if !accounts[0].PublicKey.Equals(payer) || !accounts[0].IsSigner || !accounts[0].IsWritable {
		t.Fatalf("payer meta wrong: %+v", accounts[0])
	}
	if !accounts[1].PublicKey.Equals(writableLoaded) || accounts[1].IsSigner || !accounts[1].IsWritable {
		t.Fatalf("writable loaded meta wrong: %+v", accounts[1])
	}
	if !accounts[2].PublicKey.Equals(readonlyLoaded) || accounts[2].IsSigner || accounts[2].IsWritable {
		t.Fatalf("readonly loaded meta wrong: %+v", accounts[2])
	}
}

// go test --run TestDecompileMissingTable

func TestDecompileMissingTable(t *testing.T) {
	payer := solana.NewWallet().PublicKey()
	program := solana.NewWallet().PublicKey()
	message := solana.Message{
		Header: solana.MessageHeader{
			NumRequiredSignatures:       1,
			NumReadonlyUnsignedAccounts: 1,
		},
		AccountKeys: []solana.PublicKey{payer, program},
		Instructions: []solana.CompiledInstruction{
			{ProgramIDIndex: 1, Accounts: []uint16{0, 2}, Data: []byte{9}},
		},
		AddressTableLookups: solana.MessageAddressTableLookupSlice{
			{AccountKey: solana.NewWallet().PublicKey(), WritableIndexes: []uint8{0}},
		},
	}
	message.SetVersion(solana.MessageVersionV0)

	if _, err := Decompile(&message, nil); err == nil {
		t.Fatal("missing lookup table must fail decompilation")
	}
}
