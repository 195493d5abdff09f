package tx

import (
	"errors"
	"marginfigo/constants"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/gagliardetto/solana-go"
)

func testPackContext() PackContext {
	return PackContext{
		Payer:           solana.NewWallet().PublicKey(),
		RecentBlockhash: solana.Hash{},
	}
}

func payloadIx(size int, tag byte) solana.Instruction {
	data := make([]byte, size)
	data[0] = tag
	return solana.NewInstruction(solana.SystemProgramID, solana.AccountMetaSlice{}, data)
}

// extraTags collects the payload tags of the instructions following the
// mandatory prefix, over all packed transactions in order.
func extraTags(packed []*solana.Transaction, numMandatory int) []byte {
	var tags []byte
	for _, transaction := range packed {
		for idx, compiledIx := range transaction.Message.Instructions {
			if idx < numMandatory {
				continue
			}
			tags = append(tags, compiledIx.Data[0])
		}
	}
	return tags
}

// go test --run TestPackInstructionsSplits

func TestPackInstructionsSplits(t *testing.T) {
	mandatory := []solana.Instruction{payloadIx(50, 0xAA)}
	extra := []solana.Instruction{
		payloadIx(600, 1),
		payloadIx(600, 2),
		payloadIx(600, 3),
	}
	packed, err := PackInstructions(mandatory, extra, testPackContext())
	if err != nil {
		t.Fatal(err)
	}
	if len(packed) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(packed))
	}
	for idx, transaction := range packed {
		size, err := TransactionSize(transaction)
		if err != nil {
			t.Fatal(err)
		}
		spew.Dump("transaction size", idx, size)
		if size > constants.MAX_TX_SIZE {
			t.Fatalf("transaction %d is %d bytes", idx, size)
		}
		if len(transaction.Message.Instructions) != 2 {
			t.Fatalf("transaction %d has %d instructions", idx, len(transaction.Message.Instructions))
		}
		if transaction.Message.Instructions[0].Data[0] != 0xAA {
			t.Fatalf("transaction %d does not start with the mandatory instruction", idx)
		}
	}
	tags := extraTags(packed, 1)
	if string(tags) != string([]byte{1, 2, 3}) {
		t.Fatalf("extra instructions out of order: %v", tags)
	}
}

// go test --run TestPackInstructionsSingleTransaction

func TestPackInstructionsSingleTransaction(t *testing.T) {
	mandatory := []solana.Instruction{payloadIx(50, 0xAA)}
	var extra []solana.Instruction
	for tag := byte(1); tag <= 5; tag++ {
		extra = append(extra, payloadIx(10, tag))
	}
	packed, err := PackInstructions(mandatory, extra, testPackContext())
	if err != nil {
		t.Fatal(err)
	}
	if len(packed) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(packed))
	}
	if len(packed[0].Message.Instructions) != 6 {
		t.Fatalf("expected 6 instructions, got %d", len(packed[0].Message.Instructions))
	}
}

// go test --run TestPackInstructionsOrderAndDeterminism

func TestPackInstructionsOrderAndDeterminism(t *testing.T) {
	packContext := testPackContext()
	mandatory := []solana.Instruction{payloadIx(50, 0xAA)}
	var extra []solana.Instruction
	var expected []byte
	for tag := byte(1); tag <= 20; tag++ {
		extra = append(extra, payloadIx(150, tag))
		expected = append(expected, tag)
	}
	packed, err := PackInstructions(mandatory, extra, packContext)
	if err != nil {
		t.Fatal(err)
	}
	if len(packed) < 2 {
		t.Fatalf("expected multiple transactions, got %d", len(packed))
	}
	if string(extraTags(packed, 1)) != string(expected) {
		t.Fatalf("extra instructions reordered: %v", extraTags(packed, 1))
	}
	repacked, err := PackInstructions(mandatory, extra, packContext)
	if err != nil {
		t.Fatal(err)
	}
	if len(repacked) != len(packed) {
		t.Fatalf("repacking produced %d transactions instead of %d", len(repacked), len(packed))
	}
	for idx := range packed {
		if len(repacked[idx].Message.Instructions) != len(packed[idx].Message.Instructions) {
			t.Fatalf("transaction %d partitioned differently across runs", idx)
		}
	}
}

// go test --run TestPackInstructionsEmpty

func TestPackInstructionsEmpty(t *testing.T) {
	packContext := testPackContext()
	packed, err := PackInstructions([]solana.Instruction{payloadIx(50, 0xAA)}, nil, packContext)
	if err != nil {
		t.Fatal(err)
	}
	if len(packed) != 1 || len(packed[0].Message.Instructions) != 1 {
		t.Fatalf("expected a single mandatory-only transaction")
	}

	packed, err = PackInstructions(nil, nil, packContext)
	if err != nil {
		t.Fatal(err)
	}
	if packed != nil {
		t.Fatalf("expected empty result, got %d transactions", len(packed))
	}
}

// go test --run TestPackInstructionsOversized

func TestPackInstructionsOversized(t *testing.T) {
	packContext := testPackContext()
	mandatory := []solana.Instruction{payloadIx(50, 0xAA)}

	_, err := PackInstructions(mandatory, []solana.Instruction{payloadIx(1300, 1)}, packContext)
	if !errors.Is(err, ErrOversizedInstruction) {
		t.Fatalf("expected ErrOversizedInstruction, got %v", err)
	}

	// no partial success: one fitting instruction before the oversized one
	packed, err := PackInstructions(mandatory, []solana.Instruction{
		payloadIx(600, 1),
		payloadIx(1300, 2),
	}, packContext)
	if !errors.Is(err, ErrOversizedInstruction) {
		t.Fatalf("expected ErrOversizedInstruction, got %v", err)
	}
	if packed != nil {
		t.Fatalf("expected no transactions on failure, got %d", len(packed))
	}
}

// go test --run TestMeasureTransaction

func TestMeasureTransaction(t *testing.T) {
	packContext := testPackContext()
	mandatory := []solana.Instruction{payloadIx(50, 0xAA)}
	size, err := MeasureTransaction(mandatory, nil, packContext)
	if err != nil {
		t.Fatal(err)
	}
	if size <= 0 || size > constants.MAX_TX_SIZE {
		t.Fatalf("unexpected size %d", size)
	}
	transaction, err := BuildTransaction(mandatory, packContext.Payer, packContext.RecentBlockhash, nil)
	if err != nil {
		t.Fatal(err)
	}
	built, err := TransactionSize(transaction)
	if err != nil {
		t.Fatal(err)
	}
	if built != size {
		t.Fatalf("measure reported %d, built transaction is %d", size, built)
	}
}
