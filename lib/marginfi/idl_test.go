package marginfi

import (
	"encoding/binary"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func encodeU64(value uint64) []byte {
	encoded := make([]byte, 8)
	binary.LittleEndian.PutUint64(encoded, value)
	return encoded
}

// go test --run TestInstructionName

func TestInstructionName(t *testing.T) {
	data := append(InstructionDiscriminator("lendingAccountDeposit"), encodeU64(42)...)
	name, err := InstructionName(data)
	if err != nil {
		t.Fatal(err)
	}
	if name != "lendingAccountDeposit" {
		t.Fatalf("expected lendingAccountDeposit, got %s", name)
	}

	if _, err = InstructionName([]byte{1, 2}); err == nil {
		t.Fatal("short data must not decode")
	}
	if _, err = InstructionName(make([]byte, 8)); err == nil {
		t.Fatal("unknown discriminator must not decode")
	}
}

// go test --run TestParseInstructionArgs

func TestParseInstructionArgs(t *testing.T) {
	depositData := append(InstructionDiscriminator("lendingAccountDeposit"), encodeU64(42)...)
	parsed, err := ParseInstructionArgs("lendingAccountDeposit", depositData)
	if err != nil {
		t.Fatal(err)
	}
	spew.Dump("TestParseInstructionArgs deposit", parsed)
	deposit, ok := parsed.(*LendingAccountDepositArgs)
	if !ok || deposit.Amount != 42 {
		t.Fatalf("unexpected deposit args: %#v", parsed)
	}

	repayData := append(InstructionDiscriminator("lendingAccountRepay"), encodeU64(7)...)
	repayData = append(repayData, 1, 1)
	parsed, err = ParseInstructionArgs("lendingAccountRepay", repayData)
	if err != nil {
		t.Fatal(err)
	}
	repay, ok := parsed.(*LendingAccountRepayArgs)
	if !ok || repay.Amount != 7 || repay.RepayAll == nil || !*repay.RepayAll {
		t.Fatalf("unexpected repay args: %#v", parsed)
	}

	startData := append(InstructionDiscriminator("lendingAccountStartFlashloan"), encodeU64(3)...)
	parsed, err = ParseInstructionArgs("lendingAccountStartFlashloan", startData)
	if err != nil {
		t.Fatal(err)
	}
	start, ok := parsed.(*LendingAccountStartFlashloanArgs)
	if !ok || start.EndIndex != 3 {
		t.Fatalf("unexpected flashloan args: %#v", parsed)
	}

	parsed, err = ParseInstructionArgs("lendingAccountEndFlashloan", InstructionDiscriminator("lendingAccountEndFlashloan"))
	if err != nil {
		t.Fatal(err)
	}
	if parsed != nil {
		t.Fatalf("argument-less instruction must parse to nil, got %#v", parsed)
	}
}
