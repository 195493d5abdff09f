package marginfi

import (
	"encoding/binary"
	"marginfigo/addresses"
	"marginfigo/constants"
	marginfilib "marginfigo/lib/marginfi"

	"github.com/gagliardetto/solana-go"
)

func encodeAmount(data []byte, amount uint64) []byte {
	amountBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(amountBytes, amount)
	return append(data, amountBytes...)
}

func encodeOptionBool(data []byte, value *bool) []byte {
	if value == nil {
		return append(data, 0)
	}
	encoded := byte(0)
	if *value {
		encoded = 1
	}
	return append(data, 1, encoded)
}

func DepositIx(
	programId solana.PublicKey,
	group solana.PublicKey,
	marginfiAccount solana.PublicKey,
	authority solana.PublicKey,
	bank solana.PublicKey,
	signerTokenAccount solana.PublicKey,
	amount uint64,
) solana.Instruction {
	data := encodeAmount(marginfilib.InstructionDiscriminator("lendingAccountDeposit"), amount)
	return solana.NewInstruction(programId, solana.AccountMetaSlice{
		{PublicKey: group, IsSigner: false, IsWritable: false},
		{PublicKey: marginfiAccount, IsSigner: false, IsWritable: true},
		{PublicKey: authority, IsSigner: true, IsWritable: false},
		{PublicKey: bank, IsSigner: false, IsWritable: true},
		{PublicKey: signerTokenAccount, IsSigner: false, IsWritable: true},
		{PublicKey: addresses.GetLiquidityVaultPublicKey(programId, bank), IsSigner: false, IsWritable: true},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
	}, data)
}

func RepayIx(
	programId solana.PublicKey,
	group solana.PublicKey,
	marginfiAccount solana.PublicKey,
	authority solana.PublicKey,
	bank solana.PublicKey,
	signerTokenAccount solana.PublicKey,
	amount uint64,
	repayAll *bool,
) solana.Instruction {
	data := encodeOptionBool(encodeAmount(marginfilib.InstructionDiscriminator("lendingAccountRepay"), amount), repayAll)
	return solana.NewInstruction(programId, solana.AccountMetaSlice{
		{PublicKey: group, IsSigner: false, IsWritable: false},
		{PublicKey: marginfiAccount, IsSigner: false, IsWritable: true},
		{PublicKey: authority, IsSigner: true, IsWritable: false},
		{PublicKey: bank, IsSigner: false, IsWritable: true},
		{PublicKey: signerTokenAccount, IsSigner: false, IsWritable: true},
		{PublicKey: addresses.GetLiquidityVaultPublicKey(programId, bank), IsSigner: false, IsWritable: true},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
	}, data)
}

func WithdrawIx(
	programId solana.PublicKey,
	group solana.PublicKey,
	marginfiAccount solana.PublicKey,
	authority solana.PublicKey,
	bank solana.PublicKey,
	destinationTokenAccount solana.PublicKey,
	amount uint64,
	withdrawAll *bool,
) solana.Instruction {
	data := encodeOptionBool(encodeAmount(marginfilib.InstructionDiscriminator("lendingAccountWithdraw"), amount), withdrawAll)
	return solana.NewInstruction(programId, solana.AccountMetaSlice{
		{PublicKey: group, IsSigner: false, IsWritable: false},
		{PublicKey: marginfiAccount, IsSigner: false, IsWritable: true},
		{PublicKey: authority, IsSigner: true, IsWritable: false},
		{PublicKey: bank, IsSigner: false, IsWritable: true},
		{PublicKey: destinationTokenAccount, IsSigner: false, IsWritable: true},
		{PublicKey: addresses.GetLiquidityVaultAuthorityPublicKey(programId, bank), IsSigner: false, IsWritable: false},
		{PublicKey: addresses.GetLiquidityVaultPublicKey(programId, bank), IsSigner: false, IsWritable: true},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
	}, data)
}

func BorrowIx(
	programId solana.PublicKey,
	group solana.PublicKey,
	marginfiAccount solana.PublicKey,
	authority solana.PublicKey,
	bank solana.PublicKey,
	destinationTokenAccount solana.PublicKey,
	amount uint64,
) solana.Instruction {
	data := encodeAmount(marginfilib.InstructionDiscriminator("lendingAccountBorrow"), amount)
	return solana.NewInstruction(programId, solana.AccountMetaSlice{
		{PublicKey: group, IsSigner: false, IsWritable: false},
		{PublicKey: marginfiAccount, IsSigner: false, IsWritable: true},
		{PublicKey: authority, IsSigner: true, IsWritable: false},
		{PublicKey: bank, IsSigner: false, IsWritable: true},
		{PublicKey: destinationTokenAccount, IsSigner: false, IsWritable: true},
		{PublicKey: addresses.GetLiquidityVaultAuthorityPublicKey(programId, bank), IsSigner: false, IsWritable: false},
		{PublicKey: addresses.GetLiquidityVaultPublicKey(programId, bank), IsSigner: false, IsWritable: true},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
	}, data)
}

// StartFlashloanIx opens a flashloan window. endIndex is the position of the
// matching end instruction inside the final transaction.
func StartFlashloanIx(
	programId solana.PublicKey,
	marginfiAccount solana.PublicKey,
	authority solana.PublicKey,
	endIndex uint64,
) solana.Instruction {
	data := encodeAmount(marginfilib.InstructionDiscriminator("lendingAccountStartFlashloan"), endIndex)
	return solana.NewInstruction(programId, solana.AccountMetaSlice{
		{PublicKey: marginfiAccount, IsSigner: false, IsWritable: true},
		{PublicKey: authority, IsSigner: true, IsWritable: false},
		{PublicKey: constants.SYSVAR_INSTRUCTIONS_ADDRESS, IsSigner: false, IsWritable: false},
	}, data)
}

func EndFlashloanIx(
	programId solana.PublicKey,
	marginfiAccount solana.PublicKey,
	authority solana.PublicKey,
) solana.Instruction {
	data := marginfilib.InstructionDiscriminator("lendingAccountEndFlashloan")
	return solana.NewInstruction(programId, solana.AccountMetaSlice{
		{PublicKey: marginfiAccount, IsSigner: false, IsWritable: true},
		{PublicKey: authority, IsSigner: true, IsWritable: false},
	}, data)
}
