package addresses

import (
	"github.com/gagliardetto/solana-go"
)

func GetLiquidityVaultAuthorityPublicKeyAndNonce(
	programId solana.PublicKey,
	bank solana.PublicKey,
) (solana.PublicKey, uint8) {
	address, bumpSeed, err := solana.FindProgramAddress(
		[][]byte{
			[]byte("liquidity_vault_auth"),
			bank.Bytes(),
		},
		programId,
	)
	if err != nil {
		return solana.PublicKey{}, 0
	}
	return address, bumpSeed
}

func GetLiquidityVaultAuthorityPublicKey(
	programId solana.PublicKey,
	bank solana.PublicKey,
) solana.PublicKey {
	address, _ := GetLiquidityVaultAuthorityPublicKeyAndNonce(programId, bank)
	return address
}

func GetLiquidityVaultPublicKeyAndNonce(
	programId solana.PublicKey,
	bank solana.PublicKey,
) (solana.PublicKey, uint8) {
	address, bumpSeed, err := solana.FindProgramAddress(
		[][]byte{
			[]byte("liquidity_vault"),
			bank.Bytes(),
		},
		programId,
	)
	if err != nil {
		return solana.PublicKey{}, 0
	}
	return address, bumpSeed
}

func GetLiquidityVaultPublicKey(
	programId solana.PublicKey,
	bank solana.PublicKey,
) solana.PublicKey {
	address, _ := GetLiquidityVaultPublicKeyAndNonce(programId, bank)
	return address
}

func GetInsuranceVaultPublicKey(
	programId solana.PublicKey,
	bank solana.PublicKey,
) solana.PublicKey {
	address, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte("insurance_vault"),
			bank.Bytes(),
		},
		programId,
	)
	if err != nil {
		return solana.PublicKey{}
	}
	return address
}

func GetFeeVaultPublicKey(
	programId solana.PublicKey,
	bank solana.PublicKey,
) solana.PublicKey {
	address, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte("fee_vault"),
			bank.Bytes(),
		},
		programId,
	)
	if err != nil {
		return solana.PublicKey{}
	}
	return address
}
