package constants

import "github.com/gagliardetto/solana-go"

// Solana packet data size limit; a serialized transaction may not exceed this.
const MAX_TX_SIZE = 1232

const DEFAULT_COMPUTE_UNIT_LIMIT = uint32(1_400_000)

const DEFAULT_BUNDLE_TIP_LAMPORTS = uint64(100_000)

// UI priority fees above this are treated as fat-fingered input and dropped.
const MAX_UI_PRIORITY_FEE = 0.1

const MIN_PRIORITY_FEE_MICRO_LAMPORTS = uint64(1)

const LAMPORTS_PER_SOL = uint64(1_000_000_000)

var MARGINFI_PROGRAM_ID = solana.MustPublicKeyFromBase58("MFv2hWf31Z9kbCa1snEPYctwafyhdvnV7FZnsebVacA")

var MARGINFI_GROUP_ADDRESS = solana.MustPublicKeyFromBase58("4qp6Fx6tnZkCbsW9xuQgZfh7Wa4kbmUbEF6kxt3kTRmi")

var SYSVAR_INSTRUCTIONS_ADDRESS = solana.MustPublicKeyFromBase58("Sysvar1nstructions1111111111111111111111111")

// Default tip collector set. Deployments rotate collectors through
// config.Initialize or priorityFee.TipConfig instead of editing this list.
var DEFAULT_TIP_ACCOUNTS = []solana.PublicKey{
	solana.MustPublicKeyFromBase58("96gYZGLnJYVFmbjzopPSU6QiEV5fGqZNyN9nmNhvrZU5"),
	solana.MustPublicKeyFromBase58("HFqU5x63VTqvQss8hp11i4wVV8bD44PvwucfZ2bU7gRe"),
	solana.MustPublicKeyFromBase58("Cw8CFyM9FkoMi7K7Crf6HNQqf4uEMzpKw6QNghXLvLkY"),
	solana.MustPublicKeyFromBase58("ADaUMid9yfUytqMBgopwjb2DTLSokTSzL1zt6iGPaS49"),
	solana.MustPublicKeyFromBase58("DfXygSm4jCyNCybVYYK6DwvWqjKee8pbDmJGcLWNDXjh"),
	solana.MustPublicKeyFromBase58("ADuUkR4vqLUMWXxW9gh6D6L8pMSawimctcNZ5pGwDcEt"),
	solana.MustPublicKeyFromBase58("DttWaMuVvTiduZRnguLF7jNxTgiMBZ1hyAumKUiL2KRL"),
	solana.MustPublicKeyFromBase58("3AVi9Tg9Uo68tJfuvoKvqKNWKkC5wPdSSdeBnizKZ6jT"),
}
