package marginfi

import (
	"context"
	"fmt"
	go_marginfi "marginfigo"
	"marginfigo/config"
	"marginfigo/priorityFee"
	"marginfigo/tx"
	"marginfigo/utils"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	addresslookuptable "github.com/gagliardetto/solana-go/programs/address-lookup-table"
	computebudget "github.com/gagliardetto/solana-go/programs/compute-budget"
	"github.com/gagliardetto/solana-go/rpc"
)

type MarginfiClient struct {
	ProgramId solana.PublicKey
	Group     solana.PublicKey
	Wallet    go_marginfi.IWallet
	Rpc       *rpc.Client
	TxSender  *tx.BaseTxSender
	Opts        go_marginfi.ConfirmOptions
	TxParams    go_marginfi.BaseTxParams
	TipConfig   *priorityFee.TipConfig
	TipEndpoint string

	BankLookupTable    solana.PublicKey
	LookupTableAccount *addresslookuptable.KeyedAddressLookupTable
}

func CreateMarginfiClient(
	connection *rpc.Client,
	wallet go_marginfi.IWallet,
	opts *go_marginfi.ConfirmOptions,
) *MarginfiClient {
	currentConfig := config.GetConfig()
	if opts == nil {
		opts = &go_marginfi.ConfirmOptions{Commitment: rpc.CommitmentConfirmed}
	}
	client := &MarginfiClient{
		ProgramId:       solana.MustPublicKeyFromBase58(currentConfig.MARGINFI_PROGRAM_ID),
		Group:           solana.MustPublicKeyFromBase58(currentConfig.GROUP_ADDRESS),
		Wallet:          wallet,
		Rpc:             connection,
		Opts:            *opts,
		TipConfig:       priorityFee.CreateTipConfigFromAddresses(currentConfig.TIP_ACCOUNTS, nil),
		TipEndpoint:     currentConfig.TIP_ENDPOINT,
		BankLookupTable: solana.MustPublicKeyFromBase58(currentConfig.BANK_LOOKUP_TABLE),
		TxSender:        tx.CreateBaseTxSender(connection, wallet.GetWallet(), opts, tx.DEFAULT_TIMEOUT),
	}
	return client
}

func (p *MarginfiClient) FetchBankLookupTableAccount() *addresslookuptable.KeyedAddressLookupTable {
	if p.LookupTableAccount != nil {
		return p.LookupTableAccount
	}
	if p.BankLookupTable.IsZero() {
		fmt.Println("Bank lookup table address not set")
		return nil
	}
	account, err := p.Rpc.GetAccountInfo(context.TODO(), p.BankLookupTable)
	if err != nil {
		return nil
	}
	lookupTableAccount := addresslookuptable.NewKeyedAddressLookupTable(p.BankLookupTable)
	err = bin.NewBinDecoder(account.GetBinary()).Decode(&lookupTableAccount.State)
	if err != nil {
		return nil
	}
	p.LookupTableAccount = lookupTableAccount
	return p.LookupTableAccount
}

func (p *MarginfiClient) BuildTransaction(
	instructions []solana.Instruction,
	txParams *go_marginfi.TxParams,
	lookupTables []addresslookuptable.KeyedAddressLookupTable,
) (*solana.Transaction, error) {
	baseTxParams := go_marginfi.BaseTxParams{
		ComputeUnits:      utils.TTM[uint64](txParams != nil, func() uint64 { return txParams.ComputeUnits }, p.TxParams.ComputeUnits),
		ComputeUnitsPrice: utils.TTM[uint64](txParams != nil, func() uint64 { return txParams.ComputeUnitsPrice }, p.TxParams.ComputeUnitsPrice),
	}

	allIx := []solana.Instruction{}
	computeUnits := baseTxParams.ComputeUnits
	if computeUnits != 0 && computeUnits != 200_000 {
		allIx = append(allIx, computebudget.NewSetComputeUnitLimitInstructionBuilder().SetUnits(uint32(computeUnits)).Build())
	}
	computeUnitsPrice := baseTxParams.ComputeUnitsPrice
	if computeUnitsPrice != 0 {
		allIx = append(allIx, computebudget.NewSetComputeUnitPriceInstructionBuilder().SetMicroLamports(computeUnitsPrice).Build())
	}
	allIx = append(allIx, instructions...)

	latestBlockHashAndContext, err := p.Rpc.GetLatestBlockhash(context.TODO(), p.Opts.Commitment)
	if err != nil {
		return nil, err
	}

	lookupTables = p.withBankLookupTable(lookupTables)
	return tx.BuildTransaction(
		allIx,
		p.Wallet.GetPublicKey(),
		latestBlockHashAndContext.Value.Blockhash,
		lookupTables,
	)
}

// RefreshTipAccounts replaces the collector rotation with the endpoint's
// current list. The configured set stays when the endpoint yields nothing.
func (p *MarginfiClient) RefreshTipAccounts() {
	if p.TipEndpoint == "" {
		return
	}
	accounts := priorityFee.FetchTipAccounts(p.TipEndpoint)
	if len(accounts) > 0 {
		p.TipConfig = priorityFee.CreateTipConfig(accounts, p.TipConfig.Rand)
	}
}

// PriorityIxs routes a UI fee through the client's collector set.
func (p *MarginfiClient) PriorityIxs(
	feeUi float64,
	broadcastMode go_marginfi.BroadcastMode,
) priorityFee.PriorityInstructions {
	return priorityFee.PriorityIxs(p.Wallet.GetPublicKey(), feeUi, broadcastMode, p.TipConfig)
}

// PackTransactions splits the extra instructions over as many transactions
// as the size limit requires, every one led by the mandatory instructions.
func (p *MarginfiClient) PackTransactions(
	mandatory []solana.Instruction,
	extra []solana.Instruction,
	lookupTables []addresslookuptable.KeyedAddressLookupTable,
) ([]*solana.Transaction, error) {
	latestBlockHashAndContext, err := p.Rpc.GetLatestBlockhash(context.TODO(), p.Opts.Commitment)
	if err != nil {
		return nil, err
	}
	return tx.PackInstructions(mandatory, extra, tx.PackContext{
		Payer:           p.Wallet.GetPublicKey(),
		RecentBlockhash: latestBlockHashAndContext.Value.Blockhash,
		LookupTables:    p.withBankLookupTable(lookupTables),
	})
}

// PackAndSignTransactions packs the extra instructions and signs every
// resulting transaction with the client wallet.
func (p *MarginfiClient) PackAndSignTransactions(
	mandatory []solana.Instruction,
	extra []solana.Instruction,
	lookupTables []addresslookuptable.KeyedAddressLookupTable,
) ([]*solana.Transaction, error) {
	packed, err := p.PackTransactions(mandatory, extra, lookupTables)
	if err != nil {
		return nil, err
	}
	return p.Wallet.SignAllTransactions(packed), nil
}

// BuildFlashloanTx wraps the inner instructions between a start and end
// flashloan instruction pair. endIndex points past the inner instructions at
// the end instruction itself.
func (p *MarginfiClient) BuildFlashloanTx(
	marginfiAccount solana.PublicKey,
	innerIxs []solana.Instruction,
	lookupTables []addresslookuptable.KeyedAddressLookupTable,
) (*solana.Transaction, error) {
	endIndex := uint64(len(innerIxs)) + 1
	allIx := []solana.Instruction{
		StartFlashloanIx(p.ProgramId, marginfiAccount, p.Wallet.GetPublicKey(), endIndex),
	}
	allIx = append(allIx, innerIxs...)
	allIx = append(allIx, EndFlashloanIx(p.ProgramId, marginfiAccount, p.Wallet.GetPublicKey()))

	latestBlockHashAndContext, err := p.Rpc.GetLatestBlockhash(context.TODO(), p.Opts.Commitment)
	if err != nil {
		return nil, err
	}
	return tx.BuildTransaction(
		allIx,
		p.Wallet.GetPublicKey(),
		latestBlockHashAndContext.Value.Blockhash,
		p.withBankLookupTable(lookupTables),
	)
}

func (p *MarginfiClient) SendTransaction(
	transaction *solana.Transaction,
	opts *go_marginfi.ConfirmOptions,
	preSigned bool,
) (*tx.TxSigAndSlot, error) {
	return p.TxSender.Send(transaction, opts, preSigned, nil)
}

func (p *MarginfiClient) SendAll(
	transactions []*solana.Transaction,
	opts *go_marginfi.ConfirmOptions,
) ([]*tx.TxSigAndSlot, error) {
	signed := p.Wallet.SignAllTransactions(transactions)
	var results []*tx.TxSigAndSlot
	for _, transaction := range signed {
		result, err := p.TxSender.SendTransaction(transaction, opts, true, nil)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (p *MarginfiClient) withBankLookupTable(
	lookupTables []addresslookuptable.KeyedAddressLookupTable,
) []addresslookuptable.KeyedAddressLookupTable {
	bankLookupTable := p.FetchBankLookupTableAccount()
	if bankLookupTable == nil {
		return lookupTables
	}
	return append(lookupTables, *bankLookupTable)
}
