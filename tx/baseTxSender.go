package tx

import (
	"context"
	go_marginfi "marginfigo"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	addresslookuptable "github.com/gagliardetto/solana-go/programs/address-lookup-table"
	"github.com/gagliardetto/solana-go/rpc"
)

const DEFAULT_TIMEOUT = 35000

type BaseTxSender struct {
	TxSender

	connection   *rpc.Client
	opts         go_marginfi.ConfirmOptions
	timeout      int64
	timeoutCount uint64
	cancel       context.CancelFunc

	mutex           sync.RWMutex
	recentSlot      uint64
	recentBlockHash solana.Hash
}

func CreateBaseTxSender(
	connection *rpc.Client,
	wallet solana.Wallet,
	opts *go_marginfi.ConfirmOptions,
	timeout int64,
) *BaseTxSender {
	txSender := &BaseTxSender{
		TxSender: TxSender{
			Wallet: wallet,
		},
		connection:   connection,
		opts:         *opts,
		timeout:      timeout,
		timeoutCount: 0,
	}
	ctx, cancel := context.WithCancel(context.Background())
	txSender.cancel = cancel
	txSender.SubscribeBlockHash(ctx)
	return txSender
}

func (p *BaseTxSender) Send(
	tx *solana.Transaction,
	opts *go_marginfi.ConfirmOptions,
	preSigned bool,
	extraConfirmationOptions *ExtraConfirmationOptions,
) (*TxSigAndSlot, error) {
	if opts == nil {
		opts = &p.opts
	}
	signedTx := p.prepareTx(tx, preSigned)
	if extraConfirmationOptions != nil {
		extraConfirmationOptions.OnSignedCb()
	}
	rawTx, err := signedTx.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return p.SendRawTransaction(rawTx, opts)
}

func (p *BaseTxSender) prepareTx(
	tx *solana.Transaction,
	preSigned bool,
) *solana.Transaction {
	if preSigned {
		return tx
	}
	signedTx := *tx
	_, _ = signedTx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if p.Wallet.PublicKey().Equals(key) {
			return &p.Wallet.PrivateKey
		}
		return nil
	})
	return &signedTx
}

func (p *BaseTxSender) GetTransaction(
	ixs []solana.Instruction,
	lookupTableAccounts []addresslookuptable.KeyedAddressLookupTable,
	opts *go_marginfi.ConfirmOptions,
	blockhash string,
	sign bool,
) (*solana.Transaction, error) {
	hash, err := solana.HashFromBase58(blockhash)
	if err != nil {
		return nil, err
	}
	tx, err := BuildTransaction(ixs, p.Wallet.PublicKey(), hash, lookupTableAccounts)
	if err != nil {
		return nil, err
	}
	if sign {
		_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
			if p.Wallet.PublicKey().Equals(key) {
				return &p.Wallet.PrivateKey
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return tx, nil
}

func (p *BaseTxSender) SendTransaction(
	tx *solana.Transaction,
	opts *go_marginfi.ConfirmOptions,
	preSigned bool,
	extraConfirmationOptions *ExtraConfirmationOptions,
) (*TxSigAndSlot, error) {
	signedTx := p.prepareTx(tx, preSigned)
	if extraConfirmationOptions != nil {
		extraConfirmationOptions.OnSignedCb()
	}
	if opts == nil {
		opts = &p.opts
	}
	rawTx, err := signedTx.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return p.SendRawTransaction(rawTx, opts)
}

// SendAll signs and submits a packed batch in order, stopping at the first
// failure.
func (p *BaseTxSender) SendAll(
	txs []*solana.Transaction,
	opts *go_marginfi.ConfirmOptions,
) ([]*TxSigAndSlot, error) {
	var results []*TxSigAndSlot
	for _, transaction := range txs {
		result, err := p.SendTransaction(transaction, opts, false, nil)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (p *BaseTxSender) SendRawTransaction(
	rawTransaction []byte,
	opts *go_marginfi.ConfirmOptions,
) (*TxSigAndSlot, error) {
	txSig, err := p.connection.SendRawTransactionWithOpts(context.TODO(), rawTransaction, opts.TransactionOpts)
	if err != nil {
		return nil, err
	}
	return &TxSigAndSlot{
		TxSig: txSig,
		Slot:  0,
	}, nil
}

func (p *BaseTxSender) GetTimeoutCount() uint64 {
	return p.timeoutCount
}

func (p *BaseTxSender) GetRecentSlot() uint64 {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.recentSlot
}

func (p *BaseTxSender) GetRecentBlockHash() solana.Hash {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.recentBlockHash
}

func (p *BaseTxSender) SubscribeBlockHash(ctx context.Context) {
	ticker := time.NewTicker(time.Millisecond * 100)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				out, err := p.connection.GetLatestBlockhash(
					ctx,
					rpc.CommitmentFinalized,
				)
				if err == nil {
					p.mutex.Lock()
					p.recentSlot = out.Context.Slot
					p.recentBlockHash = out.Value.Blockhash
					p.mutex.Unlock()
				}
			}
		}
	}()
}

// Unsubscribe stops the background blockhash refresh.
func (p *BaseTxSender) Unsubscribe() {
	if p.cancel != nil {
		p.cancel()
	}
}
