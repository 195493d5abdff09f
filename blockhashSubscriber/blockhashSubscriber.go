package blockhashSubscriber

import (
	"context"
	"marginfigo/utils"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

type BlockHashSubscriberConfig struct {
	Connection       *rpc.Client
	Commitment       *rpc.CommitmentType
	UpdateIntervalMs *int64
}

// BlockHashSubscriber keeps a cache of recent blockhashes so transaction
// packing and signing never wait on the network.
type BlockHashSubscriber struct {
	connection *rpc.Client
	commitment rpc.CommitmentType

	currentSlot       uint64
	updateIntervalMs  int64
	latestBlockHeight uint64
	latestBlockHash   solana.Hash
	blockhashes       []*rpc.LatestBlockhashResult

	mxState *sync.RWMutex
	cancel  func()
}

func CreateBlockHashSubscriber(config BlockHashSubscriberConfig) *BlockHashSubscriber {
	return &BlockHashSubscriber{
		connection:       config.Connection,
		commitment:       utils.TTM[rpc.CommitmentType](config.Commitment == nil, rpc.CommitmentConfirmed, func() rpc.CommitmentType { return *config.Commitment }),
		updateIntervalMs: utils.TTM[int64](config.UpdateIntervalMs == nil, int64(1000), func() int64 { return max(*config.UpdateIntervalMs, 1000) }),
		mxState:          new(sync.RWMutex),
	}
}

func (p *BlockHashSubscriber) Fetch() {
	defer p.mxState.Unlock()
	p.mxState.Lock()
	slot, err := p.connection.GetSlot(context.TODO(), p.commitment)
	if err == nil {
		p.currentSlot = slot
	}
	blockHeight, err := p.connection.GetBlockHeight(context.TODO(), p.commitment)
	if err == nil {
		p.latestBlockHeight = blockHeight
	}
	blockhash, err := p.connection.GetLatestBlockhash(context.TODO(), p.commitment)
	if err == nil {
		if len(p.blockhashes) > 0 && blockhash.Value.Blockhash.Equals(p.blockhashes[len(p.blockhashes)-1].Blockhash) {
			return
		}
		p.latestBlockHash = blockhash.Value.Blockhash
		p.blockhashes = append(p.blockhashes, blockhash.Value)
		p.pruneBlockhashes()
	}
}

func (p *BlockHashSubscriber) Subscribe() {
	if p.cancel != nil {
		return
	}
	p.Fetch()
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	go func(ctx context.Context) {
		ticker := time.NewTicker(time.Duration(p.updateIntervalMs) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.Fetch()
			}
		}
	}(ctx)
}

func (p *BlockHashSubscriber) Unsubscribe() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *BlockHashSubscriber) GetBlockhashCacheSize() int {
	defer p.mxState.RUnlock()
	p.mxState.RLock()
	return len(p.blockhashes)
}

func (p *BlockHashSubscriber) GetLatestBlockHeight() uint64 {
	defer p.mxState.RUnlock()
	p.mxState.RLock()
	return p.latestBlockHeight
}

func (p *BlockHashSubscriber) GetLatestBlockhash(offsets ...int) *rpc.LatestBlockhashResult {
	defer p.mxState.RUnlock()
	p.mxState.RLock()
	offset := utils.TTM[int](len(offsets) > 0, func() int { return offsets[0] }, 0)
	if len(p.blockhashes) == 0 {
		return nil
	}
	clampedOffset := max(0, min(len(p.blockhashes)-1, offset))
	return p.blockhashes[len(p.blockhashes)-1-clampedOffset]
}

func (p *BlockHashSubscriber) GetSlot() uint64 {
	defer p.mxState.RUnlock()
	p.mxState.RLock()
	return p.currentSlot
}

func (p *BlockHashSubscriber) pruneBlockhashes() {
	if p.latestBlockHeight > 0 {
		var newBlockhashes []*rpc.LatestBlockhashResult
		for _, blockhash := range p.blockhashes {
			if blockhash.LastValidBlockHeight > p.latestBlockHeight {
				newBlockhashes = append(newBlockhashes, blockhash)
			}
		}
		p.blockhashes = newBlockhashes
	}
}
