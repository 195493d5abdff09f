package priorityFee

import (
	"encoding/json"
	"marginfigo/constants"
	"marginfigo/utils"
	"math/rand/v2"

	"github.com/davecgh/go-spew/spew"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/go-resty/resty/v2"
)

// TipConfig holds the tip collector set and the randomness source used to
// pick one. A nil Rand falls back to the process-global source; tests inject
// a seeded one.
type TipConfig struct {
	Accounts []solana.PublicKey
	Rand     *rand.Rand
}

func CreateTipConfig(accounts []solana.PublicKey, rnd *rand.Rand) *TipConfig {
	return &TipConfig{
		Accounts: utils.TT(len(accounts) > 0, accounts, constants.DEFAULT_TIP_ACCOUNTS),
		Rand:     rnd,
	}
}

// CreateTipConfigFromAddresses builds a TipConfig from configured base58
// addresses, skipping any that do not decode. An empty result falls back to
// the default collector list.
func CreateTipConfigFromAddresses(addresses []string, rnd *rand.Rand) *TipConfig {
	var accounts []solana.PublicKey
	for _, address := range addresses {
		account, err := solana.PublicKeyFromBase58(address)
		if err != nil {
			continue
		}
		accounts = append(accounts, account)
	}
	return CreateTipConfig(accounts, rnd)
}

var DefaultTipConfig = CreateTipConfig(nil, nil)

func (p *TipConfig) RandomTipAccount() solana.PublicKey {
	if p.Rand != nil {
		return p.Accounts[p.Rand.IntN(len(p.Accounts))]
	}
	return utils.RandomElement(p.Accounts)
}

// TipIx builds the value transfer from the fee payer to a randomly selected
// collector.
func (p *TipConfig) TipIx(feePayer solana.PublicKey, tipLamports uint64) solana.Instruction {
	return system.NewTransferInstruction(
		tipLamports,
		feePayer,
		p.RandomTipAccount(),
	).Build()
}

// FetchTipAccounts pulls the current collector rotation from a remote
// endpoint. Callers refresh before packing; the builders themselves never
// hit the network.
func FetchTipAccounts(url string) []solana.PublicKey {
	client := resty.New()
	resp, err := client.R().Get(url)
	if err == nil && resp != nil && resp.IsSuccess() {
		var encoded []string
		err = json.Unmarshal(resp.Body(), &encoded)
		if err != nil {
			spew.Dump(err)
			return nil
		}
		var accounts []solana.PublicKey
		for _, address := range encoded {
			account, err := solana.PublicKeyFromBase58(address)
			if err != nil {
				continue
			}
			accounts = append(accounts, account)
		}
		return accounts
	}
	return nil
}
