package config

type MarginfiEnv string

const (
	MarginfiEnvNone        MarginfiEnv = ""
	MarginfiEnvDevnet      MarginfiEnv = "devnet"
	MarginfiEnvMainnetBeta MarginfiEnv = "mainnet-beta"
)

type MarginfiConfig struct {
	ENV                 MarginfiEnv
	MARGINFI_PROGRAM_ID string
	GROUP_ADDRESS       string
	BANK_LOOKUP_TABLE   string
	TIP_ENDPOINT        string
	TIP_ACCOUNTS        []string
}

const MARGINFI_PROGRAM_ID = "MFv2hWf31Z9kbCa1snEPYctwafyhdvnV7FZnsebVacA"
const MARGINFI_STAGING_PROGRAM_ID = "stag8sTKds2h4KzjUw3zKTsxbqvT4XKHdaR9X9E6Rct"

var MarginfiConfigs = map[MarginfiEnv]MarginfiConfig{
	MarginfiEnvDevnet: {
		ENV:                 "devnet",
		MARGINFI_PROGRAM_ID: MARGINFI_STAGING_PROGRAM_ID,
		GROUP_ADDRESS:       "92rJcBP15Lx6dtENmHsyAkE42i6K3hWnazs2JPqwG8Va",
		BANK_LOOKUP_TABLE:   "FVpXkYDa4VrD7TEqAtCwGmsNe5zq6chb5vT4uzt2mw9m",
		TIP_ENDPOINT:        "https://bundles-api-rest.jito.wtf/api/v1/bundles",
	},
	MarginfiEnvMainnetBeta: {
		ENV:                 "mainnet-beta",
		MARGINFI_PROGRAM_ID: MARGINFI_PROGRAM_ID,
		GROUP_ADDRESS:       "4qp6Fx6tnZkCbsW9xuQgZfh7Wa4kbmUbEF6kxt3kTRmi",
		BANK_LOOKUP_TABLE:   "HGmknUTUmeovMc9ryERNWG6UFZDFDVr9xrum3ZhyL4fC",
		TIP_ENDPOINT:        "https://bundles-api-rest.jito.wtf/api/v1/bundles",
	},
}
