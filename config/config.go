package config

import (
	"marginfigo/marginfi/config"
)

var CurrentConfig = config.MarginfiConfigs[config.MarginfiEnvMainnetBeta]

func GetConfig() *config.MarginfiConfig {
	return &CurrentConfig
}

func Initialize(env config.MarginfiEnv, overrideConfig *config.MarginfiConfig) *config.MarginfiConfig {
	CurrentConfig = config.MarginfiConfigs[env]
	if overrideConfig != nil {
		if overrideConfig.MARGINFI_PROGRAM_ID != "" {
			CurrentConfig.MARGINFI_PROGRAM_ID = overrideConfig.MARGINFI_PROGRAM_ID
		}
		if overrideConfig.GROUP_ADDRESS != "" {
			CurrentConfig.GROUP_ADDRESS = overrideConfig.GROUP_ADDRESS
		}
		if overrideConfig.BANK_LOOKUP_TABLE != "" {
			CurrentConfig.BANK_LOOKUP_TABLE = overrideConfig.BANK_LOOKUP_TABLE
		}
		if overrideConfig.TIP_ENDPOINT != "" {
			CurrentConfig.TIP_ENDPOINT = overrideConfig.TIP_ENDPOINT
		}
		if len(overrideConfig.TIP_ACCOUNTS) > 0 {
			CurrentConfig.TIP_ACCOUNTS = overrideConfig.TIP_ACCOUNTS
		}
	}
	return &CurrentConfig
}
