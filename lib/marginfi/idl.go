package marginfi

import (
	bin "github.com/gagliardetto/binary"
	"github.com/go-errors/errors"
)

// Anchor instruction discriminators for the lending program,
// sha256("global:<snake_case_name>")[0:8].
var InstructionDiscriminators = map[string][8]byte{
	"marginfiGroupInitialize":         {0xff, 0x43, 0x43, 0x1a, 0x5e, 0x1f, 0x22, 0x14},
	"marginfiGroupConfigure":          {0x3e, 0xc7, 0x51, 0x4e, 0x21, 0x0d, 0xec, 0x3d},
	"lendingPoolAddBank":              {0xd7, 0x44, 0x48, 0x4e, 0xd0, 0xda, 0x67, 0xb6},
	"lendingPoolConfigureBank":        {0x79, 0xad, 0x9c, 0x28, 0x5d, 0x94, 0x38, 0xed},
	"lendingPoolHandleBankruptcy":     {0xa2, 0x0b, 0x38, 0x8b, 0x5a, 0x80, 0x46, 0xad},
	"marginfiAccountInitialize":       {0x2b, 0x4e, 0x3d, 0xff, 0x94, 0x34, 0xf9, 0x9a},
	"lendingAccountDeposit":           {0xab, 0x5e, 0xeb, 0x67, 0x52, 0x40, 0xd4, 0x8c},
	"lendingAccountRepay":             {0x4f, 0xd1, 0xac, 0xb1, 0xde, 0x33, 0xad, 0x97},
	"lendingAccountWithdraw":          {0x24, 0x48, 0x4a, 0x13, 0xd2, 0xd2, 0xc0, 0xc0},
	"lendingAccountBorrow":            {0x04, 0x7e, 0x74, 0x35, 0x30, 0x05, 0xd4, 0x1f},
	"lendingAccountCloseBalance":      {0xf5, 0x36, 0x29, 0x04, 0xf3, 0xca, 0x1f, 0x11},
	"lendingAccountWithdrawEmissions": {0xea, 0x16, 0x54, 0xd6, 0x76, 0xb0, 0x8c, 0xaa},
	"lendingAccountSettleEmissions":   {0xa1, 0x3a, 0x88, 0xae, 0xf2, 0xdf, 0x9c, 0xb0},
	"lendingAccountLiquidate":         {0xd6, 0xa9, 0x97, 0xd5, 0xfb, 0xa7, 0x56, 0xdb},
	"lendingAccountStartFlashloan":    {0x0e, 0x83, 0x21, 0xdc, 0x51, 0xba, 0xb4, 0x6b},
	"lendingAccountEndFlashloan":      {0x69, 0x7c, 0xc9, 0x6a, 0x99, 0x02, 0x08, 0x9c},
	"setAccountFlag":                  {0x38, 0xee, 0x12, 0xcf, 0xc1, 0x52, 0x8a, 0xae},
	"unsetAccountFlag":                {0x38, 0x51, 0x38, 0x55, 0x5c, 0x31, 0xff, 0x46},
	"setNewAccountAuthority":          {0x99, 0xa2, 0x32, 0x54, 0xb6, 0xc9, 0x4a, 0xb3},
}

var instructionNames = func() map[[8]byte]string {
	names := make(map[[8]byte]string, len(InstructionDiscriminators))
	for name, discriminator := range InstructionDiscriminators {
		names[discriminator] = name
	}
	return names
}()

func InstructionDiscriminator(name string) []byte {
	discriminator, exists := InstructionDiscriminators[name]
	if !exists {
		return nil
	}
	return discriminator[:]
}

// InstructionName maps the leading 8 bytes of instruction data back to the
// interface name it was built from.
func InstructionName(data []byte) (string, error) {
	if len(data) < 8 {
		return "", errors.New("instruction data shorter than a discriminator")
	}
	var discriminator [8]byte
	copy(discriminator[:], data[:8])
	name, exists := instructionNames[discriminator]
	if !exists {
		return "", errors.Errorf("unknown instruction discriminator %x", discriminator)
	}
	return name, nil
}

type LendingAccountDepositArgs struct {
	Amount uint64
}

type LendingAccountRepayArgs struct {
	Amount   uint64
	RepayAll *bool `bin:"optional"`
}

type LendingAccountWithdrawArgs struct {
	Amount      uint64
	WithdrawAll *bool `bin:"optional"`
}

type LendingAccountBorrowArgs struct {
	Amount uint64
}

type LendingAccountStartFlashloanArgs struct {
	EndIndex uint64
}

// ParseInstructionArgs decodes the borsh-encoded argument block following the
// discriminator. Instructions without arguments decode to nil.
func ParseInstructionArgs(name string, data []byte) (interface{}, error) {
	if len(data) < 8 {
		return nil, errors.New("instruction data shorter than a discriminator")
	}
	argData := data[8:]
	var args interface{}
	switch name {
	case "lendingAccountDeposit":
		args = &LendingAccountDepositArgs{}
	case "lendingAccountRepay":
		args = &LendingAccountRepayArgs{}
	case "lendingAccountWithdraw":
		args = &LendingAccountWithdrawArgs{}
	case "lendingAccountBorrow":
		args = &LendingAccountBorrowArgs{}
	case "lendingAccountStartFlashloan":
		args = &LendingAccountStartFlashloanArgs{}
	default:
		return nil, nil
	}
	err := bin.NewBorshDecoder(argData).Decode(args)
	if err != nil {
		return nil, err
	}
	return args, nil
}
