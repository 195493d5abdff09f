package tx

import (
	"errors"
	"fmt"
	"marginfigo/constants"

	"github.com/gagliardetto/solana-go"
	goerrors "github.com/go-errors/errors"
)

// ErrOversizedInstruction reports an extra instruction that exceeds the
// transaction size limit even in an otherwise empty batch beside the
// mandatory instructions. Packing is aborted, never partially returned.
// A plain sentinel, so it stays reachable through errors.Is after wrapping.
var ErrOversizedInstruction = errors.New("instruction exceeds transaction size limit beside mandatory instructions")

// PackInstructions distributes the extra instructions over as few
// transactions as possible. Every produced transaction starts with the
// mandatory instructions in their original order, the extra instructions
// keep their relative order, and every transaction serializes to at most
// constants.MAX_TX_SIZE bytes. Each candidate batch is compiled and measured
// exactly, one compile per extra instruction plus one re-validation per
// flush, so the result can never be oversized.
//
// Empty extra instructions yield a single mandatory-only transaction; if
// mandatory is empty as well the result is empty.
func PackInstructions(
	mandatory []solana.Instruction,
	extra []solana.Instruction,
	packContext PackContext,
) ([]*solana.Transaction, error) {
	if len(mandatory) == 0 && len(extra) == 0 {
		return nil, nil
	}

	var packed []*solana.Transaction
	var buffer []solana.Instruction

	flush := func() error {
		instructions := make([]solana.Instruction, 0, len(mandatory)+len(buffer))
		instructions = append(instructions, mandatory...)
		instructions = append(instructions, buffer...)
		transaction, err := BuildTransaction(
			instructions,
			packContext.Payer,
			packContext.RecentBlockhash,
			packContext.LookupTables,
		)
		if err != nil {
			return err
		}
		packed = append(packed, transaction)
		return nil
	}

	for idx, instruction := range extra {
		trial := make([]solana.Instruction, 0, len(buffer)+1)
		trial = append(trial, buffer...)
		trial = append(trial, instruction)
		size, err := MeasureTransaction(mandatory, trial, packContext)
		if err != nil {
			return nil, err
		}
		if size <= constants.MAX_TX_SIZE {
			buffer = trial
			continue
		}
		if len(buffer) == 0 {
			return nil, goerrors.WrapPrefix(ErrOversizedInstruction, fmt.Sprintf("extra instruction %d (%d bytes)", idx, size), 0)
		}
		if err = flush(); err != nil {
			return nil, err
		}
		buffer = []solana.Instruction{instruction}
		size, err = MeasureTransaction(mandatory, buffer, packContext)
		if err != nil {
			return nil, err
		}
		if size > constants.MAX_TX_SIZE {
			return nil, goerrors.WrapPrefix(ErrOversizedInstruction, fmt.Sprintf("extra instruction %d (%d bytes)", idx, size), 0)
		}
	}

	if len(buffer) > 0 || len(packed) == 0 {
		if err := flush(); err != nil {
			return nil, err
		}
	}
	return packed, nil
}
