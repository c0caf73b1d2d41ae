package royaltyhook

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/Dennis2340/transfer-logic/pkg/solana"
	"github.com/Dennis2340/transfer-logic/pkg/solana/transferhook"
)

// Execute builds the interface-encoded invocation a token program issues
// against the hook after moving tokens. The royalty recipient rides at
// index 3, ahead of the standard interface tail, because the meta list
// holds no descriptors to resolve it from.
func Execute(source, mint, destination, royaltyRecipient, owner ed25519.PublicKey, amount uint64) (solana.Instruction, error) {
	// Accounts expected by this instruction:
	//
	//   0. `[writable]` Source token account
	//   1. `[]` Mint
	//   2. `[writable]` Destination token account
	//   3. `[writable]` Royalty recipient token account
	//   4. `[signer]` Source account owner
	//   5. `[]` Extra account meta list (derived from the mint)
	//   6. `[]` Token extensions program
	metaList, _, err := GetExtraAccountMetaListAddress(mint)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to derive meta list address")
	}

	return solana.NewInstruction(
		PROGRAM_ID,
		transferhook.PackExecute(amount),
		solana.NewAccountMeta(source, false),
		solana.NewReadonlyAccountMeta(mint, false),
		solana.NewAccountMeta(destination, false),
		solana.NewAccountMeta(royaltyRecipient, false),
		solana.NewReadonlyAccountMeta(owner, true),
		solana.NewReadonlyAccountMeta(metaList, false),
		solana.NewReadonlyAccountMeta(SPL_TOKEN_2022_PROGRAM_ID, false),
	), nil
}

// TransferHook builds the native-dispatch form of Execute, addressed to the
// program's own selector table instead of the interface's.
func TransferHook(source, mint, destination, royaltyRecipient, owner ed25519.PublicKey, amount uint64) (solana.Instruction, error) {
	instruction, err := Execute(source, mint, destination, royaltyRecipient, owner, amount)
	if err != nil {
		return solana.Instruction{}, err
	}

	var offset int
	data := make([]byte, 8+8)
	putDiscriminator(data, transferHookInstructionDiscriminator, &offset)
	putUint64(data, amount, &offset)
	instruction.Data = data

	return instruction, nil
}
