package royaltyhook

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/Dennis2340/transfer-logic/pkg/solana"
)

// Reference: https://github.com/solana-labs/solana-program-library/blob/master/token/transfer-hook/example/src/processor.rs
func InitializeExtraAccountMetaList(payer, mint ed25519.PublicKey) (solana.Instruction, error) {
	// Accounts expected by this instruction:
	//
	//   0. `[writable, signer]` Payer funding the meta list account
	//   1. `[writable]` Extra account meta list (derived from the mint)
	//   2. `[]` Mint
	//   3. `[]` Token extensions program
	//   4. `[]` Associated token account program
	//   5. `[]` System program
	metaList, _, err := GetExtraAccountMetaListAddress(mint)
	if err != nil {
		return solana.Instruction{}, errors.Wrap(err, "failed to derive meta list address")
	}

	var offset int
	data := make([]byte, 8)
	putDiscriminator(data, initializeExtraAccountMetaListInstructionDiscriminator, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewAccountMeta(payer, true),
		solana.NewAccountMeta(metaList, false),
		solana.NewReadonlyAccountMeta(mint, false),
		solana.NewReadonlyAccountMeta(SPL_TOKEN_2022_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(SPL_ASSOCIATED_TOKEN_PROGRAM_ID, false),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID, false),
	), nil
}

type DecompiledInitializeExtraAccountMetaList struct {
	Payer    ed25519.PublicKey
	MetaList ed25519.PublicKey
	Mint     ed25519.PublicKey
}

func DecompileInitializeExtraAccountMetaList(m solana.Message, index int) (*DecompiledInitializeExtraAccountMetaList, error) {
	if index >= len(m.Instructions) {
		return nil, errors.Errorf("instruction doesn't exist at %d", index)
	}

	i := m.Instructions[index]

	if !bytes.Equal(m.Accounts[i.ProgramIndex], PROGRAM_ID) {
		return nil, ErrInvalidProgram
	}
	if !bytes.Equal(i.Data, initializeExtraAccountMetaListInstructionDiscriminator) {
		return nil, ErrInvalidInstructionData
	}
	if len(i.Accounts) != 6 {
		return nil, errors.Errorf("invalid number of accounts: %d", len(i.Accounts))
	}

	return &DecompiledInitializeExtraAccountMetaList{
		Payer:    m.Accounts[i.Accounts[0]],
		MetaList: m.Accounts[i.Accounts[1]],
		Mint:     m.Accounts[i.Accounts[2]],
	}, nil
}
