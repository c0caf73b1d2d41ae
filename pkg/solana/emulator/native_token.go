package emulator

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/Dennis2340/transfer-logic/pkg/solana/token"
)

// processTokenInstruction implements the subset of the token program that
// transfer flows require. It validates account ownership against the
// executing program id, so the same processor serves both the original
// token program and the token extensions program.
func processTokenInstruction(env *Env) error {
	data := env.Data()
	if len(data) == 0 {
		return token.ErrorInvalidInstruction
	}

	switch token.Command(data[0]) {
	case token.CommandInitializeAccount:
		return processInitializeAccount(env)
	case token.CommandTransfer:
		return processTokenTransfer(env)
	default:
		return token.ErrorInvalidInstruction
	}
}

func processInitializeAccount(env *Env) error {
	accounts := env.Accounts()
	if len(accounts) < 4 {
		return errors.New("token: not enough account keys")
	}

	target := accounts[0]
	mint := accounts[1]
	owner := accounts[2]

	if !bytes.Equal(target.Account.Owner, env.Program()) {
		return errors.New("token: account not owned by token program")
	}
	if len(target.Account.Data) != token.AccountSize {
		return errors.New("token: invalid account data size")
	}

	var state token.Account
	if state.Unmarshal(target.Account.Data) && state.State != token.AccountStateUninitialized {
		return token.ErrorAlreadyInUse
	}
	if target.Account.Lamports < MinimumBalance(token.AccountSize) {
		return token.ErrorNotRentExempt
	}

	state = token.Account{
		Mint:  mint.Key,
		Owner: owner.Key,
		State: token.AccountStateInitialized,
	}
	target.Account.Data = state.Marshal()

	return nil
}

func processTokenTransfer(env *Env) error {
	data := env.Data()
	accounts := env.Accounts()

	if len(accounts) < 3 {
		return errors.New("token: not enough account keys")
	}
	if len(data) != 9 {
		return token.ErrorInvalidInstruction
	}

	source := accounts[0]
	dest := accounts[1]
	owner := accounts[2]

	if !bytes.Equal(source.Account.Owner, env.Program()) || !bytes.Equal(dest.Account.Owner, env.Program()) {
		return errors.New("token: account not owned by token program")
	}

	var sourceState, destState token.Account
	if !sourceState.Unmarshal(source.Account.Data) || sourceState.State == token.AccountStateUninitialized {
		return token.ErrorUninitializedState
	}
	if !destState.Unmarshal(dest.Account.Data) || destState.State == token.AccountStateUninitialized {
		return token.ErrorUninitializedState
	}

	if !bytes.Equal(sourceState.Mint, destState.Mint) {
		return token.ErrorMintMismatch
	}
	if !bytes.Equal(sourceState.Owner, owner.Key) {
		return token.ErrorOwnerMismatch
	}
	if !owner.IsSigner {
		return ErrMissingSignature
	}

	amount := binary.LittleEndian.Uint64(data[1:])
	if sourceState.Amount < amount {
		return token.ErrorInsufficientFunds
	}

	sourceState.Amount -= amount
	destState.Amount += amount

	source.Account.Data = sourceState.Marshal()
	dest.Account.Data = destState.Marshal()

	return nil
}
