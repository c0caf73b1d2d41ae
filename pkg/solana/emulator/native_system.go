package emulator

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/Dennis2340/transfer-logic/pkg/solana/system"
)

// processSystemInstruction implements the subset of the system program that
// account provisioning flows require.
func processSystemInstruction(env *Env) error {
	data := env.Data()
	if len(data) < 4 {
		return errors.New("system: missing instruction data")
	}

	switch binary.LittleEndian.Uint32(data) {
	case system.CommandCreateAccount:
		return processCreateAccount(env)
	case system.CommandTransfer:
		return processSystemTransfer(env)
	default:
		return errors.Errorf("system: unsupported instruction: %d", binary.LittleEndian.Uint32(data))
	}
}

func processCreateAccount(env *Env) error {
	data := env.Data()
	accounts := env.Accounts()

	if len(accounts) < 2 {
		return errors.New("system: not enough account keys")
	}
	if len(data) != 4+2*8+32 {
		return errors.New("system: invalid instruction data")
	}

	funder := accounts[0]
	target := accounts[1]

	if !funder.IsSigner {
		return ErrMissingSignature
	}
	if !target.IsSigner {
		return ErrMissingSignature
	}

	lamports := binary.LittleEndian.Uint64(data[4:])
	size := binary.LittleEndian.Uint64(data[4+8:])

	if target.Account.Lamports > 0 || len(target.Account.Data) > 0 {
		return errors.New("system: account already in use")
	}
	if funder.Account.Lamports < lamports {
		return errors.New("system: insufficient funds")
	}

	funder.Account.Lamports -= lamports
	target.Account.Lamports = lamports
	target.Account.Data = make([]byte, size)
	target.Account.Owner = append([]byte(nil), data[4+2*8:]...)

	return nil
}

func processSystemTransfer(env *Env) error {
	data := env.Data()
	accounts := env.Accounts()

	if len(accounts) < 2 {
		return errors.New("system: not enough account keys")
	}
	if len(data) != 4+8 {
		return errors.New("system: invalid instruction data")
	}

	sender := accounts[0]
	receiver := accounts[1]

	if !sender.IsSigner {
		return ErrMissingSignature
	}

	lamports := binary.LittleEndian.Uint64(data[4:])
	if sender.Account.Lamports < lamports {
		return errors.New("system: insufficient funds")
	}

	sender.Account.Lamports -= lamports
	receiver.Account.Lamports += lamports

	return nil
}
