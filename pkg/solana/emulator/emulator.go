// Package emulator provides a minimal in-process Solana runtime, sufficient
// to execute program processors against system and token program accounts
// without a validator.
package emulator

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Dennis2340/transfer-logic/pkg/solana"
	"github.com/Dennis2340/transfer-logic/pkg/solana/token"
)

var (
	ErrMissingSignature = errors.New("missing required signature")
	ErrAccountNotFound  = errors.New("account not found")
)

// Account is the runtime state of an address.
type Account struct {
	Lamports   uint64
	Data       []byte
	Owner      ed25519.PublicKey
	Executable bool
}

func (a *Account) clone() *Account {
	data := make([]byte, len(a.Data))
	copy(data, a.Data)

	owner := make(ed25519.PublicKey, len(a.Owner))
	copy(owner, a.Owner)

	return &Account{
		Lamports:   a.Lamports,
		Data:       data,
		Owner:      owner,
		Executable: a.Executable,
	}
}

// KeyedAccount is an account as seen by an executing program, carrying the
// instruction's signer and writable flags.
type KeyedAccount struct {
	Key        ed25519.PublicKey
	IsSigner   bool
	IsWritable bool
	Account    *Account
}

// Program executes instructions addressed to a registered program id.
type Program interface {
	ProcessInstruction(env *Env) error
}

// ProgramFunc is an adapter allowing plain functions to act as programs.
type ProgramFunc func(env *Env) error

func (f ProgramFunc) ProcessInstruction(env *Env) error {
	return f(env)
}

// Emulator executes instructions against an in-memory account set. Each
// top-level Process call is atomic: if any instruction in the call tree
// fails, all account mutations from the call are rolled back.
type Emulator struct {
	log      *logrus.Entry
	accounts map[string]*Account
	programs map[string]Program
}

// New returns an emulator with the system program and the token programs
// pre-registered as native programs.
func New() *Emulator {
	e := &Emulator{
		log:      logrus.StandardLogger().WithField("type", "solana/emulator"),
		accounts: make(map[string]*Account),
		programs: make(map[string]Program),
	}

	e.Register(systemProgramKey(), ProgramFunc(processSystemInstruction))
	e.Register(token.ProgramKey, ProgramFunc(processTokenInstruction))
	e.Register(token.Token2022ProgramKey, ProgramFunc(processTokenInstruction))

	return e
}

// Register installs a program at the provided address.
func (e *Emulator) Register(program ed25519.PublicKey, p Program) {
	e.programs[base58.Encode(program)] = p
	e.accounts[base58.Encode(program)] = &Account{
		Owner:      systemProgramKey(),
		Executable: true,
	}
}

// SetAccount installs or replaces the account at the provided address.
func (e *Emulator) SetAccount(key ed25519.PublicKey, account *Account) {
	e.accounts[base58.Encode(key)] = account
}

// Account returns the account at the provided address, if it exists.
func (e *Emulator) Account(key ed25519.PublicKey) (*Account, bool) {
	account, ok := e.accounts[base58.Encode(key)]
	return account, ok
}

// Fund credits the provided address with lamports, creating a system owned
// account if none exists.
func (e *Emulator) Fund(key ed25519.PublicKey, lamports uint64) {
	account, ok := e.accounts[base58.Encode(key)]
	if !ok {
		account = &Account{Owner: systemProgramKey()}
		e.accounts[base58.Encode(key)] = account
	}
	account.Lamports += lamports
}

// Process executes a top-level instruction. Accounts flagged as signers in
// the instruction are treated as having signed the enclosing transaction.
func (e *Emulator) Process(instruction solana.Instruction) error {
	snapshot := make(map[string]*Account, len(e.accounts))
	for k, v := range e.accounts {
		snapshot[k] = v.clone()
	}

	signers := make(map[string]struct{})
	for _, meta := range instruction.Accounts {
		if meta.IsSigner {
			signers[base58.Encode(meta.PublicKey)] = struct{}{}
		}
	}

	if err := e.dispatch(instruction, signers); err != nil {
		e.accounts = snapshot
		return err
	}

	return nil
}

func (e *Emulator) dispatch(instruction solana.Instruction, signers map[string]struct{}) error {
	program, ok := e.programs[base58.Encode(instruction.Program)]
	if !ok {
		return errors.Errorf("program %s does not exist", base58.Encode(instruction.Program))
	}

	env := &Env{
		emulator: e,
		program:  instruction.Program,
		data:     instruction.Data,
		signers:  signers,
	}

	for _, meta := range instruction.Accounts {
		if meta.IsSigner {
			if _, ok := signers[base58.Encode(meta.PublicKey)]; !ok {
				return ErrMissingSignature
			}
		}

		account, ok := e.accounts[base58.Encode(meta.PublicKey)]
		if !ok {
			account = &Account{Owner: systemProgramKey()}
			e.accounts[base58.Encode(meta.PublicKey)] = account
		}

		env.accounts = append(env.accounts, KeyedAccount{
			Key:        meta.PublicKey,
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
			Account:    account,
		})
	}

	e.log.WithFields(logrus.Fields{
		"program":  base58.Encode(instruction.Program),
		"accounts": len(instruction.Accounts),
	}).Trace("processing instruction")

	return program.ProcessInstruction(env)
}

// Env is the execution context handed to a program processor.
type Env struct {
	emulator *Emulator
	program  ed25519.PublicKey
	accounts []KeyedAccount
	data     []byte
	signers  map[string]struct{}
}

// Program returns the address of the executing program.
func (env *Env) Program() ed25519.PublicKey {
	return env.program
}

// Data returns the instruction data.
func (env *Env) Data() []byte {
	return env.data
}

// Accounts returns the instruction accounts, in instruction order.
func (env *Env) Accounts() []KeyedAccount {
	return env.accounts
}

// Invoke executes an inner instruction. Signer privileges extend only to
// keys that signed the enclosing transaction.
func (env *Env) Invoke(instruction solana.Instruction) error {
	return env.emulator.dispatch(instruction, env.signers)
}

// InvokeSigned executes an inner instruction with program derived addresses
// as signers. Each seed set must derive, under the calling program, the
// address it is signing for.
func (env *Env) InvokeSigned(instruction solana.Instruction, signerSeeds ...[][]byte) error {
	signers := make(map[string]struct{}, len(env.signers)+len(signerSeeds))
	for k := range env.signers {
		signers[k] = struct{}{}
	}

	for _, seeds := range signerSeeds {
		address, err := solana.CreateProgramAddress(env.program, seeds...)
		if err != nil {
			return errors.Wrap(err, "invalid signer seeds")
		}
		signers[base58.Encode(address)] = struct{}{}
	}

	return env.emulator.dispatch(instruction, signers)
}

func systemProgramKey() ed25519.PublicKey {
	return make(ed25519.PublicKey, ed25519.PublicKeySize)
}
