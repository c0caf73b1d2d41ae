package royaltyhook

import (
	"bytes"
	"encoding/binary"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Dennis2340/transfer-logic/pkg/solana/emulator"
	"github.com/Dennis2340/transfer-logic/pkg/solana/system"
	"github.com/Dennis2340/transfer-logic/pkg/solana/token"
	"github.com/Dennis2340/transfer-logic/pkg/solana/transferhook"
)

// Processor is the program-side implementation of the royalty hook.
type Processor struct {
	log *logrus.Entry
}

func NewProcessor() *Processor {
	return &Processor{
		log: logrus.StandardLogger().WithField("type", "solana/royaltyhook/processor"),
	}
}

// ProcessInstruction dispatches on the native selector table first.
// Instructions that match no native selector fall through to the interface
// decoder, since token programs invoke the hook with interface-encoded data
// rather than native selectors.
func (p *Processor) ProcessInstruction(env *emulator.Env) error {
	data := env.Data()
	if len(data) < 8 {
		return ErrInvalidInstructionData
	}

	switch {
	case bytes.HasPrefix(data, initializeExtraAccountMetaListInstructionDiscriminator):
		return p.initializeExtraAccountMetaList(env)
	case bytes.HasPrefix(data, transferHookInstructionDiscriminator):
		if len(data) != 8+8 {
			return ErrInvalidInstructionData
		}
		return p.transferHook(env, binary.LittleEndian.Uint64(data[8:]))
	default:
		return p.fallback(env)
	}
}

// fallback decodes interface-encoded instruction data and re-routes the
// Execute variant to the royalty handler. Every other variant, supported by
// the interface or not, is rejected before any handler runs.
func (p *Processor) fallback(env *emulator.Env) error {
	decoded, err := transferhook.UnpackInstruction(env.Data())
	if err != nil {
		return ErrInvalidInstructionData
	}

	if decoded.Type != transferhook.InstructionTypeExecute {
		return ErrInvalidInstructionData
	}

	return p.transferHook(env, decoded.Amount)
}

func (p *Processor) initializeExtraAccountMetaList(env *emulator.Env) error {
	accounts := env.Accounts()
	if len(accounts) < 6 {
		return errors.New("not enough account keys")
	}

	payer := accounts[0]
	metaList := accounts[1]
	mint := accounts[2]

	expected, bump, err := GetExtraAccountMetaListAddress(mint.Key)
	if err != nil {
		return errors.Wrap(err, "failed to derive meta list address")
	}
	if !bytes.Equal(expected, metaList.Key) {
		return ErrInvalidAccountData
	}

	size := transferhook.ExtraAccountMetaListSize(0)
	lamports := emulator.MinimumBalance(size)

	// The meta list account signs its own creation through the program's
	// derivation seeds.
	err = env.InvokeSigned(
		system.CreateAccount(payer.Key, metaList.Key, env.Program(), lamports, uint64(size)),
		[][]byte{extraAccountMetasPrefix, mint.Key, {bump}},
	)
	if err != nil {
		return err
	}

	list := &transferhook.ExtraAccountMetaList{}
	copy(metaList.Account.Data, list.Marshal())

	p.log.WithFields(logrus.Fields{
		"mint":      base58.Encode(mint.Key),
		"meta_list": base58.Encode(metaList.Key),
	}).Debug("initialized extra account meta list")

	return nil
}

func (p *Processor) transferHook(env *emulator.Env, amount uint64) error {
	accounts := env.Accounts()
	if len(accounts) < 7 {
		return errors.New("not enough account keys")
	}

	source := accounts[0]
	mint := accounts[1]
	destination := accounts[2]
	royaltyRecipient := accounts[3]
	owner := accounts[4]
	metaList := accounts[5]
	tokenProgram := accounts[6]

	expected, _, err := GetExtraAccountMetaListAddress(mint.Key)
	if err != nil {
		return errors.Wrap(err, "failed to derive meta list address")
	}
	if !bytes.Equal(expected, metaList.Key) {
		return ErrInvalidAccountData
	}

	var sourceState, destinationState, royaltyState token.Account
	if !sourceState.Unmarshal(source.Account.Data) {
		return ErrInvalidAccountData
	}
	if !destinationState.Unmarshal(destination.Account.Data) {
		return ErrInvalidAccountData
	}
	if !royaltyState.Unmarshal(royaltyRecipient.Account.Data) {
		return ErrInvalidAccountData
	}

	if !bytes.Equal(sourceState.Mint, mint.Key) ||
		!bytes.Equal(destinationState.Mint, mint.Key) ||
		!bytes.Equal(royaltyState.Mint, mint.Key) {
		return ErrInvalidAccountData
	}
	if !bytes.Equal(sourceState.Owner, owner.Key) {
		return ErrInvalidAccountData
	}

	royalty, remainder := Split(amount)

	// Royalty leg settles before the remainder leg.
	err = env.Invoke(token.TransferWithProgram(tokenProgram.Key, source.Key, royaltyRecipient.Key, owner.Key, royalty))
	if err != nil {
		return err
	}

	err = env.Invoke(token.TransferWithProgram(tokenProgram.Key, source.Key, destination.Key, owner.Key, remainder))
	if err != nil {
		return err
	}

	p.log.WithFields(logrus.Fields{
		"source":      base58.Encode(source.Key),
		"destination": base58.Encode(destination.Key),
		"amount":      amount,
		"royalty":     royalty,
	}).Debug("processed transfer")

	return nil
}
