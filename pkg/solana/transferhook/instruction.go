// Package transferhook implements the wire format of the SPL transfer hook
// interface, which token programs use to call out to mint-configured programs
// on every transfer.
//
// Reference: https://github.com/solana-labs/solana-program-library/blob/master/token/transfer-hook/interface/src/instruction.rs
package transferhook

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Instruction discriminators are the first 8 bytes of the SHA-256 hash of
// the interface's namespaced instruction names.
var (
	// sha256("spl-transfer-hook-interface:execute")[..8]
	ExecuteDiscriminator = []byte{105, 37, 101, 197, 75, 251, 102, 26}

	// sha256("spl-transfer-hook-interface:initialize-extra-account-metas")[..8]
	InitializeExtraAccountMetasDiscriminator = []byte{43, 34, 13, 49, 167, 88, 235, 235}

	// sha256("spl-transfer-hook-interface:update-extra-account-metas")[..8]
	UpdateExtraAccountMetasDiscriminator = []byte{157, 105, 42, 146, 102, 85, 241, 174}
)

const DiscriminatorSize = 8

var (
	ErrUnknownInstruction     = errors.New("unknown transfer hook instruction")
	ErrInvalidInstructionData = errors.New("invalid transfer hook instruction data")
)

type InstructionType int

const (
	InstructionTypeUnknown InstructionType = iota
	InstructionTypeExecute
	InstructionTypeInitializeExtraAccountMetas
	InstructionTypeUpdateExtraAccountMetas
)

// Instruction is a decoded transfer hook interface instruction.
type Instruction struct {
	Type InstructionType

	// Amount is the transfer amount, set for Execute instructions only.
	Amount uint64
}

// PackExecute encodes an Execute instruction's data.
func PackExecute(amount uint64) []byte {
	data := make([]byte, DiscriminatorSize+8)
	copy(data, ExecuteDiscriminator)
	binary.LittleEndian.PutUint64(data[DiscriminatorSize:], amount)
	return data
}

// UnpackInstruction decodes raw instruction data against the interface's
// discriminators. Data that matches no discriminator, or that is truncated
// past its discriminator, is rejected.
func UnpackInstruction(data []byte) (*Instruction, error) {
	if len(data) < DiscriminatorSize {
		return nil, ErrUnknownInstruction
	}

	switch {
	case hasDiscriminator(data, ExecuteDiscriminator):
		if len(data) < DiscriminatorSize+8 {
			return nil, ErrInvalidInstructionData
		}
		return &Instruction{
			Type:   InstructionTypeExecute,
			Amount: binary.LittleEndian.Uint64(data[DiscriminatorSize:]),
		}, nil
	case hasDiscriminator(data, InitializeExtraAccountMetasDiscriminator):
		return &Instruction{Type: InstructionTypeInitializeExtraAccountMetas}, nil
	case hasDiscriminator(data, UpdateExtraAccountMetasDiscriminator):
		return &Instruction{Type: InstructionTypeUpdateExtraAccountMetas}, nil
	}

	return nil, ErrUnknownInstruction
}

func hasDiscriminator(data, discriminator []byte) bool {
	for i := 0; i < DiscriminatorSize; i++ {
		if data[i] != discriminator[i] {
			return false
		}
	}
	return true
}
