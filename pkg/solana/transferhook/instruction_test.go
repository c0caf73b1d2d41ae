package transferhook

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscriminators(t *testing.T) {
	for _, tc := range []struct {
		name     string
		expected []byte
	}{
		{"spl-transfer-hook-interface:execute", ExecuteDiscriminator},
		{"spl-transfer-hook-interface:initialize-extra-account-metas", InitializeExtraAccountMetasDiscriminator},
		{"spl-transfer-hook-interface:update-extra-account-metas", UpdateExtraAccountMetasDiscriminator},
	} {
		h := sha256.Sum256([]byte(tc.name))
		assert.Equal(t, tc.expected, h[:DiscriminatorSize], tc.name)
	}
}

func TestUnpackInstruction_Execute(t *testing.T) {
	data := PackExecute(123456789)
	require.Len(t, data, DiscriminatorSize+8)
	assert.EqualValues(t, 123456789, binary.LittleEndian.Uint64(data[DiscriminatorSize:]))

	decoded, err := UnpackInstruction(data)
	require.NoError(t, err)
	assert.Equal(t, InstructionTypeExecute, decoded.Type)
	assert.EqualValues(t, 123456789, decoded.Amount)
}

func TestUnpackInstruction_InitializeAndUpdate(t *testing.T) {
	decoded, err := UnpackInstruction(InitializeExtraAccountMetasDiscriminator)
	require.NoError(t, err)
	assert.Equal(t, InstructionTypeInitializeExtraAccountMetas, decoded.Type)

	decoded, err = UnpackInstruction(UpdateExtraAccountMetasDiscriminator)
	require.NoError(t, err)
	assert.Equal(t, InstructionTypeUpdateExtraAccountMetas, decoded.Type)
}

func TestUnpackInstruction_Invalid(t *testing.T) {
	// unknown discriminator
	_, err := UnpackInstruction(make([]byte, 16))
	assert.Equal(t, ErrUnknownInstruction, err)

	// too short to hold any discriminator
	_, err = UnpackInstruction([]byte{1, 2, 3})
	assert.Equal(t, ErrUnknownInstruction, err)

	// execute without an amount
	_, err = UnpackInstruction(ExecuteDiscriminator)
	assert.Equal(t, ErrInvalidInstructionData, err)

	// execute with a truncated amount
	_, err = UnpackInstruction(append(append([]byte{}, ExecuteDiscriminator...), 1, 2, 3))
	assert.Equal(t, ErrInvalidInstructionData, err)
}
