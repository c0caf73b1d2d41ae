package transferhook

import (
	"github.com/Dennis2340/transfer-logic/pkg/solana/binary"
)

// ExtraAccountMeta is a single configurable account in an extra account meta
// list. AddressConfig is either a literal key or seed configuration,
// depending on the discriminator.
//
// Reference: https://github.com/solana-labs/solana-program-library/blob/master/libraries/tlv-account-resolution/src/account.rs
type ExtraAccountMeta struct {
	Discriminator byte
	AddressConfig [32]byte
	IsSigner      bool
	IsWritable    bool
}

const ExtraAccountMetaSize = 35

// ExtraAccountMetaList is the TLV state stored in a hook program's
// extra-account-metas PDA. The TLV type is the Execute instruction
// discriminator, so token programs can resolve the entry without knowing
// anything else about the hook program.
type ExtraAccountMetaList struct {
	Metas []ExtraAccountMeta
}

// ExtraAccountMetaListSize returns the account size required to hold a list
// of count metas: the 8-byte TLV discriminator, a u32 value length, a u32
// meta count, and the metas themselves.
func ExtraAccountMetaListSize(count int) int {
	return DiscriminatorSize + 4 + 4 + count*ExtraAccountMetaSize
}

func (l *ExtraAccountMetaList) Marshal() []byte {
	b := make([]byte, ExtraAccountMetaListSize(len(l.Metas)))

	var offset int
	copy(b, ExecuteDiscriminator)
	offset += DiscriminatorSize
	binary.PutUint32(b[offset:], uint32(4+len(l.Metas)*ExtraAccountMetaSize), &offset)
	binary.PutUint32(b[offset:], uint32(len(l.Metas)), &offset)

	for _, m := range l.Metas {
		b[offset] = m.Discriminator
		offset++
		copy(b[offset:], m.AddressConfig[:])
		offset += len(m.AddressConfig)
		if m.IsSigner {
			b[offset] = 1
		}
		offset++
		if m.IsWritable {
			b[offset] = 1
		}
		offset++
	}

	return b
}

func (l *ExtraAccountMetaList) Unmarshal(b []byte) bool {
	if len(b) < ExtraAccountMetaListSize(0) {
		return false
	}
	if !hasDiscriminator(b, ExecuteDiscriminator) {
		return false
	}

	offset := DiscriminatorSize

	var length, count uint32
	binary.GetUint32(b[offset:], &length, &offset)
	binary.GetUint32(b[offset:], &count, &offset)

	if int(length) != 4+int(count)*ExtraAccountMetaSize {
		return false
	}
	if len(b) < ExtraAccountMetaListSize(int(count)) {
		return false
	}

	l.Metas = make([]ExtraAccountMeta, count)
	for i := range l.Metas {
		m := &l.Metas[i]
		m.Discriminator = b[offset]
		offset++
		copy(m.AddressConfig[:], b[offset:])
		offset += len(m.AddressConfig)
		m.IsSigner = b[offset] != 0
		offset++
		m.IsWritable = b[offset] != 0
		offset++
	}

	return true
}
