package token

import (
	"crypto/ed25519"
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/mr-tron/base58/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dennis2340/transfer-logic/pkg/pointer"
)

func TestUnmarshal(t *testing.T) {
	data, err := hex.DecodeString("118a08c9d4cc46c576282e0daf050bbdb04f03313e35e5db3f3def69fa1eeec42b15a9cd4bef2cd809e464570d2a6cbd9bcc64e32ea4ebbcf748757bbb3dd5bd000084e2506ce67c000000000000000000000000000000000000000000000000000000000000000000000000010000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000")
	require.NoError(t, err)

	mint, err := base58.Decode("2BU1Xgyzqixhjaq9Pa5cNsaa1gSejLeNtDaDRv29qoZm")
	require.NoError(t, err)

	var a Account
	require.True(t, a.Unmarshal(data))
	assert.Equal(t, mint, []byte(a.Mint))
	assert.Equal(t, uint64(9e13*1e5), a.Amount)
	assert.Equal(t, AccountStateInitialized, a.State)
	assert.Empty(t, a.Delegate)
	assert.Empty(t, a.CloseAuthority)

	var rtt Account
	rtt.Unmarshal(a.Marshal())
	assert.Equal(t, a, rtt)
}

func TestMarshal_Layout(t *testing.T) {
	mint := make(ed25519.PublicKey, ed25519.PublicKeySize)
	owner := make(ed25519.PublicKey, ed25519.PublicKeySize)
	for i := 0; i < ed25519.PublicKeySize; i++ {
		mint[i] = 0xaa
		owner[i] = 0xbb
	}

	a := Account{
		Mint:   mint,
		Owner:  owner,
		Amount: 1000,
		State:  AccountStateInitialized,
	}

	b := a.Marshal()
	require.Len(t, b, AccountSize)

	assert.Equal(t, []byte(mint), b[0:32])
	assert.Equal(t, []byte(owner), b[32:64])
	assert.EqualValues(t, 1000, binary.LittleEndian.Uint64(b[64:72]))
	assert.Equal(t, byte(AccountStateInitialized), b[108])

	var decoded Account
	require.True(t, decoded.Unmarshal(b))
	assert.Equal(t, mint, decoded.Mint)
	assert.Equal(t, owner, decoded.Owner)
	assert.EqualValues(t, 1000, decoded.Amount)
}

func TestUnmarshal_InvalidSize(t *testing.T) {
	var a Account
	assert.False(t, a.Unmarshal(make([]byte, AccountSize-1)))
	assert.False(t, a.Unmarshal(make([]byte, AccountSize+1)))
}

func TestRoundTrip(t *testing.T) {
	mint := make(ed25519.PublicKey, ed25519.PublicKeySize)
	for i := 0; i < len(mint); i++ {
		mint[i] = 1
	}
	owner := make(ed25519.PublicKey, ed25519.PublicKeySize)
	for i := 0; i < len(owner); i++ {
		owner[i] = 2
	}
	delegate := make(ed25519.PublicKey, ed25519.PublicKeySize)
	for i := 0; i < len(delegate); i++ {
		delegate[i] = 3
	}
	closeAuthority := make(ed25519.PublicKey, ed25519.PublicKeySize)
	for i := 0; i < len(closeAuthority); i++ {
		closeAuthority[i] = 2
	}

	expected := Account{
		Mint:           mint,
		Owner:          owner,
		Amount:         10,
		Delegate:       delegate,
		State:          AccountStateFrozen,
		IsNative:       pointer.Uint64(2),
		CloseAuthority: closeAuthority,
	}

	var actual Account
	require.True(t, actual.Unmarshal(expected.Marshal()))
	assert.Equal(t, expected, actual)
}
