package solana

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_CompileAndSign(t *testing.T) {
	payerPub, payerPriv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	program, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	a, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	b, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	txn := NewTransaction(
		payerPub,
		NewInstruction(
			program,
			[]byte{1, 2, 3},
			NewAccountMeta(a, false),
			NewReadonlyAccountMeta(b, false),
		),
	)

	// Payer is always the first account.
	assert.EqualValues(t, payerPub, txn.Message.Accounts[0])
	assert.EqualValues(t, 1, txn.Message.Header.NumSignatures)
	require.Len(t, txn.Message.Instructions, 1)

	txn.SetBlockhash(Blockhash{})
	require.NoError(t, txn.Sign(payerPriv))

	var decompiled Transaction
	require.NoError(t, decompiled.Unmarshal(txn.Marshal()))
	assert.Equal(t, txn.Message.Marshal(), decompiled.Message.Marshal())
	assert.Equal(t, txn.Signatures, decompiled.Signatures)

	assert.True(t, ed25519.Verify(payerPub, txn.Message.Marshal(), txn.Signature()))
}

func TestTransaction_DuplicateAccountsPromoted(t *testing.T) {
	payer, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	program, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	shared, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	txn := NewTransaction(
		payer,
		NewInstruction(
			program,
			nil,
			NewReadonlyAccountMeta(shared, false),
			NewAccountMeta(shared, true),
		),
	)

	var count int
	for _, a := range txn.Message.Accounts {
		if string(a) == string(shared) {
			count++
		}
	}
	assert.Equal(t, 1, count)

	// Promoted to writable signer.
	assert.EqualValues(t, 2, txn.Message.Header.NumSignatures)
}
