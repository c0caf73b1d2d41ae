package royaltyhook

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dennis2340/transfer-logic/pkg/rate"
	"github.com/Dennis2340/transfer-logic/pkg/solana"
	"github.com/Dennis2340/transfer-logic/pkg/solana/transferhook"
	xrate "golang.org/x/time/rate"
)

type stubClient struct {
	accounts  map[string]solana.AccountInfo
	submitted []solana.Transaction
}

func newStubClient() *stubClient {
	return &stubClient{accounts: make(map[string]solana.AccountInfo)}
}

func (c *stubClient) GetMinimumBalanceForRentExemption(size uint64) (uint64, error) {
	return (size + 128) * 3480 * 2, nil
}

func (c *stubClient) GetLatestBlockhash() (solana.Blockhash, error) {
	return solana.Blockhash{1}, nil
}

func (c *stubClient) GetAccountInfo(account ed25519.PublicKey, _ solana.Commitment) (solana.AccountInfo, error) {
	info, ok := c.accounts[string(account)]
	if !ok {
		return solana.AccountInfo{}, solana.ErrNoAccountInfo
	}
	return info, nil
}

func (c *stubClient) GetBalance(account ed25519.PublicKey) (uint64, error) {
	return c.accounts[string(account)].Lamports, nil
}

func (c *stubClient) GetTokenAccountBalance(account ed25519.PublicKey) (uint64, error) {
	return 0, nil
}

func (c *stubClient) RequestAirdrop(account ed25519.PublicKey, lamports uint64, _ solana.Commitment) (solana.Signature, error) {
	return solana.Signature{}, nil
}

func (c *stubClient) SubmitTransaction(txn solana.Transaction, _ solana.Commitment) (solana.Signature, error) {
	c.submitted = append(c.submitted, txn)

	var sig solana.Signature
	copy(sig[:], txn.Signature())
	return sig, nil
}

func TestProvisioner(t *testing.T) {
	sc := newStubClient()
	p := NewProvisioner(sc, &rate.NoLimiter{})

	payerPub, payer, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	mint, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	_, err = p.ProvisionExtraAccountMetaList(payer, mint)
	require.NoError(t, err)
	require.Len(t, sc.submitted, 1)

	decompiled, err := DecompileInitializeExtraAccountMetaList(sc.submitted[0].Message, 0)
	require.NoError(t, err)
	assert.Equal(t, payerPub, decompiled.Payer)
	assert.Equal(t, mint, decompiled.Mint)

	metaList, _, err := GetExtraAccountMetaListAddress(mint)
	require.NoError(t, err)
	assert.Equal(t, metaList, decompiled.MetaList)

	// a provisioned mint cannot be provisioned again
	sc.accounts[string(metaList)] = solana.AccountInfo{
		Data:  (&transferhook.ExtraAccountMetaList{}).Marshal(),
		Owner: PROGRAM_ID,
	}
	_, err = p.ProvisionExtraAccountMetaList(payer, mint)
	assert.Equal(t, ErrMetaListExists, err)

	list, err := p.GetExtraAccountMetaList(mint)
	require.NoError(t, err)
	assert.Empty(t, list.Metas)
}

func TestProvisioner_RateLimited(t *testing.T) {
	sc := newStubClient()
	p := NewProvisioner(sc, rate.NewLocalRateLimiter(xrate.Limit(1)))

	_, payer, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	mint, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	otherMint, _, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	_, err = p.ProvisionExtraAccountMetaList(payer, mint)
	require.NoError(t, err)

	_, err = p.ProvisionExtraAccountMetaList(payer, mint)
	assert.Equal(t, ErrRateLimited, err)

	// limits are per mint
	_, err = p.ProvisionExtraAccountMetaList(payer, otherMint)
	assert.NoError(t, err)
}
