package royaltyhook

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Dennis2340/transfer-logic/pkg/rate"
	"github.com/Dennis2340/transfer-logic/pkg/solana"
	"github.com/Dennis2340/transfer-logic/pkg/solana/transferhook"
)

var (
	// ErrMetaListExists indicates the mint's extra account meta list has
	// already been provisioned. Provisioning is not idempotent.
	ErrMetaListExists = errors.New("extra account meta list already exists")

	// ErrRateLimited indicates provisioning for the mint was attempted too
	// frequently.
	ErrRateLimited = errors.New("rate limited")
)

// Provisioner sets up the extra account meta list for mints adopting the
// hook.
type Provisioner struct {
	log     *logrus.Entry
	sc      solana.Client
	limiter rate.Limiter
}

func NewProvisioner(sc solana.Client, limiter rate.Limiter) *Provisioner {
	return &Provisioner{
		log:     logrus.StandardLogger().WithField("type", "solana/royaltyhook/provisioner"),
		sc:      sc,
		limiter: limiter,
	}
}

// ProvisionExtraAccountMetaList creates and initializes the meta list
// account for the provided mint, funded by payer.
func (p *Provisioner) ProvisionExtraAccountMetaList(payer ed25519.PrivateKey, mint ed25519.PublicKey) (solana.Signature, error) {
	allowed, err := p.limiter.Allow(base58.Encode(mint))
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to check rate limit")
	}
	if !allowed {
		return solana.Signature{}, ErrRateLimited
	}

	metaList, _, err := GetExtraAccountMetaListAddress(mint)
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to derive meta list address")
	}

	_, err = p.sc.GetAccountInfo(metaList, solana.CommitmentFinalized)
	if err == nil {
		return solana.Signature{}, ErrMetaListExists
	} else if err != solana.ErrNoAccountInfo {
		return solana.Signature{}, errors.Wrap(err, "failed to check meta list account")
	}

	payerPub := payer.Public().(ed25519.PublicKey)

	instruction, err := InitializeExtraAccountMetaList(payerPub, mint)
	if err != nil {
		return solana.Signature{}, err
	}

	txn := solana.NewTransaction(payerPub, instruction)

	blockhash, err := p.sc.GetLatestBlockhash()
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to get latest blockhash")
	}
	txn.SetBlockhash(blockhash)

	if err := txn.Sign(payer); err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to sign transaction")
	}

	sig, err := p.sc.SubmitTransaction(txn, solana.CommitmentConfirmed)
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to submit transaction")
	}

	p.log.WithFields(logrus.Fields{
		"mint":      base58.Encode(mint),
		"meta_list": base58.Encode(metaList),
	}).Debug("provisioned extra account meta list")

	return sig, nil
}

// GetExtraAccountMetaList fetches and decodes the meta list for a mint.
func (p *Provisioner) GetExtraAccountMetaList(mint ed25519.PublicKey) (*transferhook.ExtraAccountMetaList, error) {
	metaList, _, err := GetExtraAccountMetaListAddress(mint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive meta list address")
	}

	accountInfo, err := p.sc.GetAccountInfo(metaList, solana.CommitmentFinalized)
	if err != nil {
		return nil, err
	}

	var list transferhook.ExtraAccountMetaList
	if !list.Unmarshal(accountInfo.Data) {
		return nil, ErrInvalidAccountData
	}

	return &list, nil
}
