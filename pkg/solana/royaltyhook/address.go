package royaltyhook

import (
	"crypto/ed25519"

	"github.com/Dennis2340/transfer-logic/pkg/solana"
)

var extraAccountMetasPrefix = []byte("extra-account-metas")

// GetExtraAccountMetaListAddress derives the address of the extra account
// meta list for the provided mint. Token programs derive the same address
// when resolving the hook's accounts, so it must only ever depend on the
// mint and the fixed prefix.
func GetExtraAccountMetaListAddress(mint ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		extraAccountMetasPrefix,
		mint,
	)
}
