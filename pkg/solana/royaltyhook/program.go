// Package royaltyhook implements a Token-2022 transfer hook program that
// routes a fixed percentage of every transfer to a royalty recipient.
package royaltyhook

import (
	"crypto/ed25519"
	"errors"
)

var (
	ErrInvalidProgram         = errors.New("invalid program id")
	ErrInvalidAccountData     = errors.New("unexpected account data")
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("8BZPRLCsb7NRKwr83CuzErr7HdcB8imhk6BJAetAJgbF")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

var (
	SYSTEM_PROGRAM_ID               = ed25519.PublicKey(mustBase58Decode("11111111111111111111111111111111"))
	SPL_TOKEN_2022_PROGRAM_ID       = ed25519.PublicKey(mustBase58Decode("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"))
	SPL_ASSOCIATED_TOKEN_PROGRAM_ID = ed25519.PublicKey(mustBase58Decode("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL"))
)

// Native dispatch selectors: the first 8 bytes of the SHA-256 hash of the
// namespaced handler names.
var (
	// sha256("global:initialize_extra_account_meta_list")[..8]
	initializeExtraAccountMetaListInstructionDiscriminator = []byte{
		92, 197, 174, 197, 41, 124, 19, 3,
	}

	// sha256("global:transfer_hook")[..8]
	transferHookInstructionDiscriminator = []byte{
		220, 57, 220, 152, 126, 125, 97, 168,
	}
)
